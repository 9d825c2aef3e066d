package commands

import (
	"context"
	"strings"

	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
)

// RenderCommand serializes tags and substitutes them into a prompt template
type RenderCommand struct {
	Template string
	Tags     []string
}

// NewRenderCommand creates a new RenderCommand
func NewRenderCommand(template string, tags []string) *RenderCommand {
	return &RenderCommand{
		Template: template,
		Tags:     tags,
	}
}

// Validate checks if the render operation is valid
func (c *RenderCommand) Validate() error {
	if !strings.Contains(c.Template, domain.Placeholder) {
		return &application.ValidationError{
			Field:   "template",
			Message: "template must contain " + domain.Placeholder,
		}
	}
	return nil
}

// Execute returns the template with the placeholder replaced
func (c *RenderCommand) Execute(ctx context.Context) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	serialized := domain.NewSelectionList(c.Tags...).Serialize()
	return domain.ExpandPlaceholder(c.Template, serialized), nil
}

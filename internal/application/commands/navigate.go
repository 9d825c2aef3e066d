package commands

import (
	"context"
	"fmt"

	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
)

// NavigateResult contains the navigation state after activating a path
type NavigateResult struct {
	Selected domain.Path
	Expanded []string
	Message  string
}

// NavigateCommand activates a group or subgroup as a click would
type NavigateCommand struct {
	widget *application.Widget
	Path   string
}

// NewNavigateCommand creates a new NavigateCommand
func NewNavigateCommand(widget *application.Widget, path string) *NavigateCommand {
	return &NavigateCommand{
		widget: widget,
		Path:   path,
	}
}

// Validate checks if the navigate operation is valid
func (c *NavigateCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the navigate command
func (c *NavigateCommand) Execute(ctx context.Context) (*NavigateResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.widget.Activate(domain.ParsePath(c.Path)); err != nil {
		return nil, err
	}

	selected := c.widget.Selection()
	return &NavigateResult{
		Selected: selected,
		Expanded: c.widget.ExpandedKeys(),
		Message:  fmt.Sprintf("Selected %s", selected),
	}, nil
}

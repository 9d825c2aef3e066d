package commands

import (
	"context"
	"fmt"
	"strings"

	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
)

// TagsResult contains the selected tags after an edit
type TagsResult struct {
	Tags       []string
	Serialized string
	Message    string
}

func tagsResult(widget *application.Widget, message string) *TagsResult {
	return &TagsResult{
		Tags:       widget.Tags(),
		Serialized: widget.Serialized(),
		Message:    message,
	}
}

// PickCommand appends a tag to the selection
type PickCommand struct {
	widget *application.Widget
	Tag    string
}

// NewPickCommand creates a new PickCommand
func NewPickCommand(widget *application.Widget, tag string) *PickCommand {
	return &PickCommand{
		widget: widget,
		Tag:    tag,
	}
}

// Validate checks if the pick operation is valid
func (c *PickCommand) Validate() error {
	return application.ValidateRequired("tag", c.Tag)
}

// Execute runs the pick command
func (c *PickCommand) Execute(ctx context.Context) (*TagsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.widget.Pick(ctx, c.Tag); err != nil {
		return nil, fmt.Errorf("failed to pick: %w", err)
	}
	return tagsResult(c.widget, fmt.Sprintf("Picked %s", c.Tag)), nil
}

// DeleteTagCommand removes the tag at an index
type DeleteTagCommand struct {
	widget *application.Widget
	Index  int
}

// NewDeleteTagCommand creates a new DeleteTagCommand
func NewDeleteTagCommand(widget *application.Widget, index int) *DeleteTagCommand {
	return &DeleteTagCommand{
		widget: widget,
		Index:  index,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteTagCommand) Validate() error {
	return application.ValidateIndex("index", c.Index, len(c.widget.Tags()))
}

// Execute runs the delete command
func (c *DeleteTagCommand) Execute(ctx context.Context) (*TagsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	tag, deleted, err := c.widget.DeleteAt(ctx, c.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to delete: %w", err)
	}
	if !deleted {
		return tagsResult(c.widget, fmt.Sprintf("No tag at %d, nothing deleted", c.Index)), nil
	}
	return tagsResult(c.widget, fmt.Sprintf("Deleted %s", tag)), nil
}

// RenameTagCommand replaces the tag at an index
type RenameTagCommand struct {
	widget *application.Widget
	Index  int
	Value  string
}

// NewRenameTagCommand creates a new RenameTagCommand
func NewRenameTagCommand(widget *application.Widget, index int, value string) *RenameTagCommand {
	return &RenameTagCommand{
		widget: widget,
		Index:  index,
		Value:  value,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameTagCommand) Validate() error {
	if err := application.ValidateRequired("value", c.Value); err != nil {
		return err
	}
	return application.ValidateIndex("index", c.Index, len(c.widget.Tags()))
}

// Execute runs the rename command
func (c *RenameTagCommand) Execute(ctx context.Context) (*TagsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	value := strings.TrimSpace(c.Value)
	renamed, err := c.widget.RenameAt(ctx, c.Index, value)
	if err != nil {
		return nil, fmt.Errorf("failed to rename: %w", err)
	}
	if !renamed {
		return tagsResult(c.widget, fmt.Sprintf("No tag at %d, nothing renamed", c.Index)), nil
	}
	return tagsResult(c.widget, fmt.Sprintf("Renamed tag %d to %s", c.Index, value)), nil
}

// MoveTagCommand moves a tag next to another one
type MoveTagCommand struct {
	widget *application.Widget
	Source int
	Target int
	Side   string // "left" or "right"
}

// NewMoveTagCommand creates a new MoveTagCommand
func NewMoveTagCommand(widget *application.Widget, source, target int, side string) *MoveTagCommand {
	return &MoveTagCommand{
		widget: widget,
		Source: source,
		Target: target,
		Side:   side,
	}
}

// Validate checks if the move operation is valid
func (c *MoveTagCommand) Validate() error {
	n := len(c.widget.Tags())
	if err := application.ValidateIndex("sourceIndex", c.Source, n); err != nil {
		return err
	}
	if err := application.ValidateIndex("targetIndex", c.Target, n); err != nil {
		return err
	}
	if _, ok := domain.ParseDropSide(c.Side); !ok {
		return &application.ValidationError{
			Field:   "side",
			Message: fmt.Sprintf("expected left or right, got: %s", c.Side),
		}
	}
	return nil
}

// Execute runs the move command
func (c *MoveTagCommand) Execute(ctx context.Context) (*TagsResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	side, _ := domain.ParseDropSide(c.Side)
	moved, err := c.widget.MoveByDrag(ctx, c.Source, c.Target, side)
	if err != nil {
		return nil, fmt.Errorf("failed to move: %w", err)
	}
	if !moved {
		return tagsResult(c.widget, fmt.Sprintf("Tag %d not moved", c.Source)), nil
	}
	return tagsResult(c.widget, fmt.Sprintf("Moved tag %d to the %s of %d", c.Source, side, c.Target)), nil
}

// ClearTagsCommand removes every selected tag
type ClearTagsCommand struct {
	widget *application.Widget
}

// NewClearTagsCommand creates a new ClearTagsCommand
func NewClearTagsCommand(widget *application.Widget) *ClearTagsCommand {
	return &ClearTagsCommand{widget: widget}
}

// Execute runs the clear command
func (c *ClearTagsCommand) Execute(ctx context.Context) (*TagsResult, error) {
	if err := c.widget.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear: %w", err)
	}
	return tagsResult(c.widget, "Cleared all tags"), nil
}

package commands

import (
	"context"

	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
)

// GroupSummary describes one top-level category
type GroupSummary struct {
	Name        string
	Items       int // items anywhere below the category
	HasChildren bool
}

// ListGroupsCommand lists the top-level categories in payload order
type ListGroupsCommand struct {
	widget *application.Widget
}

// NewListGroupsCommand creates a new ListGroupsCommand
func NewListGroupsCommand(widget *application.Widget) *ListGroupsCommand {
	return &ListGroupsCommand{widget: widget}
}

// Execute runs the list groups command
func (c *ListGroupsCommand) Execute(ctx context.Context) ([]GroupSummary, error) {
	taxonomy := c.widget.Taxonomy()
	if taxonomy == nil {
		return nil, application.ErrNotReady
	}

	groups := taxonomy.Groups()
	summaries := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, GroupSummary{
			Name:        g.Name,
			Items:       len(g.Items),
			HasChildren: taxonomy.NodeHasChildren(g.Path()),
		})
	}
	return summaries, nil
}

// TreeEntry is one row of a flattened taxonomy tree
type TreeEntry struct {
	Path        domain.Path
	Depth       int // 0 for categories
	HasChildren bool
	DirectItems int
}

// TreeCommand flattens the taxonomy below Root (or all of it) depth first
type TreeCommand struct {
	widget *application.Widget
	Root   string // ">"-joined path, empty for every category
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(widget *application.Widget, root string) *TreeCommand {
	return &TreeCommand{
		widget: widget,
		Root:   root,
	}
}

// Execute runs the tree command
func (c *TreeCommand) Execute(ctx context.Context) ([]TreeEntry, error) {
	taxonomy := c.widget.Taxonomy()
	if taxonomy == nil {
		return nil, application.ErrNotReady
	}

	var entries []TreeEntry
	if c.Root == "" {
		for _, g := range taxonomy.Groups() {
			entries = appendTree(entries, taxonomy, g.Path())
		}
		return entries, nil
	}

	root := domain.ParsePath(c.Root)
	if !taxonomy.Contains(root) {
		return nil, &application.PathError{Path: c.Root}
	}
	return appendTree(entries, taxonomy, root), nil
}

func appendTree(entries []TreeEntry, taxonomy *domain.Taxonomy, path domain.Path) []TreeEntry {
	entries = append(entries, TreeEntry{
		Path:        path,
		Depth:       path.Depth() - 1,
		HasChildren: taxonomy.NodeHasChildren(path),
		DirectItems: len(taxonomy.ItemsForPath(path)),
	})
	for _, child := range taxonomy.Children(path) {
		entries = appendTree(entries, taxonomy, child.Path)
	}
	return entries
}

// ItemsCommand lists the visible items of a path
type ItemsCommand struct {
	widget *application.Widget
	Path   string // ">"-joined; empty keeps the current selection
	Filter string
}

// NewItemsCommand creates a new ItemsCommand
func NewItemsCommand(widget *application.Widget, path, filter string) *ItemsCommand {
	return &ItemsCommand{
		widget: widget,
		Path:   path,
		Filter: filter,
	}
}

// Execute selects Path when given, applies the filter and returns the items
func (c *ItemsCommand) Execute(ctx context.Context) ([]domain.Item, error) {
	if c.Path != "" {
		if err := c.widget.Select(domain.ParsePath(c.Path)); err != nil {
			return nil, err
		}
	} else if c.widget.Selection() == nil {
		return nil, &application.ValidationError{
			Field:   "path",
			Message: "no path selected",
		}
	}

	c.widget.SetFilter(c.Filter)
	return c.widget.VisibleItems(), nil
}

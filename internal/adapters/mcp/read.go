package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"promptbuilder/internal/application"
	"promptbuilder/internal/application/commands"
	"promptbuilder/internal/domain"
)

// RegisterReadTools adds the taxonomy browsing tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, widget *application.Widget) {
	s.AddTool(groupsTool(), groupsHandler(widget))
	s.AddTool(treeTool(), treeHandler(widget))
	s.AddTool(itemsTool(), itemsHandler(widget))
	s.AddTool(searchTool(), searchHandler(widget))
	s.AddTool(selectedTool(), selectedHandler(widget))
	s.AddTool(promptTool(), promptHandler(widget))
}

// --- groups ---

func groupsTool() mcp.Tool {
	return mcp.NewTool("groups",
		mcp.WithDescription("List the top-level tag categories in data order, with their item counts."),
	)
}

func groupsHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groups, err := commands.NewListGroupsCommand(widget).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(groups, formatGroup)
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the category hierarchy as a tree. Paths use '>' between levels."),
		mcp.WithString("root",
			mcp.Description("Path to start from (e.g. Jobs>Fantasy). Omit for every category."),
		),
	)
}

func treeHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := commands.NewTreeCommand(widget, req.GetString("root", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(entries, formatTreeEntry)
	}
}

// --- items ---

func itemsTool() mcp.Tool {
	return mcp.NewTool("items",
		mcp.WithDescription("List the tags under a path. Selects the path; without one the current selection is used."),
		mcp.WithString("path",
			mcp.Description("Path to list (e.g. Jobs>Fantasy)"),
		),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive substring filter"),
		),
	)
}

func itemsHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewItemsCommand(widget, req.GetString("path", ""), req.GetString("filter", ""))
		items, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(items, func(i domain.Item) string {
			return formatItem(widget, i)
		})
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search every category for tags. Returns tags with their paths."),
		mcp.WithString("query",
			mcp.Description("Search query (at least two characters)"),
			mcp.Required(),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)"),
		),
	)
}

func searchHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(widget, query, req.GetInt("limit", 20)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s\n", r.Value, r.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- selected ---

func selectedTool() mcp.Tool {
	return mcp.NewTool("selected",
		mcp.WithDescription("Show the picked tags with their indices, in prompt order."),
	)
}

func selectedHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tags := widget.Tags()
		if len(tags) == 0 {
			return mcp.NewToolResultText("No tags selected."), nil
		}
		var sb strings.Builder
		for i, tag := range tags {
			fmt.Fprintf(&sb, "%d  %s\n", i, tag)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- prompt ---

func promptTool() mcp.Tool {
	return mcp.NewTool("prompt",
		mcp.WithDescription("Return the serialized prompt: tags joined by ', ' with parentheses escaped. With a template, replaces <pbprompt> in it."),
		mcp.WithString("template",
			mcp.Description("Prompt containing the <pbprompt> placeholder"),
		),
	)
}

func promptHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		template := req.GetString("template", "")
		if template == "" {
			return mcp.NewToolResultText(widget.Serialized()), nil
		}

		rendered, err := commands.NewRenderCommand(template, widget.Tags()).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(rendered), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatGroup(g commands.GroupSummary) string {
	if g.HasChildren {
		return fmt.Sprintf("%s  (%d tags, nested)", g.Name, g.Items)
	}
	return fmt.Sprintf("%s  (%d tags)", g.Name, g.Items)
}

func formatTreeEntry(e commands.TreeEntry) string {
	name := e.Path[len(e.Path)-1]
	if e.DirectItems > 0 {
		return fmt.Sprintf("%s%s  (%d)", strings.Repeat("  ", e.Depth), name, e.DirectItems)
	}
	return strings.Repeat("  ", e.Depth) + name
}

func formatItem(widget *application.Widget, i domain.Item) string {
	line := i.Value
	if widget.IsPicked(i.Value) {
		line = "* " + line
	}
	if url, ok := widget.DanbooruURL(i.Value); ok {
		line += "  " + url
	}
	return line
}

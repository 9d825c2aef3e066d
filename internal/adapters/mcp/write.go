package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"promptbuilder/internal/application"
	"promptbuilder/internal/application/commands"
)

// RegisterWriteTools adds the navigation and tag editing tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, widget *application.Widget) {
	s.AddTool(navigateTool(), navigateHandler(widget))
	s.AddTool(pickTool(), pickHandler(widget))
	s.AddTool(deleteTagTool(), deleteTagHandler(widget))
	s.AddTool(renameTagTool(), renameTagHandler(widget))
	s.AddTool(moveTagTool(), moveTagHandler(widget))
	s.AddTool(clearTagsTool(), clearTagsHandler(widget))
}

// --- navigate ---

func navigateTool() mcp.Tool {
	return mcp.NewTool("navigate",
		mcp.WithDescription("Open a category or subgroup the way a click does: expands it and, when it only holds subgroups, descends to the first one."),
		mcp.WithString("path",
			mcp.Description("Path to open (e.g. Jobs or Jobs>Fantasy)"),
			mcp.Required(),
		),
	)
}

func navigateHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewNavigateCommand(widget, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- pick ---

func pickTool() mcp.Tool {
	return mcp.NewTool("pick",
		mcp.WithDescription("Append a tag to the prompt. Tags may repeat."),
		mcp.WithString("tag",
			mcp.Description("Tag to append"),
			mcp.Required(),
		),
	)
}

func pickHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewPickCommand(widget, req.GetString("tag", "")).Execute(ctx)
		return tagsResult(result, err)
	}
}

// --- delete_tag ---

func deleteTagTool() mcp.Tool {
	return mcp.NewTool("delete_tag",
		mcp.WithDescription("Remove the tag at an index (see the selected tool)."),
		mcp.WithNumber("index",
			mcp.Description("Zero-based tag index"),
			mcp.Required(),
		),
	)
}

func deleteTagHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteTagCommand(widget, req.GetInt("index", -1)).Execute(ctx)
		return tagsResult(result, err)
	}
}

// --- rename_tag ---

func renameTagTool() mcp.Tool {
	return mcp.NewTool("rename_tag",
		mcp.WithDescription("Replace the text of the tag at an index."),
		mcp.WithNumber("index",
			mcp.Description("Zero-based tag index"),
			mcp.Required(),
		),
		mcp.WithString("value",
			mcp.Description("New tag text"),
			mcp.Required(),
		),
	)
}

func renameTagHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRenameTagCommand(widget, req.GetInt("index", -1), req.GetString("value", ""))
		result, err := cmd.Execute(ctx)
		return tagsResult(result, err)
	}
}

// --- move_tag ---

func moveTagTool() mcp.Tool {
	return mcp.NewTool("move_tag",
		mcp.WithDescription("Move a tag next to another one, as dropping it on the left or right half of the target."),
		mcp.WithNumber("source",
			mcp.Description("Index of the tag to move"),
			mcp.Required(),
		),
		mcp.WithNumber("target",
			mcp.Description("Index of the tag to drop on"),
			mcp.Required(),
		),
		mcp.WithString("side",
			mcp.Description("left or right"),
			mcp.Enum("left", "right"),
			mcp.Required(),
		),
	)
}

func moveTagHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewMoveTagCommand(widget,
			req.GetInt("source", -1),
			req.GetInt("target", -1),
			req.GetString("side", ""),
		)
		result, err := cmd.Execute(ctx)
		return tagsResult(result, err)
	}
}

// --- clear_tags ---

func clearTagsTool() mcp.Tool {
	return mcp.NewTool("clear_tags",
		mcp.WithDescription("Remove every picked tag."),
	)
}

func clearTagsHandler(widget *application.Widget) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewClearTagsCommand(widget).Execute(ctx)
		return tagsResult(result, err)
	}
}

func tagsResult(result *commands.TagsResult, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return toolError(err)
	}
	text := result.Message
	if result.Serialized != "" {
		text += "\n" + result.Serialized
	}
	return mcp.NewToolResultText(text), nil
}

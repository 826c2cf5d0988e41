package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"reelcut/internal/application/commands"
	"reelcut/internal/ports"
)

// RegisterWriteTools adds the mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.EditStore, render ports.RenderService) {
	s.AddTool(submitExportTool(), submitExportHandler(store, render))
	s.AddTool(renameEditTool(), renameEditHandler(store))
	s.AddTool(deleteEditTool(), deleteEditHandler(store))
	s.AddTool(generateEDLTool(), generateEDLHandler(store))
}

// --- submit_export ---

func submitExportTool() mcp.Tool {
	return mcp.NewTool("submit_export",
		mcp.WithDescription("Submit a saved edit to the render pipeline. Returns a job id to poll with export_status."),
		mcp.WithString("id",
			mcp.Description("Edit id as returned by list_edits"),
			mcp.Required(),
		),
	)
}

func submitExportHandler(store ports.EditStore, render ports.RenderService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		cmd := commands.NewSubmitExportCommand(store, render, id)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rename_edit ---

func renameEditTool() mcp.Tool {
	return mcp.NewTool("rename_edit",
		mcp.WithDescription("Change the title of a saved edit."),
		mcp.WithString("id",
			mcp.Description("Edit id as returned by list_edits"),
			mcp.Required(),
		),
		mcp.WithString("title",
			mcp.Description("New project title"),
			mcp.Required(),
		),
	)
}

func renameEditHandler(store ports.EditStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		title := req.GetString("title", "")

		cmd := commands.NewRenameEditCommand(store, id, title)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_edit ---

func deleteEditTool() mcp.Tool {
	return mcp.NewTool("delete_edit",
		mcp.WithDescription("Delete a saved edit. Deleting an unknown id is not an error."),
		mcp.WithString("id",
			mcp.Description("Edit id as returned by list_edits"),
			mcp.Required(),
		),
	)
}

func deleteEditHandler(store ports.EditStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		cmd := commands.NewDeleteEditCommand(store, id)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- generate_edl ---

func generateEDLTool() mcp.Tool {
	return mcp.NewTool("generate_edl",
		mcp.WithDescription("Generate a CMX 3600 EDL from a saved edit's video track, for handoff to a conforming tool."),
		mcp.WithString("id",
			mcp.Description("Edit id as returned by list_edits"),
			mcp.Required(),
		),
	)
}

func generateEDLHandler(store ports.EditStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		cmd := commands.NewGenerateEDLCommand(store, id)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.EDL), nil
	}
}

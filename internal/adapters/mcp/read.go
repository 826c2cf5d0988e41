package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"reelcut/internal/application/commands"
	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.EditStore, catalog ports.Catalog, render ports.RenderService) {
	s.AddTool(catalogTool(), catalogHandler(catalog))
	s.AddTool(listEditsTool(), listEditsHandler(store))
	s.AddTool(showEditTool(), showEditHandler(store))
	s.AddTool(exportStatusTool(), exportStatusHandler(render))
}

// --- catalog ---

func catalogTool() mcp.Tool {
	return mcp.NewTool("catalog",
		mcp.WithDescription("List the source videos available for editing, with their ids and durations."),
	)
}

func catalogHandler(catalog ports.Catalog) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videos, err := catalog.List(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(videos) == 0 {
			return mcp.NewToolResultText("No source videos available."), nil
		}
		var sb strings.Builder
		for _, v := range videos {
			fmt.Fprintf(&sb, "%s  %s  %.1fs\n", v.ID, v.Title, v.Duration)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_edits ---

func listEditsTool() mcp.Tool {
	return mcp.NewTool("list_edits",
		mcp.WithDescription("List saved edits, newest first. Optionally filter by source video id."),
		mcp.WithString("video_id",
			mcp.Description("Only list edits of this source video. Omit to list all."),
		),
	)
}

func listEditsHandler(store ports.EditStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		videoID := req.GetString("video_id", "")

		edits, err := commands.NewListEditsCommand(store, videoID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, e := range edits {
			fmt.Fprintf(&sb, "%s  %s  (video %s, updated %s)\n",
				e.ID, e.Title, e.VideoID, e.UpdatedAt.Format("2006-01-02 15:04"))
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("No edits found."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- show_edit ---

func showEditTool() mcp.Tool {
	return mcp.NewTool("show_edit",
		mcp.WithDescription("Show a saved edit: its timeline tracks, clips, trim points and positions."),
		mcp.WithString("id",
			mcp.Description("Edit id as returned by list_edits"),
			mcp.Required(),
		),
	)
}

func showEditHandler(store ports.EditStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")

		cmd := commands.NewShowEditCommand(store, id)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatProject(result.Project)), nil
	}
}

// --- export_status ---

func exportStatusTool() mcp.Tool {
	return mcp.NewTool("export_status",
		mcp.WithDescription("Check the status of an export job by its id."),
		mcp.WithString("job_id",
			mcp.Description("Job id returned by submit_export"),
			mcp.Required(),
		),
	)
}

func exportStatusHandler(render ports.RenderService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jobID := req.GetString("job_id", "")
		if jobID == "" {
			return toolError(fmt.Errorf("job_id is required"))
		}

		job, err := render.GetJob(ctx, jobID)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Job %s: %s", job.ID, job.Status)
		if job.Status == ports.JobStatusRunning {
			fmt.Fprintf(&sb, " (%d%%)", job.Progress)
		}
		if job.Error != "" {
			fmt.Fprintf(&sb, "\nError: %s", job.Error)
		}
		if job.OutputURL != "" {
			fmt.Fprintf(&sb, "\nOutput: %s", job.OutputURL)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatProject(p *domain.Project) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  (%.1fs, %dx%d @ %.4g fps)\n",
		p.Title, p.Duration, p.VideoWidth, p.VideoHeight, p.Framerate)
	for _, track := range p.Tracks {
		fmt.Fprintf(&sb, "  [%s] %s\n", track.Type, track.Name)
		for _, clip := range track.Clips {
			state := ""
			if clip.Muted {
				state = "  muted"
			}
			fmt.Fprintf(&sb, "    %s  src %.1f-%.1f  at %.1f  vol %.0f%%%s\n",
				clip.VideoID, clip.StartTime, clip.EndTime, clip.Position,
				clip.Volume*100, state)
		}
	}
	return sb.String()
}

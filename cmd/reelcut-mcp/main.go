package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"reelcut/internal/adapters/catalog"
	mcpadapter "reelcut/internal/adapters/mcp"
	"reelcut/internal/adapters/render"
	"reelcut/internal/adapters/sqlite"
	"reelcut/internal/config"
	"reelcut/internal/ports"
)

func main() {
	dbFlag := flag.String("db", config.DBPath(), "path to the edit database")
	catalogFlag := flag.String("catalog", "", "catalog base URL (empty uses the media dir or the built-in fixture)")
	mediaFlag := flag.String("media", config.MediaDir(), "local media directory to scan for sources")
	renderFlag := flag.String("render", config.RenderURL(), "render service base URL")
	flag.Parse()

	store, err := sqlite.Open(*dbFlag)
	if err != nil {
		log.Fatalf("reelcut-mcp: %v", err)
	}
	defer store.Close()

	var cat ports.Catalog
	switch {
	case *catalogFlag != "":
		cat = catalog.NewHTTPClient(*catalogFlag, nil)
	case *mediaFlag != "":
		cat = catalog.NewDirectory(*mediaFlag, nil)
	default:
		cat = catalog.NewFixture()
	}
	renderClient := render.NewHTTPClient(*renderFlag, nil)

	mcpServer := server.NewMCPServer(
		"reelcut-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store, cat, renderClient)
	mcpadapter.RegisterWriteTools(mcpServer, store, renderClient)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("reelcut-mcp: %v", err)
	}
}

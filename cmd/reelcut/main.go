package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"reelcut/internal/adapters/catalog"
	"reelcut/internal/adapters/mediaplayer"
	"reelcut/internal/adapters/render"
	"reelcut/internal/adapters/sqlite"
	"reelcut/internal/adapters/tui"
	"reelcut/internal/config"
	"reelcut/internal/domain"
	"reelcut/internal/editor"
	"reelcut/internal/logging"
	"reelcut/internal/ports"
)

func main() {
	logger := logging.NewLogger(config.LogLevel())

	store, err := sqlite.Open(config.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening edit store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var cat ports.Catalog
	switch {
	case config.MediaDir() != "":
		cat = catalog.NewDirectory(config.MediaDir(), logging.WithComponent(logger, "catalog"))
	case os.Getenv(config.EnvCatalogURL) != "":
		cat = catalog.NewHTTPClient(config.CatalogURL(), logging.WithComponent(logger, "catalog"))
	default:
		cat = catalog.NewFixture()
	}

	renderClient := render.NewHTTPClient(config.RenderURL(), logging.WithComponent(logger, "render"))
	player := mediaplayer.New()
	scale := domain.NewTimescale(config.PixelsPerSecond())

	session := editor.NewSession(scale, store, renderClient, player, logging.WithComponent(logger, "session"))
	jobs := editor.NewJobTracker(renderClient, logging.WithComponent(logger, "jobs"))

	app := tui.NewApp(cat, session, jobs)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"reelcut/internal/domain"
)

// videoExtensions are the file types picked up by a directory scan
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
}

// Directory implements ports.Catalog by scanning a local folder of video
// files. Durations are unknown at scan time, so clips cut from these
// sources start at the editor's default length.
type Directory struct {
	path   string
	logger *slog.Logger
}

// NewDirectory creates a catalogue over a local media folder
func NewDirectory(path string, logger *slog.Logger) *Directory {
	return &Directory{path: path, logger: logger}
}

// List scans the directory and returns one source per video file,
// sorted by name.
func (d *Directory) List(_ context.Context) ([]domain.SourceVideo, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("reading media directory: %w", err)
	}

	var videos []domain.SourceVideo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !videoExtensions[ext] {
			continue
		}

		abs, err := filepath.Abs(filepath.Join(d.path, name))
		if err != nil {
			abs = filepath.Join(d.path, name)
		}
		base := strings.TrimSuffix(name, filepath.Ext(name))
		videos = append(videos, domain.SourceVideo{
			ID:       base,
			Title:    humanize(base),
			VideoURL: "file://" + filepath.ToSlash(abs),
		})
	}

	sort.Slice(videos, func(i, j int) bool {
		return videos[i].ID < videos[j].ID
	})

	if d.logger != nil {
		d.logger.Debug("scanned media directory", "path", d.path, "videos", len(videos))
	}
	return videos, nil
}

// humanize turns a file base name into a display title
func humanize(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.TrimSpace(name)
}

package application

import (
	"fmt"
	"strings"

	"reelcut/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateProject checks that a project is structurally sound enough to
// persist or submit for rendering. The editor keeps these invariants by
// construction; this guards projects arriving from storage or over MCP.
func ValidateProject(p *domain.Project) error {
	if p == nil {
		return &ValidationError{Field: "project", Message: "project is required"}
	}
	if len(p.Tracks) == 0 {
		return &ValidationError{Field: "tracks", Message: "project has no tracks"}
	}
	for _, track := range p.Tracks {
		if track.ID == "" {
			return &ValidationError{Field: "track.id", Message: "track is missing an id"}
		}
		for _, clip := range track.Clips {
			if err := validateClip(clip); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateClip(c *domain.Clip) error {
	switch {
	case c.ID == "":
		return &ValidationError{Field: "clip.id", Message: "clip is missing an id"}
	case c.StartTime < 0:
		return &ValidationError{
			Field:   "clip.startTime",
			Message: fmt.Sprintf("clip %s has negative start time %.3f", c.ID, c.StartTime),
		}
	case c.EndTime <= c.StartTime:
		return &ValidationError{
			Field:   "clip.endTime",
			Message: fmt.Sprintf("clip %s has end %.3f at or before start %.3f", c.ID, c.EndTime, c.StartTime),
		}
	case c.Position < 0:
		return &ValidationError{
			Field:   "clip.position",
			Message: fmt.Sprintf("clip %s has negative position %.3f", c.ID, c.Position),
		}
	case c.Volume < 0 || c.Volume > 1:
		return &ValidationError{
			Field:   "clip.volume",
			Message: fmt.Sprintf("clip %s has volume %.3f outside [0, 1]", c.ID, c.Volume),
		}
	}
	return nil
}

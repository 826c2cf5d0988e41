package views

import (
	"fmt"
	"math"

	"reelcut/internal/domain"
	"reelcut/internal/editor"
)

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and banner handling.
type ViewState struct {
	Width  int
	Height int
	Banner *editor.Banner
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetBanner sets a transient status banner to display in the view
func (s *ViewState) SetBanner(b editor.Banner) {
	s.Banner = &b
}

// ClearBanner clears the current banner
func (s *ViewState) ClearBanner() {
	s.Banner = nil
}

// Switch messages emitted by views and handled by the app

// SwitchToEditorMsg opens the editor on a freshly selected source
type SwitchToEditorMsg struct {
	Source domain.SourceVideo
}

// SwitchToPickerMsg returns to the source picker, discarding the open project
type SwitchToPickerMsg struct{}

// SwitchToHelpMsg shows the key reference
type SwitchToHelpMsg struct{}

// FormatTimecode renders seconds as m:ss.t for the transport bar. Rounding
// to tenths happens before the minute split so 59.96 carries to 1:00.0
// instead of printing 0:60.0.
func FormatTimecode(sec float64) string {
	if sec < 0 {
		sec = 0
	}
	tenths := int(math.Round(sec * 10))
	minutes := tenths / 600
	rest := float64(tenths%600) / 10
	return fmt.Sprintf("%d:%04.1f", minutes, rest)
}

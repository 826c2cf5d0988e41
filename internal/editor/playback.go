package editor

import (
	"reelcut/internal/domain"
	"reelcut/internal/ports"
)

// PlaybackState is a snapshot of the playback controller
type PlaybackState struct {
	Playing     bool
	CurrentTime float64
	Volume      float64
	Muted       bool
	Rate        float64
}

// PlaybackController keeps the media player's clock and the timeline's
// logical current time in sync. While playing, the player is authoritative
// and CurrentTime is overwritten from its tick notifications; Seek is the
// one path where the controller writes the clock instead.
type PlaybackController struct {
	player  ports.MediaPlayer
	project *domain.Project
	scale   domain.Timescale
	state   PlaybackState
}

// NewPlaybackController creates a controller bound to the player and the
// project whose duration bounds seeking.
func NewPlaybackController(player ports.MediaPlayer, project *domain.Project, scale domain.Timescale) *PlaybackController {
	return &PlaybackController{
		player:  player,
		project: project,
		scale:   scale,
		state:   PlaybackState{Volume: 1, Rate: 1},
	}
}

// State returns the current playback snapshot
func (p *PlaybackController) State() PlaybackState {
	return p.state
}

// TogglePlay flips between playing and paused
func (p *PlaybackController) TogglePlay() {
	if p.state.Playing {
		p.Pause()
	} else {
		p.Play()
	}
}

// Play starts the player's clock
func (p *PlaybackController) Play() {
	if p.state.Playing {
		return
	}
	p.player.Play()
	p.state.Playing = true
}

// Pause stops the player's clock
func (p *PlaybackController) Pause() {
	if !p.state.Playing {
		return
	}
	p.player.Pause()
	p.state.Playing = false
}

// OnTimeUpdate ingests a time-advanced notification from the player. The
// logical time is overwritten from the player, never the other way around.
// Reaching the end of the composition pauses playback at the boundary.
func (p *PlaybackController) OnTimeUpdate(t float64) {
	if end := p.project.Duration; t >= end {
		t = end
		if p.state.Playing {
			p.player.Pause()
			p.player.Seek(end)
			p.state.Playing = false
		}
	}
	p.state.CurrentTime = t
}

// Tick polls the player's clock and ingests it as a time update. No-op
// while paused, so a stale tick cannot fight a seek.
func (p *PlaybackController) Tick() {
	if !p.state.Playing {
		return
	}
	p.OnTimeUpdate(p.player.CurrentTime())
}

// Seek writes t into the player's clock authoritatively, clamped to the
// composition's bounds, and updates the logical time immediately.
func (p *PlaybackController) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	if end := p.project.Duration; t > end {
		t = end
	}
	p.player.Seek(t)
	p.state.CurrentTime = t
}

// SeekPixel seeks to the time under a ruler click's pixel offset
func (p *PlaybackController) SeekPixel(x float64) {
	p.Seek(p.scale.PixelToTime(x))
}

// SetVolume sets the preview volume, clamped to [0, 1]
func (p *PlaybackController) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.player.SetVolume(v)
	p.state.Volume = v
}

// ToggleMute flips the mute flag and mirrors it onto the player
func (p *PlaybackController) ToggleMute() {
	p.state.Muted = !p.state.Muted
	p.player.SetMuted(p.state.Muted)
}

// SetRate sets the playback rate. Non-positive rates are ignored.
func (p *PlaybackController) SetRate(rate float64) {
	if rate <= 0 {
		return
	}
	p.player.SetRate(rate)
	p.state.Rate = rate
}

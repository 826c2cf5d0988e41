// Package mediaplayer provides a logical preview clock implementing
// ports.MediaPlayer. No media is decoded; the clock advances with wall
// time while playing, scaled by the playback rate.
package mediaplayer

import (
	"sync"
	"time"
)

// Clock is a simulated media element. Safe for concurrent use: the TUI's
// tick commands read the time from a different goroutine than Update.
type Clock struct {
	mu        sync.Mutex
	playing   bool
	base      float64
	startedAt time.Time
	rate      float64
	volume    float64
	muted     bool
	now       func() time.Time
}

// New returns a paused clock at t=0
func New() *Clock {
	return &Clock{rate: 1, volume: 1, now: time.Now}
}

// Play starts the clock
func (c *Clock) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		return
	}
	c.playing = true
	c.startedAt = c.now()
}

// Pause freezes the clock at its current time
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return
	}
	c.base = c.currentLocked()
	c.playing = false
}

// Seek sets the clock, playing or not
func (c *Clock) Seek(t float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t < 0 {
		t = 0
	}
	c.base = t
	c.startedAt = c.now()
}

// SetVolume stores the preview volume
func (c *Clock) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.volume = v
}

// SetMuted stores the mute flag
func (c *Clock) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// SetRate sets the playback rate for subsequent clock advancement
func (c *Clock) SetRate(rate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rate <= 0 {
		return
	}
	if c.playing {
		// Re-anchor so the rate change applies from now on
		c.base = c.currentLocked()
		c.startedAt = c.now()
	}
	c.rate = rate
}

// CurrentTime returns the clock's current position in seconds
func (c *Clock) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked()
}

func (c *Clock) currentLocked() float64 {
	if !c.playing {
		return c.base
	}
	return c.base + c.now().Sub(c.startedAt).Seconds()*c.rate
}

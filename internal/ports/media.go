package ports

// MediaPlayer is the preview clock the playback controller drives. It is a
// logical clock only, no decoding happens behind this interface. While
// playing, the player is the source of truth for the current time; Seek is
// the one path where the caller writes the clock authoritatively.
type MediaPlayer interface {
	Play()
	Pause()
	Seek(t float64)
	SetVolume(v float64)
	SetMuted(muted bool)
	SetRate(rate float64)
	CurrentTime() float64
}

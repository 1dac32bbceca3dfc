package core

// Cue is a named audio trigger. Games emit cues, the platform decides
// whether and how to play them.
type Cue int

const (
	CueNone Cue = iota
	CueFishCaught
	CueMusicStart
	CueMusicStop
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueFishCaught:
		return "fish_caught"
	case CueMusicStart:
		return "music_start"
	case CueMusicStop:
		return "music_stop"
	default:
		return "none"
	}
}

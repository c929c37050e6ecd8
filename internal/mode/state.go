// Package mode holds the display-mode state and the per-frame energy and
// background state machines.
package mode

import "github.com/iburimskiy/sonic-cloud/internal/playlist"

type Kind int

const (
	ToggleBackground Kind = iota + 1
	TogglePoints
	ToggleBands
	NextTrack
	NextImage
	ToggleRainbows
	ToggleTrails
	// SelectTrack jumps to Command.Cursor, used after a track is added.
	SelectTrack
)

func (k Kind) String() string {
	switch k {
	case ToggleBackground:
		return "toggle-background"
	case TogglePoints:
		return "toggle-points"
	case ToggleBands:
		return "toggle-bands"
	case NextTrack:
		return "next-track"
	case NextImage:
		return "next-image"
	case ToggleRainbows:
		return "toggle-rainbows"
	case ToggleTrails:
		return "toggle-trails"
	case SelectTrack:
		return "select-track"
	}
	return "unknown"
}

// Command is a discrete input event. Input handlers queue commands; the
// frame loop applies them before updating.
type Command struct {
	Kind   Kind
	Cursor playlist.Cursor
}

// State is the display configuration for one frame. It is a value: Apply
// returns a new State and leaves the receiver untouched.
type State struct {
	ShowBackground bool
	ShowPoints     bool
	ShowBands      bool
	ShowRainbows   bool
	ShowTrails     bool

	// RainbowToggle enables ToggleRainbows; off by default.
	RainbowToggle bool

	Audio playlist.Cursor
	Image playlist.Cursor
}

func NewState(audio, image playlist.Cursor, rainbowToggle bool) State {
	return State{
		ShowBackground: true,
		ShowPoints:     true,
		ShowBands:      true,
		RainbowToggle:  rainbowToggle,
		Audio:          audio,
		Image:          image,
	}
}

// Reactive reports whether a layer that drives the background is visible.
func (s State) Reactive() bool { return s.ShowBands || s.ShowRainbows }

func (s State) Apply(c Command) State {
	switch c.Kind {
	case ToggleBackground:
		s.ShowBackground = !s.ShowBackground
	case TogglePoints:
		s.ShowPoints = !s.ShowPoints
		if s.ShowPoints {
			s.ShowRainbows = false
		}
	case ToggleBands:
		s.ShowBands = !s.ShowBands
	case NextTrack:
		s.Audio = s.Audio.Next()
	case NextImage:
		s.Image = s.Image.Next()
	case ToggleRainbows:
		if !s.RainbowToggle {
			break
		}
		s.ShowRainbows = !s.ShowRainbows
		if s.ShowRainbows {
			s.ShowPoints = false
		}
	case ToggleTrails:
		s.ShowTrails = !s.ShowTrails
	case SelectTrack:
		if c.Cursor.Valid() {
			s.Audio = c.Cursor
		}
	}
	return s
}

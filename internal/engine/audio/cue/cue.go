// Package cue names the feedback sounds. It has no audio dependencies so the
// packages that request sounds can be built and tested without a device.
package cue

import "fmt"

// Cue names a feedback sound.
type Cue int

const (
	Hover  Cue = iota // Short high tick when the pointer enters an object
	Click             // Descending pop on click
	Whoosh            // Filtered noise sweep at the start of a camera flight
	count
)

func (c Cue) String() string {
	switch c {
	case Hover:
		return "hover"
	case Click:
		return "click"
	case Whoosh:
		return "whoosh"
	default:
		return fmt.Sprintf("cue(%d)", int(c))
	}
}

// All returns every cue.
func All() []Cue {
	return []Cue{Hover, Click, Whoosh}
}

// Parse converts a cue name to a Cue.
func Parse(name string) (Cue, error) {
	for c := Cue(0); c < count; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown cue %q", name)
}

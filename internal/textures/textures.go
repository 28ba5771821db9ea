// Package textures draws the placeholder assets. Every function is pure: the
// same arguments always yield the same pixels.
package textures

import (
	"fmt"
	"image/color"
)

// State selects the variant of a multi-state HUD icon.
type State int

const (
	Full State = iota
	Half
	Empty
)

// States lists the icon variants in manifest order.
var States = []State{Full, Half, Empty}

func (s State) String() string {
	switch s {
	case Full:
		return "full"
	case Half:
		return "half"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) valid() bool { return s >= Full && s <= Empty }

func rgba(r, g, b, a uint8) color.NRGBA { return color.NRGBA{R: r, G: g, B: b, A: a} }

func rgb(r, g, b uint8) color.NRGBA { return rgba(r, g, b, 0xFF) }

// named converts an opaque colornames entry.
func named(c color.RGBA) color.NRGBA { return rgb(c.R, c.G, c.B) }

var white = rgb(255, 255, 255)

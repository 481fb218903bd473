// Package core provides the core game logic for the Pipes puzzle game.
// This package is UI-agnostic and deterministic.
package core

import (
	"fmt"
	"strings"
)

// Direction is one of the four sides of a grid cell.
type Direction uint8

const (
	DirTop Direction = iota
	DirRight
	DirBottom
	DirLeft
)

// AllDirections lists the directions in clockwise order starting at the top.
var AllDirections = [4]Direction{DirTop, DirRight, DirBottom, DirLeft}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case DirTop:
		return "Top"
	case DirRight:
		return "Right"
	case DirBottom:
		return "Bottom"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dRow, dCol) offset of the neighbor in this direction.
// Top decreases the row, Bottom increases it.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case DirTop:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirBottom:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Rotate turns the direction clockwise by n quarter-turns.
// Negative n turns counter-clockwise.
func (d Direction) Rotate(n int) Direction {
	return Direction((int(d) + NormalizeRotation(n)) % 4)
}

// Vertical reports whether the direction points up or down.
func (d Direction) Vertical() bool {
	return d == DirTop || d == DirBottom
}

// DirSet is a set of directions stored as a bitmask.
type DirSet uint8

// Dirs builds a set from the given directions.
func Dirs(ds ...Direction) DirSet {
	var s DirSet
	for _, d := range ds {
		s = s.With(d)
	}
	return s
}

// Has reports whether d is in the set.
func (s DirSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// With returns the set with d added.
func (s DirSet) With(d Direction) DirSet {
	return s | 1<<d
}

// Len returns the number of directions in the set.
func (s DirSet) Len() int {
	n := 0
	for _, d := range AllDirections {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Rotate turns every direction in the set clockwise by n quarter-turns.
func (s DirSet) Rotate(n int) DirSet {
	var out DirSet
	for _, d := range AllDirections {
		if s.Has(d) {
			out = out.With(d.Rotate(n))
		}
	}
	return out
}

// Slice returns the members in clockwise order from the top.
func (s DirSet) Slice() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range AllDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String returns a representation like "{Top,Bottom}".
func (s DirSet) String() string {
	parts := make([]string, 0, 4)
	for _, d := range s.Slice() {
		parts = append(parts, d.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Color is the color displayed by a path component.
type Color uint8

const (
	ColorGray Color = iota // unpowered
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorDarkGray // conflict between distinct sources
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorGray:
		return "gray"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorDarkGray:
		return "dark_gray"
	default:
		return "unknown"
	}
}

// Char returns a single character for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorGray:
		return '.'
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorDarkGray:
		return 'X'
	default:
		return '?'
	}
}

// SourceColors returns the colors a source can emit.
func SourceColors() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}
}

// PipeKind identifies the shape of a pipe.
type PipeKind uint8

const (
	KindSource PipeKind = iota
	KindLine
	KindOver
	KindTurn
	KindFork
	KindCross
	KindEmpty
)

// String returns the string representation of a pipe kind.
func (k PipeKind) String() string {
	switch k {
	case KindSource:
		return "source"
	case KindLine:
		return "line"
	case KindOver:
		return "over"
	case KindTurn:
		return "turn"
	case KindFork:
		return "fork"
	case KindCross:
		return "cross"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the defined kinds.
func (k PipeKind) Valid() bool {
	return k <= KindEmpty
}

// NormalizeRotation maps any rotation, including negative ones, into [0,3].
func NormalizeRotation(r int) int {
	return (r%4 + 4) % 4
}

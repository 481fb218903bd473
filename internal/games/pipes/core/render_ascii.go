package core

import (
	"fmt"
	"strings"
)

// KindCode returns the level-file letter for a pipe kind. Sources use their
// color letter instead, so KindSource maps to 'S'.
func KindCode(k PipeKind) byte {
	switch k {
	case KindLine:
		return 'L'
	case KindOver:
		return 'O'
	case KindTurn:
		return 'T'
	case KindFork:
		return 'F'
	case KindCross:
		return 'C'
	case KindEmpty:
		return '.'
	default:
		return 'S'
	}
}

// Token returns the level-file token describing the element, e.g. "X",
// "R2", "*L0" or ".1". Placed pipes are written as attached-free tokens.
func (e Element) Token() string {
	if e.IsBorder() {
		return "X"
	}
	c := e.Cell
	var sb strings.Builder
	if c.Attached {
		sb.WriteByte('*')
	}
	if c.IsSource() {
		sb.WriteRune(c.Pipe.SourceColor().Char())
	} else {
		sb.WriteByte(KindCode(c.Pipe.Kind))
	}
	fmt.Fprintf(&sb, "%d", c.Pipe.Rotation)
	return sb.String()
}

// RenderGrid writes the grid in the level-file token grammar, one row per
// line, with columns padded to equal width.
func RenderGrid(g *Grid) string {
	width := 1
	tokens := make([]string, len(g.Elements))
	for i, e := range g.Elements {
		tokens[i] = e.Token()
		if len(tokens[i]) > width {
			width = len(tokens[i])
		}
	}

	var sb strings.Builder
	for row := 0; row < g.H; row++ {
		var line strings.Builder
		for col := 0; col < g.W; col++ {
			if col > 0 {
				line.WriteByte(' ')
			}
			fmt.Fprintf(&line, "%-*s", width, tokens[row*g.W+col])
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderColors writes the resolved color of every component.
//
// Format:
//   - '#' border, '_' empty cell
//   - sources are '@' followed by their color char
//   - pipes show one color char per component ('.' gray, 'X' conflict)
func RenderColors(g *Grid) string {
	var sb strings.Builder
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			e := g.Elements[row*g.W+col]
			switch {
			case e.IsBorder():
				sb.WriteByte('#')
			case e.Cell.IsEmpty():
				sb.WriteByte('_')
			case e.Cell.IsSource():
				sb.WriteByte('@')
				sb.WriteRune(e.Cell.Pipe.SourceColor().Char())
			default:
				for _, comp := range e.Cell.Pipe.Components {
					sb.WriteRune(comp.Color.Char())
				}
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderASCII creates a text view of the board with a status header.
// Used by the CLI `show` command and tests.
func RenderASCII(b *Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Level: %d | Moves: %d | Stock: %d", b.def.ID, b.moves, b.stock.Total())
	if b.IsSolved() {
		sb.WriteString(" | SOLVED")
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", b.grid.W*3) + "\n")
	sb.WriteString(RenderGrid(b.grid))
	sb.WriteString(strings.Repeat("-", b.grid.W*3) + "\n")
	sb.WriteString(RenderColors(b.grid))

	keys := b.stock.Keys()
	if len(keys) > 0 {
		sb.WriteString("Stock:")
		for _, k := range keys {
			fmt.Fprintf(&sb, " %c%d x%d", KindCode(k.Kind), k.Rotation, b.stock.Quantity(k.Kind, k.Rotation))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

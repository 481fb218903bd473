package pipes

import (
	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// boxGlyphs maps a set of open sides to its box-drawing rune.
var boxGlyphs = map[core.DirSet]rune{
	0:                                                                   ' ',
	core.Dirs(core.DirTop):                                              '╵',
	core.Dirs(core.DirRight):                                            '╶',
	core.Dirs(core.DirBottom):                                           '╷',
	core.Dirs(core.DirLeft):                                             '╴',
	core.Dirs(core.DirTop, core.DirBottom):                              '│',
	core.Dirs(core.DirLeft, core.DirRight):                              '─',
	core.Dirs(core.DirTop, core.DirRight):                               '└',
	core.Dirs(core.DirRight, core.DirBottom):                            '┌',
	core.Dirs(core.DirBottom, core.DirLeft):                             '┐',
	core.Dirs(core.DirLeft, core.DirTop):                                '┘',
	core.Dirs(core.DirTop, core.DirRight, core.DirBottom):               '├',
	core.Dirs(core.DirRight, core.DirBottom, core.DirLeft):              '┬',
	core.Dirs(core.DirBottom, core.DirLeft, core.DirTop):                '┤',
	core.Dirs(core.DirLeft, core.DirTop, core.DirRight):                 '┴',
	core.Dirs(core.DirTop, core.DirRight, core.DirBottom, core.DirLeft): '┼',
}

// Glyph returns the box-drawing rune for a set of open sides.
func Glyph(s core.DirSet) rune {
	return boxGlyphs[s]
}

// toScreenColor maps a network color to a screen color.
func toScreenColor(c core.Color) platformcore.Color {
	switch c {
	case core.ColorRed:
		return platformcore.ColorRed
	case core.ColorGreen:
		return platformcore.ColorGreen
	case core.ColorBlue:
		return platformcore.ColorBlue
	case core.ColorYellow:
		return platformcore.ColorYellow
	case core.ColorDarkGray:
		return platformcore.ColorDarkGray
	default:
		return platformcore.ColorGray
	}
}

// tile is one board position drawn as a left arm, a center and a right arm.
type tile struct {
	left, center, right    rune
	leftC, centerC, rightC platformcore.Color
}

// pipeTile builds the tile for a pipe. Horizontal arms take the color of the
// component that opens that way. An OVER shows its vertical component in
// the center so the crossing reads as one line passing over the other.
func pipeTile(p core.Pipe) tile {
	t := tile{left: ' ', center: ' ', right: ' '}
	if p.Kind == core.KindEmpty {
		t.center, t.centerC = '·', platformcore.ColorDarkGray
		return t
	}

	var union core.DirSet
	for _, comp := range p.Components {
		union |= comp.Dirs
		col := toScreenColor(comp.Color)
		if comp.Dirs.Has(core.DirLeft) {
			t.left, t.leftC = '─', col
		}
		if comp.Dirs.Has(core.DirRight) {
			t.right, t.rightC = '─', col
		}
		if comp.Dirs.Has(core.DirTop) || len(p.Components) == 1 {
			t.centerC = col
		}
	}

	switch p.Kind {
	case core.KindSource:
		t.center = '●'
	case core.KindOver:
		t.center = '│'
	default:
		t.center = Glyph(union)
	}
	return t
}

// borderTile builds the frame glyphs around the board.
func borderTile(b core.Border) tile {
	c := platformcore.ColorDarkGray
	t := tile{left: ' ', center: ' ', right: ' ', leftC: c, centerC: c, rightC: c}
	if b.Shape == core.BorderSide {
		if b.Rotation%2 == 0 {
			t.left, t.center, t.right = '─', '─', '─'
		} else {
			t.center = '│'
		}
		return t
	}
	switch b.Rotation {
	case 0:
		t.center, t.right = '┌', '─'
	case 1:
		t.left, t.center = '─', '┐'
	case 2:
		t.left, t.center = '─', '┘'
	default:
		t.center, t.right = '└', '─'
	}
	return t
}

func elementTile(e core.Element) tile {
	if e.IsBorder() {
		return borderTile(e.Border)
	}
	return pipeTile(e.Cell.Pipe)
}

// draw paints the tile into a cell of width w at (x, y). Arms fill every
// column between the center and the cell edge.
func (t tile) draw(dst *platformcore.Screen, x, y, w int) {
	arm := (w - 1) / 2
	for i := 0; i < arm; i++ {
		dst.SetWithColor(x+i, y, t.left, t.leftC)
		dst.SetWithColor(x+arm+1+i, y, t.right, t.rightC)
	}
	dst.SetWithColor(x+arm, y, t.center, t.centerC)
}

// String renders the tile with a single-column arm, for tests and listings.
func (t tile) String() string {
	return string([]rune{t.left, t.center, t.right})
}

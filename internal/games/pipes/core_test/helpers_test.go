package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
)

func mustBoard(t *testing.T, text string) *core.Board {
	t.Helper()
	def, err := levels.ParseText([]byte(text))
	if err != nil {
		t.Fatalf("failed to parse level: %v", err)
	}
	return core.NewBoard(def)
}

func mustCell(t *testing.T, b *core.Board, row, col int) core.Cell {
	t.Helper()
	e, err := b.Element(row, col)
	if err != nil {
		t.Fatalf("Element(%d,%d): %v", row, col, err)
	}
	if !e.IsCell() {
		t.Fatalf("Element(%d,%d) is not a cell", row, col)
	}
	return e.Cell
}

func colorAt(t *testing.T, b *core.Board, row, col, idx int) core.Color {
	t.Helper()
	c := mustCell(t, b, row, col)
	if idx >= len(c.Pipe.Components) {
		t.Fatalf("cell (%d,%d) has %d components, wanted index %d", row, col, len(c.Pipe.Components), idx)
	}
	return c.Pipe.Components[idx].Color
}

func gray(kind core.PipeKind, rotation int) core.Cell {
	return core.NewCell(core.MustPipe(kind, rotation, core.ColorGray))
}

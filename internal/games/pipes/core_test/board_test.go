package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

const straightLevel = `5 5
X X R2 X X
X . L0 . X
X . L0 . X
X . L0 . X
X X R0 X X
`

func snapshotOf(b *core.Board) core.Snapshot {
	return core.Snapshot{Grid: b.Grid().Clone(), Stock: b.Stock().Clone(), Moves: b.Moves()}
}

func TestBoardDimensions(t *testing.T) {
	b := mustBoard(t, straightLevel)
	if b.Height() != 5 || b.Width() != 5 {
		t.Errorf("expected 5x5, got %dx%d", b.Height(), b.Width())
	}
	if got := b.Stock().Quantity(core.KindLine, 0); got != 3 {
		t.Errorf("expected 3 spare lines, got %d", got)
	}
	if !mustCell(t, b, 1, 2).IsEmpty() {
		t.Error("stocked pipe should leave an empty cell")
	}
}

func TestElementOutOfBounds(t *testing.T) {
	b := mustBoard(t, straightLevel)
	for _, pos := range []core.Pos{core.P(-1, 0), core.P(0, -1), core.P(5, 0), core.P(0, 5)} {
		_, err := b.Element(pos.Row, pos.Col)
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("%v: expected ErrOutOfBounds, got %v", pos, err)
		}
		if err := b.Place(pos.Row, pos.Col, gray(core.KindLine, 0)); !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("Place %v: expected ErrOutOfBounds, got %v", pos, err)
		}
	}
	if b.History().CanUndo() {
		t.Error("failed placements must not record history")
	}
}

func TestPlaceOnBorder(t *testing.T) {
	b := mustBoard(t, straightLevel)
	err := b.Place(0, 0, gray(core.KindLine, 0))
	if !errors.Is(err, core.ErrNotACell) {
		t.Errorf("expected ErrNotACell, got %v", err)
	}
	e, _ := b.Element(0, 0)
	if !e.IsBorder() || e.Border.Shape != core.BorderCorner {
		t.Errorf("border was modified: %+v", e)
	}
}

func TestBorderShapes(t *testing.T) {
	b := mustBoard(t, straightLevel)
	testCases := []struct {
		pos      core.Pos
		shape    core.BorderShape
		rotation int
	}{
		{core.P(0, 0), core.BorderCorner, 0},
		{core.P(0, 4), core.BorderCorner, 1},
		{core.P(4, 4), core.BorderCorner, 2},
		{core.P(4, 0), core.BorderCorner, 3},
		{core.P(0, 1), core.BorderSide, 0},
		{core.P(2, 4), core.BorderSide, 1},
		{core.P(4, 3), core.BorderSide, 2},
		{core.P(2, 0), core.BorderSide, 3},
	}
	for _, tc := range testCases {
		e, err := b.Element(tc.pos.Row, tc.pos.Col)
		if err != nil {
			t.Fatalf("%v: %v", tc.pos, err)
		}
		if !e.IsBorder() {
			t.Fatalf("%v: expected border", tc.pos)
		}
		if e.Border.Shape != tc.shape || e.Border.Rotation != tc.rotation {
			t.Errorf("%v: expected %v/%d, got %v/%d", tc.pos, tc.shape, tc.rotation, e.Border.Shape, e.Border.Rotation)
		}
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	b := mustBoard(t, straightLevel)
	s0 := snapshotOf(b)

	ok, err := b.DropFromStock(core.StockKey{Kind: core.KindLine, Rotation: 0}, 1, 2)
	if err != nil || !ok {
		t.Fatalf("DropFromStock: ok=%v err=%v", ok, err)
	}
	s1 := snapshotOf(b)
	if s1.Equal(s0) {
		t.Fatal("drop did not change state")
	}

	if !b.Undo() {
		t.Fatal("Undo returned false")
	}
	if !snapshotOf(b).Equal(s0) {
		t.Errorf("undo did not restore initial state:\n%s", core.RenderGrid(b.Grid()))
	}
	if b.Moves() != 0 {
		t.Errorf("expected moves 0 after undo, got %d", b.Moves())
	}

	if !b.Redo() {
		t.Fatal("Redo returned false")
	}
	if !snapshotOf(b).Equal(s1) {
		t.Errorf("redo did not restore placed state:\n%s", core.RenderGrid(b.Grid()))
	}
	if b.Moves() != 1 {
		t.Errorf("expected moves 1 after redo, got %d", b.Moves())
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	b := mustBoard(t, straightLevel)
	s0 := snapshotOf(b)
	if b.Undo() {
		t.Error("Undo on fresh board should return false")
	}
	if b.Redo() {
		t.Error("Redo on fresh board should return false")
	}
	if !snapshotOf(b).Equal(s0) {
		t.Error("empty undo/redo changed state")
	}
}

func TestMutationClearsRedo(t *testing.T) {
	b := mustBoard(t, straightLevel)
	key := core.StockKey{Kind: core.KindLine, Rotation: 0}
	b.DropFromStock(key, 1, 2)
	b.Undo()
	if !b.History().CanRedo() {
		t.Fatal("expected redo after undo")
	}
	b.DropFromStock(key, 2, 2)
	if b.History().CanRedo() || b.History().RedoDepth() != 0 {
		t.Error("new mutation should clear redo")
	}
	if b.Redo() {
		t.Error("Redo should be a no-op after a new mutation")
	}
	if b.History().UndoDepth() != 1 {
		t.Errorf("expected undo depth 1, got %d", b.History().UndoDepth())
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	b := mustBoard(t, straightLevel)
	if err := b.Place(1, 1, gray(core.KindTurn, 0)); err != nil {
		t.Fatal(err)
	}
	b.Undo()
	b.Redo()
	// Mutating after a restore must not leak into the stored snapshot.
	if err := b.Place(1, 1, gray(core.KindCross, 0)); err != nil {
		t.Fatal(err)
	}
	b.Undo()
	if got := mustCell(t, b, 1, 1).Pipe.Kind; got != core.KindTurn {
		t.Errorf("expected turn after undo, got %v", got)
	}
	b.Undo()
	if !mustCell(t, b, 1, 1).IsEmpty() {
		t.Error("expected empty cell after second undo")
	}
}

func TestSwapNoOps(t *testing.T) {
	b := mustBoard(t, `4 5
X X   X  X X
X *L0 .  T0 X
X .   L1 .  X
X X   X  X X
`)
	if err := b.Place(2, 2, gray(core.KindLine, 1)); err != nil {
		t.Fatal(err)
	}
	before := snapshotOf(b)
	undo, redo := b.History().UndoDepth(), b.History().RedoDepth()

	testCases := []struct {
		name           string
		r1, c1, r2, c2 int
	}{
		{"same position", 2, 2, 2, 2},
		{"attached first", 1, 1, 2, 2},
		{"attached second", 2, 2, 1, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := b.Swap(tc.r1, tc.c1, tc.r2, tc.c2)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				t.Error("expected no-op")
			}
			if !snapshotOf(b).Equal(before) {
				t.Error("state changed")
			}
			if b.History().UndoDepth() != undo || b.History().RedoDepth() != redo {
				t.Error("history changed")
			}
		})
	}
}

func TestSwapAndUndo(t *testing.T) {
	b := mustBoard(t, straightLevel)
	b.Place(1, 1, gray(core.KindTurn, 1))
	b.Place(3, 3, gray(core.KindFork, 2))
	before := snapshotOf(b)

	ok, err := b.Swap(1, 1, 3, 3)
	if err != nil || !ok {
		t.Fatalf("Swap: ok=%v err=%v", ok, err)
	}
	if mustCell(t, b, 1, 1).Pipe.Kind != core.KindFork || mustCell(t, b, 3, 3).Pipe.Kind != core.KindTurn {
		t.Error("cells were not exchanged")
	}
	b.Undo()
	if !snapshotOf(b).Equal(before) {
		t.Error("undo did not restore pre-swap state")
	}
}

func TestMovePipeRules(t *testing.T) {
	b := mustBoard(t, `3 6
X X  X  X   X  X
X R1 .  *T0 .  X
X X  X  X   X  X
`)
	b.Place(1, 2, gray(core.KindLine, 1))

	if ok, _ := b.MovePipe(1, 2, 1, 1); ok {
		t.Error("moving onto a source should fail")
	}
	if ok, _ := b.MovePipe(1, 2, 1, 3); ok {
		t.Error("moving onto an attached cell should fail")
	}
	if ok, _ := b.MovePipe(1, 3, 1, 4); ok {
		t.Error("moving an attached pipe should fail")
	}
	ok, err := b.MovePipe(1, 2, 1, 4)
	if err != nil || !ok {
		t.Fatalf("MovePipe onto empty cell: ok=%v err=%v", ok, err)
	}
	if !mustCell(t, b, 1, 2).IsEmpty() || mustCell(t, b, 1, 4).Pipe.Kind != core.KindLine {
		t.Error("pipe was not moved")
	}
}

func TestDropAndReturn(t *testing.T) {
	b := mustBoard(t, straightLevel)
	key := core.StockKey{Kind: core.KindLine, Rotation: 0}

	if ok, _ := b.DropFromStock(core.StockKey{Kind: core.KindCross, Rotation: 0}, 1, 2); ok {
		t.Error("dropping a pipe with zero stock should fail")
	}
	if ok, _ := b.DropFromStock(key, 0, 2); ok {
		t.Error("dropping onto a source should fail")
	}

	if ok, err := b.DropFromStock(key, 1, 2); err != nil || !ok {
		t.Fatalf("DropFromStock: ok=%v err=%v", ok, err)
	}
	if got := b.Stock().Quantity(core.KindLine, 0); got != 2 {
		t.Errorf("expected 2 left in stock, got %d", got)
	}
	if ok, _ := b.DropFromStock(key, 1, 2); ok {
		t.Error("dropping onto an occupied cell should fail")
	}
	if !b.Movable(1, 2) || b.Movable(0, 2) || b.Movable(1, 1) {
		t.Error("Movable reports wrong cells")
	}

	if ok, err := b.ReturnToStock(1, 2); err != nil || !ok {
		t.Fatalf("ReturnToStock: ok=%v err=%v", ok, err)
	}
	if got := b.Stock().Quantity(core.KindLine, 0); got != 3 {
		t.Errorf("expected 3 in stock after return, got %d", got)
	}
	if ok, _ := b.ReturnToStock(0, 2); ok {
		t.Error("returning a source should fail")
	}
	if b.Moves() != 2 {
		t.Errorf("expected 2 moves, got %d", b.Moves())
	}
}

func TestAttachedEmptyCellRefusesPipes(t *testing.T) {
	b := mustBoard(t, `3 5
X X  X  X  X
X L1 *. L0 X
X X  X  X  X
`)
	if !mustCell(t, b, 1, 2).Attached {
		t.Fatal("*. should build an attached cell")
	}
	if b.CanDropOn(1, 2) {
		t.Error("CanDropOn should refuse an attached empty cell")
	}
	if ok, err := b.DropFromStock(core.StockKey{Kind: core.KindLine, Rotation: 1}, 1, 2); ok || err != nil {
		t.Errorf("DropFromStock onto attached cell: ok=%v err=%v", ok, err)
	}

	if ok, err := b.DropFromStock(core.StockKey{Kind: core.KindLine, Rotation: 0}, 1, 3); !ok || err != nil {
		t.Fatalf("DropFromStock: ok=%v err=%v", ok, err)
	}
	before := snapshotOf(b)
	undo, moves := b.History().UndoDepth(), b.Moves()

	if ok, err := b.MovePipe(1, 3, 1, 2); ok || err != nil {
		t.Errorf("MovePipe onto attached cell: ok=%v err=%v", ok, err)
	}
	if !snapshotOf(b).Equal(before) || b.History().UndoDepth() != undo || b.Moves() != moves {
		t.Error("refused moves must leave board and history untouched")
	}
}

func TestUnusedOverChannel(t *testing.T) {
	b := mustBoard(t, `3 5
X X  X  X  X
X R1 O0 R3 X
X X  X  X  X
`)
	if ok, err := b.DropFromStock(core.StockKey{Kind: core.KindOver, Rotation: 0}, 1, 2); !ok || err != nil {
		t.Fatalf("DropFromStock: ok=%v err=%v", ok, err)
	}
	if !b.IsSolved() {
		t.Errorf("an OVER channel joined to nothing should not block the solve:\n%s", core.RenderASCII(b))
	}
}

func TestSolveAndReset(t *testing.T) {
	b := mustBoard(t, straightLevel)
	initial := snapshotOf(b)
	key := core.StockKey{Kind: core.KindLine, Rotation: 0}

	for row := 1; row <= 3; row++ {
		if b.IsSolved() {
			t.Fatalf("solved too early at row %d", row)
		}
		if ok, err := b.DropFromStock(key, row, 2); err != nil || !ok {
			t.Fatalf("DropFromStock row %d: ok=%v err=%v", row, ok, err)
		}
	}
	if !b.IsSolved() {
		t.Fatalf("expected solved board:\n%s", core.RenderASCII(b))
	}
	for row := 1; row <= 3; row++ {
		if got := colorAt(t, b, row, 2, 0); got != core.ColorRed {
			t.Errorf("row %d: expected red, got %v", row, got)
		}
	}

	b.Reset()
	if !snapshotOf(b).Equal(initial) {
		t.Error("reset did not restore the level")
	}
	if b.History().CanUndo() || b.History().CanRedo() || b.Moves() != 0 {
		t.Error("reset should clear history and moves")
	}
}

func TestConflictIsNotSolved(t *testing.T) {
	b := mustBoard(t, `3 5
X X  X   X  X
X R1 *L1 G3 X
X X  X   X  X
`)
	if b.IsSolved() {
		t.Error("conflicting network should not count as solved")
	}
}

func TestPlaceOverwrites(t *testing.T) {
	b := mustBoard(t, straightLevel)
	b.Place(1, 1, gray(core.KindTurn, 0))
	if err := b.Place(1, 1, gray(core.KindCross, 0)); err != nil {
		t.Fatalf("Place: %v", err)
	}
	if got := mustCell(t, b, 1, 1).Pipe.Kind; got != core.KindCross {
		t.Errorf("expected cross, got %v", got)
	}
}

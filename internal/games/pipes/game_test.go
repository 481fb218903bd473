package pipes

import (
	"errors"
	"strings"
	"testing"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

func newGame(t *testing.T, level int) *Game {
	t.Helper()
	g := New()
	cfg := platformcore.DefaultConfig()
	cfg.Level = level
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func press(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	var res platformcore.StepResult
	for _, a := range actions {
		res = g.Step(platformcore.FrameOf(a))
	}
	return res
}

func TestResetOpensRequestedLevel(t *testing.T) {
	g := newGame(t, 3)
	if st := g.State(); st.Level != 3 || st.Moves != 0 || st.Solved {
		t.Errorf("unexpected state %+v", st)
	}
	if g.Cursor() != core.P(1, 1) {
		t.Errorf("cursor should start at the first interior cell, got %v", g.Cursor())
	}

	g = newGame(t, 42)
	if g.State().Level != 1 {
		t.Errorf("unknown level should fall back to the first, got %d", g.State().Level)
	}
}

func TestResetEmptyDirectory(t *testing.T) {
	g := New()
	cfg := platformcore.DefaultConfig()
	cfg.LevelsDir = t.TempDir()
	if err := g.Reset(cfg); !errors.Is(err, ErrNoLevels) {
		t.Errorf("expected ErrNoLevels for an empty directory, got %v", err)
	}
}

func TestCursorStaysInside(t *testing.T) {
	g := newGame(t, 1)
	press(g, platformcore.ActionUp, platformcore.ActionLeft)
	if g.Cursor() != core.P(1, 1) {
		t.Errorf("cursor left the playable area: %v", g.Cursor())
	}
	for i := 0; i < 10; i++ {
		press(g, platformcore.ActionDown, platformcore.ActionRight)
	}
	if g.Cursor() != core.P(3, 3) {
		t.Errorf("expected cursor clamped to (3,3), got %v", g.Cursor())
	}
}

// selectLine0 focuses the stock and selects the LINE0 slot.
func selectLine0(g *Game) {
	press(g, platformcore.ActionSwitch, platformcore.ActionRight, platformcore.ActionRight, platformcore.ActionConfirm)
}

func TestSolveFirstLevel(t *testing.T) {
	g := newGame(t, 1)
	selectLine0(g)
	if g.Focus() != FocusBoard {
		t.Fatal("confirming a stock slot should return focus to the board")
	}
	if g.SelectedStock() != (core.StockKey{Kind: core.KindLine, Rotation: 0}) {
		t.Fatalf("expected LINE0 selected, got %v", g.SelectedStock())
	}

	press(g, platformcore.ActionRight, platformcore.ActionConfirm)
	press(g, platformcore.ActionDown, platformcore.ActionConfirm)
	press(g, platformcore.ActionDown)
	res := press(g, platformcore.ActionConfirm)

	if !res.JustSolved || !res.State.Solved {
		t.Fatalf("expected the last drop to solve the level, got %+v", res)
	}
	if res.State.Moves != 3 {
		t.Errorf("expected 3 moves, got %d", res.State.Moves)
	}

	// Solved boards ignore editing input and report JustSolved once.
	res = press(g, platformcore.ActionRemove)
	if res.JustSolved || g.Board().Stock().Total() != 0 {
		t.Error("solved board should be frozen")
	}

	press(g, platformcore.ActionNext)
	if st := g.State(); st.Level != 2 || st.Solved || st.Moves != 0 {
		t.Errorf("expected a fresh level 2, got %+v", st)
	}
}

func TestPickUpAndMove(t *testing.T) {
	g := newGame(t, 1)
	selectLine0(g)
	press(g, platformcore.ActionRight, platformcore.ActionConfirm)

	// Pick the new pipe up and put it on the empty cell to the left.
	press(g, platformcore.ActionConfirm)
	if held, ok := g.Held(); !ok || held != core.P(1, 2) {
		t.Fatalf("expected pipe at (1,2) held, got %v %v", held, ok)
	}
	press(g, platformcore.ActionLeft, platformcore.ActionConfirm)
	if _, ok := g.Held(); ok {
		t.Error("moving should release the held pipe")
	}

	grid := g.Board().Grid()
	left, _ := grid.CellAt(core.P(1, 1))
	mid, _ := grid.CellAt(core.P(1, 2))
	if left.Pipe.Kind != core.KindLine || !mid.IsEmpty() {
		t.Errorf("pipe did not move: left=%v mid=%v", left.Pipe.Kind, mid.Pipe.Kind)
	}
	if g.State().Moves != 2 {
		t.Errorf("expected 2 moves, got %d", g.State().Moves)
	}

	press(g, platformcore.ActionRemove)
	if g.Board().Stock().Quantity(core.KindLine, 0) != 3 {
		t.Error("remove should return the pipe to stock")
	}

	press(g, platformcore.ActionUndo)
	if g.Board().Stock().Quantity(core.KindLine, 0) != 2 {
		t.Error("undo should take the pipe back out of stock")
	}
	press(g, platformcore.ActionRedo)
	if g.Board().Stock().Quantity(core.KindLine, 0) != 3 {
		t.Error("redo should return it again")
	}
}

func TestFixedAndEmptyStock(t *testing.T) {
	g := newGame(t, 4)
	// (1,2) holds an attached LINE0.
	press(g, platformcore.ActionRight, platformcore.ActionConfirm)
	if g.Message() != "That pipe is fixed" {
		t.Errorf("unexpected message %q", g.Message())
	}

	// CROSS0 is the first palette slot and level 4 stocks none.
	press(g, platformcore.ActionLeft, platformcore.ActionConfirm)
	if !strings.Contains(g.Message(), "C0") {
		t.Errorf("expected an empty-stock message, got %q", g.Message())
	}
	if g.State().Moves != 0 {
		t.Error("refused actions must not count as moves")
	}
}

func TestUndoOnFreshBoard(t *testing.T) {
	g := newGame(t, 1)
	press(g, platformcore.ActionUndo)
	if g.Message() != "Nothing to undo" {
		t.Errorf("unexpected message %q", g.Message())
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newGame(t, 1)
	press(g, platformcore.ActionPause, platformcore.ActionRight)
	if !g.State().Paused || g.Cursor() != core.P(1, 1) {
		t.Error("paused game should ignore movement")
	}
	press(g, platformcore.ActionPause, platformcore.ActionRight)
	if g.State().Paused || g.Cursor() != core.P(1, 2) {
		t.Error("unpaused game should move the cursor")
	}
}

func TestFinishedAfterLastLevel(t *testing.T) {
	g := newGame(t, 5)
	board := g.Board()
	for _, p := range []core.Pos{core.P(1, 2), core.P(3, 2)} {
		if ok, err := board.DropFromStock(core.StockKey{Kind: core.KindLine, Rotation: 0}, p.Row, p.Col); !ok || err != nil {
			t.Fatalf("drop at %v: %v %v", p, ok, err)
		}
	}
	for _, p := range []core.Pos{core.P(2, 1), core.P(2, 3)} {
		if ok, err := board.DropFromStock(core.StockKey{Kind: core.KindLine, Rotation: 1}, p.Row, p.Col); !ok || err != nil {
			t.Fatalf("drop at %v: %v %v", p, ok, err)
		}
	}
	press(g, platformcore.ActionNone)
	if !g.State().Solved {
		t.Fatalf("level 5 should be solved:\n%s", core.RenderASCII(board))
	}
	press(g, platformcore.ActionNext)
	if !g.State().Finished {
		t.Error("next on the last level should finish the game")
	}
}

func TestRenderScreen(t *testing.T) {
	g := newGame(t, 3)
	s := platformcore.NewScreen(80, 24)
	g.Render(s)

	if !strings.Contains(s.Row(0), "Level 3/5") {
		t.Errorf("HUD missing level: %q", s.Row(0))
	}
	out := s.String()
	if !strings.Contains(out, "●") {
		t.Error("sources should be drawn")
	}
	if !strings.Contains(out, "Stock: 5") {
		t.Errorf("stock header missing:\n%s", out)
	}

	small := platformcore.NewScreen(30, 8)
	g.Resize(30, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Error("expected too-small overlay")
	}
}

func TestTiles(t *testing.T) {
	testCases := []struct {
		name string
		pipe core.Pipe
		want string
	}{
		{"vertical line", core.MustPipe(core.KindLine, 0, core.ColorGray), " │ "},
		{"horizontal line", core.MustPipe(core.KindLine, 1, core.ColorGray), "───"},
		{"turn", core.MustPipe(core.KindTurn, 1, core.ColorGray), " ┌─"},
		{"fork", core.MustPipe(core.KindFork, 3, core.ColorGray), "─┴─"},
		{"cross", core.MustPipe(core.KindCross, 2, core.ColorGray), "─┼─"},
		{"over", core.MustPipe(core.KindOver, 0, core.ColorGray), "─│─"},
		{"source", core.MustPipe(core.KindSource, 1, core.ColorRed), " ●─"},
		{"empty", core.EmptyPipe(2), " · "},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pipeTile(tc.pipe).String(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestOverTileColors(t *testing.T) {
	p := core.MustPipe(core.KindOver, 0, core.ColorGray)
	p.Components[0].Color = core.ColorRed
	p.Components[1].Color = core.ColorBlue

	tl := pipeTile(p)
	if tl.centerC != platformcore.ColorRed {
		t.Errorf("center should follow the vertical component, got %v", tl.centerC)
	}
	if tl.leftC != platformcore.ColorBlue || tl.rightC != platformcore.ColorBlue {
		t.Errorf("arms should follow the horizontal component, got %v %v", tl.leftC, tl.rightC)
	}
}

func TestBorderTiles(t *testing.T) {
	grid := core.NewGrid(3, 3)
	var rows []string
	for r := 0; r < 3; r++ {
		var sb strings.Builder
		for c := 0; c < 3; c++ {
			e, err := grid.At(core.P(r, c))
			if err != nil {
				t.Fatal(err)
			}
			sb.WriteString(elementTile(e).String())
		}
		rows = append(rows, sb.String())
	}
	want := []string{
		" ┌─────┐ ",
		" │  ·  │ ",
		" └─────┘ ",
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d: expected %q, got %q", i, want[i], rows[i])
		}
	}
}

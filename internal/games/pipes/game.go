// Package pipes provides the pipe-connection puzzle as a registry game:
// cursor handling, stock selection and screen rendering on top of the
// UI-agnostic engine in pipes/core.
package pipes

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/levels"
	"github.com/vovakirdan/tui-pipes/internal/registry"
)

// GameID is the registry and storage identifier of the puzzle.
const GameID = "pipes"

// ErrNoLevels is returned by Reset when the level source holds no valid level.
var ErrNoLevels = errors.New("pipes: no levels found")

// FocusArea indicates which area has input focus.
type FocusArea int

const (
	FocusBoard FocusArea = iota
	FocusStock
)

const (
	hudHeight    = 4
	stockPanelW  = 16
	stockColumns = 2
)

var levelLogger *log.Logger

// SetLogger sets the logger handed to level loaders created by Reset.
func SetLogger(l *log.Logger) {
	levelLogger = l
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements the pipe puzzle.
type Game struct {
	loader     *levels.Loader
	allLevels  []levels.Level
	levelIndex int
	board      *core.Board

	// Screen dimensions
	screenW  int
	screenH  int
	cellW    int
	tooSmall bool

	// Status
	paused   bool
	solved   bool
	finished bool
	message  string

	// Selection state
	focus      FocusArea
	cursor     core.Pos
	held       *core.Pos
	stockIndex int

	gridOffsetX int
	gridOffsetY int
}

// New creates a new puzzle game.
func New() *Game {
	return &Game{cellW: 3}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pipes"
}

// Reset loads the level pack and opens the configured start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) error {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	if cfg.CellWidth >= 3 {
		g.cellW = cfg.CellWidth | 1
	}
	g.paused = false
	g.finished = false

	g.loader = levels.NewLoader(cfg.LevelsDir).WithLogger(levelLogger)
	all, err := g.loader.LoadAll()
	if err != nil {
		return fmt.Errorf("pipes: loading levels: %w", err)
	}
	if len(all) == 0 {
		return ErrNoLevels
	}
	g.allLevels = all

	g.levelIndex = 0
	for i, lvl := range all {
		if lvl.ID() == cfg.Level {
			g.levelIndex = i
			break
		}
	}
	g.loadCurrentLevel()
	return nil
}

// loadCurrentLevel opens the level at levelIndex on a fresh board.
func (g *Game) loadCurrentLevel() {
	def := g.allLevels[g.levelIndex].Def
	if g.board == nil {
		g.board = core.NewBoard(def)
	} else {
		g.board.Load(def)
	}
	g.solved = g.board.IsSolved()
	g.focus = FocusBoard
	g.held = nil
	g.stockIndex = 0
	g.message = ""
	g.cursor = core.P(g.minRow(), g.minCol())
	g.calculateLayout()
}

// Resize recomputes the layout for a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.board != nil {
		g.calculateLayout()
	}
}

// calculateLayout centers the board and stock panel and flags screens that
// cannot hold them.
func (g *Game) calculateLayout() {
	boardW := g.board.Width() * g.cellW
	stockRows := (len(g.stockSlots()) + stockColumns - 1) / stockColumns
	neededW := boardW + 2 + stockPanelW*stockColumns
	neededH := hudHeight + platformcore.Max(g.board.Height(), stockRows+1) + 2

	if g.screenW < neededW || g.screenH < neededH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.gridOffsetX = (g.screenW - neededW) / 2
	g.gridOffsetY = hudHeight + (g.screenH-neededH)/2
}

// Board returns the board of the current level.
func (g *Game) Board() *core.Board {
	return g.board
}

// Level returns the current level.
func (g *Game) Level() levels.Level {
	return g.allLevels[g.levelIndex]
}

// Levels returns every loaded level in order.
func (g *Game) Levels() []levels.Level {
	return g.allLevels
}

// Cursor returns the board cursor.
func (g *Game) Cursor() core.Pos {
	return g.cursor
}

// Focus returns the focused area.
func (g *Game) Focus() FocusArea {
	return g.focus
}

// Held returns the board position of the picked-up pipe, if any.
func (g *Game) Held() (core.Pos, bool) {
	if g.held == nil {
		return core.Pos{}, false
	}
	return *g.held, true
}

// SelectedStock returns the selected stock slot.
func (g *Game) SelectedStock() core.StockKey {
	slots := g.stockSlots()
	return slots[platformcore.Clamp(g.stockIndex, 0, len(slots)-1)]
}

// Message returns the last status message.
func (g *Game) Message() string {
	return g.message
}

// stockSlots returns the palette followed by any stocked key the palette
// does not list.
func (g *Game) stockSlots() []core.StockKey {
	slots := append([]core.StockKey(nil), core.StockPalette...)
	inPalette := make(map[core.StockKey]bool, len(slots))
	for _, k := range slots {
		inPalette[k] = true
	}
	for _, k := range g.board.Stock().Keys() {
		if !inPalette[k] {
			slots = append(slots, k)
		}
	}
	return slots
}

func (g *Game) minRow() int { return platformcore.Min(1, g.board.Height()-1) }
func (g *Game) minCol() int { return platformcore.Min(1, g.board.Width()-1) }
func (g *Game) maxRow() int { return platformcore.Max(g.minRow(), g.board.Height()-2) }
func (g *Game) maxCol() int { return platformcore.Max(g.minCol(), g.board.Width()-2) }

// Step applies one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.board == nil || g.finished {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	wasSolved := g.solved
	switch {
	case in.Has(platformcore.ActionRestart):
		g.board.Reset()
		g.held = nil
		g.message = "Level reset"
	case in.Has(platformcore.ActionUndo):
		if g.board.Undo() {
			g.held = nil
			g.message = ""
		} else {
			g.message = "Nothing to undo"
		}
	case in.Has(platformcore.ActionRedo):
		if g.board.Redo() {
			g.held = nil
			g.message = ""
		} else {
			g.message = "Nothing to redo"
		}
	case in.Has(platformcore.ActionNext):
		if g.solved {
			g.nextLevel()
			return platformcore.StepResult{State: g.State()}
		}
	case g.solved:
		// The board is frozen once solved.
	case in.Has(platformcore.ActionSwitch):
		g.toggleFocus()
	default:
		if g.focus == FocusStock {
			g.stepStock(in)
		} else {
			g.stepBoard(in)
		}
	}

	g.solved = g.board.IsSolved()
	return platformcore.StepResult{
		State:      g.State(),
		JustSolved: g.solved && !wasSolved,
	}
}

func (g *Game) toggleFocus() {
	if g.focus == FocusBoard {
		g.focus = FocusStock
	} else {
		g.focus = FocusBoard
	}
	g.held = nil
}

func (g *Game) nextLevel() {
	if g.levelIndex+1 >= len(g.allLevels) {
		g.finished = true
		return
	}
	g.levelIndex++
	g.loadCurrentLevel()
}

func (g *Game) stepStock(in platformcore.InputFrame) {
	n := len(g.stockSlots())
	switch {
	case in.Has(platformcore.ActionLeft):
		g.stockIndex--
	case in.Has(platformcore.ActionRight):
		g.stockIndex++
	case in.Has(platformcore.ActionUp):
		g.stockIndex -= stockColumns
	case in.Has(platformcore.ActionDown):
		g.stockIndex += stockColumns
	case in.Has(platformcore.ActionConfirm):
		g.focus = FocusBoard
	}
	g.stockIndex = platformcore.Clamp(g.stockIndex, 0, n-1)
}

func (g *Game) stepBoard(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUp):
		g.moveCursor(-1, 0)
	case in.Has(platformcore.ActionDown):
		g.moveCursor(1, 0)
	case in.Has(platformcore.ActionLeft):
		g.moveCursor(0, -1)
	case in.Has(platformcore.ActionRight):
		g.moveCursor(0, 1)
	case in.Has(platformcore.ActionConfirm):
		g.confirm()
	case in.Has(platformcore.ActionRemove):
		g.held = nil
		g.report(g.board.ReturnToStock(g.cursor.Row, g.cursor.Col))
	}
}

func (g *Game) moveCursor(dRow, dCol int) {
	g.cursor = core.P(
		platformcore.Clamp(g.cursor.Row+dRow, g.minRow(), g.maxRow()),
		platformcore.Clamp(g.cursor.Col+dCol, g.minCol(), g.maxCol()),
	)
}

// confirm picks up, puts down or drops a pipe at the cursor depending on
// what is held and what lies under the cursor.
func (g *Game) confirm() {
	c := g.cursor
	switch {
	case g.held != nil && *g.held == c:
		g.held = nil
	case g.held != nil:
		from := *g.held
		g.held = nil
		g.report(g.board.MovePipe(from.Row, from.Col, c.Row, c.Col))
	case g.board.Movable(c.Row, c.Col):
		g.held = &c
		g.message = ""
	case g.board.CanDropOn(c.Row, c.Col):
		key := g.SelectedStock()
		if g.board.Stock().Quantity(key.Kind, key.Rotation) == 0 {
			g.message = "No " + stockLabel(key) + " left in stock"
			return
		}
		g.report(g.board.DropFromStock(key, c.Row, c.Col))
	default:
		g.message = "That pipe is fixed"
	}
}

func (g *Game) report(ok bool, err error) {
	switch {
	case err != nil:
		g.message = err.Error()
	case !ok:
		g.message = "Move not allowed"
	default:
		g.message = ""
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Paused:   g.paused,
		Solved:   g.solved,
		Finished: g.finished,
	}
	if g.board != nil {
		lvl := g.Level()
		st.Level = lvl.ID()
		st.LevelName = lvl.Name()
		st.Moves = g.board.Moves()
	}
	return st
}

// stockLabel names a stock key the way level files write it, e.g. "T2".
func stockLabel(k core.StockKey) string {
	return fmt.Sprintf("%c%d", core.KindCode(k.Kind), k.Rotation)
}

package pipes

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/games/pipes/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.board == nil {
		g.renderOverlay(dst, "No levels found", "Check the levels directory")
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderStock(dst)
	g.renderStatus(dst)

	switch {
	case g.finished:
		g.renderOverlay(dst, "All levels solved!", "Press Q to leave")
	case g.paused:
		g.renderOverlay(dst, "Paused", "P: continue  B: menu")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Pipes"
	if g.board != nil {
		lvl := g.Level()
		h := g.board.History()
		hud = fmt.Sprintf(" Pipes | Level %d/%d: %s | Moves: %d | Undo: %d Redo: %d",
			g.levelIndex+1, len(g.allLevels), lvl.Name(), g.board.Moves(), h.UndoDepth(), h.RedoDepth())
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)
	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)

	var controls string
	switch {
	case g.solved:
		controls = " N: Next level | U: Undo | R: Reset | B: Menu | Q: Quit"
	case g.focus == FocusStock:
		controls = " [STOCK] Arrows: Select | Enter/Tab: Board | U/Y: Undo/Redo | R: Reset"
	default:
		controls = " [BOARD] Arrows: Move | Enter: Pick/Drop | X: To stock | Tab: Stock | U/Y: Undo/Redo"
	}
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)
	dst.DrawHLine(0, 3, dst.Width(), '─', platformcore.ColorGray)
}

// renderBoard draws every grid element plus the cursor and held markers.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	grid := g.board.Grid()
	for _, p := range grid.AllPositions() {
		e, err := grid.At(p)
		if err != nil {
			continue
		}
		x, y := g.cellOrigin(p)
		elementTile(e).draw(dst, x, y, g.cellW)
	}

	if held, ok := g.Held(); ok {
		x, y := g.cellOrigin(held)
		dst.SetWithColor(x, y, '{', platformcore.ColorYellow)
		dst.SetWithColor(x+g.cellW-1, y, '}', platformcore.ColorYellow)
	}
	if g.focus == FocusBoard && !g.solved {
		x, y := g.cellOrigin(g.cursor)
		dst.SetWithColor(x, y, '[', platformcore.ColorBrightWhite)
		dst.SetWithColor(x+g.cellW-1, y, ']', platformcore.ColorBrightWhite)
	}
}

func (g *Game) cellOrigin(p core.Pos) (int, int) {
	return g.gridOffsetX + p.Col*g.cellW, g.gridOffsetY + p.Row
}

// renderStock draws the stock palette in columns to the right of the board.
// Slots with nothing left are dimmed.
func (g *Game) renderStock(dst *platformcore.Screen) {
	baseX := g.gridOffsetX + g.board.Width()*g.cellW + 2
	baseY := g.gridOffsetY
	stock := g.board.Stock()

	dst.DrawTextWithColor(baseX, baseY, fmt.Sprintf("Stock: %d", stock.Total()), platformcore.ColorGray)

	selected := g.SelectedStock()
	for i, key := range g.stockSlots() {
		x := baseX + (i%stockColumns)*stockPanelW
		y := baseY + 1 + i/stockColumns

		qty := stock.Quantity(key.Kind, key.Rotation)
		textC := platformcore.ColorWhite
		if qty == 0 {
			textC = platformcore.ColorDarkGray
		}
		if key == selected {
			markC := platformcore.ColorGray
			if g.focus == FocusStock {
				markC = platformcore.ColorBrightWhite
			}
			dst.SetWithColor(x, y, '▸', markC)
		}

		t := stockTile(key)
		if qty == 0 {
			t.leftC, t.centerC, t.rightC = textC, textC, textC
		}
		t.draw(dst, x+2, y, 3)
		dst.DrawTextWithColor(x+6, y, fmt.Sprintf("%s x%d", stockLabel(key), qty), textC)
	}
}

// stockTile draws a stocked pipe in neutral gray.
func stockTile(key core.StockKey) tile {
	p, err := core.NewPipe(key.Kind, key.Rotation, core.ColorGray)
	if err != nil {
		return tile{left: ' ', center: '?', right: ' '}
	}
	return pipeTile(p)
}

// renderStatus draws the last message or the solved banner under the board.
func (g *Game) renderStatus(dst *platformcore.Screen) {
	y := dst.Height() - 1
	switch {
	case g.solved && g.levelIndex+1 < len(g.allLevels):
		dst.DrawTextCentered(y, fmt.Sprintf("SOLVED in %d moves! Press N for the next level", g.board.Moves()), platformcore.ColorGreen)
	case g.solved:
		dst.DrawTextCentered(y, fmt.Sprintf("SOLVED in %d moves! That was the last level", g.board.Moves()), platformcore.ColorGreen)
	case g.message != "":
		dst.DrawTextCentered(y, g.message, platformcore.ColorYellow)
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := platformcore.Max(len(line1), len(line2)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, box.W, ' ', platformcore.ColorDefault)
	}
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorGray)
}

package core

// Movable reports whether the player may pick up the pipe at (row, col).
func (b *Board) Movable(row, col int) bool {
	c, err := b.grid.CellAt(P(row, col))
	return err == nil && c.Movable()
}

// CanDropOn reports whether a pipe can be put down at (row, col): the
// position must be an empty cell that is neither attached nor a source.
func (b *Board) CanDropOn(row, col int) bool {
	c, err := b.grid.CellAt(P(row, col))
	return err == nil && c.IsEmpty() && !c.Attached
}

// DropFromStock takes one pipe of key from the stock and places it at
// (row, col). It reports false when the stock has none of that key or the
// target cannot take a pipe.
func (b *Board) DropFromStock(key StockKey, row, col int) (bool, error) {
	p := P(row, col)
	if _, err := b.requireCell(p); err != nil {
		return false, err
	}
	if !b.CanDropOn(row, col) || b.stock.Quantity(key.Kind, key.Rotation) == 0 {
		return false, nil
	}
	pipe, err := NewPipe(key.Kind, key.Rotation, ColorGray)
	if err != nil {
		return false, err
	}

	b.mutate()
	b.stock.Remove(key.Kind, key.Rotation)
	b.set(p, NewCell(pipe))
	return true, nil
}

// ReturnToStock lifts the pipe at (row, col) back into the stock and leaves
// an empty cell. It reports false for attached, source or empty cells.
func (b *Board) ReturnToStock(row, col int) (bool, error) {
	p := P(row, col)
	c, err := b.requireCell(p)
	if err != nil {
		return false, err
	}
	if !c.Movable() {
		return false, nil
	}

	b.mutate()
	b.stock.Add(c.Pipe.Kind, c.Pipe.Rotation)
	b.set(p, EmptyCell(c.Pipe.Rotation))
	return true, nil
}

// MovePipe moves a board pipe onto another cell. Moving onto an empty cell
// and swapping two pipes are both a Swap; the target must not be attached
// or a source.
func (b *Board) MovePipe(fromRow, fromCol, toRow, toCol int) (bool, error) {
	if !b.Movable(fromRow, fromCol) {
		return false, nil
	}
	target, err := b.grid.CellAt(P(toRow, toCol))
	if err != nil {
		return false, err
	}
	if target.Attached || target.IsSource() {
		return false, nil
	}
	return b.Swap(fromRow, fromCol, toRow, toCol)
}

package core

// Snapshot is an independent copy of the mutable board state.
type Snapshot struct {
	Grid  *Grid
	Stock *Stock
	Moves int
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Grid: s.Grid.Clone(), Stock: s.Stock.Clone(), Moves: s.Moves}
}

// Equal reports whether two snapshots hold the same grid and stock.
// The move counter is not compared.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Grid.Equal(o.Grid) && s.Stock.Equal(o.Stock)
}

// History keeps the undo and redo stacks.
type History struct {
	undo []Snapshot
	redo []Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push records the pre-mutation state and drops the redo timeline.
// The caller passes the live state; History stores its own copy.
func (h *History) Push(current Snapshot) {
	h.undo = append(h.undo, current.Clone())
	h.redo = nil
}

// Undo moves one step back. It returns the state to restore and false when
// there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Clone())
	return prev.Clone(), true
}

// Redo moves one step forward. It returns false when there is nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	return next.Clone(), true
}

// Reset clears both stacks.
func (h *History) Reset() {
	h.undo = nil
	h.redo = nil
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of undo steps.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of redo steps.
func (h *History) RedoDepth() int { return len(h.redo) }

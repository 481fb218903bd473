package core

import "sort"

// StockKey identifies a stocked pipe by shape and orientation.
type StockKey struct {
	Kind     PipeKind
	Rotation int
}

// Stock counts spare pipes that are not on the board.
// Quantities never go below zero.
type Stock struct {
	counts map[StockKey]int
}

// NewStock creates an empty stock.
func NewStock() *Stock {
	return &Stock{counts: make(map[StockKey]int)}
}

// Add increments the count for (kind, rotation).
func (s *Stock) Add(kind PipeKind, rotation int) {
	s.counts[StockKey{Kind: kind, Rotation: NormalizeRotation(rotation)}]++
}

// Remove decrements the count for (kind, rotation).
// Removing from a zero or unseen key does nothing.
func (s *Stock) Remove(kind PipeKind, rotation int) {
	k := StockKey{Kind: kind, Rotation: NormalizeRotation(rotation)}
	if s.counts[k] <= 0 {
		return
	}
	s.counts[k]--
	if s.counts[k] == 0 {
		delete(s.counts, k)
	}
}

// Quantity returns the count for (kind, rotation), zero if unseen.
func (s *Stock) Quantity(kind PipeKind, rotation int) int {
	return s.counts[StockKey{Kind: kind, Rotation: NormalizeRotation(rotation)}]
}

// Total returns the number of spare pipes across all keys.
func (s *Stock) Total() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}
	return n
}

// Keys returns the keys with a positive count, sorted by kind then rotation.
func (s *Stock) Keys() []StockKey {
	keys := make([]StockKey, 0, len(s.counts))
	for k, c := range s.counts {
		if c > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Kind != keys[j].Kind {
			return keys[i].Kind < keys[j].Kind
		}
		return keys[i].Rotation < keys[j].Rotation
	})
	return keys
}

// Clone returns an independent copy of the stock.
func (s *Stock) Clone() *Stock {
	counts := make(map[StockKey]int, len(s.counts))
	for k, v := range s.counts {
		counts[k] = v
	}
	return &Stock{counts: counts}
}

// Equal reports whether two stocks hold the same positive counts.
func (s *Stock) Equal(o *Stock) bool {
	if s.Total() != o.Total() {
		return false
	}
	for k, v := range s.counts {
		if o.counts[k] != v {
			return false
		}
	}
	return true
}

// StockPalette is the fixed set of stock slots shown to the player,
// in display order.
var StockPalette = []StockKey{
	{KindCross, 0},
	{KindOver, 0},
	{KindLine, 0},
	{KindLine, 1},
	{KindTurn, 1},
	{KindTurn, 2},
	{KindTurn, 0},
	{KindTurn, 3},
	{KindFork, 0},
	{KindFork, 1},
	{KindFork, 3},
	{KindFork, 2},
}

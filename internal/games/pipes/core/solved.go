package core

// IsSolved reports whether the level is complete: the stock is empty, every
// source is joined to at least one other source, and no placed pipe is left
// unpowered or in conflict.
func (b *Board) IsSolved() bool {
	if b.stock.Total() > 0 {
		return false
	}
	return b.grid.allSourcesJoined() && b.grid.noDeadComponents()
}

func (g *Grid) allSourcesJoined() bool {
	found := false
	for _, p := range g.AllPositions() {
		c := g.cell(p)
		if c == nil || !c.IsSource() {
			continue
		}
		found = true
		if g.discover(compRef{pos: p}).sourceHits < 2 {
			return false
		}
	}
	return found
}

// noDeadComponents reports whether every placed component is powered by a
// single color. A channel of an OVER that joins nothing is unused and does
// not count.
func (g *Grid) noDeadComponents() bool {
	for _, p := range g.AllPositions() {
		c := g.cell(p)
		if c == nil || c.IsSource() {
			continue
		}
		for i, comp := range c.Pipe.Components {
			if comp.Color != ColorGray && comp.Color != ColorDarkGray {
				continue
			}
			if c.Pipe.Kind == KindOver && g.isolated(compRef{pos: p, idx: i}) {
				continue
			}
			return false
		}
	}
	return true
}

// isolated reports whether the component connects to no other component.
func (g *Grid) isolated(r compRef) bool {
	net := g.discover(r)
	return len(net.members) == 1 && net.sourceHits == 0
}

package core

// compRef identifies one path component by its cell and slot index.
// Components are compared by slot, never by shape or color.
type compRef struct {
	pos Pos
	idx int
}

// maxComponents is the largest component count of any pipe (OVER has two).
const maxComponents = 2

// visitSet is an arena of flags indexed by component slot.
type visitSet struct {
	w    int
	seen []bool
}

func newVisitSet(g *Grid) *visitSet {
	return &visitSet{w: g.W, seen: make([]bool, g.H*g.W*maxComponents)}
}

func (v *visitSet) slot(r compRef) int {
	return (r.pos.Row*v.w+r.pos.Col)*maxComponents + r.idx
}

// mark records r and reports whether it was unseen.
func (v *visitSet) mark(r compRef) bool {
	i := v.slot(r)
	if v.seen[i] {
		return false
	}
	v.seen[i] = true
	return true
}

func (g *Grid) component(r compRef) *PathComponent {
	c := g.cell(r.pos)
	if c == nil || r.idx >= len(c.Pipe.Components) {
		return nil
	}
	return &c.Pipe.Components[r.idx]
}

// network is the result of a discovery pass.
type network struct {
	members    []compRef // non-source components, seed first
	sources    map[Color]struct{}
	sourceHits int // source components reached, seed included
}

// discover walks every component joined to seed. Sources reached from a
// neighbor add their color and stop the walk; a source seed contributes its
// color and is expanded.
func (g *Grid) discover(seed compRef) network {
	net := network{sources: make(map[Color]struct{})}
	visited := newVisitSet(g)
	visited.mark(seed)

	if sc := g.cell(seed.pos); sc != nil && sc.IsSource() {
		net.sources[sc.Pipe.SourceColor()] = struct{}{}
		net.sourceHits++
	} else {
		net.members = append(net.members, seed)
	}

	stack := []compRef{seed}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp := g.component(cur)

		for _, d := range comp.Dirs.Slice() {
			npos := cur.pos.Step(d)
			nc := g.cell(npos)
			if nc == nil {
				continue
			}
			for i, other := range nc.Pipe.Components {
				if !comp.ConnectsTo(other, d) {
					continue
				}
				ref := compRef{pos: npos, idx: i}
				if !visited.mark(ref) {
					continue
				}
				if nc.IsSource() {
					net.sources[other.Color] = struct{}{}
					net.sourceHits++
					continue
				}
				net.members = append(net.members, ref)
				stack = append(stack, ref)
			}
		}
	}
	return net
}

// resolve maps the set of reachable source colors to the network color.
func (n network) resolve() Color {
	switch len(n.sources) {
	case 0:
		return ColorGray
	case 1:
		for c := range n.sources {
			return c
		}
	}
	return ColorDarkGray
}

// recompute discovers the network containing seed and writes the resolved
// color into every non-source member. It returns the positions whose
// component colors changed.
func (g *Grid) recompute(seed compRef) []Pos {
	if g.component(seed) == nil {
		return nil
	}
	net := g.discover(seed)
	color := net.resolve()

	var changed []Pos
	for _, ref := range net.members {
		comp := g.component(ref)
		if comp.Color == color {
			continue
		}
		comp.Color = color
		if len(changed) == 0 || changed[len(changed)-1] != ref.pos {
			changed = append(changed, ref.pos)
		}
	}
	return changed
}

// seedsAround returns the seeds to recompute after the cell at p changed:
// each of its own components, followed by every component of a non-source
// neighbor that faces p. The neighbor seeds re-evaluate networks that p used
// to join and may no longer join.
func (g *Grid) seedsAround(p Pos) []compRef {
	c := g.cell(p)
	if c == nil {
		return nil
	}
	seeds := make([]compRef, 0, len(c.Pipe.Components)+4)
	for i := range c.Pipe.Components {
		seeds = append(seeds, compRef{pos: p, idx: i})
	}
	for _, d := range AllDirections {
		npos := p.Step(d)
		nc := g.cell(npos)
		if nc == nil || nc.IsSource() || nc.IsEmpty() {
			continue
		}
		// A virtual straight segment through p in the neighbor's axis.
		for i, other := range nc.Pipe.Components {
			if other.Dirs.Has(d.Opposite()) {
				seeds = append(seeds, compRef{pos: npos, idx: i})
			}
		}
	}
	return seeds
}

// Propagate recomputes colors after the cell at p changed and returns the
// positions whose colors changed, without duplicates, in discovery order.
// Every seed is recomputed even when networks overlap; reassignment is
// idempotent so the final colors do not depend on seed order.
func (g *Grid) Propagate(p Pos) []Pos {
	var out []Pos
	seen := make(map[Pos]bool)
	for _, seed := range g.seedsAround(p) {
		for _, q := range g.recompute(seed) {
			if !seen[q] {
				seen[q] = true
				out = append(out, q)
			}
		}
	}
	return out
}

// PropagateAll recomputes every network on the grid.
func (g *Grid) PropagateAll() []Pos {
	var out []Pos
	seen := make(map[Pos]bool)
	for _, p := range g.AllPositions() {
		c := g.cell(p)
		if c == nil {
			continue
		}
		for i := range c.Pipe.Components {
			for _, q := range g.recompute(compRef{pos: p, idx: i}) {
				if !seen[q] {
					seen[q] = true
					out = append(out, q)
				}
			}
		}
	}
	return out
}

// NetworkSources returns the distinct source colors reachable from the
// component at (p, idx). ok is false when no such component exists.
func (g *Grid) NetworkSources(p Pos, idx int) (colors []Color, ok bool) {
	seed := compRef{pos: p, idx: idx}
	if g.component(seed) == nil {
		return nil, false
	}
	net := g.discover(seed)
	for _, c := range SourceColors() {
		if _, hit := net.sources[c]; hit {
			colors = append(colors, c)
		}
	}
	return colors, true
}

package core

// PathComponent is one directional connector inside a pipe.
// Its shape is fixed at creation; only its color changes.
type PathComponent struct {
	Dirs  DirSet
	Color Color
}

// ConnectsTo reports whether c joins other when other lies in direction d
// from c. Both sides must expose the shared edge.
func (c PathComponent) ConnectsTo(other PathComponent, d Direction) bool {
	return c.Dirs.Has(d) && other.Dirs.Has(d.Opposite())
}

// Pipe is a placed or stocked piece: a kind, a rotation in [0,3] and the
// components the catalog produces for them.
type Pipe struct {
	Kind       PipeKind
	Rotation   int
	Components []PathComponent
}

// NewPipe builds a pipe whose components all start with the given color.
// Sources keep that color forever; other kinds are normally built gray.
func NewPipe(kind PipeKind, rotation int, color Color) (Pipe, error) {
	shapes, err := ComponentsFor(kind, rotation)
	if err != nil {
		return Pipe{}, err
	}
	comps := make([]PathComponent, len(shapes))
	for i, s := range shapes {
		comps[i] = PathComponent{Dirs: s, Color: color}
	}
	return Pipe{
		Kind:       kind,
		Rotation:   NormalizeRotation(rotation),
		Components: comps,
	}, nil
}

// MustPipe is like NewPipe but panics on an invalid kind.
// Intended for tests and static tables.
func MustPipe(kind PipeKind, rotation int, color Color) Pipe {
	p, err := NewPipe(kind, rotation, color)
	if err != nil {
		panic(err)
	}
	return p
}

// EmptyPipe returns an EMPTY pipe at the given rotation.
func EmptyPipe(rotation int) Pipe {
	return Pipe{Kind: KindEmpty, Rotation: NormalizeRotation(rotation), Components: []PathComponent{}}
}

// SourceColor returns the emitted color of a source pipe.
func (p Pipe) SourceColor() Color {
	if p.Kind != KindSource || len(p.Components) == 0 {
		return ColorGray
	}
	return p.Components[0].Color
}

// Clone returns a deep copy of the pipe.
func (p Pipe) Clone() Pipe {
	comps := make([]PathComponent, len(p.Components))
	copy(comps, p.Components)
	return Pipe{Kind: p.Kind, Rotation: p.Rotation, Components: comps}
}

// Equal reports whether two pipes have the same kind, rotation and
// component colors.
func (p Pipe) Equal(o Pipe) bool {
	if p.Kind != o.Kind || p.Rotation != o.Rotation || len(p.Components) != len(o.Components) {
		return false
	}
	for i := range p.Components {
		if p.Components[i] != o.Components[i] {
			return false
		}
	}
	return true
}

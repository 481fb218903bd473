package core

import "fmt"

// Base shapes at rotation 0. Rotation turns them clockwise.
var (
	lineBase   = Dirs(DirTop, DirBottom)
	turnBase   = Dirs(DirTop, DirRight)
	forkBase   = Dirs(DirTop, DirRight, DirBottom)
	crossBase  = Dirs(DirTop, DirRight, DirBottom, DirLeft)
	sourceBase = Dirs(DirTop)
)

// ComponentsFor returns the direction sets of the path components that make
// up a pipe of the given kind and rotation, in component order.
// Rotation is normalized mod 4. An EMPTY pipe has no components.
func ComponentsFor(kind PipeKind, rotation int) ([]DirSet, error) {
	r := NormalizeRotation(rotation)

	switch kind {
	case KindEmpty:
		return []DirSet{}, nil
	case KindSource:
		return []DirSet{sourceBase.Rotate(r)}, nil
	case KindLine:
		return []DirSet{lineBase.Rotate(r)}, nil
	case KindTurn:
		return []DirSet{turnBase.Rotate(r)}, nil
	case KindFork:
		return []DirSet{forkBase.Rotate(r)}, nil
	case KindCross:
		return []DirSet{crossBase}, nil
	case KindOver:
		// Two crossing lines that never share a color.
		return []DirSet{lineBase.Rotate(r), lineBase.Rotate(r + 1)}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidPipeKind, kind)
	}
}

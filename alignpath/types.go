package alignpath

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by path validation and conversion.
var (
	// ErrUnitMismatch indicates that paths (or a path and an operation)
	// disagree about frame vs. second units.
	ErrUnitMismatch = errors.New("alignpath: unit mismatch")

	// ErrNotMonotonic indicates a path whose coordinates decrease along
	// some axis; interpolation over such a path is undefined, so it is
	// rejected up front.
	ErrNotMonotonic = errors.New("alignpath: path is not monotonic")

	// ErrEmptyPath indicates an operation on a path with no points.
	ErrEmptyPath = errors.New("alignpath: path is empty")

	// ErrBadHop indicates a non-positive hop size in a time conversion.
	ErrBadHop = errors.New("alignpath: hop size must be positive")
)

// Unit tags the coordinate unit of a path.
type Unit int

const (
	// Frames means coordinates are feature frame indices.
	Frames Unit = iota

	// Seconds means coordinates are timestamps in seconds.
	Seconds
)

// String implements fmt.Stringer for diagnostics.
func (u Unit) String() string {
	switch u {
	case Frames:
		return "Frames"
	case Seconds:
		return "Seconds"
	default:
		return fmt.Sprintf("Unknown(%d)", int(u))
	}
}

// Coord is one correspondence point: position A in the first sequence maps
// to position B in the second. Float-valued so that one type serves both
// frame indices and timestamps.
type Coord struct {
	A, B float64
}

// Path is a unit-tagged alignment between two sequences.
type Path struct {
	Unit Unit
	Pts  []Coord
}

// Len returns the number of correspondence points.
func (p Path) Len() int { return len(p.Pts) }

// Validate checks that the path is non-empty and component-wise
// non-decreasing. Returns ErrEmptyPath or ErrNotMonotonic (wrapped with the
// offending index).
func (p Path) Validate() error {
	if len(p.Pts) == 0 {
		return ErrEmptyPath
	}
	for i := 1; i < len(p.Pts); i++ {
		if p.Pts[i].A < p.Pts[i-1].A || p.Pts[i].B < p.Pts[i-1].B {
			return fmt.Errorf("alignpath: point %d: %w", i, ErrNotMonotonic)
		}
	}

	return nil
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	pts := make([]Coord, len(p.Pts))
	copy(pts, p.Pts)

	return Path{Unit: p.Unit, Pts: pts}
}

// Coord3 is one correspondence point across three sequences.
type Coord3 struct {
	A, B, C float64
}

// Path3 is a unit-tagged alignment across three sequences.
type Path3 struct {
	Unit Unit
	Pts  []Coord3
}

// Len returns the number of correspondence points.
func (p Path3) Len() int { return len(p.Pts) }

// Validate checks that the path is non-empty and component-wise
// non-decreasing. Returns ErrEmptyPath or ErrNotMonotonic (wrapped with the
// offending index).
func (p Path3) Validate() error {
	if len(p.Pts) == 0 {
		return ErrEmptyPath
	}
	for i := 1; i < len(p.Pts); i++ {
		prev, cur := p.Pts[i-1], p.Pts[i]
		if cur.A < prev.A || cur.B < prev.B || cur.C < prev.C {
			return fmt.Errorf("alignpath: point %d: %w", i, ErrNotMonotonic)
		}
	}

	return nil
}

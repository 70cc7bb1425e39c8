package alignpath

import "fmt"

// ToSeconds converts a frame-index path into a seconds path, scaling each
// axis by its hop size (samples per frame ÷ sample rate, in seconds).
// The two axes may use different hops when the aligned recordings were
// analyzed at different frame rates.
//
// Errors: ErrUnitMismatch when p is already in seconds, ErrBadHop when
// either hop is non-positive, ErrEmptyPath.
// Complexity: O(L).
func ToSeconds(p Path, hopA, hopB float64) (Path, error) {
	if p.Unit != Frames {
		return Path{}, fmt.Errorf("alignpath: ToSeconds on %v path: %w", p.Unit, ErrUnitMismatch)
	}
	if hopA <= 0 || hopB <= 0 {
		return Path{}, fmt.Errorf("alignpath: hops (%g, %g): %w", hopA, hopB, ErrBadHop)
	}
	if len(p.Pts) == 0 {
		return Path{}, ErrEmptyPath
	}

	out := Path{Unit: Seconds, Pts: make([]Coord, len(p.Pts))}
	for i, pt := range p.Pts {
		out.Pts[i] = Coord{A: pt.A * hopA, B: pt.B * hopB}
	}

	return out, nil
}

// Shift translates a path by an additive offset per axis, in the path's own
// unit. Used to map a path computed on a cropped/offset sub-window back into
// the full sequence's index or time space. Never mutates p.
// Complexity: O(L).
func Shift(p Path, dA, dB float64) Path {
	out := Path{Unit: p.Unit, Pts: make([]Coord, len(p.Pts))}
	for i, pt := range p.Pts {
		out.Pts[i] = Coord{A: pt.A + dA, B: pt.B + dB}
	}

	return out
}

// Invert swaps the two axes, turning a path A→B into B→A. Monotonicity is
// preserved. Never mutates p.
// Complexity: O(L).
func Invert(p Path) Path {
	out := Path{Unit: p.Unit, Pts: make([]Coord, len(p.Pts))}
	for i, pt := range p.Pts {
		out.Pts[i] = Coord{A: pt.B, B: pt.A}
	}

	return out
}

// FilterPlateaus drops interior points whose A or B coordinate does not
// change on the way to the next point, keeping the final point. Vertical and
// horizontal path segments collapse to their exit point, which declutters a
// path before plotting or rate analysis.
// Complexity: O(L).
func FilterPlateaus(p Path) Path {
	out := Path{Unit: p.Unit}
	if len(p.Pts) == 0 {
		return out
	}
	for i := 0; i+1 < len(p.Pts); i++ {
		if p.Pts[i].A != p.Pts[i+1].A && p.Pts[i].B != p.Pts[i+1].B {
			out.Pts = append(out.Pts, p.Pts[i])
		}
	}
	out.Pts = append(out.Pts, p.Pts[len(p.Pts)-1])

	return out
}

package alignpath

// DefaultSecondsStep is the sampling grid used by Compose for paths in
// seconds when the caller passes step <= 0 (20 ms).
const DefaultSecondsStep = 0.02

// Compose chains path(A→B) with path(B→C) into the induced path(A→C).
//
// The A axis of ab is sampled on a dense grid — every integer frame for
// Frames paths, a fixed step (default 20 ms) for Seconds paths, or an
// explicit positive step — then each sample is linearly interpolated through
// ab to a B coordinate and through bc to a C coordinate.
//
// Both paths are prepended with a (0,0) anchor when they do not already
// start there, so queries near the sequence start never extrapolate.
// Queries past a path's last knot clamp to its final value. At plateaus
// (several knots sharing one abscissa) the first knot wins, consistent with
// the solvers' first-declared tie-breaking.
//
// Errors: ErrUnitMismatch when ab and bc disagree on units, ErrEmptyPath,
// ErrNotMonotonic when either path decreases along its interpolation axis.
// Complexity: O(L_ab + L_bc + samples).
func Compose(ab, bc Path, step float64) (Path, error) {
	if ab.Unit != bc.Unit {
		return Path{}, ErrUnitMismatch
	}
	if err := ab.Validate(); err != nil {
		return Path{}, err
	}
	if err := bc.Validate(); err != nil {
		return Path{}, err
	}
	if step <= 0 {
		if ab.Unit == Frames {
			step = 1
		} else {
			step = DefaultSecondsStep
		}
	}

	// In ab the knot abscissa is the A coordinate; in bc it is the B
	// coordinate, which bc stores in its own first component.
	fAB := newInterp(anchor(ab))
	fBC := newInterp(anchor(bc))

	lastA := fAB.xs[len(fAB.xs)-1]
	n := int(lastA/step) + 1

	out := Path{Unit: ab.Unit, Pts: make([]Coord, 0, n+1)}
	for i := 0; i < n; i++ {
		a := float64(i) * step
		out.Pts = append(out.Pts, Coord{A: a, B: fBC.at(fAB.at(a))})
	}
	// Land exactly on the endpoint when the grid does not.
	if last := float64(n-1) * step; last < lastA {
		out.Pts = append(out.Pts, Coord{A: lastA, B: fBC.at(fAB.at(lastA))})
	}

	return out, nil
}

// anchor prepends a (0,0) point when the path does not already start at the
// origin, avoiding extrapolation artifacts at sequence boundaries.
func anchor(p Path) Path {
	if p.Pts[0].A == 0 && p.Pts[0].B == 0 {
		return p
	}
	pts := make([]Coord, 0, len(p.Pts)+1)
	pts = append(pts, Coord{})
	pts = append(pts, p.Pts...)

	return Path{Unit: p.Unit, Pts: pts}
}

// interp is a monotone piecewise-linear interpolator with an advancing
// cursor: queries must be non-decreasing, which Compose guarantees, so a
// full composition costs O(knots + samples) rather than O(samples·log).
type interp struct {
	xs, ys []float64
	i      int
}

// newInterp extracts (first, second) component knots from a path.
func newInterp(p Path) *interp {
	in := &interp{
		xs: make([]float64, len(p.Pts)),
		ys: make([]float64, len(p.Pts)),
	}
	for idx, pt := range p.Pts {
		in.xs[idx], in.ys[idx] = pt.A, pt.B
	}

	return in
}

// at evaluates the interpolant at q. Out-of-range queries clamp to the first
// or last knot; exact knot hits and plateaus resolve to the first knot with
// that abscissa.
func (p *interp) at(q float64) float64 {
	xs, ys := p.xs, p.ys
	n := len(xs)
	if q <= xs[0] {
		return ys[0]
	}
	if q >= xs[n-1] {
		i := n - 1
		for i > 0 && xs[i-1] == xs[n-1] {
			i--
		}

		return ys[i]
	}

	for p.i+1 < n && xs[p.i+1] < q {
		p.i++
	}
	i := p.i
	if xs[i+1] == q {
		// Exact knot hit: step to the left edge of any plateau.
		j := i + 1
		for j > 0 && xs[j-1] == q {
			j--
		}

		return ys[j]
	}

	// Strict interior: xs[i] < q < xs[i+1].
	t := (q - xs[i]) / (xs[i+1] - xs[i])

	return ys[i] + t*(ys[i+1]-ys[i])
}

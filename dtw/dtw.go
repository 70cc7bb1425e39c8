package dtw

import (
	"math"

	"github.com/tactusdsp/warpalign/alignpath"
	"github.com/tactusdsp/warpalign/grid"
)

// Solve computes the minimum-cost monotonic path through cost matrix c
// under opts. See the package documentation for the recurrence, modes, and
// tie-breaking rules.
//
// The DP recurrence is sequential by data dependency; parallelism belongs to
// cost-matrix construction (package cost), not here.
//
// Errors: ErrNilCost, ErrInvalidStepPattern, ErrBadMode,
// ErrAlignmentImpossible.
// Complexity: O(N·M·L) time, O(N·M) memory for the DP and backtrace grids,
// both discarded after path extraction.
func Solve(c *grid.Dense, opts Options) (Result, error) {
	if c == nil {
		return Result{}, ErrNilCost
	}
	if err := opts.Steps.Validate(); err != nil {
		return Result{}, err
	}
	switch opts.Mode {
	case Standard, Subsequence, FixedStartFlexEnd:
	default:
		return Result{}, ErrBadMode
	}

	n, m := c.Rows(), c.Cols()
	cd := c.Data()

	acc, err := grid.NewDense(n, m)
	if err != nil {
		return Result{}, err
	}
	acc.Fill(math.Inf(1))
	bt, err := grid.NewTrace(n, m)
	if err != nil {
		return Result{}, err
	}
	d := acc.Data()
	btd := bt.Data()

	// Initialization: valid path starts carry their own local cost and no
	// recorded predecessor.
	d[0] = cd[0]
	if opts.Mode == Subsequence {
		for j := 1; j < m; j++ {
			d[j] = cd[j]
		}
	}

	// Row-major fill is a topological order: every step has non-negative
	// displacements, so predecessors are always already final.
	steps := opts.Steps
	for i := 0; i < n; i++ {
		base := i * m
		for j := 0; j < m; j++ {
			off := base + j
			best := d[off] // start-cell cost or +Inf
			pick := int8(-1)
			for s := range steps {
				pi, pj := i-steps[s].DI, j-steps[s].DJ
				if pi < 0 || pj < 0 {
					continue
				}
				prev := d[pi*m+pj]
				if math.IsInf(prev, 1) {
					continue
				}
				// Strict improvement keeps the first-declared step on ties.
				if cand := prev + steps[s].Weight*cd[off]; cand < best {
					best = cand
					pick = int8(s)
				}
			}
			d[off] = best
			btd[off] = pick
		}
	}

	// Endpoint selection.
	endJ := m - 1
	if opts.Mode != Standard {
		endJ = argminRow(d, (n-1)*m, m)
	}
	endOff := (n-1)*m + endJ
	if math.IsInf(d[endOff], 1) {
		return Result{}, ErrAlignmentImpossible
	}

	path := backtrack(btd, steps, n, m, endJ)

	return Result{Path: path, Cost: d[endOff]}, nil
}

// argminRow returns the column of the minimum value in the row starting at
// flat offset base; the lowest column wins ties.
func argminRow(d []float64, base, m int) int {
	bestJ := 0
	for j := 1; j < m; j++ {
		if d[base+j] < d[base+bestJ] {
			bestJ = j
		}
	}

	return bestJ
}

// backtrack follows recorded transitions from (n−1, endJ) to a start cell
// (trace value −1), then reverses. Start cells are exactly the initialized
// cells, so termination is guaranteed by construction.
func backtrack(btd []int8, steps StepPattern, n, m, endJ int) alignpath.Path {
	var rev []alignpath.Coord
	i, j := n-1, endJ
	for {
		rev = append(rev, alignpath.Coord{A: float64(i), B: float64(j)})
		s := btd[i*m+j]
		if s < 0 {
			break
		}
		i -= steps[s].DI
		j -= steps[s].DJ
	}

	pts := make([]alignpath.Coord, len(rev))
	for k := range rev {
		pts[k] = rev[len(rev)-1-k]
	}

	return alignpath.Path{Unit: alignpath.Frames, Pts: pts}
}

package dtw3

import (
	"math"

	"github.com/tactusdsp/warpalign/alignpath"
	"github.com/tactusdsp/warpalign/grid"
)

// Solve computes the minimum-cost monotonic path through cost tensor t
// under opts. See the package documentation for modes, scoring, and the
// deliberate absence of internal pruning.
//
// Errors: ErrNilTensor, ErrInvalidStepPattern, ErrBadMode, ErrBadBuffer,
// ErrAlignmentImpossible.
// Complexity: O(N·M·K·L) time; O(N·M·K) memory for the DP, backtrace, and
// (Flex3) start-of-path grids, all discarded after path extraction.
func Solve(t *grid.Dense3, opts Options3) (Result3, error) {
	if t == nil {
		return Result3{}, ErrNilTensor
	}
	if err := opts.Steps.Validate(); err != nil {
		return Result3{}, err
	}
	switch opts.Mode {
	case Standard3, Flex3:
	default:
		return Result3{}, ErrBadMode
	}
	if opts.MinBuffer < 0 {
		return Result3{}, ErrBadBuffer
	}

	nx, ny, nz := t.Dims()
	td := t.Data()

	acc, err := grid.NewDense3(nx, ny, nz)
	if err != nil {
		return Result3{}, err
	}
	acc.Fill(math.Inf(1))
	bt, err := grid.NewTrace3(nx, ny, nz)
	if err != nil {
		return Result3{}, err
	}
	d := acc.Data()
	btd := bt.Data()

	flex := opts.Mode == Flex3
	var start []int32 // start-of-path coordinates, 3 per cell (Flex3 only)
	if flex {
		start = make([]int32, 3*len(td))
	}
	if !flex {
		d[0] = td[0]
	}

	// Triple nested increasing loops are a topological order: every step
	// has non-negative displacements, so predecessors are already final.
	steps := opts.Steps
	inf := math.Inf(1)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			base := (i*ny + j) * nz
			for k := 0; k < nz; k++ {
				off := base + k
				best := d[off]
				pick := int8(-1)
				var si, sj, sk int32
				if flex && (i == 0 || j == 0 || k == 0) {
					// Origin-adjacent face cell: a fresh path may start
					// here at its own local cost.
					best = td[off]
					si, sj, sk = int32(i), int32(j), int32(k)
				}
				for s := range steps {
					pi, pj, pk := i-steps[s].DI, j-steps[s].DJ, k-steps[s].DK
					if pi < 0 || pj < 0 || pk < 0 {
						continue
					}
					poff := (pi*ny+pj)*nz + pk
					prev := d[poff]
					if prev == inf {
						continue
					}
					// Strict improvement keeps the first-declared step on
					// ties, and a start-face self-start over an equal-cost
					// inherited path.
					if cand := prev + steps[s].Weight*td[off]; cand < best {
						best = cand
						pick = int8(s)
						if flex {
							si, sj, sk = start[3*poff], start[3*poff+1], start[3*poff+2]
						}
					}
				}
				d[off] = best
				btd[off] = pick
				if flex && best != inf {
					start[3*off], start[3*off+1], start[3*off+2] = si, sj, sk
				}
			}
		}
	}

	var endI, endJ, endK int
	if flex {
		endI, endJ, endK, err = selectFlexEnd(d, start, nx, ny, nz, opts.MinBuffer)
		if err != nil {
			return Result3{}, err
		}
	} else {
		endI, endJ, endK = nx-1, ny-1, nz-1
		if math.IsInf(d[(endI*ny+endJ)*nz+endK], 1) {
			return Result3{}, ErrAlignmentImpossible
		}
	}

	path := backtrack3(btd, steps, ny, nz, endI, endJ, endK)

	return Result3{Path: path, Cost: d[(endI*ny+endJ)*nz+endK]}, nil
}

// selectFlexEnd scans the three far faces for the candidate with the lowest
// average cost per Manhattan block. Candidates closer than minBuf cells to
// a boundary face along any non-saturated axis are excluded; a saturated
// axis (pinned to its far face) carries no buffer constraint. Ties keep the
// first candidate in i→j→k scan order.
func selectFlexEnd(d []float64, start []int32, nx, ny, nz, minBuf int) (int, int, int, error) {
	bestScore := math.Inf(1)
	endOff := -1
	var ei, ej, ek int
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				if i != nx-1 && j != ny-1 && k != nz-1 {
					continue // not on a far face
				}
				if i != nx-1 && (i < minBuf || i > nx-1-minBuf) {
					continue
				}
				if j != ny-1 && (j < minBuf || j > ny-1-minBuf) {
					continue
				}
				if k != nz-1 && (k < minBuf || k > nz-1-minBuf) {
					continue
				}
				off := (i*ny+j)*nz + k
				v := d[off]
				if math.IsInf(v, 1) {
					continue
				}
				man := (i - int(start[3*off])) + (j - int(start[3*off+1])) + (k - int(start[3*off+2]))
				if man < 1 {
					man = 1 // zero-length start==end candidates score their own cost
				}
				if score := v / float64(man); score < bestScore {
					bestScore = score
					endOff = off
					ei, ej, ek = i, j, k
				}
			}
		}
	}
	if endOff < 0 {
		return 0, 0, 0, ErrAlignmentImpossible
	}

	return ei, ej, ek, nil
}

// backtrack3 follows recorded transitions from the chosen endpoint to a
// start cell (trace value −1), then reverses.
func backtrack3(btd []int8, steps StepPattern3, ny, nz, i, j, k int) alignpath.Path3 {
	var rev []alignpath.Coord3
	for {
		rev = append(rev, alignpath.Coord3{A: float64(i), B: float64(j), C: float64(k)})
		s := btd[(i*ny+j)*nz+k]
		if s < 0 {
			break
		}
		i -= steps[s].DI
		j -= steps[s].DJ
		k -= steps[s].DK
	}

	pts := make([]alignpath.Coord3, len(rev))
	for idx := range rev {
		pts[idx] = rev[len(rev)-1-idx]
	}

	return alignpath.Path3{Unit: alignpath.Frames, Pts: pts}
}

package cost

import (
	"runtime"

	"github.com/tactusdsp/warpalign/grid"
	"golang.org/x/sync/errgroup"
)

// Matrix computes the dense N×M cost matrix between feature sequences a and
// b under the pairwise metric selected by kind. Entry (i,j) is the
// dissimilarity between frame i of a and frame j of b.
//
// Construction is data-parallel over row chunks: no cell depends on another,
// so each worker writes its own disjoint stripe of the flat buffer.
//
// Errors: ErrUnknownKind (non-pairwise kind), ErrEmptySequence,
// ErrShapeMismatch.
// Complexity: O(N·M·D) time across runtime.NumCPU() workers, O(N·M) memory.
func Matrix(a, b [][]float64, kind Kind) (*grid.Dense, error) {
	dist, err := Resolve(kind)
	if err != nil {
		return nil, err
	}
	if _, err = frameDim(a, b); err != nil {
		return nil, err
	}

	n, m := len(a), len(b)
	c, err := grid.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	data := c.Data()

	var g errgroup.Group
	for _, ch := range chunks(n) {
		lo, hi := ch[0], ch[1]
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				ai := a[i]
				base := i * m
				for j := 0; j < m; j++ {
					data[base+j] = dist(ai, b[j])
				}
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

// chunks splits [0,n) into up to runtime.NumCPU() contiguous [lo,hi) ranges.
func chunks(n int) [][2]int {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	size := (n + workers - 1) / workers

	var out [][2]int
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}

	return out
}

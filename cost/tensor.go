package cost

import (
	"fmt"

	"github.com/tactusdsp/warpalign/grid"
	"golang.org/x/sync/errgroup"
)

// Tensor computes the dense N×M×K mixture cost tensor for part sequences x
// and y against full-mix sequence z under the mixture metric selected by
// kind (MixtureSum or ExplainDiff). Entry (i,j,k) is the dissimilarity
// between mix frame z[k] and the combination of part frames x[i] and y[j]
// under the Gains(x, y) loudness renormalization.
//
// Construction dominates 3-sequence alignment runtime and is data-parallel
// over chunks of the first axis, with one scratch vector per worker. No
// internal pruning is performed: callers pre-crop or downsample the inputs
// to keep N·M·K tractable.
//
// Errors: ErrUnknownKind (non-mixture kind), ErrEmptySequence,
// ErrShapeMismatch.
// Complexity: O(N·M·K·D) time across runtime.NumCPU() workers,
// O(N·M·K) memory.
func Tensor(x, y, z [][]float64, kind Kind) (*grid.Dense3, error) {
	if kind != MixtureSum && kind != ExplainDiff {
		return nil, fmt.Errorf("cost: %v is not a mixture kind: %w", kind, ErrUnknownKind)
	}
	dim, err := frameDim(x, y, z)
	if err != nil {
		return nil, err
	}

	n, m, k := len(x), len(y), len(z)
	t, err := grid.NewDense3(n, m, k)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	gx, gy := Gains(x, y)

	var g errgroup.Group
	for _, ch := range chunks(n) {
		lo, hi := ch[0], ch[1]
		g.Go(func() error {
			buf := make([]float64, dim) // per-worker scratch, reused per cell
			switch kind {
			case MixtureSum:
				fillMixSum(data, x, y, z, gx, gy, lo, hi, buf)
			case ExplainDiff:
				fillExplainDiff(data, x, y, z, gx, lo, hi, buf)
			}

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return t, nil
}

// fillMixSum writes rows [lo,hi) of the MixtureSum tensor. The mixture
// vector depends on (i,j) only, so it is formed once per (i,j) pair and
// compared against every z frame.
func fillMixSum(data []float64, x, y, z [][]float64, gx, gy float64, lo, hi int, mix []float64) {
	m, kk := len(y), len(z)
	for i := lo; i < hi; i++ {
		xi := x[i]
		for j := 0; j < m; j++ {
			yj := y[j]
			for d := range mix {
				mix[d] = gx*xi[d] + gy*yj[d]
			}
			base := (i*m + j) * kk
			for k := 0; k < kk; k++ {
				data[base+k] = CosineDistance(z[k], mix)
			}
		}
	}
}

// fillExplainDiff writes rows [lo,hi) of the ExplainDiff tensor. The
// residual depends on (i,k) only, so the k loop sits outside the j loop;
// writes along j are strided by K.
func fillExplainDiff(data []float64, x, y, z [][]float64, gx float64, lo, hi int, res []float64) {
	m, kk := len(y), len(z)
	for i := lo; i < hi; i++ {
		xi := x[i]
		for k := 0; k < kk; k++ {
			zk := z[k]
			for d := range res {
				r := zk[d] - gx*xi[d]
				if r < 0 {
					r = 0
				}
				res[d] = r
			}
			base := i * m * kk
			for j := 0; j < m; j++ {
				data[base+j*kk+k] = CosineDistance(res, y[j])
			}
		}
	}
}

package dtw3_test

import (
	"testing"

	"github.com/tactusdsp/warpalign/dtw3"
	"github.com/tactusdsp/warpalign/grid"
)

// benchmarkSolve3 runs the solver on an n³ synthetic tensor with a cheap
// cube diagonal band, resetting the timer after setup.
func benchmarkSolve3(b *testing.B, n int, opts dtw3.Options3) {
	c, err := grid.NewDense3(n, n, n)
	if err != nil {
		b.Fatalf("NewDense3 failed: %v", err)
	}
	data := c.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				data[(i*n+j)*n+k] = float64((i+j+k)%7) * 0.1
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw3.Solve(c, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve3_Standard60 benchmarks standard mode on 60³ cells, the
// scale of a few seconds of audio at coarse hop.
func BenchmarkSolve3_Standard60(b *testing.B) {
	benchmarkSolve3(b, 60, dtw3.DefaultOptions3())
}

// BenchmarkSolve3_Flex60 benchmarks flexible boundaries with the extra
// start-of-path bookkeeping and far-face scan.
func BenchmarkSolve3_Flex60(b *testing.B) {
	benchmarkSolve3(b, 60, dtw3.Options3{Steps: dtw3.Diagonal3(), Mode: dtw3.Flex3, MinBuffer: 4})
}

package dtw3

import (
	"errors"
	"fmt"
	"math"

	"github.com/tactusdsp/warpalign/alignpath"
)

// Sentinel errors returned by the 3-sequence solver.
var (
	// ErrInvalidStepPattern indicates a malformed 3D step pattern.
	ErrInvalidStepPattern = errors.New("dtw3: invalid step pattern")

	// ErrAlignmentImpossible indicates that no endpoint candidate is
	// reachable under the given step pattern and buffer constraints.
	ErrAlignmentImpossible = errors.New("dtw3: no feasible alignment path")

	// ErrNilTensor indicates a nil cost tensor.
	ErrNilTensor = errors.New("dtw3: cost tensor is nil")

	// ErrBadMode indicates an unrecognized solve mode.
	ErrBadMode = errors.New("dtw3: unknown solve mode")

	// ErrBadBuffer indicates a negative minimum buffer distance.
	ErrBadBuffer = errors.New("dtw3: MinBuffer must be non-negative")
)

// Step3 is one allowed transition of the 3D recurrence: the path may move
// from (i−DI, j−DJ, k−DK) to (i, j, k) at cost Weight·T[i,j,k].
type Step3 struct {
	DI, DJ, DK int
	Weight     float64
}

// StepPattern3 is the ordered set of allowed transitions; ties in the
// recurrence break to the first step declared.
type StepPattern3 []Step3

// Validate rejects malformed patterns at construction time. Rules mirror
// the 2D solver: at least one step; non-negative displacements; no step
// with zero displacement in every dimension; finite non-negative weights.
func (sp StepPattern3) Validate() error {
	if len(sp) == 0 {
		return fmt.Errorf("dtw3: empty pattern: %w", ErrInvalidStepPattern)
	}
	for s, st := range sp {
		if st.DI < 0 || st.DJ < 0 || st.DK < 0 {
			return fmt.Errorf("dtw3: step %d has negative displacement (%d,%d,%d): %w",
				s, st.DI, st.DJ, st.DK, ErrInvalidStepPattern)
		}
		if st.DI == 0 && st.DJ == 0 && st.DK == 0 {
			return fmt.Errorf("dtw3: step %d has zero displacement: %w", s, ErrInvalidStepPattern)
		}
		if st.Weight < 0 || math.IsNaN(st.Weight) || math.IsInf(st.Weight, 0) {
			return fmt.Errorf("dtw3: step %d has weight %g: %w", s, st.Weight, ErrInvalidStepPattern)
		}
	}

	return nil
}

// Diagonal3 returns the seven non-zero {0,1}³ displacements, diagonal
// first, each weighted by its number of advancing axes so that multi-axis
// moves are not unfairly cheap per Manhattan block.
func Diagonal3() StepPattern3 {
	return StepPattern3{
		{DI: 1, DJ: 1, DK: 1, Weight: 3},
		{DI: 1, DJ: 1, DK: 0, Weight: 2},
		{DI: 1, DJ: 0, DK: 1, Weight: 2},
		{DI: 0, DJ: 1, DK: 1, Weight: 2},
		{DI: 1, DJ: 0, DK: 0, Weight: 1},
		{DI: 0, DJ: 1, DK: 0, Weight: 1},
		{DI: 0, DJ: 0, DK: 1, Weight: 1},
	}
}

// Mode3 selects the boundary condition of a solve.
type Mode3 int

const (
	// Standard3 anchors the path at (0,0,0) and (N−1,M−1,K−1).
	Standard3 Mode3 = iota

	// Flex3 lets the path start on the three origin-adjacent faces and
	// end on the three far faces, scored per Manhattan block.
	Flex3
)

// String implements fmt.Stringer for diagnostics.
func (m Mode3) String() string {
	switch m {
	case Standard3:
		return "Standard3"
	case Flex3:
		return "Flex3"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Options3 configures a solve call. MinBuffer applies in Flex3 mode only:
// endpoint candidates closer than MinBuffer cells to a boundary face along
// any non-saturated axis are excluded.
type Options3 struct {
	Steps     StepPattern3
	Mode      Mode3
	MinBuffer int
}

// DefaultOptions3 returns the Diagonal3 pattern in Standard3 mode with no
// buffer.
func DefaultOptions3() Options3 {
	return Options3{Steps: Diagonal3(), Mode: Standard3, MinBuffer: 0}
}

// Result3 holds the outcome of a solve: the minimum-cost monotonic path in
// frame units and its accumulated cost.
type Result3 struct {
	Path alignpath.Path3
	Cost float64
}

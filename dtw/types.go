package dtw

import (
	"errors"
	"fmt"
	"math"

	"github.com/tactusdsp/warpalign/alignpath"
)

// Sentinel errors returned by the pairwise solver.
var (
	// ErrInvalidStepPattern indicates a malformed step pattern: empty,
	// a step with no displacement (would loop forever), a negative
	// displacement, or a negative/non-finite weight.
	ErrInvalidStepPattern = errors.New("dtw: invalid step pattern")

	// ErrAlignmentImpossible indicates that the endpoint cell remained at
	// the +Inf sentinel: the sequences cannot be connected under the given
	// step pattern.
	ErrAlignmentImpossible = errors.New("dtw: no feasible alignment path")

	// ErrNilCost indicates a nil cost matrix.
	ErrNilCost = errors.New("dtw: cost matrix is nil")

	// ErrBadMode indicates an unrecognized solve mode.
	ErrBadMode = errors.New("dtw: unknown solve mode")
)

// Step is one allowed transition of the DP recurrence: the path may move
// from (i−DI, j−DJ) to (i, j) at cost Weight·C[i,j].
type Step struct {
	DI, DJ int
	Weight float64
}

// StepPattern is the ordered set of allowed transitions. Order matters:
// ties in the recurrence break to the first step declared.
type StepPattern []Step

// Validate rejects malformed patterns at construction time rather than at
// first use. Rules: at least one step; every displacement non-negative (the
// DP visits cells in increasing order); no step with zero displacement in
// both dimensions; weights non-negative and finite.
func (sp StepPattern) Validate() error {
	if len(sp) == 0 {
		return fmt.Errorf("dtw: empty pattern: %w", ErrInvalidStepPattern)
	}
	for s, st := range sp {
		if st.DI < 0 || st.DJ < 0 {
			return fmt.Errorf("dtw: step %d has negative displacement (%d,%d): %w",
				s, st.DI, st.DJ, ErrInvalidStepPattern)
		}
		if st.DI == 0 && st.DJ == 0 {
			return fmt.Errorf("dtw: step %d has zero displacement: %w", s, ErrInvalidStepPattern)
		}
		if st.Weight < 0 || math.IsNaN(st.Weight) || math.IsInf(st.Weight, 0) {
			return fmt.Errorf("dtw: step %d has weight %g: %w", s, st.Weight, ErrInvalidStepPattern)
		}
	}

	return nil
}

// NewStepPattern pairs parallel displacement and weight arrays into a
// validated pattern. Returns ErrInvalidStepPattern when the lengths differ
// or any step is malformed.
func NewStepPattern(moves [][2]int, weights []float64) (StepPattern, error) {
	if len(moves) != len(weights) {
		return nil, fmt.Errorf("dtw: %d moves vs %d weights: %w",
			len(moves), len(weights), ErrInvalidStepPattern)
	}
	sp := make(StepPattern, len(moves))
	for s, mv := range moves {
		sp[s] = Step{DI: mv[0], DJ: mv[1], Weight: weights[s]}
	}
	if err := sp.Validate(); err != nil {
		return nil, err
	}

	return sp, nil
}

// Unit returns the minimal pattern {(1,1), (1,0), (0,1)} with unit weights.
func Unit() StepPattern {
	return StepPattern{
		{DI: 1, DJ: 1, Weight: 1},
		{DI: 1, DJ: 0, Weight: 1},
		{DI: 0, DJ: 1, Weight: 1},
	}
}

// Asymmetric returns the slope-constrained pattern
// {(1,1):1, (1,2):1, (2,1):2} commonly used for audio alignment: the path
// advances at least half and at most double speed along either axis.
func Asymmetric() StepPattern {
	return StepPattern{
		{DI: 1, DJ: 1, Weight: 1},
		{DI: 1, DJ: 2, Weight: 1},
		{DI: 2, DJ: 1, Weight: 2},
	}
}

// Mode selects the boundary condition of a solve.
type Mode int

const (
	// Standard anchors the path at (0,0) and (N−1,M−1).
	Standard Mode = iota

	// Subsequence lets the path start and end at any column of the last
	// sequence's axis; the first sequence (rows) is matched in full.
	Subsequence

	// FixedStartFlexEnd pins the start to (0,0) but leaves the end column
	// free: standard initialization, subsequence endpoint selection.
	FixedStartFlexEnd
)

// String implements fmt.Stringer for diagnostics.
func (m Mode) String() string {
	switch m {
	case Standard:
		return "Standard"
	case Subsequence:
		return "Subsequence"
	case FixedStartFlexEnd:
		return "FixedStartFlexEnd"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Options configures a solve call. Construct with DefaultOptions and
// override fields; Solve validates before any allocation.
type Options struct {
	Steps StepPattern
	Mode  Mode
}

// DefaultOptions returns the Unit step pattern in Standard mode.
func DefaultOptions() Options {
	return Options{Steps: Unit(), Mode: Standard}
}

// Result holds the outcome of a solve: the minimum-cost monotonic path in
// frame units and its accumulated cost.
type Result struct {
	Path alignpath.Path
	Cost float64
}

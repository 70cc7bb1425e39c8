package cost

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by cost construction.
var (
	// ErrEmptySequence indicates that a feature sequence has no frames.
	ErrEmptySequence = errors.New("cost: feature sequence is empty")

	// ErrShapeMismatch indicates inconsistent per-frame dimensionality,
	// either within one sequence or across the sequences being compared.
	ErrShapeMismatch = errors.New("cost: frame dimension mismatch")

	// ErrUnknownKind indicates an unrecognized Kind, or a Kind used in a
	// context it does not support (e.g. a pairwise kind passed to Tensor).
	ErrUnknownKind = errors.New("cost: unknown cost kind")
)

// Epsilon is the numerical floor added to denominators so that zero vectors
// and zero loudness never divide by zero.
const Epsilon = 1e-9

// Kind tags a cost function variant. Resolve the tag once at call-site
// construction; per-cell dispatch is never needed.
type Kind int

const (
	// Cosine is the pairwise cosine distance 1 − dot/(‖a‖·‖b‖+ε).
	Cosine Kind = iota

	// MixtureSum compares a full-mix frame against the gain-weighted sum
	// of two part frames. Mixture (3-sequence) contexts only.
	MixtureSum

	// ExplainDiff compares the mix-minus-first-part residual against the
	// second part. Mixture (3-sequence) contexts only.
	ExplainDiff
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case Cosine:
		return "Cosine"
	case MixtureSum:
		return "MixtureSum"
	case ExplainDiff:
		return "ExplainDiff"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Func computes a non-negative dissimilarity between two feature vectors.
// Vectors must be the same length (caller's responsibility on the scalar
// surface; Matrix validates).
type Func func(a, b []float64) float64

// MixtureFunc computes a non-negative dissimilarity between a full-mix
// frame z and the combination of two part frames x and y under gains gx, gy.
type MixtureFunc func(x, y, z []float64, gx, gy float64) float64

// Resolve returns the pairwise distance function for kind, or ErrUnknownKind
// when kind is not a pairwise metric.
func Resolve(kind Kind) (Func, error) {
	switch kind {
	case Cosine:
		return CosineDistance, nil
	case MixtureSum, ExplainDiff:
		return nil, fmt.Errorf("cost: %v is not a pairwise kind: %w", kind, ErrUnknownKind)
	default:
		return nil, fmt.Errorf("cost: kind %d: %w", int(kind), ErrUnknownKind)
	}
}

// ResolveMixture returns the mixture cost function for kind, or
// ErrUnknownKind when kind is not a mixture metric.
func ResolveMixture(kind Kind) (MixtureFunc, error) {
	switch kind {
	case MixtureSum:
		return MixSum, nil
	case ExplainDiff:
		return ExplainResidual, nil
	case Cosine:
		return nil, fmt.Errorf("cost: %v is not a mixture kind: %w", kind, ErrUnknownKind)
	default:
		return nil, fmt.Errorf("cost: kind %d: %w", int(kind), ErrUnknownKind)
	}
}

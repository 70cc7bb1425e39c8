// Package cost computes pairwise dissimilarity between feature vectors and
// builds the dense cost matrices (2D) and mixture cost tensors (3D) consumed
// by the dtw and dtw3 solvers.
//
// Metrics are selected through a tagged Kind resolved once per call — never
// re-dispatched per cell:
//
//   - Cosine      — 1 − normalized dot product, with an epsilon floor in the
//     denominator so zero vectors never divide by zero.
//   - MixtureSum  — distance between a full-mix frame z and the gain-weighted
//     sum of two part frames: Cosine(z, gx·x + gy·y).
//   - ExplainDiff — explanation-based difference: subtract the scaled first
//     part from the mix (floored at zero per dimension) and compare the
//     residual against the second part.
//
// Gain terms renormalize relative loudness between the two part sequences
// and are computed once per call as the ratio of mean per-frame magnitudes
// (see Gains).
//
// Matrix and Tensor construction is embarrassingly parallel — every cell is
// written exactly once by exactly one goroutine — and fans out across
// runtime.NumCPU() workers via errgroup. Tensor construction is the dominant
// cost of 3-sequence alignment: O(N·M·K·D) with D the frame dimension.
//
// All functions are pure: no I/O, no caching, no shared state between calls.
package cost

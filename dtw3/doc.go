// Package dtw3 implements the 3-sequence dynamic-time-warping solver: given
// a precomputed N×M×K cost tensor (package cost builds mixture tensors), a
// validated 3D step pattern, and a boundary mode, it computes a minimum-cost
// monotonic path through the tensor.
//
// Modes:
//
//   - Standard3 — path anchored at (0,0,0) and (N−1,M−1,K−1).
//
//   - Flex3     — FlexDTW-style boundaries: the path may start anywhere on
//     the three faces adjacent to the origin corner (i=0, j=0 or k=0) and
//     end anywhere on the three faces adjacent to the opposite corner.
//     Endpoint candidates are scored by average cost per Manhattan block,
//     score = D[end] / max(1, |end − startOf(end)|₁),
//     and the minimum-score candidate wins, subject to a configurable
//     minimum buffer distance from the boundary faces of every
//     non-saturated axis (excluding degenerate near-zero-length paths).
//     Tracking startOf requires a second auxiliary grid holding, per cell,
//     the coordinates of the path start that reached it; the recurrence
//     copies the winning predecessor's start, and a start-face cell keeps a
//     fresh self-start unless an inherited path is strictly cheaper.
//
// This is deliberately a brute-force O(N·M·K·L) dense scan: no tensor
// sparsification, beam search, or hierarchical downsampling. Keeping
// N·M·K tractable (pre-cropping, feature downsampling) is the caller's
// responsibility, as is any memoization of tensor construction.
//
// Memory per cell: 8 B accumulated cost + 1 B backtrace, plus 12 B start
// coordinates in Flex3 mode.
package dtw3

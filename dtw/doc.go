// Package dtw implements the generalized pairwise dynamic-time-warping
// solver: given a precomputed cost matrix, a validated step pattern, and a
// boundary mode, it computes a minimum-cost monotonic path through the
// matrix.
//
// Algorithm outline:
//  1. Let the cost matrix C be N×M. Allocate an accumulated-cost grid D of
//     the same shape, filled with +Inf, and a backtrace plane.
//  2. Initialize: Standard and FixedStartFlexEnd set D[0,0] = C[0,0];
//     Subsequence additionally sets D[0,j] = C[0,j] for every j (the path
//     may start anywhere along the reference).
//  3. For every cell in row-major order:
//     D[i,j] = min over steps (di,dj,w) of D[i−di, j−dj] + w·C[i,j],
//     keeping whichever is smaller between the initialization value and the
//     best step. Ties break to the first step in declaration order. Cells
//     with no finite predecessor stay at +Inf (unreachable).
//  4. Endpoint: Standard ends at (N−1, M−1); Subsequence and
//     FixedStartFlexEnd end at the minimum-cost cell of the last row
//     (lowest column index on ties).
//  5. Backtrack the recorded transitions from the endpoint to a start cell,
//     then reverse.
//
// Modes:
//   - Standard          — path from (0,0) to (N−1,M−1).
//   - Subsequence       — free start and end column; locates a short query
//     (rows) inside a longer reference (columns).
//   - FixedStartFlexEnd — start pinned to (0,0), end column free.
//
// Step patterns are validated at construction: every transition must have
// non-negative displacements, at least one positive displacement (a zero
// step would loop forever), and a finite non-negative weight.
//
// Complexity: O(N·M·L) time and O(N·M) memory, L = number of steps.
// Deterministic: identical inputs produce identical grids and paths.
//
// Errors:
//   - ErrInvalidStepPattern  — malformed steps or weights.
//   - ErrAlignmentImpossible — the endpoint is unreachable under the
//     given step pattern (e.g. sequences too short for the minimum step).
package dtw

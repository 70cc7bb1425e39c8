// Package alignpath defines the alignment path produced by the dtw and dtw3
// solvers and the pure conversion utilities every solver output passes
// through before it is meaningful to a caller.
//
// A Path is an ordered sequence of coordinate pairs, monotonically
// non-decreasing in both components, tagged with the Unit its coordinates
// are expressed in (Frames or Seconds). The unit tag turns frames-vs-seconds
// confusion — the classic silent bug of alignment pipelines — into an
// explicit ErrUnitMismatch at the call boundary instead of a bad result.
//
// Provided operations:
//
//   - ToSeconds — frame-index path × per-axis hop size → seconds path
//   - Shift     — additive offset correction for paths computed on a
//     cropped sub-window of the full sequence
//   - Invert    — swap the two axes (B→A from A→B)
//   - Compose   — chain path(A→B) with path(B→C) into path(A→C) by
//     monotonic linear interpolation over a dense sampling grid
//   - FilterPlateaus — drop interior points where either axis stalls
//
// All operations are pure and never mutate their inputs.
package alignpath

// Package grid provides dense row-major storage for the alignment engine:
// float64 matrices (Dense) and tensors (Dense3) used for cost and
// accumulated-cost grids, plus int8 planes (Trace, Trace3) used to record
// backtrace decisions.
//
// Design notes:
//
//   - Storage is a single flat slice with the explicit index formula
//     i*cols + j (2D) or (i*ny+j)*nz + k (3D) for cache friendliness.
//   - The public surface is safe: At/Set return errors instead of panicking.
//   - Hot loops in the solver packages bypass the checked accessors via
//     Data() and Offset(), which expose the flat buffer and index math.
//   - Fixed loop orders everywhere; no map iteration, no randomness.
//
// Memory quicksheet:
//
//	Dense:  8·r·c bytes        Trace:  r·c bytes
//	Dense3: 8·nx·ny·nz bytes   Trace3: nx·ny·nz bytes
//
// A Dense3 over three sequences of a few thousand frames each is gigabytes
// in size; callers are expected to pre-crop or downsample before building
// one (see package dtw3).
package grid

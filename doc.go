// Package warpalign aligns pairs and triples of time-series feature
// sequences — chroma, CQT, or any fixed-dimension frame vectors extracted
// from audio — producing monotonic correspondences between time indices.
//
// 🚀 What is warpalign?
//
//	A pure-Go dynamic-time-warping engine that brings together:
//		• Cost metrics: cosine distance, mixture & explanation-based variants
//		• Pairwise DTW: standard, subsequence, fixed-start/variable-end modes
//		• Triple DTW: joint 3-sequence alignment with flexible boundary faces
//		• Composition: chain two pairwise alignments into a transitive one
//		• Codec: frame-index ↔ seconds conversion with offset correction
//
// ✨ Why choose warpalign?
//
//   - Explicit, validated step patterns – malformed configs fail before any DP
//   - Deterministic – fixed tie-breaking, byte-identical results across runs
//   - Pure functions – no hidden I/O, no shared state between solve calls
//   - Parallel cost construction – matrix/tensor fills scale across cores
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/      — dense row-major float64 matrices & tensors, backtrace planes
//	cost/      — distance functions and parallel cost matrix/tensor builders
//	dtw/       — the 2D dynamic-programming solver
//	dtw3/      — the 3D solver, corner-to-corner and FlexDTW-style boundaries
//	alignpath/ — unit-tagged alignment paths, composition and conversion
//
// Quick ASCII example:
//
//	    piano  ──DTW──▶ full mix ◀──DTW── orchestra
//	                 └── Compose ──┘
//	          piano ──────────▶ orchestra
//
// aligns two part recordings through their shared mixture.
//
// Dive into the per-package docs for recurrences, modes and complexity notes.
//
//	go get github.com/tactusdsp/warpalign
package warpalign

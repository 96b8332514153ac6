// Package lattice defines the strongly-typed boundary records of the
// phase-advance engine: the accelerator model and the per-file
// measurement samples.
//
// 🚀 What is lattice?
//
//	The engine's input surface, validated once at construction instead of
//	being poked through string-keyed tables at every access:
//	  • Model — ordered lattice elements {Name, S, MuX, MuY}, fractional
//	    model tunes and the beam direction, with an O(1) name→index lookup
//	  • Measurement — one measurement file: per-BPM angular samples plus
//	    the file-wide fractional tune and its RMS
//	  • Plane — the transverse plane selector (X/Y a.k.a. H/V)
//
// Ordering matters: Model keeps elements in accelerator-sequence order,
// not sorted, because "next BPM on the ring" adjacency and the one-turn
// wraparound row are defined by that sequence.
//
// All angular values are fractional phases on [0, 1); the engine wraps
// defensively, so the boundary only checks finiteness, not range.
package lattice

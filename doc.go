// Package betaphase reconstructs betatron phase advances between every
// pair of beam-position monitors (BPMs) of a circular accelerator from
// repeated turn-by-turn measurement records.
//
// 🚀 What is betaphase?
//
//	A pure-Go library for optics measurement analysis that brings together:
//		• Circular statistics: de-aliased means, dispersions and the
//		  Hill small-sample quantile correction for angular data
//		• Dense grids: NaN-aware row-major matrices for BPM×BPM results
//		• Phase-advance builders: Fourier-domain intersection averaging
//		  and missing-data-tolerant union averaging
//		• Tune aggregation: inverse-variance weighted fractional tunes
//		• Excitation compensation sequencing: driven → free motion via a
//		  pluggable compensator collaborator
//		• Result write-out: headline diagnostics, per-pair rows and the
//		  full-turn wraparound row, emitted through a sink interface
//
// ✨ Why choose betaphase?
//
//   - Deterministic – fixed loop orders, no globals, reproducible numbers
//   - Strict sentinels – every failure is an errors.Is-matchable value
//   - Pure Go – no cgo, no hidden deps
//   - Testable – the engine is a function of explicit inputs and Options
//
// Everything is organized under five subpackages:
//
//	circstat/ — circular mean, dispersion and t-quantile correction
//	matrix/   — dense float64 and int grids with NaN-aware fills
//	lattice/  — typed model and measurement boundary records
//	phase/    — the phase-advance engine, builders and write-out
//	tfs/      — a table-file sink implementing phase.ResultFile
//
// Quick ASCII example:
//
//	    BPM.A ──φ₁──▶ BPM.B ──φ₂──▶ BPM.C
//	      ▲                           │
//	      └───────── full turn ◀──────┘
//
//	the engine materializes φ between every ordered pair, mod one turn.
//
// Dive into each package's doc.go for algorithms, contracts and examples.
//
//	go get github.com/lhcoptics/betaphase
package betaphase

// Package phase is the phase-advance computation engine: it turns
// per-file angular phase samples per BPM into a BPM×BPM matrix of
// circular-mean phase advances, their circular standard errors and
// per-pair valid-sample counts, separately per transverse plane, and
// emits the results through a sink collaborator.
//
// 🚀 What is phase?
//
//	The numeric core of a turn-by-turn optics measurement analysis:
//	  • Intersection — Fourier-domain vector averaging when every file
//	    covers every BPM (error bars from the resultant length R)
//	  • Union — per-pair independent circular averaging tolerant of
//	    missing BPM coverage (error bars from (n-1)-normalized spreads
//	    with the Hill small-sample correction)
//	  • WeightedTune — inverse-variance aggregation of per-file tunes
//	  • Analyze — the per-plane orchestrator, including the driven→free
//	    excitation compensation sequencing via a Compensator collaborator
//	  • WritePhase / WriteTotalPhase / WriteResult — write-out through
//	    the ResultFile sink interface, with headline "important pair"
//	    diagnostics and the full-turn wraparound row
//
// ✨ Guarantees:
//   - Every measured or model phase advance lies in [0, 1) after the
//     engine's own wrap; differences are circular, never plain.
//   - A union pair without coverage is NaN with NFILES 0 — never a
//     silent zero; write-out skips such rows and reports them.
//   - Degenerate dispersion saturates to +Inf instead of producing NaN.
//   - Single-threaded, batch, O(files × BPMs²); results are immutable
//     after construction.
//
// ⚙️ Usage:
//
//	res, err := phase.Analyze(in, opts)          // compute both planes
//	warns, err := phase.WriteResult(sinks, res, in, opts)
//
// All configuration is an explicit Options value — no package globals.
package phase

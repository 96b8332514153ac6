package phase

import (
	"fmt"
	"log/slog"

	"github.com/lhcoptics/betaphase/lattice"
)

// ResultFile is the write-out collaborator: a structured result sink
// accepting descriptive header key/value pairs, one column declaration
// and data rows. Implementations decide the persistence format; the
// engine only sequences calls.
type ResultFile interface {
	// SetHeader records one descriptive key/value header pair.
	SetHeader(key string, value any)

	// SetColumns declares the column names and their format types.
	SetColumns(names, types []string)

	// AppendRow appends one data row, parallel to the declared columns.
	AppendRow(values []any)
}

// phaseColumns returns the column names and types of a phase-advance
// file for the given plane ("X" or "Y" label): source and destination
// BPM, their longitudinal positions, measured advance, its error, model
// advance, model phase of the source BPM, and the valid-file count.
func phaseColumns(p lattice.Plane, withCount bool) (names, types []string) {
	l := p.Label()
	names = []string{"NAME", "NAME2", "S", "S1", "PHASE" + l, "STDPH" + l, "PH" + l + "MDL", "MU" + l + "MDL"}
	types = []string{"%s", "%s", "%le", "%le", "%le", "%le", "%le", "%le"}
	if withCount {
		names = append(names, "COUNT")
		types = append(types, "%le")
	}
	return names, types
}

// boolWord renders a flag descriptor the way the result files spell it.
func boolWord(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// WritePhase emits one plane's Phase-Advance Matrix to sink: tune and
// flag headers, headline important-pair descriptors, one row per
// adjacent BPM pair along the ring, and the wraparound last→first row
// with the full-turn tune added to both measured and model values.
//
// model supplies longitudinal positions and model phases for the row
// columns; elements the full lattice table for landmark lookups (pass
// model when no separate element table exists). pairs lists the
// landmark element pairs for headline diagnostics.
//
// Recoverable defects — a landmark element missing from the lattice, a
// union-mode pair without data — are logged, collected into the returned
// warnings and skipped; they never abort the write.
//
// Errors: ErrNilSink, ErrNilAdvances, ErrNilModel, wrapped
// lattice.ErrUnknownName when a listed BPM is absent from model (fatal
// configuration defect).
func WritePhase(sink ResultFile, p lattice.Plane, adv *Advances, model, elements *lattice.Model,
	tuneX, tuneY float64, pairs [][2]string, opts Options) ([]Warning, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if adv == nil {
		return nil, ErrNilAdvances
	}
	if model == nil {
		return nil, ErrNilModel
	}
	if elements == nil {
		elements = model
	}
	log := opts.logger()

	planeTune := tuneX
	if p == lattice.PlaneY {
		planeTune = tuneY
	}

	sink.SetHeader("Q1", tuneX)
	sink.SetHeader("Q2", tuneY)
	sink.SetHeader("OptimisticErrorBars", boolWord(opts.OptimisticErrors))
	sink.SetHeader("UnionOfFiles", boolWord(opts.UseUnion))
	sink.SetColumns(phaseColumns(p, true))

	warnings := writeImportantPairs(sink, p, adv, elements, planeTune, log, pairs)

	n := adv.Len()
	rows := make([]lattice.Element, n)
	for i := 0; i < n; i++ {
		e, err := model.Element(adv.Name(i))
		if err != nil {
			return warnings, fmt.Errorf("phase: write: %w", err)
		}
		rows[i] = e
	}

	appendPair := func(i, j int, meas, mdl float64) {
		errVal, _ := adv.Err(i, j)
		count, _ := adv.NFiles(i, j)
		sink.AppendRow([]any{
			rows[i].Name, rows[j].Name,
			rows[i].S, rows[j].S,
			meas, errVal, mdl,
			rows[i].Mu(p),
			float64(count),
		})
	}

	for i := 0; i < n-1; i++ {
		count, _ := adv.NFiles(i, i+1)
		if count == 0 {
			w := Warning{Subject: rows[i].Name + " -> " + rows[i+1].Name, Reason: ErrNoPairData}
			warnings = append(warnings, w)
			log.Warn("skipping pair without contributing files",
				slog.String("pair", w.Subject), slog.String("plane", p.String()))
			continue
		}
		meas, _ := adv.Meas(i, i+1)
		mdl, _ := adv.Model(i, i+1)
		appendPair(i, i+1, meas, mdl)
	}

	// Wraparound row: last BPM back to the first needs the full-turn tune
	// on top of the materialized advance, both measured and model.
	last := n - 1
	if count, _ := adv.NFiles(last, 0); count == 0 {
		w := Warning{Subject: rows[last].Name + " -> " + rows[0].Name, Reason: ErrNoPairData}
		warnings = append(warnings, w)
		log.Warn("skipping wraparound pair without contributing files",
			slog.String("pair", w.Subject), slog.String("plane", p.String()))
		return warnings, nil
	}
	meas, _ := adv.Meas(last, 0)
	mdl, _ := adv.Model(last, 0)
	appendPair(last, 0, wrapUnit(meas+planeTune), wrapUnit(mdl+planeTune))

	return warnings, nil
}

// WriteTotalPhase emits one plane's accumulated phase relative to the
// first BPM: one row per BPM holding the advance from the first BPM to
// it. This replaces a separate total-phase computation — the full matrix
// already holds every advance.
//
// Errors: ErrNilSink, ErrNilAdvances, ErrNilModel, wrapped
// lattice.ErrUnknownName.
func WriteTotalPhase(sink ResultFile, p lattice.Plane, adv *Advances, model *lattice.Model,
	tuneX, tuneY float64, opts Options) ([]Warning, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if adv == nil {
		return nil, ErrNilAdvances
	}
	if model == nil {
		return nil, ErrNilModel
	}
	log := opts.logger()

	sink.SetHeader("Q1", tuneX)
	sink.SetHeader("Q2", tuneY)
	sink.SetColumns(phaseColumns(p, false))

	var warnings []Warning
	first, err := model.Element(adv.Name(0))
	if err != nil {
		return nil, fmt.Errorf("phase: write total: %w", err)
	}
	for i := 0; i < adv.Len(); i++ {
		e, eerr := model.Element(adv.Name(i))
		if eerr != nil {
			return warnings, fmt.Errorf("phase: write total: %w", eerr)
		}
		count, _ := adv.NFiles(0, i)
		if count == 0 && i != 0 {
			w := Warning{Subject: first.Name + " -> " + e.Name, Reason: ErrNoPairData}
			warnings = append(warnings, w)
			log.Warn("skipping total-phase row without contributing files",
				slog.String("pair", w.Subject), slog.String("plane", p.String()))
			continue
		}
		meas, _ := adv.Meas(0, i)
		errVal, _ := adv.Err(0, i)
		mdl, _ := adv.Model(0, i)
		sink.AppendRow([]any{
			e.Name, first.Name,
			e.S, first.S,
			meas, errVal, mdl,
			e.Mu(p),
		})
	}
	return warnings, nil
}

// PlaneSinks groups the result sinks of one plane. Driven sinks are only
// consulted for driven runs; a nil sink skips that output.
type PlaneSinks struct {
	Free        ResultFile
	FreeTotal   ResultFile
	Driven      ResultFile
	DrivenTotal ResultFile
}

// Sinks groups the result sinks of both planes.
type Sinks struct {
	X PlaneSinks
	Y PlaneSinks
}

// WriteResult sequences the full write-out of an Analyze result: per
// computed plane, the free phase and total-phase files and — under
// driven excitation — the raw driven pair. Warnings from all writes are
// concatenated.
//
// The Q1/Q2 headers carry both planes' tunes; a missing plane
// contributes 0 and a warning-level log entry.
func WriteResult(sinks Sinks, res *Result, in Input, opts Options) ([]Warning, error) {
	if res == nil {
		return nil, ErrNilAdvances
	}
	log := opts.logger()

	freeX, freeY := planeTunes(res, log, true)
	drvX, drvY := planeTunes(res, log, false)

	var all []Warning
	write := func(sink ResultFile, p lattice.Plane, adv *Advances, total bool, qx, qy float64) error {
		if sink == nil {
			return nil
		}
		var (
			warns []Warning
			err   error
		)
		if total {
			warns, err = WriteTotalPhase(sink, p, adv, in.Model, qx, qy, opts)
		} else {
			warns, err = WritePhase(sink, p, adv, in.Model, in.Elements, qx, qy, in.ImportantPairs, opts)
		}
		all = append(all, warns...)
		return err
	}

	for _, pr := range []*PlaneResult{res.X, res.Y} {
		if pr == nil {
			continue
		}
		ps := sinks.X
		if pr.Plane == lattice.PlaneY {
			ps = sinks.Y
		}
		if err := write(ps.Free, pr.Plane, pr.Free, false, freeX, freeY); err != nil {
			return all, err
		}
		if err := write(ps.FreeTotal, pr.Plane, pr.Free, true, freeX, freeY); err != nil {
			return all, err
		}
		if pr.Driven == nil {
			continue
		}
		if err := write(ps.Driven, pr.Plane, pr.Driven, false, drvX, drvY); err != nil {
			return all, err
		}
		if err := write(ps.DrivenTotal, pr.Plane, pr.Driven, true, drvX, drvY); err != nil {
			return all, err
		}
	}
	return all, nil
}

// planeTunes extracts the (X, Y) tunes for the header pair, free or
// driven flavor; a missing plane yields 0 with a warning log.
func planeTunes(res *Result, log *slog.Logger, free bool) (float64, float64) {
	pick := func(pr *PlaneResult, name string) float64 {
		if pr == nil {
			log.Warn("tune header defaults to 0 for missing plane", slog.String("plane", name))
			return 0
		}
		if free {
			return pr.FreeTune
		}
		return pr.Tune
	}
	return pick(res.X, "H"), pick(res.Y, "V")
}

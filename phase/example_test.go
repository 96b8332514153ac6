package phase_test

import (
	"fmt"
	"log"

	"github.com/lhcoptics/betaphase/lattice"
	"github.com/lhcoptics/betaphase/phase"
)

// ExampleAnalyze runs the free-motion pipeline on two horizontal
// turn-by-turn files and reads one advance off the resulting matrix.
func ExampleAnalyze() {
	elements := []lattice.Element{
		{Name: "BPM.A", S: 0, MuX: 0.00, MuY: 0.00},
		{Name: "BPM.B", S: 10, MuX: 0.25, MuY: 0.20},
		{Name: "BPM.C", S: 20, MuX: 0.55, MuY: 0.45},
	}
	model, err := lattice.NewModel(elements, 0.28, 0.31, 1)
	if err != nil {
		log.Fatal(err)
	}

	file1, _ := lattice.NewMeasurement(map[string]float64{
		"BPM.A": 0.02, "BPM.B": 0.27, "BPM.C": 0.60,
	}, 0.28, 0.001)
	file2, _ := lattice.NewMeasurement(map[string]float64{
		"BPM.A": 0.05, "BPM.B": 0.30, "BPM.C": 0.63,
	}, 0.28, 0.001)

	in := phase.Input{
		Model: model,
		X: phase.PlaneInput{
			Files:       []*lattice.Measurement{file1, file2},
			BPMs:        []string{"BPM.A", "BPM.B", "BPM.C"},
			LastTurnBPM: 2,
		},
	}
	res, err := phase.Analyze(in, phase.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	advance, _ := res.X.Free.Meas(0, 1)
	modelled, _ := res.X.Free.Model(0, 1)
	fmt.Printf("tune %.3f\n", res.X.Tune)
	fmt.Printf("A to B: measured %.3f, model %.3f\n", advance, modelled)
	// Output:
	// tune 0.280
	// A to B: measured 0.250, model 0.250
}

// ExampleWeightedTune shows the inverse-variance aggregation of the
// per-file tune estimates.
func ExampleWeightedTune() {
	f1, _ := lattice.NewMeasurement(map[string]float64{"BPM.A": 0.1}, 0.28, 0.001)
	f2, _ := lattice.NewMeasurement(map[string]float64{"BPM.A": 0.1}, 0.30, 0.002)

	tune, err := phase.WeightedTune([]*lattice.Measurement{f1, f2})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.3f\n", tune)
	// Output: 0.284
}

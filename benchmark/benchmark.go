// Package benchmark defines the benchmark record produced by running the
// solver over a textgraph instance: instance statistics, monotone solver
// counters, timing, and the verified flow value. Records are populated from
// a flow.CountingObserver after a solve completes, so the counters are
// only ever copied once, after they stop changing.
package benchmark

import (
	flow "github.com/kalexmills/weightedflow"
)

// Record is a single benchmark run.
type Record struct {
	Instance struct {
		NumVertices int
		NumEdges    int
		H           int
	}
	Counters struct {
		Iterations          int
		Relabels            int
		EdgeStateChanges    int
		AdmissibleEvents    int
		InadmissibleEvents  int
		DeadMarks           int
		PathLengthHistogram map[int]int
		RoutedFlowSum       int64
	}
	Timing struct {
		StartUnixNano   int64
		EndUnixNano     int64
		DurationSeconds float64
	}
	VerifiedFlow int64
}

// Capture builds a Record from a completed solve's CountingObserver and the
// instance's parameters. The caller supplies the start/end timestamps
// (rather than Capture calling time.Now itself) so that benchmark records
// built in a test remain reproducible.
func Capture(obs *flow.CountingObserver, numVertices, numEdges, h int, startUnixNano, endUnixNano int64, verifiedFlow int64) Record {
	var rec Record
	rec.Instance.NumVertices = numVertices
	rec.Instance.NumEdges = numEdges
	rec.Instance.H = h

	rec.Counters.Iterations = obs.Augments
	rec.Counters.Relabels = obs.Relabels
	rec.Counters.EdgeStateChanges = obs.AdmissibleEvents + obs.InadmissibleEvents
	rec.Counters.AdmissibleEvents = obs.AdmissibleEvents
	rec.Counters.InadmissibleEvents = obs.InadmissibleEvents
	rec.Counters.DeadMarks = obs.DeadMarks
	rec.Counters.PathLengthHistogram = obs.PathLengthHistogram
	rec.Counters.RoutedFlowSum = obs.RoutedFlow

	rec.Timing.StartUnixNano = startUnixNano
	rec.Timing.EndUnixNano = endUnixNano
	rec.Timing.DurationSeconds = float64(endUnixNano-startUnixNano) / 1e9

	rec.VerifiedFlow = verifiedFlow
	return rec
}

// graphgen generates random test instances in the textgraph format,
// promoted from kalexmills-flownet's testdata/partite_flow.go and
// cycle_flow.go scripts (both package-main generators invoked directly by
// `go run` against the test fixture directory) into a standalone binary.
// It is ancillary: no part of the core solver package depends on it.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	flow "github.com/kalexmills/weightedflow"
	"github.com/kalexmills/weightedflow/textgraph"
)

func main() {
	kind := flag.String("kind", "bipartite", "bipartite|cycle")
	sizeA := flag.Int("a", 10, "size of the first partition, or vertex count for a cycle")
	sizeB := flag.Int("b", 10, "size of the second partition (ignored for a cycle)")
	out := flag.String("out", "", "output file path (default: stdout)")
	logFile := flag.String("log", "", "optional rotated log file path; logs to stderr if unset")
	flag.Parse()

	logger := newLogger(*logFile)

	var inst textgraph.Instance
	switch *kind {
	case "cycle":
		inst = genCycle(*sizeA)
	default:
		inst = genBipartite(*sizeA, *sizeB)
	}
	logger.Info("generated instance", "kind", *kind, "vertices", inst.NumVertices, "edges", len(inst.Edges))

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Error("could not create output file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := textgraph.Format(f, inst); err != nil {
			logger.Error("could not write instance", "error", err)
			os.Exit(1)
		}
		return
	}
	if err := textgraph.Format(w, inst); err != nil {
		logger.Error("could not write instance", "error", err)
		os.Exit(1)
	}
}

func newLogger(logFile string) *slog.Logger {
	if logFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}, nil))
}

// genBipartite mirrors kalexmills-flownet/testdata/partite_flow.go's
// makeMultipartite for two partitions, generalized to textgraph's edge-line
// syntax and source/sink convention (source = 0, sink = the last vertex).
func genBipartite(a, b int) textgraph.Instance {
	n := a + b
	var edges []flow.Edge
	for i := 0; i < a; i++ {
		for j := 0; j < b; j++ {
			if rand.Float32() < 0.5 {
				edges = append(edges, flow.Edge{From: i, To: a + j, Cap: 1})
			}
		}
	}
	return textgraph.Instance{NumVertices: n, Edges: edges, Source: 0, Sink: n - 1}
}

// genCycle mirrors kalexmills-flownet/testdata/cycle_flow.go's generator
// for a single directed cycle with random capacities.
func genCycle(n int) textgraph.Instance {
	edges := make([]flow.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, flow.Edge{From: i, To: (i + 1) % n, Cap: int64(1 + rand.Intn(10))})
	}
	return textgraph.Instance{NumVertices: n, Edges: edges, Source: 0, Sink: n / 2}
}

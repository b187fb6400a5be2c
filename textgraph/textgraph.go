// Package textgraph parses and formats the text graph instance format: a
// header line "n m s t" (vertex count, edge count, source, sink) followed
// by m edge lines of the form "u-(c)>v". Self-loop lines are discarded
// during parsing; a repeated "u-(c)>v" line is not an error, it simply
// becomes a second parallel edge, the same way kalexmills-flownet's own
// loadInstance test helper treated a repeated "u v cap" line, generalized
// from that 3-integer line syntax to the arrow syntax here and promoted
// from a test helper into a small supporting package.
package textgraph

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	flow "github.com/kalexmills/weightedflow"
)

// Instance is a parsed text graph: a vertex count, an edge list suitable
// for flow.NewGraph, and a distinguished source/sink pair.
type Instance struct {
	NumVertices  int
	Edges        []flow.Edge
	Source, Sink int
}

var edgeLineRE = regexp.MustCompile(`^(\d+)-\((\d+)\)>(\d+)$`)

// Parse reads a text graph instance from r.
func Parse(r io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Instance{}, err
		}
		return Instance{}, fmt.Errorf("textgraph: empty input")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 4 {
		return Instance{}, fmt.Errorf("textgraph: header must have 4 fields, got %q", scanner.Text())
	}
	n, errN := strconv.Atoi(header[0])
	m, errM := strconv.Atoi(header[1])
	s, errS := strconv.Atoi(header[2])
	t, errT := strconv.Atoi(header[3])
	if errN != nil || errM != nil || errS != nil || errT != nil {
		return Instance{}, fmt.Errorf("textgraph: header fields must be integers, got %q", scanner.Text())
	}

	inst := Instance{NumVertices: n, Source: s, Sink: t}
	rawLines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		match := edgeLineRE.FindStringSubmatch(line)
		if match == nil {
			return Instance{}, fmt.Errorf("textgraph: malformed edge line %q", line)
		}
		rawLines++
		u, _ := strconv.Atoi(match[1])
		c, _ := strconv.Atoi(match[2])
		v, _ := strconv.Atoi(match[3])
		if u == v {
			continue // self-loops discarded
		}
		inst.Edges = append(inst.Edges, flow.Edge{From: u, To: v, Cap: int64(c)})
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, err
	}
	if rawLines != m {
		return Instance{}, fmt.Errorf("textgraph: header declared %d edges, found %d", m, rawLines)
	}
	return inst, nil
}

// Format writes inst in the text graph format.
func Format(w io.Writer, inst Instance) error {
	if _, err := fmt.Fprintf(w, "%d %d %d %d\n", inst.NumVertices, len(inst.Edges), inst.Source, inst.Sink); err != nil {
		return err
	}
	for _, e := range inst.Edges {
		if _, err := fmt.Fprintf(w, "%d-(%d)>%d\n", e.From, e.Cap, e.To); err != nil {
			return err
		}
	}
	return nil
}

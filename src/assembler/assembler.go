// Package assembler runs the core assembly: build the De Bruijn graph, check it, walk it and spell out the sequence
package assembler

import (
	"github.com/will-rowe/dbgasm/src/euler"
	"github.com/will-rowe/dbgasm/src/graph"
	"github.com/will-rowe/dbgasm/src/seqio"
)

// FailureMessage is reported in place of a sequence when the graph can't be assembled
const FailureMessage = "The DNA sequence can not be constructed!"

// Result holds everything produced by a single assembly
type Result struct {
	ID       string
	KmerSize int
	Graph    *graph.DeBruijnGraph // the graph is left untouched by the assembly and can be rendered afterwards
	Report   *euler.Report
	Trail    graph.Edges
	Sequence string
}

// Feasible returns true if a sequence was assembled
func (result *Result) Feasible() bool {
	return result.Report != nil && result.Report.Feasible()
}

// Output returns the assembled sequence, or the failure message if the graph could not be assembled
func (result *Result) Output() string {
	if !result.Feasible() {
		return FailureMessage
	}
	return result.Sequence
}

// Assemble builds a graph from the records and, if it holds an Eulerian trail, reconstructs the sequence
// An infeasible graph is not an error, it is reported via the Result. Errors are only returned for unusable input.
func Assemble(id string, records []*seqio.Record, kmerSize int) (*Result, error) {
	g, err := graph.Build(records, kmerSize)
	if err != nil {
		return nil, err
	}
	return AssembleGraph(id, g)
}

// AssembleGraph runs the feasibility check on an existing graph and assembles it if possible
func AssembleGraph(id string, g *graph.DeBruijnGraph) (*Result, error) {
	result := &Result{
		ID:       id,
		KmerSize: g.KmerSize,
		Graph:    g,
		Report:   euler.Check(g),
	}
	if !result.Report.Feasible() {
		return result, nil
	}
	trail, err := euler.ExtractTrail(g)
	if err != nil {
		return nil, err
	}
	seq, err := euler.Reconstruct(trail)
	if err != nil {
		return nil, err
	}
	result.Trail = trail
	result.Sequence = seq
	return result, nil
}

package assembler

import (
	"errors"
	"testing"

	"github.com/will-rowe/dbgasm/src/graph"
	"github.com/will-rowe/dbgasm/src/seqio"
)

func records(t *testing.T, seqs ...string) []*seqio.Record {
	t.Helper()
	recs := []*seqio.Record{}
	for i, seq := range seqs {
		record, err := seqio.NewRecord(string(rune('1'+i)), seq)
		if err != nil {
			t.Fatal(err)
		}
		recs = append(recs, record)
	}
	return recs
}

func TestAssembleCircuit(t *testing.T) {
	result, err := Assemble("reads_3", records(t, "GGGT", "TTGG", "GTTT"), 3)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Feasible() {
		t.Fatalf("graph should be feasible: %v", result.Report.Reason())
	}
	if result.Output() != "GGGTTTGG" {
		t.Fatalf("assembled %v, expected GGGTTTGG", result.Output())
	}
	if len(result.Trail) != result.Graph.NumEdges() {
		t.Fatal("trail does not cover the graph")
	}
	if result.Graph.OutDegree("GG") != 2 {
		t.Fatal("assembly modified the graph held by the result")
	}
}

func TestAssemblePath(t *testing.T) {
	result, err := Assemble("reads_5", records(t, "ATTACTCGCTA"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if result.Output() != "ATTACTCGCTA" {
		t.Fatalf("assembled %v, expected ATTACTCGCTA", result.Output())
	}
	if result.KmerSize != 5 || result.ID != "reads_5" {
		t.Fatal("result does not carry the run info")
	}
}

func TestAssembleInfeasible(t *testing.T) {
	g, err := graph.NewDeBruijnGraph(5)
	if err != nil {
		t.Fatal(err)
	}
	for _, edge := range [][2]string{
		{"ATTA", "TTAC"}, {"TTAC", "TACT"}, {"TACT", "ACTC"}, {"ACTC", "CTCG"},
		{"CTCG", "TCGC"}, {"TCGC", "CGCT"}, {"CGCT", "GCTA"}, {"TCGC", "GCTA"},
	} {
		g.AddEdge(edge[0], edge[1])
	}
	result, err := AssembleGraph("branched", g)
	if err != nil {
		t.Fatalf("an infeasible graph should not be an error: %v", err)
	}
	if result.Feasible() || result.Output() != FailureMessage {
		t.Fatalf("expected the failure message, got %v", result.Output())
	}
	if result.Trail != nil || result.Sequence != "" {
		t.Fatal("no trail should be extracted for an infeasible graph")
	}
}

func TestAssemblePreconditions(t *testing.T) {
	if _, err := Assemble("bad", records(t, "ACGT"), 1); !errors.Is(err, graph.ErrKmerSize) {
		t.Fatalf("expected ErrKmerSize, got %v", err)
	}
	if _, err := Assemble("bad", records(t, "ACGT", "AC"), 3); !errors.Is(err, graph.ErrKmerSize) {
		t.Fatalf("expected ErrKmerSize, got %v", err)
	}
}

func TestAssembleNoRecords(t *testing.T) {
	result, err := Assemble("empty", nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if result.Feasible() || result.Output() != FailureMessage {
		t.Fatal("an empty graph should not be assembled")
	}
}

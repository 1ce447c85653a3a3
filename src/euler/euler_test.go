package euler

import (
	"errors"
	"testing"

	"github.com/will-rowe/dbgasm/src/graph"
	"github.com/will-rowe/dbgasm/src/seqio"
)

// test edge lists
var (
	circuitEdges = [][2]string{{"ATTA", "TTAC"}, {"TTAC", "TACT"}, {"TACT", "ACTC"}, {"ACTC", "ATTA"}}
	multiEdges   = [][2]string{{"GG", "GG"}, {"GG", "GT"}, {"GT", "TT"}, {"TT", "TG"}, {"TT", "TT"}, {"TG", "GG"}}
	pathEdges    = [][2]string{
		{"ATTA", "TTAC"}, {"TTAC", "TACT"}, {"TACT", "ACTC"}, {"ACTC", "CTCG"},
		{"CTCG", "TCGC"}, {"TCGC", "CGCT"}, {"CGCT", "GCTA"},
	}
	branchedEdges = append(append([][2]string{}, pathEdges...), [2]string{"TCGC", "GCTA"})
)

func graphFromEdges(t *testing.T, edges [][2]string) *graph.DeBruijnGraph {
	t.Helper()
	g, err := graph.NewDeBruijnGraph(len(edges[0][0]) + 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, edge := range edges {
		g.AddEdge(edge[0], edge[1])
	}
	return g
}

func graphFromSeqs(t *testing.T, k int, seqs ...string) *graph.DeBruijnGraph {
	t.Helper()
	records := []*seqio.Record{}
	for i, seq := range seqs {
		record, err := seqio.NewRecord(string(rune('a'+i)), seq)
		if err != nil {
			t.Fatal(err)
		}
		records = append(records, record)
	}
	g, err := graph.Build(records, k)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestIsEulerian(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		want  bool
	}{
		{"circuit", circuitEdges, true},
		{"circuit with self loops", multiEdges, true},
		{"path", pathEdges, true},
		{"branched", branchedEdges, false},
	}
	for _, tt := range tests {
		if got := IsEulerian(graphFromEdges(t, tt.edges)); got != tt.want {
			t.Errorf("%v: IsEulerian returned %v, expected %v", tt.name, got, tt.want)
		}
	}
}

func TestCheckKinds(t *testing.T) {
	report := Check(graphFromSeqs(t, 3, "GGGT", "TTGG", "GTTT"))
	if report.Kind != Circuit || !report.Feasible() || len(report.Imbalances) != 0 {
		t.Fatalf("expected a circuit, got %v (%v)", report.Kind, report.Reason())
	}
	report = Check(graphFromSeqs(t, 5, "ATTACTCGCTA"))
	if report.Kind != Path {
		t.Fatalf("expected a path, got %v (%v)", report.Kind, report.Reason())
	}
	if report.start() != "ATTA" || report.end() != "GCTA" {
		t.Fatalf("incorrect path ends: %v -> %v", report.start(), report.end())
	}
	report = Check(graphFromEdges(t, branchedEdges))
	if report.Kind != Infeasible || len(report.Imbalances) != 3 {
		t.Fatalf("expected 3 imbalanced nodes, got %d (%v)", len(report.Imbalances), report.Reason())
	}
}

func TestImbalanceRejection(t *testing.T) {
	// two imbalanced nodes, but +2/-2
	doubled := graphFromEdges(t, [][2]string{{"AA", "AC"}, {"AA", "AC"}})
	if report := Check(doubled); report.Feasible() || len(report.Imbalances) != 2 {
		t.Fatalf("+2/-2 imbalance should be infeasible: %v", report.Reason())
	}
	// four imbalanced nodes
	split := graphFromEdges(t, [][2]string{{"AA", "AC"}, {"AA", "AG"}, {"AT", "AA"}, {"AA", "AT"}, {"AT", "AA"}})
	if IsEulerian(split) {
		t.Fatal("graph with more than two imbalanced nodes should be infeasible")
	}
}

// reachability only follows out edges from the first node added
func TestForwardReachability(t *testing.T) {
	g := graphFromEdges(t, [][2]string{{"TT", "TA"}, {"AT", "TT"}})
	report := Check(g)
	if report.Reachable || report.Feasible() {
		t.Fatalf("AT can't be reached from TT, graph should be infeasible: %v", report.Reason())
	}
	g = graphFromEdges(t, [][2]string{{"AT", "TT"}, {"TT", "TA"}})
	if !IsEulerian(g) {
		t.Fatal("the same edges added from the start node should be feasible")
	}
}

func TestEmptyGraph(t *testing.T) {
	g, err := graph.NewDeBruijnGraph(3)
	if err != nil {
		t.Fatal(err)
	}
	if IsEulerian(g) {
		t.Fatal("empty graph should not be feasible")
	}
	if _, err := ExtractTrail(g); !errors.Is(err, ErrEmptyGraph) {
		t.Fatalf("expected ErrEmptyGraph, got %v", err)
	}
}

func TestStartNode(t *testing.T) {
	if node := StartNode(graphFromEdges(t, pathEdges)); node.Label != "ATTA" {
		t.Fatalf("path should start at ATTA, not %v", node.Label)
	}
	if node := StartNode(graphFromEdges(t, [][2]string{{"CC", "CA"}, {"CA", "AC"}, {"AC", "CC"}})); node.Label != "CC" {
		t.Fatalf("circuit should start at the first node, not %v", node.Label)
	}
}

func TestExtractTrail(t *testing.T) {
	tests := []struct {
		name     string
		edges    [][2]string
		expected string
	}{
		{"short path", [][2]string{{"AAA", "AAC"}, {"AAC", "ACA"}, {"ACA", "CAC"}}, "AAACAC"},
		{"path", pathEdges, "ATTACTCGCTA"},
		{"circuit", multiEdges, "GGGTTTGG"},
	}
	for _, tt := range tests {
		trail, err := ExtractTrail(graphFromEdges(t, tt.edges))
		if err != nil {
			t.Fatalf("%v: %v", tt.name, err)
		}
		seq, err := Reconstruct(trail)
		if err != nil {
			t.Fatalf("%v: %v", tt.name, err)
		}
		if seq != tt.expected {
			t.Errorf("%v: reconstructed %v, expected %v", tt.name, seq, tt.expected)
		}
	}
}

// the smallest destination label is always taken first
func TestTieBreak(t *testing.T) {
	g := graphFromSeqs(t, 3, "GGGT", "TTGG", "GTTT")
	trail, err := ExtractTrail(g)
	if err != nil {
		t.Fatal(err)
	}
	expectedIDs := []int{0, 1, 4, 5, 2, 3}
	for i, edge := range trail {
		if edge.ID != expectedIDs[i] {
			t.Fatalf("trail position %d used edge %d (%v->%v), expected edge %d", i, edge.ID, edge.From, edge.To, expectedIDs[i])
		}
	}
}

func TestTrailCompleteness(t *testing.T) {
	for _, g := range []*graph.DeBruijnGraph{
		graphFromSeqs(t, 3, "GGGT", "TTGG", "GTTT"),
		graphFromSeqs(t, 2, "AAAA", "AAA"),
		graphFromEdges(t, circuitEdges),
	} {
		trail, err := ExtractTrail(g)
		if err != nil {
			t.Fatal(err)
		}
		if len(trail) != g.NumEdges() {
			t.Fatalf("trail has %d edges, graph has %d", len(trail), g.NumEdges())
		}
		used := make(map[int]int)
		for i, edge := range trail {
			used[edge.ID]++
			if i > 0 && trail[i-1].To != edge.From {
				t.Fatalf("trail is not continuous at %d", i)
			}
			if g.Edges[edge.ID] != edge {
				t.Fatalf("trail edge %v does not match the graph edge %v", edge, g.Edges[edge.ID])
			}
		}
		for id, count := range used {
			if count != 1 {
				t.Fatalf("edge %d used %d times", id, count)
			}
		}
	}
}

func TestGraphUnmodified(t *testing.T) {
	g := graphFromSeqs(t, 3, "GGGT", "TTGG", "GTTT")
	before := g.Copy()
	if _, err := ExtractTrail(g); err != nil {
		t.Fatal(err)
	}
	if g.NumEdges() != before.NumEdges() || g.NumNodes() != before.NumNodes() {
		t.Fatal("trail extraction changed the size of the graph")
	}
	for i, node := range g.Nodes {
		if node.OutDegree() != before.Nodes[i].OutDegree() || node.InDegree != before.Nodes[i].InDegree {
			t.Fatalf("trail extraction changed the degrees of %v", node.Label)
		}
		for j, edge := range node.OutEdges {
			if edge != before.Nodes[i].OutEdges[j] {
				t.Fatalf("trail extraction reordered the out edges of %v", node.Label)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		seq string
		k   int
	}{
		{"ATTACTCGCTA", 5},
		{"GATTACAGGC", 4},
		{"ACGTAC", 3},
		{"CATGCA", 2},
	}
	for _, tt := range tests {
		g := graphFromSeqs(t, tt.k, tt.seq)
		if !IsEulerian(g) {
			t.Fatalf("%v (k=%d) should be feasible: %v", tt.seq, tt.k, Check(g).Reason())
		}
		trail, err := ExtractTrail(g)
		if err != nil {
			t.Fatal(err)
		}
		seq, err := Reconstruct(trail)
		if err != nil {
			t.Fatal(err)
		}
		if len(seq) != len(trail)+tt.k-1 {
			t.Fatalf("sequence length %d does not equal edges + k - 1 (%d)", len(seq), len(trail)+tt.k-1)
		}
		if seq != tt.seq {
			t.Errorf("reconstructed %v, expected %v", seq, tt.seq)
		}
	}
}

func TestIncompleteTrail(t *testing.T) {
	g := graphFromEdges(t, [][2]string{{"AA", "AA"}, {"CC", "CC"}})
	if IsEulerian(g) {
		t.Fatal("disconnected loops should not be feasible")
	}
	if _, err := ExtractTrail(g); !errors.Is(err, ErrIncompleteTrail) {
		t.Fatalf("expected ErrIncompleteTrail, got %v", err)
	}
}

func TestReconstructErrors(t *testing.T) {
	if _, err := Reconstruct(nil); !errors.Is(err, ErrEmptyTrail) {
		t.Fatalf("expected ErrEmptyTrail, got %v", err)
	}
	broken := graph.Edges{{ID: 0, From: "AC", To: "CG"}, {ID: 1, From: "TT", To: "TA"}}
	if _, err := Reconstruct(broken); err == nil {
		t.Fatal("a broken trail should not be reconstructed")
	}
}

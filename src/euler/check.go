// Package euler decides if a De Bruijn graph holds a single Eulerian trail, extracts one and spells out its sequence
package euler

import (
	"fmt"

	"github.com/will-rowe/dbgasm/src/graph"
)

// TrailKind describes the sort of Eulerian trail a graph can hold
type TrailKind int

const (
	// Infeasible graphs can't be assembled in a single pass
	Infeasible TrailKind = iota
	// Circuit graphs have every node balanced
	Circuit
	// Path graphs have one start node (+1) and one end node (-1)
	Path
)

// String returns the name of the trail kind
func (kind TrailKind) String() string {
	switch kind {
	case Circuit:
		return "circuit"
	case Path:
		return "path"
	default:
		return "infeasible"
	}
}

// Imbalance records a node whose out degree differs from its in degree
type Imbalance struct {
	Label string
	Value int // out degree - in degree
}

// Report holds the outcome of the feasibility checks on a graph
type Report struct {
	Reachable  bool        // every node was reached from the first node following out edges
	Imbalances []Imbalance // nodes with a non-zero imbalance, in node order
	Kind       TrailKind
}

// Feasible returns true if the graph holds an Eulerian circuit or path
func (report *Report) Feasible() bool {
	return report.Kind != Infeasible
}

// Reason gives a short description of the verdict
func (report *Report) Reason() string {
	switch {
	case !report.Reachable:
		return "not every node can be reached from the first node"
	case report.Kind == Circuit:
		return "all nodes are balanced (eulerian circuit)"
	case report.Kind == Path:
		return fmt.Sprintf("single start node (%v) and end node (%v) (eulerian path)", report.start(), report.end())
	default:
		return fmt.Sprintf("%d nodes have an unusable degree imbalance", len(report.Imbalances))
	}
}

func (report *Report) start() string {
	for _, imbalance := range report.Imbalances {
		if imbalance.Value == 1 {
			return imbalance.Label
		}
	}
	return ""
}

func (report *Report) end() string {
	for _, imbalance := range report.Imbalances {
		if imbalance.Value == -1 {
			return imbalance.Label
		}
	}
	return ""
}

// Check runs the reachability and degree balance checks on a graph, it does not modify the graph
// Note: reachability only follows out edges from the first node, it is not a full weak/strong connectivity check
func Check(g *graph.DeBruijnGraph) *Report {
	report := &Report{
		Reachable:  reachable(g),
		Imbalances: imbalances(g),
		Kind:       Infeasible,
	}
	if !report.Reachable {
		return report
	}
	switch len(report.Imbalances) {
	case 0:
		report.Kind = Circuit
	case 2:
		d1, d2 := report.Imbalances[0].Value, report.Imbalances[1].Value
		if d1+d2 == 0 && d1*d2 == -1 {
			report.Kind = Path
		}
	}
	return report
}

// IsEulerian returns true if the graph holds a single Eulerian trail
func IsEulerian(g *graph.DeBruijnGraph) bool {
	return Check(g).Feasible()
}

// reachable runs a depth first search from the first node and reports if every node was visited
func reachable(g *graph.DeBruijnGraph) bool {
	if g.NumNodes() == 0 {
		return false
	}
	visited := make(map[string]struct{}, g.NumNodes())
	stack := []*graph.Node{g.Nodes[0]}
	for len(stack) != 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[node.Label]; ok {
			continue
		}
		visited[node.Label] = struct{}{}
		for i := len(node.OutEdges) - 1; i >= 0; i-- {
			if _, ok := visited[node.OutEdges[i].To]; !ok {
				stack = append(stack, g.GetNode(node.OutEdges[i].To))
			}
		}
	}
	return len(visited) == g.NumNodes()
}

// imbalances collects the nodes with a non-zero degree imbalance
func imbalances(g *graph.DeBruijnGraph) []Imbalance {
	collected := []Imbalance{}
	for _, node := range g.Nodes {
		if value := node.Imbalance(); value != 0 {
			collected = append(collected, Imbalance{Label: node.Label, Value: value})
		}
	}
	return collected
}

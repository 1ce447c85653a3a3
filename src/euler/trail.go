package euler

import (
	"errors"
	"fmt"
	"sort"

	"github.com/will-rowe/dbgasm/src/graph"
)

var (
	// ErrEmptyGraph is returned when a trail is requested from a graph without edges
	ErrEmptyGraph = errors.New("graph has no edges")

	// ErrIncompleteTrail is returned when the trail could not use every edge, which happens when the graph was not checked first
	ErrIncompleteTrail = errors.New("trail does not use every edge of the graph")
)

// stackEntry is a node on the trail stack, plus the edge that was taken to reach it
type stackEntry struct {
	node *graph.Node
	via  graph.Edge
}

// StartNode selects where the trail begins: the first node with an imbalance of +1, otherwise the first node with an out edge
func StartNode(g *graph.DeBruijnGraph) *graph.Node {
	for _, node := range g.Nodes {
		if node.Imbalance() == 1 {
			return node
		}
	}
	for _, node := range g.Nodes {
		if node.OutDegree() > 0 {
			return node
		}
	}
	return nil
}

// ExtractTrail finds an Eulerian trail through the graph using Hierholzer's algorithm
// The caller's graph is not modified, the edges are consumed from a copy. When a node has
// several unused out edges, the one whose destination label sorts first is taken.
func ExtractTrail(g *graph.DeBruijnGraph) (graph.Edges, error) {
	start := StartNode(g)
	if start == nil {
		return nil, ErrEmptyGraph
	}

	// the working copy has each node's out edges sorted by destination, so the next edge to take is always at the front
	working := g.Copy()
	for _, node := range working.Nodes {
		sort.Stable(node.OutEdges)
	}

	// walk the graph, recording edges as nodes are popped off the stack
	trail := make(graph.Edges, 0, g.NumEdges())
	stack := []stackEntry{{node: working.GetNode(start.Label)}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		if top.node.OutDegree() == 0 {
			if len(stack) > 1 {
				trail = append(trail, top.via)
			}
			stack = stack[:len(stack)-1]
			continue
		}
		edge := top.node.OutEdges[0]
		top.node.OutEdges = top.node.OutEdges[1:]
		stack = append(stack, stackEntry{node: working.GetNode(edge.To), via: edge})
	}

	// edges were collected end first
	for i, j := 0, len(trail)-1; i < j; i, j = i+1, j-1 {
		trail[i], trail[j] = trail[j], trail[i]
	}
	if len(trail) != g.NumEdges() {
		return nil, fmt.Errorf("%w: used %d of %d edges", ErrIncompleteTrail, len(trail), g.NumEdges())
	}
	return trail, nil
}

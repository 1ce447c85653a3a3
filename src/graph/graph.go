// Package graph builds the De Bruijn multigraph used by dbgasm
package graph

import (
	"errors"
	"fmt"

	"github.com/will-rowe/dbgasm/src/seqio"
)

// ErrKmerSize is returned when the k-mer size can't be used with the supplied records
var ErrKmerSize = errors.New("invalid k-mer size")

// DeBruijnGraph is a directed multigraph of (k-1)-mer nodes joined by k-mer edges
type DeBruijnGraph struct {
	KmerSize   int
	Nodes      []*Node        // Nodes are held in order of first appearance
	NodeLookup map[string]int // NodeLookup relates a node label to its location in Nodes
	Edges      Edges          // Edges are held in insertion order
}

// NewDeBruijnGraph is the DeBruijnGraph constructor
func NewDeBruijnGraph(kmerSize int) (*DeBruijnGraph, error) {
	if kmerSize < 2 {
		return nil, fmt.Errorf("%w: k must be at least 2 (got %d)", ErrKmerSize, kmerSize)
	}
	return &DeBruijnGraph{
		KmerSize:   kmerSize,
		NodeLookup: make(map[string]int),
	}, nil
}

// Build creates a graph from a set of records, adding the k-mers of each record in the order supplied
func Build(records []*seqio.Record, kmerSize int) (*DeBruijnGraph, error) {
	g, err := NewDeBruijnGraph(kmerSize)
	if err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := g.AddRecord(record); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddRecord slides a k length window across the record and adds an edge for every k-mer
func (graph *DeBruijnGraph) AddRecord(record *seqio.Record) error {
	k := graph.KmerSize
	if len(record.Seq) < k {
		return fmt.Errorf("%w: record %v is shorter (%d) than k (%d)", ErrKmerSize, string(record.ID), len(record.Seq), k)
	}
	for i := 0; i <= len(record.Seq)-k; i++ {
		kmer := record.Seq[i : i+k]
		graph.AddEdge(string(kmer[:k-1]), string(kmer[1:]))
	}
	return nil
}

// AddEdge adds a directed edge between two node labels, creating the nodes if needed
func (graph *DeBruijnGraph) AddEdge(from, to string) Edge {
	fromNode := graph.addNode(from)
	toNode := graph.addNode(to)
	edge := Edge{ID: len(graph.Edges), From: from, To: to}
	graph.Edges = append(graph.Edges, edge)
	fromNode.OutEdges = append(fromNode.OutEdges, edge)
	toNode.InDegree++
	return edge
}

// addNode returns the node for a label, adding it to the graph if it hasn't been seen
func (graph *DeBruijnGraph) addNode(label string) *Node {
	if idx, ok := graph.NodeLookup[label]; ok {
		return graph.Nodes[idx]
	}
	node := &Node{Label: label}
	graph.NodeLookup[label] = len(graph.Nodes)
	graph.Nodes = append(graph.Nodes, node)
	return node
}

// GetNode returns the node with the given label, or nil if it is not in the graph
func (graph *DeBruijnGraph) GetNode(label string) *Node {
	idx, ok := graph.NodeLookup[label]
	if !ok {
		return nil
	}
	return graph.Nodes[idx]
}

// NumNodes returns the number of nodes in the graph
func (graph *DeBruijnGraph) NumNodes() int {
	return len(graph.Nodes)
}

// NumEdges returns the number of edges in the graph, counting each parallel edge
func (graph *DeBruijnGraph) NumEdges() int {
	return len(graph.Edges)
}

// OutDegree returns the out degree of a node, or 0 if the label is not in the graph
func (graph *DeBruijnGraph) OutDegree(label string) int {
	if node := graph.GetNode(label); node != nil {
		return node.OutDegree()
	}
	return 0
}

// InDegree returns the in degree of a node, or 0 if the label is not in the graph
func (graph *DeBruijnGraph) InDegree(label string) int {
	if node := graph.GetNode(label); node != nil {
		return node.InDegree
	}
	return 0
}

// Multiplicity returns the number of parallel edges between two nodes
func (graph *DeBruijnGraph) Multiplicity(from, to string) int {
	node := graph.GetNode(from)
	if node == nil {
		return 0
	}
	count := 0
	for _, edge := range node.OutEdges {
		if edge.To == to {
			count++
		}
	}
	return count
}

// Copy returns a deep copy of the graph, which can be consumed without touching the original
func (graph *DeBruijnGraph) Copy() *DeBruijnGraph {
	newGraph := &DeBruijnGraph{
		KmerSize:   graph.KmerSize,
		Nodes:      make([]*Node, len(graph.Nodes)),
		NodeLookup: make(map[string]int, len(graph.NodeLookup)),
		Edges:      make(Edges, len(graph.Edges)),
	}
	copy(newGraph.Edges, graph.Edges)
	for i, node := range graph.Nodes {
		newNode := &Node{
			Label:    node.Label,
			OutEdges: make(Edges, len(node.OutEdges)),
			InDegree: node.InDegree,
		}
		copy(newNode.OutEdges, node.OutEdges)
		newGraph.Nodes[i] = newNode
		newGraph.NodeLookup[node.Label] = i
	}
	return newGraph
}

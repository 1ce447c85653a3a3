package graph

// Edge is a single k-mer occurrence, joining its prefix node to its suffix node
// Note: parallel edges share From and To but keep their own ID
type Edge struct {
	ID   int
	From string
	To   string
}

// Edges is a slice of Edge
type Edges []Edge

// methods for Edges to satisfy the sort interface, ordering by destination label and then insertion order
func (Edges Edges) Len() int      { return len(Edges) }
func (Edges Edges) Swap(i, j int) { Edges[i], Edges[j] = Edges[j], Edges[i] }
func (Edges Edges) Less(i, j int) bool {
	if Edges[i].To != Edges[j].To {
		return Edges[i].To < Edges[j].To
	}
	return Edges[i].ID < Edges[j].ID
}

// Node is a (k-1)-mer in the graph
// Note: Nodes are not set up for concurrent access
type Node struct {
	Label    string
	OutEdges Edges // OutEdges are the edges leaving this node, in insertion order
	InDegree int
}

// OutDegree returns the number of edges leaving the node
func (Node *Node) OutDegree() int {
	return len(Node.OutEdges)
}

// Imbalance is the out degree minus the in degree of the node
func (Node *Node) Imbalance() int {
	return len(Node.OutEdges) - Node.InDegree
}

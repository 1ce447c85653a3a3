package graph

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/will-rowe/dbgasm/src/version"
	"github.com/will-rowe/gfa"
	"gopkg.in/vmihailenco/msgpack.v2"
)

// TrailPathName is the GFA path name used for an Eulerian trail
const TrailPathName = "eulerian-trail"

// segmentName gives the GFA segment name for a node (1-based, order of first appearance)
func (graph *DeBruijnGraph) segmentName(label string) []byte {
	return []byte(strconv.Itoa(graph.NodeLookup[label] + 1))
}

// SaveGraphAsGFA is a method to convert and save a DeBruijnGraph in GFA format
// Nodes become segments, every edge (including parallel edges) becomes a link. If a trail is supplied it is added as a path.
func (graph *DeBruijnGraph) SaveGraphAsGFA(fileName string, trail Edges) error {
	t := time.Now()
	stamp := fmt.Sprintf("de bruijn graph created by dbgasm (version %v) at: %v", version.GetVersion(), t.Format("Mon Jan _2 15:04:05 2006"))
	msg := fmt.Sprintf("k-mer size: %d, nodes: %d, edges: %d", graph.KmerSize, graph.NumNodes(), graph.NumEdges())

	// create a GFA instance
	newGFA := gfa.NewGFA()
	_ = newGFA.AddVersion(1)
	newGFA.AddComment([]byte(stamp))
	newGFA.AddComment([]byte(msg))

	// neighbouring (k-1)-mers overlap by k-2 bases
	overlap := []byte(strconv.Itoa(graph.KmerSize-2) + "M")
	for _, node := range graph.Nodes {
		segID := graph.segmentName(node.Label)
		seg, err := gfa.NewSegment(segID, []byte(node.Label))
		if err != nil {
			return err
		}

		// the k-mer count is the number of k-mers starting with this node
		kmerCount := fmt.Sprintf("KC:i:%d", node.OutDegree())
		ofs, err := gfa.NewOptionalFields([]byte(kmerCount))
		if err != nil {
			return err
		}
		seg.AddOptionalFields(ofs)
		seg.Add(newGFA)

		// create the links
		for _, edge := range node.OutEdges {
			link, err := gfa.NewLink(segID, []byte("+"), graph.segmentName(edge.To), []byte("+"), overlap)
			if err != nil {
				return err
			}
			link.Add(newGFA)
		}
	}

	// add the trail as a path
	if len(trail) != 0 {
		segments, overlaps := [][]byte{}, [][]byte{}
		segments = append(segments, append(graph.segmentName(trail[0].From), '+'))
		overlaps = append(overlaps, overlap)
		for _, edge := range trail {
			segments = append(segments, append(graph.segmentName(edge.To), '+'))
			overlaps = append(overlaps, overlap)
		}
		path, err := gfa.NewPath([]byte(TrailPathName), segments, overlaps)
		if err != nil {
			return err
		}
		path.Add(newGFA)
	}

	// create a gfaWriter and write the GFA instance
	outfile, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer outfile.Close()
	writer, err := gfa.NewWriter(outfile, newGFA)
	if err != nil {
		return err
	}
	return newGFA.WriteGFAContent(writer)
}

// Dump is a method to save a DeBruijnGraph to disk
func (graph *DeBruijnGraph) Dump(path string) error {
	b, err := msgpack.Marshal(graph)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, b, 0644)
}

// Load is a method to load a DeBruijnGraph from disk
func (graph *DeBruijnGraph) Load(path string) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return fmt.Errorf("graph file appears empty: %v", path)
	}
	if err := msgpack.Unmarshal(b, graph); err != nil {
		return err
	}
	if graph.KmerSize < 2 {
		return fmt.Errorf("%w: loaded graph has k-mer size %d", ErrKmerSize, graph.KmerSize)
	}
	if len(graph.NodeLookup) != len(graph.Nodes) {
		return fmt.Errorf("loaded graph is inconsistent: %d nodes but %d lookup entries", len(graph.Nodes), len(graph.NodeLookup))
	}
	return graph.checkConsistency()
}

// checkConsistency makes sure the lookup, nodes and edges of a loaded graph all agree
func (graph *DeBruijnGraph) checkConsistency() error {
	for label, idx := range graph.NodeLookup {
		if idx < 0 || idx >= len(graph.Nodes) || graph.Nodes[idx] == nil {
			return fmt.Errorf("loaded graph is inconsistent: lookup for %v points to missing node %d", label, idx)
		}
		if graph.Nodes[idx].Label != label {
			return fmt.Errorf("loaded graph is inconsistent: lookup for %v points to node %v", label, graph.Nodes[idx].Label)
		}
	}
	inDegrees := make(map[string]int, len(graph.Nodes))
	numEdges := 0
	for _, node := range graph.Nodes {
		for _, edge := range node.OutEdges {
			if edge.From != node.Label {
				return fmt.Errorf("loaded graph is inconsistent: edge %d is held by %v but starts at %v", edge.ID, node.Label, edge.From)
			}
			if _, ok := graph.NodeLookup[edge.To]; !ok {
				return fmt.Errorf("loaded graph is inconsistent: edge %d ends at unknown node %v", edge.ID, edge.To)
			}
			if edge.ID < 0 || edge.ID >= len(graph.Edges) || graph.Edges[edge.ID] != edge {
				return fmt.Errorf("loaded graph is inconsistent: edge %d does not match the edge list", edge.ID)
			}
			inDegrees[edge.To]++
			numEdges++
		}
	}
	if numEdges != len(graph.Edges) {
		return fmt.Errorf("loaded graph is inconsistent: nodes hold %d edges but the edge list has %d", numEdges, len(graph.Edges))
	}
	for _, node := range graph.Nodes {
		if node.InDegree != inDegrees[node.Label] {
			return fmt.Errorf("loaded graph is inconsistent: %v has in degree %d but %d incoming edges", node.Label, node.InDegree, inDegrees[node.Label])
		}
	}
	return nil
}

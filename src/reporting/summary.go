package reporting

import (
	"fmt"
	"io/ioutil"

	"github.com/will-rowe/dbgasm/src/assembler"
	"github.com/will-rowe/dbgasm/src/version"
	"gopkg.in/yaml.v3"
)

// ImbalanceEntry is a node with a non-zero degree imbalance
type ImbalanceEntry struct {
	Node  string `yaml:"node"`
	Value int    `yaml:"value"`
}

// Summary describes a single assembly run
type Summary struct {
	Version        string           `yaml:"version"`
	ID             string           `yaml:"id"`
	KmerSize       int              `yaml:"kmer_size"`
	Records        int              `yaml:"records"`
	TotalKmers     int              `yaml:"total_kmers"`
	DistinctKmers  int              `yaml:"distinct_kmers"`
	Nodes          int              `yaml:"nodes"`
	Edges          int              `yaml:"edges"`
	Reachable      bool             `yaml:"reachable"`
	Verdict        string           `yaml:"verdict"`
	Reason         string           `yaml:"reason"`
	Imbalances     []ImbalanceEntry `yaml:"imbalances,omitempty"`
	TrailLength    int              `yaml:"trail_length"`
	SequenceLength int              `yaml:"sequence_length"`
}

// NewSummary collects the details of an assembly result
func NewSummary(result *assembler.Result, records, totalKmers, distinctKmers int) *Summary {
	summary := &Summary{
		Version:        version.GetVersion(),
		ID:             result.ID,
		KmerSize:       result.KmerSize,
		Records:        records,
		TotalKmers:     totalKmers,
		DistinctKmers:  distinctKmers,
		Nodes:          result.Graph.NumNodes(),
		Edges:          result.Graph.NumEdges(),
		Reachable:      result.Report.Reachable,
		Verdict:        result.Report.Kind.String(),
		Reason:         result.Report.Reason(),
		TrailLength:    len(result.Trail),
		SequenceLength: len(result.Sequence),
	}
	for _, imbalance := range result.Report.Imbalances {
		summary.Imbalances = append(summary.Imbalances, ImbalanceEntry{Node: imbalance.Label, Value: imbalance.Value})
	}
	return summary
}

// Write saves the summary as YAML
func (summary *Summary) Write(fileName string) error {
	b, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("could not encode summary for %v: %w", summary.ID, err)
	}
	return ioutil.WriteFile(fileName, b, 0644)
}

// LoadSummary reads a summary written by Write
func LoadSummary(fileName string) (*Summary, error) {
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	summary := &Summary{}
	if err := yaml.Unmarshal(b, summary); err != nil {
		return nil, fmt.Errorf("could not decode summary %v: %w", fileName, err)
	}
	return summary, nil
}

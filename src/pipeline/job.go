package pipeline

import (
	"github.com/will-rowe/dbgasm/src/assembler"
	"github.com/will-rowe/dbgasm/src/graph"
	"github.com/will-rowe/dbgasm/src/seqio"
)

// Job is a single input file as it moves through the pipeline
type Job struct {
	ID       string // output files are named after this
	Source   string
	KmerSize int
	Records  []*seqio.Record

	// set by the GraphBuilder
	Graph         *graph.DeBruijnGraph
	TotalKmers    int
	DistinctKmers int

	// set by the Assembler
	Result *assembler.Result

	// the first error hit by the job, later processes pass it on untouched
	Err error
}

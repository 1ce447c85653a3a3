package pipeline

/*
 this part of the pipeline reads the input files, builds a graph for each one, assembles them and writes the results
*/

import (
	"errors"
	"fmt"
	"log"

	"github.com/will-rowe/dbgasm/src/assembler"
	"github.com/will-rowe/dbgasm/src/graph"
	"github.com/will-rowe/dbgasm/src/misc"
	"github.com/will-rowe/dbgasm/src/readtable"
	"github.com/will-rowe/dbgasm/src/reporting"
	"github.com/will-rowe/dbgasm/src/seqio"
	"golang.org/x/sync/errgroup"
)

// TableReader is a pipeline process that loads the fragments from each input file
type TableReader struct {
	info   *Info
	input  []string
	output chan *Job
}

// NewTableReader is the constructor
func NewTableReader(info *Info) *TableReader {
	return &TableReader{info: info, output: make(chan *Job, BUFFERSIZE)}
}

// Connect is the method to connect the TableReader to some data source
func (proc *TableReader) Connect(input []string) {
	proc.input = input
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *TableReader) Run() {
	defer close(proc.output)
	var g errgroup.Group
	if proc.info.Settings.Processors > 0 {
		g.SetLimit(proc.info.Settings.Processors)
	}
	for _, fileName := range proc.input {
		fileName := fileName
		g.Go(func() error {
			proc.output <- proc.load(fileName)
			return nil
		})
	}
	_ = g.Wait()
}

// load reads a single input file into a Job, any problem is recorded on the job
func (proc *TableReader) load(fileName string) *Job {
	job := &Job{
		ID:       misc.StripExt(fileName),
		Source:   fileName,
		KmerSize: proc.info.Settings.KmerSize,
	}
	if job.KmerSize == 0 {
		job.KmerSize, job.Err = readtable.KmerSizeFromName(fileName)
		if job.Err != nil {
			return job
		}
	}
	if misc.CheckExt(fileName, FastaExts) == nil {
		job.Records, job.Err = seqio.ReadFASTA(fileName)
		return job
	}
	table, err := readtable.ReadFile(fileName)
	if err != nil {
		job.Err = fmt.Errorf("could not read %v: %w", fileName, err)
		return job
	}
	cleaned := table.Clean()
	if dropped := len(table.Segments()) - len(cleaned.Segments()); dropped != 0 {
		log.Printf("\t%v: dropped %d of %d segments during cleaning", job.ID, dropped, len(table.Segments()))
	}
	job.Records, job.Err = cleaned.Records()
	if errors.Is(job.Err, readtable.ErrNoRecords) {
		// nothing survived cleaning, the empty graph is reported as a failed assembly
		log.Printf("\t%v: no segments left after cleaning", job.ID)
		job.Err = nil
	}
	return job
}

// GraphBuilder is a pipeline process that builds a De Bruijn graph for each job
type GraphBuilder struct {
	info   *Info
	input  chan *Job
	output chan *Job
}

// NewGraphBuilder is the constructor
func NewGraphBuilder(info *Info) *GraphBuilder {
	return &GraphBuilder{info: info, output: make(chan *Job, BUFFERSIZE)}
}

// Connect is the method to connect the GraphBuilder to the output of a TableReader
func (proc *GraphBuilder) Connect(previous *TableReader) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *GraphBuilder) Run() {
	defer close(proc.output)
	for job := range proc.input {
		if job.Err == nil {
			job.Graph, job.Err = graph.Build(job.Records, job.KmerSize)
		}
		if job.Err == nil && proc.info.Settings.Summary && len(job.Records) != 0 {
			job.TotalKmers, job.DistinctKmers, job.Err = seqio.CountKmers(job.Records, job.KmerSize)
		}
		proc.output <- job
	}
}

// Assembler is a pipeline process that checks each graph and walks the Eulerian trail
type Assembler struct {
	info   *Info
	input  chan *Job
	output chan *Job
}

// NewAssembler is the constructor
func NewAssembler(info *Info) *Assembler {
	return &Assembler{info: info, output: make(chan *Job, BUFFERSIZE)}
}

// Connect is the method to connect the Assembler to the output of a GraphBuilder
func (proc *Assembler) Connect(previous *GraphBuilder) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *Assembler) Run() {
	defer close(proc.output)
	for job := range proc.input {
		if job.Err == nil {
			job.Result, job.Err = assembler.AssembleGraph(job.ID, job.Graph)
		}
		proc.output <- job
	}
}

// ResultWriter is a pipeline process that writes the results for each job
type ResultWriter struct {
	info  *Info
	input chan *Job
}

// NewResultWriter is the constructor
func NewResultWriter(info *Info) *ResultWriter {
	return &ResultWriter{info: info}
}

// Connect is the method to connect the ResultWriter to the output of an Assembler
func (proc *ResultWriter) Connect(previous *Assembler) {
	proc.input = previous.output
}

// Run is the method to run this process, which satisfies the pipeline interface
func (proc *ResultWriter) Run() {
	for job := range proc.input {
		if job.Err != nil {
			log.Printf("\t%v: %v", job.ID, job.Err)
			proc.info.Errored++
			continue
		}
		if err := proc.write(job); err != nil {
			log.Printf("\t%v: %v", job.ID, err)
			proc.info.Errored++
			continue
		}
		if job.Result.Feasible() {
			log.Printf("\t%v: assembled %d bases from %d edges (%v)", job.ID, len(job.Result.Sequence), len(job.Result.Trail), job.Result.Report.Kind)
			proc.info.Assembled++
		} else {
			log.Printf("\t%v: %v", job.ID, job.Result.Report.Reason())
			proc.info.Infeasible++
		}
	}
}

// write saves the result file and any optional outputs for a job
func (proc *ResultWriter) write(job *Job) error {
	settings := proc.info.Settings
	result := job.Result
	fileName, err := reporting.SaveResult(settings.OutDir, job.ID, result.Output())
	if err != nil {
		return err
	}
	proc.info.Outputs = append(proc.info.Outputs, fileName)
	if settings.FASTA && result.Feasible() {
		ext := ".fasta"
		if settings.Compress {
			ext += ".gz"
		}
		fileName := reporting.FileName(settings.OutDir, job.ID, ext)
		if err := reporting.WriteFASTA(fileName, job.ID, result.Sequence, settings.Compress); err != nil {
			return err
		}
		proc.info.Outputs = append(proc.info.Outputs, fileName)
	}
	if settings.GFA {
		fileName := reporting.FileName(settings.OutDir, job.ID, ".gfa")
		if err := result.Graph.SaveGraphAsGFA(fileName, result.Trail); err != nil {
			return err
		}
		proc.info.Outputs = append(proc.info.Outputs, fileName)
	}
	if settings.Plot && result.Graph.NumNodes() != 0 {
		fileName := reporting.FileName(settings.OutDir, job.ID, ".png")
		if err := reporting.PlotGraph(result.Graph, fileName); err != nil {
			return err
		}
		proc.info.Outputs = append(proc.info.Outputs, fileName)
	}
	if settings.DumpGraph {
		fileName := reporting.FileName(settings.OutDir, job.ID, ".graph")
		if err := result.Graph.Dump(fileName); err != nil {
			return err
		}
		proc.info.Outputs = append(proc.info.Outputs, fileName)
	}
	if settings.Summary {
		fileName := reporting.FileName(settings.OutDir, job.ID, ".yaml")
		summary := reporting.NewSummary(result, len(job.Records), job.TotalKmers, job.DistinctKmers)
		if err := summary.Write(fileName); err != nil {
			return err
		}
		proc.info.Outputs = append(proc.info.Outputs, fileName)
	}
	return nil
}

// Package pipeline runs batches of input files through the assembly, as a chain of processes joined by channels
package pipeline

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

// BUFFERSIZE is the size of the buffer used by the job channels
const BUFFERSIZE int = 64

// ErrNoProcesses is returned when an empty pipeline is run
var ErrNoProcesses = errors.New("pipeline has no processes")

// process is a stage of the pipeline, Run must return once its input has drained
type process interface {
	Run()
}

// Pipeline holds the processes for a batch, plus the runtime info they report to
type Pipeline struct {
	info      *Info
	processes []process
}

// NewPipeline is the pipeline constructor
func NewPipeline(info *Info) *Pipeline {
	return &Pipeline{info: info}
}

// NewAssemblyPipeline connects the reader, graph builder, assembler and writer for a list of input files
func NewAssemblyPipeline(info *Info, files []string) *Pipeline {
	reader := NewTableReader(info)
	builder := NewGraphBuilder(info)
	walker := NewAssembler(info)
	writer := NewResultWriter(info)
	reader.Connect(files)
	builder.Connect(reader)
	walker.Connect(builder)
	writer.Connect(walker)
	pipeline := NewPipeline(info)
	pipeline.AddProcesses(reader, builder, walker, writer)
	return pipeline
}

// AddProcesses appends processes to the pipeline, in the order the jobs flow through them
func (pipeline *Pipeline) AddProcesses(procs ...process) {
	pipeline.processes = append(pipeline.processes, procs...)
}

// Run starts every process in a go routine except the last, which runs in the foreground until the jobs have drained
// The counters are logged once the batch is done, and an error is returned if any input failed.
func (pipeline *Pipeline) Run() error {
	if len(pipeline.processes) == 0 {
		return ErrNoProcesses
	}
	start := time.Now()
	last := len(pipeline.processes) - 1
	for _, proc := range pipeline.processes[:last] {
		go proc.Run()
	}
	pipeline.processes[last].Run()

	info := pipeline.info
	log.Printf("\tassembled: %d, infeasible: %d, errors: %d (%s)", info.Assembled, info.Infeasible, info.Errored, time.Since(start))
	if info.Errored != 0 {
		return fmt.Errorf("%d of %d inputs could not be processed", info.Errored, info.Processed())
	}
	return nil
}

// Assemble runs the full assembly pipeline over a list of input files
// Every input is processed even if some fail, the returned error reports the failures.
func Assemble(info *Info, files []string) error {
	if err := os.MkdirAll(info.Settings.OutDir, 0755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}
	log.Printf("assembling %d input file(s)...", len(files))
	return NewAssemblyPipeline(info, files).Run()
}

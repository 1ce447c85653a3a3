// Copyright © 2020 Will Rowe <will.rowe@stfc.ac.uk>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"log"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/will-rowe/dbgasm/src/misc"
	"github.com/will-rowe/dbgasm/src/pipeline"
)

// the command line arguments
var (
	inputs *[]string // read tables, FASTA files, directories or archives to assemble
)

// the assemble command (used by cobra)
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Assemble sequence fragments using De Bruijn graphs",
	Long: `Assemble sequence fragments using De Bruijn graphs.

 Each input file is assembled separately and the result is written to <outDir>/<file name>.txt

 Unless --kmerSize is given, k is read from the digits at the end of each file name. All of the
 trailing digits are used, so reads_12.csv is assembled with k=12 (not k=2 from the last digit alone).`,
	Run: func(cmd *cobra.Command, args []string) {
		runAssemble(cmd)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	inputs = assembleCmd.Flags().StringSliceP("inputs", "i", []string{}, "read tables (.csv), FASTA files, directories or archives to assemble - required")
	addOutputFlags(assembleCmd.Flags())
	assembleCmd.MarkFlagRequired("inputs")
	RootCmd.AddCommand(assembleCmd)
}

// runAssemble is the main function for the assemble sub-command
func runAssemble(cmd *cobra.Command) {

	// set up profiling
	if *profiling {
		defer profile.Start(profile.ProfilePath("./")).Stop()
	}

	// start logging
	stopLogging := startLogging("assemble")
	defer stopLogging()
	start := time.Now()

	// check the supplied files and then log some stuff
	log.Printf("checking parameters...")
	settings, err := loadSettings(cmd)
	misc.ErrorCheck(err)
	tmpDir, err := os.MkdirTemp("", "dbgasm-")
	misc.ErrorCheck(err)
	defer os.RemoveAll(tmpDir)
	files, err := pipeline.ExpandInputs(*inputs, tmpDir)
	misc.ErrorCheck(err)
	log.Printf("\tprocessors: %d", settings.Processors)
	if settings.KmerSize == 0 {
		log.Printf("\tk-mer size: taken from file names")
	} else {
		log.Printf("\tk-mer size: %d", settings.KmerSize)
	}
	log.Printf("\tnumber of input files: %d", len(files))
	log.Printf("\toutput directory: %v", settings.OutDir)

	// run the pipeline
	info, err := pipeline.NewInfo(settings)
	misc.ErrorCheck(err)
	err = pipeline.Assemble(info, files)
	log.Printf("\tfiles written: %d", len(info.Outputs))
	log.Printf("\tmemory: %v", misc.PrintMemUsage())
	misc.ErrorCheck(err)
	log.Printf("finished in %s", time.Since(start))
}

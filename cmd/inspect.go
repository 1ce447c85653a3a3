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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/will-rowe/dbgasm/src/assembler"
	"github.com/will-rowe/dbgasm/src/graph"
	"github.com/will-rowe/dbgasm/src/misc"
)

// the command line arguments
var (
	graphFile    *string // a graph saved by assemble --dumpGraph
	showSequence *bool   // print the assembled sequence
)

// the inspect command (used by cobra)
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Check a saved De Bruijn graph for an Eulerian trail",
	Long:  `Check a saved De Bruijn graph for an Eulerian trail`,
	Run: func(cmd *cobra.Command, args []string) {
		runInspect()
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	graphFile = inspectCmd.Flags().StringP("graph", "g", "", "graph file saved by the assemble command (--dumpGraph) - required")
	showSequence = inspectCmd.Flags().Bool("sequence", false, "print the assembled sequence")
	inspectCmd.MarkFlagRequired("graph")
	RootCmd.AddCommand(inspectCmd)
}

// runInspect is the main function for the inspect sub-command
func runInspect() {
	if err := misc.CheckFile(*graphFile); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	g := new(graph.DeBruijnGraph)
	misc.ErrorCheck(g.Load(*graphFile))
	result, err := assembler.AssembleGraph(misc.StripExt(*graphFile), g)
	misc.ErrorCheck(err)
	fmt.Printf("graph: %v\n", *graphFile)
	fmt.Printf("\tk-mer size: %d\n", g.KmerSize)
	fmt.Printf("\tnodes: %d\n", g.NumNodes())
	fmt.Printf("\tedges: %d\n", g.NumEdges())
	fmt.Printf("\treachable from first node: %v\n", result.Report.Reachable)
	for _, imbalance := range result.Report.Imbalances {
		fmt.Printf("\timbalanced node: %v (%+d)\n", imbalance.Label, imbalance.Value)
	}
	fmt.Printf("\tverdict: %v\n", result.Report.Kind)
	if !result.Feasible() {
		fmt.Printf("\treason: %v\n", result.Report.Reason())
	}
	if *showSequence {
		fmt.Println(result.Output())
	}
}

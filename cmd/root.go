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
	"log"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/will-rowe/dbgasm/src/config"
	"github.com/will-rowe/dbgasm/src/misc"
	"github.com/will-rowe/dbgasm/src/version"
)

// the command line arguments
var (
	profiling    *bool   // create profile for go pprof
	logFile      *string // file to write the log to
	settingsFile *string // optional settings file (yaml, toml or json)
)

// flagKeys maps the command line flags to the settings they override
var flagKeys = map[string]string{
	"kmerSize":   "kmer-size",
	"outDir":     "out-dir",
	"processors": "processors",
	"plot":       "plot",
	"gfa":        "gfa",
	"fasta":      "fasta",
	"compress":   "compress",
	"summary":    "summary",
	"dumpGraph":  "dump-graph",
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dbgasm",
	Short: "reconstruct DNA sequences from fragments using De Bruijn graphs",
	Long: `
#####################################################################################
		DBGASM: De Bruijn Graph ASseMbly of sequence fragments
#####################################################################################

 DBGASM reconstructs a DNA sequence from a set of overlapping fragments.

 The fragments are broken into k-mers which are added to a De Bruijn graph. If the
 graph holds an Eulerian trail, the trail is walked and spelled out as the assembled
 sequence. Otherwise the input is reported as one that can't be assembled.

 Fragments can be supplied as per-position read tables (csv) or FASTA files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// a function to initialise the command line arguments
func init() {
	RootCmd.PersistentFlags().IntP("processors", "p", 1, "number of input files to read at once")
	profiling = RootCmd.PersistentFlags().Bool("profiling", false, "create the files needed to profile DBGASM using the go tool pprof")
	logFile = RootCmd.PersistentFlags().String("log", "", "filename for log file, default = STDOUT")
	settingsFile = RootCmd.PersistentFlags().String("config", "", "settings file, values are overridden by DBGASM_* environment variables and flags")
}

// addOutputFlags registers the assembly flags shared by the assemble and watch commands
func addOutputFlags(flags *pflag.FlagSet) {
	flags.IntP("kmerSize", "k", 0, "size of k-mer (default = the whole run of digits at the end of each input file name, e.g. reads_12.csv gives 12, not just the last digit)")
	flags.StringP("outDir", "o", config.DefaultOutDir, "directory to save the results to")
	flags.Bool("plot", false, "save a plot of each graph (png)")
	flags.Bool("gfa", false, "save each graph in GFA format, with the Eulerian trail as a path")
	flags.Bool("fasta", false, "save each assembled sequence in FASTA format")
	flags.Bool("compress", false, "compress the FASTA output (bgzf)")
	flags.Bool("summary", false, "save a summary of each assembly (yaml)")
	flags.Bool("dumpGraph", false, "save each graph so it can be checked with the inspect command")
}

// loadSettings gathers the settings from the settings file, environment and the flags that have been set
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	v := config.NewViper()
	for flagName, key := range flagKeys {
		flag := cmd.Flags().Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, err
		}
	}
	settings, err := config.Load(v, *settingsFile)
	if err != nil {
		return nil, err
	}
	if settings.Processors <= 0 || settings.Processors > runtime.NumCPU() {
		settings.Processors = runtime.NumCPU()
	}
	return settings, nil
}

// startLogging sends the log to the log file if one was requested, the returned func closes it
func startLogging(subcommand string) func() {
	stop := func() {}
	if *logFile != "" {
		logFH, err := misc.StartLogging(*logFile)
		misc.ErrorCheck(err)
		log.SetOutput(logFH)
		stop = func() { logFH.Close() }
	} else {
		log.SetOutput(os.Stdout)
	}
	log.Printf("i am dbgasm (version %s)", version.GetVersion())
	log.Printf("starting the %v subcommand", subcommand)
	return stop
}

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
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/will-rowe/dbgasm/src/misc"
	"github.com/will-rowe/dbgasm/src/pipeline"
	"github.com/will-rowe/dbgasm/src/watcher"
)

// the command line arguments
var (
	watchDir *string // directory to watch for new read tables
)

// the watch command (used by cobra)
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Assemble read tables as they are written to a directory",
	Long: `Assemble read tables as they are written to a directory.

 The command runs until it is interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		runWatch(cmd)
	},
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return misc.CheckRequiredFlags(cmd.Flags())
	},
}

// a function to initialise the command line arguments
func init() {
	watchDir = watchCmd.Flags().StringP("dir", "d", "", "directory to watch for new read tables - required")
	addOutputFlags(watchCmd.Flags())
	watchCmd.MarkFlagRequired("dir")
	RootCmd.AddCommand(watchCmd)
}

// runWatch is the main function for the watch sub-command
func runWatch(cmd *cobra.Command) {
	stopLogging := startLogging("watch")
	defer stopLogging()
	log.Printf("checking parameters...")
	settings, err := loadSettings(cmd)
	misc.ErrorCheck(err)
	w, err := watcher.New(*watchDir, pipeline.TableExts)
	misc.ErrorCheck(err)
	log.Printf("\toutput directory: %v", settings.OutDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = w.Watch(ctx, func(fileName string) {
		info, err := pipeline.NewInfo(settings)
		if err != nil {
			log.Printf("\t%v", err)
			return
		}
		if err := pipeline.Assemble(info, []string{fileName}); err != nil {
			log.Printf("\t%v", err)
		}
	})
	misc.ErrorCheck(err)
	log.Println("finished")
}

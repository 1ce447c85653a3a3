// Package watcher runs a callback for every read table that is written into a directory
package watcher

import (
	"context"
	"log"
	"os"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/will-rowe/dbgasm/src/misc"
)

// DefaultSettle is how long a file must go without changes before it is handled
const DefaultSettle = 200 * time.Millisecond

// Handler is called once a new input file has settled
type Handler func(fileName string)

// Watcher watches a single directory for new input files
type Watcher struct {
	Dir    string
	Exts   []string
	Settle time.Duration
}

// New is the Watcher constructor
func New(dir string, exts []string) (*Watcher, error) {
	if err := misc.CheckDir(dir); err != nil {
		return nil, err
	}
	return &Watcher{Dir: dir, Exts: exts, Settle: DefaultSettle}, nil
}

// Watch processes file events until ctx is cancelled
// Files are collected as they are created or written, and handed to the handler (in name order)
// once no events have arrived for the settle period.
func (Watcher *Watcher) Watch(ctx context.Context, handler Handler) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(Watcher.Dir); err != nil {
		return err
	}
	log.Printf("watching %v for new files...", Watcher.Dir)

	pending := make(map[string]struct{})
	timer := time.NewTimer(Watcher.Settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Print("stopped watching")
			return nil

		case <-timer.C:
			fileNames := make([]string, 0, len(pending))
			for fileName := range pending {
				fileNames = append(fileNames, fileName)
			}
			sort.Strings(fileNames)
			pending = make(map[string]struct{})
			for _, fileName := range fileNames {
				if _, err := os.Stat(fileName); err != nil {
					continue
				}
				handler(fileName)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if misc.CheckExt(ev.Name, Watcher.Exts) != nil {
				continue
			}
			pending[ev.Name] = struct{}{}
			timer.Reset(Watcher.Settle)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("\twatcher error: %v", err)
		}
	}
}

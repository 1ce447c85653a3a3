package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// eventually polls fn until it returns true or the timeout elapses
func eventually(t *testing.T, timeout time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestNew(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), []string{"csv"}); err == nil {
		t.Fatal("missing directory should fail")
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, []string{"csv"})
	if err != nil {
		t.Fatal(err)
	}
	w.Settle = 50 * time.Millisecond

	var mu sync.Mutex
	handled := []string{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- w.Watch(ctx, func(fileName string) {
			mu.Lock()
			handled = append(handled, filepath.Base(fileName))
			mu.Unlock()
		})
	}()
	time.Sleep(100 * time.Millisecond)

	for _, name := range []string{"reads_3.csv", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("1,1,1,0,0,0\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	eventually(t, 5*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(handled) == 1
	}, "new read table was not handled")

	// a second batch is handled separately
	if err := os.WriteFile(filepath.Join(dir, "reads_4.csv"), []byte("1,1,1,0,0,0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	eventually(t, 5*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(handled) == 2
	}, "second read table was not handled")

	cancel()
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	mu.Lock()
	defer mu.Unlock()
	if handled[0] != "reads_3.csv" || handled[1] != "reads_4.csv" {
		t.Fatalf("unexpected files handled: %v", handled)
	}
}

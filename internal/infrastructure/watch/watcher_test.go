package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreWatcher_FiresOnTasksFileWrite(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 1)

	w, err := NewStoreWatcher(dir, "tasks.yaml", 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewStoreWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "tasks.yaml"), []byte("tasks: []\n"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("onChange never fired for tasks file write")
	}
}

func TestStoreWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan struct{}, 1)

	w, err := NewStoreWatcher(dir, "tasks.yaml", 20*time.Millisecond, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewStoreWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Fatal("onChange fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.toml")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, nil, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// The watcher starts asynchronously, so keep touching the file until
	// the change is seen.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for waiting := true; waiting; {
		select {
		case <-changed:
			waiting = false
		case <-tick.C:
			if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("onChange was not called")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Error("Watch() did not return after cancel")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.toml")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0o644)
	}()

	called := false
	if err := Watch(ctx, path, nil, func() { called = true }); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if called {
		t.Error("onChange called for an unrelated file")
	}
}

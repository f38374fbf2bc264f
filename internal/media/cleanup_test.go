package media

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCleanerRemovesEnqueuedFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staged.mp4")
	if err := os.WriteFile(path, []byte("payload"), 0o600); err != nil {
		t.Fatalf("write staged file: %v", err)
	}

	cleaner := NewCleaner(CleanerConfig{QueueSize: 4, Workers: 2}, nil)

	if err := cleaner.Enqueue(context.Background(), path); err != nil {
		t.Fatalf("Enqueue returned error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cleaner.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err: %v", err)
	}
}

func TestCleanerIgnoresMissingFiles(t *testing.T) {
	cleaner := NewCleaner(CleanerConfig{}, nil)

	if err := cleaner.Enqueue(context.Background(), filepath.Join(t.TempDir(), "ghost")); err != nil {
		t.Fatalf("Enqueue returned error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cleaner.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
}

func TestEnqueueAfterShutdownFails(t *testing.T) {
	cleaner := NewCleaner(CleanerConfig{}, nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cleaner.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}

	if err := cleaner.Enqueue(context.Background(), "/tmp/anything"); err == nil {
		t.Fatal("expected error after shutdown")
	}
}

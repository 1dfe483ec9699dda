package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsArtifacts(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 8)

	w, err := New(dir, func(path string) { seen <- path })
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	artifact := filepath.Join(dir, "20200101T170703_20200113T170702.par")
	if err := os.WriteFile(artifact, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-seen:
		if got != artifact {
			t.Fatalf("reported %q, want %q", got, artifact)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("artifact creation was not reported")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 8)

	w, err := New(dir, func(path string) { seen <- path })
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	artifact := filepath.Join(dir, "scene.mgrd")
	if err := os.WriteFile(artifact, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// The artifact arrives; the text file never does.
	select {
	case got := <-seen:
		if got != artifact {
			t.Fatalf("reported %q, want %q", got, artifact)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("artifact creation was not reported")
	}
}

func TestWatcherCloseBeforeStart(t *testing.T) {
	w, err := New(t.TempDir(), func(string) {})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestIsArtifact(t *testing.T) {
	yes := []string{"a.mgrd", "a.par", "a.offs", "a.snr", "a.coffs", "a_VV.tif"}
	for _, name := range yes {
		if !isArtifact(name) {
			t.Errorf("isArtifact(%q) = false", name)
		}
	}
	no := []string{"a.txt", "a.tiff.aux", "a"}
	for _, name := range no {
		if isArtifact(name) {
			t.Errorf("isArtifact(%q) = true", name)
		}
	}
}

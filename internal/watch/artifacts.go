// Package watch reports intermediate artifacts as the external tools
// create them. The pipeline blocks on long-running subprocesses; the
// watcher is the only live progress signal during those calls.
package watch

import (
	"context"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Artifact suffixes worth reporting.
var artifactSuffixes = []string{".mgrd", ".par", ".offs", ".snr", ".coffs", ".tif"}

// Watcher monitors a working directory and invokes a callback for each
// created artifact.
type Watcher struct {
	fw         *fsnotify.Watcher
	onArtifact func(path string)

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

// New creates a Watcher for dir. Call Start to begin reporting and
// Close to release the underlying watcher.
func New(dir string, onArtifact func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{fw: fw, onArtifact: onArtifact, done: make(chan struct{})}, nil
}

// Start launches the event loop. It returns immediately; the loop runs
// until the context is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Create) && isArtifact(ev.Name) {
					w.onArtifact(ev.Name)
				}
			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// Close stops the event loop and releases the watcher.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if started {
		<-w.done
	}
	return err
}

func isArtifact(name string) bool {
	for _, suffix := range artifactSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

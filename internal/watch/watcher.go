// Package watch re-runs graph analyses whenever a bead snapshot file
// changes on disk.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeKind describes the type of file change detected.
type ChangeKind int

const (
	ChangeModified ChangeKind = iota // Snapshot file written
	ChangeRemoved                    // Snapshot file deleted
)

// Change represents a detected change to the watched snapshot file.
type Change struct {
	Kind ChangeKind
	File string // Absolute path
}

// Watcher monitors a single bead snapshot file using fsnotify. Events are
// debounced so editors that write in bursts trigger one re-analysis.
type Watcher struct {
	Path    string
	Changes <-chan Change // Read-only external channel

	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher for the given snapshot file.
func New(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Path:    path,
		Changes: ch,
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	return w, nil
}

// Start begins watching. The containing directory is watched rather than
// the file itself so atomic rename-into-place saves are still seen.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track the last event time per pending change kind.
	const debounce = 100 * time.Millisecond
	pending := make(map[ChangeKind]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for kind := range pending {
					w.changes <- Change{Kind: kind, File: w.Path}
				}
				return
			}

			if filepath.Clean(event.Name) != filepath.Clean(w.Path) {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				pending[ChangeRemoved] = time.Now()
			case event.Has(fsnotify.Write) || event.Has(fsnotify.Create):
				pending[ChangeModified] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for kind, t := range pending {
				if now.Sub(t) >= debounce {
					w.changes <- Change{Kind: kind, File: w.Path}
					delete(pending, kind)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; keep going.
		}
	}
}

// Package watcher reports spreadsheets created or written in a directory.
package watcher

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/ukaji3/exchart-go/internal/logger"
)

// Watcher emits paths of spreadsheet files as they change.
type Watcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
}

// New creates a watcher for files with the given extensions.
func New(extensions []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:    w,
		extensions: extensions,
	}, nil
}

// Watch starts monitoring dir. The returned channel is closed when ctx is
// done or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan string, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	paths := make(chan string, 16)

	go func() {
		defer close(paths)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if !w.matches(event.Name) {
					continue
				}
				select {
				case paths <- event.Name:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch %s: %v", dir, err)
			}
		}
	}()

	return paths, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) matches(path string) bool {
	base := filepath.Base(path)
	// Office lock files (~$book.xlsx) share the extension.
	if strings.HasPrefix(base, "~$") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

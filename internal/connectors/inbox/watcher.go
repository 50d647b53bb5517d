// Package inbox watches a directory and hands new or changed contract files
// to the workspace for loading.
package inbox

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/contractai-cli/internal/logger"
)

// DefaultDebounce is how long a file must stay quiet before it is reported.
// Editors and copy tools often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// ErrAlreadyWatching is returned when Watch is called twice.
var ErrAlreadyWatching = errors.New("inbox: already watching")

// Watcher reports files in a directory that a filter accepts.
type Watcher struct {
	dir      string
	accept   func(path string) bool
	debounce time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	pending map[string]*time.Timer
	closed  bool
	timers  sync.WaitGroup
	stop    chan struct{}
}

// New creates a watcher for dir. accept filters paths, typically by extension;
// a nil accept takes every regular file.
func New(dir string, accept func(path string) bool) *Watcher {
	if accept == nil {
		accept = func(string) bool { return true }
	}
	return &Watcher{
		dir:      dir,
		accept:   accept,
		debounce: DefaultDebounce,
		pending:  make(map[string]*time.Timer),
	}
}

// WithDebounce overrides the quiet period.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Existing lists accepted files already in the directory, sorted by name.
func (w *Watcher) Existing() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		path := filepath.Join(w.dir, e.Name())
		if e.IsDir() || isHidden(e.Name()) || !w.accept(path) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// Watch starts watching and returns a channel of file paths ready to load.
// A path is sent once it has been quiet for the debounce period.
// The channel is closed when ctx is cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	w.mu.Lock()
	if w.watcher != nil {
		w.mu.Unlock()
		return nil, ErrAlreadyWatching
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if err := fsw.Add(w.dir); err != nil {
		_ = fsw.Close()
		w.mu.Unlock()
		return nil, err
	}
	w.watcher = fsw
	w.stop = make(chan struct{})
	w.mu.Unlock()

	ready := make(chan string)
	out := make(chan string, 16)
	go w.forward(ctx, ready, out)
	go w.loop(ctx, fsw, ready)

	logger.Debug("watching inbox %s", w.dir)
	return out, nil
}

// loop turns fsnotify events into debounced ready paths.
func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, ready chan<- string) {
	defer func() {
		w.stopPending()
		close(w.stop)
		w.timers.Wait()
		close(ready)
	}()

	for {
		select {
		case <-ctx.Done():
			_ = w.Close()
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if path, ok := w.handleFsEvent(event); ok {
				w.schedule(ctx, path, ready)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("inbox watcher: %v", err)
		}
	}
}

// forward relays ready paths until ctx ends, then closes out.
func (w *Watcher) forward(ctx context.Context, ready <-chan string, out chan<- string) {
	defer close(out)
	for path := range ready {
		select {
		case out <- path:
		case <-ctx.Done():
		}
	}
}

// handleFsEvent reports whether event concerns an accepted file to (re)load.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return "", false
	}
	if isHidden(filepath.Base(event.Name)) || !w.accept(event.Name) {
		return "", false
	}
	info, err := os.Stat(event.Name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return event.Name, true
}

// schedule (re)starts the quiet-period timer for path.
func (w *Watcher) schedule(ctx context.Context, path string, ready chan<- string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if t, ok := w.pending[path]; ok && t.Stop() {
		w.timers.Done()
	}
	w.timers.Add(1)
	var t *time.Timer
	t = time.AfterFunc(w.debounce, func() {
		defer w.timers.Done()
		w.mu.Lock()
		if w.pending[path] == t {
			delete(w.pending, path)
		}
		w.mu.Unlock()
		select {
		case ready <- path:
		case <-ctx.Done():
		case <-w.stop:
		}
	})
	w.pending[path] = t
}

func (w *Watcher) stopPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, t := range w.pending {
		if t.Stop() {
			w.timers.Done()
		}
		delete(w.pending, path)
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.watcher == nil {
		w.closed = true
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

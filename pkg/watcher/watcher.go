// Package watcher notices changes other programs make to notebook
// directories while nb is running.
//
// The watcher never refreshes anything by itself. It only raises a flag that
// the navigator reads the next time it renders a listing.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vanderheijden86/notebook/pkg/debug"
)

// DefaultGrace is how long events on a path announced with Expect are ignored.
const DefaultGrace = 2 * time.Second

// Common errors.
var (
	ErrClosed = errors.New("watcher closed")
)

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithGrace sets how long self-inflicted events are ignored.
func WithGrace(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.grace = d
	}
}

// WithOnError sets the callback invoked on watch errors.
func WithOnError(fn func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher tracks changes in a set of directories (not recursive).
type Watcher struct {
	grace   time.Duration
	onError func(error)
	now     func() time.Time

	fsw  *fsnotify.Watcher
	done chan struct{}
	wg   sync.WaitGroup

	mu       sync.Mutex
	changed  bool
	closed   bool
	watched  map[string]bool
	expected map[string]time.Time
}

// New creates a watcher and starts its event loop.
func New(opts ...WatcherOption) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		grace:    DefaultGrace,
		onError:  func(error) {},
		now:      time.Now,
		fsw:      fsw,
		done:     make(chan struct{}),
		watched:  make(map[string]bool),
		expected: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch adds dir to the watched set. Watching a directory twice is a no-op.
func (w *Watcher) Watch(dir string) error {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.watched[dir] {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return err
	}
	w.watched[dir] = true
	return nil
}

// Unwatch removes dir from the watched set.
func (w *Watcher) Unwatch(dir string) error {
	dir = filepath.Clean(dir)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if !w.watched[dir] {
		return nil
	}
	delete(w.watched, dir)
	if err := w.fsw.Remove(dir); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
		return err
	}
	return nil
}

// Expect announces that nb itself is about to change path, so the events it
// causes are not reported as outside changes.
func (w *Watcher) Expect(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expected[filepath.Clean(path)] = w.now().Add(w.grace)
}

// TakeChanged reports whether an outside change was seen since the previous
// call, and clears the flag.
func (w *Watcher) TakeChanged() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	changed := w.changed
	w.changed = false
	return changed
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	events := w.fsw.Events
	errs := w.fsw.Errors
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			w.record(event)

		case err, ok := <-errs:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) record(event fsnotify.Event) {
	name := filepath.Clean(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()

	if until, ok := w.expected[name]; ok {
		if w.now().Before(until) {
			debug.Log("watcher: ignoring own change %s %s", event.Op, name)
			return
		}
		delete(w.expected, name)
	}
	debug.Log("watcher: outside change %s %s", event.Op, name)
	w.changed = true
}

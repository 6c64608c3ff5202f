// Package watch reports changes made to openclaw.json by any process, so open editors can reload.
package watch

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// Operations reported in Event.Op.
const (
	OpCreate = "create"
	OpWrite  = "write"
	OpRemove = "remove"
	OpRename = "rename"
)

// subscriberBuffer is the number of events a slow subscriber may fall behind by before events are dropped for it.
const subscriberBuffer = 8

// Event describes a change to the watched file.
// When several changes land within the debounce window only the last one is reported.
type Event struct {
	Path string    `doc:"Path of the changed file"                   json:"path"`
	Op   string    `doc:"What happened to the file" enum:"create,write,remove,rename" json:"op"`
	At   time.Time `doc:"When the change was observed"               json:"at"`
}

// Watcher watches a single file and fans change events out to subscribers.
// NewWatcher should be used to create instances of Watcher.
type Watcher struct {
	logger   hclog.Logger
	path     string
	dir      string
	debounce time.Duration

	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewWatcher creates a watcher for the file at path.
// The file (and its directory) need not exist yet.
func NewWatcher(logger hclog.Logger, path string, opt ...Option) (*Watcher, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path '%s': %w", path, err)
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		logger:   logger.Named("watch"),
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: opts.Debounce,
		subs:     map[int]chan Event{},
	}, nil
}

// Path returns the absolute path of the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Subscribe registers for change events.
// The returned function unsubscribes and closes the channel; it is safe to call more than once.
// The channel is also closed when Run returns.
func (w *Watcher) Subscribe() (<-chan Event, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if w.closed {
		close(ch)
		return ch, func() {}
	}

	id := w.nextID
	w.nextID++
	w.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()

			if sub, ok := w.subs[id]; ok {
				delete(w.subs, id)
				close(sub)
			}
		})
	}
}

// SubscriberCount returns the number of active subscribers.
func (w *Watcher) SubscriberCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.subs)
}

// Run watches the file until ctx is canceled, then closes every subscriber channel.
// It returns ctx.Err() after cancellation, or an error when watching could not start.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.closeSubscribers()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		_ = fw.Close()
	}()

	if err := w.addWatch(fw); err != nil {
		return err
	}

	w.logger.Info("Watching config file", "path", w.path)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending *Event
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("Stopping config file watcher")
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			// The config directory was created after we started; watch it directly.
			if ev.Name == w.dir && ev.Has(fsnotify.Create) {
				if err := fw.Add(w.dir); err != nil {
					w.logger.Warn("Unable to watch config directory", "dir", w.dir, "error", err)
				}
				continue
			}

			if ev.Name != w.path {
				continue
			}

			op, relevant := opName(ev.Op)
			if !relevant {
				continue
			}

			w.logger.Trace("File event", "path", ev.Name, "op", ev.Op.String())
			pending = &Event{Path: w.path, Op: op, At: time.Now().UTC()}
			timer.Reset(w.debounce)

		case <-timer.C:
			if pending != nil {
				w.publish(*pending)
				pending = nil
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("File watcher error", "error", err)
		}
	}
}

// addWatch watches the config directory, or its parent while the directory does not exist yet.
func (w *Watcher) addWatch(fw *fsnotify.Watcher) error {
	info, err := os.Stat(w.dir)
	switch {
	case err == nil && info.IsDir():
		if err := fw.Add(w.dir); err != nil {
			return fmt.Errorf("failed to watch '%s': %w", w.dir, err)
		}
		return nil
	case err == nil:
		return fmt.Errorf("'%s' is not a directory", w.dir)
	case !stdErrors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat '%s': %w", w.dir, err)
	}

	parent := filepath.Dir(w.dir)
	w.logger.Debug("Config directory does not exist, watching parent", "dir", w.dir, "parent", parent)
	if err := fw.Add(parent); err != nil {
		return fmt.Errorf("failed to watch '%s': %w", parent, err)
	}

	return nil
}

// publish delivers ev to every subscriber without blocking; subscribers with a full buffer miss it.
func (w *Watcher) publish(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.logger.Debug("Config file changed", "path", ev.Path, "op", ev.Op, "subscribers", len(w.subs))

	for id, ch := range w.subs {
		select {
		case ch <- ev:
		default:
			w.logger.Warn("Dropping change event for slow subscriber", "subscriber", id)
		}
	}
}

func (w *Watcher) closeSubscribers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, ch := range w.subs {
		close(ch)
		delete(w.subs, id)
	}
	w.closed = true
}

func opName(op fsnotify.Op) (string, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return "", false
	}
}

package mapfile

import (
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// quiet is how long a map file must stay untouched before it is reported.
// Editors often save in several writes; only the settled file is reloaded.
const quiet = 100 * time.Millisecond

// Watcher reports map files that changed under a store directory.
// Events carries the changed file's slash-separated path relative to the
// root, the same name Store.Load takes. Both channels are closed by Close.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches root and every directory below it for map file changes
func NewWatcher(root string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &Watcher{
		root:    root,
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	if err := watcher.addTree(root); err != nil {
		_ = w.Close()
		return nil, err
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching and closes the channels
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.watcher.Add(path)
	})
}

// name converts an event path into a store name
func (w *Watcher) name(path string) (string, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	timer := time.NewTimer(quiet)
	timer.Stop()
	defer timer.Stop()

	var settled <-chan time.Time
	pending := make(map[string]struct{})
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.report(err)
					}
					continue
				}
			}
			if !IsMapFile(event.Name) {
				continue
			}
			name, ok := w.name(event.Name)
			if !ok {
				continue
			}
			pending[name] = struct{}{}
			timer.Reset(quiet)
			settled = timer.C
		case <-settled:
			settled = nil
			for _, name := range slices.Sorted(maps.Keys(pending)) {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			clear(pending)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

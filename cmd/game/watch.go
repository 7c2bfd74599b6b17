package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/younwookim/tileengine/internal/infrastructure/mapfile"
)

// reloader restarts the level being played
type reloader interface {
	MapFile() string
	Reload() error
}

// mapChanges returns a per-frame hook that drains pending map file events
// without blocking. Every changed file is dropped from the store's cache and
// the level restarts when its own map changed.
func mapChanges(events <-chan string, errs <-chan error, store *mapfile.Store, level reloader) func() error {
	return func() error {
		reload := false
		for {
			select {
			case name, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				store.Invalidate(name)
				log.WithField("map", name).Debug("map file changed")
				if name == level.MapFile() {
					reload = true
				}
				continue
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				log.WithError(err).Warn("map watcher error")
				continue
			default:
			}
			break
		}

		if !reload {
			return nil
		}
		log.WithField("map", level.MapFile()).Info("reloading level")
		return level.Reload()
	}
}

package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = 100 * time.Millisecond

// Watcher reports prefab files that change on disk.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Changes chan string
	Errors  chan error
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:     fsw,
		Changes: make(chan string, 16),
		Errors:  make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

// run reports a file once it has been quiet for the debounce interval, so
// editors that save in several steps trigger a single reload.
func (w *Watcher) run() {
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce / 2)
	defer ticker.Stop()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || !watched(ev.Name) {
				continue
			}
			pending[ev.Name] = time.Now()
		case now := <-ticker.C:
			for name, t := range pending {
				if now.Sub(t) < debounce {
					continue
				}
				delete(pending, name)
				select {
				case w.Changes <- name:
				case <-w.done:
					return
				}
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// Pump applies pending changes to c without blocking. New spawns see the
// reloaded values; entities already built keep theirs.
func (w *Watcher) Pump(c *Catalog, logger *zap.Logger) int {
	applied := 0
	for {
		select {
		case name := <-w.Changes:
			if err := c.Reload(name); err != nil {
				logger.Warn("prefab reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			logger.Info("prefab reloaded", zap.String("file", filepath.Base(name)))
			applied++
		case err := <-w.Errors:
			logger.Warn("prefab watcher", zap.Error(err))
		default:
			return applied
		}
	}
}

func watched(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".tengo":
		return true
	}
	return false
}

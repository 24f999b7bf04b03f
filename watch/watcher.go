// Package watch reloads the site declaration when its file changes.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/ZacxDev/blogsite/config"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LoadFunc produces a fresh configuration from the declaration at path.
type LoadFunc func(path string) (config.SiteConfig, error)

// Watcher holds the most recently loaded configuration. Every reload is an
// independent call to load; a successful one replaces the value wholesale
// and a failed one leaves the previous value in place.
type Watcher struct {
	path     string
	load     LoadFunc
	debounce time.Duration
	watcher  *fsnotify.Watcher

	mu      sync.RWMutex
	current config.SiteConfig

	reloadChan chan struct{}
	stopChan   chan struct{}
	stopOnce   sync.Once

	// OnReload, when set, is called after every reload attempt.
	OnReload func(config.SiteConfig, error)
}

// New loads the declaration once and prepares a watcher for it. The initial
// load must succeed.
func New(path string, load LoadFunc) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve config path")
	}

	cfg, err := load(absPath)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	return &Watcher{
		path:       absPath,
		load:       load,
		debounce:   200 * time.Millisecond,
		watcher:    fw,
		current:    cfg,
		reloadChan: make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
	}, nil
}

// Current returns the configuration in effect.
func (w *Watcher) Current() config.SiteConfig {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Start watches the declaration's directory; editors often replace files
// instead of writing them in place.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return errors.Wrapf(err, "failed to watch %s", dir)
	}

	log.WithFields(log.Fields{"config_path": w.path}).Info("Watching site declaration")

	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends both loops and releases the file watcher.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}

			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				log.WithFields(log.Fields{"file": event.Name, "op": event.Op.String()}).Debug("Site declaration changed")
				w.trigger()
			case event.Has(fsnotify.Remove):
				log.WithFields(log.Fields{"file": event.Name}).Warn("Site declaration removed")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.WithFields(log.Fields{"err": err}).Error("Watcher error")
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	var timer *time.Timer
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}

	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-w.stopChan:
			stopTimer()
			return
		case <-w.reloadChan:
			stopTimer()
			timer = time.AfterFunc(w.debounce, w.Reload)
		}
	}
}

// Reload loads the declaration again and swaps it in if it is valid.
func (w *Watcher) Reload() {
	cfg, err := w.load(w.path)
	if err != nil {
		log.WithFields(log.Fields{"config_path": w.path, "err": err}).Error("Reload failed, keeping previous configuration")
	} else {
		w.mu.Lock()
		w.current = cfg
		w.mu.Unlock()
		log.WithFields(log.Fields{"config_path": w.path, "title": cfg.Title}).Info("Site declaration reloaded")
	}

	if w.OnReload != nil {
		w.OnReload(cfg, err)
	}
}

package watcher

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"logview/internal/app/bus"
	"logview/internal/app/session"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// Loader reads a config file
type Loader func(path string) (*config.Config, error)

// Watcher reloads runtime settings when the config file changes
type Watcher interface {
	Start(ctx context.Context) error
	Close()
}

// watcher implements the Watcher interface
type watcher struct {
	path      string
	dir       string
	matcher   Matcher
	debouncer Debouncer
	fsWatcher *fsnotify.Watcher
	session   session.Session
	bus       bus.Bus
	load      Loader
	log       logger.Logger

	mu      sync.Mutex
	started bool
	closed  bool
}

// NewWatcher creates a watcher for the config file at path
func NewWatcher(path string, s session.Session, b bus.Bus, load Loader, log logger.Logger) (Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	matcher, err := NewMatcher([]string{filepath.Base(abs), config.EnvFile})
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &watcher{
		path:      abs,
		dir:       filepath.Dir(abs),
		matcher:   matcher,
		fsWatcher: fsw,
		session:   s,
		bus:       b,
		load:      load,
		log:       log.WithComponent("WATCHER"),
	}

	w.debouncer = NewDebouncer(config.WatchDebounce, w.reload)

	return w, nil
}

// Start watches the config directory until ctx is done or Close is called.
// The directory is watched rather than the file so editors that replace the file are followed.
func (w *watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.started {
		return nil
	}

	if err := w.fsWatcher.Add(w.dir); err != nil {
		return err
	}

	w.started = true

	go w.processEvents()

	go func() {
		<-ctx.Done()
		w.Close()
	}()

	w.log.Info().Msgf("Watching %s for changes", w.path)
	w.bus.Publish(bus.Message{Type: bus.EventWatchStarted, Data: bus.Payload{Name: w.path}})

	return nil
}

// Close stops watching and releases resources
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.debouncer.Stop()
	w.fsWatcher.Close()

	if w.started {
		w.bus.Publish(bus.Message{Type: bus.EventWatchStopped, Data: bus.Payload{Name: w.path}})
	}
}

// processEvents routes fsnotify events to the debouncer
func (w *watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// handleEvent processes a single fsnotify event
func (w *watcher) handleEvent(event fsnotify.Event) {
	if !isRelevantEvent(event) {
		return
	}

	if filepath.Dir(event.Name) != w.dir || !w.matcher.Match(event.Name) {
		return
	}

	w.debouncer.Trigger(filepath.Base(event.Name))
}

// reload re-reads the config and applies the settings that can change at runtime
func (w *watcher) reload(names []string) {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()

	if closed {
		return
	}

	cfg, err := w.load(w.path)
	if err != nil {
		w.log.Warn().Err(err).Msgf("Ignoring change to %v", names)
		return
	}

	w.log.Info().Msgf("Reloaded %s after change to %v", w.path, names)
	w.bus.Publish(bus.Message{Type: bus.EventConfigReloaded, Data: bus.ConfigReloaded{Path: w.path}, Critical: true})

	if w.session.Polling() != cfg.Polling.Enabled {
		w.session.SetPolling(cfg.Polling.Enabled)
	}
}

// isRelevantEvent returns true if the event may have changed file contents
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename)
}

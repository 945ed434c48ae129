package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/baseplate-io/baseplate/pkg/logging"
)

// Watcher watches a config file and reloads the Manager when it changes.
// Changes are debounced so editors that write in several steps trigger a
// single reload.
type Watcher struct {
	manager  *Manager
	path     string
	onChange func(Config)

	watcher       *fsnotify.Watcher
	debounceDelay time.Duration
	logger        zerolog.Logger

	mu            sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher for path. onChange, if non-nil, runs after
// every successful reload with the new configuration.
func NewWatcher(manager *Manager, path string, onChange func(Config)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		manager:       manager,
		path:          path,
		onChange:      onChange,
		watcher:       fsWatcher,
		debounceDelay: 100 * time.Millisecond,
		logger:        log.With().Str("component", "config.watcher").Logger(),
	}, nil
}

// NewLogLevelWatcher creates a watcher that re-applies the log level to the
// global logger after every successful reload. Worker count is
// construction-time only and is not re-applied.
func NewLogLevelWatcher(manager *Manager, path string) (*Watcher, error) {
	return NewWatcher(manager, path, func(cfg Config) {
		if err := logging.Configure(cfg.Log.Level); err != nil {
			log.Warn().Err(err).Msg("Failed to re-apply log level")
		}
	})
}

// Start begins watching. It blocks until the context is cancelled and should
// run in its own goroutine:
//
//	go watcher.Start(ctx)
func (w *Watcher) Start(ctx context.Context) error {
	// fsnotify watches directories, not files, so register the parent and
	// filter events down to the config file itself.
	dir := filepath.Dir(w.path)
	name := filepath.Base(w.path)

	if err := w.watcher.Add(dir); err != nil {
		w.logger.Error().Err(err).Str("dir", dir).Msg("Failed to watch config directory")
		return err
	}

	w.logger.Info().
		Str("file", w.path).
		Dur("debounce", w.debounceDelay).
		Msg("Started watching config file")

	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Warn().Err(err).Msg("Error closing watcher")
		}
		w.logger.Info().Msg("Stopped watching config file")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("Config watcher error")
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	if err := w.manager.Reload(); err != nil {
		w.logger.Error().Err(err).Msg("Config reload failed, keeping previous configuration")
		return
	}

	cfg := w.manager.Get()
	w.logger.Info().Str("log_level", cfg.Log.Level).Msg("Config reloaded")
	if w.onChange != nil {
		w.onChange(cfg)
	}
}

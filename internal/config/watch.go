package config

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDelay coalesces the burst of events editors produce on save.
const reloadDelay = 100 * time.Millisecond

// ReloadFunc produces a fresh Config after a watched file changes.
type ReloadFunc func() (*Config, error)

// Watcher reloads configuration when any of its files change.
// Parent directories are watched so files created after startup, and
// files replaced by rename, are picked up.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]struct{}
	reload  ReloadFunc
	logger  *zap.Logger

	updates chan *Config
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher starts watching files. Directories that do not exist are skipped;
// if none can be watched the returned Watcher never delivers updates.
func NewWatcher(files []string, reload ReloadFunc, logger *zap.Logger) (*Watcher, error) {
	if reload == nil {
		return nil, errors.New("reload func is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		files:   make(map[string]struct{}, len(files)),
		reload:  reload,
		logger:  logger,
		updates: make(chan *Config, 1),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, f := range files {
		if f == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			continue
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	for dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := fw.Add(dir); err != nil {
			logger.Warn("config watch failed", zap.String("dir", dir), zap.Error(err))
		}
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Updates delivers reloaded configurations. Only the newest pending update is kept.
func (w *Watcher) Updates() <-chan *Config {
	return w.updates
}

// Close stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.deliver()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

func (w *Watcher) deliver() {
	cfg, err := w.reload()
	if err != nil {
		w.logger.Warn("config reload failed", zap.Error(err))
		return
	}
	if err := Validate(cfg); err != nil {
		w.logger.Warn("reloaded config is invalid", zap.Error(err))
		return
	}

	// Replace any update the consumer has not read yet.
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
		w.logger.Info("config reloaded", zap.Strings("files", cfg.Files))
	case <-w.done:
	}
}

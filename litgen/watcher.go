package litgen

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/veldran/countrygen/errors"
	"github.com/veldran/countrygen/logger"
)

// Watcher watches the input dataset and re-runs generation on change.
//
// Regenerations are debounced so editors that write in several bursts only
// trigger one pass. Generation errors are logged and the watch continues;
// the previous output file stays in place untouched.
type Watcher struct {
	gen            Generator
	cfg            RunConfig
	watcher        *fsnotify.Watcher
	mu             sync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// NewWatcher creates a watcher for the input path of cfg.
func NewWatcher(gen Generator, cfg RunConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := fsw.Add(cfg.InputPath); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", cfg.InputPath)
	}

	return &Watcher{
		gen:            gen,
		cfg:            cfg,
		watcher:        fsw,
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}, nil
}

// Start begins watching for dataset changes.
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Only regenerate on Write or Create events
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("Dataset change detected",
					"file", event.Name,
					"op", event.Op.String())
				w.scheduleRun()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Dataset watcher error",
				"error", err)
		}
	}
}

// scheduleRun debounces rapid file changes and triggers regeneration
func (w *Watcher) scheduleRun() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := Run(w.gen, w.cfg); err != nil {
			logger.Errorw("Regeneration failed",
				"error", err)
		}
	})
}

// Stop stops watching for dataset changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

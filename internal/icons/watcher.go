package icons

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher regenerates the icon set whenever the source logo changes.
type Watcher struct {
	gen      *Generator
	debounce time.Duration
}

// NewWatcher creates a watcher over the generator's public directory.
func NewWatcher(gen *Generator) *Watcher {
	return &Watcher{
		gen:      gen,
		debounce: 500 * time.Millisecond,
	}
}

// shouldRebuild reports whether a filesystem event warrants regeneration.
// Only creates and writes of the source logo count; events for the
// generated outputs are skipped so a run does not retrigger itself.
func (w *Watcher) shouldRebuild(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return false
	}
	return filepath.Base(event.Name) == SourceName
}

// Watch blocks, regenerating icons each time logo.png is rewritten, until
// ctx is cancelled. Rapid successive events (editors write in bursts) are
// debounced into a single run.
func (w *Watcher) Watch(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err := fsWatcher.Add(w.gen.PublicDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.gen.PublicDir, err)
	}
	w.gen.Logger.Info().Str("dir", w.gen.PublicDir).Msg("Watching for logo changes")

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.shouldRebuild(event) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			if err := w.gen.Run(ctx); err != nil {
				return err
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.gen.Logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

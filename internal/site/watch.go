package site

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before rebuilding.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange when a file under Root matching one of Patterns is
// written, created, removed or renamed. Paths matching Ignore never trigger.
// Files lists individual files outside Root; their directories are watched
// and only the exact file triggers.
type Watcher struct {
	Root     string
	Patterns []string
	Ignore   []string
	Files    []string
	Debounce time.Duration
	OnChange func(path string)
}

// Matches reports whether rel (slash-separated, relative to Root) should
// trigger a rebuild.
func (w *Watcher) Matches(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.Ignore {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return false
		}
	}
	for _, pattern := range w.Patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := w.addTree(watcher, w.Root); err != nil {
		return err
	}
	files := make(map[string]bool, len(w.Files))
	for _, f := range w.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", f, err)
		}
		files[abs] = true
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
		}
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := w.addTree(watcher, event.Name); err != nil {
					zap.S().Warnf("watch: %v", err)
				}
				continue
			}

			rel, match := w.relevant(event.Name, files)
			if !match {
				continue
			}
			zap.S().Debugw("change detected", "path", rel, "op", event.Op.String())

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() { w.OnChange(rel) })
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			zap.S().Warnf("watch: %v", err)
		}
	}
}

// relevant reports whether an event on name should trigger, and the path
// passed to OnChange: relative to Root for pattern matches, the event path
// for Files entries.
func (w *Watcher) relevant(name string, files map[string]bool) (string, bool) {
	if abs, err := filepath.Abs(name); err == nil && files[abs] {
		return name, true
	}
	rel, err := filepath.Rel(w.Root, name)
	if err != nil || !w.Matches(rel) {
		return "", false
	}
	return rel, true
}

// addTree registers dir and every subdirectory except hidden ones.
func (w *Watcher) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Package refresh reloads the current stylesheet when its file changes.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ucss/style"
)

// ErrNoStylesheet is returned by Watch when no stylesheet is selected.
var ErrNoStylesheet = errors.New("current stylesheet is not selected")

// Source knows which stylesheet is current.
type Source interface {
	CurrentStylesheet() (string, error)
}

// Loader loads stylesheet file into the tree, *style.Engine is one.
type Loader interface {
	LoadFile(root style.Node, path string) error
}

// RootFunc returns node styles are applied to or nil when tree is not
// available.
type RootFunc func() style.Node

// Refresher connects file changes with stylesheet reloads.
type Refresher struct {
	log    *zap.Logger
	loader Loader
	source Source
	root   RootFunc
	ext    string

	group    singleflight.Group
	reloads  atomic.Int64
	reloaded func(path string, err error)
}

// New creates refresher for stylesheets with extension ext (".ucss").
func New(log *zap.Logger, loader Loader, source Source, root RootFunc, ext string) *Refresher {
	if log == nil {
		log = zap.NewNop()
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Refresher{
		log:    log.Named("refresh"),
		loader: loader,
		source: source,
		root:   root,
		ext:    ext,
	}
}

// OnReload sets function called after every reload attempt.
func (r *Refresher) OnReload(fn func(path string, err error)) {
	r.reloaded = fn
}

// Reloads returns number of reloads performed.
func (r *Refresher) Reloads() int64 {
	return r.reloads.Load()
}

// Imported is called with paths of changed files. When one of them is the
// current stylesheet it is reloaded and applied.
func (r *Refresher) Imported(paths ...string) error {
	current, err := r.source.CurrentStylesheet()
	if err != nil {
		return fmt.Errorf("unable to get current stylesheet: %w", err)
	}
	if current == "" {
		return nil
	}
	for _, p := range paths {
		if !strings.EqualFold(filepath.Ext(p), r.ext) || !samePath(p, current) {
			continue
		}
		return r.reload(current)
	}
	return nil
}

func (r *Refresher) reload(path string) error {
	_, err, shared := r.group.Do(path, func() (any, error) {
		r.reloads.Add(1)
		var root style.Node
		if r.root != nil {
			root = r.root()
		}
		return nil, r.loader.LoadFile(root, path)
	})
	if shared {
		r.log.Debug("Reload shared with concurrent request", zap.String("path", path))
	}
	if r.reloaded != nil {
		r.reloaded(path, err)
	}
	return err
}

// Watch follows changes in the directory of current stylesheet until ctx is
// done. Changes are collected for debounce interval before reloading.
func (r *Refresher) Watch(ctx context.Context, debounce time.Duration) error {
	current, err := r.source.CurrentStylesheet()
	if err != nil {
		return fmt.Errorf("unable to get current stylesheet: %w", err)
	}
	if current == "" {
		return ErrNoStylesheet
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("unable to create file watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(current)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("unable to watch %s: %w", dir, err)
	}
	r.log.Info("Watching for stylesheet changes", zap.String("stylesheet", current), zap.Duration("debounce", debounce))

	var (
		pending = make(map[string]struct{})
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			pending[filepath.Clean(ev.Name)] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("File watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			clear(pending)
			slices.Sort(paths)
			if err := r.Imported(paths...); err != nil {
				r.log.Debug("Reload failed", zap.Error(err))
			}
		}
	}
}

func samePath(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	sa, err := os.Stat(a)
	if err != nil {
		return false
	}
	sb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(sa, sb)
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch reports changes to a single file made by other programs.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/jeranaias/styleconf/internal/logging"
)

// DefaultDebounce coalesces the burst of events an atomic save produces.
const DefaultDebounce = 200 * time.Millisecond

// Event reports that the watched file changed.
type Event struct {
	Path    string
	Removed bool // the file no longer exists
}

// =============================================================================
// FILE WATCHER INTERFACE
// =============================================================================

// FileWatcher is the interface for file watching implementations.
type FileWatcher interface {
	// Events delivers one Event per settled change. It is closed by Close.
	Events() <-chan Event

	// Close stops watching and releases resources.
	Close() error
}

// New watches path with fsnotify, falling back to polling when the platform
// watcher cannot be started.
func New(path string, debounce time.Duration) (FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := NewFsnotifyWatcher(abs, debounce)
	if err == nil {
		return fw, nil
	}
	log := logging.WithComponent("watch")
	log.Warn().Err(err).Str("path", abs).Msg("fsnotify unavailable, polling instead")
	return NewPollingWatcher(abs, time.Second), nil
}

// =============================================================================
// FSNOTIFY WATCHER
// =============================================================================

// FsnotifyWatcher watches the file's directory, since editors and atomic
// writers replace files rather than modifying them in place.
type FsnotifyWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	events   chan Event
	log      zerolog.Logger

	mu      sync.Mutex
	pending time.Time // zero when nothing is pending

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewFsnotifyWatcher starts watching path. The directory must exist.
func NewFsnotifyWatcher(path string, debounce time.Duration) (*FsnotifyWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	fw := &FsnotifyWatcher{
		path:     path,
		watcher:  watcher,
		debounce: debounce,
		events:   make(chan Event, 1),
		log:      logging.WithComponent("watch"),
		ctx:      ctx,
		cancel:   cancel,
	}

	fw.wg.Add(2)
	go fw.processEvents()
	go fw.processPending()
	return fw, nil
}

// Events implements FileWatcher.
func (fw *FsnotifyWatcher) Events() <-chan Event {
	return fw.events
}

// processEvents filters directory events down to the watched file.
func (fw *FsnotifyWatcher) processEvents() {
	defer fw.wg.Done()
	for {
		select {
		case <-fw.ctx.Done():
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			fw.mu.Lock()
			fw.pending = time.Now()
			fw.mu.Unlock()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Warn().Err(err).Str("path", fw.path).Msg("watch error")
		}
	}
}

// processPending emits an event once changes have settled for the debounce
// interval.
func (fw *FsnotifyWatcher) processPending() {
	defer fw.wg.Done()

	tick := fw.debounce / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-fw.ctx.Done():
			return

		case now := <-ticker.C:
			fw.mu.Lock()
			ready := !fw.pending.IsZero() && now.Sub(fw.pending) >= fw.debounce
			if ready {
				fw.pending = time.Time{}
			}
			fw.mu.Unlock()

			if ready {
				fw.emit(Event{Path: fw.path, Removed: !exists(fw.path)})
			}
		}
	}
}

func (fw *FsnotifyWatcher) emit(ev Event) {
	fw.log.Debug().Str("path", ev.Path).Bool("removed", ev.Removed).Msg("file changed")
	select {
	case fw.events <- ev:
	case <-fw.ctx.Done():
	}
}

// Close implements FileWatcher.
func (fw *FsnotifyWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		fw.cancel()
		err = fw.watcher.Close()
		fw.wg.Wait()
		close(fw.events)
	})
	return err
}

// =============================================================================
// POLLING WATCHER (FALLBACK)
// =============================================================================

// PollingWatcher detects changes by comparing size and modification time.
type PollingWatcher struct {
	path     string
	interval time.Duration
	events   chan Event
	last     fileState

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func (s fileState) same(o fileState) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func stat(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}
}

func exists(path string) bool {
	return stat(path).exists
}

// NewPollingWatcher starts polling path every interval.
func NewPollingWatcher(path string, interval time.Duration) *PollingWatcher {
	ctx, cancel := context.WithCancel(context.Background())
	pw := &PollingWatcher{
		path:     path,
		interval: interval,
		events:   make(chan Event, 1),
		last:     stat(path),
		ctx:      ctx,
		cancel:   cancel,
	}
	pw.wg.Add(1)
	go pw.poll()
	return pw
}

// Events implements FileWatcher.
func (pw *PollingWatcher) Events() <-chan Event {
	return pw.events
}

func (pw *PollingWatcher) poll() {
	defer pw.wg.Done()
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			cur := stat(pw.path)
			if cur.same(pw.last) {
				continue
			}
			pw.last = cur
			select {
			case pw.events <- Event{Path: pw.path, Removed: !cur.exists}:
			case <-pw.ctx.Done():
				return
			}
		}
	}
}

// Close implements FileWatcher.
func (pw *PollingWatcher) Close() error {
	pw.once.Do(func() {
		pw.cancel()
		pw.wg.Wait()
		close(pw.events)
	})
	return nil
}

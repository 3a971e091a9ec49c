package domain

import (
	"sync"
	"unique"
)

// WatchHandle notifies an interested party of the first future change to a
// path. Handles are created by the resolution layer at resolve time, for
// existing and non-existing paths alike, and invalidated by the watch layer
// when the path changes.
//
// A handle fires at most once: Changed returns a channel that is closed on
// the first invalidation and never reopened. Callers that survive an
// invalidation re-resolve and receive a fresh handle.
type WatchHandle struct {
	path unique.Handle[string]
	once sync.Once
	ch   chan struct{}
}

// NewWatchHandle creates a handle for the given path.
func NewWatchHandle(path string) *WatchHandle {
	return &WatchHandle{
		path: unique.Make(path),
		ch:   make(chan struct{}),
	}
}

// Path returns the watched path.
func (h *WatchHandle) Path() string {
	return h.path.Value()
}

// Changed returns a channel that is closed when the underlying path changes.
func (h *WatchHandle) Changed() <-chan struct{} {
	return h.ch
}

// Invalidate marks the handle as changed. It is safe to call from any
// goroutine and more than once; only the first call has an effect.
func (h *WatchHandle) Invalidate() {
	h.once.Do(func() {
		close(h.ch)
	})
}

// Invalidated reports whether the handle has fired.
func (h *WatchHandle) Invalidated() bool {
	select {
	case <-h.ch:
		return true
	default:
		return false
	}
}

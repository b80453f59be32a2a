package service

import (
	"sync"
)

// GenerationTracker hands out monotonically increasing generation numbers per
// session key. A slow in-flight request whose generation has been superseded
// by a newer one should have its result discarded, not shown to the user.
type GenerationTracker struct {
	mu      sync.Mutex
	current map[string]uint64
}

// NewGenerationTracker creates an empty tracker.
func NewGenerationTracker() *GenerationTracker {
	return &GenerationTracker{current: make(map[string]uint64)}
}

// Begin marks the start of a new request for the session and returns its
// generation number. Any earlier generation for the same session is now
// stale.
func (t *GenerationTracker) Begin(sessionKey string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current[sessionKey]++
	return t.current[sessionKey]
}

// IsCurrent reports whether the given generation is still the session's
// latest.
func (t *GenerationTracker) IsCurrent(sessionKey string, generation uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current[sessionKey] == generation
}

// Forget drops the session's counter, e.g. when the session ends.
func (t *GenerationTracker) Forget(sessionKey string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.current, sessionKey)
}

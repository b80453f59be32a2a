package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationTrackerSupersedesOlderRequests(t *testing.T) {
	tracker := NewGenerationTracker()

	first := tracker.Begin("user-a")
	assert.True(t, tracker.IsCurrent("user-a", first))

	second := tracker.Begin("user-a")
	assert.False(t, tracker.IsCurrent("user-a", first))
	assert.True(t, tracker.IsCurrent("user-a", second))
}

func TestGenerationTrackerIsolatesSessions(t *testing.T) {
	tracker := NewGenerationTracker()

	a := tracker.Begin("user-a")
	tracker.Begin("user-b")

	assert.True(t, tracker.IsCurrent("user-a", a))
}

func TestGenerationTrackerForget(t *testing.T) {
	tracker := NewGenerationTracker()

	gen := tracker.Begin("user-a")
	tracker.Forget("user-a")

	assert.False(t, tracker.IsCurrent("user-a", gen))
}

package filetracker

import (
	"testing"

	"histview/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestTrackOpenClose(t *testing.T) {
	ft := NewTracker(logger.NoOp{})

	ft.TrackOpen("/data/a.root", 1)
	ft.TrackOpen("/data/b.root", 2)
	assert.Len(t, ft.GetOpenFiles(), 2)

	// Stale handle for the same path is ignored.
	ft.TrackClose("/data/a.root", 7)
	assert.Len(t, ft.GetOpenFiles(), 2)

	ft.TrackClose("/data/a.root", 1)
	leaks := ft.DetectLeaks()
	assert.Len(t, leaks, 1)
	assert.Equal(t, "/data/b.root", leaks[0].Path)
	assert.Equal(t, uint64(2), leaks[0].Handle)
}

func TestDisabledTrackerRecordsNothing(t *testing.T) {
	ft := NewTracker(logger.NoOp{})
	ft.SetEnabled(false)

	ft.TrackOpen("/data/a.root", 1)
	assert.Empty(t, ft.DetectLeaks())
}

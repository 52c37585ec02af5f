package debug

import (
	"context"
	"time"

	"histview/internal/logger"
)

// TimingTracker measures operation performance
type TimingTracker interface {
	StartTiming(operation string) context.Context
	EndTiming(ctx context.Context)
	GetTimings(operation string) []time.Duration
}

// FileTracker monitors file handle lifecycle
type FileTracker interface {
	TrackOpen(path string, handle uint64)
	TrackClose(path string, handle uint64)
	GetOpenFiles() map[string]FileInfo
	DetectLeaks() []FileInfo
}

// FileInfo contains file handle information
type FileInfo struct {
	Path     string
	Handle   uint64
	OpenedAt time.Time
}

// Coordinator combines all debug capabilities
type Coordinator interface {
	Logger() logger.Logger
	TimingTracker() TimingTracker
	FileTracker() FileTracker
	Shutdown()
}

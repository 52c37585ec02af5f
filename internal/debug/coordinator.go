package debug

import (
	"context"
	"time"

	"histview/internal/debug/filetracker"
	"histview/internal/debug/timing"
	"histview/internal/logger"
)

type TimingTrackerImpl struct {
	tracker *timing.Tracker
}

func (t *TimingTrackerImpl) StartTiming(operation string) context.Context {
	return t.tracker.StartTiming(operation)
}

func (t *TimingTrackerImpl) EndTiming(ctx context.Context) {
	t.tracker.EndTiming(ctx)
}

func (t *TimingTrackerImpl) GetTimings(operation string) []time.Duration {
	return t.tracker.GetTimings(operation)
}

type FileTrackerImpl struct {
	tracker *filetracker.Tracker
}

func (f *FileTrackerImpl) TrackOpen(path string, handle uint64) {
	f.tracker.TrackOpen(path, handle)
}

func (f *FileTrackerImpl) TrackClose(path string, handle uint64) {
	f.tracker.TrackClose(path, handle)
}

func (f *FileTrackerImpl) GetOpenFiles() map[string]FileInfo {
	files := f.tracker.GetOpenFiles()
	result := make(map[string]FileInfo)
	for k, v := range files {
		result[k] = FileInfo{
			Path:     v.Path,
			Handle:   v.Handle,
			OpenedAt: v.OpenedAt,
		}
	}
	return result
}

func (f *FileTrackerImpl) DetectLeaks() []FileInfo {
	leaks := f.tracker.DetectLeaks()
	result := make([]FileInfo, len(leaks))
	for i, v := range leaks {
		result[i] = FileInfo{
			Path:     v.Path,
			Handle:   v.Handle,
			OpenedAt: v.OpenedAt,
		}
	}
	return result
}

type DebugCoordinator struct {
	logger        logger.Logger
	timingTracker TimingTracker
	fileTracker   FileTracker
}

func NewCoordinator(config Config, log logger.Logger) *DebugCoordinator {
	if log == nil || !config.EnableLogging {
		log = logger.NoOp{}
	}

	timingTracker := timing.NewTracker(log)
	timingTracker.SetEnabled(config.EnableTimingTracking)

	fileTracker := filetracker.NewTracker(log)
	fileTracker.SetEnabled(config.EnableFileTracking)

	return &DebugCoordinator{
		logger:        log,
		timingTracker: &TimingTrackerImpl{tracker: timingTracker},
		fileTracker:   &FileTrackerImpl{tracker: fileTracker},
	}
}

func (dc *DebugCoordinator) Logger() logger.Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

func (dc *DebugCoordinator) FileTracker() FileTracker {
	return dc.fileTracker
}

// Shutdown reports ROOT files that were opened but never closed.
func (dc *DebugCoordinator) Shutdown() {
	for _, leak := range dc.fileTracker.DetectLeaks() {
		dc.logger.Warning("DebugCoordinator", "file handle still open at shutdown", map[string]interface{}{
			"path":      leak.Path,
			"handle":    leak.Handle,
			"opened_at": leak.OpenedAt,
		})
	}
}

type Config struct {
	EnableLogging        bool
	EnableFileTracking   bool
	EnableTimingTracking bool
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableFileTracking:   true,
		EnableTimingTracking: true,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableFileTracking:   false,
		EnableTimingTracking: false,
	}
}

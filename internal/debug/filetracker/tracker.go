package filetracker

import (
	"sort"
	"sync"
	"time"

	"histview/internal/logger"
)

type FileInfo struct {
	Path     string
	Handle   uint64
	OpenedAt time.Time
}

type Tracker struct {
	openFiles map[string]FileInfo
	mu        sync.RWMutex
	logger    logger.Logger
	enabled   bool
}

func NewTracker(log logger.Logger) *Tracker {
	return &Tracker{
		openFiles: make(map[string]FileInfo),
		logger:    log,
		enabled:   true,
	}
}

func (ft *Tracker) TrackOpen(path string, handle uint64) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if !ft.enabled {
		return
	}

	info := FileInfo{
		Path:     path,
		Handle:   handle,
		OpenedAt: time.Now(),
	}
	ft.openFiles[path] = info

	if ft.logger != nil {
		ft.logger.Debug("FileTracker", "file opened", map[string]interface{}{
			"path":   path,
			"handle": handle,
		})
	}
}

func (ft *Tracker) TrackClose(path string, handle uint64) {
	ft.mu.Lock()
	defer ft.mu.Unlock()

	if !ft.enabled {
		return
	}

	info, exists := ft.openFiles[path]
	if !exists || info.Handle != handle {
		return
	}
	delete(ft.openFiles, path)

	if ft.logger != nil {
		ft.logger.Debug("FileTracker", "file closed", map[string]interface{}{
			"path":        path,
			"handle":      handle,
			"duration_ms": time.Since(info.OpenedAt).Milliseconds(),
		})
	}
}

func (ft *Tracker) GetOpenFiles() map[string]FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	result := make(map[string]FileInfo)
	for k, v := range ft.openFiles {
		result[k] = v
	}
	return result
}

// DetectLeaks returns every file still tracked as open, ordered by path.
func (ft *Tracker) DetectLeaks() []FileInfo {
	ft.mu.RLock()
	defer ft.mu.RUnlock()

	leaks := make([]FileInfo, 0, len(ft.openFiles))
	for _, info := range ft.openFiles {
		leaks = append(leaks, info)
	}
	sort.Slice(leaks, func(i, j int) bool { return leaks[i].Path < leaks[j].Path })

	return leaks
}

func (ft *Tracker) SetEnabled(enabled bool) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.enabled = enabled
}

package app

import (
	"sync"

	"histview/internal/browser"
	"histview/internal/debug"
	"histview/internal/gui"
	"histview/internal/logger"
)

type Lifecycle struct {
	session    *browser.Session
	debugCoord debug.Coordinator
	guiManager *gui.Manager
	logger     logger.Logger
	once       sync.Once
}

func NewLifecycle(session *browser.Session, dc debug.Coordinator, gm *gui.Manager) *Lifecycle {
	return &Lifecycle{
		session:    session,
		debugCoord: dc,
		guiManager: gm,
		logger:     dc.Logger(),
	}
}

// Shutdown closes the open file and reports leaks. It runs once; later and
// concurrent calls return without doing anything. The session is owned by the
// UI goroutine, so callers elsewhere go through Application.Shutdown.
func (l *Lifecycle) Shutdown() {
	l.once.Do(l.shutdown)
}

func (l *Lifecycle) shutdown() {
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.session != nil {
		l.session.Close()
		l.logger.Debug("Lifecycle", "session closed", nil)
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
	}

	// Last, so leaks from the steps above are reported.
	if l.debugCoord != nil {
		l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
		l.debugCoord.Shutdown()
	}
}

// Package browser holds the state of one histogram browser window and
// routes navigation actions to the renderer.
package browser

import (
	"errors"
	"fmt"

	"histview/internal/fit"
	"histview/internal/hist"
	"histview/internal/logger"
	"histview/internal/navigation"
	"histview/internal/render"
)

// FitSamples is the number of points drawn for a fitted curve.
const FitSamples = 200

var ErrNoFile = errors.New("no file is open")

// Document is an open hierarchy.
type Document interface {
	hist.Hierarchy
	Path() string
	Handle() uint64
	Close() error
}

type Opener func(path string) (Document, error)

type FileTracker interface {
	TrackOpen(path string, handle uint64)
	TrackClose(path string, handle uint64)
}

// State is what the window shows.
type State struct {
	Path       string
	Folders    []string
	Histograms []string
	Selection  navigation.Selection
}

type Options struct {
	Logger logger.Logger
	Timer  render.Timer
	Files  FileTracker
	// OnRender runs after every successful base render.
	OnRender func(render.Result)
}

type Session struct {
	open       Opener
	nav        *navigation.Model
	dispatcher *render.Dispatcher
	overlays   *render.Overlays
	logger     logger.Logger
	timer      render.Timer
	files      FileTracker
	onRender   func(render.Result)

	doc      Document
	state    State
	last     render.Result
	rendered bool
}

func NewSession(canvas render.Canvas, open Opener, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logger.NoOp{}
	}
	s := &Session{
		open:       open,
		nav:        navigation.NewModel(log),
		dispatcher: render.NewDispatcher(canvas, log, opts.Timer),
		logger:     log,
		timer:      opts.Timer,
		files:      opts.Files,
		onRender:   opts.OnRender,
	}
	s.overlays = render.NewOverlays(canvas, s.Rerender, log)
	return s
}

func (s *Session) Overlays() *render.Overlays {
	return s.overlays
}

// State returns a copy of the current state.
func (s *Session) State() State {
	st := s.state
	st.Folders = append([]string(nil), s.state.Folders...)
	st.Histograms = append([]string(nil), s.state.Histograms...)
	return st
}

// LastRender returns the result of the last successful base render.
func (s *Session) LastRender() (render.Result, bool) {
	return s.last, s.rendered
}

// Open replaces the current file with path and selects the first folder.
// On failure the previous file and state are kept.
func (s *Session) Open(path string) error {
	if s.timer != nil {
		ctx := s.timer.StartTiming("open")
		defer s.timer.EndTiming(ctx)
	}

	doc, err := s.open(path)
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"path": path})
		return err
	}

	s.closeDocument()
	s.doc = doc
	if s.files != nil {
		s.files.TrackOpen(doc.Path(), doc.Handle())
	}

	s.state = State{Path: doc.Path(), Folders: s.nav.ListTopLevel(doc)}
	s.logger.Info("Session", "file opened", map[string]interface{}{
		"path":    doc.Path(),
		"folders": len(s.state.Folders),
	})

	if len(s.state.Folders) == 0 {
		return nil
	}
	if err := s.SelectFolder(s.state.Folders[0]); err != nil {
		s.logger.Warning("Session", "first folder could not be shown", map[string]interface{}{
			"folder": s.state.Folders[0],
			"error":  err.Error(),
		})
	}
	return nil
}

// SelectFolder lists the histograms in folder and renders the first one.
// An empty folder clears the histogram list and renders nothing.
func (s *Session) SelectFolder(folder string) error {
	if s.doc == nil {
		return ErrNoFile
	}

	s.state.Histograms = s.nav.ListChildren(s.doc, folder)
	s.state.Selection = navigation.Selection{Folder: folder}
	if len(s.state.Histograms) == 0 {
		return nil
	}
	return s.SelectHistogram(s.state.Histograms[0])
}

// SelectHistogram renders name from the selected folder. Overlays are
// dropped only when the render succeeds.
func (s *Session) SelectHistogram(name string) error {
	if s.doc == nil {
		return ErrNoFile
	}

	s.state.Selection.Histogram = name
	return s.renderSelection()
}

// Rerender draws the current selection from scratch.
func (s *Session) Rerender() error {
	if s.doc == nil || s.state.Selection.Empty() {
		return nil
	}
	return s.renderSelection()
}

func (s *Session) renderSelection() error {
	sel := s.state.Selection
	node, err := s.doc.Lookup(sel.Path())
	if err != nil {
		s.logger.Warning("Session", "selection could not be resolved", map[string]interface{}{
			"path":  sel.Path(),
			"error": err.Error(),
		})
		return err
	}

	res, err := s.dispatcher.Render(node, sel.Histogram)
	if err != nil {
		return err
	}

	s.overlays.Invalidate()
	s.last, s.rendered = res, true
	if s.onRender != nil {
		s.onRender(res)
	}
	return nil
}

// Current1D returns the selected histogram if it is one-dimensional.
func (s *Session) Current1D() (*hist.Hist1D, error) {
	if s.doc == nil {
		return nil, ErrNoFile
	}
	sel := s.state.Selection
	if sel.Empty() {
		return nil, fmt.Errorf("no histogram selected")
	}
	node, err := s.doc.Lookup(sel.Path())
	if err != nil {
		return nil, err
	}
	h, ok := node.(*hist.Hist1D)
	if !ok {
		return nil, fmt.Errorf("%s is a %s, not a 1D histogram", sel.Path(), node.Kind())
	}
	return h, nil
}

// FitGaussian fits the selected 1D histogram within xr and overlays the
// fitted curve.
func (s *Session) FitGaussian(xr hist.Range) (fit.Gauss, error) {
	h, err := s.Current1D()
	if err != nil {
		return fit.Gauss{}, err
	}
	g, err := fit.Gaussian(h, xr)
	if err != nil {
		s.logger.Warning("Session", "fit failed", map[string]interface{}{
			"histogram": h.Name,
			"error":     err.Error(),
		})
		return fit.Gauss{}, err
	}

	xs, ys := g.Curve(xr, FitSamples)
	if _, err := s.overlays.AddCurve(xs, ys, render.CurveStyle); err != nil {
		return fit.Gauss{}, err
	}
	s.logger.Info("Session", "gaussian fitted", map[string]interface{}{
		"histogram": h.Name,
		"mean":      g.Mean,
		"sigma":     g.Sigma,
	})
	return g, nil
}

// Close releases the open file.
func (s *Session) Close() {
	s.closeDocument()
	s.state = State{}
	s.rendered = false
}

func (s *Session) closeDocument() {
	if s.doc == nil {
		return
	}
	if err := s.doc.Close(); err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"path": s.doc.Path()})
	}
	if s.files != nil {
		s.files.TrackClose(s.doc.Path(), s.doc.Handle())
	}
	s.doc = nil
}

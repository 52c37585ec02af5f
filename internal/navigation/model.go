// Package navigation turns raw hierarchy listings into the folder and
// histogram lists shown to the user.
package navigation

import (
	"histview/internal/hist"
	"histview/internal/logger"
)

// Selection is the current folder/histogram pair.
type Selection struct {
	Folder    string
	Histogram string
}

// Path returns the hierarchy path of the selected histogram. A folder that
// is itself a histogram selects itself.
func (s Selection) Path() string {
	if s.Folder == s.Histogram {
		return s.Histogram
	}
	return s.Folder + "/" + s.Histogram
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return s.Folder == "" || s.Histogram == ""
}

type Model struct {
	logger logger.Logger
}

func NewModel(log logger.Logger) *Model {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Model{logger: log}
}

// ListTopLevel returns the unique canonical names of the root keys, sorted.
func (m *Model) ListTopLevel(h hist.Hierarchy) []string {
	names := hist.CanonicalNames(h.Keys())
	m.logger.Debug("Navigation", "top level listed", map[string]interface{}{
		"count": len(names),
	})
	return names
}

// ListChildren returns what can be selected under folder. Lookup failures
// and non-histogram leaves yield an empty list.
func (m *Model) ListChildren(h hist.Hierarchy, folder string) []string {
	node, err := h.Lookup(folder)
	if err != nil {
		m.logger.Warning("Navigation", "folder could not be resolved", map[string]interface{}{
			"folder": folder,
			"error":  err.Error(),
		})
		return []string{}
	}

	switch n := node.(type) {
	case *hist.Directory:
		return hist.CanonicalNames(n.Keys)
	case *hist.Hist1D, *hist.Hist2D:
		return []string{folder}
	default:
		m.logger.Debug("Navigation", "folder holds no histograms", map[string]interface{}{
			"folder": folder,
			"class":  node.ClassName(),
		})
		return []string{}
	}
}

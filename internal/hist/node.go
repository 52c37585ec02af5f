package hist

import (
	"fmt"
	"strings"
)

// Kind tags the variant held by a Node.
type Kind int

const (
	KindDirectory Kind = iota
	KindHist1D
	KindHist2D
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindHist1D:
		return "hist1d"
	case KindHist2D:
		return "hist2d"
	default:
		return "opaque"
	}
}

// Class tag prefixes recognized as histograms.
const (
	ClassPrefix1D = "TH1"
	ClassPrefix2D = "TH2"
)

// Node is a materialized entry of the hierarchy. The concrete type is one of
// *Directory, *Hist1D, *Hist2D or *Opaque.
type Node interface {
	NodeName() string
	ClassName() string
	Kind() Kind
}

// Hierarchy is the read side of an opened data file.
type Hierarchy interface {
	// Keys lists the raw root keys, cycle suffix included.
	Keys() []string
	// Lookup resolves a slash separated path to a node.
	Lookup(path string) (Node, error)
}

// Directory is a container of child keys.
type Directory struct {
	Name  string
	Class string
	Keys  []string
}

func (d *Directory) NodeName() string { return d.Name }
func (d *Directory) Kind() Kind       { return KindDirectory }

func (d *Directory) ClassName() string {
	if d.Class == "" {
		return "TDirectory"
	}
	return d.Class
}

// Hist1D holds N counts over N+1 ordered bin edges.
type Hist1D struct {
	Name   string
	Title  string
	Class  string
	Edges  []float64
	Counts []float64
}

func (h *Hist1D) NodeName() string  { return h.Name }
func (h *Hist1D) ClassName() string { return h.Class }
func (h *Hist1D) Kind() Kind        { return KindHist1D }

// Validate checks the edge/count shape.
func (h *Hist1D) Validate() error {
	if len(h.Counts) == 0 {
		return fmt.Errorf("histogram %q has no bins", h.Name)
	}
	if len(h.Edges) != len(h.Counts)+1 {
		return fmt.Errorf("histogram %q: %d edges for %d bins", h.Name, len(h.Edges), len(h.Counts))
	}
	return nil
}

// Centers returns the bin midpoints.
func (h *Hist1D) Centers() []float64 {
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = 0.5 * (h.Edges[i] + h.Edges[i+1])
	}
	return centers
}

// Hist2D holds an Nx×Ny grid, indexed Values[ix][iy].
type Hist2D struct {
	Name   string
	Title  string
	Class  string
	XEdges []float64
	YEdges []float64
	Values [][]float64
}

func (h *Hist2D) NodeName() string  { return h.Name }
func (h *Hist2D) ClassName() string { return h.Class }
func (h *Hist2D) Kind() Kind        { return KindHist2D }

// Dims returns the number of x and y bins.
func (h *Hist2D) Dims() (nx, ny int) {
	return len(h.XEdges) - 1, len(h.YEdges) - 1
}

// Validate checks that the grid matches both edge sequences.
func (h *Hist2D) Validate() error {
	nx, ny := h.Dims()
	if nx < 1 || ny < 1 {
		return fmt.Errorf("histogram %q has no bins", h.Name)
	}
	if len(h.Values) != nx {
		return fmt.Errorf("histogram %q: %d columns for %d x bins", h.Name, len(h.Values), nx)
	}
	for ix, col := range h.Values {
		if len(col) != ny {
			return fmt.Errorf("histogram %q: column %d has %d cells for %d y bins", h.Name, ix, len(col), ny)
		}
	}
	return nil
}

// Opaque is any object the browser does not know how to draw.
type Opaque struct {
	Name  string
	Class string
}

func (o *Opaque) NodeName() string  { return o.Name }
func (o *Opaque) ClassName() string { return o.Class }
func (o *Opaque) Kind() Kind        { return KindOpaque }

// IsHistogram reports whether n is a 1D or 2D histogram.
func IsHistogram(n Node) bool {
	k := n.Kind()
	return k == KindHist1D || k == KindHist2D
}

// Is1DClass and Is2DClass test a class tag against the recognized prefixes.
func Is1DClass(class string) bool { return strings.HasPrefix(class, ClassPrefix1D) }
func Is2DClass(class string) bool { return strings.HasPrefix(class, ClassPrefix2D) }

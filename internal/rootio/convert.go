package rootio

import (
	"fmt"

	"histview/internal/hist"

	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

// toNode materializes obj as one of the hist.Node variants.
func toNode(name string, obj root.Object) (node hist.Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("convert %s %q: %v", obj.Class(), name, r)
		}
	}()

	var title string
	if named, ok := obj.(root.Named); ok {
		title = named.Title()
	}

	switch o := obj.(type) {
	case riofs.Directory:
		return &hist.Directory{Name: name, Class: obj.Class(), Keys: rawKeys(o)}, nil
	case rhist.H2:
		return fromH2D(name, obj.Class(), title, rootcnv.H2D(o)), nil
	case rhist.H1:
		return fromH1D(name, obj.Class(), title, rootcnv.H1D(o)), nil
	default:
		return &hist.Opaque{Name: name, Class: obj.Class()}, nil
	}
}

func fromH1D(name, class, title string, h *hbook.H1D) *hist.Hist1D {
	bins := h.Binning.Bins
	out := &hist.Hist1D{
		Name:   name,
		Title:  title,
		Class:  class,
		Edges:  make([]float64, 0, len(bins)+1),
		Counts: make([]float64, 0, len(bins)),
	}
	for i, b := range bins {
		if i == 0 {
			out.Edges = append(out.Edges, b.Range.Min)
		}
		out.Edges = append(out.Edges, b.Range.Max)
		out.Counts = append(out.Counts, b.SumW())
	}
	return out
}

func fromH2D(name, class, title string, h *hbook.H2D) *hist.Hist2D {
	nx, ny := h.Binning.Nx, h.Binning.Ny
	bins := h.Binning.Bins

	out := &hist.Hist2D{
		Name:   name,
		Title:  title,
		Class:  class,
		XEdges: make([]float64, 0, nx+1),
		YEdges: make([]float64, 0, ny+1),
		Values: make([][]float64, nx),
	}
	// Bins are stored row by row: index = iy*nx + ix.
	for ix := 0; ix < nx; ix++ {
		b := bins[ix]
		if ix == 0 {
			out.XEdges = append(out.XEdges, b.XRange.Min)
		}
		out.XEdges = append(out.XEdges, b.XRange.Max)
	}
	for iy := 0; iy < ny; iy++ {
		b := bins[iy*nx]
		if iy == 0 {
			out.YEdges = append(out.YEdges, b.YRange.Min)
		}
		out.YEdges = append(out.YEdges, b.YRange.Max)
	}
	for ix := 0; ix < nx; ix++ {
		col := make([]float64, ny)
		for iy := 0; iy < ny; iy++ {
			col[iy] = bins[iy*nx+ix].SumW()
		}
		out.Values[ix] = col
	}
	return out
}

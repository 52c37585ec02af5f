// Package fit fits model curves to 1D histograms.
package fit

import (
	"errors"
	"fmt"
	"math"

	hepfit "go-hep.org/x/hep/fit"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	"histview/internal/hist"
)

// MinBins is the smallest number of non-empty bins Gaussian accepts.
const MinBins = 3

var ErrTooFewBins = errors.New("not enough non-empty bins to fit")

// Gauss is A·exp(-(x-Mean)²/2·Sigma²).
type Gauss struct {
	Amplitude float64
	Mean      float64
	Sigma     float64
}

func (g Gauss) Eval(x float64) float64 {
	return gaussian(x, []float64{g.Amplitude, g.Mean, g.Sigma})
}

// Curve samples g at n evenly spaced points across xr.
func (g Gauss) Curve(xr hist.Range, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := xr.Span() / float64(n-1)
	for i := range xs {
		xs[i] = xr.Min + float64(i)*step
		ys[i] = g.Eval(xs[i])
	}
	return xs, ys
}

func (g Gauss) String() string {
	return fmt.Sprintf("A=%.4g μ=%.4g σ=%.4g", g.Amplitude, g.Mean, g.Sigma)
}

func gaussian(x float64, ps []float64) float64 {
	d := (x - ps[1]) / ps[2]
	return ps[0] * math.Exp(-0.5*d*d)
}

// Gaussian fits a Gaussian to the bins of h whose centers lie in xr.
func Gaussian(h *hist.Hist1D, xr hist.Range) (Gauss, error) {
	if err := h.Validate(); err != nil {
		return Gauss{}, fmt.Errorf("fit %q: %w", h.Name, err)
	}

	first, last := -1, -1
	for i, c := range h.Centers() {
		if xr.Contains(c) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return Gauss{}, fmt.Errorf("fit %q: %w", h.Name, ErrTooFewBins)
	}

	edges := h.Edges[first : last+2]
	counts := h.Counts[first : last+1]
	centers := make([]float64, len(counts))
	weights := make([]float64, len(counts))
	nonEmpty := 0
	peak := 0.0
	for i, c := range counts {
		centers[i] = 0.5 * (edges[i] + edges[i+1])
		if c != 0 && !math.IsNaN(c) {
			nonEmpty++
		}
		if c > 0 {
			weights[i] = c
		}
		peak = math.Max(peak, c)
	}
	if nonEmpty < MinBins || peak <= 0 {
		return Gauss{}, fmt.Errorf("fit %q: %w", h.Name, ErrTooFewBins)
	}

	mean := stat.Mean(centers, weights)
	sigma := stat.StdDev(centers, weights)
	if !(sigma > 0) {
		sigma = edges[len(edges)-1] - edges[0]
	}

	var xs, ys, errs []float64
	for i, c := range counts {
		if c == 0 || math.IsNaN(c) {
			continue
		}
		xs = append(xs, centers[i])
		ys = append(ys, c)
		errs = append(errs, math.Max(math.Sqrt(math.Abs(c)), 1))
	}

	res, err := hepfit.Curve1D(hepfit.Func1D{
		F:   gaussian,
		X:   xs,
		Y:   ys,
		Err: errs,
		Ps:  []float64{peak, mean, sigma},
	}, nil, &optimize.NelderMead{})
	if err != nil {
		return Gauss{}, fmt.Errorf("fit %q: %w", h.Name, err)
	}

	g := Gauss{Amplitude: res.X[0], Mean: res.X[1], Sigma: math.Abs(res.X[2])}
	if math.IsNaN(g.Mean) || math.IsNaN(g.Sigma) || g.Sigma == 0 {
		return Gauss{}, fmt.Errorf("fit %q: did not converge", h.Name)
	}
	return g, nil
}

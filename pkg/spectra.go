package spectra

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/hbook"
)

// Spectrum dimensions, in storage order.
const (
	EnergyDim = iota
	RadiusDim
	TimeDim
	NDims
)

var DimensionNames = [NDims]string{"energy", "radius", "time"}

// Axis describes the uniform binning of one spectrum dimension.
type Axis struct {
	Bins int
	Low  float64
	High float64
}

func (a Axis) Width() float64 {
	return (a.High - a.Low) / float64(a.Bins)
}

// BinIndex returns the bin containing v, or -1 if v falls outside the
// axis range. The upper edge is exclusive.
func (a Axis) BinIndex(v float64) int {
	if v < a.Low || v >= a.High {
		return -1
	}
	idx := int((v - a.Low) / a.Width())
	if idx >= a.Bins {
		idx = a.Bins - 1
	}
	return idx
}

func (a Axis) BinCenter(i int) float64 {
	return a.Low + (float64(i)+0.5)*a.Width()
}

// Edges returns the Bins+1 bin edges.
func (a Axis) Edges() []float64 {
	edges := make([]float64, a.Bins+1)
	for i := range edges {
		edges[i] = a.Low + float64(i)*a.Width()
	}
	return edges
}

// Spectrum is a weighted 3-D histogram over energy, radius and time for
// one isotope source. The half-life is carried as metadata for event-rate
// normalization downstream.
type Spectrum struct {
	Name      string
	HalfLife  float64
	NumDecays float64
	Axes      [NDims]Axis

	counts  []float64
	entries int
}

func NewSpectrum(name string, halfLife float64, axes [NDims]Axis) *Spectrum {
	size := 1
	for _, axis := range axes {
		size *= axis.Bins
	}
	return &Spectrum{
		Name:     name,
		HalfLife: halfLife,
		Axes:     axes,
		counts:   make([]float64, size),
	}
}

func (s *Spectrum) index(iE, iR, iT int) int {
	return (iE*s.Axes[RadiusDim].Bins+iR)*s.Axes[TimeDim].Bins + iT
}

// Fill adds weight to the bin containing (energy, radius, time).
// Events outside any axis range are dropped and Fill reports false.
func (s *Spectrum) Fill(energy, radius, time, weight float64) bool {
	iE := s.Axes[EnergyDim].BinIndex(energy)
	iR := s.Axes[RadiusDim].BinIndex(radius)
	iT := s.Axes[TimeDim].BinIndex(time)
	if iE < 0 || iR < 0 || iT < 0 {
		return false
	}
	s.counts[s.index(iE, iR, iT)] += weight
	s.entries++
	return true
}

// Entries returns the number of accepted fills.
func (s *Spectrum) Entries() int {
	return s.entries
}

// Sum returns the total weight held in the spectrum.
func (s *Spectrum) Sum() float64 {
	sum := 0.0
	for _, w := range s.counts {
		sum += w
	}
	return sum
}

// Counts returns the flat bin contents in (energy, radius, time) order.
func (s *Spectrum) Counts() []float64 {
	return s.counts
}

// Scale rescales the bin contents so the spectrum integral equals
// numDecays expected decays.
func (s *Spectrum) Scale(numDecays float64) error {
	sum := s.Sum()
	if sum == 0 {
		return fmt.Errorf("cannot scale empty spectrum %q", s.Name)
	}
	factor := numDecays / sum
	for i := range s.counts {
		s.counts[i] *= factor
	}
	s.NumDecays = numDecays
	return nil
}

// Project collapses the spectrum onto one dimension, summing over the
// other two.
func (s *Spectrum) Project(dim int) (*hbook.H1D, error) {
	if dim < 0 || dim >= NDims {
		return nil, fmt.Errorf("invalid spectrum dimension %d", dim)
	}
	axis := s.Axes[dim]
	hist := hbook.NewH1D(axis.Bins, axis.Low, axis.High)
	for iE := 0; iE < s.Axes[EnergyDim].Bins; iE++ {
		for iR := 0; iR < s.Axes[RadiusDim].Bins; iR++ {
			for iT := 0; iT < s.Axes[TimeDim].Bins; iT++ {
				w := s.counts[s.index(iE, iR, iT)]
				if w == 0 {
					continue
				}
				var idx int
				switch dim {
				case EnergyDim:
					idx = iE
				case RadiusDim:
					idx = iR
				case TimeDim:
					idx = iT
				}
				hist.Fill(axis.BinCenter(idx), w)
			}
		}
	}
	return hist, nil
}

// Radius converts a cartesian event position to its radial coordinate.
func Radius(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

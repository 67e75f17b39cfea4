package spectra

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlotProjection(t *testing.T) {
	spec := NewSpectrum("Te130_mc", 2.7e21, testAxes())
	spec.Fill(2.5, 3500, 1.2, 1)
	spec.Fill(3.5, 1500, 0.2, 2)

	dir := t.TempDir()
	for dim := 0; dim < NDims; dim++ {
		if err := PlotProjection(spec, dim, dir); err != nil {
			t.Fatalf("PlotProjection(%d): %v", dim, err)
		}
		out := filepath.Join(dir, "Te130_mc_"+DimensionNames[dim]+".png")
		if _, err := os.Stat(out); err != nil {
			t.Errorf("plot %s not written: %v", out, err)
		}
	}
}

func TestPlotProjectionBadDimension(t *testing.T) {
	spec := NewSpectrum("bad", 100, testAxes())
	if err := PlotProjection(spec, NDims, t.TempDir()); err == nil {
		t.Error("invalid dimension did not fail")
	}
}

func TestPreciseTicks(t *testing.T) {
	ticks := PreciseTicks{NSuggestedTicks: 5}.Ticks(0, 10)
	if len(ticks) == 0 {
		t.Fatal("no ticks produced")
	}
	labelled := 0
	for _, tick := range ticks {
		if tick.Value < 0 || tick.Value > 10 {
			t.Errorf("tick %v outside range", tick.Value)
		}
		if tick.Label != "" {
			labelled++
		}
	}
	if labelled < 2 {
		t.Errorf("got %d labelled ticks, want at least 2", labelled)
	}
}

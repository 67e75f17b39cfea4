package spectra

import (
	"fmt"
	"image/color"
	"path/filepath"

	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/vg"
)

var axisLabels = [NDims]string{"Energy [MeV]", "Radius [mm]", "Time [yr]"}

// PlotProjection renders the projection of the spectrum onto one
// dimension and saves it as <savePath>/<name>_<dimension>.png.
func PlotProjection(spec *Spectrum, dim int, savePath string) error {
	proj, err := spec.Project(dim)
	if err != nil {
		return err
	}

	p := hplot.New()
	p.Title.Text = spec.Name
	p.X.Label.Text = axisLabels[dim]
	p.Y.Label.Text = "Events"
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}

	hist := hplot.NewH1D(proj)
	hist.LineStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(hist)

	out := filepath.Join(savePath, fmt.Sprintf("%s_%s.png", spec.Name, DimensionNames[dim]))
	width := vg.Length(configuration.PlotWidth) * vg.Inch
	height := vg.Length(configuration.PlotHeight) * vg.Inch
	if err := p.Save(width, height, out); err != nil {
		return fmt.Errorf("error saving plot %q: %w", out, err)
	}
	if configuration.Verbosity > 1 {
		logger.Info(fmt.Sprintf("Saved plot %s", out), "plot")
	}
	return nil
}

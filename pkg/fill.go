package spectra

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

const secondsPerYear = 365.25 * 24 * 3600

// mcEvent holds the generated-truth branches of one ntuple entry.
type mcEvent struct {
	Energy float64
	X      float64
	Y      float64
	Z      float64
	Days   int32
	Secs   int32
	NSecs  int32
}

// recoEvent holds the reconstructed branches of one ntuple entry.
type recoEvent struct {
	Energy   float64
	X        float64
	Y        float64
	Z        float64
	FitValid bool
	Days     int32
	Secs     int32
	NSecs    int32
}

func eventSeconds(days, secs, nsecs int32) float64 {
	return float64(days)*86400 + float64(secs) + float64(nsecs)*1e-9
}

// FillMCSpectrum builds a spectrum from the simulated-truth quantities of
// every event in the ROOT file. Event times are measured in years from
// the first event.
func FillMCSpectrum(fname string, halfLife float64, name string) (*Spectrum, error) {
	spec := NewSpectrum(name, halfLife, configuration.Axes())

	var ev mcEvent
	rvars := []rtree.ReadVar{
		{Name: "mcEdepQuenched", Value: &ev.Energy},
		{Name: "mcPosx", Value: &ev.X},
		{Name: "mcPosy", Value: &ev.Y},
		{Name: "mcPosz", Value: &ev.Z},
		{Name: "uTDays", Value: &ev.Days},
		{Name: "uTSecs", Value: &ev.Secs},
		{Name: "uTNSecs", Value: &ev.NSecs},
	}

	nRead := 0
	t0 := 0.0
	fill := func(rctx rtree.RCtx) error {
		seconds := eventSeconds(ev.Days, ev.Secs, ev.NSecs)
		if rctx.Entry == 0 {
			t0 = seconds
		}
		years := (seconds - t0) / secondsPerYear
		spec.Fill(ev.Energy, Radius(ev.X, ev.Y, ev.Z), years, 1)
		nRead++
		return nil
	}

	if err := readTree(fname, rvars, fill); err != nil {
		return nil, err
	}
	logFillSummary(spec, nRead)
	return spec, nil
}

// FillRecoSpectrum builds a spectrum from the reconstructed quantities of
// every event with a valid fit.
func FillRecoSpectrum(fname string, halfLife float64, name string) (*Spectrum, error) {
	spec := NewSpectrum(name, halfLife, configuration.Axes())

	var ev recoEvent
	rvars := []rtree.ReadVar{
		{Name: "energy", Value: &ev.Energy},
		{Name: "posx", Value: &ev.X},
		{Name: "posy", Value: &ev.Y},
		{Name: "posz", Value: &ev.Z},
		{Name: "fitValid", Value: &ev.FitValid},
		{Name: "uTDays", Value: &ev.Days},
		{Name: "uTSecs", Value: &ev.Secs},
		{Name: "uTNSecs", Value: &ev.NSecs},
	}

	nRead := 0
	t0 := 0.0
	fill := func(rctx rtree.RCtx) error {
		seconds := eventSeconds(ev.Days, ev.Secs, ev.NSecs)
		if rctx.Entry == 0 {
			t0 = seconds
		}
		nRead++
		if !ev.FitValid {
			return nil
		}
		years := (seconds - t0) / secondsPerYear
		spec.Fill(ev.Energy, Radius(ev.X, ev.Y, ev.Z), years, 1)
		return nil
	}

	if err := readTree(fname, rvars, fill); err != nil {
		return nil, err
	}
	logFillSummary(spec, nRead)
	return spec, nil
}

func readTree(fname string, rvars []rtree.ReadVar, fill func(rtree.RCtx) error) error {
	file, err := groot.Open(fname)
	if err != nil {
		return &ErrOpenFile{Filename: fname, Err: err}
	}
	defer file.Close()

	obj, err := file.Get(configuration.TreeName)
	if err != nil {
		return &ErrTreeNotFound{TreeName: configuration.TreeName, Filename: fname}
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		return &ErrTreeNotFound{TreeName: configuration.TreeName, Filename: fname}
	}

	reader, err := rtree.NewReader(tree, rvars)
	if err != nil {
		return fmt.Errorf("error creating tree reader for %q: %w", fname, err)
	}
	defer reader.Close()

	if err := reader.Read(fill); err != nil {
		return fmt.Errorf("error reading events from %q: %w", fname, err)
	}
	return nil
}

func logFillSummary(spec *Spectrum, nRead int) {
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Filled %s: %d entries from %d events", spec.Name, spec.Entries(), nRead)
		logger.Info(message, "fill")
	}
}

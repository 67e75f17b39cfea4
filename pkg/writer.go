package spectra

import (
	"errors"
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Writer serializes one Spectrum into an HDF5 container. The layout is a
// "spectrum" group with the name and metadata tables plus the 3-D bin
// contents, and a "bins" group with the per-axis bin edges.
type Writer struct {
	File          *hdf5.File
	Filename      string
	SpectrumGroup *hdf5.Group
	BinsGroup     *hdf5.Group
	NameTable     *hdf5.Dataset
	MetadataTable *hdf5.Dataset
	Counts        *hdf5.Dataset
	Edges         [NDims]*hdf5.Dataset
}

// NewWriter creates the output file, truncating any existing file at
// that path. The datasets sized from the spectrum axes are created on
// first write.
func NewWriter(filename string) *Writer {
	hdf5.SetStringLength(STRLEN)

	writer := &Writer{}
	writer.File = openFile(filename)
	writer.Filename = filename
	writer.SpectrumGroup = createGroup(writer.File, "spectrum")
	writer.BinsGroup = createGroup(writer.File, "bins")
	writer.NameTable = createTable(writer.SpectrumGroup, "name", SpectrumNameHDF5{})
	writer.MetadataTable = createTable(writer.SpectrumGroup, "metadata", SpectrumParamHDF5{})
	return writer
}

// WriteSpectrum writes the spectrum name, metadata, bin contents and bin
// edges. A Writer holds a single spectrum per file.
func (w *Writer) WriteSpectrum(spec *Spectrum) error {
	writeEntryToTable(w.NameTable, SpectrumNameHDF5{name: convertToHdf5String(spec.Name)}, 0)

	params := map[string]float64{
		"half_life":  spec.HalfLife,
		"num_decays": spec.NumDecays,
		"entries":    float64(spec.Entries()),
	}
	for dim, axis := range spec.Axes {
		prefix := DimensionNames[dim]
		params[prefix+"_bins"] = float64(axis.Bins)
		params[prefix+"_low"] = axis.Low
		params[prefix+"_high"] = axis.High
	}
	keys := maps.Keys(params)
	slices.Sort(keys)
	entries := make([]SpectrumParamHDF5, len(keys))
	for i, key := range keys {
		entries[i] = SpectrumParamHDF5{
			param: convertToHdf5String(key),
			value: params[key],
		}
	}
	writeArrayToTable(w.MetadataTable, &entries, 0)

	if w.Counts == nil {
		w.Counts = create3dArray(w.SpectrumGroup, "counts",
			spec.Axes[EnergyDim].Bins, spec.Axes[RadiusDim].Bins, spec.Axes[TimeDim].Bins)
		for dim := range w.Edges {
			w.Edges[dim] = create1dArray(w.BinsGroup, DimensionNames[dim], spec.Axes[dim].Bins+1)
		}
	}

	counts := spec.Counts()
	if err := w.Counts.Write(&counts); err != nil {
		return fmt.Errorf("error writing counts for %q: %w", spec.Name, err)
	}
	for dim := range w.Edges {
		edges := spec.Axes[dim].Edges()
		if err := w.Edges[dim].Write(&edges); err != nil {
			return fmt.Errorf("error writing %s bin edges for %q: %w", DimensionNames[dim], spec.Name, err)
		}
	}
	return nil
}

func (w *Writer) Close() error {
	var errs []error

	if err := w.NameTable.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing name table: %w", err))
	}
	if err := w.MetadataTable.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing metadata table: %w", err))
	}
	if w.Counts != nil {
		if err := w.Counts.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing counts: %w", err))
		}
	}
	for dim, edges := range w.Edges {
		if edges == nil {
			continue
		}
		if err := edges.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %s bin edges: %w", DimensionNames[dim], err))
		}
	}
	if err := w.SpectrumGroup.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing spectrum group: %w", err))
	}
	if err := w.BinsGroup.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing bins group: %w", err))
	}
	if err := w.File.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing file: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// DumpSpectrum writes the spectrum to an HDF5 file at path, overwriting
// any previous file. HDF5 panics raised by the low-level helpers are
// returned as errors.
func DumpSpectrum(path string, spec *Spectrum) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error writing %q: %v", path, r)
		}
	}()

	writer := NewWriter(path)
	if werr := writer.WriteSpectrum(spec); werr != nil {
		writer.Close()
		return werr
	}
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Dumped %s to %s", spec.Name, path), "store")
	}
	return writer.Close()
}

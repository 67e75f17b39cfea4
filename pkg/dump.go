package spectra

import (
	"path/filepath"
)

// ProcessFile converts one simulation file into its mc and reco spectra,
// plots the three projections of each, and dumps each spectrum to
// <savePath>/<name>_mc.hdf5 and <savePath>/<name>_reco.hdf5. The first
// error aborts the remaining steps.
func ProcessFile(fname string, halfLife float64, name string, savePath string) error {
	mcSpec, err := FillMCSpectrum(fname, halfLife, name+"_mc")
	if err != nil {
		return err
	}
	recoSpec, err := FillRecoSpectrum(fname, halfLife, name+"_reco")
	if err != nil {
		return err
	}

	for _, spec := range []*Spectrum{mcSpec, recoSpec} {
		for dim := 0; dim < NDims; dim++ {
			if err := PlotProjection(spec, dim, savePath); err != nil {
				return err
			}
		}
	}

	if err := DumpSpectrum(filepath.Join(savePath, mcSpec.Name+".hdf5"), mcSpec); err != nil {
		return err
	}
	return DumpSpectrum(filepath.Join(savePath, recoSpec.Name+".hdf5"), recoSpec)
}

// ProcessManifestEntries processes every manifest entry in file order,
// resolving each half-life column first. The first failure aborts the
// remaining entries.
func ProcessManifestEntries(filePaths, halfLives []string,
	resolve func(string) (float64, error),
	process func(fname string, halfLife float64, name string) error) error {
	for i, path := range filePaths {
		halfLife, err := resolve(halfLives[i])
		if err != nil {
			return err
		}
		if err := process(path, halfLife, SpectrumNameFromPath(path)); err != nil {
			return err
		}
	}
	return nil
}

package spectra

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFillSpectrumMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-file.root")

	_, err := FillMCSpectrum(missing, 100, "missing_mc")
	var openErr *ErrOpenFile
	if !errors.As(err, &openErr) {
		t.Fatalf("FillMCSpectrum: got %v, want ErrOpenFile", err)
	}

	_, err = FillRecoSpectrum(missing, 100, "missing_reco")
	if !errors.As(err, &openErr) {
		t.Fatalf("FillRecoSpectrum: got %v, want ErrOpenFile", err)
	}
}

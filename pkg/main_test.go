package spectra

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	SetConfiguration(DefaultConfiguration())
	os.Exit(m.Run())
}

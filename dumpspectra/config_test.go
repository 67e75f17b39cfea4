package main

import (
	"os"
	"path/filepath"
	"testing"

	spectra "github.com/echidna-exp/spectra_go/pkg"
)

func TestLoadConfigurationDefaults(t *testing.T) {
	config, err := LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	want := spectra.DefaultConfiguration()
	if config != want {
		t.Errorf("LoadConfiguration(\"\") = %+v, want defaults", config)
	}
}

func TestLoadConfigurationOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"tree_name": "T", "energy_bins": 100, "no_db": false, "verbosity": 2}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfiguration(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.TreeName != "T" {
		t.Errorf("TreeName = %q, want %q", config.TreeName, "T")
	}
	if config.EnergyBins != 100 {
		t.Errorf("EnergyBins = %d, want 100", config.EnergyBins)
	}
	if config.NoDB {
		t.Error("NoDB not overridden")
	}
	if config.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", config.Verbosity)
	}
	// untouched fields keep their defaults
	if config.RadiusBins != spectra.DefaultConfiguration().RadiusBins {
		t.Errorf("RadiusBins = %d, want default", config.RadiusBins)
	}
}

func TestLoadConfigurationBadFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing configuration file did not fail")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfiguration(path); err == nil {
		t.Error("malformed configuration file did not fail")
	}
}

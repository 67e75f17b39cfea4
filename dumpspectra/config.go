package main

import (
	"encoding/json"
	"fmt"
	"os"

	spectra "github.com/echidna-exp/spectra_go/pkg"
)

// LoadConfiguration returns the default settings overridden by the JSON
// configuration file, if one was given.
func LoadConfiguration(filename string) (spectra.Configuration, error) {
	config := spectra.DefaultConfiguration()
	if filename == "" {
		return config, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config spectra.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("Tree name: %s", config.TreeName), "config")
	logger.Info(fmt.Sprintf("Energy axis: %d bins in [%g, %g] MeV", config.EnergyBins, config.EnergyLow, config.EnergyHigh), "config")
	logger.Info(fmt.Sprintf("Radius axis: %d bins in [%g, %g] mm", config.RadiusBins, config.RadiusLow, config.RadiusHigh), "config")
	logger.Info(fmt.Sprintf("Time axis: %d bins in [%g, %g] yr", config.TimeBins, config.TimeLow, config.TimeHigh), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
}

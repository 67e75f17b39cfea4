package spectra

type Configuration struct {
	Verbosity        int     `json:"verbosity"`
	TreeName         string  `json:"tree_name"`
	EnergyBins       int     `json:"energy_bins"`
	EnergyLow        float64 `json:"energy_low"`
	EnergyHigh       float64 `json:"energy_high"`
	RadiusBins       int     `json:"radius_bins"`
	RadiusLow        float64 `json:"radius_low"`
	RadiusHigh       float64 `json:"radius_high"`
	TimeBins         int     `json:"time_bins"`
	TimeLow          float64 `json:"time_low"`
	TimeHigh         float64 `json:"time_high"`
	PlotWidth        float64 `json:"plot_width"`
	PlotHeight       float64 `json:"plot_height"`
	CompressionLevel int     `json:"compression_level"`
	NoDB             bool    `json:"no_db"`
	Host             string  `json:"host"`
	User             string  `json:"user"`
	Passwd           string  `json:"pass"`
	DBName           string  `json:"dbname"`
}

var configuration Configuration

// DefaultConfiguration returns the binning and I/O settings used when no
// configuration file is given. The axis ranges match the standard
// energy/radius/time analysis windows.
func DefaultConfiguration() Configuration {
	var config Configuration
	config.Verbosity = 0
	config.TreeName = "output"
	config.EnergyBins = 1000
	config.EnergyLow = 0.0
	config.EnergyHigh = 10.0
	config.RadiusBins = 600
	config.RadiusLow = 0.0
	config.RadiusHigh = 6000.0
	config.TimeBins = 10
	config.TimeLow = 0.0
	config.TimeHigh = 10.0
	config.PlotWidth = 6.0
	config.PlotHeight = 4.0
	config.CompressionLevel = 4
	config.NoDB = true
	config.Host = "localhost"
	config.User = "echidna"
	config.Passwd = "readonly"
	config.DBName = "isotopes"
	return config
}

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}

// Axes builds the three spectrum axes from the configured binning,
// ordered energy, radius, time.
func (c Configuration) Axes() [NDims]Axis {
	return [NDims]Axis{
		{Bins: c.EnergyBins, Low: c.EnergyLow, High: c.EnergyHigh},
		{Bins: c.RadiusBins, Low: c.RadiusLow, High: c.RadiusHigh},
		{Bins: c.TimeBins, Low: c.TimeLow, High: c.TimeHigh},
	}
}

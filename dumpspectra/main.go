package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	sqlx "github.com/jmoiron/sqlx"

	spectra "github.com/echidna-exp/spectra_go/pkg"
)

var dbConn *sqlx.DB
var configuration spectra.Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] <root-input-file> <half-life>

Creates mc and reco spectra from a simulation ROOT file, plots the
energy, radius and time projections, and dumps each spectrum to
<save_path>/<name>_mc.hdf5 and <save_path>/<name>_reco.hdf5.

options:
`,
	)
	flag.PrintDefaults()
}

func fatal(err error) {
	logger.Error(err.Error())
	os.Exit(1)
}

func main() {
	var manifestPath, savePath string
	configFilename := flag.String("config", "", "Configuration file path")
	flag.StringVar(&manifestPath, "r", "", "Path to a .txt list of tab-separated file paths and half-lives")
	flag.StringVar(&manifestPath, "read_text_file", "", "Path to a .txt list of tab-separated file paths and half-lives")
	flag.StringVar(&savePath, "s", "./", "Destination path for the .hdf5 spectra files")
	flag.StringVar(&savePath, "save_path", "./", "Destination path for the .hdf5 spectra files")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 2 {
		printUsage()
		os.Exit(1)
	}
	fname := flag.Arg(0)
	halfLife, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		fatal(fmt.Errorf("invalid half-life %q: %w", flag.Arg(1), err))
	}

	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		fatal(fmt.Errorf("error reading configuration file: %w", err))
	}
	spectra.SetConfiguration(configuration)
	spectra.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 && *configFilename != "" {
		logger.Info(fmt.Sprintf("Reading configuration file: %s", *configFilename), "main")
	}
	if VerbosityLevel > 0 {
		printConfiguration(configuration, logger)
	}

	if !configuration.NoDB {
		dbConn, err = spectra.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			fatal(fmt.Errorf("error connecting to database: %w", err))
		}
		defer dbConn.Close()
	}

	name := spectra.SpectrumNameFromPath(fname)
	if err := spectra.ProcessFile(fname, halfLife, name, savePath); err != nil {
		fatal(err)
	}

	if manifestPath != "" {
		filePaths, halfLives, err := spectra.ReadTabDelimFile(manifestPath)
		if err != nil {
			fatal(err)
		}
		resolve := func(value string) (float64, error) {
			return spectra.ResolveHalfLife(dbConn, value)
		}
		process := func(path string, halfLife float64, name string) error {
			if VerbosityLevel > 0 {
				logger.Info(fmt.Sprintf("Processing %s (half-life %g)", path, halfLife), "main")
			}
			return spectra.ProcessFile(path, halfLife, name, savePath)
		}
		if err := spectra.ProcessManifestEntries(filePaths, halfLives, resolve, process); err != nil {
			fatal(err)
		}
	}
}

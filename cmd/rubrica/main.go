// Command rubrica extracts document outlines from PDF files and writes
// one JSON result per input.
//
// Usage:
//
//	rubrica -in docs/ -out results/ [-workers 4] [-config weights.yaml]
//	        [-timeout 30s] [-compact] [-v]
//
// -in names a PDF file or a directory of PDFs. Every input produces an
// output, corrupt documents included; those get the empty result. The
// exit code is 0 when the batch ran, 1 on setup errors.
package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tsawler/rubrica/outline"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inPath     string
		outDir     string
		workers    int
		configPath string
		timeout    time.Duration
		compact    bool
		verbose    bool
	)

	flag.StringVar(&inPath, "in", ".", "Input PDF file or directory of PDFs")
	flag.StringVar(&outDir, "out", ".", "Directory for the per-document JSON results")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "Number of documents processed in parallel")
	flag.StringVar(&configPath, "config", "", "Optional YAML file overriding detector weights")
	flag.DurationVar(&timeout, "timeout", 0, "Per-document wall-clock budget (e.g. 30s); 0 disables")
	flag.BoolVar(&compact, "compact", false, "Write single-line JSON instead of indented")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := outline.DefaultConfig()
	if configPath != "" {
		c, err := outline.LoadConfig(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config")
			os.Exit(1)
		}
		cfg = c
	}

	b := &batch{
		config:  cfg,
		workers: workers,
		timeout: timeout,
		compact: compact,
	}
	if err := b.run(inPath, outDir); err != nil {
		log.Error().Err(err).Msg("batch failed")
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tsawler/rubrica"
	"github.com/tsawler/rubrica/export"
	"github.com/tsawler/rubrica/model"
	"github.com/tsawler/rubrica/outline"
)

// batch drives outline extraction for a set of PDF files.
type batch struct {
	config  outline.Config
	workers int
	timeout time.Duration
	compact bool
}

// run processes every PDF under in and writes one JSON file per input
// into outDir. Per-document failures are logged and still produce the
// empty result; only setup problems return an error.
func (b *batch) run(in, outDir string) error {
	files, err := collectInputs(in)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no pdf files under %s", in)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	workers := b.workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	var (
		wg     sync.WaitGroup
		sem    = make(chan struct{}, workers)
		mu     sync.Mutex
		failed int
	)

	for _, file := range files {
		wg.Add(1)
		sem <- struct{}{}

		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			if !b.processFile(path, outDir) {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}(file)
	}
	wg.Wait()

	log.Info().
		Int("processed", len(files)).
		Int("failed", failed).
		Dur("elapsed", time.Since(start)).
		Msg("batch done")
	return nil
}

// processFile extracts one document and writes its JSON result,
// reporting success. A document that cannot be extracted still gets an
// output file holding the empty result, so one output exists per input.
func (b *batch) processFile(path, outDir string) bool {
	start := time.Now()

	res, err := b.extract(path)
	ok := err == nil
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("extraction failed")
		res = model.EmptyResult()
	}

	if verr := export.Validate(res); verr != nil {
		// A contract violation is a bug, not a reason to drop output.
		log.Error().Err(verr).Str("file", path).Msg("result violates output contract")
	}

	outPath := filepath.Join(outDir, outputName(path))
	if werr := export.WriteFile(outPath, res, export.Options{Compact: b.compact}); werr != nil {
		log.Error().Err(werr).Str("file", outPath).Msg("write failed")
		return false
	}

	if ok {
		log.Info().
			Str("file", path).
			Str("title", res.Title).
			Int("headings", len(res.Outline)).
			Dur("elapsed", time.Since(start)).
			Msg("extracted")
	}
	return ok
}

// extract runs one extraction, under the wall-clock budget when one is
// set. On timeout the in-flight extraction is abandoned; its goroutine
// finishes in the background and its result is discarded.
func (b *batch) extract(path string) (model.Result, error) {
	if b.timeout <= 0 {
		return rubrica.Open(path).WithConfig(b.config).Result()
	}

	type outcome struct {
		res model.Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := rubrica.Open(path).WithConfig(b.config).Result()
		done <- outcome{res: res, err: err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-time.After(b.timeout):
		return model.EmptyResult(), fmt.Errorf("extraction exceeded %s", b.timeout)
	}
}

// collectInputs returns the PDF files named by in: the file itself, or
// every *.pdf (case-insensitive) directly inside the directory, in name
// order.
func collectInputs(in string) ([]string, error) {
	info, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	if !info.IsDir() {
		return []string{in}, nil
	}

	entries, err := os.ReadDir(in)
	if err != nil {
		return nil, fmt.Errorf("input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(in, entry.Name()))
		}
	}
	return files, nil
}

// outputName maps input.pdf to input.json.
func outputName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}

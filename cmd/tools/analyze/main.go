package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/indicata/indicata/internal/analysis"
	"github.com/indicata/indicata/internal/config"
	"github.com/indicata/indicata/internal/logging"
	"github.com/indicata/indicata/internal/models"
	"github.com/rs/zerolog"
)

// batchOutput is the file format written by the tool: the analyzed
// results in input order plus the indicators that failed validation.
type batchOutput struct {
	Analyzed int                      `json:"analyzed"`
	Failed   int                      `json:"failed"`
	Results  []*models.AnalysisResult `json:"results"`
	Failures []models.BatchFailure    `json:"failures,omitempty"`
}

func main() {
	input := flag.String("input", "-", "Input JSON file with an array of indicator series ('-' for stdin)")
	output := flag.String("output", "-", "Output JSON file ('-' for stdout)")
	configPath := flag.String("config", "", "Path to configuration file")
	workers := flag.Int("workers", 0, "Batch parallelism override (0 keeps the configured value)")

	flag.Parse()

	cfg := config.LoadOrDefault(*configPath)

	// Tool output goes to stdout; keep log noise on stderr
	logger := logging.NewWithWriter(os.Stderr, zerolog.WarnLevel)

	series, err := readSeries(*input)
	if err != nil {
		log.Fatalf("Error reading input: %v\n", err)
	}

	if len(series) == 0 {
		log.Fatal("Error: input contains no indicator series")
	}

	engineCfg := analysis.Config{
		ZScoreThreshold:   cfg.Analysis.ZScoreThreshold,
		SlopeThreshold:    cfg.Analysis.SlopeThreshold,
		VolatilityCVLimit: cfg.Analysis.VolatilityCVLimit,
		Workers:           cfg.Analysis.Workers,
	}
	if *workers > 0 {
		engineCfg.Workers = *workers
	}

	analyzer := analysis.New(engineCfg, logger)
	items := analyzer.AnalyzeBatch(series)

	out := batchOutput{
		Results: make([]*models.AnalysisResult, 0, len(items)),
	}
	for i, item := range items {
		if item.Err != nil {
			out.Failures = append(out.Failures, models.BatchFailure{
				IndicatorID: series[i].ID,
				Reason:      item.Err.Error(),
			})
			fmt.Fprintf(os.Stderr, "indicator %d rejected: %v\n", series[i].ID, item.Err)
			continue
		}
		out.Results = append(out.Results, item.Result)
	}
	out.Analyzed = len(out.Results)
	out.Failed = len(out.Failures)

	if err := writeOutput(*output, &out); err != nil {
		log.Fatalf("Error writing output: %v\n", err)
	}

	fmt.Fprintf(os.Stderr, "Analyzed %d indicators (%d rejected)\n", out.Analyzed, out.Failed)

	if out.Failed > 0 {
		os.Exit(1)
	}
}

func readSeries(path string) ([]models.IndicatorSeries, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var series []models.IndicatorSeries
	dec := json.NewDecoder(r)
	if err := dec.Decode(&series); err != nil {
		return nil, fmt.Errorf("invalid series JSON: %w", err)
	}
	return series, nil
}

func writeOutput(path string, out *batchOutput) error {
	var w io.Writer
	if path == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

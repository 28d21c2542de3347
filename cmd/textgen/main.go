// SPDX-License-Identifier: MIT

// Command textgen fits text models to a corpus and writes generated text.
//
// Settings come from the environment (see internal/config); flags override:
//
//	textgen -model 3 -n 200 -seed 42
//
// Each model's text is written to "<dir>/<name>(model<N>).txt". With
// TEXTGEN_REPORT_FORMAT set, the model tables are written next to it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvtext/generator"
	"github.com/katalvlaran/lvtext/internal/config"
	"github.com/katalvlaran/lvtext/internal/logger"
	"github.com/katalvlaran/lvtext/internal/runner"
	"github.com/katalvlaran/lvtext/sink"
	"github.com/katalvlaran/lvtext/textgen"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.NewLogger("error")
		log.Fatal("Failed to load configuration:", err)
	}

	model := flag.Int("model", cfg.Model.Model, "model 1, 2, 3 or 0 for all")
	n := flag.Int("n", cfg.Model.Length, "units to generate")
	seed := flag.Int64("seed", cfg.Model.Seed, "random seed, 0 seeds from the clock")
	input := flag.String("input", cfg.Model.InputFile, "text file to learn from")
	flag.Parse()
	cfg.Model.Model, cfg.Model.Length, cfg.Model.Seed, cfg.Model.InputFile = *model, *n, *seed, *input

	if err := cfg.Validate(); err != nil {
		log := logger.NewLogger("error")
		log.Fatal("Invalid configuration:", err)
	}

	log := logger.NewLogger(cfg.App.LogLevel)
	runID := uuid.New()
	log.Info("Run %s: model=%d n=%d", runID, cfg.Model.Model, cfg.Model.Length)

	if err := run(cfg, log); err != nil {
		log.Error("Run %s failed: %v", runID, err)
		os.Exit(1)
	}
	log.Info("Run %s done", runID)
}

func run(cfg *config.Config, log *logger.Logger) error {
	kinds, err := runner.Kinds(cfg.Model)
	if err != nil {
		return err
	}
	e, err := runner.NewEngine(cfg.Model, kinds, log)
	if err != nil {
		return err
	}

	out := sink.FileTextSink{Dir: cfg.Model.OutputDir, Name: cfg.Model.OutputName}
	for _, k := range kinds {
		if err = e.ChangeModel(k); err != nil {
			return err
		}
		seq, err := e.Generate(cfg.Model.Length)
		if err != nil {
			return err
		}
		if err = e.Save(out); err != nil {
			return err
		}
		log.Info("Model %d (%s): %d units, %d restarts -> %s", int(k), k, len(seq.Units), seq.Restarts, out.Path(k))
		log.Debug("%s", seq.Text)

		if err = writeReport(e, k, cfg.Model); err != nil {
			return err
		}
	}

	return nil
}

func writeReport(e *textgen.Engine, k generator.Kind, cfg config.ModelConfig) error {
	if cfg.ReportFormat == config.ReportNone {
		return nil
	}
	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s(model%d).%s", cfg.OutputName, int(k), cfg.ReportFormat))
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	return reportTo(f, e, k, cfg.ReportFormat)
}

// reportTo writes the report of k to w and closes w. A failed close is
// returned when the report itself succeeded.
func reportTo(w io.WriteCloser, e *textgen.Engine, k generator.Kind, format string) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	var s sink.TableSink = sink.YAMLSink{W: w}
	if format == config.ReportCSV {
		s = sink.CSVSink{W: w}
	}

	return e.Report(k, s)
}

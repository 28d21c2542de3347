// SPDX-License-Identifier: MIT

// Package runner prepares a fitted textgen.Engine from executable settings.
package runner

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtext/alphabet"
	"github.com/katalvlaran/lvtext/generator"
	"github.com/katalvlaran/lvtext/internal/config"
	"github.com/katalvlaran/lvtext/internal/logger"
	"github.com/katalvlaran/lvtext/textgen"
)

// Kinds returns the models a run covers: the configured one, or all three
// when cfg.Model is 0.
func Kinds(cfg config.ModelConfig) ([]generator.Kind, error) {
	if cfg.Model == 0 {
		return generator.Kinds, nil
	}
	k, err := generator.ParseKind(cfg.Model)
	if err != nil {
		return nil, err
	}
	return []generator.Kind{k}, nil
}

// NewEngine defines the alphabet, feeds the input and fits every model in
// kinds. The engine is left on kinds[0].
func NewEngine(cfg config.ModelConfig, kinds []generator.Kind, log *logger.Logger) (*textgen.Engine, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("runner: no models selected")
	}
	var opts []textgen.Option
	if cfg.Seed != 0 {
		opts = append(opts, textgen.WithSeed(cfg.Seed))
	}
	e, err := textgen.New(kinds[0], opts...)
	if err != nil {
		return nil, err
	}

	lang, err := alphabet.ParseLanguageName(cfg.Language)
	if err != nil {
		return nil, err
	}
	af, err := os.Open(cfg.AlphabetFile)
	if err != nil {
		return nil, fmt.Errorf("runner: open alphabet: %w", err)
	}
	defer af.Close()
	if err = e.DefineFrom(af, lang); err != nil {
		return nil, err
	}
	log.Debug("alphabet %s: %d symbols, %d letters", cfg.AlphabetFile, e.Alphabet().Len(), e.Alphabet().Letters())

	in, err := os.Open(cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("runner: open input: %w", err)
	}
	defer in.Close()
	if err = e.Feed(in); err != nil {
		return nil, err
	}
	if err = e.Identify(); err != nil {
		return nil, err
	}
	for _, k := range kinds[1:] {
		if err = e.ChangeModel(k); err != nil {
			return nil, err
		}
	}
	if err = e.ChangeModel(kinds[0]); err != nil {
		return nil, err
	}

	if st, err := e.Stats(); err == nil {
		log.Info("input %s: %d symbols, %d words (%d distinct)", cfg.InputFile, st.Symbols, st.Words, st.DistinctWords)
	}

	return e, nil
}

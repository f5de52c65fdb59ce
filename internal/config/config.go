// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jmallari/slotshift/internal/fuzzy"
	"github.com/jmallari/slotshift/internal/rename"
)

// EnvVocabDir names the environment variable consulted when --vocab-dir is
// not given. The CLI entry point loads .env first, so the variable can live
// there as well.
const EnvVocabDir = "SLOTSHIFT_VOCAB_DIR"

// Options holds the CLI configuration after flag and environment merging.
type Options struct {
	// VocabDir is where the character-code spreadsheet is searched for.
	VocabDir string `validate:"required"`
	// Threshold is the fuzzy-match threshold for spelling suggestions.
	Threshold float64 `validate:"gte=0,lte=1"`
	// Parallelism bounds concurrent mod verifications in batch mode.
	Parallelism int `validate:"gte=1"`
	// Exclusions are relative directory patterns whose subtrees keep their
	// slot numbers during renaming.
	Exclusions []string
	// AssumeYes applies rename plans without interactive confirmation.
	AssumeYes bool
	// Verbose prints the full directory tree alongside reports.
	Verbose bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the baseline options. The vocabulary directory falls back
// from $SLOTSHIFT_VOCAB_DIR to the current directory.
func Default() Options {
	dir := os.Getenv(EnvVocabDir)
	if dir == "" {
		dir = "."
	}
	return Options{
		VocabDir:    dir,
		Threshold:   fuzzy.DefaultThreshold,
		Parallelism: 1,
		Exclusions:  rename.DefaultExclusions,
	}
}

// Validate checks that the options carry usable values.
func (o *Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

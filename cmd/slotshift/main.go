// Package main provides the slotshift command-line entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "slotshift <mod-root> [new-slot]",
	Short: "Verify slot consistency of Smash Ultimate mods and duplicate them onto new slots",
	Long: `slotshift checks that every path, manifest entry, and sidecar file inside a
mod directory agrees on one costume slot, and can duplicate the whole mod onto
a different slot without touching the original.

With one argument it verifies: a mod directory (slot token in its name) gets a
single report, any other directory is treated as a collection and every
immediate subdirectory is verified in a batch. With a second argument the mod
is verified first and, if no failures were found, duplicated onto the new slot.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCmd,
}

var (
	flagVocabDir  string
	flagThreshold float64
	flagParallel  int
	flagExclude   []string
	flagYes       bool
	flagVerbose   bool
)

func init() {
	rootCmd.Flags().StringVar(&flagVocabDir, "vocab-dir", "", "Directory searched for the character code spreadsheet (defaults to $SLOTSHIFT_VOCAB_DIR, then .)")
	rootCmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "Fuzzy-match threshold for spelling suggestions (0.0-1.0)")
	rootCmd.Flags().IntVar(&flagParallel, "parallel", 0, "Maximum concurrent verifications in batch mode")
	rootCmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "Directory patterns whose subtrees keep their slot numbers when renaming")
	rootCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Apply the rename plan without asking for confirmation")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the full directory tree alongside reports")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var blocked *verificationBlockedError
		if errors.As(err, &blocked) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

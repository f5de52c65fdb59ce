package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmallari/slotshift/internal/config"
	"github.com/jmallari/slotshift/internal/modtree"
	"github.com/jmallari/slotshift/internal/observability"
	"github.com/jmallari/slotshift/internal/rename"
	"github.com/jmallari/slotshift/internal/verify"
	"github.com/jmallari/slotshift/internal/vocab"
)

// verificationBlockedError marks a rename that was refused because the mod
// failed verification. The entry point maps it to its own exit code.
type verificationBlockedError struct {
	modName string
}

func (e *verificationBlockedError) Error() string {
	return fmt.Sprintf("verification of %q found failures; fix them before renaming", e.modName)
}

func runCmd(cmd *cobra.Command, args []string) error {
	opts := config.Default()
	if cmd.Flags().Changed("vocab-dir") {
		opts.VocabDir = flagVocabDir
	}
	if cmd.Flags().Changed("threshold") {
		opts.Threshold = flagThreshold
	}
	if cmd.Flags().Changed("parallel") {
		opts.Parallelism = flagParallel
	}
	if cmd.Flags().Changed("exclude") {
		opts.Exclusions = flagExclude
	}
	opts.AssumeYes = flagYes
	opts.Verbose = flagVerbose
	if err := opts.Validate(); err != nil {
		return err
	}

	root := filepath.Clean(args[0])
	if err := diagnoseDirectory(root); err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	verifyOpts := verify.Options{
		Bank:      loadBank(cmd, opts.VocabDir),
		Threshold: opts.Threshold,
	}

	if len(args) == 2 {
		return runRename(cmd, printer, root, args[1], opts, verifyOpts)
	}

	if _, err := modtree.ExtractSlot(filepath.Base(root)); err != nil {
		var notFound *modtree.SlotNotFoundError
		if errors.As(err, &notFound) {
			// No slot token in the name: treat the directory as a collection.
			return runBatch(cmd, printer, root, verifyOpts, opts.Parallelism)
		}
		return err
	}
	return runVerify(printer, root, opts, verifyOpts)
}

func runVerify(printer *observability.Printer, root string, opts config.Options, verifyOpts verify.Options) error {
	report, err := verify.Mod(root, verifyOpts)
	if err != nil {
		return err
	}
	printer.PrintReport(report)
	if opts.Verbose {
		if err := printer.PrintTree(root); err != nil {
			return err
		}
	}
	return nil
}

func runBatch(cmd *cobra.Command, printer *observability.Printer, root string, verifyOpts verify.Options, parallelism int) error {
	report, err := verify.Batch(cmd.Context(), root, verifyOpts, parallelism)
	if err != nil {
		return err
	}
	printer.PrintBatchReport(report)
	return nil
}

func runRename(cmd *cobra.Command, printer *observability.Printer, root, slotArg string, opts config.Options, verifyOpts verify.Options) error {
	newSlot, err := parseSlotArg(slotArg)
	if err != nil {
		return err
	}

	report, err := verify.Mod(root, verifyOpts)
	if err != nil {
		return err
	}
	printer.PrintReport(report)
	if !report.AllClear {
		return &verificationBlockedError{modName: report.ModName}
	}

	plan, err := rename.BuildPlan(root, newSlot, opts.Exclusions)
	if err != nil {
		return err
	}
	printer.PrintRenamePlan(plan)

	if !opts.AssumeYes {
		ok, err := confirm(cmd)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted; nothing was written.")
			return nil
		}
	}

	if err := plan.Apply(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", plan.TargetRoot)
	if opts.Verbose {
		return printer.PrintTree(plan.TargetRoot)
	}
	return nil
}

// diagnoseDirectory rejects a root that is not an existing directory, with a
// friendlier hint for the common case of pointing at a downloaded archive.
func diagnoseDirectory(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return &modtree.NotADirectoryError{Path: root, Cause: err}
	}
	if !info.IsDir() {
		if strings.EqualFold(filepath.Ext(root), ".zip") {
			return fmt.Errorf("%s is an archive; unzip the mod first and point at the extracted directory", root)
		}
		return &modtree.NotADirectoryError{Path: root}
	}
	return nil
}

// loadBank loads the character-code vocabulary. A missing or unreadable
// spreadsheet only disables spelling suggestions, it never fails the run.
func loadBank(cmd *cobra.Command, dir string) *vocab.Bank {
	bank, err := vocab.Load(dir)
	if err != nil {
		if errors.Is(err, vocab.ErrNotAvailable) {
			fmt.Fprintf(cmd.ErrOrStderr(), "note: no character code spreadsheet found in %s; spelling suggestions disabled\n", dir)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "note: could not read character code spreadsheet: %v; spelling suggestions disabled\n", err)
		}
		return nil
	}
	return bank
}

// parseSlotArg accepts the new slot as "5", "05", or "c05" (case-insensitive).
func parseSlotArg(arg string) (int, error) {
	trimmed := strings.TrimSpace(strings.ToLower(arg))
	trimmed = strings.TrimPrefix(trimmed, "c")
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 || n > 7 {
		return 0, fmt.Errorf("invalid slot %q: expected a number from 0 to 7", arg)
	}
	return n, nil
}

func confirm(cmd *cobra.Command) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), "Proceed with duplication? [y/N]: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/config"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// checkStatus represents the result of a health check.
type checkStatus string

const (
	checkPass checkStatus = "pass"
	checkWarn checkStatus = "warn"
	checkFail checkStatus = "fail"
)

// checkResult holds the result of a single health check.
type checkResult struct {
	Name    string      `json:"name"`
	Status  checkStatus `json:"status"`
	Message string      `json:"message"`
	Hint    string      `json:"hint,omitempty"`
}

// checkSummary holds the counts of check results.
type checkSummary struct {
	Passed   int `json:"passed"`
	Warnings int `json:"warnings"`
	Failed   int `json:"failed"`
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	flags := &pipelineFlags{}
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "check <export-dir>",
		Short: "Check an export and the local setup for problems",
		Long: `Check that an export directory and the local setup can produce a good index.

Each check reports:
  Pass    - Check passed
  Warning - Non-critical issue found
  Fail    - Critical issue that needs attention

Any failed check makes the command exit non-zero, so it can gate scripts.

Examples:
  notion-llms-txt check ./export          # Run all checks
  notion-llms-txt check ./export --quiet  # Only failures and warnings
  notion-llms-txt check ./export --json   # Results as JSON`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, flags, quietFlag, args[0])
		},
	}

	registerPipelineFlags(cmd, flags)
	cmd.Flags().BoolVar(&quietFlag, "quiet", false, "Only show failures and warnings")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, flags *pipelineFlags, quiet bool, dir string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	cfg, cfgErr := resolveConfig(cmd, flags)
	if cfgErr != nil {
		// Keep checking with defaults; the config check reports the problem.
		cfg = config.Default()
	}

	results := gatherChecks(dir, cfg, flags.configPath)
	summary := summarizeChecks(results)

	if printer.IsJSON() {
		if err := outputCheckJSON(printer, results, summary); err != nil {
			return err
		}
	} else {
		outputCheckHuman(printer, results, summary, quiet)
	}

	if summary.Failed > 0 {
		return output.NewUserError(fmt.Sprintf("%d of %d checks failed", summary.Failed, len(results)))
	}
	return nil
}

// summarizeChecks tallies the check results.
func summarizeChecks(results []checkResult) *checkSummary {
	summary := &checkSummary{}
	for _, check := range results {
		switch check.Status {
		case checkPass:
			summary.Passed++
		case checkWarn:
			summary.Warnings++
		case checkFail:
			summary.Failed++
		}
	}
	return summary
}

// outputCheckJSON outputs the check results as JSON.
func outputCheckJSON(printer *output.Printer, results []checkResult, summary *checkSummary) error {
	return printer.WriteJSON(map[string]any{
		"version": version,
		"checks":  results,
		"summary": summary,
	})
}

// outputCheckHuman outputs the check results in human-readable format.
func outputCheckHuman(printer *output.Printer, results []checkResult, summary *checkSummary, quiet bool) {
	printer.Println()
	printer.Print("notion-llms-txt check v%s\n", version)
	printer.Println()

	for _, check := range results {
		// In quiet mode, skip passing checks
		if quiet && check.Status == checkPass {
			continue
		}
		printer.Print("  %s  %s: %s\n", statusIcon(check.Status), check.Name, check.Message)
		if check.Hint != "" {
			printer.Print("      -> %s\n", check.Hint)
		}
	}

	printer.Println()
	printer.Print("%s %d passed  %s %d warnings  %s %d failed\n",
		statusIcon(checkPass), summary.Passed,
		statusIcon(checkWarn), summary.Warnings,
		statusIcon(checkFail), summary.Failed,
	)
}

// statusIcon returns the icon for a check status.
func statusIcon(status checkStatus) string {
	switch status {
	case checkPass:
		return "ok"
	case checkWarn:
		return "!!"
	case checkFail:
		return "XX"
	default:
		return "??"
	}
}

// Package main provides the entry point for the notion-llms-txt CLI.
package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/tyo-yo/notion-to-llms-txt/internal/config"
	"github.com/tyo-yo/notion-to-llms-txt/internal/output"
)

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a default ` + config.FileName + ` into the current directory.

The file documents every option with its default value. Edit it to pin
project-wide thresholds, globs, or the cache, then run generate without
flags.

Examples:
  notion-llms-txt init           # Create ` + config.FileName + `
  notion-llms-txt init --force   # Replace an existing one`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, forceFlag)
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}

// runInit executes the init command.
func runInit(cmd *cobra.Command, force bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))

	err := config.WriteDefault(config.FileName, force)
	if errors.Is(err, fs.ErrExist) {
		conflictErr := output.NewConflictError(config.FileName + " already exists (use --force to replace it)")
		printer.Error(conflictErr)
		return conflictErr
	}
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("writing "+config.FileName, err)
		printer.Error(sysErr)
		return sysErr
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"created": config.FileName})
	}
	printer.Print("Wrote %s\n", config.FileName)
	return nil
}

// Package output provides structured output handling for the notion-llms-txt CLI.
//
// This package handles both human-readable and JSON output formats, supporting
// the agent-friendly design principle that every command should work equally
// well for a human at a terminal and for an automated agent parsing stdout.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "Wrote notion-llms.txt", "pages": 42})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"pages": 42, "categories": 5, ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped.
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad path, bad flag, bad pattern)
//	output.ExitSystemError // 2: System error (I/O failure)
//	output.ExitConflict    // 3: Conflict (refusing to overwrite)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("export path is not a directory: /tmp/x")
//	output.NewSystemError("writing output file failed")
//	output.NewConflictError("config file already exists")
//
// These errors carry exit codes that are used for both JSON error output
// and the process exit code.
package output

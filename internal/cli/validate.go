package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questdeck/questdeck/internal/packs"
)

// ValidationIssue is one problem found while compiling a pack.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// ValidationResult holds validation results for a packs directory.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Pools  int               `json:"pools"`
	Files  int               `json:"files"`
	Errors []ValidationIssue `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <packs-dir>",
		Short: "Validate CUE pool packs",
		Long: `Compile-check a directory of CUE pool packs without loading them into
a registry.

All errors are collected and reported together, so pack authors see
every problem in one pass.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, packsDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	result, loadErrors := packs.LoadPacks(packsDir, packs.LoadModeCollectAll)

	// Directory-level failures (not found, no files) are command errors.
	if result == nil && len(loadErrors) > 0 {
		var loadErr *packs.LoadError
		if errors.As(loadErrors[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		_ = formatter.Error(packs.ErrCodeGeneric, loadErrors[0].Error(), nil)
		return NewExitError(ExitCommandError, loadErrors[0].Error())
	}

	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, packsDir)

	issues := make([]ValidationIssue, 0, len(loadErrors))
	for _, err := range loadErrors {
		var loadErr *packs.LoadError
		if errors.As(err, &loadErr) {
			issue := ValidationIssue{
				Code:    loadErr.Code,
				Message: loadErr.Message,
			}
			if loadErr.Pos.IsValid() {
				issue.File = loadErr.Pos.Filename()
				issue.Line = loadErr.Pos.Line()
			}
			issues = append(issues, issue)
			continue
		}
		issues = append(issues, ValidationIssue{
			Code:    packs.ErrCodeGeneric,
			Message: err.Error(),
		})
	}

	if len(issues) > 0 {
		return outputValidationIssues(formatter, result, issues)
	}

	return outputValidateSuccess(formatter, result)
}

func outputValidateSuccess(formatter *OutputFormatter, result *packs.LoadResult) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{
			Valid: true,
			Pools: len(result.Pools),
			Files: result.FileCount,
		})
	}

	fmt.Fprintf(formatter.Writer, "✓ All packs valid (%d pool(s), %d file(s))\n", len(result.Pools), result.FileCount)
	return nil
}

func outputValidationIssues(formatter *OutputFormatter, result *packs.LoadResult, issues []ValidationIssue) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Pools:  len(result.Pools),
				Files:  result.FileCount,
				Errors: issues,
			},
			Error: &CLIError{
				Code:    issues[0].Code,
				Message: issues[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(issues)))
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, issue := range issues {
		if issue.Line > 0 {
			fmt.Fprintf(formatter.Writer, "%s:%d\n", issue.File, issue.Line)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", issue.Code, issue.Message)
	}

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(issues)))
}

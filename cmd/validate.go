package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/spf13/cobra"
)

// ErrInvalidDrafts is returned when at least one validated file has problems.
var ErrInvalidDrafts = errors.New("one or more draft files are invalid")

// ValidationResult represents the validation outcome for a single draft file.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

var validateFormatFlag string

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check draft files before sharing them",
	Long: `Check one or more draft YAML files without generating anything.

Files are decoded strictly, so misspelled keys are reported. The fields the
selected type reads are then checked: the type must be known, titles and
texts must not be empty, timings must not be negative, and boss bar
settings must be values the plugin accepts.

Generation itself never validates; this command is the only place these
checks run.

Exit code 0 if all files are valid, 1 if any file has errors.

Formats:
  text   Human-readable output to stderr (default)
  json   Structured JSON to stdout

Examples:
  apstudio validate draft.yaml
  apstudio validate --format json a.yaml b.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	validateCmd.Flags().StringVar(&validateFormatFlag, "format", "text",
		"Output format: text, json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(validateFormatFlag)
	switch format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q: valid values are text, json", validateFormatFlag)
	}

	results := make([]ValidationResult, 0, len(args))
	hasErrors := false
	for _, path := range args {
		result := validateFile(path)
		results = append(results, result)
		if !result.Valid {
			hasErrors = true
		}
	}

	switch format {
	case "text":
		formatValidateText(cmd.ErrOrStderr(), results)
	case "json":
		if err := formatValidateJSON(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}
	}

	if hasErrors {
		return ErrInvalidDrafts
	}
	return nil
}

// validateFile loads and checks a single draft file.
func validateFile(path string) ValidationResult {
	s, err := command.LoadFile(path)
	if err != nil {
		return ValidationResult{File: path, Valid: false, Errors: []string{err.Error()}}
	}
	if problems := command.Problems(s.Validate()); len(problems) > 0 {
		return ValidationResult{File: path, Valid: false, Errors: problems}
	}
	return ValidationResult{File: path, Valid: true, Errors: []string{}}
}

func formatValidateText(w io.Writer, results []ValidationResult) {
	validCount := 0
	for _, r := range results {
		if r.Valid {
			validCount++
			fmt.Fprintf(w, "✓ %s: valid\n", r.File)
			continue
		}
		fmt.Fprintf(w, "✗ %s:\n", r.File)
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(w, "\nResult: %d/%d files valid\n", validCount, len(results))
	}
}

func formatValidateJSON(w io.Writer, results []ValidationResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

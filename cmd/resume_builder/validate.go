package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/Mug212/ats-score-resume-builder/internal/observability"
	"github.com/Mug212/ats-score-resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document against the document schema",
	Long:  "Checks a resume document JSON file against the embedded document schema and the entry id rules.",
	RunE:  runValidate,
}

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to resume document JSON file (required)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	printer := observability.NewPrinter(out)

	if err := schemas.ValidateDocumentFile(validateInput); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			printer.PrintValidationErrors(validationErr)
			return fmt.Errorf("validation failed: %d problems", len(validationErr.Errors))
		}
		return err
	}

	// Schema-valid documents can still repeat entry ids
	content, err := os.ReadFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to read document file: %w", err)
	}
	if _, err := document.DecodeDocumentJSON(content); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	printer.PrintValidationErrors(nil)
	_, _ = fmt.Fprintln(out, "Validation passed")
	return nil
}

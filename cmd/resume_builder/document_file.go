package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/Mug212/ats-score-resume-builder/internal/schemas"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

// loadDocument reads a document file, checks it against the document schema
// and decodes it.
func loadDocument(path string) (types.Document, error) {
	if err := schemas.ValidateDocumentFile(path); err != nil {
		return types.Document{}, fmt.Errorf("invalid document %s: %w", path, err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to read document file: %w", err)
	}

	doc, err := document.DecodeDocumentJSON(content)
	if err != nil {
		return types.Document{}, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// writeJSON writes v as indented JSON, creating the parent directory.
func writeJSON(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

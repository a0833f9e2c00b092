// Package schemas provides JSON Schema validation for resume documents and sections.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mug212/ats-score-resume-builder/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed document.schema.json
var documentSchema []byte

const documentSchemaName = "(embedded document.schema.json)"

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// DocumentSchema returns the embedded document schema.
func DocumentSchema() []byte {
	return append([]byte(nil), documentSchema...)
}

// ValidateDocumentJSON validates raw document JSON against the embedded schema.
func ValidateDocumentJSON(data []byte) error {
	return validate(documentSchemaName,
		gojsonschema.NewBytesLoader(documentSchema),
		gojsonschema.NewBytesLoader(data))
}

// ValidateDocumentFile validates a document JSON file against the embedded schema.
func ValidateDocumentFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return ValidateDocumentJSON(data)
}

// ValidateSection validates the raw JSON of one section as it would appear
// inside a document.
func ValidateSection(key types.SectionKey, data json.RawMessage) error {
	property, ok := sectionProperties[key]
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownSection, key)
	}
	if !json.Valid(data) {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "section body is not valid JSON"}}}
	}

	wrapped, err := json.Marshal(map[string]json.RawMessage{property: data})
	if err != nil {
		return fmt.Errorf("failed to wrap section %s: %w", key, err)
	}
	return ValidateDocumentJSON(wrapped)
}

var sectionProperties = map[types.SectionKey]string{
	types.SectionPersonal:       "personalInfo",
	types.SectionExperience:     "workExperience",
	types.SectionEducation:      "education",
	types.SectionSkills:         "skills",
	types.SectionProjects:       "projects",
	types.SectionCertifications: "certifications",
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	return validate(schemaAbsPath,
		gojsonschema.NewReferenceLoader("file://"+schemaAbsPath),
		gojsonschema.NewReferenceLoader("file://"+jsonAbsPath))
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)",
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent))
}

func validate(schemaName string, schema, doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schema, doc)
	if err != nil {
		// Either the schema or the document failed to load
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}

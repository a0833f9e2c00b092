package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Mug212/ats-score-resume-builder/internal/collection"
	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/Mug212/ats-score-resume-builder/internal/schemas"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

// ErrSessionLimit indicates the server holds the maximum number of sessions
var ErrSessionLimit = errors.New("session limit reached")

// ErrSessionNotFound indicates the session id is unknown
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrSessionNotFound
		validation *ErrValidation
		schemaErr  *schemas.ValidationError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &notFound), errors.Is(err, collection.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, collection.ErrLastItem):
		return http.StatusConflict
	case errors.Is(err, ErrSessionLimit):
		return http.StatusServiceUnavailable
	case errors.As(err, &validation), errors.As(err, &schemaErr),
		errors.Is(err, types.ErrUnknownSection),
		errors.Is(err, types.ErrUnknownField),
		errors.Is(err, document.ErrInvalidAction),
		errors.Is(err, document.ErrInvalidDocument),
		errors.Is(err, document.ErrSectionMismatch),
		errors.Is(err, document.ErrNotCollection),
		errors.Is(err, collection.ErrDuplicateID),
		errors.Is(err, collection.ErrImmutableID),
		errors.Is(err, collection.ErrIndexOutOfRange),
		errors.Is(err, collection.ErrBlankValue):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package collection

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id is absent from its collection
	ErrNotFound = errors.New("entry not found")
	// ErrDuplicateID is returned when an id would appear twice in one collection
	ErrDuplicateID = errors.New("duplicate entry id")
	// ErrImmutableID is returned when an update tries to change an entry's id
	ErrImmutableID = errors.New("entry id is immutable")
	// ErrIndexOutOfRange is returned by nested list operations addressed past the end
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrLastItem is returned when removing the only remaining slot of a guarded list
	ErrLastItem = errors.New("cannot remove the last remaining item")
	// ErrBlankValue is returned when a trimmed value is empty
	ErrBlankValue = errors.New("value is blank")
)

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

func outOfRange(index, length int) error {
	return fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, index, length)
}

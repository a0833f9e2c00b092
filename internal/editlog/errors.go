// Package editlog loads recorded edit sessions and turns them into document actions.
package editlog

import "fmt"

// LoadError represents an error during file I/O or YAML parsing
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// EditError represents an edit entry that does not convert to an action
type EditError struct {
	Index int
	Cause error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("edit %d: %v", e.Index, e.Cause)
}

func (e *EditError) Unwrap() error {
	return e.Cause
}

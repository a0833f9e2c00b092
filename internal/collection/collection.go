// Package collection provides add/update/remove helpers over identity-keyed ordered entries.
//
// Every function returns a new slice and leaves its input untouched, so callers can
// compare snapshots to detect change.
package collection

import (
	"fmt"
	"strings"
)

// Entry is an item that carries a stable identifier within its collection
type Entry interface {
	EntryID() string
}

// Find returns the index of the entry with the given id.
func Find[T Entry](coll []T, id string) (int, bool) {
	for i, entry := range coll {
		if entry.EntryID() == id {
			return i, true
		}
	}
	return -1, false
}

// Get returns the entry with the given id.
func Get[T Entry](coll []T, id string) (T, error) {
	idx, ok := Find(coll, id)
	if !ok {
		var zero T
		return zero, notFound(id)
	}
	return coll[idx], nil
}

// Add appends a new entry built by newEntry with the given id.
// The id must not already be present in the collection.
func Add[T Entry](coll []T, id string, newEntry func(id string) T) ([]T, T, error) {
	var zero T
	if id == "" {
		return coll, zero, fmt.Errorf("%w: empty id", ErrDuplicateID)
	}
	if _, exists := Find(coll, id); exists {
		return coll, zero, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	entry := newEntry(id)
	out := make([]T, len(coll), len(coll)+1)
	copy(out, coll)
	out = append(out, entry)
	return out, entry, nil
}

// Update replaces the entry matching id with fn(entry), preserving order.
// If id is absent the input is returned with ErrNotFound.
func Update[T Entry](coll []T, id string, fn func(T) (T, error)) ([]T, error) {
	idx, ok := Find(coll, id)
	if !ok {
		return coll, notFound(id)
	}

	updated, err := fn(coll[idx])
	if err != nil {
		return coll, err
	}
	if updated.EntryID() != id {
		return coll, fmt.Errorf("%w: id %s cannot change to %s", ErrImmutableID, id, updated.EntryID())
	}

	out := make([]T, len(coll))
	copy(out, coll)
	out[idx] = updated
	return out, nil
}

// Remove deletes the entry matching id, preserving the order of the rest.
// If id is absent the input is returned with ErrNotFound.
func Remove[T Entry](coll []T, id string) ([]T, error) {
	idx, ok := Find(coll, id)
	if !ok {
		return coll, notFound(id)
	}

	out := make([]T, 0, len(coll)-1)
	out = append(out, coll[:idx]...)
	out = append(out, coll[idx+1:]...)
	return out, nil
}

// IDs returns the ids of coll in order.
func IDs[T Entry](coll []T) []string {
	ids := make([]string, len(coll))
	for i, entry := range coll {
		ids[i] = entry.EntryID()
	}
	return ids
}

// CheckUnique returns ErrDuplicateID if two entries share an id or an id is empty.
func CheckUnique[T Entry](coll []T) error {
	seen := make(map[string]bool, len(coll))
	for _, entry := range coll {
		id := entry.EntryID()
		if id == "" {
			return fmt.Errorf("%w: empty id", ErrDuplicateID)
		}
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, id)
		}
		seen[id] = true
	}
	return nil
}

// AppendItem returns a copy of list with value appended.
func AppendItem(list []string, value string) []string {
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, value)
}

// AppendTrimmed appends the trimmed value, rejecting blank input.
func AppendTrimmed(list []string, value string) ([]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return list, ErrBlankValue
	}
	return AppendItem(list, trimmed), nil
}

// SetItem returns a copy of list with the element at index replaced.
func SetItem(list []string, index int, value string) ([]string, error) {
	if index < 0 || index >= len(list) {
		return list, outOfRange(index, len(list))
	}
	out := make([]string, len(list))
	copy(out, list)
	out[index] = value
	return out, nil
}

// RemoveItem returns a copy of list without the element at index.
func RemoveItem(list []string, index int) ([]string, error) {
	if index < 0 || index >= len(list) {
		return list, outOfRange(index, len(list))
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return out, nil
}

// RemoveItemKeepOne is RemoveItem that refuses to empty the list.
func RemoveItemKeepOne(list []string, index int) ([]string, error) {
	if index >= 0 && index < len(list) && len(list) <= 1 {
		return list, ErrLastItem
	}
	return RemoveItem(list, index)
}

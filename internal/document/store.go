package document

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/Mug212/ats-score-resume-builder/internal/scoring"
	"github.com/Mug212/ats-score-resume-builder/internal/sections"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
)

// Snapshot is the document together with its derived state
type Snapshot struct {
	Document   types.Document            `json:"document"`
	Score      int                       `json:"score"`
	Status     scoring.Status            `json:"status"`
	Completion map[types.SectionKey]bool `json:"completion"`
	Revision   uint64                    `json:"revision"`
}

// Observer is notified after each dispatched action
type Observer interface {
	Applied(action Action, before, after Snapshot)
	Rejected(action Action, err error)
}

// Store owns the current document snapshot of one editing session.
// It is not safe for concurrent use; callers serialize access.
type Store struct {
	rubric    scoring.Rubric
	observers []Observer
	current   Snapshot
}

// Option configures a Store
type Option func(*Store)

// WithRubric scores documents with r instead of the default rubric.
func WithRubric(r scoring.Rubric) Option {
	return func(s *Store) { s.rubric = r }
}

// WithObserver registers an observer for dispatched actions.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, o) }
}

// WithDocument starts the store from doc instead of the empty document.
func WithDocument(doc types.Document) Option {
	return func(s *Store) { s.current.Document = types.Normalize(doc) }
}

// NewStore creates a store holding the empty document.
func NewStore(opts ...Option) *Store {
	s := &Store{
		rubric:  scoring.DefaultRubric(),
		current: Snapshot{Document: types.NewDocument()},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = s.derive(s.current.Document, 0)
	return s
}

// Dispatch applies action to the current document and recomputes derived state.
// On error the snapshot is left unchanged.
func (s *Store) Dispatch(action Action) (Snapshot, error) {
	before := s.current
	next, err := Reduce(before.Document, action)
	if err != nil {
		for _, o := range s.observers {
			o.Rejected(action, err)
		}
		return s.Snapshot(), err
	}

	revision := before.Revision
	if !reflect.DeepEqual(before.Document, next) {
		revision++
	}
	s.current = s.derive(next, revision)

	for _, o := range s.observers {
		o.Applied(action, before, s.current)
	}
	return s.Snapshot(), nil
}

// ReplaceSection replaces one whole section, the primary mutation contract.
func (s *Store) ReplaceSection(key types.SectionKey, value any) (Snapshot, error) {
	return s.Dispatch(ReplaceSection{Section: key, Value: value})
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	out := s.current
	out.Document = s.current.Document.Clone()
	out.Completion = maps.Clone(s.current.Completion)
	return out
}

// Document returns a copy of the current document.
func (s *Store) Document() types.Document {
	return s.current.Document.Clone()
}

// Score returns the current ATS score.
func (s *Store) Score() int {
	return s.current.Score
}

// Completion returns a copy of the per-section completion flags.
func (s *Store) Completion() map[types.SectionKey]bool {
	return maps.Clone(s.current.Completion)
}

// Evaluate returns the rubric breakdown for the current document.
func (s *Store) Evaluate() scoring.Result {
	return s.rubric.Evaluate(s.current.Document)
}

func (s *Store) derive(doc types.Document, revision uint64) Snapshot {
	score := s.rubric.Score(doc)
	return Snapshot{
		Document:   doc,
		Score:      score,
		Status:     scoring.StatusFor(score),
		Completion: sections.Completion(doc),
		Revision:   revision,
	}
}

// ReplayError reports which action of a replay failed
type ReplayError struct {
	Index  int
	Action ActionType
	Cause  error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay failed at edit %d (%s): %v", e.Index, e.Action, e.Cause)
}

func (e *ReplayError) Unwrap() error {
	return e.Cause
}

// Replay applies actions in order to a fresh store and returns the final snapshot.
// It stops at the first rejected action.
func Replay(actions []Action, opts ...Option) (Snapshot, error) {
	store := NewStore(opts...)
	for i, action := range actions {
		if _, err := store.Dispatch(action); err != nil {
			var actionType ActionType
			if action != nil {
				actionType = action.Type()
			}
			return store.Snapshot(), &ReplayError{Index: i, Action: actionType, Cause: err}
		}
	}
	return store.Snapshot(), nil
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/Mug212/ats-score-resume-builder/internal/scoring"
	"github.com/Mug212/ats-score-resume-builder/internal/sections"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateDocumentRequest is the optional body of POST /documents
type CreateDocumentRequest struct {
	Document json.RawMessage `json:"document,omitempty"`
}

// DocumentResponse is a session id with its current snapshot
type DocumentResponse struct {
	ID string `json:"id"`
	document.Snapshot
}

// SectionResponse is the current value of one section
type SectionResponse struct {
	ID      string           `json:"id"`
	Section types.SectionKey `json:"section"`
	Value   any              `json:"value"`
}

// ScoreResponse is the score card of a document
type ScoreResponse struct {
	ID         string                   `json:"id"`
	Score      int                      `json:"score"`
	Status     scoring.Status           `json:"status"`
	Earned     map[scoring.Category]int `json:"earned"`
	Breakdown  []scoring.Award          `json:"breakdown"`
	Completion []sections.Progress      `json:"completion"`
	Completed  int                      `json:"completed"`
	Revision   uint64                   `json:"revision"`
}

// documentParams are the path parameters shared by document routes
type documentParams struct {
	ID      string `validate:"required,uuid"`
	Section string `validate:"omitempty,oneof=personal experience education skills projects certifications"`
}

func parseDocumentParams(r *http.Request) (documentParams, error) {
	p := documentParams{ID: r.PathValue("id"), Section: r.PathValue("section")}
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return p, &ErrValidation{Field: verrs[0].Field(), Message: fmt.Sprintf("failed on '%s'", verrs[0].Tag())}
		}
		return p, &ErrValidation{Field: "path", Message: err.Error()}
	}
	return p, nil
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	return body, nil
}

// handleCreateDocument opens a session, optionally seeded with a whole document
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var opts []document.Option
	if len(body) > 0 {
		var req CreateDocumentRequest
		if err := json.Unmarshal(body, &req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
		if len(req.Document) > 0 {
			doc, err := document.DecodeDocumentJSON(req.Document)
			if err != nil {
				s.writeError(w, err)
				return
			}
			opts = append(opts, document.WithDocument(doc))
		}
	}

	id, snap, err := s.sessions.Create(opts...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Location", "/documents/"+id)
	s.jsonResponse(w, http.StatusCreated, DocumentResponse{ID: id, Snapshot: snap})
}

// handleGetDocument returns the current snapshot
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	p, err := parseDocumentParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var snap document.Snapshot
	err = s.sessions.With(p.ID, func(store *document.Store) error {
		snap = store.Snapshot()
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, DocumentResponse{ID: p.ID, Snapshot: snap})
}

// handleDeleteDocument closes a session
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	p, err := parseDocumentParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.sessions.Delete(p.ID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleGetSection returns one section of the document
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	p, err := parseDocumentParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	key := types.SectionKey(p.Section)

	var value any
	err = s.sessions.With(p.ID, func(store *document.Store) error {
		v, sectionErr := document.Section(store.Document(), key)
		value = v
		return sectionErr
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, SectionResponse{ID: p.ID, Section: key, Value: value})
}

// handleReplaceSection replaces one whole section with the request body
func (s *Server) handleReplaceSection(w http.ResponseWriter, r *http.Request) {
	p, err := parseDocumentParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	key := types.SectionKey(p.Section)

	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	value, err := document.DecodeSectionJSON(key, body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.dispatch(w, p.ID, document.ReplaceSection{Section: key, Value: value})
}

// handleDispatch applies one encoded action
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	p, err := parseDocumentParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	action, err := document.DecodeAction(body)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.dispatch(w, p.ID, action)
}

// handleReset clears the document
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	p, err := parseDocumentParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.dispatch(w, p.ID, document.Reset{})
}

// handleScore returns the score card
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	p, err := parseDocumentParams(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var resp ScoreResponse
	err = s.sessions.With(p.ID, func(store *document.Store) error {
		result := store.Evaluate()
		doc := store.Document()
		resp = ScoreResponse{
			ID:         p.ID,
			Score:      result.Score,
			Status:     result.Status,
			Earned:     result.Earned(),
			Breakdown:  result.Awards,
			Completion: sections.Report(doc),
			Completed:  sections.CompletedCount(doc),
			Revision:   store.Snapshot().Revision,
		}
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) dispatch(w http.ResponseWriter, id string, action document.Action) {
	var snap document.Snapshot
	err := s.sessions.With(id, func(store *document.Store) error {
		var err error
		snap, err = store.Dispatch(action)
		return err
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, DocumentResponse{ID: id, Snapshot: snap})
}

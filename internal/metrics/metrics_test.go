package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/Mug212/ats-score-resume-builder/internal/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsEditOutcomes(t *testing.T) {
	c := New()
	store := document.NewStore(document.WithObserver(c))

	_, err := store.Dispatch(document.AddEntry{Section: types.SectionEducation})
	require.NoError(t, err)
	_, err = store.Dispatch(document.SetPersonal{Field: types.PersonalEmail, Value: ""})
	require.NoError(t, err)
	_, err = store.Dispatch(document.RemoveEntry{Section: types.SectionEducation, ID: "edu-9"})
	require.Error(t, err)
	_, err = store.Dispatch(document.AddEntry{Section: types.SectionSkills})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.edits.WithLabelValues("add_entry", OutcomeApplied)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.edits.WithLabelValues("set_personal", OutcomeUnchanged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.edits.WithLabelValues("remove_entry", OutcomeNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.edits.WithLabelValues("add_entry", OutcomeRejected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.completion.WithLabelValues("education")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.completion.WithLabelValues("skills")))
}

func TestCollector_Sessions(t *testing.T) {
	c := New()
	c.SessionOpened()
	c.SessionOpened()
	c.SessionClosed()

	assert.Equal(t, 1.0, testutil.ToFloat64(c.sessions))
}

func TestCollector_Handler(t *testing.T) {
	c := New()
	c.ObserveRequest("GET /health", http.StatusOK)
	c.Rejected(nil, document.ErrInvalidAction)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `resume_builder_http_requests_total{code="200",route="GET /health"} 1`), body)
	assert.Contains(t, body, `resume_builder_edits_total{action="unknown",outcome="rejected"} 1`)
}

func TestCollector_ExportsEverySectionGauge(t *testing.T) {
	c := New()
	store := document.NewStore(document.WithObserver(c))

	_, err := store.Dispatch(document.AddEntry{Section: types.SectionProjects})
	require.NoError(t, err)

	assert.Equal(t, len(types.AllSections()), testutil.CollectAndCount(c.completion))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.completion.WithLabelValues("projects")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.completion.WithLabelValues("personal")))
}

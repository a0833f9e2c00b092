package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mug212/ats-score-resume-builder/internal/collection"
	"github.com/Mug212/ats-score-resume-builder/internal/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayCommand(t *testing.T) {
	output, err := executeCommand(t, "replay", "--in", filepath.Join("testdata", "edits.yaml"), "--out", "", "--verbose=false")
	require.NoError(t, err, output)

	assert.Contains(t, output, "Replayed 5 edits (revision 5)")
	assert.Contains(t, output, "ATS Score: 35/100 (Needs Work)")
}

func TestReplayCommand_WritesDocument(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "document.json")

	output, err := executeCommand(t, "replay", "--in", filepath.Join("testdata", "edits.yaml"), "--out", outputFile, "--verbose")
	require.NoError(t, err, output)
	assert.Contains(t, output, "Grace Hopper")
	assert.Contains(t, output, "Senior Programmer")

	// The written document scores the same when loaded back
	output, err = executeCommand(t, "score", "--in", outputFile, "--out", "", "--verbose=false")
	require.NoError(t, err, output)
	assert.Contains(t, output, "ATS Score: 35/100")

	content, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"nextId": 1`)
}

func TestReplayCommand_RejectedEdit(t *testing.T) {
	_, err := executeCommand(t, "replay", "--in", filepath.Join("testdata", "rejected_edit.yaml"), "--out", "", "--verbose=false")

	var replayErr *document.ReplayError
	require.ErrorAs(t, err, &replayErr)
	assert.Equal(t, 1, replayErr.Index)
	assert.ErrorIs(t, err, collection.ErrNotFound)
}

func TestReplayCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(t, "replay", "--in", filepath.Join("testdata", "nope.yaml"), "--out", "", "--verbose=false")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/fitreport/internal/engine"
	"github.com/rshade/fitreport/internal/ingest"
)

func mixedSummary(t *testing.T) *engine.Summary {
	t.Helper()
	pkgs := []ingest.Package{
		{Type: "RUN", Data: []float64{15000, 1, 75}, Source: "t:1"},
		{Type: "SWM", Data: []float64{720, 1, 80, 25}, Source: "t:2"},
	}
	summary, err := engine.New(engine.Options{ContinueOnError: true}).Run(context.Background(), pkgs)
	require.NoError(t, err)
	return summary
}

func TestRenderNDJSON_WithFailures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderNDJSON(&buf, mixedSummary(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var ok, bad ndjsonLine
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &bad))

	require.NotNil(t, ok.Report)
	assert.Nil(t, ok.Error)
	assert.Equal(t, "t:1", ok.Source)

	assert.Nil(t, bad.Report)
	require.NotNil(t, bad.Error)
	assert.Equal(t, 1, bad.Error.Index)
	assert.Equal(t, "SWM", bad.Error.Type)
	assert.Equal(t, "arity_mismatch", bad.Error.Reason)
}

func TestRenderFailures(t *testing.T) {
	var buf bytes.Buffer
	renderFailures(&buf, mixedSummary(t).Failures)
	assert.True(t, strings.HasPrefix(buf.String(), "error: t:2 (SWM): "))
}

func TestRenderText_FallsBackToEnglish(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderText(&buf, "de-DE", mixedSummary(t).Reports()))
	assert.True(t, strings.HasPrefix(buf.String(), "Training type: Running;"))
}

func TestIsWriterTerminal(t *testing.T) {
	assert.False(t, isWriterTerminal(&bytes.Buffer{}))
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: ExitCodePartialFailure, Reason: "1 of 2 packages could not be summarized"}
	assert.Equal(t, "1 of 2 packages could not be summarized", err.Error())
}

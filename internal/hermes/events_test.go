package hermes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscriptSubmittedParsing(t *testing.T) {
	raw := `{
		"request_id": "req-001",
		"transcript_id": "5d1f7c1e-2a44-4c38-9d0b-2f1c4b7e9a10",
		"user": "Alice",
		"source": "upload"
	}`

	var evt TranscriptSubmitted
	require.NoError(t, json.Unmarshal([]byte(raw), &evt))

	assert.Equal(t, "req-001", evt.RequestID)
	assert.Equal(t, "5d1f7c1e-2a44-4c38-9d0b-2f1c4b7e9a10", evt.TranscriptID)
	assert.Equal(t, "Alice", evt.User)
	assert.Equal(t, "upload", evt.Source)
	assert.Empty(t, evt.Content)
}

func TestTranscriptSubmittedInlineEmpty(t *testing.T) {
	var evt TranscriptSubmitted
	require.NoError(t, json.Unmarshal([]byte(`{"request_id":"req-003","inline":true,"content":""}`), &evt))
	assert.True(t, evt.Inline)
	assert.Empty(t, evt.Content)
}

func TestReportFailedOmitsEmptyTranscriptID(t *testing.T) {
	data, err := json.Marshal(ReportFailed{RequestID: "req-002", Error: "transcript not found"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"request_id":"req-002","error":"transcript not found"}`, string(data))
}

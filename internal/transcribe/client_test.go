package transcribe

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/timecapsule/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transcribe", r.URL.Path)
		assert.Equal(t, "greeting", r.URL.Query().Get("filename"))
		_, _ = w.Write([]byte(`{"transcription":"hello from the past"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logging.NewDefault(io.Discard))
	require.True(t, c.Enabled())

	text, err := c.Transcribe(context.Background(), "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello from the past", text)
}

func TestTranscribe_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such recording", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, logging.NewDefault(io.Discard))

	_, err := c.Transcribe(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestTranscribe_Disabled(t *testing.T) {
	c := NewClient("", logging.NewDefault(io.Discard))
	assert.False(t, c.Enabled())

	_, err := c.Transcribe(context.Background(), "anything")
	require.Error(t, err)

	// Background on a disabled client is a silent no-op
	c.Background("anything")
}

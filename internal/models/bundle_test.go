package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/timecapsule/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 8, 29, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		bundle Bundle
	}{
		{
			name: "text only",
			bundle: Bundle{
				V:         BundleVersion,
				CreatedAt: createdAt,
				Name:      "Hana Tanaka",
				Birthday:  "1990-05-05",
				Message:   "hello\nfrom the past",
			},
		},
		{
			name: "with audio",
			bundle: Bundle{
				V:         BundleVersion,
				CreatedAt: createdAt,
				Name:      "Bob",
				Birthday:  "1990-05-05",
				Message:   "listen to this",
				Audio:     &Audio{Mime: "audio/webm", Data: []byte{0x1a, 0x45, 0xdf, 0xa3}},
			},
		},
		{
			name: "empty message",
			bundle: Bundle{
				V:         BundleVersion,
				CreatedAt: createdAt,
				Name:      "Bob",
				Birthday:  "1990-05-05",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeBundle(&tt.bundle)
			require.NoError(t, err)

			got, err := DecodeBundle(data)
			require.NoError(t, err)
			assert.Equal(t, &tt.bundle, got)
		})
	}
}

func TestBundle_WireFieldNames(t *testing.T) {
	b := Bundle{
		V:         BundleVersion,
		CreatedAt: time.Date(2025, 8, 29, 12, 30, 0, 0, time.UTC),
		Name:      "Bob",
		Birthday:  "1990-05-05",
		Message:   "hi",
		Audio:     &Audio{Mime: "audio/webm", Data: []byte("xx")},
	}

	data, err := EncodeBundle(&b)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Contains(t, m, "v")
	assert.Contains(t, m, "createdAt")
	assert.Contains(t, m, "name")
	assert.Contains(t, m, "birthday")
	assert.Contains(t, m, "message")

	audio, ok := m["audio"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, audio, "mime")
	// binary payload travels as base64 text inside the envelope
	assert.Equal(t, "eHg=", audio["b64"])
}

func TestDecodeBundle_Malformed(t *testing.T) {
	_, err := DecodeBundle([]byte("definitely not json"))
	require.ErrorIs(t, err, common.ErrDecode)
}

func TestDecodeBundle_UnknownVersion(t *testing.T) {
	_, err := DecodeBundle([]byte(`{"v":7,"name":"Bob"}`))
	require.ErrorIs(t, err, common.ErrUnsupportedVersion)
}

package filex

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Hana", want: "Hana"},
		{name: "inner spaces become dashes", input: "Hana Tanaka", want: "Hana-Tanaka"},
		{name: "surrounding whitespace trimmed", input: "  Bob  ", want: "Bob"},
		{name: "special characters stripped", input: "a/b\\c:d*e", want: "abcde"},
		{name: "date survives", input: "1990-05-05", want: "1990-05-05"},
		{name: "dots and underscores survive", input: "a_b.c", want: "a_b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeName(tt.input))
		})
	}
}

func TestArtifactName(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	got := ArtifactName("Hana Tanaka", "1990-05-05", now)
	assert.Equal(t, "CTTF-Hana-Tanaka_1990-05-05_1700000000000.enc.json", got)
}

func TestStore_WriteRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "artifacts")
	s := NewStore(dir)

	path, err := s.Write("capsule.enc.json", []byte(`{"v":1}`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "capsule.enc.json"), path)

	data, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), data)
}

func TestStore_ReadMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.Read(filepath.Join(t.TempDir(), "nope.enc.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package shared

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeShortCode_Format(t *testing.T) {
	re := regexp.MustCompile(`^[ABCDEFGHJKMNPQRSTUVWXYZ23456789]{3}-[ABCDEFGHJKMNPQRSTUVWXYZ23456789]{3}$`)

	for i := 0; i < 100; i++ {
		code, err := MakeShortCode()
		require.NoError(t, err)
		assert.Regexp(t, re, code)

		// the alphabet excludes easily-confused characters
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "L")
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "1")
	}
}

func TestMakeShortCode_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := MakeShortCode()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 50 draws from a ~880M space should essentially never collide down to one
	assert.Greater(t, len(seen), 1)
}

func TestWipeByteArray(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	WipeByteArray(b)
	assert.Equal(t, []byte{0, 0, 0, 0}, b)

	WipeByteArray(nil) // must not panic
}

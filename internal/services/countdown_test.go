package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdown(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		deliverAt time.Time
		want      Remaining
	}{
		{
			name:      "days hours minutes seconds",
			deliverAt: now.Add(3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second),
			want:      Remaining{Days: 3, Hours: 4, Minutes: 5, Seconds: 6},
		},
		{
			name:      "under a minute",
			deliverAt: now.Add(42 * time.Second),
			want:      Remaining{Seconds: 42},
		},
		{
			name:      "exactly due",
			deliverAt: now,
			want:      Remaining{},
		},
		{
			name:      "past due clamps to zero",
			deliverAt: now.Add(-time.Hour),
			want:      Remaining{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Countdown(now, tt.deliverAt))
		})
	}
}

func TestRemaining_String(t *testing.T) {
	assert.Equal(t, "3d 04:05:06", Remaining{Days: 3, Hours: 4, Minutes: 5, Seconds: 6}.String())
	assert.Equal(t, "0d 00:00:00", Remaining{}.String())
}

func TestRemaining_IsZero(t *testing.T) {
	assert.True(t, Remaining{}.IsZero())
	assert.False(t, Remaining{Seconds: 1}.IsZero())
}

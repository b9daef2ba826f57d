package debugtools

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"midnight", time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), "00:00:00"},
		{"zero padded", time.Date(2024, 1, 1, 9, 5, 3, 0, time.Local), "09:05:03"},
		{"afternoon", time.Date(2024, 1, 1, 13, 45, 59, 0, time.Local), "13:45:59"},
		{"last second", time.Date(2024, 12, 31, 23, 59, 59, 999999999, time.Local), "23:59:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Timestamp(tt.at))
		})
	}
}

func TestTimestampNow(t *testing.T) {
	require.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`), Timestamp(time.Now()))
}

package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthDay(t *testing.T) {
	assert.Equal(t, "0105", MonthDay(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1231", MonthDay(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "0310", MonthDay(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)))
}

func TestParseISODate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-01-05", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"2025-01-05T10:30:00", time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC)},
		{"2025-01-05T10:30:00Z", time.Date(2025, 1, 5, 10, 30, 0, 0, time.UTC)},
		{" 2025-01-05 08:00:00 ", time.Date(2025, 1, 5, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseISODate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	_, err := ParseISODate("05-Jan-25")
	assert.Error(t, err)
}

func TestIsDateNumFmt(t *testing.T) {
	for _, id := range []int{14, 15, 17, 22, 45, 47} {
		assert.True(t, IsDateNumFmt(id), "id %d", id)
	}
	for _, id := range []int{0, 1, 2, 9, 10, 49} {
		assert.False(t, IsDateNumFmt(id), "id %d", id)
	}
}

func TestIsDateFormatCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"dd-mmm-yy", true},
		{"dd-mmm", true},
		{"yyyy/mm/dd hh:mm", true},
		{"[$-409]d-mmm-yy;@", true},
		{"m/d/yyyy", true},
		{"General", false},
		{"@", false},
		{"0.00", false},
		{"#,##0", false},
		{`0.0 "days"`, false},
		{"[Red]0.00", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateFormatCode(tt.code))
		})
	}
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "05 Jan 2025", CleanDateString("  05   Jan\t2025 "))
}

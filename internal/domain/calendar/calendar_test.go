package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	cases := map[string]string{
		"9:00":   "09:00",
		"09:05":  "09:05",
		" 7:3 ":  "",
		"23:59":  "23:59",
		"24:00":  "",
		"nueve":  "",
		"18:30 ": "18:30",
	}
	for in, want := range cases {
		got, ok := NormalizeTime(in)
		assert.Equal(t, want != "", ok, in)
		assert.Equal(t, want, got, in)
	}
}

func TestMonthsBetween(t *testing.T) {
	from := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 12, MonthsBetween(from, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 11, MonthsBetween(from, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, MonthsBetween(from, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
}

package calendar

import (
	"strings"
	"time"
)

const (
	// DateLayout es el formato de fecha local (día calendario, sin hora).
	DateLayout = "2006-01-02"
	// TimeLayout es la hora local HH:MM.
	TimeLayout = "15:04"
)

// ValidDate reporta si s es YYYY-MM-DD.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(s))
	return err == nil
}

// ValidOptionalDate acepta nil.
func ValidOptionalDate(s *string) bool {
	return s == nil || ValidDate(*s)
}

// ValidTime reporta si s es HH:MM.
func ValidTime(s string) bool {
	_, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	return err == nil
}

// NormalizeTime devuelve la hora como HH:MM con ceros ("9:05" -> "09:05").
func NormalizeTime(s string) (string, bool) {
	t, err := time.Parse(TimeLayout, strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return t.Format(TimeLayout), true
}

// MonthsBetween cuenta meses completos entre from y to (0 si to es anterior).
func MonthsBetween(from, to time.Time) int {
	if to.Before(from) {
		return 0
	}
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

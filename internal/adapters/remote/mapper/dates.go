package mapper

import (
	"strings"
	"time"

	"pet-care-companion/internal/domain/calendar"
)

// DefaultTime es la hora que se usa cuando un recordatorio no tiene hora.
const DefaultTime = "09:00"

// InstantLayout es el formato de instante que se envía al backend (siempre UTC).
const InstantLayout = "2006-01-02T15:04:05Z"

// layouts aceptados al leer; el backend no es consistente.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	calendar.DateLayout,
}

func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateFromWire extrae el día calendario en UTC. Nunca en la zona local:
// 2024-03-01T23:00:00Z es 2024-03-01 en cualquier máquina.
func DateFromWire(s *string) *string {
	if s == nil {
		return nil
	}
	t, ok := parseInstant(*s)
	if !ok {
		return nil
	}
	d := t.UTC().Format(calendar.DateLayout)
	return &d
}

// TimeFromWire devuelve HH:MM en UTC.
func TimeFromWire(s *string) *string {
	if s == nil {
		return nil
	}
	t, ok := parseInstant(*s)
	if !ok {
		return nil
	}
	hm := t.UTC().Format(calendar.TimeLayout)
	return &hm
}

// InstantFromWire parsea un timestamp completo.
func InstantFromWire(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := parseInstant(*s)
	if !ok {
		return nil
	}
	t = t.UTC()
	return &t
}

// InstantToWire combina fecha y hora (DefaultTime si falta) en un instante UTC.
// Fecha inválida => "" (el servicio valida antes de llegar acá).
func InstantToWire(date string, hm *string) string {
	d, err := time.Parse(calendar.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return ""
	}
	clock := DefaultTime
	if hm != nil && calendar.ValidTime(*hm) {
		clock = strings.TrimSpace(*hm)
	}
	c, _ := time.Parse(calendar.TimeLayout, clock)
	t := time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC)
	return t.Format(InstantLayout)
}

func dateToWire(date string) *string {
	s := InstantToWire(date, nil)
	if s == "" {
		return nil
	}
	return &s
}

func optionalDateToWire(date *string) *string {
	if date == nil {
		return nil
	}
	return dateToWire(*date)
}

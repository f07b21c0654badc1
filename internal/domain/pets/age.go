package pets

import (
	"fmt"
	"strings"
	"time"

	"pet-care-companion/internal/domain/calendar"
)

// CalculateAge devuelve la edad legible a partir de la fecha de nacimiento (YYYY-MM-DD).
// Años enteros desde los 12 meses; antes, meses. Singular solo para 1.
// Fecha vacía o inválida => "".
func CalculateAge(birthDate string, now time.Time) string {
	bd, err := time.Parse(calendar.DateLayout, strings.TrimSpace(birthDate))
	if err != nil {
		return ""
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	months := calendar.MonthsBetween(bd, today)
	if months >= 12 {
		years := months / 12
		if years == 1 {
			return "1 año"
		}
		return fmt.Sprintf("%d años", years)
	}
	if months == 1 {
		return "1 mes"
	}
	return fmt.Sprintf("%d meses", months)
}

func withAge(p Pet, now time.Time) Pet {
	p.Age = ""
	if p.BirthDate != nil {
		p.Age = CalculateAge(*p.BirthDate, now)
	}
	return p
}

package consultations

import (
	"time"

	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/vocabulary"
)

// CreatorRole indica quién registró la consulta.
type CreatorRole string

const (
	CreatorOwner        CreatorRole = "owner"
	CreatorVeterinarian CreatorRole = "veterinarian"
)

// Record es una consulta clínica de una mascota.
// Vaccinations/Treatments solo vienen cuando se crearon junto con la consulta.
type Record struct {
	ID    string `json:"id,omitempty"`
	PetID string `json:"pet_id"`

	Type  vocabulary.ConsultationType `json:"type"`
	Title string                      `json:"title"`
	Date  string                      `json:"date"`

	Veterinarian *string `json:"veterinarian,omitempty"`
	ClinicName   *string `json:"clinic_name,omitempty"`
	Findings     *string `json:"findings,omitempty"`
	Diagnosis    *string `json:"diagnosis,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
	NextSteps    *string `json:"next_steps,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	Cost            *float64 `json:"cost,omitempty"`
	NextAppointment *string  `json:"next_appointment,omitempty"`

	CreatedBy *CreatorRole `json:"created_by,omitempty"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`

	Vaccinations []vaccinations.Vaccination `json:"vaccinations,omitempty"`
	Treatments   []treatments.Treatment     `json:"treatments,omitempty"`
}

// CreateInput es el borrador de una consulta con sus sub-registros.
type CreateInput struct {
	Record       Record                     `json:"record"`
	Vaccinations []vaccinations.Vaccination `json:"vaccinations"`
	Treatments   []treatments.Treatment     `json:"treatments"`
}

type Patch struct {
	Type            *vocabulary.ConsultationType `json:"type"`
	Title           *string                      `json:"title"`
	Date            *string                      `json:"date"`
	Veterinarian    *string                      `json:"veterinarian"`
	ClinicName      *string                      `json:"clinic_name"`
	Findings        *string                      `json:"findings"`
	Diagnosis       *string                      `json:"diagnosis"`
	Prescription    *string                      `json:"prescription"`
	NextSteps       *string                      `json:"next_steps"`
	Notes           *string                      `json:"notes"`
	Cost            *float64                     `json:"cost"`
	NextAppointment *string                      `json:"next_appointment"`
}

func (p Patch) Apply(r Record) Record {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Veterinarian != nil {
		r.Veterinarian = p.Veterinarian
	}
	if p.ClinicName != nil {
		r.ClinicName = p.ClinicName
	}
	if p.Findings != nil {
		r.Findings = p.Findings
	}
	if p.Diagnosis != nil {
		r.Diagnosis = p.Diagnosis
	}
	if p.Prescription != nil {
		r.Prescription = p.Prescription
	}
	if p.NextSteps != nil {
		r.NextSteps = p.NextSteps
	}
	if p.Notes != nil {
		r.Notes = p.Notes
	}
	if p.Cost != nil {
		r.Cost = p.Cost
	}
	if p.NextAppointment != nil {
		r.NextAppointment = p.NextAppointment
	}
	return r
}

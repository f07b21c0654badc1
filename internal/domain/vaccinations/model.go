package vaccinations

import "pet-care-companion/internal/vocabulary"

// Vaccination pertenece a exactamente una mascota.
// Fechas locales en formato YYYY-MM-DD; opcionales en nil = "no informado".
type Vaccination struct {
	ID    string `json:"id,omitempty"`
	PetID string `json:"pet_id"`

	Name            vocabulary.VaccineName `json:"name"`
	ApplicationDate string                 `json:"application_date"`
	NextDueDate     *string                `json:"next_due_date,omitempty"`

	BatchNumber  *string `json:"batch_number,omitempty"`
	Veterinarian *string `json:"veterinarian,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// Patch: punteros nil = no tocar.
type Patch struct {
	Name            *vocabulary.VaccineName `json:"name"`
	ApplicationDate *string                 `json:"application_date"`
	NextDueDate     *string                 `json:"next_due_date"`
	BatchNumber     *string                 `json:"batch_number"`
	Veterinarian    *string                 `json:"veterinarian"`
	Notes           *string                 `json:"notes"`
}

// Apply devuelve v con los campos presentes en p.
func (p Patch) Apply(v Vaccination) Vaccination {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.ApplicationDate != nil {
		v.ApplicationDate = *p.ApplicationDate
	}
	if p.NextDueDate != nil {
		v.NextDueDate = p.NextDueDate
	}
	if p.BatchNumber != nil {
		v.BatchNumber = p.BatchNumber
	}
	if p.Veterinarian != nil {
		v.Veterinarian = p.Veterinarian
	}
	if p.Notes != nil {
		v.Notes = p.Notes
	}
	return v
}

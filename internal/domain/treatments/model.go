package treatments

// Treatment pertenece a una mascota. Category es texto libre (antiparasitario, antibiótico, ...).
type Treatment struct {
	ID    string `json:"id,omitempty"`
	PetID string `json:"pet_id"`

	Category   *string `json:"category,omitempty"`
	Medication string  `json:"medication"`

	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`

	Dosage       *string `json:"dosage,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Veterinarian *string `json:"veterinarian,omitempty"`
}

type Patch struct {
	Category     *string `json:"category"`
	Medication   *string `json:"medication"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Dosage       *string `json:"dosage"`
	Instructions *string `json:"instructions"`
	Veterinarian *string `json:"veterinarian"`
}

func (p Patch) Apply(t Treatment) Treatment {
	if p.Category != nil {
		t.Category = p.Category
	}
	if p.Medication != nil {
		t.Medication = *p.Medication
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		t.EndDate = p.EndDate
	}
	if p.Dosage != nil {
		t.Dosage = p.Dosage
	}
	if p.Instructions != nil {
		t.Instructions = p.Instructions
	}
	if p.Veterinarian != nil {
		t.Veterinarian = p.Veterinarian
	}
	return t
}

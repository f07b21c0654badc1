package vaccinations

import "context"

// Remote es el backend (real o demo).
type Remote interface {
	ListByPet(ctx context.Context, petID string) ([]Vaccination, error)
	Create(ctx context.Context, v Vaccination) (Vaccination, error)
	Update(ctx context.Context, id string, p Patch) (Vaccination, error)
	Delete(ctx context.Context, id string) error
}

// Store es la porción del estado local que usa este módulo.
type Store interface {
	SetPetVaccinations(petID string, items []Vaccination)
	AddVaccination(v Vaccination)
	UpdateVaccination(id string, fn func(*Vaccination))
	DeleteVaccination(id string)
	Vaccination(id string) (Vaccination, bool)
}

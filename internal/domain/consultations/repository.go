package consultations

import "context"

type Remote interface {
	ListByPet(ctx context.Context, petID string) ([]Record, error)
	// Create envía la consulta y sus sub-registros en un único request.
	// El backend no devuelve los hijos creados.
	Create(ctx context.Context, in CreateInput) (Record, error)
	Update(ctx context.Context, id string, p Patch) (Record, error)
	Delete(ctx context.Context, id string) error
}

type Store interface {
	SetPetConsultations(petID string, items []Record)
	AddConsultation(r Record)
	UpdateConsultation(id string, fn func(*Record))
	DeleteConsultation(id string)
	Consultation(id string) (Record, bool)
}

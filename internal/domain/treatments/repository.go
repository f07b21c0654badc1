package treatments

import "context"

type Remote interface {
	ListByPet(ctx context.Context, petID string) ([]Treatment, error)
	Create(ctx context.Context, t Treatment) (Treatment, error)
	Update(ctx context.Context, id string, p Patch) (Treatment, error)
	Delete(ctx context.Context, id string) error
}

type Store interface {
	SetPetTreatments(petID string, items []Treatment)
	AddTreatment(t Treatment)
	UpdateTreatment(id string, fn func(*Treatment))
	DeleteTreatment(id string)
	Treatment(id string) (Treatment, bool)
}

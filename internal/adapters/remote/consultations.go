package remote

import (
	"context"

	"pet-care-companion/internal/adapters/remote/mapper"
	"pet-care-companion/internal/domain/consultations"
)

type Consultations struct {
	gw Gateway
	m  *mapper.Mapper
}

func (a *Consultations) ListByPet(ctx context.Context, petID string) ([]consultations.Record, error) {
	var wire []mapper.Consultation
	if err := a.gw.Get(ctx, resourceConsultations, byPet(petID)).Decode(&wire); err != nil {
		return nil, err
	}
	out := make([]consultations.Record, 0, len(wire))
	for _, w := range wire {
		out = append(out, a.m.ConsultationToLocal(w, petID))
	}
	return out, nil
}

// Create manda la consulta con sus vacunas/tratamientos en un solo POST.
func (a *Consultations) Create(ctx context.Context, in consultations.CreateInput) (consultations.Record, error) {
	var w mapper.Consultation
	if err := a.gw.Post(ctx, resourceConsultations, a.m.ConsultationToRemote(in)).Decode(&w); err != nil {
		return consultations.Record{}, err
	}
	return a.m.ConsultationToLocal(w, in.Record.PetID), nil
}

func (a *Consultations) Update(ctx context.Context, id string, p consultations.Patch) (consultations.Record, error) {
	var w mapper.Consultation
	ok, err := decodeOptional(a.gw.Put(ctx, path(resourceConsultations, id), a.m.ConsultationPatchToRemote(p)), &w)
	if err != nil || !ok {
		return consultations.Record{}, err
	}
	return a.m.ConsultationToLocal(w, ""), nil
}

func (a *Consultations) Delete(ctx context.Context, id string) error {
	return a.gw.Delete(ctx, path(resourceConsultations, id)).Err()
}

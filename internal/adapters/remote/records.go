package remote

import (
	"context"

	"pet-care-companion/internal/adapters/remote/mapper"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

type Vaccinations struct {
	gw Gateway
	m  *mapper.Mapper
}

func (a *Vaccinations) ListByPet(ctx context.Context, petID string) ([]vaccinations.Vaccination, error) {
	var wire []mapper.Vaccine
	if err := a.gw.Get(ctx, resourceVaccines, byPet(petID)).Decode(&wire); err != nil {
		return nil, err
	}
	out := make([]vaccinations.Vaccination, 0, len(wire))
	for _, w := range wire {
		out = append(out, a.m.VaccinationToLocal(w, petID))
	}
	return out, nil
}

func (a *Vaccinations) Create(ctx context.Context, v vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	var w mapper.Vaccine
	if err := a.gw.Post(ctx, resourceVaccines, a.m.VaccinationToRemote(v)).Decode(&w); err != nil {
		return vaccinations.Vaccination{}, err
	}
	return a.m.VaccinationToLocal(w, v.PetID), nil
}

func (a *Vaccinations) Update(ctx context.Context, id string, p vaccinations.Patch) (vaccinations.Vaccination, error) {
	var w mapper.Vaccine
	ok, err := decodeOptional(a.gw.Put(ctx, path(resourceVaccines, id), a.m.VaccinationPatchToRemote(p)), &w)
	if err != nil || !ok {
		return vaccinations.Vaccination{}, err
	}
	return a.m.VaccinationToLocal(w, ""), nil
}

func (a *Vaccinations) Delete(ctx context.Context, id string) error {
	return a.gw.Delete(ctx, path(resourceVaccines, id)).Err()
}

type Treatments struct {
	gw Gateway
	m  *mapper.Mapper
}

func (a *Treatments) ListByPet(ctx context.Context, petID string) ([]treatments.Treatment, error) {
	var wire []mapper.Treatment
	if err := a.gw.Get(ctx, resourceTreatments, byPet(petID)).Decode(&wire); err != nil {
		return nil, err
	}
	out := make([]treatments.Treatment, 0, len(wire))
	for _, w := range wire {
		out = append(out, a.m.TreatmentToLocal(w, petID))
	}
	return out, nil
}

func (a *Treatments) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	var w mapper.Treatment
	if err := a.gw.Post(ctx, resourceTreatments, a.m.TreatmentToRemote(t)).Decode(&w); err != nil {
		return treatments.Treatment{}, err
	}
	return a.m.TreatmentToLocal(w, t.PetID), nil
}

func (a *Treatments) Update(ctx context.Context, id string, p treatments.Patch) (treatments.Treatment, error) {
	var w mapper.Treatment
	ok, err := decodeOptional(a.gw.Put(ctx, path(resourceTreatments, id), a.m.TreatmentPatchToRemote(p)), &w)
	if err != nil || !ok {
		return treatments.Treatment{}, err
	}
	return a.m.TreatmentToLocal(w, ""), nil
}

func (a *Treatments) Delete(ctx context.Context, id string) error {
	return a.gw.Delete(ctx, path(resourceTreatments, id)).Err()
}

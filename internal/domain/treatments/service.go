package treatments

import (
	"context"
	"fmt"
	"strings"

	"pet-care-companion/internal/domain/calendar"
	"pet-care-companion/internal/domain/reconcile"
)

var ErrInvalidInput = reconcile.ErrInvalidInput

type Service struct {
	remote Remote
	store  Store
	exec   *reconcile.Executor
}

func NewService(remote Remote, store Store, exec *reconcile.Executor) *Service {
	if exec == nil {
		exec = reconcile.NewExecutor(nil, nil, nil)
	}
	return &Service{remote: remote, store: store, exec: exec}
}

func Validate(t Treatment, requirePet bool) error {
	if requirePet && strings.TrimSpace(t.PetID) == "" {
		return fmt.Errorf("%w: pet_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(t.Medication) == "" {
		return fmt.Errorf("%w: medication is required", ErrInvalidInput)
	}
	if !calendar.ValidDate(t.StartDate) {
		return fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(t.EndDate) {
		return fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if t.EndDate != nil && *t.EndDate < t.StartDate {
		return fmt.Errorf("%w: end_date before start_date", ErrInvalidInput)
	}
	return nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) []Treatment {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []Treatment{}
	}
	items, ok := reconcile.ReadAll(ctx, s.exec, "treatments.list", func(ctx context.Context) ([]Treatment, error) {
		return s.remote.ListByPet(ctx, petID)
	})
	if ok {
		s.store.SetPetTreatments(petID, items)
	}
	return items
}

func (s *Service) Create(ctx context.Context, t Treatment) (Treatment, error) {
	t.ID = ""
	t.PetID = strings.TrimSpace(t.PetID)
	t.Medication = strings.TrimSpace(t.Medication)
	if t.Category != nil {
		c := strings.TrimSpace(*t.Category)
		t.Category = &c
	}
	if err := Validate(t, true); err != nil {
		return Treatment{}, err
	}

	var created Treatment
	_, err := s.exec.Mutate(ctx, reconcile.OpCreateTreatment, t.PetID, func(ctx context.Context) error {
		out, err := s.remote.Create(ctx, t)
		created = out
		return err
	}, nil)
	if err != nil {
		return Treatment{}, err
	}

	s.store.AddTreatment(created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Treatment{}, ErrInvalidInput
	}
	if p.StartDate != nil && !calendar.ValidDate(*p.StartDate) {
		return Treatment{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(p.EndDate) {
		return Treatment{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	var updated Treatment
	_, err := s.exec.Mutate(ctx, reconcile.OpUpdateTreatment, id, func(ctx context.Context) error {
		out, err := s.remote.Update(ctx, id, p)
		updated = out
		return err
	}, func() {
		s.store.UpdateTreatment(id, func(t *Treatment) { *t = p.Apply(*t) })
	})
	if err != nil {
		return Treatment{}, err
	}

	if updated.ID != "" {
		s.store.UpdateTreatment(id, func(t *Treatment) { *t = updated })
		return updated, nil
	}
	s.store.UpdateTreatment(id, func(t *Treatment) { *t = p.Apply(*t) })
	if cur, ok := s.store.Treatment(id); ok {
		return cur, nil
	}
	return p.Apply(Treatment{ID: id}), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	_, err := s.exec.Mutate(ctx, reconcile.OpDeleteTreatment, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	}, func() {
		s.store.DeleteTreatment(id)
	})
	if err != nil {
		return err
	}
	s.store.DeleteTreatment(id)
	return nil
}

package vaccinations

import (
	"context"
	"fmt"
	"strings"

	"pet-care-companion/internal/domain/calendar"
	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/vocabulary"
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

// Validate revisa un borrador. requirePet=false para vacunas anidadas en un alta.
func Validate(v Vaccination, requirePet bool) error {
	if requirePet && strings.TrimSpace(v.PetID) == "" {
		return fmt.Errorf("%w: pet_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(string(v.Name)) == "" {
		return fmt.Errorf("%w: vaccine name is required", ErrInvalidInput)
	}
	if !calendar.ValidDate(v.ApplicationDate) {
		return fmt.Errorf("%w: application_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(v.NextDueDate) {
		return fmt.Errorf("%w: next_due_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return nil
}

// Normalize deja el nombre dentro del catálogo cerrado.
func Normalize(v Vaccination) Vaccination {
	v.Name = vocabulary.MatchVaccine(vocabulary.VaccineTable, string(v.Name))
	return v
}

// ListByPet nunca falla: si el backend no responde, devuelve vacío.
func (s *Service) ListByPet(ctx context.Context, petID string) []Vaccination {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []Vaccination{}
	}
	items, ok := reconcile.ReadAll(ctx, s.exec, "vaccinations.list", func(ctx context.Context) ([]Vaccination, error) {
		return s.remote.ListByPet(ctx, petID)
	})
	if ok {
		s.store.SetPetVaccinations(petID, items)
	}
	return items
}

func (s *Service) Create(ctx context.Context, v Vaccination) (Vaccination, error) {
	v.ID = ""
	v.PetID = strings.TrimSpace(v.PetID)
	if err := Validate(v, true); err != nil {
		return Vaccination{}, err
	}
	v = Normalize(v)

	var created Vaccination
	_, err := s.exec.Mutate(ctx, reconcile.OpCreateVaccination, v.PetID, func(ctx context.Context) error {
		out, err := s.remote.Create(ctx, v)
		created = out
		return err
	}, nil)
	if err != nil {
		return Vaccination{}, err
	}

	s.store.AddVaccination(created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Vaccination, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vaccination{}, ErrInvalidInput
	}
	if p.ApplicationDate != nil && !calendar.ValidDate(*p.ApplicationDate) {
		return Vaccination{}, fmt.Errorf("%w: application_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(p.NextDueDate) {
		return Vaccination{}, fmt.Errorf("%w: next_due_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if p.Name != nil {
		if strings.TrimSpace(string(*p.Name)) == "" {
			return Vaccination{}, fmt.Errorf("%w: vaccine name is required", ErrInvalidInput)
		}
		n := vocabulary.MatchVaccine(vocabulary.VaccineTable, string(*p.Name))
		p.Name = &n
	}

	var updated Vaccination
	_, err := s.exec.Mutate(ctx, reconcile.OpUpdateVaccination, id, func(ctx context.Context) error {
		out, err := s.remote.Update(ctx, id, p)
		updated = out
		return err
	}, func() {
		s.store.UpdateVaccination(id, func(v *Vaccination) { *v = p.Apply(*v) })
	})
	if err != nil {
		return Vaccination{}, err
	}

	if updated.ID != "" {
		s.store.UpdateVaccination(id, func(v *Vaccination) { *v = updated })
		return updated, nil
	}
	// El backend no devolvió la entidad: aplicamos el patch sobre la copia local.
	s.store.UpdateVaccination(id, func(v *Vaccination) { *v = p.Apply(*v) })
	if cur, ok := s.store.Vaccination(id); ok {
		return cur, nil
	}
	return p.Apply(Vaccination{ID: id}), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	_, err := s.exec.Mutate(ctx, reconcile.OpDeleteVaccination, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	}, func() {
		s.store.DeleteVaccination(id)
	})
	if err != nil {
		return err
	}
	s.store.DeleteVaccination(id)
	return nil
}

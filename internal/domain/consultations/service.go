package consultations

import (
	"context"
	"fmt"
	"strings"

	"pet-care-companion/internal/domain/calendar"
	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
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

func (s *Service) ListByPet(ctx context.Context, petID string) []Record {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []Record{}
	}
	items, ok := reconcile.ReadAll(ctx, s.exec, "consultations.list", func(ctx context.Context) ([]Record, error) {
		return s.remote.ListByPet(ctx, petID)
	})
	if ok {
		s.store.SetPetConsultations(petID, items)
	}
	return items
}

func validate(in CreateInput) error {
	r := in.Record
	if strings.TrimSpace(r.PetID) == "" {
		return fmt.Errorf("%w: pet_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !calendar.ValidDate(r.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(r.NextAppointment) {
		return fmt.Errorf("%w: next_appointment must be YYYY-MM-DD", ErrInvalidInput)
	}
	if r.Cost != nil && *r.Cost < 0 {
		return fmt.Errorf("%w: cost must be >= 0", ErrInvalidInput)
	}
	for i, v := range in.Vaccinations {
		if err := vaccinations.Validate(v, false); err != nil {
			return fmt.Errorf("vaccinations[%d]: %w", i, err)
		}
	}
	for i, t := range in.Treatments {
		if err := treatments.Validate(t, false); err != nil {
			return fmt.Errorf("treatments[%d]: %w", i, err)
		}
	}
	return nil
}

// Create es strict: costo, ids y sub-registros tienen que reflejar al servidor.
// Los hijos del resultado se reconstruyen desde el request (el backend no los devuelve).
func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	in.Record.ID = ""
	in.Record.PetID = strings.TrimSpace(in.Record.PetID)
	in.Record.Title = strings.TrimSpace(in.Record.Title)
	in.Record.Type = vocabulary.ParseConsultationType(string(in.Record.Type))
	if err := validate(in); err != nil {
		return Record{}, err
	}
	for i := range in.Vaccinations {
		in.Vaccinations[i] = vaccinations.Normalize(in.Vaccinations[i])
		in.Vaccinations[i].ID = ""
	}
	for i := range in.Treatments {
		in.Treatments[i].ID = ""
	}

	var created Record
	_, err := s.exec.Mutate(ctx, reconcile.OpCreateConsultation, in.Record.PetID, func(ctx context.Context) error {
		out, err := s.remote.Create(ctx, in)
		created = out
		return err
	}, nil)
	if err != nil {
		return Record{}, err
	}
	if created.PetID == "" {
		created.PetID = in.Record.PetID
	}

	created.Vaccinations = attachVaccinations(in.Vaccinations, created.PetID)
	created.Treatments = attachTreatments(in.Treatments, created.PetID)

	s.store.AddConsultation(created)
	return created, nil
}

func attachVaccinations(items []vaccinations.Vaccination, petID string) []vaccinations.Vaccination {
	if len(items) == 0 {
		return nil
	}
	out := make([]vaccinations.Vaccination, len(items))
	for i, v := range items {
		v.PetID = petID
		out[i] = v
	}
	return out
}

func attachTreatments(items []treatments.Treatment, petID string) []treatments.Treatment {
	if len(items) == 0 {
		return nil
	}
	out := make([]treatments.Treatment, len(items))
	for i, t := range items {
		t.PetID = petID
		out[i] = t
	}
	return out
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return Record{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if p.Date != nil && !calendar.ValidDate(*p.Date) {
		return Record{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(p.NextAppointment) {
		return Record{}, fmt.Errorf("%w: next_appointment must be YYYY-MM-DD", ErrInvalidInput)
	}
	if p.Type != nil {
		t := vocabulary.ParseConsultationType(string(*p.Type))
		p.Type = &t
	}

	var updated Record
	_, err := s.exec.Mutate(ctx, reconcile.OpUpdateConsultation, id, func(ctx context.Context) error {
		out, err := s.remote.Update(ctx, id, p)
		updated = out
		return err
	}, func() {
		s.store.UpdateConsultation(id, func(r *Record) { *r = p.Apply(*r) })
	})
	if err != nil {
		return Record{}, err
	}

	if updated.ID != "" {
		s.store.UpdateConsultation(id, func(r *Record) {
			// los hijos anidados no vuelven en la respuesta; conservamos los locales
			updated.Vaccinations, updated.Treatments = r.Vaccinations, r.Treatments
			*r = updated
		})
		if cur, ok := s.store.Consultation(id); ok {
			return cur, nil
		}
		return updated, nil
	}
	s.store.UpdateConsultation(id, func(r *Record) { *r = p.Apply(*r) })
	if cur, ok := s.store.Consultation(id); ok {
		return cur, nil
	}
	return p.Apply(Record{ID: id}), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	_, err := s.exec.Mutate(ctx, reconcile.OpDeleteConsultation, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	}, func() {
		s.store.DeleteConsultation(id)
	})
	if err != nil {
		return err
	}
	s.store.DeleteConsultation(id)
	return nil
}

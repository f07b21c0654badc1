package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pet-care-companion/internal/domain/calendar"
	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

var (
	ErrInvalidInput = reconcile.ErrInvalidInput
	ErrNotFound     = reconcile.ErrNotFound
)

type Service struct {
	remote  Remote
	store   Store
	exec    *reconcile.Executor
	listers Listers
	now     func() time.Time
}

func NewService(remote Remote, store Store, exec *reconcile.Executor, listers Listers) *Service {
	if exec == nil {
		exec = reconcile.NewExecutor(nil, nil, nil)
	}
	return &Service{
		remote:  remote,
		store:   store,
		exec:    exec,
		listers: listers,
		now:     time.Now,
	}
}

// ListByOwner nunca falla: sin backend, lista vacía.
func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) []Pet {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []Pet{}
	}
	items, ok := reconcile.ReadAll(ctx, s.exec, "pets.list", func(ctx context.Context) ([]Pet, error) {
		return s.remote.ListByOwner(ctx, ownerUserID)
	})
	now := s.now()
	for i := range items {
		if items[i].OwnerUserID == "" {
			items[i].OwnerUserID = ownerUserID
		}
		items[i] = withAge(items[i], now)
	}
	if ok {
		s.store.SetPets(ownerUserID, items)
	}
	return items
}

// GetByID lee del backend; si falla, usa la copia local si existe.
func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	p, err := s.remote.GetByID(ctx, id)
	if err != nil {
		if cached, ok := s.store.Pet(id); ok {
			return withAge(cached, s.now()), nil
		}
		return Pet{}, err
	}
	p = withAge(p, s.now())
	if _, ok := s.store.Pet(id); ok {
		s.store.UpdatePet(id, func(cur *Pet) {
			// el backend no trae las colecciones; conservamos las locales
			p.Vaccinations, p.Treatments, p.Consultations = cur.Vaccinations, cur.Treatments, cur.Consultations
			p.Documents = mergeDocuments(p.Documents, cur.Documents)
			*cur = p
		})
	} else {
		s.store.AddPet(p)
	}
	return p, nil
}

func mergeDocuments(remote, local []Document) []Document {
	if len(remote) > 0 {
		return remote
	}
	return local
}

// Profile arma el perfil completo. Cada colección degrada a vacío por su cuenta.
func (s *Service) Profile(ctx context.Context, id string) (Profile, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}

	var (
		vacc  = []vaccinations.Vaccination{}
		treat = []treatments.Treatment{}
		cons  = []consultations.Record{}
		rem   = []reminders.Reminder{}
	)

	g, gctx := errgroup.WithContext(ctx)
	if s.listers.Vaccinations != nil {
		g.Go(func() error {
			vacc = s.listers.Vaccinations.ListByPet(gctx, p.ID)
			return nil
		})
	}
	if s.listers.Treatments != nil {
		g.Go(func() error {
			treat = s.listers.Treatments.ListByPet(gctx, p.ID)
			return nil
		})
	}
	if s.listers.Consultations != nil {
		g.Go(func() error {
			cons = s.listers.Consultations.ListByPet(gctx, p.ID)
			return nil
		})
	}
	if s.listers.Reminders != nil {
		g.Go(func() error {
			rem = s.listers.Reminders.ListByPet(gctx, p.ID)
			return nil
		})
	}
	_ = g.Wait()

	p.Vaccinations = vacc
	p.Treatments = treat
	p.Consultations = cons
	s.store.UpdatePet(p.ID, func(cur *Pet) {
		cur.Vaccinations, cur.Treatments, cur.Consultations = vacc, treat, cons
	})

	return Profile{Pet: p, Reminders: rem}, nil
}

func validatePet(p Pet) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	switch p.Species {
	case SpeciesDog, SpeciesCat:
	default:
		return fmt.Errorf("%w: species must be dog or cat", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(p.BirthDate) {
		return fmt.Errorf("%w: birth_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if err := validateWeight(p.Weight); err != nil {
		return err
	}
	return nil
}

func validateWeight(w *WeightRange) error {
	if w == nil {
		return nil
	}
	if w.Min < 0 || w.Max < 0 {
		return fmt.Errorf("%w: weight must be >= 0", ErrInvalidInput)
	}
	if w.Max != 0 && w.Max < w.Min {
		return fmt.Errorf("%w: weight max below min", ErrInvalidInput)
	}
	return nil
}

func normalizePet(p Pet) Pet {
	p.Name = strings.TrimSpace(p.Name)
	p.Breed = strings.TrimSpace(p.Breed)
	p.Species = Species(strings.ToLower(strings.TrimSpace(string(p.Species))))
	switch Sex(strings.ToLower(strings.TrimSpace(string(p.Sex)))) {
	case SexMale:
		p.Sex = SexMale
	case SexFemale:
		p.Sex = SexFemale
	default:
		p.Sex = SexUnknown
	}
	if p.Weight != nil {
		w := *p.Weight
		if strings.TrimSpace(w.Unit) == "" {
			w.Unit = DefaultWeightUnit
		}
		if w.Max == 0 {
			w.Max = w.Min
		}
		p.Weight = &w
	}
	return p
}

// Create es strict: la identidad la asigna el servidor.
// Las vacunas/tratamientos del resultado se reconstruyen desde el request.
func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}
	in.Pet = normalizePet(in.Pet)
	in.Pet.ID = ""
	in.Pet.OwnerUserID = ownerUserID
	if err := validatePet(in.Pet); err != nil {
		return Pet{}, err
	}
	for i := range in.Vaccinations {
		if err := vaccinations.Validate(in.Vaccinations[i], false); err != nil {
			return Pet{}, fmt.Errorf("vaccinations[%d]: %w", i, err)
		}
		in.Vaccinations[i] = vaccinations.Normalize(in.Vaccinations[i])
		in.Vaccinations[i].ID = ""
	}
	for i := range in.Treatments {
		if err := treatments.Validate(in.Treatments[i], false); err != nil {
			return Pet{}, fmt.Errorf("treatments[%d]: %w", i, err)
		}
		in.Treatments[i].ID = ""
	}

	var created Pet
	_, err := s.exec.Mutate(ctx, reconcile.OpCreatePet, ownerUserID, func(ctx context.Context) error {
		out, err := s.remote.Create(ctx, ownerUserID, in)
		created = out
		return err
	}, nil)
	if err != nil {
		return Pet{}, err
	}
	if created.ID == "" {
		return Pet{}, errors.New("create pet: backend returned no id")
	}
	if created.OwnerUserID == "" {
		created.OwnerUserID = ownerUserID
	}

	created.Vaccinations = make([]vaccinations.Vaccination, 0, len(in.Vaccinations))
	for _, v := range in.Vaccinations {
		v.PetID = created.ID
		created.Vaccinations = append(created.Vaccinations, v)
	}
	created.Treatments = make([]treatments.Treatment, 0, len(in.Treatments))
	for _, t := range in.Treatments {
		t.PetID = created.ID
		created.Treatments = append(created.Treatments, t)
	}
	created = withAge(created, s.now())

	s.store.AddPet(created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrInvalidInput
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return Pet{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if p.Species != nil && *p.Species != SpeciesDog && *p.Species != SpeciesCat {
		return Pet{}, fmt.Errorf("%w: species must be dog or cat", ErrInvalidInput)
	}
	if !calendar.ValidOptionalDate(p.BirthDate) {
		return Pet{}, fmt.Errorf("%w: birth_date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if err := validateWeight(p.Weight); err != nil {
		return Pet{}, err
	}

	var updated Pet
	_, err := s.exec.Mutate(ctx, reconcile.OpUpdatePet, id, func(ctx context.Context) error {
		out, err := s.remote.Update(ctx, id, p)
		updated = out
		return err
	}, func() {
		s.store.UpdatePet(id, func(cur *Pet) { *cur = p.Apply(*cur) })
	})
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	if updated.ID != "" {
		s.store.UpdatePet(id, func(cur *Pet) {
			updated.Vaccinations, updated.Treatments, updated.Consultations = cur.Vaccinations, cur.Treatments, cur.Consultations
			updated.Documents = mergeDocuments(updated.Documents, cur.Documents)
			*cur = withAge(updated, now)
		})
	} else {
		s.store.UpdatePet(id, func(cur *Pet) { *cur = withAge(p.Apply(*cur), now) })
	}
	if cur, ok := s.store.Pet(id); ok {
		return cur, nil
	}
	if updated.ID != "" {
		return withAge(updated, now), nil
	}
	return withAge(p.Apply(Pet{ID: id}), now), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	_, err := s.exec.Mutate(ctx, reconcile.OpDeletePet, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	}, func() {
		s.store.DeletePet(id)
	})
	if err != nil {
		return err
	}
	s.store.DeletePet(id)
	return nil
}

func (s *Service) UploadDocument(ctx context.Context, petID string, doc DocumentUpload) (Document, error) {
	petID = strings.TrimSpace(petID)
	doc.Name = strings.TrimSpace(doc.Name)
	if petID == "" {
		return Document{}, fmt.Errorf("%w: pet_id is required", ErrInvalidInput)
	}
	if doc.Name == "" || doc.Body == nil {
		return Document{}, fmt.Errorf("%w: file is required", ErrInvalidInput)
	}

	var uploaded Document
	_, err := s.exec.Mutate(ctx, reconcile.OpUploadPetDoc, petID, func(ctx context.Context) error {
		out, err := s.remote.UploadDocument(ctx, petID, doc)
		uploaded = out
		return err
	}, nil)
	if err != nil {
		return Document{}, err
	}
	if uploaded.PetID == "" {
		uploaded.PetID = petID
	}
	if uploaded.Name == "" {
		uploaded.Name = doc.Name
	}

	s.store.UpdatePet(petID, func(cur *Pet) {
		cur.Documents = append(cur.Documents, uploaded)
	})
	return uploaded, nil
}

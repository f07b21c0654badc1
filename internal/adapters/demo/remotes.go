package demo

import (
	"context"
	"io"
	"strings"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

// ===== Pets =====

type Pets struct{ b *Backend }

func (r *Pets) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seedOwner(ownerUserID)
	out := make([]pets.Pet, 0)
	for _, p := range b.pets {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	sortByInsertion(b, out, func(p pets.Pet) string { return p.ID })
	return out, nil
}

func (r *Pets) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	b := r.b
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.pets[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	p.Documents = append([]pets.Document(nil), b.documents[id]...)
	return p, nil
}

func (r *Pets) Create(ctx context.Context, ownerUserID string, in pets.CreateInput) (pets.Pet, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	p := in.Pet
	p.ID = b.id()
	p.OwnerUserID = ownerUserID
	p.Vaccinations, p.Treatments, p.Consultations = nil, nil, nil
	b.pets[p.ID] = p

	for _, v := range in.Vaccinations {
		v.ID, v.PetID = b.id(), p.ID
		b.vaccinations[v.ID] = v
	}
	for _, t := range in.Treatments {
		t.ID, t.PetID = b.id(), p.ID
		b.treatments[t.ID] = t
	}
	return p, nil
}

func (r *Pets) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.pets[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	p = patch.Apply(p)
	b.pets[id] = p
	return p, nil
}

func (r *Pets) Delete(ctx context.Context, id string) error {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pets[id]; !ok {
		return ErrNotFound
	}
	delete(b.pets, id)
	delete(b.documents, id)
	for k, v := range b.vaccinations {
		if v.PetID == id {
			delete(b.vaccinations, k)
		}
	}
	for k, t := range b.treatments {
		if t.PetID == id {
			delete(b.treatments, k)
		}
	}
	for k, c := range b.consultations {
		if c.PetID == id {
			delete(b.consultations, k)
		}
	}
	for k, rem := range b.reminders {
		if rem.PetID == id {
			delete(b.reminders, k)
		}
	}
	return nil
}

// UploadDocument descarta el contenido; solo registra el nombre.
func (r *Pets) UploadDocument(ctx context.Context, petID string, doc pets.DocumentUpload) (pets.Document, error) {
	if doc.Body != nil {
		_, _ = io.Copy(io.Discard, doc.Body)
	}
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pets[petID]; !ok {
		return pets.Document{}, ErrNotFound
	}
	now := b.now().UTC()
	d := pets.Document{ID: b.id(), PetID: petID, Name: strings.TrimSpace(doc.Name), UploadedAt: &now}
	b.documents[petID] = append(b.documents[petID], d)
	return d, nil
}

// ===== Vaccinations =====

type Vaccinations struct{ b *Backend }

func (r *Vaccinations) ListByPet(ctx context.Context, petID string) ([]vaccinations.Vaccination, error) {
	b := r.b
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]vaccinations.Vaccination, 0)
	for _, v := range b.vaccinations {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sortByInsertion(b, out, func(v vaccinations.Vaccination) string { return v.ID })
	return out, nil
}

func (r *Vaccinations) Create(ctx context.Context, v vaccinations.Vaccination) (vaccinations.Vaccination, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pets[v.PetID]; !ok {
		return vaccinations.Vaccination{}, ErrNotFound
	}
	v.ID = b.id()
	b.vaccinations[v.ID] = v
	return v, nil
}

func (r *Vaccinations) Update(ctx context.Context, id string, p vaccinations.Patch) (vaccinations.Vaccination, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	v, ok := b.vaccinations[id]
	if !ok {
		return vaccinations.Vaccination{}, ErrNotFound
	}
	v = p.Apply(v)
	b.vaccinations[id] = v
	return v, nil
}

func (r *Vaccinations) Delete(ctx context.Context, id string) error {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.vaccinations[id]; !ok {
		return ErrNotFound
	}
	delete(b.vaccinations, id)
	return nil
}

// ===== Treatments =====

type Treatments struct{ b *Backend }

func (r *Treatments) ListByPet(ctx context.Context, petID string) ([]treatments.Treatment, error) {
	b := r.b
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]treatments.Treatment, 0)
	for _, t := range b.treatments {
		if t.PetID == petID {
			out = append(out, t)
		}
	}
	sortByInsertion(b, out, func(t treatments.Treatment) string { return t.ID })
	return out, nil
}

func (r *Treatments) Create(ctx context.Context, t treatments.Treatment) (treatments.Treatment, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pets[t.PetID]; !ok {
		return treatments.Treatment{}, ErrNotFound
	}
	t.ID = b.id()
	b.treatments[t.ID] = t
	return t, nil
}

func (r *Treatments) Update(ctx context.Context, id string, p treatments.Patch) (treatments.Treatment, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	t, ok := b.treatments[id]
	if !ok {
		return treatments.Treatment{}, ErrNotFound
	}
	t = p.Apply(t)
	b.treatments[id] = t
	return t, nil
}

func (r *Treatments) Delete(ctx context.Context, id string) error {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.treatments[id]; !ok {
		return ErrNotFound
	}
	delete(b.treatments, id)
	return nil
}

// ===== Consultations =====

type Consultations struct{ b *Backend }

func (r *Consultations) ListByPet(ctx context.Context, petID string) ([]consultations.Record, error) {
	b := r.b
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]consultations.Record, 0)
	for _, c := range b.consultations {
		if c.PetID == petID {
			out = append(out, c)
		}
	}
	sortByInsertion(b, out, func(c consultations.Record) string { return c.ID })
	return out, nil
}

// Create guarda también los sub-registros, como haría el backend real.
func (r *Consultations) Create(ctx context.Context, in consultations.CreateInput) (consultations.Record, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	rec := in.Record
	if _, ok := b.pets[rec.PetID]; !ok {
		return consultations.Record{}, ErrNotFound
	}
	rec.ID = b.id()
	now := b.now().UTC()
	rec.CreatedAt = &now
	rec.Vaccinations, rec.Treatments = nil, nil
	b.consultations[rec.ID] = rec

	for _, v := range in.Vaccinations {
		v.ID, v.PetID = b.id(), rec.PetID
		b.vaccinations[v.ID] = v
	}
	for _, t := range in.Treatments {
		t.ID, t.PetID = b.id(), rec.PetID
		b.treatments[t.ID] = t
	}
	return rec, nil
}

func (r *Consultations) Update(ctx context.Context, id string, p consultations.Patch) (consultations.Record, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.consultations[id]
	if !ok {
		return consultations.Record{}, ErrNotFound
	}
	c = p.Apply(c)
	b.consultations[id] = c
	return c, nil
}

func (r *Consultations) Delete(ctx context.Context, id string) error {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.consultations[id]; !ok {
		return ErrNotFound
	}
	delete(b.consultations, id)
	return nil
}

// ===== Reminders =====

type Reminders struct{ b *Backend }

func (r *Reminders) ListByPet(ctx context.Context, petID string) ([]reminders.Reminder, error) {
	b := r.b
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]reminders.Reminder, 0)
	for _, rem := range b.reminders {
		if rem.PetID == petID {
			out = append(out, rem)
		}
	}
	sortByInsertion(b, out, func(rem reminders.Reminder) string { return rem.ID })
	return out, nil
}

func (r *Reminders) Create(ctx context.Context, rem reminders.Reminder) (reminders.Reminder, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pets[rem.PetID]; !ok {
		return reminders.Reminder{}, ErrNotFound
	}
	rem.ID = b.id()
	b.reminders[rem.ID] = rem
	return rem, nil
}

func (r *Reminders) Update(ctx context.Context, id string, p reminders.Patch) (reminders.Reminder, error) {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	rem, ok := b.reminders[id]
	if !ok {
		return reminders.Reminder{}, ErrNotFound
	}
	rem = p.Apply(rem)
	b.reminders[id] = rem
	return rem, nil
}

func (r *Reminders) Delete(ctx context.Context, id string) error {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.reminders[id]; !ok {
		return ErrNotFound
	}
	delete(b.reminders, id)
	return nil
}

func (r *Reminders) Complete(ctx context.Context, id string) error {
	b := r.b
	b.mu.Lock()
	defer b.mu.Unlock()

	rem, ok := b.reminders[id]
	if !ok {
		return ErrNotFound
	}
	rem.IsCompleted = true
	b.reminders[id] = rem
	return nil
}

package memory

import (
	"sync"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

// Store es el estado local de la app, ya mapeado al modelo de dominio.
// Todas las mutaciones son totales: update/delete sobre un id inexistente no hace nada.
type Store struct {
	mu sync.RWMutex

	pets          collection[pets.Pet]
	vaccinations  collection[vaccinations.Vaccination]
	treatments    collection[treatments.Treatment]
	consultations collection[consultations.Record]
	reminders     collection[reminders.Reminder]

	version uint64
}

func NewStore() *Store {
	return &Store{
		pets: collection[pets.Pet]{
			id:    func(p pets.Pet) string { return p.ID },
			owner: func(p pets.Pet) string { return p.OwnerUserID },
		},
		vaccinations: collection[vaccinations.Vaccination]{
			id:    func(v vaccinations.Vaccination) string { return v.ID },
			owner: func(v vaccinations.Vaccination) string { return v.PetID },
		},
		treatments: collection[treatments.Treatment]{
			id:    func(t treatments.Treatment) string { return t.ID },
			owner: func(t treatments.Treatment) string { return t.PetID },
		},
		consultations: collection[consultations.Record]{
			id:    func(r consultations.Record) string { return r.ID },
			owner: func(r consultations.Record) string { return r.PetID },
		},
		reminders: collection[reminders.Reminder]{
			id:    func(r reminders.Reminder) string { return r.ID },
			owner: func(r reminders.Reminder) string { return r.PetID },
		},
	}
}

// Version crece con cada mutación (útil para saber si hay que re-renderizar).
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) write(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.version++
}

// collection guarda items en orden de llegada; owner es el id del padre (usuario o mascota).
type collection[T any] struct {
	items []T
	id    func(T) string
	owner func(T) string
}

func (c *collection[T]) index(id string) int {
	if id == "" {
		return -1
	}
	for i, it := range c.items {
		if c.id(it) == id {
			return i
		}
	}
	return -1
}

// replaceOwner reemplaza todos los items de owner por items.
func (c *collection[T]) replaceOwner(owner string, items []T) {
	kept := c.items[:0:0]
	for _, it := range c.items {
		if c.owner(it) != owner {
			kept = append(kept, it)
		}
	}
	c.items = append(kept, items...)
}

// upsert agrega o reemplaza por id.
func (c *collection[T]) upsert(v T) {
	if i := c.index(c.id(v)); i >= 0 {
		c.items[i] = v
		return
	}
	c.items = append(c.items, v)
}

func (c *collection[T]) update(id string, fn func(*T)) {
	if i := c.index(id); i >= 0 {
		fn(&c.items[i])
	}
}

func (c *collection[T]) remove(id string) {
	if i := c.index(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

func (c *collection[T]) removeOwner(owner string) {
	c.replaceOwner(owner, nil)
}

func (c *collection[T]) get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c *collection[T]) byOwner(owner string) []T {
	out := make([]T, 0)
	for _, it := range c.items {
		if c.owner(it) == owner {
			out = append(out, it)
		}
	}
	return out
}

// Package demo reemplaza al backend remoto con datos de ejemplo en memoria.
// Los ids son locales (uuid) y nunca viajan a un servidor real.
package demo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

var ErrNotFound = reconcile.ErrNotFound

type Backend struct {
	mu sync.RWMutex

	pets          map[string]pets.Pet
	vaccinations  map[string]vaccinations.Vaccination
	treatments    map[string]treatments.Treatment
	consultations map[string]consultations.Record
	reminders     map[string]reminders.Reminder
	documents     map[string][]pets.Document

	seeded map[string]bool
	seq    map[string]int // orden de inserción por id

	newID func() string
	now   func() time.Time
}

func NewBackend() *Backend {
	return &Backend{
		pets:          make(map[string]pets.Pet),
		vaccinations:  make(map[string]vaccinations.Vaccination),
		treatments:    make(map[string]treatments.Treatment),
		consultations: make(map[string]consultations.Record),
		reminders:     make(map[string]reminders.Reminder),
		documents:     make(map[string][]pets.Document),
		seeded:        make(map[string]bool),
		seq:           make(map[string]int),
		newID:         uuid.NewString,
		now:           time.Now,
	}
}

// Remotes expone el backend con la forma de cada puerto Remote.
type Remotes struct {
	Pets          *Pets
	Vaccinations  *Vaccinations
	Treatments    *Treatments
	Consultations *Consultations
	Reminders     *Reminders
}

func (b *Backend) Remotes() Remotes {
	return Remotes{
		Pets:          &Pets{b: b},
		Vaccinations:  &Vaccinations{b: b},
		Treatments:    &Treatments{b: b},
		Consultations: &Consultations{b: b},
		Reminders:     &Reminders{b: b},
	}
}

// id asigna un id nuevo y registra su orden. Llamar con el lock tomado.
func (b *Backend) id() string {
	id := b.newID()
	b.seq[id] = len(b.seq)
	return id
}

func sortByInsertion[T any](b *Backend, items []T, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		return b.seq[id(items[i])] < b.seq[id(items[j])]
	})
}

// seedOwner carga las mascotas de ejemplo la primera vez que aparece un usuario.
// Llamar con el lock tomado.
func (b *Backend) seedOwner(ownerUserID string) {
	if b.seeded[ownerUserID] {
		return
	}
	b.seeded[ownerUserID] = true

	for _, s := range samples() {
		p := s.pet
		p.ID = b.id()
		p.OwnerUserID = ownerUserID
		b.pets[p.ID] = p

		for _, v := range s.vaccinations {
			v.ID, v.PetID = b.id(), p.ID
			b.vaccinations[v.ID] = v
		}
		for _, t := range s.treatments {
			t.ID, t.PetID = b.id(), p.ID
			b.treatments[t.ID] = t
		}
		for _, c := range s.consultations {
			c.ID, c.PetID = b.id(), p.ID
			b.consultations[c.ID] = c
		}
		for _, r := range s.reminders {
			r.ID, r.PetID = b.id(), p.ID
			b.reminders[r.ID] = r
		}
	}
}

package memory

import "pet-care-companion/internal/domain/pets"

// SetPets reemplaza las mascotas de ownerUserID. Si el listado no trae una
// colección (nil) se conserva la que ya estaba cargada; si la trae, gana el listado.
func (s *Store) SetPets(ownerUserID string, items []pets.Pet) {
	s.write(func() {
		next := make([]pets.Pet, 0, len(items))
		for _, p := range items {
			if cur, ok := s.pets.get(p.ID); ok {
				if p.Vaccinations == nil {
					p.Vaccinations = cur.Vaccinations
				}
				if p.Treatments == nil {
					p.Treatments = cur.Treatments
				}
				if p.Consultations == nil {
					p.Consultations = cur.Consultations
				}
				if len(p.Documents) == 0 {
					p.Documents = cur.Documents
				}
			}
			next = append(next, p)
		}
		s.pets.replaceOwner(ownerUserID, next)
	})
}

func (s *Store) AddPet(p pets.Pet) {
	s.write(func() { s.pets.upsert(p) })
}

func (s *Store) UpdatePet(id string, fn func(*pets.Pet)) {
	s.write(func() { s.pets.update(id, fn) })
}

// DeletePet borra la mascota y todo lo que cuelga de ella.
func (s *Store) DeletePet(id string) {
	s.write(func() {
		if _, ok := s.pets.get(id); !ok {
			return
		}
		s.pets.remove(id)
		s.vaccinations.removeOwner(id)
		s.treatments.removeOwner(id)
		s.consultations.removeOwner(id)
		s.reminders.removeOwner(id)
	})
}

func (s *Store) Pet(id string) (pets.Pet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pets.get(id)
}

// Pets devuelve las mascotas de un usuario, en el orden del último listado.
func (s *Store) Pets(ownerUserID string) []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pets.byOwner(ownerUserID)
}

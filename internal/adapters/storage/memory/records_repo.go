package memory

import (
	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

// Vacunas

func (s *Store) SetPetVaccinations(petID string, items []vaccinations.Vaccination) {
	s.write(func() { s.vaccinations.replaceOwner(petID, items) })
}

func (s *Store) AddVaccination(v vaccinations.Vaccination) {
	s.write(func() { s.vaccinations.upsert(v) })
}

func (s *Store) UpdateVaccination(id string, fn func(*vaccinations.Vaccination)) {
	s.write(func() { s.vaccinations.update(id, fn) })
}

func (s *Store) DeleteVaccination(id string) {
	s.write(func() { s.vaccinations.remove(id) })
}

func (s *Store) Vaccination(id string) (vaccinations.Vaccination, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vaccinations.get(id)
}

func (s *Store) Vaccinations(petID string) []vaccinations.Vaccination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vaccinations.byOwner(petID)
}

// Tratamientos

func (s *Store) SetPetTreatments(petID string, items []treatments.Treatment) {
	s.write(func() { s.treatments.replaceOwner(petID, items) })
}

func (s *Store) AddTreatment(t treatments.Treatment) {
	s.write(func() { s.treatments.upsert(t) })
}

func (s *Store) UpdateTreatment(id string, fn func(*treatments.Treatment)) {
	s.write(func() { s.treatments.update(id, fn) })
}

func (s *Store) DeleteTreatment(id string) {
	s.write(func() { s.treatments.remove(id) })
}

func (s *Store) Treatment(id string) (treatments.Treatment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.treatments.get(id)
}

func (s *Store) Treatments(petID string) []treatments.Treatment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.treatments.byOwner(petID)
}

// Consultas

func (s *Store) SetPetConsultations(petID string, items []consultations.Record) {
	s.write(func() { s.consultations.replaceOwner(petID, items) })
}

func (s *Store) AddConsultation(r consultations.Record) {
	s.write(func() { s.consultations.upsert(r) })
}

func (s *Store) UpdateConsultation(id string, fn func(*consultations.Record)) {
	s.write(func() { s.consultations.update(id, fn) })
}

func (s *Store) DeleteConsultation(id string) {
	s.write(func() { s.consultations.remove(id) })
}

func (s *Store) Consultation(id string) (consultations.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consultations.get(id)
}

func (s *Store) Consultations(petID string) []consultations.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.consultations.byOwner(petID)
}

// Recordatorios

func (s *Store) SetPetReminders(petID string, items []reminders.Reminder) {
	s.write(func() { s.reminders.replaceOwner(petID, items) })
}

func (s *Store) AddReminder(r reminders.Reminder) {
	s.write(func() { s.reminders.upsert(r) })
}

func (s *Store) UpdateReminder(id string, fn func(*reminders.Reminder)) {
	s.write(func() { s.reminders.update(id, fn) })
}

func (s *Store) DeleteReminder(id string) {
	s.write(func() { s.reminders.remove(id) })
}

func (s *Store) Reminder(id string) (reminders.Reminder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reminders.get(id)
}

func (s *Store) Reminders(petID string) []reminders.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reminders.byOwner(petID)
}

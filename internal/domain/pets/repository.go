package pets

import (
	"context"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

type Remote interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	// Create manda perfil, vacunas y tratamientos en un solo request.
	// La respuesta no trae los hijos.
	Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error)
	Update(ctx context.Context, id string, p Patch) (Pet, error)
	Delete(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, petID string, doc DocumentUpload) (Document, error)
}

type Store interface {
	SetPets(ownerUserID string, items []Pet)
	AddPet(p Pet)
	UpdatePet(id string, fn func(*Pet))
	DeletePet(id string)
	Pet(id string) (Pet, bool)
}

// Las colecciones de la mascota se leen a través de sus propios servicios.
type (
	VaccinationLister  interface{ ListByPet(ctx context.Context, petID string) []vaccinations.Vaccination }
	TreatmentLister    interface{ ListByPet(ctx context.Context, petID string) []treatments.Treatment }
	ConsultationLister interface{ ListByPet(ctx context.Context, petID string) []consultations.Record }
	ReminderLister     interface{ ListByPet(ctx context.Context, petID string) []reminders.Reminder }
)

// Listers agrupa las lecturas que arman el perfil. Cualquiera puede ser nil.
type Listers struct {
	Vaccinations  VaccinationLister
	Treatments    TreatmentLister
	Consultations ConsultationLister
	Reminders     ReminderLister
}

package reconcile

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput se devuelve antes de cualquier llamada de red.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indica que la entidad no está en el estado local.
	ErrNotFound = errors.New("not found")
	// ErrInFlight indica que ya hay una operación pendiente para la misma entidad.
	ErrInFlight = errors.New("operation already in flight")
)

// Policy decide qué hacer cuando el backend falla.
type Policy string

const (
	// PolicyStrict propaga el error del gateway sin tocar el estado local.
	PolicyStrict Policy = "strict"
	// PolicyDegraded absorbe el error con una mutación solo-local y un warning.
	PolicyDegraded Policy = "degraded"
)

func ParsePolicy(s string) Policy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "degraded", "degraded-tolerant":
		return PolicyDegraded
	default:
		return PolicyStrict
	}
}

// Operation identifica una mutación concreta.
type Operation string

const (
	OpCreatePet    Operation = "pet.create"
	OpUpdatePet    Operation = "pet.update"
	OpDeletePet    Operation = "pet.delete"
	OpUploadPetDoc Operation = "pet.upload_document"

	OpCreateVaccination Operation = "vaccination.create"
	OpUpdateVaccination Operation = "vaccination.update"
	OpDeleteVaccination Operation = "vaccination.delete"

	OpCreateTreatment Operation = "treatment.create"
	OpUpdateTreatment Operation = "treatment.update"
	OpDeleteTreatment Operation = "treatment.delete"

	OpCreateConsultation Operation = "consultation.create"
	OpUpdateConsultation Operation = "consultation.update"
	OpDeleteConsultation Operation = "consultation.delete"

	OpCreateReminder   Operation = "reminder.create"
	OpUpdateReminder   Operation = "reminder.update"
	OpDeleteReminder   Operation = "reminder.delete"
	OpCompleteReminder Operation = "reminder.complete"
)

// Policies mapea operación -> política. Lo no listado es strict.
type Policies map[Operation]Policy

// DefaultPolicies: solo completar un recordatorio tolera caídas del backend.
func DefaultPolicies() Policies {
	return Policies{
		OpCompleteReminder: PolicyDegraded,
	}
}

func (p Policies) For(op Operation) Policy {
	if v, ok := p[op]; ok && v != "" {
		return v
	}
	return PolicyStrict
}

// With devuelve una copia con op sobreescrita.
func (p Policies) With(op Operation, policy Policy) Policies {
	out := make(Policies, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[op] = policy
	return out
}

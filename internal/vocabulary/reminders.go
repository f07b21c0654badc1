package vocabulary

import "strings"

// ReminderType es la categoría local de un recordatorio.
type ReminderType string

const (
	ReminderVaccine  ReminderType = "vacuna"
	ReminderMedicine ReminderType = "medicina"
	ReminderVet      ReminderType = "veterinario"
	ReminderHygiene  ReminderType = "higiene"
	ReminderFeeding  ReminderType = "alimentacion"
	ReminderExercise ReminderType = "ejercicio"
	ReminderOther    ReminderType = "otro"
)

const defaultReminderType = ReminderOther

// ReminderTypes lista el conjunto cerrado, en orden de presentación.
var ReminderTypes = []ReminderType{
	ReminderVaccine,
	ReminderMedicine,
	ReminderVet,
	ReminderHygiene,
	ReminderFeeding,
	ReminderExercise,
	ReminderOther,
}

// Códigos de categoría del backend para "pendings".
const (
	RemoteCategoryVaccine    = "VACCINE"
	RemoteCategoryMedication = "MEDICATION"
	RemoteCategoryVet        = "VET_APPOINTMENT"
	// RemoteCategoryHygiene está mal escrito en el backend y así tiene que viajar.
	RemoteCategoryHygiene  = "HYGINE"
	RemoteCategoryFeeding  = "FEEDING"
	RemoteCategoryExercise = "EXERCISE"
	RemoteCategoryOther    = "OTHER"
)

// ReminderTypeToRemote traduce la categoría local al código del backend.
func ReminderTypeToRemote(t ReminderType) string {
	switch t {
	case ReminderVaccine:
		return RemoteCategoryVaccine
	case ReminderMedicine:
		return RemoteCategoryMedication
	case ReminderVet:
		return RemoteCategoryVet
	case ReminderHygiene:
		return RemoteCategoryHygiene
	case ReminderFeeding:
		return RemoteCategoryFeeding
	case ReminderExercise:
		return RemoteCategoryExercise
	default:
		return RemoteCategoryOther
	}
}

// ReminderTypeFromRemote traduce un código del backend a la categoría local.
// Códigos desconocidos caen en "otro".
func ReminderTypeFromRemote(code string) ReminderType {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case RemoteCategoryVaccine:
		return ReminderVaccine
	case RemoteCategoryMedication:
		return ReminderMedicine
	case RemoteCategoryVet:
		return ReminderVet
	case RemoteCategoryHygiene, "HYGIENE":
		return ReminderHygiene
	case RemoteCategoryFeeding:
		return ReminderFeeding
	case RemoteCategoryExercise:
		return ReminderExercise
	default:
		return defaultReminderType
	}
}

// ParseReminderType normaliza texto libre (p.ej. de un formulario) al conjunto cerrado.
func ParseReminderType(s string) ReminderType {
	t := ReminderType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ReminderTypes {
		if t == known {
			return t
		}
	}
	return defaultReminderType
}

package vocabulary

import "strings"

// ConsultationType es el tipo canónico de una consulta.
type ConsultationType string

const (
	ConsultationGeneral     ConsultationType = "general"
	ConsultationVaccination ConsultationType = "vaccination"
	ConsultationTreatment   ConsultationType = "treatment"
	ConsultationCheckup     ConsultationType = "checkup"
	ConsultationEmergency   ConsultationType = "emergency"
	ConsultationSurgery     ConsultationType = "surgery"
	ConsultationAesthetic   ConsultationType = "aesthetic"
	ConsultationReview      ConsultationType = "review"
)

var ConsultationTypes = []ConsultationType{
	ConsultationGeneral,
	ConsultationVaccination,
	ConsultationTreatment,
	ConsultationCheckup,
	ConsultationEmergency,
	ConsultationSurgery,
	ConsultationAesthetic,
	ConsultationReview,
}

const (
	RemoteConsultationGeneral     = "GENERAL_CONSULTATION"
	RemoteConsultationVaccination = "VACCINATION"
	RemoteConsultationTreatment   = "TREATMENT"
	RemoteConsultationCheckup     = "CHECKUP"
	RemoteConsultationEmergency   = "EMERGENCY"
	RemoteConsultationSurgery     = "SURGERY"
	RemoteConsultationGrooming    = "GROOMING"
	RemoteConsultationFollowUp    = "FOLLOW_UP"
)

func ConsultationTypeToRemote(t ConsultationType) string {
	switch t {
	case ConsultationVaccination:
		return RemoteConsultationVaccination
	case ConsultationTreatment:
		return RemoteConsultationTreatment
	case ConsultationCheckup:
		return RemoteConsultationCheckup
	case ConsultationEmergency:
		return RemoteConsultationEmergency
	case ConsultationSurgery:
		return RemoteConsultationSurgery
	case ConsultationAesthetic:
		return RemoteConsultationGrooming
	case ConsultationReview:
		return RemoteConsultationFollowUp
	default:
		return RemoteConsultationGeneral
	}
}

// ConsultationTypeFromRemote nunca devuelve un valor fuera del conjunto: lo desconocido es "general".
func ConsultationTypeFromRemote(code string) ConsultationType {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case RemoteConsultationVaccination:
		return ConsultationVaccination
	case RemoteConsultationTreatment:
		return ConsultationTreatment
	case RemoteConsultationCheckup:
		return ConsultationCheckup
	case RemoteConsultationEmergency:
		return ConsultationEmergency
	case RemoteConsultationSurgery:
		return ConsultationSurgery
	case RemoteConsultationGrooming:
		return ConsultationAesthetic
	case RemoteConsultationFollowUp:
		return ConsultationReview
	default:
		return ConsultationGeneral
	}
}

// ParseConsultationType normaliza entrada local; lo desconocido es "general".
func ParseConsultationType(s string) ConsultationType {
	t := ConsultationType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ConsultationTypes {
		if t == known {
			return t
		}
	}
	return ConsultationGeneral
}

package demo

import (
	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/vocabulary"
)

type sample struct {
	pet           pets.Pet
	vaccinations  []vaccinations.Vaccination
	treatments    []treatments.Treatment
	consultations []consultations.Record
	reminders     []reminders.Reminder
}

func ptr[T any](v T) *T { return &v }

func samples() []sample {
	return []sample{
		{
			pet: pets.Pet{
				Name:      "Max",
				Species:   pets.SpeciesDog,
				Breed:     "Golden Retriever",
				Sex:       pets.SexMale,
				BirthDate: ptr("2021-03-15"),
				Weight:    &pets.WeightRange{Min: 28, Max: 32, Unit: pets.DefaultWeightUnit},
				Notes:     ptr("Alérgico al pollo"),
			},
			vaccinations: []vaccinations.Vaccination{
				{Name: vocabulary.VaccineRabies, ApplicationDate: "2024-03-20", NextDueDate: ptr("2025-03-20"), Veterinarian: ptr("Dra. Gómez")},
				{Name: vocabulary.VaccinePolyvalent, ApplicationDate: "2024-04-02", BatchNumber: ptr("PV-2291")},
			},
			treatments: []treatments.Treatment{
				{Category: ptr("antiparasitario"), Medication: "NexGard", StartDate: "2024-05-01", Dosage: ptr("1 comprimido mensual")},
			},
			consultations: []consultations.Record{
				{
					Type:         vocabulary.ConsultationCheckup,
					Title:        "Control anual",
					Date:         "2024-03-20",
					Veterinarian: ptr("Dra. Gómez"),
					ClinicName:   ptr("Clínica San Roque"),
					Findings:     ptr("Buen estado general"),
					Cost:         ptr(8500.0),
				},
			},
			reminders: []reminders.Reminder{
				{Type: vocabulary.ReminderMedicine, Title: "Pipeta mensual", Date: "2025-07-01", Time: ptr("10:00")},
				{Type: vocabulary.ReminderHygiene, Title: "Baño", Date: "2025-06-20"},
			},
		},
		{
			pet: pets.Pet{
				Name:      "Mishi",
				Species:   pets.SpeciesCat,
				Breed:     "Europeo",
				Sex:       pets.SexFemale,
				BirthDate: ptr("2024-01-10"),
				Weight:    &pets.WeightRange{Min: 3.5, Max: 3.5, Unit: pets.DefaultWeightUnit},
			},
			vaccinations: []vaccinations.Vaccination{
				{Name: vocabulary.VaccineFelineTriple, ApplicationDate: "2024-04-10"},
			},
			reminders: []reminders.Reminder{
				{Type: vocabulary.ReminderVet, Title: "Castración", Date: "2025-08-05", Time: ptr("08:30"), Location: ptr("Clínica San Roque")},
			},
		},
	}
}

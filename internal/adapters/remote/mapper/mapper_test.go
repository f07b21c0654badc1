package mapper

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/vocabulary"
)

func strPtr(s string) *string { return &s }

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
}

func TestDateFromWire_UsesUTCDay(t *testing.T) {
	// zona local detrás de UTC: en local 23:00Z ya sería otro día
	orig := time.Local
	time.Local = time.FixedZone("UTC-5", -5*60*60)
	t.Cleanup(func() { time.Local = orig })

	got := DateFromWire(strPtr("2024-03-01T23:00:00Z"))
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-01", *got)

	// mismo instante expresado con offset: el día UTC es el siguiente
	got = DateFromWire(strPtr("2024-03-01T22:30:00-03:00"))
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-02", *got)

	// sin zona en el texto se interpreta como UTC, no como hora local
	got = DateFromWire(strPtr("2024-03-01T23:00:00"))
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-01", *got)

	assert.Nil(t, DateFromWire(nil))
	assert.Nil(t, DateFromWire(strPtr("not a date")))
}

func TestInstantToWire_DefaultsToNine(t *testing.T) {
	assert.Equal(t, "2024-05-10T09:00:00Z", InstantToWire("2024-05-10", nil))
	assert.Equal(t, "2024-05-10T18:30:00Z", InstantToWire("2024-05-10", strPtr("18:30")))
	assert.Equal(t, "", InstantToWire("10/05/2024", nil))
}

func TestID_CoercesNumbersAndStrings(t *testing.T) {
	var w struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 42, "b": "abc-1", "c": null}`), &w))
	assert.Equal(t, ID("42"), w.A)
	assert.Equal(t, ID("abc-1"), w.B)
	assert.Equal(t, ID(""), w.C)

	out, err := json.Marshal(struct {
		N ID `json:"n"`
		S ID `json:"s"`
	}{N: "7", S: "x7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 7, "s": "x7"}`, string(out))
}

func TestPetToLocal(t *testing.T) {
	m := NewWithClock(fixedClock())

	var w Pet
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 12, "name": "Luna", "breed": "Mestiza", "species": "CAT",
		"birthDate": "2023-06-01T00:00:00.000Z", "weight": "4.5", "userId": 3,
		"age": "99 años"
	}`), &w))

	p := m.PetToLocal(w)
	assert.Equal(t, "12", p.ID)
	assert.Equal(t, "3", p.OwnerUserID)
	assert.Equal(t, pets.SpeciesCat, p.Species)
	assert.Equal(t, pets.SexUnknown, p.Sex)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, "2023-06-01", *p.BirthDate)
	assert.Equal(t, "2 años", p.Age)
	require.NotNil(t, p.Weight)
	assert.Equal(t, pets.WeightRange{Min: 4.5, Max: 4.5, Unit: "kg"}, *p.Weight)
	assert.Nil(t, p.Notes, "ausente => nil, no string vacío")
	assert.Nil(t, p.Vaccinations, "sin vaccines en el payload => nil")
}

func TestPetToLocal_EmptyChildArrayIsNotNil(t *testing.T) {
	var w Pet
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "name": "Rex", "vaccines": []}`), &w))

	p := New().PetToLocal(w)
	assert.NotNil(t, p.Vaccinations)
	assert.Empty(t, p.Vaccinations)
	assert.Nil(t, p.Treatments)
}

func TestPetToLocal_MissingWeight(t *testing.T) {
	p := New().PetToLocal(Pet{ID: "1", Name: "Rex"})
	assert.Nil(t, p.Weight)
	assert.Nil(t, p.BirthDate)
	assert.Equal(t, "", p.Age)
}

func TestPetToLocal_OptionalChildFieldsStayNil(t *testing.T) {
	var w Pet
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 5, "name": "Rex", "species": "dog",
		"treatments": [{"id": 9, "medication": "Bravecto", "startDate": "2024-02-01T00:00:00Z"}],
		"appointments": [{"id": 2, "reason": "control"}]
	}`), &w))

	p := New().PetToLocal(w)
	require.Len(t, p.Treatments, 1)
	assert.Nil(t, p.Treatments[0].Category, "type ausente => nil")
	assert.Equal(t, "5", p.Treatments[0].PetID)
	require.Len(t, p.Appointments, 1)
	assert.Nil(t, p.Appointments[0].Date)
}

func TestTreatmentToRemote_SkipsBlankCategory(t *testing.T) {
	m := New()
	assert.Nil(t, m.TreatmentToRemote(treatments.Treatment{Medication: "A", StartDate: "2024-01-01"}).Type)
	assert.Nil(t, m.TreatmentToRemote(treatments.Treatment{Category: strPtr("  "), Medication: "A", StartDate: "2024-01-01"}).Type)

	w := m.TreatmentToRemote(treatments.Treatment{Category: strPtr("antibiótico"), Medication: "A", StartDate: "2024-01-01"})
	require.NotNil(t, w.Type)
	assert.Equal(t, "antibiótico", *w.Type)
}

func TestPetToRemote_EmbedsChildren(t *testing.T) {
	m := New()
	in := pets.CreateInput{
		Pet: pets.Pet{
			Name: "Rex", Species: pets.SpeciesDog, Sex: pets.SexMale,
			BirthDate: strPtr("2020-01-15"),
			Weight:    &pets.WeightRange{Min: 10, Max: 12, Unit: "kg"},
		},
		Vaccinations: []vaccinations.Vaccination{{Name: vocabulary.VaccineRabies, ApplicationDate: "2024-01-10"}},
		Treatments:   []treatments.Treatment{{Medication: "Bravecto", StartDate: "2024-02-01"}},
	}

	w := m.PetToRemote("5", in)
	raw, err := json.Marshal(w)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(10), body["weight"], "se manda el mínimo del rango")
	assert.Equal(t, float64(5), body["userId"])
	assert.Equal(t, "male", body["gender"])
	assert.Equal(t, "2020-01-15T09:00:00Z", body["birthDate"])
	assert.NotContains(t, body, "id")

	vaccines, ok := body["vaccines"].([]any)
	require.True(t, ok)
	require.Len(t, vaccines, 1)
	assert.Equal(t, "Rabia", vaccines[0].(map[string]any)["name"])

	treats, ok := body["treatments"].([]any)
	require.True(t, ok)
	require.Len(t, treats, 1)
}

func TestVaccinationToLocal_UnknownNameIsOther(t *testing.T) {
	v := New().VaccinationToLocal(Vaccine{ID: "9", Name: "Vacuna experimental", ApplicationDate: strPtr("2024-01-10T00:00:00Z")}, "4")
	assert.Equal(t, vocabulary.VaccineOther, v.Name)
	assert.Equal(t, "4", v.PetID)
	assert.Equal(t, "2024-01-10", v.ApplicationDate)
	assert.Nil(t, v.NextDueDate)
	assert.Nil(t, v.BatchNumber)
}

func TestReminder_HygieneRoundTripsThroughWire(t *testing.T) {
	m := New()
	r := reminders.Reminder{
		PetID: "4", Type: vocabulary.ReminderHygiene, Title: "Baño",
		Date: "2024-07-01", Time: strPtr("16:45"),
	}

	w := m.ReminderToRemote(r)
	assert.Equal(t, "HYGINE", w.Category)
	require.NotNil(t, w.Date)
	assert.Equal(t, "2024-07-01T16:45:00Z", *w.Date)

	back := m.ReminderToLocal(w, "")
	assert.Equal(t, vocabulary.ReminderHygiene, back.Type)
	assert.Equal(t, "2024-07-01", back.Date)
	require.NotNil(t, back.Time)
	assert.Equal(t, "16:45", *back.Time)
	assert.False(t, back.IsCompleted)
}

func TestReminderToLocal_CompletedAndDefaults(t *testing.T) {
	done := true
	r := New().ReminderToLocal(Pending{ID: "1", Category: "SOMETHING_NEW", Title: "x", Completed: &done}, "2")
	assert.Equal(t, vocabulary.ReminderOther, r.Type)
	assert.True(t, r.IsCompleted)
	assert.Equal(t, "2", r.PetID)
	assert.Equal(t, "", r.Date)
	assert.Nil(t, r.Time)
}

func TestConsultationToRemote_NestedChildren(t *testing.T) {
	cost := 1500.0
	in := consultations.CreateInput{
		Record: consultations.Record{
			PetID: "8", Type: vocabulary.ConsultationAesthetic, Title: "Corte", Date: "2024-04-04", Cost: &cost,
		},
		Vaccinations: []vaccinations.Vaccination{{Name: vocabulary.VaccineBordetella, ApplicationDate: "2024-04-04"}},
		Treatments:   []treatments.Treatment{{Medication: "Champú", StartDate: "2024-04-04"}},
	}

	w := New().ConsultationToRemote(in)
	assert.Equal(t, "GROOMING", w.ConsultationType)
	require.Len(t, w.Vaccines, 1)
	assert.Equal(t, ID("8"), w.Vaccines[0].PetID)
	require.Len(t, w.Treatments, 1)
	require.NotNil(t, w.Cost)
	assert.Equal(t, Float(1500), *w.Cost)
}

func TestConsultationToLocal(t *testing.T) {
	var w Consultation
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 3, "petId": 8, "consultationType": "FOLLOW_UP", "title": "Control",
		"date": "2024-04-04T09:00:00Z", "cost": "120.50", "createdBy": "VET",
		"createdAt": "2024-04-04T10:11:12.000Z"
	}`), &w))

	r := New().ConsultationToLocal(w, "")
	assert.Equal(t, "3", r.ID)
	assert.Equal(t, "8", r.PetID)
	assert.Equal(t, vocabulary.ConsultationReview, r.Type)
	assert.Equal(t, "2024-04-04", r.Date)
	require.NotNil(t, r.Cost)
	assert.InDelta(t, 120.5, *r.Cost, 0.0001)
	require.NotNil(t, r.CreatedBy)
	assert.Equal(t, consultations.CreatorVeterinarian, *r.CreatedBy)
	require.NotNil(t, r.CreatedAt)
	assert.Nil(t, r.Diagnosis)
}

func TestReminderPatchToRemote_TimeNeedsDate(t *testing.T) {
	m := New()
	w := m.ReminderPatchToRemote(reminders.Patch{Time: strPtr("10:00")})
	assert.Nil(t, w.Date)

	w = m.ReminderPatchToRemote(reminders.Patch{Date: strPtr("2024-01-02"), Time: strPtr("10:00")})
	require.NotNil(t, w.Date)
	assert.Equal(t, "2024-01-02T10:00:00Z", *w.Date)
}

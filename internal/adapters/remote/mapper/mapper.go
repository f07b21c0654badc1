package mapper

import (
	"strings"
	"time"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/vocabulary"
)

// Mapper convierte entidades en ambas direcciones. now se usa para la edad derivada.
type Mapper struct {
	now func() time.Time
}

func New() *Mapper {
	return &Mapper{now: time.Now}
}

// NewWithClock fija el reloj (tests).
func NewWithClock(now func() time.Time) *Mapper {
	if now == nil {
		now = time.Now
	}
	return &Mapper{now: now}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ===== Pet =====

func speciesToLocal(s string) pets.Species {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cat", "gato", "felino":
		return pets.SpeciesCat
	default:
		return pets.SpeciesDog
	}
}

func sexToLocal(s *string) pets.Sex {
	if s == nil {
		return pets.SexUnknown
	}
	switch strings.ToLower(strings.TrimSpace(*s)) {
	case "male", "m", "macho":
		return pets.SexMale
	case "female", "f", "hembra":
		return pets.SexFemale
	default:
		return pets.SexUnknown
	}
}

func sexToRemote(s pets.Sex) *string {
	switch s {
	case pets.SexMale, pets.SexFemale:
		v := string(s)
		return &v
	default:
		return nil
	}
}

func weightToLocal(w *Float) *pets.WeightRange {
	if w == nil {
		return nil
	}
	v := float64(*w)
	return &pets.WeightRange{Min: v, Max: v, Unit: pets.DefaultWeightUnit}
}

func weightToRemote(w *pets.WeightRange) *Float {
	if w == nil {
		return nil
	}
	v := Float(w.Min)
	return &v
}

// PetToLocal ignora la edad que pueda mandar el backend: se recalcula acá.
func (m *Mapper) PetToLocal(w Pet) pets.Pet {
	p := pets.Pet{
		ID:          w.ID.String(),
		OwnerUserID: w.UserID.String(),
		Name:        w.Name,
		Species:     speciesToLocal(w.Species),
		Breed:       w.Breed,
		Sex:         sexToLocal(w.Gender),
		BirthDate:   DateFromWire(w.BirthDate),
		Weight:      weightToLocal(w.Weight),
		Notes:       w.Observations,
	}
	if p.BirthDate != nil {
		p.Age = pets.CalculateAge(*p.BirthDate, m.now())
	}
	// nil = el backend no mandó la colección; vacía = no hay ninguna
	if w.Vaccines != nil {
		p.Vaccinations = make([]vaccinations.Vaccination, 0, len(w.Vaccines))
	}
	for _, v := range w.Vaccines {
		p.Vaccinations = append(p.Vaccinations, m.VaccinationToLocal(v, p.ID))
	}
	if w.Treatments != nil {
		p.Treatments = make([]treatments.Treatment, 0, len(w.Treatments))
	}
	for _, t := range w.Treatments {
		p.Treatments = append(p.Treatments, m.TreatmentToLocal(t, p.ID))
	}
	for _, a := range w.Appointments {
		p.Appointments = append(p.Appointments, pets.Appointment{
			ID:           a.ID.String(),
			Date:         DateFromWire(a.Date),
			Reason:       a.Reason,
			Veterinarian: a.Veterinarian,
		})
	}
	for _, d := range w.Documents {
		p.Documents = append(p.Documents, m.DocumentToLocal(d, p.ID))
	}
	return p
}

// PetToRemote arma el payload de alta con vacunas y tratamientos embebidos:
// un solo request, el backend los asocia a la mascota nueva.
func (m *Mapper) PetToRemote(ownerUserID string, in pets.CreateInput) Pet {
	p := in.Pet
	w := Pet{
		ID:           ID(p.ID),
		Name:         p.Name,
		Breed:        p.Breed,
		Species:      string(p.Species),
		BirthDate:    optionalDateToWire(p.BirthDate),
		Weight:       weightToRemote(p.Weight),
		Gender:       sexToRemote(p.Sex),
		Observations: p.Notes,
		UserID:       ID(ownerUserID),
	}
	for _, v := range in.Vaccinations {
		wv := m.VaccinationToRemote(v)
		wv.PetID = ""
		w.Vaccines = append(w.Vaccines, wv)
	}
	for _, t := range in.Treatments {
		wt := m.TreatmentToRemote(t)
		wt.PetID = ""
		w.Treatments = append(w.Treatments, wt)
	}
	return w
}

// PetPatch es el body de un PUT parcial.
type PetPatch struct {
	Name         *string `json:"name,omitempty"`
	Breed        *string `json:"breed,omitempty"`
	Species      *string `json:"species,omitempty"`
	BirthDate    *string `json:"birthDate,omitempty"`
	Weight       *Float  `json:"weight,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	Observations *string `json:"observations,omitempty"`
}

func (m *Mapper) PetPatchToRemote(p pets.Patch) PetPatch {
	w := PetPatch{
		Name:         p.Name,
		Breed:        p.Breed,
		BirthDate:    optionalDateToWire(p.BirthDate),
		Weight:       weightToRemote(p.Weight),
		Observations: p.Notes,
	}
	if p.Species != nil {
		s := string(*p.Species)
		w.Species = &s
	}
	if p.Sex != nil {
		w.Gender = sexToRemote(*p.Sex)
	}
	return w
}

func (m *Mapper) DocumentToLocal(w Document, petID string) pets.Document {
	d := pets.Document{
		ID:         w.ID.String(),
		PetID:      w.PetID.String(),
		Name:       w.Name,
		URL:        w.URL,
		UploadedAt: InstantFromWire(w.UploadedAt),
	}
	if d.PetID == "" {
		d.PetID = petID
	}
	return d
}

// ===== Vaccination =====

func (m *Mapper) VaccinationToLocal(w Vaccine, petID string) vaccinations.Vaccination {
	v := vaccinations.Vaccination{
		ID:              w.ID.String(),
		PetID:           w.PetID.String(),
		Name:            vocabulary.VaccineFromRemote(w.Name),
		ApplicationDate: deref(DateFromWire(w.ApplicationDate)),
		NextDueDate:     DateFromWire(w.ExpirationDate),
		BatchNumber:     w.BatchNumber,
		Veterinarian:    w.Veterinarian,
		Notes:           w.Notes,
	}
	if v.PetID == "" {
		v.PetID = petID
	}
	return v
}

func (m *Mapper) VaccinationToRemote(v vaccinations.Vaccination) Vaccine {
	return Vaccine{
		ID:              ID(v.ID),
		PetID:           ID(v.PetID),
		Name:            vocabulary.VaccineToRemote(v.Name),
		ApplicationDate: dateToWire(v.ApplicationDate),
		ExpirationDate:  optionalDateToWire(v.NextDueDate),
		BatchNumber:     v.BatchNumber,
		Veterinarian:    v.Veterinarian,
		Notes:           v.Notes,
	}
}

type VaccinePatch struct {
	Name            *string `json:"name,omitempty"`
	ApplicationDate *string `json:"applicationDate,omitempty"`
	ExpirationDate  *string `json:"expirationDate,omitempty"`
	BatchNumber     *string `json:"batchNumber,omitempty"`
	Veterinarian    *string `json:"veterinarian,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (m *Mapper) VaccinationPatchToRemote(p vaccinations.Patch) VaccinePatch {
	w := VaccinePatch{
		ApplicationDate: optionalDateToWire(p.ApplicationDate),
		ExpirationDate:  optionalDateToWire(p.NextDueDate),
		BatchNumber:     p.BatchNumber,
		Veterinarian:    p.Veterinarian,
		Notes:           p.Notes,
	}
	if p.Name != nil {
		n := vocabulary.VaccineToRemote(*p.Name)
		w.Name = &n
	}
	return w
}

// ===== Treatment =====

func (m *Mapper) TreatmentToLocal(w Treatment, petID string) treatments.Treatment {
	t := treatments.Treatment{
		ID:           w.ID.String(),
		PetID:        w.PetID.String(),
		Category:     w.Type,
		Medication:   w.Medication,
		StartDate:    deref(DateFromWire(w.StartDate)),
		EndDate:      DateFromWire(w.EndDate),
		Dosage:       w.Dose,
		Instructions: w.Instructions,
		Veterinarian: w.Veterinarian,
	}
	if t.PetID == "" {
		t.PetID = petID
	}
	return t
}

func (m *Mapper) TreatmentToRemote(t treatments.Treatment) Treatment {
	w := Treatment{
		ID:           ID(t.ID),
		PetID:        ID(t.PetID),
		Medication:   t.Medication,
		StartDate:    dateToWire(t.StartDate),
		EndDate:      optionalDateToWire(t.EndDate),
		Dose:         t.Dosage,
		Instructions: t.Instructions,
		Veterinarian: t.Veterinarian,
	}
	if t.Category != nil {
		if c := strings.TrimSpace(*t.Category); c != "" {
			w.Type = &c
		}
	}
	return w
}

type TreatmentPatch struct {
	Type         *string `json:"type,omitempty"`
	Medication   *string `json:"medication,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	Dose         *string `json:"dose,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Veterinarian *string `json:"veterinarian,omitempty"`
}

func (m *Mapper) TreatmentPatchToRemote(p treatments.Patch) TreatmentPatch {
	return TreatmentPatch{
		Type:         p.Category,
		Medication:   p.Medication,
		StartDate:    optionalDateToWire(p.StartDate),
		EndDate:      optionalDateToWire(p.EndDate),
		Dose:         p.Dosage,
		Instructions: p.Instructions,
		Veterinarian: p.Veterinarian,
	}
}

// ===== Consultation =====

func creatorToLocal(s *string) *consultations.CreatorRole {
	if s == nil {
		return nil
	}
	var r consultations.CreatorRole
	switch strings.ToUpper(strings.TrimSpace(*s)) {
	case "OWNER", "USER":
		r = consultations.CreatorOwner
	case "VETERINARIAN", "VET":
		r = consultations.CreatorVeterinarian
	default:
		return nil
	}
	return &r
}

func creatorToRemote(r *consultations.CreatorRole) *string {
	if r == nil {
		return nil
	}
	var s string
	switch *r {
	case consultations.CreatorOwner:
		s = "OWNER"
	case consultations.CreatorVeterinarian:
		s = "VETERINARIAN"
	default:
		return nil
	}
	return &s
}

func (m *Mapper) ConsultationToLocal(w Consultation, petID string) consultations.Record {
	r := consultations.Record{
		ID:              w.ID.String(),
		PetID:           w.PetID.String(),
		Type:            vocabulary.ConsultationTypeFromRemote(w.ConsultationType),
		Title:           w.Title,
		Date:            deref(DateFromWire(w.Date)),
		Veterinarian:    w.Veterinarian,
		ClinicName:      w.Clinic,
		Findings:        w.Findings,
		Diagnosis:       w.Diagnosis,
		Prescription:    w.Prescription,
		NextSteps:       w.NextSteps,
		Notes:           w.Notes,
		NextAppointment: DateFromWire(w.NextAppointment),
		CreatedBy:       creatorToLocal(w.CreatedBy),
		CreatedAt:       InstantFromWire(w.CreatedAt),
	}
	if r.PetID == "" {
		r.PetID = petID
	}
	if w.Cost != nil {
		c := float64(*w.Cost)
		r.Cost = &c
	}
	for _, v := range w.Vaccines {
		r.Vaccinations = append(r.Vaccinations, m.VaccinationToLocal(v, r.PetID))
	}
	for _, t := range w.Treatments {
		r.Treatments = append(r.Treatments, m.TreatmentToLocal(t, r.PetID))
	}
	return r
}

// ConsultationToRemote embebe los sub-registros en el mismo payload.
func (m *Mapper) ConsultationToRemote(in consultations.CreateInput) Consultation {
	r := in.Record
	w := Consultation{
		ID:               ID(r.ID),
		PetID:            ID(r.PetID),
		ConsultationType: vocabulary.ConsultationTypeToRemote(r.Type),
		Title:            r.Title,
		Date:             dateToWire(r.Date),
		Veterinarian:     r.Veterinarian,
		Clinic:           r.ClinicName,
		Findings:         r.Findings,
		Diagnosis:        r.Diagnosis,
		Prescription:     r.Prescription,
		NextSteps:        r.NextSteps,
		Notes:            r.Notes,
		NextAppointment:  optionalDateToWire(r.NextAppointment),
		CreatedBy:        creatorToRemote(r.CreatedBy),
	}
	if r.Cost != nil {
		c := Float(*r.Cost)
		w.Cost = &c
	}
	for _, v := range in.Vaccinations {
		wv := m.VaccinationToRemote(v)
		wv.PetID = ID(r.PetID)
		w.Vaccines = append(w.Vaccines, wv)
	}
	for _, t := range in.Treatments {
		wt := m.TreatmentToRemote(t)
		wt.PetID = ID(r.PetID)
		w.Treatments = append(w.Treatments, wt)
	}
	return w
}

type ConsultationPatch struct {
	ConsultationType *string `json:"consultationType,omitempty"`
	Title            *string `json:"title,omitempty"`
	Date             *string `json:"date,omitempty"`
	Veterinarian     *string `json:"veterinarian,omitempty"`
	Clinic           *string `json:"clinic,omitempty"`
	Findings         *string `json:"findings,omitempty"`
	Diagnosis        *string `json:"diagnosis,omitempty"`
	Prescription     *string `json:"prescription,omitempty"`
	NextSteps        *string `json:"nextSteps,omitempty"`
	Notes            *string `json:"notes,omitempty"`
	Cost             *Float  `json:"cost,omitempty"`
	NextAppointment  *string `json:"nextAppointment,omitempty"`
}

func (m *Mapper) ConsultationPatchToRemote(p consultations.Patch) ConsultationPatch {
	w := ConsultationPatch{
		Title:           p.Title,
		Date:            optionalDateToWire(p.Date),
		Veterinarian:    p.Veterinarian,
		Clinic:          p.ClinicName,
		Findings:        p.Findings,
		Diagnosis:       p.Diagnosis,
		Prescription:    p.Prescription,
		NextSteps:       p.NextSteps,
		Notes:           p.Notes,
		NextAppointment: optionalDateToWire(p.NextAppointment),
	}
	if p.Type != nil {
		t := vocabulary.ConsultationTypeToRemote(*p.Type)
		w.ConsultationType = &t
	}
	if p.Cost != nil {
		c := Float(*p.Cost)
		w.Cost = &c
	}
	return w
}

// ===== Reminder =====

func (m *Mapper) ReminderToLocal(w Pending, petID string) reminders.Reminder {
	r := reminders.Reminder{
		ID:          w.ID.String(),
		PetID:       w.PetID.String(),
		Type:        vocabulary.ReminderTypeFromRemote(w.Category),
		Title:       w.Title,
		Description: w.Description,
		Date:        deref(DateFromWire(w.Date)),
		Time:        TimeFromWire(w.Date),
		Location:    w.Location,
		IsCompleted: w.Completed != nil && *w.Completed,
	}
	if r.PetID == "" {
		r.PetID = petID
	}
	return r
}

// ReminderToRemote junta fecha y hora en un instante (09:00 si no hay hora).
func (m *Mapper) ReminderToRemote(r reminders.Reminder) Pending {
	completed := r.IsCompleted
	w := Pending{
		ID:          ID(r.ID),
		PetID:       ID(r.PetID),
		Category:    vocabulary.ReminderTypeToRemote(r.Type),
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Completed:   &completed,
	}
	if d := InstantToWire(r.Date, r.Time); d != "" {
		w.Date = &d
	}
	return w
}

type PendingPatch struct {
	Category    *string `json:"category,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
}

// ReminderPatchToRemote: sin fecha en el patch no se puede armar el instante,
// así que una hora suelta no viaja.
func (m *Mapper) ReminderPatchToRemote(p reminders.Patch) PendingPatch {
	w := PendingPatch{
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
	}
	if p.Type != nil {
		c := vocabulary.ReminderTypeToRemote(*p.Type)
		w.Category = &c
	}
	if p.Date != nil {
		if d := InstantToWire(*p.Date, p.Time); d != "" {
			w.Date = &d
		}
	}
	return w
}

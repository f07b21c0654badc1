package pets

import (
	"io"
	"time"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
)

// Species define las especies soportadas.
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

const DefaultWeightUnit = "kg"

// WeightRange: el backend guarda un único valor; localmente es un rango.
type WeightRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Document es un archivo adjunto a la mascota.
type Document struct {
	ID         string     `json:"id"`
	PetID      string     `json:"pet_id"`
	Name       string     `json:"name"`
	URL        *string    `json:"url,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
}

// Appointment es el formato viejo de turnos; solo lectura.
type Appointment struct {
	ID           string  `json:"id"`
	Date         *string `json:"date,omitempty"`
	Reason       *string `json:"reason,omitempty"`
	Veterinarian *string `json:"veterinarian,omitempty"`
}

// Pet representa el perfil de una mascota. Age se calcula localmente.
type Pet struct {
	ID          string `json:"id,omitempty"`
	OwnerUserID string `json:"owner_user_id"`

	Name    string  `json:"name"`
	Species Species `json:"species"`
	Breed   string  `json:"breed"`
	Sex     Sex     `json:"sex"`

	BirthDate *string      `json:"birth_date,omitempty"`
	Age       string       `json:"age,omitempty"`
	Weight    *WeightRange `json:"weight,omitempty"`

	Notes *string `json:"notes,omitempty"`

	Vaccinations  []vaccinations.Vaccination `json:"vaccinations,omitempty"`
	Treatments    []treatments.Treatment     `json:"treatments,omitempty"`
	Consultations []consultations.Record     `json:"consultations,omitempty"`
	Appointments  []Appointment              `json:"appointments,omitempty"`
	Documents     []Document                 `json:"documents,omitempty"`
}

// CreateInput: perfil + vacunas y tratamientos que se crean en el mismo request.
type CreateInput struct {
	Pet          Pet                        `json:"pet"`
	Vaccinations []vaccinations.Vaccination `json:"vaccinations"`
	Treatments   []treatments.Treatment     `json:"treatments"`
}

type Patch struct {
	Name      *string      `json:"name"`
	Species   *Species     `json:"species"`
	Breed     *string      `json:"breed"`
	Sex       *Sex         `json:"sex"`
	BirthDate *string      `json:"birth_date"`
	Weight    *WeightRange `json:"weight"`
	Notes     *string      `json:"notes"`
}

func (p Patch) Apply(pet Pet) Pet {
	if p.Name != nil {
		pet.Name = *p.Name
	}
	if p.Species != nil {
		pet.Species = *p.Species
	}
	if p.Breed != nil {
		pet.Breed = *p.Breed
	}
	if p.Sex != nil {
		pet.Sex = *p.Sex
	}
	if p.BirthDate != nil {
		pet.BirthDate = p.BirthDate
	}
	if p.Weight != nil {
		w := *p.Weight
		pet.Weight = &w
	}
	if p.Notes != nil {
		pet.Notes = p.Notes
	}
	return pet
}

// DocumentUpload es el archivo a subir.
type DocumentUpload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Profile agrega la mascota con todas sus colecciones.
type Profile struct {
	Pet       Pet                  `json:"pet"`
	Reminders []reminders.Reminder `json:"reminders"`
}

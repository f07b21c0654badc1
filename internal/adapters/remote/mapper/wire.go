// Package mapper traduce entre el modelo de dominio y el esquema del backend remoto.
// Ninguna función de mapeo falla: lo que no se reconoce cae en un default.
package mapper

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID es un identificador del backend. Llega como número (a veces como string);
// en dominio siempre es string.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON manda números cuando el id es puramente numérico.
func (id ID) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(id))
	if s == "" {
		return []byte("null"), nil
	}
	if isDigits(s) {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func (id ID) String() string { return string(id) }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Float tolera números serializados como string ("12.50"), típico de columnas decimal.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = Float(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Shapes del backend (camelCase). Campos opcionales en puntero: ausente != vacío.

type Pet struct {
	ID           ID      `json:"id,omitempty"`
	Name         string  `json:"name"`
	Breed        string  `json:"breed"`
	Species      string  `json:"species"`
	BirthDate    *string `json:"birthDate,omitempty"`
	Weight       *Float  `json:"weight,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	Observations *string `json:"observations,omitempty"`
	UserID       ID      `json:"userId,omitempty"`

	Vaccines     []Vaccine     `json:"vaccines,omitempty"`
	Treatments   []Treatment   `json:"treatments,omitempty"`
	Appointments []Appointment `json:"appointments,omitempty"`
	Documents    []Document    `json:"documents,omitempty"`
}

type Vaccine struct {
	ID              ID      `json:"id,omitempty"`
	PetID           ID      `json:"petId,omitempty"`
	Name            string  `json:"name"`
	ApplicationDate *string `json:"applicationDate,omitempty"`
	ExpirationDate  *string `json:"expirationDate,omitempty"`
	BatchNumber     *string `json:"batchNumber,omitempty"`
	Veterinarian    *string `json:"veterinarian,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

type Treatment struct {
	ID           ID      `json:"id,omitempty"`
	PetID        ID      `json:"petId,omitempty"`
	Type         *string `json:"type,omitempty"`
	Medication   string  `json:"medication"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	Dose         *string `json:"dose,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	Veterinarian *string `json:"veterinarian,omitempty"`
}

type Consultation struct {
	ID               ID      `json:"id,omitempty"`
	PetID            ID      `json:"petId,omitempty"`
	ConsultationType string  `json:"consultationType"`
	Title            string  `json:"title"`
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
	CreatedBy        *string `json:"createdBy,omitempty"`
	CreatedAt        *string `json:"createdAt,omitempty"`

	Vaccines   []Vaccine   `json:"vaccines,omitempty"`
	Treatments []Treatment `json:"treatments,omitempty"`
}

type Pending struct {
	ID          ID      `json:"id,omitempty"`
	PetID       ID      `json:"petId,omitempty"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Location    *string `json:"location,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type Appointment struct {
	ID           ID      `json:"id,omitempty"`
	Date         *string `json:"date,omitempty"`
	Reason       *string `json:"reason,omitempty"`
	Veterinarian *string `json:"veterinarian,omitempty"`
}

type Document struct {
	ID         ID      `json:"id,omitempty"`
	PetID      ID      `json:"petId,omitempty"`
	Name       string  `json:"name"`
	URL        *string `json:"url,omitempty"`
	UploadedAt *string `json:"uploadedAt,omitempty"`
}

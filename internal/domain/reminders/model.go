package reminders

import "pet-care-companion/internal/vocabulary"

// Reminder es un pendiente de una mascota.
// IsCompleted solo avanza de false a true: no hay operación para "des-completar".
type Reminder struct {
	ID    string `json:"id,omitempty"`
	PetID string `json:"pet_id"`

	Type        vocabulary.ReminderType `json:"type"`
	Title       string                  `json:"title"`
	Description *string                 `json:"description,omitempty"`

	Date     string  `json:"date"`
	Time     *string `json:"time,omitempty"`
	Location *string `json:"location,omitempty"`

	IsCompleted bool `json:"is_completed"`
}

type Patch struct {
	Type        *vocabulary.ReminderType `json:"type"`
	Title       *string                  `json:"title"`
	Description *string                  `json:"description"`
	Date        *string                  `json:"date"`
	Time        *string                  `json:"time"`
	Location    *string                  `json:"location"`
}

func (p Patch) Apply(r Reminder) Reminder {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Time != nil {
		r.Time = p.Time
	}
	if p.Location != nil {
		r.Location = p.Location
	}
	return r
}

// CompleteResult lleva el warning cuando la marca quedó solo en local.
type CompleteResult struct {
	Reminder Reminder `json:"reminder"`
	Warning  string   `json:"warning,omitempty"`
}

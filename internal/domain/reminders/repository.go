package reminders

import "context"

type Remote interface {
	ListByPet(ctx context.Context, petID string) ([]Reminder, error)
	Create(ctx context.Context, r Reminder) (Reminder, error)
	Update(ctx context.Context, id string, p Patch) (Reminder, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
}

type Store interface {
	SetPetReminders(petID string, items []Reminder)
	AddReminder(r Reminder)
	UpdateReminder(id string, fn func(*Reminder))
	DeleteReminder(id string)
	Reminder(id string) (Reminder, bool)
}

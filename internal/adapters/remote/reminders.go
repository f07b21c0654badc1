package remote

import (
	"context"

	"pet-care-companion/internal/adapters/remote/mapper"
	"pet-care-companion/internal/domain/reminders"
)

// Reminders habla con "pendings".
type Reminders struct {
	gw Gateway
	m  *mapper.Mapper
}

func (a *Reminders) ListByPet(ctx context.Context, petID string) ([]reminders.Reminder, error) {
	var wire []mapper.Pending
	if err := a.gw.Get(ctx, resourcePendings, byPet(petID)).Decode(&wire); err != nil {
		return nil, err
	}
	out := make([]reminders.Reminder, 0, len(wire))
	for _, w := range wire {
		out = append(out, a.m.ReminderToLocal(w, petID))
	}
	return out, nil
}

func (a *Reminders) Create(ctx context.Context, r reminders.Reminder) (reminders.Reminder, error) {
	var w mapper.Pending
	if err := a.gw.Post(ctx, resourcePendings, a.m.ReminderToRemote(r)).Decode(&w); err != nil {
		return reminders.Reminder{}, err
	}
	return a.m.ReminderToLocal(w, r.PetID), nil
}

func (a *Reminders) Update(ctx context.Context, id string, p reminders.Patch) (reminders.Reminder, error) {
	var w mapper.Pending
	ok, err := decodeOptional(a.gw.Put(ctx, path(resourcePendings, id), a.m.ReminderPatchToRemote(p)), &w)
	if err != nil || !ok {
		return reminders.Reminder{}, err
	}
	return a.m.ReminderToLocal(w, ""), nil
}

func (a *Reminders) Delete(ctx context.Context, id string) error {
	return a.gw.Delete(ctx, path(resourcePendings, id)).Err()
}

func (a *Reminders) Complete(ctx context.Context, id string) error {
	return a.gw.Put(ctx, path(resourcePendings, id, "complete"), nil).Err()
}

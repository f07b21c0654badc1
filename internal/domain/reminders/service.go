package reminders

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pet-care-companion/internal/domain/calendar"
	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/vocabulary"
)

var (
	ErrInvalidInput = reconcile.ErrInvalidInput
	ErrInFlight     = reconcile.ErrInFlight
)

type Service struct {
	remote   Remote
	store    Store
	exec     *reconcile.Executor
	inflight *reconcile.InFlight
}

func NewService(remote Remote, store Store, exec *reconcile.Executor) *Service {
	if exec == nil {
		exec = reconcile.NewExecutor(nil, nil, nil)
	}
	return &Service{
		remote:   remote,
		store:    store,
		exec:     exec,
		inflight: reconcile.NewInFlight(),
	}
}

func (s *Service) ListByPet(ctx context.Context, petID string) []Reminder {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return []Reminder{}
	}
	items, ok := reconcile.ReadAll(ctx, s.exec, "reminders.list", func(ctx context.Context) ([]Reminder, error) {
		return s.remote.ListByPet(ctx, petID)
	})
	if ok {
		s.store.SetPetReminders(petID, items)
	}
	return items
}

// Pending devuelve los no completados, ordenados por fecha y hora.
func (s *Service) Pending(ctx context.Context, petID string) []Reminder {
	all := s.ListByPet(ctx, petID)
	out := make([]Reminder, 0, len(all))
	for _, r := range all {
		if !r.IsCompleted {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

func sortKey(r Reminder) string {
	t := "99:99"
	if r.Time != nil {
		if hm, ok := calendar.NormalizeTime(*r.Time); ok {
			t = hm
		}
	}
	return r.Date + " " + t
}

func validate(r Reminder) error {
	if strings.TrimSpace(r.PetID) == "" {
		return fmt.Errorf("%w: pet_id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !calendar.ValidDate(r.Date) {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if r.Time != nil && !calendar.ValidTime(*r.Time) {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	return nil
}

// normalizeTime deja la hora en HH:MM para que el orden por texto sea el cronológico.
func normalizeTime(hm *string) (*string, error) {
	if hm == nil {
		return nil, nil
	}
	t, ok := calendar.NormalizeTime(*hm)
	if !ok {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}
	return &t, nil
}

func (s *Service) Create(ctx context.Context, r Reminder) (Reminder, error) {
	r.ID = ""
	r.PetID = strings.TrimSpace(r.PetID)
	r.Title = strings.TrimSpace(r.Title)
	r.Type = vocabulary.ParseReminderType(string(r.Type))
	r.IsCompleted = false
	if err := validate(r); err != nil {
		return Reminder{}, err
	}
	r.Time, _ = normalizeTime(r.Time)

	var created Reminder
	_, err := s.exec.Mutate(ctx, reconcile.OpCreateReminder, r.PetID, func(ctx context.Context) error {
		out, err := s.remote.Create(ctx, r)
		created = out
		return err
	}, nil)
	if err != nil {
		return Reminder{}, err
	}

	s.store.AddReminder(created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Reminder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Reminder{}, ErrInvalidInput
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return Reminder{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if p.Date != nil && !calendar.ValidDate(*p.Date) {
		return Reminder{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	hm, err := normalizeTime(p.Time)
	if err != nil {
		return Reminder{}, err
	}
	p.Time = hm
	if p.Type != nil {
		t := vocabulary.ParseReminderType(string(*p.Type))
		p.Type = &t
	}
	// en el backend fecha y hora son un solo instante
	if p.Time != nil && p.Date == nil {
		if cur, ok := s.store.Reminder(id); ok && calendar.ValidDate(cur.Date) {
			d := cur.Date
			p.Date = &d
		}
	}
	if p.Time != nil && p.Date == nil {
		return Reminder{}, fmt.Errorf("%w: date is required with time", ErrInvalidInput)
	}
	if p.Date != nil && p.Time == nil {
		if cur, ok := s.store.Reminder(id); ok && cur.Time != nil {
			t := *cur.Time
			p.Time = &t
		}
	}

	var updated Reminder
	_, err = s.exec.Mutate(ctx, reconcile.OpUpdateReminder, id, func(ctx context.Context) error {
		out, err := s.remote.Update(ctx, id, p)
		updated = out
		return err
	}, func() {
		s.store.UpdateReminder(id, func(r *Reminder) { *r = p.Apply(*r) })
	})
	if err != nil {
		return Reminder{}, err
	}

	if updated.ID != "" {
		s.store.UpdateReminder(id, func(r *Reminder) { *r = updated })
		return updated, nil
	}
	s.store.UpdateReminder(id, func(r *Reminder) { *r = p.Apply(*r) })
	if cur, ok := s.store.Reminder(id); ok {
		return cur, nil
	}
	return p.Apply(Reminder{ID: id}), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	_, err := s.exec.Mutate(ctx, reconcile.OpDeleteReminder, id, func(ctx context.Context) error {
		return s.remote.Delete(ctx, id)
	}, func() {
		s.store.DeleteReminder(id)
	})
	if err != nil {
		return err
	}
	s.store.DeleteReminder(id)
	return nil
}

// Complete marca el recordatorio como hecho.
// Un segundo intento para el mismo id mientras el primero está en curso devuelve ErrInFlight.
// Con la política por defecto, si el backend falla se marca solo en local y se devuelve un warning.
func (s *Service) Complete(ctx context.Context, id string) (CompleteResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CompleteResult{}, ErrInvalidInput
	}

	release, ok := s.inflight.Acquire(id)
	if !ok {
		return CompleteResult{}, ErrInFlight
	}
	defer release()

	if cur, ok := s.store.Reminder(id); ok && cur.IsCompleted {
		return CompleteResult{Reminder: cur}, nil
	}

	markDone := func() {
		s.store.UpdateReminder(id, func(r *Reminder) { r.IsCompleted = true })
	}

	warn, err := s.exec.Mutate(ctx, reconcile.OpCompleteReminder, id, func(ctx context.Context) error {
		return s.remote.Complete(ctx, id)
	}, markDone)
	if err != nil {
		return CompleteResult{}, err
	}
	if warn == nil {
		markDone()
	}

	res := CompleteResult{Reminder: Reminder{ID: id, IsCompleted: true}}
	if cur, ok := s.store.Reminder(id); ok {
		res.Reminder = cur
	}
	if warn != nil {
		res.Warning = warn.Error()
	}
	return res, nil
}

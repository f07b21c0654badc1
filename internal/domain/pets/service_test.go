package pets

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/vocabulary"
)

var errDown = errors.New("backend down")

type testRemote struct {
	pets      map[string]Pet
	err       error
	creates   []CreateInput
	deletes   int
	uploadDoc Document
}

func newTestRemote(items ...Pet) *testRemote {
	r := &testRemote{pets: map[string]Pet{}}
	for _, p := range items {
		r.pets[p.ID] = p
	}
	return r
}

func (r *testRemote) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]Pet, 0)
	for _, p := range r.pets {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRemote) GetByID(ctx context.Context, id string) (Pet, error) {
	if r.err != nil {
		return Pet{}, r.err
	}
	p, ok := r.pets[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRemote) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	r.creates = append(r.creates, in)
	if r.err != nil {
		return Pet{}, r.err
	}
	p := in.Pet
	p.ID = "101"
	return p, nil
}

func (r *testRemote) Update(ctx context.Context, id string, p Patch) (Pet, error) {
	if r.err != nil {
		return Pet{}, r.err
	}
	cur := p.Apply(r.pets[id])
	r.pets[id] = cur
	return cur, nil
}

func (r *testRemote) Delete(ctx context.Context, id string) error {
	r.deletes++
	return r.err
}

func (r *testRemote) UploadDocument(ctx context.Context, petID string, doc DocumentUpload) (Document, error) {
	if r.err != nil {
		return Document{}, r.err
	}
	return r.uploadDoc, nil
}

type testStore struct {
	byID map[string]Pet
}

func newTestStore(items ...Pet) *testStore {
	s := &testStore{byID: map[string]Pet{}}
	for _, p := range items {
		s.byID[p.ID] = p
	}
	return s
}

func (s *testStore) SetPets(ownerUserID string, items []Pet) {
	for _, p := range items {
		s.byID[p.ID] = p
	}
}
func (s *testStore) AddPet(p Pet) { s.byID[p.ID] = p }
func (s *testStore) UpdatePet(id string, fn func(*Pet)) {
	if p, ok := s.byID[id]; ok {
		fn(&p)
		s.byID[id] = p
	}
}
func (s *testStore) DeletePet(id string) { delete(s.byID, id) }
func (s *testStore) Pet(id string) (Pet, bool) {
	p, ok := s.byID[id]
	return p, ok
}

type (
	vaccLister  []vaccinations.Vaccination
	treatLister []treatments.Treatment
	consLister  []consultations.Record
	remLister   []reminders.Reminder
)

func (l vaccLister) ListByPet(context.Context, string) []vaccinations.Vaccination { return l }
func (l treatLister) ListByPet(context.Context, string) []treatments.Treatment    { return l }
func (l consLister) ListByPet(context.Context, string) []consultations.Record     { return l }
func (l remLister) ListByPet(context.Context, string) []reminders.Reminder        { return l }

func ptr[T any](v T) *T { return &v }

func fixedNow() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

func newTestService(remote Remote, store Store, listers Listers) *Service {
	s := NewService(remote, store, nil, listers)
	s.now = fixedNow
	return s
}

// -------------------------
// Edad
// -------------------------

func TestCalculateAge(t *testing.T) {
	now := fixedNow()
	cases := map[string]string{
		"2024-06-15": "1 año",
		"2023-06-15": "2 años",
		"2023-06-16": "1 año",
		"2024-06-16": "11 meses",
		"2025-05-15": "1 mes",
		"2025-06-01": "0 meses",
		"":           "",
		"15/06/2024": "",
	}
	for in, want := range cases {
		assert.Equal(t, want, CalculateAge(in, now), in)
	}
}

// -------------------------
// Lecturas
// -------------------------

func TestListByOwner_DegradesToEmpty(t *testing.T) {
	remote := newTestRemote()
	remote.err = errDown
	svc := newTestService(remote, newTestStore(), Listers{})

	got := svc.ListByOwner(context.Background(), "u1")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByOwner_ComputesAgeLocally(t *testing.T) {
	remote := newTestRemote(Pet{ID: "1", OwnerUserID: "u1", Name: "Rex", BirthDate: ptr("2023-06-15"), Age: "99 años"})
	store := newTestStore()
	svc := newTestService(remote, store, Listers{})

	got := svc.ListByOwner(context.Background(), "u1")
	require.Len(t, got, 1)
	assert.Equal(t, "2 años", got[0].Age)

	_, ok := store.Pet("1")
	assert.True(t, ok)
}

func TestGetByID_FallsBackToLocalCopy(t *testing.T) {
	remote := newTestRemote()
	remote.err = errDown
	store := newTestStore(Pet{ID: "1", Name: "Rex"})
	svc := newTestService(remote, store, Listers{})

	p, err := svc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)

	_, err = svc.GetByID(context.Background(), "2")
	assert.ErrorIs(t, err, errDown)
}

func TestProfile_AggregatesCollections(t *testing.T) {
	remote := newTestRemote(Pet{ID: "1", OwnerUserID: "u1", Name: "Rex"})
	store := newTestStore()
	svc := newTestService(remote, store, Listers{
		Vaccinations:  vaccLister{{ID: "v1", PetID: "1"}},
		Treatments:    treatLister{},
		Consultations: consLister{{ID: "c1", PetID: "1"}, {ID: "c2", PetID: "1"}},
		Reminders:     remLister{{ID: "r1", PetID: "1"}},
	})

	prof, err := svc.Profile(context.Background(), "1")
	require.NoError(t, err)
	assert.Len(t, prof.Pet.Vaccinations, 1)
	assert.NotNil(t, prof.Pet.Treatments)
	assert.Empty(t, prof.Pet.Treatments)
	assert.Len(t, prof.Pet.Consultations, 2)
	assert.Len(t, prof.Reminders, 1)

	cached, _ := store.Pet("1")
	assert.Len(t, cached.Consultations, 2)
}

// -------------------------
// Mutaciones
// -------------------------

func TestCreate_AttachesNestedChildrenFromRequest(t *testing.T) {
	remote := newTestRemote()
	store := newTestStore()
	svc := newTestService(remote, store, Listers{})

	p, err := svc.Create(context.Background(), "u1", CreateInput{
		Pet: Pet{Name: " Luna ", Species: "CAT", Sex: "Female", BirthDate: ptr("2024-06-15"), Weight: &WeightRange{Min: 4}},
		Vaccinations: []vaccinations.Vaccination{
			{Name: "antirrábica", ApplicationDate: "2024-08-01"},
			{Name: "vacuna experimental", ApplicationDate: "2024-09-01"},
		},
		Treatments: []treatments.Treatment{
			{Category: ptr("antiparasitario"), Medication: "Revolution", StartDate: "2024-08-01"},
		},
	})
	require.NoError(t, err)

	require.Len(t, remote.creates, 1)
	assert.Len(t, remote.creates[0].Vaccinations, 2)
	assert.Len(t, remote.creates[0].Treatments, 1)

	assert.Equal(t, "101", p.ID)
	assert.Equal(t, "u1", p.OwnerUserID)
	assert.Equal(t, "Luna", p.Name)
	assert.Equal(t, SpeciesCat, p.Species)
	assert.Equal(t, SexFemale, p.Sex)
	assert.Equal(t, "1 año", p.Age)
	assert.Equal(t, &WeightRange{Min: 4, Max: 4, Unit: "kg"}, p.Weight)

	require.Len(t, p.Vaccinations, 2)
	assert.Equal(t, vocabulary.VaccineRabies, p.Vaccinations[0].Name)
	assert.Equal(t, vocabulary.VaccineOther, p.Vaccinations[1].Name)
	assert.Equal(t, "101", p.Vaccinations[0].PetID)
	require.Len(t, p.Treatments, 1)
	assert.Equal(t, "101", p.Treatments[0].PetID)

	cached, ok := store.Pet("101")
	require.True(t, ok)
	assert.Len(t, cached.Vaccinations, 2)
}

func TestCreate_ValidationBeforeNetwork(t *testing.T) {
	remote := newTestRemote()
	svc := newTestService(remote, newTestStore(), Listers{})

	cases := []CreateInput{
		{Pet: Pet{Name: "", Species: SpeciesDog}},
		{Pet: Pet{Name: "Rex", Species: "bird"}},
		{Pet: Pet{Name: "Rex", Species: SpeciesDog, BirthDate: ptr("ayer")}},
		{Pet: Pet{Name: "Rex", Species: SpeciesDog, Weight: &WeightRange{Min: 10, Max: 5}}},
		{Pet: Pet{Name: "Rex", Species: SpeciesDog}, Vaccinations: []vaccinations.Vaccination{{Name: "Rabia"}}},
	}
	for i, c := range cases {
		_, err := svc.Create(context.Background(), "u1", c)
		assert.ErrorIs(t, err, ErrInvalidInput, i)
	}
	assert.Empty(t, remote.creates)
}

func TestCreate_StrictPropagatesBackendError(t *testing.T) {
	remote := newTestRemote()
	remote.err = errDown
	store := newTestStore()
	svc := newTestService(remote, store, Listers{})

	_, err := svc.Create(context.Background(), "u1", CreateInput{Pet: Pet{Name: "Rex", Species: SpeciesDog}})
	assert.ErrorIs(t, err, errDown)
	assert.Empty(t, store.byID)
}

func TestUpdate_KeepsLocalCollections(t *testing.T) {
	remote := newTestRemote(Pet{ID: "1", Name: "Rex", Species: SpeciesDog})
	store := newTestStore(Pet{ID: "1", Name: "Rex", Species: SpeciesDog, Vaccinations: []vaccinations.Vaccination{{ID: "v1"}}})
	svc := newTestService(remote, store, Listers{})

	p, err := svc.Update(context.Background(), "1", Patch{Name: ptr("Rex II")})
	require.NoError(t, err)
	assert.Equal(t, "Rex II", p.Name)
	assert.Len(t, p.Vaccinations, 1)
}

func TestDelete_StrictLeavesStoreOnFailure(t *testing.T) {
	remote := newTestRemote()
	remote.err = errDown
	store := newTestStore(Pet{ID: "1"})
	svc := newTestService(remote, store, Listers{})

	assert.ErrorIs(t, svc.Delete(context.Background(), "1"), errDown)
	_, ok := store.Pet("1")
	assert.True(t, ok)

	remote.err = nil
	require.NoError(t, svc.Delete(context.Background(), "1"))
	_, ok = store.Pet("1")
	assert.False(t, ok)
}

func TestUploadDocument_AppendsToPet(t *testing.T) {
	remote := newTestRemote()
	remote.uploadDoc = Document{ID: "d1", URL: ptr("https://files/d1.pdf")}
	store := newTestStore(Pet{ID: "1"})
	svc := newTestService(remote, store, Listers{})

	_, err := svc.UploadDocument(context.Background(), "1", DocumentUpload{Name: "x.pdf"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	doc, err := svc.UploadDocument(context.Background(), "1", DocumentUpload{Name: "analisis.pdf", Body: strings.NewReader("%PDF")})
	require.NoError(t, err)
	assert.Equal(t, "1", doc.PetID)
	assert.Equal(t, "analisis.pdf", doc.Name)

	cached, _ := store.Pet("1")
	assert.Len(t, cached.Documents, 1)
}

package remote

import (
	"context"
	"net/url"

	"pet-care-companion/internal/adapters/remote/mapper"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/platform/httpclient"
)

type Pets struct {
	gw Gateway
	m  *mapper.Mapper
}

func (a *Pets) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	var wire []mapper.Pet
	if err := a.gw.Get(ctx, resourcePets, url.Values{"userId": {ownerUserID}}).Decode(&wire); err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(wire))
	for _, w := range wire {
		p := a.m.PetToLocal(w)
		// el listado ya viene filtrado por usuario y a veces omite userId
		if p.OwnerUserID == "" {
			p.OwnerUserID = ownerUserID
		}
		out = append(out, p)
	}
	return out, nil
}

func (a *Pets) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var w mapper.Pet
	if err := a.gw.Get(ctx, path(resourcePets, id), nil).Decode(&w); err != nil {
		return pets.Pet{}, err
	}
	return a.m.PetToLocal(w), nil
}

// Create hace un único POST con vacunas y tratamientos embebidos.
func (a *Pets) Create(ctx context.Context, ownerUserID string, in pets.CreateInput) (pets.Pet, error) {
	var w mapper.Pet
	if err := a.gw.Post(ctx, resourcePets, a.m.PetToRemote(ownerUserID, in)).Decode(&w); err != nil {
		return pets.Pet{}, err
	}
	return a.m.PetToLocal(w), nil
}

func (a *Pets) Update(ctx context.Context, id string, p pets.Patch) (pets.Pet, error) {
	var w mapper.Pet
	ok, err := decodeOptional(a.gw.Put(ctx, path(resourcePets, id), a.m.PetPatchToRemote(p)), &w)
	if err != nil || !ok {
		return pets.Pet{}, err
	}
	return a.m.PetToLocal(w), nil
}

func (a *Pets) Delete(ctx context.Context, id string) error {
	return a.gw.Delete(ctx, path(resourcePets, id)).Err()
}

func (a *Pets) UploadDocument(ctx context.Context, petID string, doc pets.DocumentUpload) (pets.Document, error) {
	res := a.gw.Upload(ctx, path(resourcePets, petID, "documents"), httpclient.UploadFile{
		Field:       "file",
		Name:        doc.Name,
		ContentType: doc.ContentType,
		Body:        doc.Body,
	}, map[string]string{"name": doc.Name})

	var w mapper.Document
	ok, err := decodeOptional(res, &w)
	if err != nil {
		return pets.Document{}, err
	}
	if !ok {
		return pets.Document{PetID: petID, Name: doc.Name}, nil
	}
	return a.m.DocumentToLocal(w, petID), nil
}

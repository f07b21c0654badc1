// Package remote implementa los puertos Remote de cada dominio sobre el gateway HTTP.
package remote

import (
	"context"
	"net/url"
	"strings"

	"pet-care-companion/internal/adapters/remote/mapper"
	"pet-care-companion/internal/platform/httpclient"
)

// Recursos del backend.
const (
	resourcePets          = "pets"
	resourceVaccines      = "vaccines"
	resourceTreatments    = "treatment"
	resourceConsultations = "consultations"
	resourcePendings      = "pendings"
)

// Gateway es lo que los adapters necesitan del cliente HTTP.
type Gateway interface {
	Get(ctx context.Context, endpoint string, params url.Values) httpclient.Result
	Post(ctx context.Context, endpoint string, payload any) httpclient.Result
	Put(ctx context.Context, endpoint string, payload any) httpclient.Result
	Delete(ctx context.Context, endpoint string) httpclient.Result
	Upload(ctx context.Context, endpoint string, file httpclient.UploadFile, fields map[string]string) httpclient.Result
}

func path(parts ...string) string {
	esc := make([]string, 0, len(parts))
	for i, p := range parts {
		if i == 0 {
			esc = append(esc, p)
			continue
		}
		esc = append(esc, url.PathEscape(p))
	}
	return strings.Join(esc, "/")
}

func byPet(petID string) url.Values {
	return url.Values{"petId": {petID}}
}

// decodeOptional: algunos PUT devuelven la entidad y otros solo {success:true}.
func decodeOptional(res httpclient.Result, out any) (bool, error) {
	if err := res.Err(); err != nil {
		return false, err
	}
	if len(res.Data) == 0 || string(res.Data) == "null" {
		return false, nil
	}
	if err := res.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// Adapters agrupa una implementación por dominio, todas sobre el mismo gateway.
type Adapters struct {
	Pets          *Pets
	Vaccinations  *Vaccinations
	Treatments    *Treatments
	Consultations *Consultations
	Reminders     *Reminders
}

func NewAdapters(gw Gateway, m *mapper.Mapper) Adapters {
	if m == nil {
		m = mapper.New()
	}
	return Adapters{
		Pets:          &Pets{gw: gw, m: m},
		Vaccinations:  &Vaccinations{gw: gw, m: m},
		Treatments:    &Treatments{gw: gw, m: m},
		Consultations: &Consultations{gw: gw, m: m},
		Reminders:     &Reminders{gw: gw, m: m},
	}
}

package consultations

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/consultations", func(cr chi.Router) {
		cr.Get("/", listHandler(svc))
		cr.Post("/", createHandler(svc))
	})
	r.Put("/consultations/{id}", updateHandler(svc))
	r.Delete("/consultations/{id}", deleteHandler(svc))
}

// createRequest es la consulta más las vacunas/tratamientos aplicados en ella.
type createRequest struct {
	Record
	Vaccinations []vaccinations.Vaccination `json:"vaccinations"`
	Treatments   []treatments.Treatment     `json:"treatments"`
}

// listHandler godoc
// @Summary Listar consultas de una mascota
// @Tags consultations
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Record
// @Router /pets/{petID}/consultations [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		respond.JSON(w, http.StatusOK, svc.ListByPet(r.Context(), chi.URLParam(r, "petID")))
	}
}

// createHandler godoc
// @Summary Registrar consulta
// @Description Crea la consulta y sus sub-registros en un único request al backend. Si el backend falla no se guarda nada localmente.
// @Tags consultations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param payload body createRequest true "Consulta con vacunas y tratamientos opcionales"
// @Success 201 {object} Record
// @Failure 400 {string} string "invalid json / validación"
// @Failure 502 {string} string "error del backend"
// @Router /pets/{petID}/consultations [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		req.Record.PetID = chi.URLParam(r, "petID")

		created, err := svc.Create(r.Context(), CreateInput{
			Record:       req.Record,
			Vaccinations: req.Vaccinations,
			Treatments:   req.Treatments,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusCreated, created)
	}
}

func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var p Patch
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "id"), p)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, updated)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respond.Error(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

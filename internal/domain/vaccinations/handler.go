package vaccinations

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/vaccinations", func(vr chi.Router) {
		vr.Get("/", listHandler(svc))
		vr.Post("/", createHandler(svc))
	})
	r.Put("/vaccinations/{id}", updateHandler(svc))
	r.Delete("/vaccinations/{id}", deleteHandler(svc))
}

// listHandler godoc
// @Summary Listar vacunas de una mascota
// @Description Si el backend no responde devuelve una lista vacía.
// @Tags vaccinations
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Vaccination
// @Failure 401 {string} string "unauthorized"
// @Router /pets/{petID}/vaccinations [get]
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
// @Summary Registrar vacuna
// @Description El nombre se normaliza contra el catálogo; lo desconocido queda como "Other".
// @Tags vaccinations
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param payload body Vaccination true "Vacuna; fechas YYYY-MM-DD"
// @Success 201 {object} Vaccination
// @Failure 400 {string} string "invalid json / validación"
// @Failure 502 {string} string "error del backend"
// @Router /pets/{petID}/vaccinations [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var v Vaccination
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		v.PetID = chi.URLParam(r, "petID")

		created, err := svc.Create(r.Context(), v)
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

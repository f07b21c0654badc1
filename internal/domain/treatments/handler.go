package treatments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/treatments", func(vr chi.Router) {
		vr.Get("/", listHandler(svc))
		vr.Post("/", createHandler(svc))
	})
	r.Put("/treatments/{id}", updateHandler(svc))
	r.Delete("/treatments/{id}", deleteHandler(svc))
}

// listHandler godoc
// @Summary Listar tratamientos de una mascota
// @Description Si el backend no responde devuelve una lista vacía.
// @Tags treatments
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Treatment
// @Failure 401 {string} string "unauthorized"
// @Router /pets/{petID}/treatments [get]
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
// @Summary Registrar tratamiento
// @Tags treatments
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param payload body Treatment true "Tratamiento; fechas YYYY-MM-DD"
// @Success 201 {object} Treatment
// @Failure 400 {string} string "invalid json / validación"
// @Failure 502 {string} string "error del backend"
// @Router /pets/{petID}/treatments [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var t Treatment
		if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		t.PetID = chi.URLParam(r, "petID")

		created, err := svc.Create(r.Context(), t)
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

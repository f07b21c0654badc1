package reminders

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/respond"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets/{petID}/reminders", func(rr chi.Router) {
		rr.Get("/", listHandler(svc))
		rr.Post("/", createHandler(svc))
	})
	r.Route("/reminders/{id}", func(rr chi.Router) {
		rr.Put("/", updateHandler(svc))
		rr.Delete("/", deleteHandler(svc))
		rr.Post("/complete", completeHandler(svc))
	})
}

// listHandler godoc
// @Summary Listar recordatorios de una mascota
// @Description Con pending=true devuelve solo los no completados, ordenados por fecha y hora.
// @Tags reminders
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param pending query bool false "Solo pendientes"
// @Success 200 {array} Reminder
// @Router /pets/{petID}/reminders [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		petID := chi.URLParam(r, "petID")
		if pending, _ := strconv.ParseBool(r.URL.Query().Get("pending")); pending {
			respond.JSON(w, http.StatusOK, svc.Pending(r.Context(), petID))
			return
		}
		respond.JSON(w, http.StatusOK, svc.ListByPet(r.Context(), petID))
	}
}

// createHandler godoc
// @Summary Crear recordatorio
// @Tags reminders
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param payload body Reminder true "Recordatorio; date YYYY-MM-DD, time HH:MM opcional"
// @Success 201 {object} Reminder
// @Failure 400 {string} string "invalid json / validación"
// @Failure 502 {string} string "error del backend"
// @Router /pets/{petID}/reminders [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var rem Reminder
		if err := json.NewDecoder(r.Body).Decode(&rem); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		rem.PetID = chi.URLParam(r, "petID")

		created, err := svc.Create(r.Context(), rem)
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

// completeHandler godoc
// @Summary Completar recordatorio
// @Description Si el backend falla, la marca queda solo en local y la respuesta trae un warning. No se reintenta.
// @Tags reminders
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param id path string true "ID del recordatorio"
// @Success 200 {object} CompleteResult
// @Failure 409 {string} string "operation already in flight"
// @Router /reminders/{id}/complete [post]
func completeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := svc.Complete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, res)
	}
}

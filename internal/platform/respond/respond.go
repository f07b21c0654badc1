// Package respond junta writeJSON y el mapeo error -> status que comparten los handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/platform/httpclient"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error traduce los errores de los servicios a status HTTP.
//   - validación          -> 400 con el detalle
//   - 404 del backend      -> 404
//   - operación en curso   -> 409
//   - otro fallo remoto    -> 502 con el mensaje del backend
func Error(w http.ResponseWriter, err error) {
	http.Error(w, Message(err), Status(err))
}

func Status(err error) int {
	var he *httpclient.HTTPError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, reconcile.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, reconcile.ErrNotFound), httpclient.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, reconcile.ErrInFlight):
		return http.StatusConflict
	case errors.As(err, &he):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Message(err error) string {
	switch Status(err) {
	case http.StatusInternalServerError:
		return "internal error"
	case http.StatusNotFound:
		return "not found"
	default:
		return err.Error()
	}
}

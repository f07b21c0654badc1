package pets

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/respond"
)

// maxUploadBytes limita el multipart de documentos en memoria.
const maxUploadBytes = 10 << 20

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getProfileHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Post("/{petID}/documents", uploadDocumentHandler(svc))
	})
}

// createPetRequest: perfil + vacunas y tratamientos iniciales (se crean en el mismo request remoto).
type createPetRequest struct {
	Name         string                     `json:"name"`
	Species      Species                    `json:"species" enums:"dog,cat"`
	Breed        string                     `json:"breed"`
	Sex          Sex                        `json:"sex" enums:"male,female,unknown"`
	BirthDate    *string                    `json:"birth_date"` // YYYY-MM-DD
	Weight       *WeightRange               `json:"weight"`
	Notes        *string                    `json:"notes"`
	Vaccinations []vaccinations.Vaccination `json:"vaccinations"`
	Treatments   []treatments.Treatment     `json:"treatments"`
}

func (req createPetRequest) toInput() CreateInput {
	return CreateInput{
		Pet: Pet{
			Name:      req.Name,
			Species:   req.Species,
			Breed:     req.Breed,
			Sex:       req.Sex,
			BirthDate: req.BirthDate,
			Weight:    req.Weight,
			Notes:     req.Notes,
		},
		Vaccinations: req.Vaccinations,
		Treatments:   req.Treatments,
	}
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Description Devuelve las mascotas del usuario de la sesión. Si el backend no responde devuelve una lista vacía.
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Success 200 {array} Pet
// @Failure 401 {string} string "unauthorized"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		respond.JSON(w, http.StatusOK, svc.ListByOwner(r.Context(), userID))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Crea la mascota junto con sus vacunas y tratamientos iniciales en un único request al backend.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param payload body createPetRequest true "Perfil y registros iniciales"
// @Success 201 {object} Pet
// @Failure 400 {string} string "invalid json / validación"
// @Failure 401 {string} string "unauthorized"
// @Failure 502 {string} string "error del backend"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), userID, req.toInput())
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, p)
	}
}

// getProfileHandler godoc
// @Summary Perfil de mascota
// @Description Mascota con vacunas, tratamientos, consultas y recordatorios. Cada colección degrada a vacío por separado.
// @Tags pets
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Profile
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "not found"
// @Router /pets/{petID} [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.Profile(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, p)
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Update parcial: los campos ausentes no se tocan.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param payload body Patch true "Campos a cambiar"
// @Success 200 {object} Pet
// @Failure 400 {string} string "invalid json / validación"
// @Failure 502 {string} string "error del backend"
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var patch Patch
		if err := dec.Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), patch)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, p)
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			respond.Error(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// uploadDocumentHandler godoc
// @Summary Adjuntar documento
// @Tags pets
// @Accept mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param petID path string true "ID de la mascota"
// @Param file formData file true "Archivo"
// @Success 201 {object} Document
// @Failure 400 {string} string "file is required"
// @Failure 502 {string} string "error del backend"
// @Router /pets/{petID}/documents [post]
func uploadDocumentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.UserID(r); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		doc, err := svc.UploadDocument(r.Context(), chi.URLParam(r, "petID"), DocumentUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, doc)
	}
}

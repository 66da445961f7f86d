package pets

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"

	"petstore/internal/middleware"
	"petstore/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// PetIDHeader lleva el id de la mascota devuelta en GET /pet/{id}.
const PetIDHeader = "x-pet-id"

// maxBodyBytes limita el body de POST /pet.
const maxBodyBytes = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/pet", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, log))
		pr.Get("/{id}", getPetHandler(svc, log))
	})
}

type createPetRequest struct {
	// Punteros para distinguir "no enviado" de cero / string vacío.
	ID   *int    `json:"id"`
	Name *string `json:"name"`
	Tag  *string `json:"tag"`
}

type petResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Fufi"`
	Tag  string `json:"tag,omitempty" example:"ABC"`
}

// getPetHandler godoc
// @Summary Obtener mascota por id
// @Description Devuelve la primera mascota (orden de inserción) con ese id. El id viaja también en el header `x-pet-id`. Los errores no llevan body.
// @Tags pets
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Header 200 {string} x-pet-id "ID de la mascota"
// @Failure 400 "id ausente o no numérico"
// @Failure 404 "pet not found"
// @Router /pet/{id} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// chi garantiza el segmento en una ruta matcheada, igual se valida.
		raw := chi.URLParam(r, "id")
		if raw == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p, err := svc.FindByID(r.Context(), int(id))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			log.Error("find pet failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"pet_id":     id,
				"err":        err.Error(),
			})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set(PetIDHeader, strconv.Itoa(p.ID))
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Agrega la mascota al final del store. No se valida unicidad del id: si se repite, GET devuelve la primera insertada. Responde 202 sin body. El id debe entrar en int32 (mismo rango que GET). Un tag vacío ("") se guarda como sin tag y GET lo omite.
// @Tags pets
// @Accept json
// @Param payload body createPetRequest true "Mascota; id y name requeridos, tag opcional"
// @Success 202 "accepted"
// @Failure 400 "json inválido, faltan id/name o id fuera de rango"
// @Router /pet [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

		var req createPetRequest
		if err := dec.Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		// Un solo objeto JSON por request.
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.ID == nil || req.Name == nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		// Mismo rango que el id del path: lo que se crea se puede leer.
		if *req.ID < math.MinInt32 || *req.ID > math.MaxInt32 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		in := CreateInput{ID: *req.ID, Name: *req.Name}
		if req.Tag != nil {
			in.Tag = *req.Tag
		}

		if _, err := svc.Add(r.Context(), in); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			log.Error("add pet failed", map[string]any{
				"request_id": middleware.GetRequestID(r.Context()),
				"pet_id":     in.ID,
				"err":        err.Error(),
			})
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusAccepted)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:   p.ID,
		Name: p.Name,
		Tag:  p.Tag,
	}
}

// writeJSON escribe el body sin newline final: el cliente compara el JSON tal cual.
func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

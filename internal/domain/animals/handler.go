package animals

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))

		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

// animalRequest es el cuerpo aceptado por create y update (mismo esquema:
// update es reemplazo completo, no patch).
type animalRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     *int   `json:"age"`
}

// animalResponse representa un animal devuelto por la API.
type animalResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Age     int    `json:"age"`
}

// errorResponse es el cuerpo uniforme de error: {"error": "<mensaje>"}.
type errorResponse struct {
	Error string `json:"error"`
}

// createAnimalHandler godoc
// @Summary Crear un animal
// @Description Crea un animal nuevo. El ID lo asigna el store y vuelve en la respuesta; cualquier id enviado por el cliente se ignora. Un documento que no cumple el esquema (name, species y age obligatorios) se rechaza sin persistir.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body animalRequest true "Campos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} errorResponse "json inválido o esquema incumplido"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		a, err := svc.Create(r.Context(), AnimalFields{
			Name:    req.Name,
			Species: req.Species,
			Age:     req.Age,
		})
		if err != nil {
			// create pliega todo error (esquema o store) en 400
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Devuelve todos los animales del catálogo, sin paginación ni filtros. Con el catálogo vacío responde un array vacío, nunca null.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {object} errorResponse "fallo del store"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	// Única operación que reporta 500 ante fallo del store (ver writeRepoError)
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener un animal
// @Description Busca un animal por su ID. Un id que no cumple la sintaxis del store es 400; un id bien formado sin documento es 404.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal (hex de 24 caracteres)"
// @Success 200 {object} animalResponse
// @Failure 400 {object} errorResponse "id malformado"
// @Failure 404 {object} errorResponse "animal inexistente"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "animalID")

		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeRepoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Reemplazar un animal
// @Description Reemplaza el documento completo del animal (no es patch: el cuerpo se valida con el mismo esquema que create). Responde el estado posterior a la escritura con el mismo ID.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal (hex de 24 caracteres)"
// @Param payload body animalRequest true "Campos nuevos del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {object} errorResponse "json inválido, esquema incumplido o id malformado"
// @Failure 404 {object} errorResponse "animal inexistente"
// @Router /animals/{animalID} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "animalID")

		var req animalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json body")
			return
		}

		a, err := svc.Replace(r.Context(), id, AnimalFields{
			Name:    req.Name,
			Species: req.Species,
			Age:     req.Age,
		})
		if err != nil {
			writeRepoError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// deleteAnimalHandler godoc
// @Summary Eliminar un animal
// @Description Elimina el animal indicado. El borrado no es idempotente a nivel respuesta: el segundo delete del mismo id responde 404.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal (hex de 24 caracteres)"
// @Success 204 "sin cuerpo"
// @Failure 400 {object} errorResponse "id malformado"
// @Failure 404 {object} errorResponse "animal inexistente"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "animalID")

		if err := svc.Delete(r.Context(), id); err != nil {
			writeRepoError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// writeRepoError traduce errores de service/repo al contrato HTTP de los
// handlers por id: id malformado => 400, id sin documento => 404.
// Cualquier otro error (esquema incluido) se pliega en 400; solo list
// responde 500, y ese caso no pasa por acá.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Animal not found")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:      a.ID,
		Name:    a.Name,
		Species: a.Species,
		Age:     a.Age,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

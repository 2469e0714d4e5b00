package handler

import (
	"encoding/json"
	"net/http"

	"fragenspiel/internal/model"
	"fragenspiel/internal/service"
)

// CharacterHandler handles character catalog endpoints
type CharacterHandler struct {
	characterSvc *service.CharacterService
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(characterSvc *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{characterSvc: characterSvc}
}

// List handles GET /v1/characters
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	characters, err := h.characterSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if characters == nil {
		characters = []*model.Character{}
	}
	writeJSON(w, http.StatusOK, characters)
}

// Get handles GET /v1/characters/{id}
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntVar(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}

	character, err := h.characterSvc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, character)
}

// Create handles POST /v1/characters
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var character model.Character
	if err := json.NewDecoder(r.Body).Decode(&character); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	character.ID = 0

	if err := h.characterSvc.Create(r.Context(), &character); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, character)
}

// Update handles PUT /v1/characters/{id}
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntVar(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}

	var character model.Character
	if err := json.NewDecoder(r.Body).Decode(&character); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	character.ID = id

	if err := h.characterSvc.Update(r.Context(), &character); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, character)
}

// Delete handles DELETE /v1/characters/{id}
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntVar(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}

	if err := h.characterSvc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "character deleted"})
}

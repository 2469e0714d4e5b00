package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"fragenspiel/internal/service"
)

// GameHandler handles the persistent game endpoints
type GameHandler struct {
	gameSvc *service.GameService
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameSvc *service.GameService) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// QuestionForCharacter handles GET /v1/game/question/{characterId}
func (h *GameHandler) QuestionForCharacter(w http.ResponseWriter, r *http.Request) {
	characterID, err := parseIntVar(r, "characterId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}
	season, err := parseSeason(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid season")
		return
	}

	gq, err := h.gameSvc.QuestionForCharacter(r.Context(), characterID, season)
	if errors.Is(err, service.ErrNoQuestionsAvailable) {
		writeJSON(w, http.StatusOK, assignmentResponse{Done: true})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignmentResponse{
		Character: &gq.Character,
		Question:  &gq.Question,
	})
}

// RecordAnswer handles POST /v1/game/answer
func (h *GameHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.gameSvc.RecordAnswer(r.Context(), req.CharacterID, req.QuestionID, req.AnswerText)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "answer recorded",
		"answer":  answer,
	})
}

// Status handles GET /v1/game/status
func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.gameSvc.Status(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

// ResetCharacter handles DELETE /v1/game/reset/{characterId}
func (h *GameHandler) ResetCharacter(w http.ResponseWriter, r *http.Request) {
	characterID, err := parseIntVar(r, "characterId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}

	deleted, err := h.gameSvc.ResetCharacter(r.Context(), characterID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      fmt.Sprintf("all answers for character %d reset", characterID),
		"deletedCount": deleted,
	})
}

// ResetAll handles DELETE /v1/game/reset-all
func (h *GameHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.gameSvc.ResetAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "all answers reset",
		"deletedCount": deleted,
	})
}

// CharacterAnswers handles GET /v1/game/answers/{characterId}
func (h *GameHandler) CharacterAnswers(w http.ResponseWriter, r *http.Request) {
	characterID, err := parseIntVar(r, "characterId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}

	answers, err := h.gameSvc.CharacterAnswers(r.Context(), characterID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answers)
}

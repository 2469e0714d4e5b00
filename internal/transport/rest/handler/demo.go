package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fragenspiel/internal/model"
	"fragenspiel/internal/service"
)

// DemoHandler handles the ephemeral demo game endpoints
type DemoHandler struct {
	demoSvc *service.DemoService
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(demoSvc *service.DemoService) *DemoHandler {
	return &DemoHandler{demoSvc: demoSvc}
}

// Start handles POST /v1/demo/start
func (h *DemoHandler) Start(w http.ResponseWriter, r *http.Request) {
	token, err := h.demoSvc.Start(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create demo session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"sessionId": token})
}

// Validate handles GET /v1/demo/validate/{token}
func (h *DemoHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	valid, err := h.demoSvc.Validate(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to validate demo session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

// Characters handles GET /v1/demo/{token}/characters
func (h *DemoHandler) Characters(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	characters, err := h.demoSvc.Characters(r.Context(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, characters)
}

// Questions handles GET /v1/demo/{token}/questions
func (h *DemoHandler) Questions(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	questions, err := h.demoSvc.Questions(r.Context(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// assignmentResponse wraps an assignment result. Done reports exhaustion:
// every question matching the filter has been answered, which is the
// natural end of the game rather than an error.
type assignmentResponse struct {
	Done      bool             `json:"done"`
	Character *model.Character `json:"character,omitempty"`
	Question  *model.Question  `json:"question,omitempty"`
}

// QuestionForCharacter handles GET /v1/demo/{token}/question/{characterId}
func (h *DemoHandler) QuestionForCharacter(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

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

	gq, err := h.demoSvc.QuestionForCharacter(r.Context(), token, characterID, season)
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

// AnswerRequest is the request body for recording an answer
type AnswerRequest struct {
	CharacterID int    `json:"characterId"`
	QuestionID  int    `json:"questionId"`
	AnswerText  string `json:"answerText"`
}

// RecordAnswer handles POST /v1/demo/{token}/answer
func (h *DemoHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.demoSvc.RecordAnswer(r.Context(), token, req.CharacterID, req.QuestionID, req.AnswerText); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Status handles GET /v1/demo/{token}/status
func (h *DemoHandler) Status(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	statuses, err := h.demoSvc.Status(r.Context(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

// ResetCharacter handles DELETE /v1/demo/{token}/reset/{characterId}
func (h *DemoHandler) ResetCharacter(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	characterID, err := parseIntVar(r, "characterId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}

	if err := h.demoSvc.ResetCharacter(r.Context(), token, characterID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ResetAll handles DELETE /v1/demo/{token}/reset-all
func (h *DemoHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	if err := h.demoSvc.ResetAll(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CharacterAnswers handles GET /v1/demo/{token}/answers/{characterId}
func (h *DemoHandler) CharacterAnswers(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	characterID, err := parseIntVar(r, "characterId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid character id")
		return
	}

	answers, err := h.demoSvc.CharacterAnswers(r.Context(), token, characterID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, answers)
}

func parseIntVar(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

// parseSeason reads the optional ?season= filter. Absent or empty means no
// filter.
func parseSeason(r *http.Request) (*int, error) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return nil, nil
	}
	season, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &season, nil
}

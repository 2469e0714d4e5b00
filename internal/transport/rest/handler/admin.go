package handler

import (
	"encoding/json"
	"net/http"

	"fragenspiel/internal/service"
)

// AdminHandler handles the admin maintenance endpoints
type AdminHandler struct {
	adminSvc *service.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminSvc *service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Stats handles GET /v1/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminSvc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ClearDatabase handles DELETE /v1/admin/clear-db
func (h *AdminHandler) ClearDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.adminSvc.ClearDatabase(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "database cleared successfully"})
}

// Preload handles POST /v1/admin/preload
func (h *AdminHandler) Preload(w http.ResponseWriter, r *http.Request) {
	result, err := h.adminSvc.PreloadSampleData(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ImportRequest is the request body for importing a question batch
type ImportRequest struct {
	URL        string `json:"url"`
	Category   string `json:"category,omitempty"`
	Difficulty int    `json:"difficulty,omitempty"`
}

// Import handles POST /v1/admin/import
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.adminSvc.ImportQuestions(r.Context(), req.URL, req.Category, req.Difficulty)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

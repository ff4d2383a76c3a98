package handlers

import (
	"net/http"
)

// ==================== Admin Pages ====================

func (h *Handlers) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	data := AdminPageData{
		Title:     "Organizer Dashboard",
		PageTitle: "Organizer Dashboard",
		ActiveNav: "dashboard",
	}
	h.templates.AdminDashboard.ExecuteTemplate(w, "admin", data)
}

// ==================== Admin API ====================

func (h *Handlers) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Settings.Stats(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, stats)
}

func (h *Handlers) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	baseURL, err := h.Settings.GetBaseURL(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]interface{}{"base_url": baseURL})
}

func (h *Handlers) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.BaseURL != "" {
		if err := h.Settings.SetBaseURL(r.Context(), req.BaseURL); err != nil {
			respondError(w, err)
			return
		}
	}
	respondSuccess(w, "Settings updated")
}

func (h *Handlers) handleResetData(w http.ResponseWriter, r *http.Request) {
	var req ResetDataRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := h.Settings.ResetData(r.Context(), req.Tables)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, map[string]interface{}{
		"tables":  result.Tables,
		"message": result.Message,
	})
}

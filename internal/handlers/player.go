package handlers

import (
	"net/http"
)

// ==================== Roster ====================

func (h *Handlers) handleGetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.Player.ListPlayers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, players)
}

func (h *Handlers) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	player, err := h.Player.AddPlayer(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, player)
}

func (h *Handlers) handleReplacePlayers(w http.ResponseWriter, r *http.Request) {
	var req PlayersReplaceRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	players, err := h.Player.ReplaceRoster(r.Context(), req.Names)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, players)
}

func (h *Handlers) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIntParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Player.RemovePlayer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

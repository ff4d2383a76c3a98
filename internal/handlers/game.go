package handlers

import (
	"net/http"

	"github.com/abrezinsky/pubgolf/internal/services"
)

// ==================== Pages ====================

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.templates.Index.Execute(w, nil)
}

func (h *Handlers) handleGamePage(w http.ResponseWriter, r *http.Request) {
	h.templates.Game.Execute(w, nil)
}

func (h *Handlers) handleScorecardPage(w http.ResponseWriter, r *http.Request) {
	h.templates.Scorecard.Execute(w, nil)
}

// ==================== Game Session ====================

func (h *Handlers) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game := h.Game.ActiveGame(r.Context())
	if game == nil {
		respondOK(w, GameResponse{})
		return
	}
	respondOK(w, GameResponse{Game: game, Leaderboard: services.Standings(game)})
}

func (h *Handlers) handleStartGame(w http.ResponseWriter, r *http.Request) {
	var req StartGameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	game, err := h.Game.StartGame(r.Context(), req.CourseID, req.Restart)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, GameResponse{Game: game, Leaderboard: services.Standings(game)})
}

func (h *Handlers) handleRecordScore(w http.ResponseWriter, r *http.Request) {
	var req RecordScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	game, err := h.Game.RecordScore(r.Context(), req.Hole, req.Scores)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, GameResponse{Game: game, Leaderboard: services.Standings(game)})
}

func (h *Handlers) handleAdvanceHole(w http.ResponseWriter, r *http.Request) {
	game, err := h.Game.AdvanceHole(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, GameResponse{Game: game, Leaderboard: services.Standings(game)})
}

func (h *Handlers) handleEndGame(w http.ResponseWriter, r *http.Request) {
	h.Game.EndGame(r.Context())
	respondSuccess(w, "Game ended")
}

func (h *Handlers) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Game.Leaderboard(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, entries)
}

// handleGetShareQR serves a QR code pointing phones at the live scorecard
func (h *Handlers) handleGetShareQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.Settings.ShareQR(r.Context(), "/scorecard")
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// ==================== Score Vocabulary ====================

func (h *Handlers) handleGetScoreClass(w http.ResponseWriter, r *http.Request) {
	sips, err := parseIntParam(r, "sips")
	if err != nil {
		respondError(w, err)
		return
	}
	if sips < 1 {
		respondError(w, BadRequest("sips must be a positive number"))
		return
	}

	class := services.Classify(sips)
	respondOK(w, ScoreClassResponse{Sips: sips, Label: class.Label, Color: class.Color})
}

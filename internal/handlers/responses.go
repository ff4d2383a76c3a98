package handlers

import (
	"github.com/abrezinsky/pubgolf/internal/models"
	"github.com/abrezinsky/pubgolf/internal/services"
)

// GameResponse pairs a session snapshot with its derived standings
type GameResponse struct {
	Game        *models.GameState           `json:"game"`
	Leaderboard []services.LeaderboardEntry `json:"leaderboard"`
}

// ScoreClassResponse carries the golf label for a sips count
type ScoreClassResponse struct {
	Sips  int    `json:"sips"`
	Label string `json:"label"`
	Color string `json:"color"`
}

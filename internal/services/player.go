package services

import (
	"context"
	"strings"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/models"
	"github.com/abrezinsky/pubgolf/internal/repository"
)

// PlayerService handles roster business logic
type PlayerService struct {
	log  logger.Logger
	repo repository.PlayerRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(log logger.Logger, repo repository.PlayerRepository) *PlayerService {
	return &PlayerService{log: log, repo: repo}
}

// ListPlayers returns the roster in insertion order
func (s *PlayerService) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return s.repo.ListPlayers(ctx)
}

// AddPlayer appends a player to the roster
func (s *PlayerService) AddPlayer(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}
	id, err := s.repo.CreatePlayer(ctx, name)
	if err != nil {
		return nil, err
	}
	s.log.Info("Player added", "name", name)
	return &models.Player{ID: int(id), Name: name}, nil
}

// RemovePlayer removes a player from the roster. A running game keeps its
// snapshot; removal only affects future games.
func (s *PlayerService) RemovePlayer(ctx context.Context, id int) error {
	return s.repo.DeletePlayer(ctx, id)
}

// ReplaceRoster swaps the whole roster for the given names, preserving
// order. Blank names are rejected; an empty list empties the roster.
func (s *PlayerService) ReplaceRoster(ctx context.Context, names []string) ([]models.Player, error) {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrPlayerNameRequired
		}
		cleaned = append(cleaned, name)
	}

	players, err := s.repo.ReplacePlayers(ctx, cleaned)
	if err != nil {
		return nil, err
	}
	s.log.Info("Roster replaced", "players", len(players))
	return players, nil
}

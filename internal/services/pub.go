package services

import (
	"context"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/models"
	"github.com/abrezinsky/pubgolf/internal/repository"
)

// PubService exposes the pub catalog
type PubService struct {
	log  logger.Logger
	repo repository.PubRepository
}

// NewPubService creates a new PubService
func NewPubService(log logger.Logger, repo repository.PubRepository) *PubService {
	return &PubService{log: log, repo: repo}
}

// ListPubs returns the full catalog ordered by distance
func (s *PubService) ListPubs(ctx context.Context) ([]models.Pub, error) {
	return s.repo.ListPubs(ctx)
}

// GetPub returns one catalog entry
func (s *PubService) GetPub(ctx context.Context, id int) (*models.Pub, error) {
	return s.repo.GetPub(ctx, id)
}

package services

import (
	"context"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/repository"
)

// SettingsService handles settings and maintenance operations
type SettingsService struct {
	log  logger.Logger
	repo repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

// GetBaseURL returns the application base URL
func (s *SettingsService) GetBaseURL(ctx context.Context) (string, error) {
	value, err := s.repo.GetSetting(ctx, "base_url")
	if err != nil {
		if err == repository.ErrNotFound {
			return "", nil // No default - setting not yet configured
		}
		return "", err // Propagate database errors
	}
	return value, nil
}

// SetBaseURL saves the application base URL
func (s *SettingsService) SetBaseURL(ctx context.Context, url string) error {
	return s.repo.SetSetting(ctx, "base_url", strings.TrimRight(url, "/"))
}

// GetSetting retrieves an arbitrary setting
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.repo.GetSetting(ctx, key)
}

// SetSetting saves an arbitrary setting
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	return s.repo.SetSetting(ctx, key, value)
}

// ShareQR renders a QR code PNG pointing at the given path under the
// configured base URL, so phones on the same network can join with a scan.
func (s *SettingsService) ShareQR(ctx context.Context, path string) ([]byte, error) {
	baseURL, err := s.GetBaseURL(ctx)
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		return nil, ErrShareLinkUnavailable
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	png, err := qrcode.Encode(baseURL+path, qrcode.Medium, 256)
	if err != nil {
		return nil, err
	}
	return png, nil
}

// Stats returns row counts for the admin dashboard
func (s *SettingsService) Stats(ctx context.Context) (map[string]interface{}, error) {
	return s.repo.GetStats(ctx)
}

// ResetDataResult contains the result of a data reset
type ResetDataResult struct {
	Tables  []string
	Message string
}

// ResetData clears the specified tables and reseeds the catalog defaults,
// so the app never ends up with an empty pub list or no roster at all.
func (s *SettingsService) ResetData(ctx context.Context, tables []string) (*ResetDataResult, error) {
	if len(tables) == 0 {
		return nil, ErrNoTablesSpecified
	}

	for _, table := range tables {
		if err := s.repo.ClearTable(ctx, table); err != nil {
			if err == repository.ErrInvalidTable {
				return nil, &InvalidTableError{Table: table}
			}
			return nil, err
		}
	}

	if err := s.repo.Seed(ctx); err != nil {
		return nil, err
	}

	s.log.Info("Data reset", "tables", strings.Join(tables, ","))
	return &ResetDataResult{
		Tables:  tables,
		Message: "Successfully reset data",
	}, nil
}

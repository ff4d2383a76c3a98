package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/repository"
	"github.com/abrezinsky/pubgolf/internal/services"
	"github.com/abrezinsky/pubgolf/internal/testutil"
)

func setupSettingsService(t *testing.T) (*services.SettingsService, *repository.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewSettingsService(logger.New(), repo), repo
}

func TestBaseURL_DefaultsToEmpty(t *testing.T) {
	svc, _ := setupSettingsService(t)

	url, err := svc.GetBaseURL(context.Background())
	if err != nil {
		t.Fatalf("GetBaseURL failed: %v", err)
	}
	if url != "" {
		t.Errorf("expected empty base URL before configuration, got %q", url)
	}
}

func TestBaseURL_RoundTripStripsTrailingSlash(t *testing.T) {
	svc, _ := setupSettingsService(t)
	ctx := context.Background()

	if err := svc.SetBaseURL(ctx, "http://192.168.1.50:8080/"); err != nil {
		t.Fatalf("SetBaseURL failed: %v", err)
	}
	url, err := svc.GetBaseURL(ctx)
	if err != nil {
		t.Fatalf("GetBaseURL failed: %v", err)
	}
	if url != "http://192.168.1.50:8080" {
		t.Errorf("expected trailing slash stripped, got %q", url)
	}
}

func TestShareQR_RequiresBaseURL(t *testing.T) {
	svc, _ := setupSettingsService(t)

	if _, err := svc.ShareQR(context.Background(), "/scorecard"); err != services.ErrShareLinkUnavailable {
		t.Errorf("expected ErrShareLinkUnavailable, got %v", err)
	}
}

func TestShareQR_ReturnsPNG(t *testing.T) {
	svc, _ := setupSettingsService(t)
	ctx := context.Background()

	if err := svc.SetBaseURL(ctx, "http://192.168.1.50:8080"); err != nil {
		t.Fatalf("SetBaseURL failed: %v", err)
	}

	png, err := svc.ShareQR(ctx, "scorecard")
	if err != nil {
		t.Fatalf("ShareQR failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("expected PNG image data")
	}
}

func TestStats(t *testing.T) {
	svc, _ := setupSettingsService(t)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats["pubs"] != 9 {
		t.Errorf("expected 9 seed pubs, got %v", stats["pubs"])
	}
	if stats["courses"] != 2 {
		t.Errorf("expected 2 seed courses, got %v", stats["courses"])
	}
}

func TestResetData_ClearsAndReseeds(t *testing.T) {
	svc, repo := setupSettingsService(t)
	ctx := context.Background()

	if _, err := repo.CreatePlayer(ctx, "Extra"); err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}

	result, err := svc.ResetData(ctx, []string{"players"})
	if err != nil {
		t.Fatalf("ResetData failed: %v", err)
	}
	if len(result.Tables) != 1 || result.Tables[0] != "players" {
		t.Errorf("unexpected result tables: %v", result.Tables)
	}

	// Reseed restores the default roster
	players, err := repo.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if len(players) != 1 || players[0].Name != "You" {
		t.Errorf("expected default roster after reset, got %+v", players)
	}
}

func TestResetData_RejectsUnknownTable(t *testing.T) {
	svc, _ := setupSettingsService(t)
	ctx := context.Background()

	_, err := svc.ResetData(ctx, []string{"pubs"})
	if _, ok := err.(*services.InvalidTableError); !ok {
		t.Errorf("expected InvalidTableError, got %v", err)
	}

	if _, err := svc.ResetData(ctx, nil); err != services.ErrNoTablesSpecified {
		t.Errorf("expected ErrNoTablesSpecified, got %v", err)
	}
}

package services_test

import (
	"context"
	"testing"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/services"
	"github.com/abrezinsky/pubgolf/internal/testutil"
)

func setupPlayerService(t *testing.T) *services.PlayerService {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewPlayerService(logger.New(), repo)
}

func TestAddPlayer_TrimsName(t *testing.T) {
	svc := setupPlayerService(t)
	ctx := context.Background()

	player, err := svc.AddPlayer(ctx, "  Alice  ")
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if player.Name != "Alice" {
		t.Errorf("expected trimmed name, got %q", player.Name)
	}
	if player.ID <= 0 {
		t.Errorf("expected positive player ID, got %d", player.ID)
	}
}

func TestAddPlayer_RejectsBlankName(t *testing.T) {
	svc := setupPlayerService(t)

	if _, err := svc.AddPlayer(context.Background(), "   "); err != services.ErrPlayerNameRequired {
		t.Errorf("expected ErrPlayerNameRequired, got %v", err)
	}
}

func TestRemovePlayer(t *testing.T) {
	svc := setupPlayerService(t)
	ctx := context.Background()

	player, err := svc.AddPlayer(ctx, "Bob")
	if err != nil {
		t.Fatalf("AddPlayer failed: %v", err)
	}
	if err := svc.RemovePlayer(ctx, player.ID); err != nil {
		t.Fatalf("RemovePlayer failed: %v", err)
	}

	players, err := svc.ListPlayers(ctx)
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	for _, p := range players {
		if p.ID == player.ID {
			t.Errorf("player %d still in roster after removal", p.ID)
		}
	}
}

func TestReplaceRoster(t *testing.T) {
	svc := setupPlayerService(t)
	ctx := context.Background()

	players, err := svc.ReplaceRoster(ctx, []string{"Alice", " Bob "})
	if err != nil {
		t.Fatalf("ReplaceRoster failed: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}
	if players[0].Name != "Alice" || players[1].Name != "Bob" {
		t.Errorf("unexpected roster order: %+v", players)
	}
}

func TestReplaceRoster_RejectsBlankEntry(t *testing.T) {
	svc := setupPlayerService(t)

	if _, err := svc.ReplaceRoster(context.Background(), []string{"Alice", ""}); err != services.ErrPlayerNameRequired {
		t.Errorf("expected ErrPlayerNameRequired, got %v", err)
	}
}

package services

import (
	"context"
	"sort"
	"sync"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/models"
	"github.com/abrezinsky/pubgolf/internal/repository"
)

// GameServiceRepository defines the repository methods needed by GameService
type GameServiceRepository interface {
	repository.CourseRepository
	repository.PlayerRepository
}

// Broadcaster pushes game events to live scorecard viewers
type Broadcaster interface {
	BroadcastGameEvent(event string, game *models.GameState, standings []LeaderboardEntry)
}

// GameService owns the single active game session. The session lives in
// memory only and is lost on restart; courses and the roster come from the
// repository, but a running game snapshots both at start time.
type GameService struct {
	log         logger.Logger
	repo        GameServiceRepository
	broadcaster Broadcaster

	mu   sync.RWMutex
	game *models.GameState
}

// NewGameService creates a new GameService with no active game
func NewGameService(log logger.Logger, repo GameServiceRepository) *GameService {
	return &GameService{log: log, repo: repo}
}

// SetBroadcaster sets the broadcaster for pushing game events to clients
func (s *GameService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// LeaderboardEntry is one row of the standings, ranked ascending by total
// sips (fewer is better).
type LeaderboardEntry struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Rank     int    `json:"rank"`
}

// StartGame begins a new session on the given course with a snapshot of the
// current roster. While a game is active a second start is refused unless
// restart is set, in which case the old session is discarded.
func (s *GameService) StartGame(ctx context.Context, courseID int, restart bool) (*models.GameState, error) {
	course, err := s.repo.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.Holes < 1 {
		return nil, ErrEmptyCourse
	}

	roster, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	// Snapshot by value: later roster edits must not change a running game
	players := make([]models.Player, len(roster))
	copy(players, roster)

	s.mu.Lock()
	if s.game != nil && !restart {
		s.mu.Unlock()
		return nil, ErrGameInProgress
	}
	s.game = &models.GameState{
		Course:      *course,
		Players:     players,
		Scores:      make(map[int]map[int]int),
		CurrentHole: 0,
	}
	snapshot := s.game.Clone()
	s.mu.Unlock()

	s.log.Info("Game started", "course", course.Name, "holes", course.Holes, "players", len(players))
	s.broadcast("game_started", snapshot)
	return snapshot, nil
}

// RecordScore records the sips for every player on one hole atomically.
// The score map must name each snapshot player exactly once with a positive
// count; re-recording a hole overwrites the earlier values. Invalid calls
// leave the session untouched.
func (s *GameService) RecordScore(ctx context.Context, hole int, scores map[int]int) (*models.GameState, error) {
	s.mu.Lock()
	if s.game == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveGame
	}
	if hole < 0 || hole >= s.game.Course.Holes {
		s.mu.Unlock()
		return nil, ErrHoleOutOfRange
	}

	inGame := make(map[int]bool, len(s.game.Players))
	for _, p := range s.game.Players {
		inGame[p.ID] = true
		sips, ok := scores[p.ID]
		if !ok {
			s.mu.Unlock()
			return nil, ErrMissingPlayerScore
		}
		if sips < 1 {
			s.mu.Unlock()
			return nil, ErrScoreOutOfRange
		}
	}
	for id := range scores {
		if !inGame[id] {
			s.mu.Unlock()
			return nil, ErrUnknownPlayer
		}
	}

	holeScores := make(map[int]int, len(scores))
	for id, sips := range scores {
		holeScores[id] = sips
	}
	s.game.Scores[hole] = holeScores
	snapshot := s.game.Clone()
	s.mu.Unlock()

	s.log.Debug("Score recorded", "hole", hole, "players", len(holeScores))
	s.broadcast("score_recorded", snapshot)
	return snapshot, nil
}

// AdvanceHole moves the session to the next hole. On the final hole this is
// a no-op, not an error; the game screen derives completion from the final
// hole's score instead.
func (s *GameService) AdvanceHole(ctx context.Context) (*models.GameState, error) {
	s.mu.Lock()
	if s.game == nil {
		s.mu.Unlock()
		return nil, ErrNoActiveGame
	}
	advanced := false
	if s.game.CurrentHole < s.game.Course.Holes-1 {
		s.game.CurrentHole++
		advanced = true
	}
	snapshot := s.game.Clone()
	s.mu.Unlock()

	if advanced {
		s.log.Debug("Advanced hole", "current_hole", snapshot.CurrentHole)
		s.broadcast("hole_advanced", snapshot)
	}
	return snapshot, nil
}

// EndGame clears the active session unconditionally. Calling it with no
// active game is a no-op.
func (s *GameService) EndGame(ctx context.Context) {
	s.mu.Lock()
	hadGame := s.game != nil
	s.game = nil
	s.mu.Unlock()

	if hadGame {
		s.log.Info("Game ended")
		s.broadcast("game_ended", nil)
	}
}

// ActiveGame returns a snapshot of the current session, or nil when idle
func (s *GameService) ActiveGame(ctx context.Context) *models.GameState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game.Clone()
}

// Leaderboard returns the current standings for the active session
func (s *GameService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	s.mu.RLock()
	game := s.game.Clone()
	s.mu.RUnlock()

	if game == nil {
		return nil, ErrNoActiveGame
	}
	return Standings(game), nil
}

// Standings derives the leaderboard from a session: each player's recorded
// sips summed across every hole (holes without an entry count zero), sorted
// ascending by total. The sort is stable so ties keep roster order.
func Standings(game *models.GameState) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(game.Players))
	for _, p := range game.Players {
		total := 0
		for _, holeScores := range game.Scores {
			total += holeScores[p.ID]
		}
		entries = append(entries, LeaderboardEntry{PlayerID: p.ID, Name: p.Name, Total: total})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total < entries[j].Total
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// broadcast pushes a game event if a broadcaster is wired. Standings ride
// along so viewers never need a second round trip.
func (s *GameService) broadcast(event string, game *models.GameState) {
	if s.broadcaster == nil {
		return
	}
	var standings []LeaderboardEntry
	if game != nil {
		standings = Standings(game)
	}
	s.broadcaster.BroadcastGameEvent(event, game, standings)
}

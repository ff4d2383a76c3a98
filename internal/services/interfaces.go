package services

import (
	"context"

	"github.com/abrezinsky/pubgolf/internal/models"
)

// PubServicer defines the interface for pub catalog operations
type PubServicer interface {
	ListPubs(ctx context.Context) ([]models.Pub, error)
	GetPub(ctx context.Context, id int) (*models.Pub, error)
}

// CourseServicer defines the interface for course operations
type CourseServicer interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	CreateCourse(ctx context.Context, draft CourseDraft) (*models.Course, error)
	GenerateCourse(ctx context.Context, holes int, maxKm float64) (*models.Course, error)
}

// PlayerServicer defines the interface for roster operations
type PlayerServicer interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	AddPlayer(ctx context.Context, name string) (*models.Player, error)
	RemovePlayer(ctx context.Context, id int) error
	ReplaceRoster(ctx context.Context, names []string) ([]models.Player, error)
}

// GameServicer defines the interface for game session operations
type GameServicer interface {
	StartGame(ctx context.Context, courseID int, restart bool) (*models.GameState, error)
	RecordScore(ctx context.Context, hole int, scores map[int]int) (*models.GameState, error)
	AdvanceHole(ctx context.Context) (*models.GameState, error)
	EndGame(ctx context.Context)
	ActiveGame(ctx context.Context) *models.GameState
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	SetBroadcaster(b Broadcaster)
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	GetBaseURL(ctx context.Context) (string, error)
	SetBaseURL(ctx context.Context, url string) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	ShareQR(ctx context.Context, path string) ([]byte, error)
	Stats(ctx context.Context) (map[string]interface{}, error)
	ResetData(ctx context.Context, tables []string) (*ResetDataResult, error)
}

// Ensure concrete types implement interfaces
var (
	_ PubServicer      = (*PubService)(nil)
	_ CourseServicer   = (*CourseService)(nil)
	_ PlayerServicer   = (*PlayerService)(nil)
	_ GameServicer     = (*GameService)(nil)
	_ SettingsServicer = (*SettingsService)(nil)
)

package repository

import (
	"context"

	"github.com/abrezinsky/pubgolf/internal/models"
)

// PubRepository defines pub catalog data operations
type PubRepository interface {
	ListPubs(ctx context.Context) ([]models.Pub, error)
	ListPubsWithin(ctx context.Context, maxKm float64) ([]models.Pub, error)
	GetPub(ctx context.Context, id int) (*models.Pub, error)
}

// CourseRepository defines course data operations
type CourseRepository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (int64, error)
}

// PlayerRepository defines roster data operations
type PlayerRepository interface {
	ListPlayers(ctx context.Context) ([]models.Player, error)
	CreatePlayer(ctx context.Context, name string) (int64, error)
	DeletePlayer(ctx context.Context, id int) error
	ReplacePlayers(ctx context.Context, names []string) ([]models.Player, error)
}

// SettingsRepository defines settings and maintenance operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	GetStats(ctx context.Context) (map[string]interface{}, error)
	ClearTable(ctx context.Context, table string) error
	Seed(ctx context.Context) error
}

// FullRepository combines all repository interfaces.
// Use this when a service needs access to multiple domains.
type FullRepository interface {
	PubRepository
	CourseRepository
	PlayerRepository
	SettingsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)

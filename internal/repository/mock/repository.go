package mock

import (
	"context"

	"github.com/abrezinsky/pubgolf/internal/models"
	"github.com/abrezinsky/pubgolf/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database
// manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.ListPubsError = errors.New("database error")
//	svc := services.NewCourseService(log, mockRepo)
//	_, err := svc.GenerateCourse(ctx, 9, 2)
//	// err will now contain the injected error
type Repository struct {
	repository.FullRepository

	// ===== Pub Errors =====
	ListPubsError       error
	ListPubsWithinError error
	GetPubError         error

	// ===== Course Errors =====
	ListCoursesError  error
	GetCourseError    error
	CreateCourseError error

	// ===== Player Errors =====
	ListPlayersError    error
	CreatePlayerError   error
	DeletePlayerError   error
	ReplacePlayersError error

	// ===== Settings Errors =====
	GetSettingError error
	SetSettingError error
	GetStatsError   error
	ClearTableError error
	SeedError       error
}

// NewRepository creates a mock wrapping the given real repository
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{FullRepository: real}
}

func (m *Repository) ListPubs(ctx context.Context) ([]models.Pub, error) {
	if m.ListPubsError != nil {
		return nil, m.ListPubsError
	}
	return m.FullRepository.ListPubs(ctx)
}

func (m *Repository) ListPubsWithin(ctx context.Context, maxKm float64) ([]models.Pub, error) {
	if m.ListPubsWithinError != nil {
		return nil, m.ListPubsWithinError
	}
	return m.FullRepository.ListPubsWithin(ctx, maxKm)
}

func (m *Repository) GetPub(ctx context.Context, id int) (*models.Pub, error) {
	if m.GetPubError != nil {
		return nil, m.GetPubError
	}
	return m.FullRepository.GetPub(ctx, id)
}

func (m *Repository) ListCourses(ctx context.Context) ([]models.Course, error) {
	if m.ListCoursesError != nil {
		return nil, m.ListCoursesError
	}
	return m.FullRepository.ListCourses(ctx)
}

func (m *Repository) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	if m.GetCourseError != nil {
		return nil, m.GetCourseError
	}
	return m.FullRepository.GetCourse(ctx, id)
}

func (m *Repository) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	if m.CreateCourseError != nil {
		return 0, m.CreateCourseError
	}
	return m.FullRepository.CreateCourse(ctx, course)
}

func (m *Repository) ListPlayers(ctx context.Context) ([]models.Player, error) {
	if m.ListPlayersError != nil {
		return nil, m.ListPlayersError
	}
	return m.FullRepository.ListPlayers(ctx)
}

func (m *Repository) CreatePlayer(ctx context.Context, name string) (int64, error) {
	if m.CreatePlayerError != nil {
		return 0, m.CreatePlayerError
	}
	return m.FullRepository.CreatePlayer(ctx, name)
}

func (m *Repository) DeletePlayer(ctx context.Context, id int) error {
	if m.DeletePlayerError != nil {
		return m.DeletePlayerError
	}
	return m.FullRepository.DeletePlayer(ctx, id)
}

func (m *Repository) ReplacePlayers(ctx context.Context, names []string) ([]models.Player, error) {
	if m.ReplacePlayersError != nil {
		return nil, m.ReplacePlayersError
	}
	return m.FullRepository.ReplacePlayers(ctx, names)
}

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}

func (m *Repository) GetStats(ctx context.Context) (map[string]interface{}, error) {
	if m.GetStatsError != nil {
		return nil, m.GetStatsError
	}
	return m.FullRepository.GetStats(ctx)
}

func (m *Repository) ClearTable(ctx context.Context, table string) error {
	if m.ClearTableError != nil {
		return m.ClearTableError
	}
	return m.FullRepository.ClearTable(ctx, table)
}

func (m *Repository) Seed(ctx context.Context) error {
	if m.SeedError != nil {
		return m.SeedError
	}
	return m.FullRepository.Seed(ctx)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/abrezinsky/pubgolf/internal/logger"
	"github.com/abrezinsky/pubgolf/internal/models"
	"github.com/abrezinsky/pubgolf/internal/repository"
)

// CourseServiceRepository defines the repository methods needed by CourseService
type CourseServiceRepository interface {
	repository.CourseRepository
	repository.PubRepository
}

// CourseService handles course-related business logic
type CourseService struct {
	log  logger.Logger
	repo CourseServiceRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(log logger.Logger, repo CourseServiceRepository) *CourseService {
	return &CourseService{log: log, repo: repo}
}

const (
	// minCoursePubs is the smallest playable course
	minCoursePubs = 3
	// minutesPerHole is the duration estimate per hole
	minutesPerHole = 20
	// defaultRating is assigned to user-built and generated courses
	defaultRating = 4.0
)

// difficultyFor derives the difficulty label from the hole count
func difficultyFor(holes int) string {
	switch {
	case holes <= 6:
		return "Easy"
	case holes <= 12:
		return "Medium"
	default:
		return "Hard"
	}
}

// CourseDraft is the caller's input for a custom course: a name and the
// chosen pub sequence. Everything else is derived.
type CourseDraft struct {
	Name   string `json:"name"`
	PubIDs []int  `json:"pub_ids"`
}

// ListCourses returns all courses
func (s *CourseService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.repo.ListCourses(ctx)
}

// GetCourse returns a single course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	return s.repo.GetCourse(ctx, id)
}

// CreateCourse validates a draft and persists it with derived metadata:
// hole count from the pub sequence, distance from the furthest pub,
// duration and difficulty from the hole count.
func (s *CourseService) CreateCourse(ctx context.Context, draft CourseDraft) (*models.Course, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, ErrCourseNameRequired
	}
	if len(draft.PubIDs) < minCoursePubs {
		return nil, ErrTooFewPubs
	}

	pubs := make([]models.Pub, 0, len(draft.PubIDs))
	maxDistance := 0.0
	for _, id := range draft.PubIDs {
		pub, err := s.repo.GetPub(ctx, id)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, *pub)
		if pub.Distance > maxDistance {
			maxDistance = pub.Distance
		}
	}

	course := models.Course{
		Name:       strings.TrimSpace(draft.Name),
		Distance:   maxDistance,
		Duration:   len(pubs) * minutesPerHole,
		Difficulty: difficultyFor(len(pubs)),
		Rating:     defaultRating,
		Source:     "custom",
		Pubs:       pubs,
	}
	id, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	s.log.Info("Course created", "name", course.Name, "holes", len(pubs))
	return s.repo.GetCourse(ctx, int(id))
}

// GenerateCourse builds a course automatically from the nearest catalog pubs
// within maxKm, at most holes long. When fewer pubs qualify than requested
// the course shrinks to keep the hole count equal to the pub sequence.
func (s *CourseService) GenerateCourse(ctx context.Context, holes int, maxKm float64) (*models.Course, error) {
	if holes < minCoursePubs {
		return nil, ErrTooFewPubs
	}
	if maxKm <= 0 {
		return nil, ErrNotEnoughPubsNearby
	}

	pubs, err := s.repo.ListPubsWithin(ctx, maxKm)
	if err != nil {
		return nil, err
	}
	if len(pubs) > holes {
		pubs = pubs[:holes]
	}
	if len(pubs) < minCoursePubs {
		return nil, ErrNotEnoughPubsNearby
	}

	course := models.Course{
		Name:       fmt.Sprintf("Auto Course (%d)", len(pubs)),
		Distance:   maxKm,
		Duration:   len(pubs) * minutesPerHole,
		Difficulty: difficultyFor(len(pubs)),
		Rating:     defaultRating,
		Source:     "generated",
		Pubs:       pubs,
	}
	id, err := s.repo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	s.log.Info("Course generated", "holes", len(pubs), "max_km", maxKm)
	return s.repo.GetCourse(ctx, int(id))
}

package services

import "fmt"

// Service errors
var (
	ErrNoActiveGame         = &ServiceError{Message: "no game is currently active"}
	ErrGameInProgress       = &ServiceError{Message: "a game is already in progress"}
	ErrHoleOutOfRange       = &ServiceError{Message: "hole index is out of range"}
	ErrScoreOutOfRange      = &ServiceError{Message: "sips must be a positive number"}
	ErrMissingPlayerScore   = &ServiceError{Message: "every player needs a score for this hole"}
	ErrUnknownPlayer        = &ServiceError{Message: "score submitted for a player not in this game"}
	ErrEmptyRoster          = &ServiceError{Message: "add at least one player before starting a game"}
	ErrEmptyCourse          = &ServiceError{Message: "course has no holes"}
	ErrCourseNameRequired   = &ServiceError{Message: "course name is required"}
	ErrTooFewPubs           = &ServiceError{Message: "a course needs at least 3 pubs"}
	ErrNotEnoughPubsNearby  = &ServiceError{Message: "not enough pubs within that distance"}
	ErrPlayerNameRequired   = &ServiceError{Message: "player name is required"}
	ErrNoTablesSpecified    = &ServiceError{Message: "no tables specified"}
	ErrShareLinkUnavailable = &ServiceError{Message: "share link is not configured yet"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// InvalidTableError represents an invalid table name error
type InvalidTableError struct {
	Table string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("invalid table name: %s", e.Table)
}

package handlers

// StartGameRequest represents a request to start a game session
type StartGameRequest struct {
	CourseID int  `json:"course_id"`
	Restart  bool `json:"restart"`
}

// RecordScoreRequest represents a request to record one hole's scores,
// keyed by player ID
type RecordScoreRequest struct {
	Hole   int         `json:"hole"`
	Scores map[int]int `json:"scores"`
}

// CourseCreateRequest represents a request to build a custom course
type CourseCreateRequest struct {
	Name   string `json:"name"`
	PubIDs []int  `json:"pub_ids"`
}

// CourseGenerateRequest represents a request to auto-generate a course
type CourseGenerateRequest struct {
	Holes       int     `json:"holes"`
	MaxDistance float64 `json:"max_distance"`
}

// PlayerCreateRequest represents a request to add a player
type PlayerCreateRequest struct {
	Name string `json:"name"`
}

// PlayersReplaceRequest represents a request to replace the whole roster
type PlayersReplaceRequest struct {
	Names []string `json:"names"`
}

// SettingsUpdateRequest represents a request to update settings
type SettingsUpdateRequest struct {
	BaseURL string `json:"base_url"`
}

// ResetDataRequest represents a request to reset data tables
type ResetDataRequest struct {
	Tables []string `json:"tables"`
}

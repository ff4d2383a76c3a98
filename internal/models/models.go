package models

// Pub represents one venue in the catalog
type Pub struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Rating    float64 `json:"rating"`
	Distance  float64 `json:"distance"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Course is an ordered sequence of pubs plus derived metadata.
// Holes always equals len(Pubs); courses are never mutated after creation.
type Course struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Holes      int     `json:"holes"`
	Distance   float64 `json:"distance"`
	Duration   int     `json:"duration"`
	Difficulty string  `json:"difficulty"`
	Rating     float64 `json:"rating"`
	Source     string  `json:"source,omitempty"`
	Pubs       []Pub   `json:"pubs"`
}

// Player represents one participant in the roster
type Player struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GameState is the single active game session. Players is a snapshot of
// the roster taken at start time; later roster edits do not affect it.
// Scores maps hole index -> player ID -> sips.
type GameState struct {
	Course      Course              `json:"course"`
	Players     []Player            `json:"players"`
	Scores      map[int]map[int]int `json:"scores"`
	CurrentHole int                 `json:"current_hole"`
}

// Complete reports whether the final hole has a recorded score map.
// Completion is derived, never stored.
func (g *GameState) Complete() bool {
	if g == nil || g.Course.Holes == 0 {
		return false
	}
	_, ok := g.Scores[g.Course.Holes-1]
	return ok
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the live score maps.
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	cp := &GameState{
		Course:      g.Course,
		Players:     make([]Player, len(g.Players)),
		Scores:      make(map[int]map[int]int, len(g.Scores)),
		CurrentHole: g.CurrentHole,
	}
	copy(cp.Players, g.Players)
	cp.Course.Pubs = make([]Pub, len(g.Course.Pubs))
	copy(cp.Course.Pubs, g.Course.Pubs)
	for hole, byPlayer := range g.Scores {
		m := make(map[int]int, len(byPlayer))
		for id, sips := range byPlayer {
			m[id] = sips
		}
		cp.Scores[hole] = m
	}
	return cp
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

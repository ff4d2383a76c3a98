package services

import "fmt"

// ScoreClass pairs the golf label for a sips count with its display color token.
type ScoreClass struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Named scores up to double bogey; everything above is relative to par.
var scoreClasses = map[int]ScoreClass{
	1: {Label: "Hole in One!", Color: "#8B5CF6"},
	2: {Label: "Eagle", Color: "#3B82F6"},
	3: {Label: "Birdie", Color: "#10B981"},
	4: {Label: "Par", Color: "#6B7280"},
	5: {Label: "Bogey", Color: "#F59E0B"},
	6: {Label: "Double Bogey", Color: "#F97316"},
}

// Classify maps a sips count to its golf vocabulary. Pure and total over
// positive integers; non-positive counts are rejected at the recording
// boundary, not here.
func Classify(sips int) ScoreClass {
	if class, ok := scoreClasses[sips]; ok {
		return class
	}
	return ScoreClass{Label: fmt.Sprintf("+%d", sips-4), Color: "#EF4444"}
}

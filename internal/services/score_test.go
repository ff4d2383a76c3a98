package services_test

import (
	"testing"

	"github.com/abrezinsky/pubgolf/internal/services"
)

func TestClassify_NamedScores(t *testing.T) {
	cases := []struct {
		sips  int
		label string
		color string
	}{
		{1, "Hole in One!", "#8B5CF6"},
		{2, "Eagle", "#3B82F6"},
		{3, "Birdie", "#10B981"},
		{4, "Par", "#6B7280"},
		{5, "Bogey", "#F59E0B"},
		{6, "Double Bogey", "#F97316"},
	}

	for _, c := range cases {
		got := services.Classify(c.sips)
		if got.Label != c.label {
			t.Errorf("Classify(%d): expected label %q, got %q", c.sips, c.label, got.Label)
		}
		if got.Color != c.color {
			t.Errorf("Classify(%d): expected color %q, got %q", c.sips, c.color, got.Color)
		}
	}
}

func TestClassify_OverPar(t *testing.T) {
	got := services.Classify(7)
	if got.Label != "+3" || got.Color != "#EF4444" {
		t.Errorf("Classify(7): expected +3 in red, got %+v", got)
	}

	got = services.Classify(10)
	if got.Label != "+6" {
		t.Errorf("Classify(10): expected +6, got %q", got.Label)
	}
}

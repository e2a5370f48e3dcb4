package handlers

import (
	"testing"

	"example.com/ai-trip-planner/backend/internal/trip"
)

// TestToActivity проверяет сборку активности из запроса с обрезкой пробелов.
func TestToActivity(t *testing.T) {
	activity := toActivity(ActivityRequest{
		Title:    "  Tram 28 ride  ",
		Location: " Alfama ",
		Duration: "1h",
		Cost:     " 500-700 ",
	})

	if activity.Title != "Tram 28 ride" {
		t.Fatalf("unexpected title: %q", activity.Title)
	}
	if activity.Location != "Alfama" {
		t.Fatalf("unexpected location: %q", activity.Location)
	}
	if activity.Cost != trip.CostText("500-700") {
		t.Fatalf("unexpected cost: %q", activity.Cost)
	}
	if activity.NormalizedCost() != 700 {
		t.Fatalf("expected normalized cost 700, got %d", activity.NormalizedCost())
	}
}

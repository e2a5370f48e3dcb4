package handlers

import (
	"testing"

	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/trip"
)

// TestToPreviewResponse проверяет сборку ответа превью и остаток перегенераций.
func TestToPreviewResponse(t *testing.T) {
	bundle := models.TripBundle{
		Parameters:        trip.Parameters{Destination: "Lisbon", Travelers: 2},
		Budget:            trip.Budget{Total: 50000, Currency: "EUR"},
		Tips:              []string{"Carry coins for trams"},
		RegenerationCount: 1,
	}

	response := toPreviewResponse(bundle, 3)
	if response.Preview.Parameters.Destination != "Lisbon" {
		t.Fatalf("unexpected destination: %s", response.Preview.Parameters.Destination)
	}
	if response.Preview.RegenerationCount != 1 {
		t.Fatalf("expected regeneration count 1, got %d", response.Preview.RegenerationCount)
	}
	if response.Preview.RegenerationsLeft != 2 {
		t.Fatalf("expected 2 regenerations left, got %d", response.Preview.RegenerationsLeft)
	}
	if len(response.Preview.Tips) != 1 {
		t.Fatalf("expected 1 tip, got %d", len(response.Preview.Tips))
	}
}

// TestToPreviewResponseExhausted проверяет, что остаток не уходит в минус.
func TestToPreviewResponseExhausted(t *testing.T) {
	bundle := models.TripBundle{RegenerationCount: 5}

	response := toPreviewResponse(bundle, 3)
	if response.Preview.RegenerationsLeft != 0 {
		t.Fatalf("expected 0 regenerations left, got %d", response.Preview.RegenerationsLeft)
	}
}

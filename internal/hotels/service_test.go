package hotels

import (
	"context"
	"testing"

	"example.com/ai-trip-planner/backend/internal/trip"
)

// TestSuggestionsFromGenerated проверяет использование отелей из генерации
// без настроенного API.
func TestSuggestionsFromGenerated(t *testing.T) {
	service := NewService(nil, nil)
	params := trip.Parameters{Destination: "Lisbon", Travelers: 2}

	generated := []trip.HotelSuggestion{
		{Name: "Hotel A", PricePerNight: "100"},
		{Name: "Hotel B", PricePerNight: "150"},
	}

	got := service.Suggestions(context.Background(), params, generated)
	if len(got) != 2 || got[0].Name != "Hotel A" {
		t.Fatalf("expected generated hotels, got %v", got)
	}
}

// TestSuggestionsFallbackCatalog проверяет запасной каталог.
func TestSuggestionsFallbackCatalog(t *testing.T) {
	service := NewService(nil, nil)

	got := service.Suggestions(context.Background(), trip.Parameters{Destination: "Lisbon, Portugal"}, nil)
	if len(got) == 0 {
		t.Fatal("expected catalog suggestions")
	}
	if got[0].Name != "Hotel Avenida Palace" {
		t.Fatalf("expected Lisbon catalog entry, got %s", got[0].Name)
	}

	got = service.Suggestions(context.Background(), trip.Parameters{Destination: "Nowhereville"}, nil)
	if len(got) == 0 {
		t.Fatal("expected generic suggestions for unknown destination")
	}
	if got[0].Name != "Grand City Hotel" {
		t.Fatalf("expected generic catalog entry, got %s", got[0].Name)
	}
}

// TestCapSuggestions проверяет ограничение числа вариантов.
func TestCapSuggestions(t *testing.T) {
	many := make([]trip.HotelSuggestion, maxSuggestions+3)
	for i := range many {
		many[i] = trip.HotelSuggestion{Name: "Hotel"}
	}

	if got := capSuggestions(many); len(got) != maxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", maxSuggestions, len(got))
	}
}

package ai

import (
	"strings"
	"testing"

	"example.com/ai-trip-planner/backend/internal/trip"
)

// TestExtractJSON проверяет извлечение JSON из текстовых ответов AI.
func TestExtractJSON(t *testing.T) {
	raw := "```json\n{\"itinerary\":{\"days\":[]}}\n```"
	if got := extractJSON(raw); got != `{"itinerary":{"days":[]}}` {
		t.Fatalf("unexpected json from fenced block: %q", got)
	}

	raw = "Here is your plan: {\"budget\":{\"total\":100}} Enjoy!"
	if got := extractJSON(raw); got != `{"budget":{"total":100}}` {
		t.Fatalf("unexpected json from surrounding text: %q", got)
	}

	if got := extractJSON("no json here"); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}

	if got := extractJSON("   "); got != "" {
		t.Fatalf("expected empty result for blank input, got %q", got)
	}
}

func sampleTripResponse() TripResponse {
	return TripResponse{
		Itinerary: trip.Itinerary{
			Days: []trip.DayPlan{
				{
					Day:       1,
					Title:     "Old town",
					Morning:   &trip.Activity{Title: "Castle tour", Cost: "1200"},
					Afternoon: &trip.Activity{Title: "River walk", Cost: "free"},
					Evening:   &trip.Activity{Title: "Fado show", Cost: "3000"},
				},
				{
					Day:     2,
					Title:   "Coast day",
					Morning: &trip.Activity{Title: "Train to Cascais", Cost: "500"},
				},
			},
		},
		Budget: trip.Budget{
			Accommodation: 20000,
			Food:          9000,
			Transport:     4000,
			Activities:    1,
			Total:         1,
			Currency:      "EUR",
		},
		Weather: trip.WeatherSummary{Summary: "Warm and sunny"},
		Hotels:  []trip.HotelSuggestion{{Name: "Hotel Avenida"}},
		Tips:    []string{" Carry coins for trams ", ""},
	}
}

// TestNormalizeTripResponse проверяет выравнивание бюджета и нумерацию дней.
func TestNormalizeTripResponse(t *testing.T) {
	input := GenerateTripInput{Days: 2, Currency: "EUR"}

	response := sampleTripResponse()
	response.Itinerary.Days[1].Day = 0
	response.Budget.Currency = ""
	normalizeTripResponse(&response, input)

	if response.Itinerary.Days[1].Day != 2 {
		t.Fatalf("expected day number 2, got %d", response.Itinerary.Days[1].Day)
	}
	if response.Budget.Currency != "EUR" {
		t.Fatalf("expected currency EUR, got %s", response.Budget.Currency)
	}

	// 1200 + 0 + 3000 + 500 из стоимости слотов.
	if response.Budget.Activities != 4700 {
		t.Fatalf("expected activities 4700, got %d", response.Budget.Activities)
	}
	if response.Budget.Total != 20000+9000+4000+4700 {
		t.Fatalf("expected total %d, got %d", 20000+9000+4000+4700, response.Budget.Total)
	}

	if len(response.Tips) != 1 || response.Tips[0] != "Carry coins for trams" {
		t.Fatalf("expected one trimmed tip, got %v", response.Tips)
	}
}

// TestValidateTripResponse проверяет отбраковку неполных ответов генерации.
func TestValidateTripResponse(t *testing.T) {
	input := GenerateTripInput{Days: 2, Currency: "EUR"}

	response := sampleTripResponse()
	if err := validateTripResponse(response, input); err != nil {
		t.Fatalf("expected valid response, got %v", err)
	}

	short := sampleTripResponse()
	short.Itinerary.Days = short.Itinerary.Days[:1]
	if err := validateTripResponse(short, input); err == nil {
		t.Fatal("expected error for wrong day count")
	}

	empty := sampleTripResponse()
	empty.Itinerary.Days[1].Morning = nil
	if err := validateTripResponse(empty, input); err == nil {
		t.Fatal("expected error for day without activities")
	}

	untitled := sampleTripResponse()
	untitled.Itinerary.Days[0].Title = "  "
	if err := validateTripResponse(untitled, input); err == nil {
		t.Fatal("expected error for missing day title")
	}

	noWeather := sampleTripResponse()
	noWeather.Weather.Summary = ""
	if err := validateTripResponse(noWeather, input); err == nil {
		t.Fatal("expected error for missing weather summary")
	}

	longTitle := sampleTripResponse()
	longTitle.Itinerary.Days[0].Morning.Title = strings.Repeat("x", maxActivityTitleLen+1)
	if err := validateTripResponse(longTitle, input); err == nil {
		t.Fatal("expected error for too long activity title")
	}
}

// TestValidateAlternativesResponse проверяет отбраковку ответов с заменами.
func TestValidateAlternativesResponse(t *testing.T) {
	response := AlternativesResponse{
		Alternatives: []trip.Activity{{Title: "Tile museum", Cost: "800"}},
	}
	if err := validateAlternativesResponse(response); err != nil {
		t.Fatalf("expected valid response, got %v", err)
	}

	if err := validateAlternativesResponse(AlternativesResponse{}); err == nil {
		t.Fatal("expected error for empty alternatives")
	}

	normalized := AlternativesResponse{
		Alternatives: []trip.Activity{{Title: "  "}, {Title: "Market visit"}},
	}
	normalizeAlternativesResponse(&normalized)
	if len(normalized.Alternatives) != 1 || normalized.Alternatives[0].Title != "Market visit" {
		t.Fatalf("expected blank titles dropped, got %v", normalized.Alternatives)
	}
}

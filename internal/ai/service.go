package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"example.com/ai-trip-planner/backend/internal/trip"
)

const (
	maxDayTitleLen      = 120
	maxActivityTitleLen = 200
	maxHotels           = 8
	maxTips             = 6
	maxAlternatives     = 5
)

type Service struct {
	client Client
}

// NewService создает сервис работы с AI-клиентом.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// GenerateTrip запрашивает у AI полный план поездки и валидирует ответ.
func (s *Service) GenerateTrip(ctx context.Context, input GenerateTripInput) (TripResponse, string, []byte, error) {
	prompt, err := buildGenerateTripPrompt(input)
	if err != nil {
		return TripResponse{}, "", nil, err
	}

	messages := []Message{
		{Role: "system", Content: "You are a travel planning assistant. Respond with JSON only, without extra text."},
		{Role: "user", Content: prompt},
	}

	content, raw, err := s.client.Chat(ctx, messages)
	if err != nil {
		return TripResponse{}, prompt, raw, err
	}

	var response TripResponse
	if err := parseJSON(content, &response); err != nil {
		return TripResponse{}, prompt, raw, err
	}

	normalizeTripResponse(&response, input)
	if err := validateTripResponse(response, input); err != nil {
		return TripResponse{}, prompt, raw, err
	}

	return response, prompt, raw, nil
}

// SuggestAlternatives запрашивает у AI замены для одного слота маршрута.
func (s *Service) SuggestAlternatives(ctx context.Context, input AlternativesInput) (AlternativesResponse, string, []byte, error) {
	prompt, err := buildAlternativesPrompt(input)
	if err != nil {
		return AlternativesResponse{}, "", nil, err
	}

	messages := []Message{
		{Role: "system", Content: "You are a travel planning assistant. Respond with JSON only, without extra text."},
		{Role: "user", Content: prompt},
	}

	content, raw, err := s.client.Chat(ctx, messages)
	if err != nil {
		return AlternativesResponse{}, prompt, raw, err
	}

	var response AlternativesResponse
	if err := parseJSON(content, &response); err != nil {
		return AlternativesResponse{}, prompt, raw, err
	}

	normalizeAlternativesResponse(&response)
	if err := validateAlternativesResponse(response); err != nil {
		return AlternativesResponse{}, prompt, raw, err
	}

	return response, prompt, raw, nil
}

func buildGenerateTripPrompt(input GenerateTripInput) (string, error) {
	payload, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Create a complete trip plan as JSON.

Requirements:
- Output JSON only, no code fences, no extra text.
- Keep JSON compact (no extra whitespace).
- Write all texts in English.
- Schema:
{
  "itinerary": {
    "days": [
      {
        "day": integer,
        "title": string,
        "morning": {"title": string, "description": string, "location": string, "category": string, "duration": string, "cost": string} | null,
        "afternoon": {...same as morning...} | null,
        "evening": {...same as morning...} | null
      }
    ]
  },
  "budget": {
    "accommodation": integer,
    "food": integer,
    "transport": integer,
    "activities": integer,
    "total": integer,
    "currency": string
  },
  "weather": {"summary": string, "average_high_c": integer, "average_low_c": integer, "recommendation": string},
  "hotels": [{"name": string, "area": string, "price_per_night": string, "rating": number, "notes": string}],
  "tips": [string]
}
- itinerary.days must contain exactly %d entries numbered from 1.
- Fill morning, afternoon and evening for each day; use null only for deliberate free time.
- Activity cost is a short string in %s: an amount like "1500", "free", or a range like "500-700".
- Budget fields are whole-trip integer totals in %s for %d traveler(s).
- Provide 2-4 hotels and 2-5 tips.
- Keep titles short (<= 60 chars).

Input:
%s`, input.Days, input.Currency, input.Currency, input.Travelers, string(payload))

	return prompt, nil
}

func buildAlternativesPrompt(input AlternativesInput) (string, error) {
	payload, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Suggest replacement activities for one itinerary slot as JSON.

Requirements:
- Output JSON only, no code fences.
- Write all texts in English.
- Schema:
{
  "alternatives": [
    {"title": string, "description": string, "location": string, "category": string, "duration": string, "cost": string}
  ]
}
- Provide 1-3 alternatives that fit the %s slot and differ from the current activity.
- Activity cost is a short string in %s: an amount like "1500", "free", or a range like "500-700".

Input:
%s`, input.TimeSlot, input.Currency, string(payload))

	return prompt, nil
}

func parseJSON(input string, target interface{}) error {
	payload := extractJSON(input)
	if payload == "" {
		return errors.New("ai response does not contain json")
	}

	return json.Unmarshal([]byte(payload), target)
}

func extractJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimPrefix(strings.TrimSpace(trimmed), "json")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return trimmed[start : end+1]
}

func normalizeTripResponse(response *TripResponse, input GenerateTripInput) {
	for i := range response.Itinerary.Days {
		if response.Itinerary.Days[i].Day == 0 {
			response.Itinerary.Days[i].Day = i + 1
		}
	}

	if strings.TrimSpace(response.Budget.Currency) == "" {
		response.Budget.Currency = input.Currency
	}
	response.Budget = trip.AlignWithItinerary(response.Budget, response.Itinerary)

	tips := make([]string, 0, len(response.Tips))
	for _, tip := range response.Tips {
		if trimmed := strings.TrimSpace(tip); trimmed != "" {
			tips = append(tips, trimmed)
		}
	}
	response.Tips = tips
}

func validateTripResponse(response TripResponse, input GenerateTripInput) error {
	if len(response.Itinerary.Days) != input.Days {
		return fmt.Errorf("itinerary must contain %d days, got %d", input.Days, len(response.Itinerary.Days))
	}

	for i, day := range response.Itinerary.Days {
		if day.Day != i+1 {
			return fmt.Errorf("itinerary days out of order: day %d at position %d", day.Day, i)
		}
		if strings.TrimSpace(day.Title) == "" {
			return errors.New("day title is required")
		}
		if len(day.Title) > maxDayTitleLen {
			return errors.New("day title is too long")
		}
		if day.Morning == nil && day.Afternoon == nil && day.Evening == nil {
			return fmt.Errorf("day %d has no activities", day.Day)
		}

		for _, period := range trip.Periods() {
			activity, _ := day.Slot(period)
			if activity == nil {
				continue
			}
			if err := validateActivity(*activity); err != nil {
				return fmt.Errorf("day %d %s: %w", day.Day, period, err)
			}
		}
	}

	if strings.TrimSpace(response.Weather.Summary) == "" {
		return errors.New("weather summary is required")
	}

	if len(response.Hotels) > maxHotels {
		return errors.New("too many hotels")
	}
	for _, hotel := range response.Hotels {
		if strings.TrimSpace(hotel.Name) == "" {
			return errors.New("hotel name is required")
		}
	}

	if len(response.Tips) > maxTips {
		return errors.New("too many tips")
	}

	return nil
}

func normalizeAlternativesResponse(response *AlternativesResponse) {
	alternatives := make([]trip.Activity, 0, len(response.Alternatives))
	for _, alternative := range response.Alternatives {
		if strings.TrimSpace(alternative.Title) == "" {
			continue
		}
		alternatives = append(alternatives, alternative)
	}
	response.Alternatives = alternatives
}

func validateAlternativesResponse(response AlternativesResponse) error {
	if len(response.Alternatives) == 0 {
		return errors.New("alternatives are required")
	}
	if len(response.Alternatives) > maxAlternatives {
		return errors.New("too many alternatives")
	}

	for _, alternative := range response.Alternatives {
		if err := validateActivity(alternative); err != nil {
			return err
		}
	}

	return nil
}

func validateActivity(activity trip.Activity) error {
	if strings.TrimSpace(activity.Title) == "" {
		return errors.New("activity title is required")
	}
	if len(activity.Title) > maxActivityTitleLen {
		return errors.New("activity title is too long")
	}

	return nil
}

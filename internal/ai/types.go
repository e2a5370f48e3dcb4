package ai

import "example.com/ai-trip-planner/backend/internal/trip"

type GenerateTripInput struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Days        int      `json:"days"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests,omitempty"`
	BudgetLevel string   `json:"budget_level,omitempty"`
	Currency    string   `json:"currency"`
	HomeCity    string   `json:"home_city,omitempty"`
}

type TripResponse struct {
	Itinerary trip.Itinerary         `json:"itinerary"`
	Budget    trip.Budget            `json:"budget"`
	Weather   trip.WeatherSummary    `json:"weather"`
	Hotels    []trip.HotelSuggestion `json:"hotels,omitempty"`
	Tips      []string               `json:"tips,omitempty"`
}

type AlternativesInput struct {
	Destination     string         `json:"destination"`
	Day             int            `json:"day"`
	DayTitle        string         `json:"day_title,omitempty"`
	TimeSlot        string         `json:"time_slot"`
	CurrentActivity *trip.Activity `json:"current_activity,omitempty"`
	Interests       []string       `json:"interests,omitempty"`
	BudgetLevel     string         `json:"budget_level,omitempty"`
	Currency        string         `json:"currency"`
}

type AlternativesResponse struct {
	Alternatives []trip.Activity `json:"alternatives"`
}

package trip

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type Parameters struct {
	Destination string   `json:"destination"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests,omitempty"`
	BudgetLevel string   `json:"budget_level,omitempty"`
	Currency    string   `json:"currency,omitempty"`
}

// Dates возвращает разобранные даты начала и конца поездки.
func (p Parameters) Dates() (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, p.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}

	end, err := time.Parse(dateLayout, p.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date before start date")
	}

	return start, end, nil
}

// DurationDays возвращает длительность поездки в днях, включая оба конца.
func (p Parameters) DurationDays() (int, error) {
	start, end, err := p.Dates()
	if err != nil {
		return 0, err
	}

	return int(end.Sub(start).Hours()/24) + 1, nil
}

type WeatherSummary struct {
	Summary        string `json:"summary"`
	AverageHighC   int    `json:"average_high_c"`
	AverageLowC    int    `json:"average_low_c"`
	Recommendation string `json:"recommendation,omitempty"`
}

type HotelSuggestion struct {
	Name          string   `json:"name"`
	Area          string   `json:"area,omitempty"`
	PricePerNight CostText `json:"price_per_night,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

package hotels

import (
	"strings"

	"example.com/ai-trip-planner/backend/internal/trip"
)

// catalog держит запасные варианты по популярным направлениям на случай,
// когда ни API, ни генерация не дали отелей.
var catalog = map[string][]trip.HotelSuggestion{
	"lisbon": {
		{Name: "Hotel Avenida Palace", Area: "Baixa", PricePerNight: "180", Rating: 4.6},
		{Name: "Lisbon Story Guesthouse", Area: "Rossio", PricePerNight: "85", Rating: 4.3},
		{Name: "Memmo Alfama", Area: "Alfama", PricePerNight: "210", Rating: 4.5},
	},
	"paris": {
		{Name: "Pullman Paris Tour Eiffel", Area: "7th Arr.", PricePerNight: "280", Rating: 4.5},
		{Name: "Hotel des Arts Montmartre", Area: "18th Arr.", PricePerNight: "130", Rating: 4.3},
		{Name: "Generator Paris", Area: "10th Arr.", PricePerNight: "55", Rating: 3.8},
	},
	"london": {
		{Name: "The Hoxton Shoreditch", Area: "Shoreditch", PricePerNight: "165", Rating: 4.5},
		{Name: "Premier Inn London City", Area: "City of London", PricePerNight: "95", Rating: 4.1},
		{Name: "citizenM London Bankside", Area: "Bankside", PricePerNight: "145", Rating: 4.4},
	},
	"istanbul": {
		{Name: "Grand Hyatt Istanbul", Area: "Beyoglu", PricePerNight: "180", Rating: 4.7},
		{Name: "Sultan Ahmet Palace Hotel", Area: "Sultanahmet", PricePerNight: "95", Rating: 4.3},
		{Name: "Ibis Istanbul Taksim", Area: "Taksim", PricePerNight: "75", Rating: 4.0},
	},
	"tokyo": {
		{Name: "Park Hotel Tokyo", Area: "Shiodome", PricePerNight: "220", Rating: 4.5},
		{Name: "Hotel Gracery Shinjuku", Area: "Shinjuku", PricePerNight: "140", Rating: 4.2},
		{Name: "Wise Owl Hostels", Area: "Hatchobori", PricePerNight: "45", Rating: 4.0},
	},
	"berlin": {
		{Name: "Radisson Blu Berlin", Area: "Alexanderplatz", PricePerNight: "150", Rating: 4.4},
		{Name: "Motel One Hackescher Markt", Area: "Mitte", PricePerNight: "85", Rating: 4.2},
		{Name: "Michelberger Hotel", Area: "Friedrichshain", PricePerNight: "130", Rating: 4.5},
	},
}

// CatalogSuggestions возвращает запасные варианты отелей для направления.
func CatalogSuggestions(destination string) []trip.HotelSuggestion {
	key := strings.ToLower(strings.TrimSpace(destination))
	if idx := strings.IndexAny(key, ","); idx >= 0 {
		key = strings.TrimSpace(key[:idx])
	}

	if suggestions, ok := catalog[key]; ok {
		out := make([]trip.HotelSuggestion, len(suggestions))
		copy(out, suggestions)
		return out
	}

	return []trip.HotelSuggestion{
		{Name: "Grand City Hotel", Area: "City Center", PricePerNight: "150", Rating: 4.5},
		{Name: "Business Inn", Area: "Business District", PricePerNight: "95", Rating: 4.2},
		{Name: "Boutique Residence", Area: "Old Town", PricePerNight: "120", Rating: 4.4},
	}
}

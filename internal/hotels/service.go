package hotels

import (
	"context"
	"log/slog"

	"example.com/ai-trip-planner/backend/internal/trip"
)

const maxSuggestions = 5

// Service подбирает варианты отелей: сначала API предложений, затем
// список из ответа генерации, затем запасной каталог.
type Service struct {
	client *Client
	logger *slog.Logger
}

// NewService создает сервис подбора отелей. client может быть nil, когда
// API не настроен.
func NewService(client *Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, logger: logger}
}

// Suggestions возвращает варианты отелей для параметров поездки.
func (s *Service) Suggestions(ctx context.Context, params trip.Parameters, generated []trip.HotelSuggestion) []trip.HotelSuggestion {
	if s.client != nil {
		found, err := s.client.Search(ctx, params.Destination, params.StartDate, params.EndDate, params.Travelers)
		if err != nil {
			s.logger.Warn("hotel offers lookup failed",
				slog.String("destination", params.Destination),
				slog.String("error", err.Error()))
		} else if len(found) > 0 {
			return capSuggestions(found)
		}
	}

	if len(generated) > 0 {
		return capSuggestions(generated)
	}

	return capSuggestions(CatalogSuggestions(params.Destination))
}

func capSuggestions(suggestions []trip.HotelSuggestion) []trip.HotelSuggestion {
	if len(suggestions) > maxSuggestions {
		return suggestions[:maxSuggestions]
	}
	return suggestions
}

package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/repository"
	"example.com/ai-trip-planner/backend/internal/session"
	"example.com/ai-trip-planner/backend/internal/trip"
)

type PreviewPayload struct {
	Parameters        trip.Parameters        `json:"parameters"`
	Itinerary         trip.Itinerary         `json:"itinerary"`
	Budget            trip.Budget            `json:"budget"`
	Weather           trip.WeatherSummary    `json:"weather"`
	Hotels            []trip.HotelSuggestion `json:"hotels"`
	Tips              []string               `json:"tips,omitempty"`
	RegenerationCount int                    `json:"regeneration_count"`
	RegenerationsLeft int                    `json:"regenerations_left"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type PreviewResponse struct {
	Preview PreviewPayload `json:"preview"`
}

func toPreviewResponse(bundle models.TripBundle, maxRegenerations int) PreviewResponse {
	left := maxRegenerations - bundle.RegenerationCount
	if left < 0 {
		left = 0
	}

	return PreviewResponse{
		Preview: PreviewPayload{
			Parameters:        bundle.Parameters,
			Itinerary:         bundle.Itinerary,
			Budget:            bundle.Budget,
			Weather:           bundle.Weather,
			Hotels:            bundle.Hotels,
			Tips:              bundle.Tips,
			RegenerationCount: bundle.RegenerationCount,
			RegenerationsLeft: left,
			UpdatedAt:         bundle.UpdatedAt,
		},
	}
}

// loadPreviewBundle возвращает активное превью пользователя. После рестарта
// сервера превью поднимается из черновика в базе и снова попадает в память.
func loadPreviewBundle(ctx context.Context, sessions *session.Store, drafts *repository.DraftRepository, userID uuid.UUID) (models.TripBundle, error) {
	bundle, err := sessions.Get(userID)
	if err == nil {
		return bundle, nil
	}
	if !errors.Is(err, session.ErrNoSession) {
		return models.TripBundle{}, err
	}

	draft, err := drafts.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.TripBundle{}, session.ErrNoSession
		}
		return models.TripBundle{}, err
	}

	return sessions.Put(userID, draft), nil
}

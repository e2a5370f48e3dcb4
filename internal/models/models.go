package models

import (
	"time"

	"github.com/google/uuid"

	"example.com/ai-trip-planner/backend/internal/trip"
)

type NoteType string

const (
	NoteTypeAI   NoteType = "ai"
	NoteTypeUser NoteType = "user"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         *string   `json:"name,omitempty"`
	HomeCity     *string   `json:"home_city,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TripBundle struct {
	// Revision живет только в памяти процесса и защищает от применения
	// устаревших ответов генерации.
	Revision          uint64                 `json:"-"`
	Parameters        trip.Parameters        `json:"parameters"`
	Itinerary         trip.Itinerary         `json:"itinerary"`
	Budget            trip.Budget            `json:"budget"`
	Weather           trip.WeatherSummary    `json:"weather"`
	Hotels            []trip.HotelSuggestion `json:"hotels"`
	Tips              []string               `json:"tips,omitempty"`
	RegenerationCount int                    `json:"regeneration_count"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

type SavedTrip struct {
	ID          uuid.UUID              `json:"id"`
	UserID      uuid.UUID              `json:"user_id"`
	Title       string                 `json:"title"`
	Destination string                 `json:"destination"`
	StartDate   time.Time              `json:"start_date"`
	EndDate     time.Time              `json:"end_date"`
	Travelers   int                    `json:"travelers"`
	Itinerary   trip.Itinerary         `json:"itinerary"`
	Budget      trip.Budget            `json:"budget"`
	Weather     trip.WeatherSummary    `json:"weather"`
	Hotels      []trip.HotelSuggestion `json:"hotels"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type TripNote struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	Content   string    `json:"content"`
	NoteType  NoteType  `json:"note_type"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RefreshToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	TokenHash  string     `json:"-"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
	ReplacedBy *uuid.UUID `json:"replaced_by,omitempty"`
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/trip"
)

const tripTitleLimit = 200

// TripRepository работает с сохраненными поездками.
type TripRepository struct {
	db *pgxpool.Pool
}

// NewTripRepository создает репозиторий поездок.
func NewTripRepository(db *pgxpool.Pool) *TripRepository {
	return &TripRepository{db: db}
}

type SaveTripInput struct {
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Travelers   int
	Itinerary   trip.Itinerary
	Budget      trip.Budget
	Weather     trip.WeatherSummary
	Hotels      []trip.HotelSuggestion
	Tips        []string
}

type TripSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Travelers   int       `json:"travelers"`
	TotalBudget int64     `json:"total_budget"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}

// Create сохраняет поездку вместе с заметками-советами в одной транзакции.
func (r *TripRepository) Create(ctx context.Context, userID uuid.UUID, input SaveTripInput) (models.SavedTrip, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = buildTripTitle(input.Destination, input.StartDate, input.EndDate, tripTitleLimit)
	}

	itineraryJSON, err := json.Marshal(input.Itinerary)
	if err != nil {
		return models.SavedTrip{}, fmt.Errorf("marshal itinerary: %w", err)
	}
	budgetJSON, err := json.Marshal(input.Budget)
	if err != nil {
		return models.SavedTrip{}, fmt.Errorf("marshal budget: %w", err)
	}
	weatherJSON, err := json.Marshal(input.Weather)
	if err != nil {
		return models.SavedTrip{}, fmt.Errorf("marshal weather: %w", err)
	}
	hotels := input.Hotels
	if hotels == nil {
		hotels = []trip.HotelSuggestion{}
	}
	hotelsJSON, err := json.Marshal(hotels)
	if err != nil {
		return models.SavedTrip{}, fmt.Errorf("marshal hotels: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.SavedTrip{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	saved := models.SavedTrip{
		UserID:      userID,
		Title:       title,
		Destination: input.Destination,
		Travelers:   input.Travelers,
		Itinerary:   input.Itinerary,
		Budget:      input.Budget,
		Weather:     input.Weather,
		Hotels:      hotels,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO trips (user_id, title, destination, start_date, end_date, travelers, itinerary, budget, weather, hotels)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9::jsonb, $10::jsonb)
		RETURNING id, start_date, end_date, created_at, updated_at
	`, userID, title, input.Destination, input.StartDate, input.EndDate, input.Travelers,
		string(itineraryJSON), string(budgetJSON), string(weatherJSON), string(hotelsJSON)).
		Scan(&saved.ID, &saved.StartDate, &saved.EndDate, &saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.SavedTrip{}, ErrConflict
		}
		return models.SavedTrip{}, fmt.Errorf("insert trip: %w", err)
	}

	for i, tip := range input.Tips {
		content := strings.TrimSpace(tip)
		if content == "" {
			continue
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO trip_notes (trip_id, content, note_type, sort_order)
			VALUES ($1, $2, $3, $4)
		`, saved.ID, content, models.NoteTypeAI, i)
		if err != nil {
			return models.SavedTrip{}, fmt.Errorf("insert trip note: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.SavedTrip{}, fmt.Errorf("commit tx: %w", err)
	}
	return saved, nil
}

// ListUpcomingByUser возвращает поездки, которые еще не закончились.
func (r *TripRepository) ListUpcomingByUser(ctx context.Context, userID uuid.UUID) ([]TripSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, destination, start_date, end_date, travelers,
		       COALESCE((budget->>'total')::bigint, 0),
		       COALESCE(budget->>'currency', ''),
		       created_at
		FROM trips
		WHERE user_id = $1 AND end_date >= CURRENT_DATE
		ORDER BY start_date ASC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query upcoming trips: %w", err)
	}
	defer rows.Close()
	return scanTripSummaries(rows)
}

// ListPastByUser возвращает завершенные поездки.
func (r *TripRepository) ListPastByUser(ctx context.Context, userID uuid.UUID) ([]TripSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, destination, start_date, end_date, travelers,
		       COALESCE((budget->>'total')::bigint, 0),
		       COALESCE(budget->>'currency', ''),
		       created_at
		FROM trips
		WHERE user_id = $1 AND end_date < CURRENT_DATE
		ORDER BY end_date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query past trips: %w", err)
	}
	defer rows.Close()
	return scanTripSummaries(rows)
}

func scanTripSummaries(rows pgx.Rows) ([]TripSummary, error) {
	summaries := []TripSummary{}
	for rows.Next() {
		var s TripSummary
		err := rows.Scan(&s.ID, &s.Title, &s.Destination, &s.StartDate, &s.EndDate,
			&s.Travelers, &s.TotalBudget, &s.Currency, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan trip summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetByID возвращает поездку пользователя со всеми данными превью.
func (r *TripRepository) GetByID(ctx context.Context, userID, tripID uuid.UUID) (models.SavedTrip, error) {
	var (
		saved         models.SavedTrip
		itineraryJSON []byte
		budgetJSON    []byte
		weatherJSON   []byte
		hotelsJSON    []byte
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, title, destination, start_date, end_date, travelers,
		       itinerary, budget, weather, hotels, created_at, updated_at
		FROM trips
		WHERE id = $1 AND user_id = $2
	`, tripID, userID).Scan(&saved.ID, &saved.UserID, &saved.Title, &saved.Destination,
		&saved.StartDate, &saved.EndDate, &saved.Travelers,
		&itineraryJSON, &budgetJSON, &weatherJSON, &hotelsJSON,
		&saved.CreatedAt, &saved.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SavedTrip{}, ErrNotFound
		}
		return models.SavedTrip{}, fmt.Errorf("query trip: %w", err)
	}

	if err := json.Unmarshal(itineraryJSON, &saved.Itinerary); err != nil {
		return models.SavedTrip{}, fmt.Errorf("unmarshal itinerary: %w", err)
	}
	if err := json.Unmarshal(budgetJSON, &saved.Budget); err != nil {
		return models.SavedTrip{}, fmt.Errorf("unmarshal budget: %w", err)
	}
	if err := json.Unmarshal(weatherJSON, &saved.Weather); err != nil {
		return models.SavedTrip{}, fmt.Errorf("unmarshal weather: %w", err)
	}
	if err := json.Unmarshal(hotelsJSON, &saved.Hotels); err != nil {
		return models.SavedTrip{}, fmt.Errorf("unmarshal hotels: %w", err)
	}
	return saved, nil
}

// Delete удаляет поездку пользователя вместе с заметками.
func (r *TripRepository) Delete(ctx context.Context, userID, tripID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM trips
		WHERE id = $1 AND user_id = $2
	`, tripID, userID)
	if err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// buildTripTitle собирает заголовок по умолчанию из направления и дат.
func buildTripTitle(destination string, start, end time.Time, limit int) string {
	dest := strings.TrimSpace(destination)
	if dest == "" {
		dest = "Trip"
	}
	title := fmt.Sprintf("%s: %s - %s", dest, start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	if utf8.RuneCountInString(title) <= limit {
		return title
	}
	runes := []rune(title)
	return string(runes[:limit])
}

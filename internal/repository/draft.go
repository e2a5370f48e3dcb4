package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/ai-trip-planner/backend/internal/models"
)

// DraftRepository хранит черновик превью поездки, по одному на пользователя.
type DraftRepository struct {
	db *pgxpool.Pool
}

// NewDraftRepository создает репозиторий черновиков.
func NewDraftRepository(db *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{db: db}
}

// Save записывает черновик пользователя, заменяя предыдущий.
func (r *DraftRepository) Save(ctx context.Context, userID uuid.UUID, bundle models.TripBundle) error {
	payload, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO trip_drafts (user_id, payload, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = NOW()
	`, userID, string(payload))
	if err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}
	return nil
}

// Load возвращает черновик пользователя, если он есть.
func (r *DraftRepository) Load(ctx context.Context, userID uuid.UUID) (models.TripBundle, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `
		SELECT payload
		FROM trip_drafts
		WHERE user_id = $1
	`, userID).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.TripBundle{}, ErrNotFound
		}
		return models.TripBundle{}, fmt.Errorf("query draft: %w", err)
	}

	var bundle models.TripBundle
	if err := json.Unmarshal(payload, &bundle); err != nil {
		return models.TripBundle{}, fmt.Errorf("unmarshal draft: %w", err)
	}
	return bundle, nil
}

// Delete удаляет черновик пользователя. Отсутствие строки не считается ошибкой.
func (r *DraftRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM trip_drafts
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

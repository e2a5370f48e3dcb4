package session

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/trip"
)

// TestStoreGetPut проверяет сохранение превью и рост ревизий.
func TestStoreGetPut(t *testing.T) {
	store := NewStore()
	userID := uuid.New()

	if _, err := store.Get(userID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	bundle := store.Put(userID, models.TripBundle{
		Parameters: trip.Parameters{Destination: "Lisbon"},
	})
	if bundle.Revision != 1 {
		t.Fatalf("expected revision 1, got %d", bundle.Revision)
	}
	if bundle.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to be set")
	}

	got, err := store.Get(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Parameters.Destination != "Lisbon" {
		t.Fatalf("expected destination Lisbon, got %s", got.Parameters.Destination)
	}

	bundle = store.Put(userID, models.TripBundle{
		Parameters: trip.Parameters{Destination: "Porto"},
	})
	if bundle.Revision != 2 {
		t.Fatalf("expected revision 2 after second put, got %d", bundle.Revision)
	}
}

// TestStoreUpdate проверяет изменение превью под блокировкой.
func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	userID := uuid.New()

	if _, err := store.Update(userID, func(b models.TripBundle) (models.TripBundle, error) {
		return b, nil
	}); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	store.Put(userID, models.TripBundle{RegenerationCount: 1})

	updated, err := store.Update(userID, func(b models.TripBundle) (models.TripBundle, error) {
		b.RegenerationCount++
		return b, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.RegenerationCount != 2 {
		t.Fatalf("expected regeneration count 2, got %d", updated.RegenerationCount)
	}
	if updated.Revision != 2 {
		t.Fatalf("expected revision 2, got %d", updated.Revision)
	}

	failErr := errors.New("fail")
	if _, err := store.Update(userID, func(b models.TripBundle) (models.TripBundle, error) {
		return models.TripBundle{}, failErr
	}); !errors.Is(err, failErr) {
		t.Fatalf("expected fn error, got %v", err)
	}

	got, err := store.Get(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Revision != 2 {
		t.Fatalf("expected revision unchanged after failed update, got %d", got.Revision)
	}
}

// TestStoreReplace проверяет отбрасывание устаревших замен.
func TestStoreReplace(t *testing.T) {
	store := NewStore()
	userID := uuid.New()

	if _, err := store.Replace(userID, 0, models.TripBundle{}); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}

	first := store.Put(userID, models.TripBundle{
		Parameters: trip.Parameters{Destination: "Kyoto"},
	})

	// Пользователь правит превью, пока идет долгая операция.
	store.Put(userID, models.TripBundle{
		Parameters: trip.Parameters{Destination: "Osaka"},
	})

	if _, err := store.Replace(userID, first.Revision, models.TripBundle{}); !errors.Is(err, ErrStale) {
		t.Fatalf("expected ErrStale, got %v", err)
	}

	got, err := store.Get(userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Parameters.Destination != "Osaka" {
		t.Fatalf("expected destination Osaka to survive, got %s", got.Parameters.Destination)
	}

	replaced, err := store.Replace(userID, got.Revision, models.TripBundle{
		Parameters: trip.Parameters{Destination: "Nara"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced.Revision != got.Revision+1 {
		t.Fatalf("expected revision %d, got %d", got.Revision+1, replaced.Revision)
	}
}

// TestStoreDelete проверяет удаление превью.
func TestStoreDelete(t *testing.T) {
	store := NewStore()
	userID := uuid.New()

	store.Put(userID, models.TripBundle{})
	store.Delete(userID)

	if _, err := store.Get(userID); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after delete, got %v", err)
	}
}

package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/ai-trip-planner/backend/internal/models"
)

var (
	// ErrNoSession означает, что у пользователя нет активного превью.
	ErrNoSession = errors.New("no active trip session")
	// ErrStale означает, что превью изменилось после начала операции.
	ErrStale = errors.New("trip session changed since request started")
)

// Store хранит активные превью поездок по пользователям. Каждая запись
// несет номер ревизии, по которому отбрасываются устаревшие ответы
// долгих операций.
type Store struct {
	mu      sync.RWMutex
	bundles map[uuid.UUID]models.TripBundle
}

// NewStore создает пустое хранилище превью.
func NewStore() *Store {
	return &Store{
		bundles: make(map[uuid.UUID]models.TripBundle),
	}
}

// Get возвращает копию превью пользователя.
func (s *Store) Get(userID uuid.UUID) (models.TripBundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bundle, ok := s.bundles[userID]
	if !ok {
		return models.TripBundle{}, ErrNoSession
	}
	return bundle, nil
}

// Put записывает превью пользователя, продолжая нумерацию ревизий
// существующей записи.
func (s *Store) Put(userID uuid.UUID, bundle models.TripBundle) models.TripBundle {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle.Revision = s.bundles[userID].Revision + 1
	bundle.UpdatedAt = time.Now().UTC()
	s.bundles[userID] = bundle
	return bundle
}

// Update применяет fn к превью пользователя под блокировкой. Возвращенное
// fn значение сохраняется со следующей ревизией; ошибка fn оставляет
// запись нетронутой.
func (s *Store) Update(userID uuid.UUID, fn func(models.TripBundle) (models.TripBundle, error)) (models.TripBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bundles[userID]
	if !ok {
		return models.TripBundle{}, ErrNoSession
	}

	updated, err := fn(current)
	if err != nil {
		return models.TripBundle{}, err
	}

	updated.Revision = current.Revision + 1
	updated.UpdatedAt = time.Now().UTC()
	s.bundles[userID] = updated
	return updated, nil
}

// Replace записывает превью, только если текущая ревизия равна fromRevision.
// Так ответы долгих операций не затирают более свежие правки.
func (s *Store) Replace(userID uuid.UUID, fromRevision uint64, bundle models.TripBundle) (models.TripBundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.bundles[userID]
	if !ok {
		return models.TripBundle{}, ErrNoSession
	}
	if current.Revision != fromRevision {
		return models.TripBundle{}, ErrStale
	}

	bundle.Revision = current.Revision + 1
	bundle.UpdatedAt = time.Now().UTC()
	s.bundles[userID] = bundle
	return bundle, nil
}

// Delete удаляет превью пользователя.
func (s *Store) Delete(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bundles, userID)
}

package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/ai-trip-planner/backend/internal/auth"
	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/notifications"
	"example.com/ai-trip-planner/backend/internal/repository"
	"example.com/ai-trip-planner/backend/internal/session"
	"example.com/ai-trip-planner/backend/internal/trip"
)

const dateLayout = "2006-01-02"

type TripHandler struct {
	Trips    *repository.TripRepository
	Notes    *repository.NoteRepository
	Sessions *session.Store
	Drafts   *repository.DraftRepository
	Notifier *notifications.Hub
}

// NewTripHandler создает обработчик сохраненных поездок.
func NewTripHandler(trips *repository.TripRepository, notes *repository.NoteRepository, sessions *session.Store, drafts *repository.DraftRepository, notifier *notifications.Hub) *TripHandler {
	return &TripHandler{
		Trips:    trips,
		Notes:    notes,
		Sessions: sessions,
		Drafts:   drafts,
		Notifier: notifier,
	}
}

type SaveTripRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
}

type TripDetail struct {
	ID          uuid.UUID              `json:"id"`
	Title       string                 `json:"title"`
	Destination string                 `json:"destination"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Travelers   int                    `json:"travelers"`
	Itinerary   trip.Itinerary         `json:"itinerary"`
	Budget      trip.Budget            `json:"budget"`
	Weather     trip.WeatherSummary    `json:"weather"`
	Hotels      []trip.HotelSuggestion `json:"hotels"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

type TripDetailResponse struct {
	Trip TripDetail `json:"trip"`
}

// Save сохраняет активное превью как поездку. Тело запроса необязательно
// и может задать свой заголовок.
func (h *TripHandler) Save(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req SaveTripRequest
	if err := c.Bind(&req); err != nil && !errors.Is(err, io.EOF) {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	bundle, err := loadPreviewBundle(c.Request().Context(), h.Sessions, h.Drafts, userID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return notFound(c, "no active trip preview")
		}
		return serverError(c)
	}

	start, end, err := bundle.Parameters.Dates()
	if err != nil {
		return serverError(c)
	}

	saved, err := h.Trips.Create(c.Request().Context(), userID, repository.SaveTripInput{
		Title:       strings.TrimSpace(req.Title),
		Destination: bundle.Parameters.Destination,
		StartDate:   start,
		EndDate:     end,
		Travelers:   bundle.Parameters.Travelers,
		Itinerary:   bundle.Itinerary,
		Budget:      bundle.Budget,
		Weather:     bundle.Weather,
		Hotels:      bundle.Hotels,
		Tips:        bundle.Tips,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return conflict(c, "trip already exists")
		}
		return serverError(c)
	}

	publishTripSaved(h.Notifier, userID, saved.ID, saved.Title)
	return c.JSON(http.StatusCreated, TripDetailResponse{Trip: toTripDetail(saved)})
}

// List возвращает предстоящие и прошедшие поездки пользователя.
func (h *TripHandler) List(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	upcoming, err := h.Trips.ListUpcomingByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	past, err := h.Trips.ListPastByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string][]repository.TripSummary{
		"upcoming": upcoming,
		"past":     past,
	})
}

// Get возвращает поездку со всеми данными.
func (h *TripHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid trip id")
	}

	saved, err := h.Trips.GetByID(c.Request().Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "trip not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, TripDetailResponse{Trip: toTripDetail(saved)})
}

// Delete удаляет поездку.
func (h *TripHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid trip id")
	}

	if err := h.Trips.Delete(c.Request().Context(), userID, tripID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "trip not found")
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

func toTripDetail(saved models.SavedTrip) TripDetail {
	return TripDetail{
		ID:          saved.ID,
		Title:       saved.Title,
		Destination: saved.Destination,
		StartDate:   saved.StartDate.Format(dateLayout),
		EndDate:     saved.EndDate.Format(dateLayout),
		Travelers:   saved.Travelers,
		Itinerary:   saved.Itinerary,
		Budget:      saved.Budget,
		Weather:     saved.Weather,
		Hotels:      saved.Hotels,
		CreatedAt:   saved.CreatedAt,
		UpdatedAt:   saved.UpdatedAt,
	}
}

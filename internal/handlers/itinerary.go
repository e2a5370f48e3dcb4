package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"example.com/ai-trip-planner/backend/internal/ai"
	"example.com/ai-trip-planner/backend/internal/auth"
	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/notifications"
	"example.com/ai-trip-planner/backend/internal/repository"
	"example.com/ai-trip-planner/backend/internal/session"
	"example.com/ai-trip-planner/backend/internal/trip"
)

type ItineraryHandler struct {
	Service          *ai.Service
	Sessions         *session.Store
	Drafts           *repository.DraftRepository
	AIRepo           *repository.AIRepository
	Notifier         *notifications.Hub
	Provider         string
	Model            string
	MaxRegenerations int
}

// NewItineraryHandler создает обработчик правок маршрута в превью.
func NewItineraryHandler(service *ai.Service, sessions *session.Store, drafts *repository.DraftRepository, aiRepo *repository.AIRepository, notifier *notifications.Hub, provider, model string, maxRegenerations int) *ItineraryHandler {
	return &ItineraryHandler{
		Service:          service,
		Sessions:         sessions,
		Drafts:           drafts,
		AIRepo:           aiRepo,
		Notifier:         notifier,
		Provider:         provider,
		Model:            model,
		MaxRegenerations: maxRegenerations,
	}
}

type ActivityRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Category    string `json:"category" validate:"omitempty,max=60"`
	Duration    string `json:"duration" validate:"omitempty,max=60"`
	Cost        string `json:"cost" validate:"omitempty,max=60"`
}

type ActivityRegenerationResponse struct {
	Preview      PreviewPayload  `json:"preview"`
	Alternatives []trip.Activity `json:"alternatives"`
}

// RemoveActivity очищает слот дня и списывает его стоимость из бюджета.
func (h *ItineraryHandler) RemoveActivity(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	day, err := parseDayParam(c)
	if err != nil {
		return badRequest(c, "invalid day index")
	}
	period := slotPeriodParam(c)

	if _, err := loadPreviewBundle(c.Request().Context(), h.Sessions, h.Drafts, userID); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return notFound(c, "no active trip preview")
		}
		return serverError(c)
	}

	stored, err := h.Sessions.Update(userID, func(bundle models.TripBundle) (models.TripBundle, error) {
		next, previous, err := bundle.Itinerary.Remove(day, period)
		if err != nil {
			return models.TripBundle{}, err
		}

		bundle.Itinerary = next
		bundle.Budget = trip.Reconcile(bundle.Budget, previous, nil)
		return bundle, nil
	})
	if err != nil {
		return h.slotMutationError(c, userID.String(), day, period, err)
	}

	if err := h.Drafts.Save(c.Request().Context(), userID, stored); err != nil {
		return serverError(c)
	}

	publishItineraryUpdate(h.Notifier, userID, day, period, "removed")
	publishBudgetUpdate(h.Notifier, userID, stored.Budget)
	return c.JSON(http.StatusOK, toPreviewResponse(stored, h.MaxRegenerations))
}

// EditActivity заменяет активность слота и пересчитывает бюджет на разницу.
func (h *ItineraryHandler) EditActivity(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	day, err := parseDayParam(c)
	if err != nil {
		return badRequest(c, "invalid day index")
	}
	period := slotPeriodParam(c)

	var req ActivityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	activity := toActivity(req)

	if _, err := loadPreviewBundle(c.Request().Context(), h.Sessions, h.Drafts, userID); err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return notFound(c, "no active trip preview")
		}
		return serverError(c)
	}

	stored, err := h.Sessions.Update(userID, func(bundle models.TripBundle) (models.TripBundle, error) {
		next, previous, err := bundle.Itinerary.Replace(day, period, activity)
		if err != nil {
			return models.TripBundle{}, err
		}

		bundle.Itinerary = next
		bundle.Budget = trip.Reconcile(bundle.Budget, previous, &activity)
		return bundle, nil
	})
	if err != nil {
		return h.slotMutationError(c, userID.String(), day, period, err)
	}

	if err := h.Drafts.Save(c.Request().Context(), userID, stored); err != nil {
		return serverError(c)
	}

	publishItineraryUpdate(h.Notifier, userID, day, period, "edited")
	publishBudgetUpdate(h.Notifier, userID, stored.Budget)
	return c.JSON(http.StatusOK, toPreviewResponse(stored, h.MaxRegenerations))
}

// RegenerateActivity запрашивает у AI замену для одного слота. Первый
// вариант встает в слот, остальные возвращаются клиенту.
func (h *ItineraryHandler) RegenerateActivity(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	day, err := parseDayParam(c)
	if err != nil {
		return badRequest(c, "invalid day index")
	}

	period, ok := trip.ParsePeriod(c.Param("period"))
	if !ok {
		slog.Warn("itinerary slot rejected", slog.String("user_id", userID.String()), slog.String("period", c.Param("period")))
		return badRequest(c, fmt.Sprintf("unknown period %q", c.Param("period")))
	}

	bundle, err := loadPreviewBundle(c.Request().Context(), h.Sessions, h.Drafts, userID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return notFound(c, "no active trip preview")
		}
		return serverError(c)
	}

	if day < 0 || day >= len(bundle.Itinerary.Days) {
		slog.Warn("itinerary slot rejected", slog.String("user_id", userID.String()), slog.Int("day", day), slog.Int("days", len(bundle.Itinerary.Days)))
		return badRequest(c, fmt.Sprintf("day %d out of range", day))
	}

	dayPlan := bundle.Itinerary.Days[day]
	current, _ := dayPlan.Slot(period)

	input := ai.AlternativesInput{
		Destination:     bundle.Parameters.Destination,
		Day:             day + 1,
		DayTitle:        dayPlan.Title,
		TimeSlot:        string(period),
		CurrentActivity: current,
		Interests:       bundle.Parameters.Interests,
		BudgetLevel:     bundle.Parameters.BudgetLevel,
		Currency:        bundle.Parameters.Currency,
	}
	inputPayload, _ := json.Marshal(input)

	started := time.Now()
	aiResponse, prompt, raw, err := h.Service.SuggestAlternatives(c.Request().Context(), input)
	latency := time.Since(started)

	responsePayload := []byte(nil)
	if err == nil {
		responsePayload, _ = json.Marshal(aiResponse)
	}
	logAIRequest(c.Request().Context(), h.AIRepo, userID, aiRequestRegenerateActivity, h.Provider, h.Model, prompt, inputPayload, responsePayload, raw, latency, err)

	if err != nil {
		slog.Warn("activity regeneration failed", slog.String("user_id", userID.String()), slog.Int("day", day), slog.String("period", string(period)), slog.String("error", err.Error()))
		return badGateway(c, "activity regeneration failed")
	}

	replacement := aiResponse.Alternatives[0]

	nextItinerary, previous, err := bundle.Itinerary.Replace(day, period, replacement)
	if err != nil {
		return h.slotMutationError(c, userID.String(), day, period, err)
	}

	next := bundle
	next.Itinerary = nextItinerary
	next.Budget = trip.Reconcile(bundle.Budget, previous, &replacement)

	stored, err := h.Sessions.Replace(userID, bundle.Revision, next)
	if err != nil {
		if errors.Is(err, session.ErrStale) {
			slog.Warn("stale activity regeneration discarded", slog.String("user_id", userID.String()), slog.Int("day", day), slog.String("period", string(period)))
			return conflict(c, "trip preview changed, retry with the latest version")
		}
		if errors.Is(err, session.ErrNoSession) {
			return notFound(c, "no active trip preview")
		}
		return serverError(c)
	}

	if err := h.Drafts.Save(c.Request().Context(), userID, stored); err != nil {
		return serverError(c)
	}

	publishItineraryUpdate(h.Notifier, userID, day, period, "regenerated")
	publishBudgetUpdate(h.Notifier, userID, stored.Budget)
	return c.JSON(http.StatusOK, ActivityRegenerationResponse{
		Preview:      toPreviewResponse(stored, h.MaxRegenerations).Preview,
		Alternatives: aiResponse.Alternatives[1:],
	})
}

func (h *ItineraryHandler) slotMutationError(c echo.Context, userID string, day int, period trip.Period, err error) error {
	if errors.Is(err, session.ErrNoSession) {
		return notFound(c, "no active trip preview")
	}
	if errors.Is(err, trip.ErrDayOutOfRange) || errors.Is(err, trip.ErrUnknownPeriod) {
		slog.Warn("itinerary slot mutation rejected", slog.String("user_id", userID), slog.Int("day", day), slog.String("period", string(period)), slog.String("error", err.Error()))
		return badRequest(c, err.Error())
	}
	return serverError(c)
}

func parseDayParam(c echo.Context) (int, error) {
	return strconv.Atoi(strings.TrimSpace(c.Param("day")))
}

// slotPeriodParam нормализует период из пути без проверки: неизвестное
// значение отклонит мутатор маршрута.
func slotPeriodParam(c echo.Context) trip.Period {
	return trip.Period(strings.ToLower(strings.TrimSpace(c.Param("period"))))
}

func toActivity(req ActivityRequest) trip.Activity {
	return trip.Activity{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Category:    strings.TrimSpace(req.Category),
		Duration:    strings.TrimSpace(req.Duration),
		Cost:        trip.CostText(strings.TrimSpace(req.Cost)),
	}
}

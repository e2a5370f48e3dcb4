package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/ai-trip-planner/backend/internal/ai"
	"example.com/ai-trip-planner/backend/internal/auth"
	"example.com/ai-trip-planner/backend/internal/hotels"
	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/notifications"
	"example.com/ai-trip-planner/backend/internal/repository"
	"example.com/ai-trip-planner/backend/internal/session"
	"example.com/ai-trip-planner/backend/internal/trip"
)

const (
	aiRequestGenerateTrip       = "generate_trip"
	aiRequestRegenerateTrip     = "regenerate_trip"
	aiRequestRegenerateActivity = "regenerate_activity"
)

const defaultCurrency = "USD"

type GenerateHandler struct {
	Service          *ai.Service
	Hotels           *hotels.Service
	Sessions         *session.Store
	Drafts           *repository.DraftRepository
	Users            *repository.UserRepository
	AIRepo           *repository.AIRepository
	Notifier         *notifications.Hub
	Provider         string
	Model            string
	MaxRegenerations int
	MaxTripDays      int
}

// NewGenerateHandler создает обработчик генерации поездок.
func NewGenerateHandler(service *ai.Service, hotelService *hotels.Service, sessions *session.Store, drafts *repository.DraftRepository, users *repository.UserRepository, aiRepo *repository.AIRepository, notifier *notifications.Hub, provider, model string, maxRegenerations, maxTripDays int) *GenerateHandler {
	return &GenerateHandler{
		Service:          service,
		Hotels:           hotelService,
		Sessions:         sessions,
		Drafts:           drafts,
		Users:            users,
		AIRepo:           aiRepo,
		Notifier:         notifier,
		Provider:         provider,
		Model:            model,
		MaxRegenerations: maxRegenerations,
		MaxTripDays:      maxTripDays,
	}
}

type GenerateTripRequest struct {
	Destination string   `json:"destination" validate:"required,max=120"`
	StartDate   string   `json:"start_date" validate:"required"`
	EndDate     string   `json:"end_date" validate:"required"`
	Travelers   int      `json:"travelers" validate:"required,min=1,max=20"`
	Interests   []string `json:"interests" validate:"omitempty,max=10,dive,max=60"`
	BudgetLevel string   `json:"budget_level" validate:"omitempty,oneof=budget moderate luxury"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
}

// Generate создает превью поездки по параметрам пользователя.
func (h *GenerateHandler) Generate(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req GenerateTripRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	params := trip.Parameters{
		Destination: strings.TrimSpace(req.Destination),
		StartDate:   strings.TrimSpace(req.StartDate),
		EndDate:     strings.TrimSpace(req.EndDate),
		Travelers:   req.Travelers,
		Interests:   cleanInterests(req.Interests),
		BudgetLevel: strings.ToLower(strings.TrimSpace(req.BudgetLevel)),
		Currency:    normalizeCurrency(req.Currency),
	}

	days, err := params.DurationDays()
	if err != nil {
		return badRequest(c, err.Error())
	}
	if days > h.MaxTripDays {
		return badRequest(c, fmt.Sprintf("trip length exceeds %d days", h.MaxTripDays))
	}

	input := h.generateInput(c.Request().Context(), userID, params, days)
	inputPayload, _ := json.Marshal(input)

	started := time.Now()
	aiResponse, prompt, raw, err := h.Service.GenerateTrip(c.Request().Context(), input)
	latency := time.Since(started)

	responsePayload := []byte(nil)
	if err == nil {
		responsePayload, _ = json.Marshal(aiResponse)
	}
	logAIRequest(c.Request().Context(), h.AIRepo, userID, aiRequestGenerateTrip, h.Provider, h.Model, prompt, inputPayload, responsePayload, raw, latency, err)

	if err != nil {
		slog.Warn("trip generation failed", slog.String("user_id", userID.String()), slog.String("destination", params.Destination), slog.String("error", err.Error()))
		return badGateway(c, "trip generation failed")
	}

	bundle := models.TripBundle{
		Parameters: params,
		Itinerary:  aiResponse.Itinerary,
		Budget:     aiResponse.Budget,
		Weather:    aiResponse.Weather,
		Hotels:     h.Hotels.Suggestions(c.Request().Context(), params, aiResponse.Hotels),
		Tips:       aiResponse.Tips,
	}

	stored := h.Sessions.Put(userID, bundle)

	if err := h.Drafts.Save(c.Request().Context(), userID, stored); err != nil {
		return serverError(c)
	}

	slog.Info("trip generated", slog.String("user_id", userID.String()), slog.String("destination", params.Destination), slog.Int("days", days))
	publishTripGenerated(h.Notifier, userID, params.Destination, days)
	return c.JSON(http.StatusCreated, toPreviewResponse(stored, h.MaxRegenerations))
}

// Regenerate выполняет полную перегенерацию превью с учетом лимита.
func (h *GenerateHandler) Regenerate(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	bundle, err := loadPreviewBundle(c.Request().Context(), h.Sessions, h.Drafts, userID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return notFound(c, "no active trip preview")
		}
		return serverError(c)
	}

	if !trip.CanRegenerate(bundle.RegenerationCount, h.MaxRegenerations) {
		return tooManyRequests(c, fmt.Sprintf("regeneration limit of %d reached", h.MaxRegenerations))
	}

	days, err := bundle.Parameters.DurationDays()
	if err != nil {
		return serverError(c)
	}

	input := h.generateInput(c.Request().Context(), userID, bundle.Parameters, days)
	inputPayload, _ := json.Marshal(input)

	started := time.Now()
	aiResponse, prompt, raw, err := h.Service.GenerateTrip(c.Request().Context(), input)
	latency := time.Since(started)

	responsePayload := []byte(nil)
	if err == nil {
		responsePayload, _ = json.Marshal(aiResponse)
	}
	logAIRequest(c.Request().Context(), h.AIRepo, userID, aiRequestRegenerateTrip, h.Provider, h.Model, prompt, inputPayload, responsePayload, raw, latency, err)

	if err != nil {
		slog.Warn("trip regeneration failed", slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return badGateway(c, "trip generation failed")
	}

	next := bundle
	next.Itinerary = aiResponse.Itinerary
	next.Budget = aiResponse.Budget
	next.Weather = aiResponse.Weather
	next.Hotels = h.Hotels.Suggestions(c.Request().Context(), bundle.Parameters, aiResponse.Hotels)
	next.Tips = aiResponse.Tips
	next.RegenerationCount = bundle.RegenerationCount + 1

	stored, err := h.Sessions.Replace(userID, bundle.Revision, next)
	if err != nil {
		if errors.Is(err, session.ErrStale) {
			slog.Warn("stale trip regeneration discarded", slog.String("user_id", userID.String()))
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

	slog.Info("trip regenerated", slog.String("user_id", userID.String()), slog.Int("regeneration_count", stored.RegenerationCount))
	publishTripGenerated(h.Notifier, userID, bundle.Parameters.Destination, days)
	return c.JSON(http.StatusOK, toPreviewResponse(stored, h.MaxRegenerations))
}

// GetPreview возвращает активное превью поездки.
func (h *GenerateHandler) GetPreview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	bundle, err := loadPreviewBundle(c.Request().Context(), h.Sessions, h.Drafts, userID)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return notFound(c, "no active trip preview")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, toPreviewResponse(bundle, h.MaxRegenerations))
}

// DiscardPreview удаляет превью из памяти и черновик из базы.
func (h *GenerateHandler) DiscardPreview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	h.Sessions.Delete(userID)

	if err := h.Drafts.Delete(c.Request().Context(), userID); err != nil {
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *GenerateHandler) generateInput(ctx context.Context, userID uuid.UUID, params trip.Parameters, days int) ai.GenerateTripInput {
	var homeCity string
	user, err := h.Users.GetByID(ctx, userID)
	if err == nil && user.HomeCity != nil {
		homeCity = *user.HomeCity
	}

	return ai.GenerateTripInput{
		Destination: params.Destination,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		Days:        days,
		Travelers:   params.Travelers,
		Interests:   params.Interests,
		BudgetLevel: params.BudgetLevel,
		Currency:    params.Currency,
		HomeCity:    homeCity,
	}
}

func logAIRequest(ctx context.Context, repo *repository.AIRepository, userID uuid.UUID, requestType, provider, model, prompt string, requestPayload, responsePayload, raw []byte, latency time.Duration, err error) {
	entry := repository.AIRequestLog{
		UserID:          userID,
		RequestType:     requestType,
		Provider:        provider,
		Model:           model,
		Prompt:          prompt,
		RequestPayload:  requestPayload,
		ResponsePayload: responsePayload,
		RawResponse:     string(raw),
		LatencyMS:       latency.Milliseconds(),
		Success:         err == nil,
	}
	if err != nil {
		errMsg := err.Error()
		entry.ErrorMessage = &errMsg
	}

	_ = repo.LogRequest(ctx, entry)
}

func normalizeCurrency(value string) string {
	currency := strings.ToUpper(strings.TrimSpace(value))
	if currency == "" {
		return defaultCurrency
	}
	return currency
}

func cleanInterests(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"example.com/ai-trip-planner/backend/internal/auth"
	"example.com/ai-trip-planner/backend/internal/repository"
)

type StatsHandler struct {
	Stats *repository.StatsRepository
}

// NewStatsHandler создает обработчик статистики.
func NewStatsHandler(stats *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{Stats: stats}
}

type OverviewResponse struct {
	TotalTrips           int   `json:"total_trips"`
	UpcomingTrips        int   `json:"upcoming_trips"`
	PastTrips            int   `json:"past_trips"`
	TotalDays            int   `json:"total_days"`
	DistinctDestinations int   `json:"distinct_destinations"`
	TotalBudget          int64 `json:"total_budget"`
}

type DestinationsResponse struct {
	Destinations []DestinationItem `json:"destinations"`
}

type DestinationItem struct {
	Destination string `json:"destination"`
	Trips       int    `json:"trips"`
	TotalBudget int64  `json:"total_budget"`
	LastVisit   string `json:"last_visit"`
}

// Overview возвращает сводную статистику по поездкам.
func (h *StatsHandler) Overview(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	stats, err := h.Stats.Overview(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, OverviewResponse{
		TotalTrips:           stats.TotalTrips,
		UpcomingTrips:        stats.UpcomingTrips,
		PastTrips:            stats.PastTrips,
		TotalDays:            stats.TotalDays,
		DistinctDestinations: stats.DistinctDestinations,
		TotalBudget:          stats.TotalBudget,
	})
}

// Destinations возвращает направления пользователя по числу поездок.
func (h *StatsHandler) Destinations(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	limit := 5
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return badRequest(c, "invalid limit")
		}
		if parsed > 20 {
			parsed = 20
		}
		limit = parsed
	}

	items, err := h.Stats.TopDestinations(c.Request().Context(), userID, limit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalid) {
			return badRequest(c, "invalid limit")
		}
		return serverError(c)
	}

	response := make([]DestinationItem, 0, len(items))
	for _, item := range items {
		response = append(response, DestinationItem{
			Destination: item.Destination,
			Trips:       item.Trips,
			TotalBudget: item.TotalBudget,
			LastVisit:   item.LastVisit.Format(dateLayout),
		})
	}

	return c.JSON(http.StatusOK, DestinationsResponse{Destinations: response})
}

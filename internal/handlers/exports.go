package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"example.com/ai-trip-planner/backend/internal/auth"
	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/pdf"
	"example.com/ai-trip-planner/backend/internal/repository"
	"example.com/ai-trip-planner/backend/internal/trip"
)

const (
	exportTypeItinerary = "itinerary"
	exportTypeNotes     = "notes"
)

const timeLayout = time.RFC3339

type TripExportResponse struct {
	Trip  TripDetail     `json:"trip"`
	Notes []NoteResponse `json:"notes"`
}

// ExportJSON выгружает поездку с заметками в JSON-файл.
func (h *TripHandler) ExportJSON(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	saved, notes, err := h.loadTripWithNotes(c, userID)
	if err != nil {
		return err
	}

	noteResponses := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		noteResponses = append(noteResponses, toNoteResponse(note))
	}

	filename := "trip-" + saved.ID.String() + ".json"
	c.Response().Header().Set(echo.HeaderContentType, "application/json")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.JSON(http.StatusOK, TripExportResponse{
		Trip:  toTripDetail(saved),
		Notes: noteResponses,
	})
}

// ExportCSV выгружает маршрут или заметки поездки в CSV-файл.
func (h *TripHandler) ExportCSV(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	saved, notes, err := h.loadTripWithNotes(c, userID)
	if err != nil {
		return err
	}

	exportType := strings.ToLower(strings.TrimSpace(c.QueryParam("type")))
	if exportType == "" {
		exportType = exportTypeItinerary
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch exportType {
	case exportTypeItinerary:
		if err := writeItineraryCSV(writer, saved); err != nil {
			return serverError(c)
		}
	case exportTypeNotes:
		if err := writeTripNotesCSV(writer, saved, notes); err != nil {
			return serverError(c)
		}
	default:
		return badRequest(c, "invalid export type")
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := "trip-" + saved.ID.String() + "-" + exportType + ".csv"
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportPDF выгружает поездку в PDF-файл.
func (h *TripHandler) ExportPDF(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	saved, notes, err := h.loadTripWithNotes(c, userID)
	if err != nil {
		return err
	}

	data, err := pdf.Render(saved, notes)
	if err != nil {
		return serverError(c)
	}

	filename := "trip-" + saved.ID.String() + ".pdf"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "application/pdf", data)
}

func (h *TripHandler) loadTripWithNotes(c echo.Context, userID uuid.UUID) (models.SavedTrip, []models.TripNote, error) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return models.SavedTrip{}, nil, badRequest(c, "invalid trip id")
	}

	saved, err := h.Trips.GetByID(c.Request().Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.SavedTrip{}, nil, notFound(c, "trip not found")
		}
		return models.SavedTrip{}, nil, serverError(c)
	}

	notes, err := h.Notes.ListByTrip(c.Request().Context(), userID, tripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.SavedTrip{}, nil, notFound(c, "trip not found")
		}
		return models.SavedTrip{}, nil, serverError(c)
	}

	return saved, notes, nil
}

func writeItineraryCSV(writer *csv.Writer, saved models.SavedTrip) error {
	header := []string{
		"trip_id",
		"trip_title",
		"day",
		"day_title",
		"period",
		"activity_title",
		"description",
		"location",
		"category",
		"duration",
		"cost",
		"cost_normalized",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, day := range saved.Itinerary.Days {
		for _, period := range trip.Periods() {
			activity, _ := day.Slot(period)
			if activity == nil {
				continue
			}

			record := []string{
				saved.ID.String(),
				saved.Title,
				formatInt(day.Day),
				day.Title,
				string(period),
				activity.Title,
				activity.Description,
				activity.Location,
				activity.Category,
				activity.Duration,
				string(activity.Cost),
				formatInt64(activity.NormalizedCost()),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeTripNotesCSV(writer *csv.Writer, saved models.SavedTrip, notes []models.TripNote) error {
	header := []string{
		"trip_id",
		"trip_title",
		"note_id",
		"content",
		"note_type",
		"sort_order",
		"created_at",
		"updated_at",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, note := range notes {
		record := []string{
			saved.ID.String(),
			saved.Title,
			note.ID.String(),
			note.Content,
			string(note.NoteType),
			formatInt(note.SortOrder),
			note.CreatedAt.Format(timeLayout),
			note.UpdatedAt.Format(timeLayout),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func formatInt64(value int64) string {
	return strconv.FormatInt(value, 10)
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}

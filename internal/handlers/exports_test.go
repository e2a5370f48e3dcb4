package handlers

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/trip"
)

// TestWriteItineraryCSV проверяет выгрузку маршрута с нормализованной стоимостью.
func TestWriteItineraryCSV(t *testing.T) {
	saved := models.SavedTrip{
		Title: "Lisbon getaway",
		Itinerary: trip.Itinerary{Days: []trip.DayPlan{
			{
				Day:     1,
				Title:   "Old town",
				Morning: &trip.Activity{Title: "Castle visit", Cost: "1,200"},
				Evening: &trip.Activity{Title: "Fado night", Cost: "free"},
			},
		}},
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writeItineraryCSV(writer, saved); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	writer.Flush()

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d records", len(records))
	}
	if records[0][0] != "trip_id" {
		t.Fatalf("unexpected header: %v", records[0])
	}

	morning := records[1]
	if morning[5] != "Castle visit" || morning[10] != "1,200" || morning[11] != "1200" {
		t.Fatalf("unexpected morning row: %v", morning)
	}

	evening := records[2]
	if evening[4] != "evening" || evening[11] != "0" {
		t.Fatalf("unexpected evening row: %v", evening)
	}
}

// TestWriteTripNotesCSV проверяет выгрузку заметок поездки.
func TestWriteTripNotesCSV(t *testing.T) {
	saved := models.SavedTrip{Title: "Lisbon getaway"}
	notes := []models.TripNote{
		{Content: "Carry coins for trams", NoteType: models.NoteTypeAI, SortOrder: 0},
		{Content: "Book fado tickets early", NoteType: models.NoteTypeUser, SortOrder: 1},
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writeTripNotesCSV(writer, saved, notes); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	writer.Flush()

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header and 2 rows, got %d records", len(records))
	}
	if records[1][3] != "Carry coins for trams" || records[1][4] != "ai" {
		t.Fatalf("unexpected first note row: %v", records[1])
	}
	if records[2][4] != "user" {
		t.Fatalf("unexpected second note row: %v", records[2])
	}
}

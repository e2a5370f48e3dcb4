package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"example.com/ai-trip-planner/backend/internal/models"
	"example.com/ai-trip-planner/backend/internal/trip"
)

// Render рендерит сохраненную поездку в PDF формата A4: шапка, погода,
// дни маршрута, таблица бюджета, отели и заметки.
func Render(saved models.SavedTrip, notes []models.TripNote) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(20, 20, 20)
	doc.CellFormat(0, 10, saved.Title, "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(110, 110, 110)
	subtitle := fmt.Sprintf("%s, %s - %s, %d traveler(s)",
		saved.Destination,
		saved.StartDate.Format("02 Jan 2006"),
		saved.EndDate.Format("02 Jan 2006"),
		saved.Travelers)
	doc.CellFormat(0, 6, subtitle, "", 1, "L", false, 0, "")
	doc.SetTextColor(20, 20, 20)
	doc.Ln(4)

	sectionHeader := func(title string) {
		doc.SetFillColor(32, 42, 68)
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(0, 8, "  "+title, "", 1, "L", true, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.Ln(2)
	}

	row := func(label, value string) {
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(110, 110, 110)
		doc.CellFormat(50, 7, label, "", 0, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		doc.SetFont("Helvetica", "B", 10)
		doc.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	if saved.Weather.Summary != "" {
		sectionHeader("Weather")
		row("Forecast", saved.Weather.Summary)
		row("Temperature", fmt.Sprintf("%d to %d C", saved.Weather.AverageLowC, saved.Weather.AverageHighC))
		if saved.Weather.Recommendation != "" {
			row("Packing", saved.Weather.Recommendation)
		}
		doc.Ln(4)
	}

	sectionHeader("Itinerary")
	for _, day := range saved.Itinerary.Days {
		doc.SetFont("Helvetica", "B", 11)
		title := fmt.Sprintf("Day %d", day.Day)
		if day.Title != "" {
			title = fmt.Sprintf("Day %d: %s", day.Day, day.Title)
		}
		doc.CellFormat(0, 7, title, "", 1, "L", false, 0, "")

		for _, period := range trip.Periods() {
			activity, _ := day.Slot(period)
			writeSlot(doc, periodLabel(period), activity)
		}
		doc.Ln(3)
	}

	sectionHeader("Budget")
	row("Accommodation", formatMoney(saved.Budget.Accommodation, saved.Budget.Currency))
	row("Food", formatMoney(saved.Budget.Food, saved.Budget.Currency))
	row("Transport", formatMoney(saved.Budget.Transport, saved.Budget.Currency))
	row("Activities", formatMoney(saved.Budget.Activities, saved.Budget.Currency))

	doc.SetFillColor(236, 238, 244)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(50, 8, "Total", "", 0, "L", true, 0, "")
	doc.CellFormat(0, 8, formatMoney(saved.Budget.Total, saved.Budget.Currency), "", 1, "L", true, 0, "")
	doc.Ln(4)

	if len(saved.Hotels) > 0 {
		sectionHeader("Hotels")
		for _, hotel := range saved.Hotels {
			doc.SetFont("Helvetica", "B", 10)
			doc.CellFormat(0, 6, hotel.Name, "", 1, "L", false, 0, "")

			meta := hotelMeta(hotel)
			if meta != "" {
				doc.SetFont("Helvetica", "", 9)
				doc.SetTextColor(110, 110, 110)
				doc.CellFormat(0, 5, meta, "", 1, "L", false, 0, "")
				doc.SetTextColor(20, 20, 20)
			}
		}
		doc.Ln(4)
	}

	if len(notes) > 0 {
		sectionHeader("Notes")
		doc.SetFont("Helvetica", "", 10)
		for _, note := range notes {
			doc.MultiCell(0, 5, "- "+note.Content, "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSlot(doc *gofpdf.Fpdf, label string, activity *trip.Activity) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetTextColor(110, 110, 110)
	doc.CellFormat(28, 6, label, "", 0, "L", false, 0, "")
	doc.SetTextColor(20, 20, 20)

	if activity == nil {
		doc.SetFont("Helvetica", "I", 10)
		doc.SetTextColor(150, 150, 150)
		doc.CellFormat(0, 6, "Free time", "", 1, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
		return
	}

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, activity.Title, "", 1, "L", false, 0, "")

	meta := activityMeta(activity)
	if meta != "" {
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(110, 110, 110)
		doc.CellFormat(28, 4, "", "", 0, "L", false, 0, "")
		doc.CellFormat(0, 4, meta, "", 1, "L", false, 0, "")
		doc.SetTextColor(20, 20, 20)
	}
}

func activityMeta(activity *trip.Activity) string {
	parts := []string{}
	if activity.Location != "" {
		parts = append(parts, activity.Location)
	}
	if activity.Duration != "" {
		parts = append(parts, activity.Duration)
	}
	if activity.Cost != "" {
		parts = append(parts, "cost: "+string(activity.Cost))
	}
	return strings.Join(parts, ", ")
}

func hotelMeta(hotel trip.HotelSuggestion) string {
	parts := []string{}
	if hotel.Area != "" {
		parts = append(parts, hotel.Area)
	}
	if hotel.PricePerNight != "" {
		parts = append(parts, "per night: "+string(hotel.PricePerNight))
	}
	if hotel.Rating > 0 {
		parts = append(parts, fmt.Sprintf("rating %.1f", hotel.Rating))
	}
	return strings.Join(parts, ", ")
}

func periodLabel(period trip.Period) string {
	switch period {
	case trip.PeriodMorning:
		return "Morning"
	case trip.PeriodAfternoon:
		return "Afternoon"
	case trip.PeriodEvening:
		return "Evening"
	default:
		return string(period)
	}
}

func formatMoney(amount int64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%d", amount)
	}
	return fmt.Sprintf("%d %s", amount, currency)
}

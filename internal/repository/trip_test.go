package repository

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

// TestBuildTripTitle проверяет построение заголовка поездки по умолчанию.
func TestBuildTripTitle(t *testing.T) {
	start := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC)

	title := buildTripTitle("Kyoto", start, end, tripTitleLimit)
	if title != "Kyoto: Sep 12 - Sep 18, 2026" {
		t.Fatalf("unexpected title: %q", title)
	}

	title = buildTripTitle("   ", start, end, tripTitleLimit)
	if title != "Trip: Sep 12 - Sep 18, 2026" {
		t.Fatalf("expected fallback destination, got %q", title)
	}

	long := strings.Repeat("Лиссабон ", 40)
	title = buildTripTitle(long, start, end, tripTitleLimit)
	if utf8.RuneCountInString(title) != tripTitleLimit {
		t.Fatalf("expected title truncated to %d runes, got %d", tripTitleLimit, utf8.RuneCountInString(title))
	}
}

package handlers

import "testing"

// TestNormalizeCurrency проверяет нормализацию кода валюты.
func TestNormalizeCurrency(t *testing.T) {
	if got := normalizeCurrency(""); got != defaultCurrency {
		t.Fatalf("expected %s for empty input, got %s", defaultCurrency, got)
	}

	if got := normalizeCurrency(" eur "); got != "EUR" {
		t.Fatalf("expected EUR, got %s", got)
	}

	if got := normalizeCurrency("JPY"); got != "JPY" {
		t.Fatalf("expected JPY, got %s", got)
	}
}

// TestCleanInterests проверяет очистку списка интересов.
func TestCleanInterests(t *testing.T) {
	got := cleanInterests([]string{" museums ", "", "  ", "food"})
	if len(got) != 2 {
		t.Fatalf("expected 2 interests, got %d: %v", len(got), got)
	}
	if got[0] != "museums" || got[1] != "food" {
		t.Fatalf("unexpected interests: %v", got)
	}

	if got := cleanInterests(nil); len(got) != 0 {
		t.Fatalf("expected empty result for nil input, got %v", got)
	}
}

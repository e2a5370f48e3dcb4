package trip

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestNormalizeCostEmptyAndFree проверяет нулевые случаи нормализации.
func TestNormalizeCostEmptyAndFree(t *testing.T) {
	if got := NormalizeCost(""); got != 0 {
		t.Fatalf("expected 0 for empty cost, got %d", got)
	}

	if got := NormalizeCost("Free"); got != 0 {
		t.Fatalf("expected 0 for Free, got %d", got)
	}

	if got := NormalizeCost("FREE entry"); got != 0 {
		t.Fatalf("expected 0 for FREE entry, got %d", got)
	}

	if got := NormalizeCost("abc"); got != 0 {
		t.Fatalf("expected 0 for non-numeric text, got %d", got)
	}
}

// TestNormalizeCostPlainAmounts проверяет разбор одиночных сумм.
func TestNormalizeCostPlainAmounts(t *testing.T) {
	if got := NormalizeCost("1500"); got != 1500 {
		t.Fatalf("expected 1500, got %d", got)
	}

	if got := NormalizeCost("$1,500"); got != 1500 {
		t.Fatalf("expected 1500 for $1,500, got %d", got)
	}

	if got := NormalizeCost("around 40 USD"); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

// TestNormalizeCostLossyStripping фиксирует отбрасывание точки и минуса.
func TestNormalizeCostLossyStripping(t *testing.T) {
	if got := NormalizeCost("12.50"); got != 1250 {
		t.Fatalf("expected 1250 for 12.50, got %d", got)
	}

	if got := NormalizeCost("-300"); got != 300 {
		t.Fatalf("expected 300 for -300, got %d", got)
	}
}

// TestNormalizeCostRanges проверяет выбор верхней границы диапазона.
func TestNormalizeCostRanges(t *testing.T) {
	if got := NormalizeCost("500-1000"); got != 1000 {
		t.Fatalf("expected 1000 for 500-1000, got %d", got)
	}

	if got := NormalizeCost("500 to 1000"); got != 1000 {
		t.Fatalf("expected 1000 for 500 to 1000, got %d", got)
	}

	if got := NormalizeCost("500—1000"); got != 1000 {
		t.Fatalf("expected 1000 for em dash range, got %d", got)
	}

	if got := NormalizeCost("80–120"); got != 120 {
		t.Fatalf("expected 120 for en dash range, got %d", got)
	}

	if got := NormalizeCost("50,000 - 100,000"); got != 100000 {
		t.Fatalf("expected 100000, got %d", got)
	}

	if got := NormalizeCost("tickets 20-30 dollars"); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}

	if got := NormalizeCost("500-700-900"); got != 900 {
		t.Fatalf("expected 900 for multi-range, got %d", got)
	}

	if got := NormalizeCost("Free - 100"); got != 0 {
		t.Fatalf("expected 0 when range mentions free, got %d", got)
	}
}

// TestNormalizeCostWordToBoundaries проверяет, что "to" внутри слов не
// считается разделителем.
func TestNormalizeCostWordToBoundaries(t *testing.T) {
	if got := NormalizeCost("trip to museum 45"); got != 45 {
		t.Fatalf("expected 45, got %d", got)
	}

	if got := NormalizeCost("45 tokyo pass"); got != 45 {
		t.Fatalf("expected 45 for embedded to, got %d", got)
	}
}

// TestNormalizeCostOverflow проверяет деградацию при переполнении.
func TestNormalizeCostOverflow(t *testing.T) {
	if got := NormalizeCost(CostText(strings.Repeat("9", 25))); got != 0 {
		t.Fatalf("expected 0 for overflowing digits, got %d", got)
	}
}

// TestCostTextUnmarshal проверяет декодирование строк, чисел и null.
func TestCostTextUnmarshal(t *testing.T) {
	var fromString CostText
	if err := json.Unmarshal([]byte(`"$1,500"`), &fromString); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fromString != "$1,500" {
		t.Fatalf("unexpected value: %q", fromString)
	}

	var fromNumber CostText
	if err := json.Unmarshal([]byte(`1500`), &fromNumber); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if NormalizeCost(fromNumber) != 1500 {
		t.Fatalf("unexpected normalized number: %q", fromNumber)
	}

	var fromFloat CostText
	if err := json.Unmarshal([]byte(`12.5`), &fromFloat); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if NormalizeCost(fromFloat) != 125 {
		t.Fatalf("expected lossy 125 for 12.5, got %d", NormalizeCost(fromFloat))
	}

	var fromNull CostText = "stale"
	if err := json.Unmarshal([]byte(`null`), &fromNull); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fromNull != "" {
		t.Fatalf("expected empty value for null, got %q", fromNull)
	}
}

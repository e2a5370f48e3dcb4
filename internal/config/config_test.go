package config

import (
	"reflect"
	"testing"
)

// TestParseCSVEnv проверяет разбор списка email из ENV.
func TestParseCSVEnv(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Admin@example.com, ,USER@Example.com ")

	got := parseCSVEnv("ADMIN_EMAILS")
	want := []string{"admin@example.com", "user@example.com"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestParseCSVEnvMissing проверяет поведение при отсутствии переменной.
func TestParseCSVEnvMissing(t *testing.T) {
	got := parseCSVEnv("MISSING_ENV")
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

// TestParseFloatEnv проверяет разбор числовых переменных с плавающей точкой.
func TestParseFloatEnv(t *testing.T) {
	t.Setenv("AI_TEMPERATURE", "0.4")

	got, err := parseFloatEnv("AI_TEMPERATURE", 0.7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 0.4 {
		t.Fatalf("expected 0.4, got %v", got)
	}

	missing, err := parseFloatEnv("MISSING_TEMPERATURE", 0.7)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if missing != 0.7 {
		t.Fatalf("expected fallback 0.7, got %v", missing)
	}

	t.Setenv("AI_TEMPERATURE", "warm")
	if _, err := parseFloatEnv("AI_TEMPERATURE", 0.7); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}

// TestHotelsConfigEnabled проверяет определение доступности каталога отелей.
func TestHotelsConfigEnabled(t *testing.T) {
	if (HotelsConfig{}).Enabled() {
		t.Fatal("expected disabled without credentials")
	}

	enabled := HotelsConfig{ClientID: "id", ClientSecret: "secret"}
	if !enabled.Enabled() {
		t.Fatal("expected enabled with credentials")
	}

	partial := HotelsConfig{ClientID: "id"}
	if partial.Enabled() {
		t.Fatal("expected disabled with partial credentials")
	}
}

package trip

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func threeDayItinerary() Itinerary {
	return Itinerary{Days: []DayPlan{
		{
			Day:       1,
			Morning:   &Activity{Title: "Old town walk", Cost: "Free"},
			Afternoon: &Activity{Title: "Gallery", Cost: "25"},
			Evening:   &Activity{Title: "Dinner cruise", Cost: "80"},
		},
		{
			Day:     2,
			Morning: &Activity{Title: "Market", Cost: "10"},
		},
		{
			Day:     3,
			Evening: &Activity{Title: "Jazz bar", Cost: "30"},
		},
	}}
}

// TestParsePeriod проверяет разбор ключей периодов дня.
func TestParsePeriod(t *testing.T) {
	period, ok := ParsePeriod("morning")
	if !ok || period != PeriodMorning {
		t.Fatalf("expected morning, got %v (ok=%v)", period, ok)
	}

	period, ok = ParsePeriod(" Evening ")
	if !ok || period != PeriodEvening {
		t.Fatalf("expected evening, got %v (ok=%v)", period, ok)
	}

	if _, ok := ParsePeriod("night"); ok {
		t.Fatal("expected unknown period")
	}
}

// TestRemoveActivity проверяет очистку слота без затрагивания остальных.
func TestRemoveActivity(t *testing.T) {
	original := threeDayItinerary()

	updated, previous, err := original.Remove(0, PeriodAfternoon)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if previous == nil || previous.Title != "Gallery" {
		t.Fatalf("unexpected previous activity: %+v", previous)
	}
	if updated.Days[0].Afternoon != nil {
		t.Fatal("expected cleared slot")
	}
	if updated.Days[0].Morning == nil || updated.Days[2].Evening == nil {
		t.Fatal("expected other slots untouched")
	}
	if original.Days[0].Afternoon == nil {
		t.Fatal("expected original itinerary unchanged")
	}
}

// TestReplaceActivity проверяет замену активности в слоте.
func TestReplaceActivity(t *testing.T) {
	original := threeDayItinerary()

	updated, previous, err := original.Replace(1, PeriodMorning, Activity{Title: "Cooking class", Cost: "55"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if previous == nil || previous.Title != "Market" {
		t.Fatalf("unexpected previous activity: %+v", previous)
	}
	if updated.Days[1].Morning == nil || updated.Days[1].Morning.Title != "Cooking class" {
		t.Fatalf("unexpected slot: %+v", updated.Days[1].Morning)
	}
	if original.Days[1].Morning.Title != "Market" {
		t.Fatal("expected original itinerary unchanged")
	}
}

// TestMutatorOutOfBounds проверяет, что неверный день не меняет маршрут.
func TestMutatorOutOfBounds(t *testing.T) {
	original := threeDayItinerary()

	updated, previous, err := original.Remove(5, PeriodMorning)
	if !errors.Is(err, ErrDayOutOfRange) {
		t.Fatalf("expected ErrDayOutOfRange, got %v", err)
	}
	if previous != nil {
		t.Fatalf("expected nil previous, got %+v", previous)
	}
	if len(updated.Days) != 3 || updated.Days[0].Morning == nil {
		t.Fatal("expected itinerary returned unchanged")
	}

	if _, _, err := original.Remove(-1, PeriodMorning); !errors.Is(err, ErrDayOutOfRange) {
		t.Fatalf("expected ErrDayOutOfRange for negative day, got %v", err)
	}

	if _, _, err := original.Remove(0, Period("night")); !errors.Is(err, ErrUnknownPeriod) {
		t.Fatalf("expected ErrUnknownPeriod, got %v", err)
	}
}

// TestRemoveEmptySlot проверяет, что очистка пустого слота не ошибка.
func TestRemoveEmptySlot(t *testing.T) {
	original := threeDayItinerary()

	updated, previous, err := original.Remove(1, PeriodEvening)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if previous != nil {
		t.Fatalf("expected nil previous for empty slot, got %+v", previous)
	}
	if updated.Days[1].Evening != nil {
		t.Fatal("expected slot to stay empty")
	}
}

// TestActivitiesCost проверяет сумму нормализованных стоимостей маршрута.
func TestActivitiesCost(t *testing.T) {
	if got := threeDayItinerary().ActivitiesCost(); got != 25+80+10+30 {
		t.Fatalf("expected 145, got %d", got)
	}
}

// TestDayPlanSlotKeysStayPresent проверяет, что ключи слотов не исчезают
// из JSON даже у пустых слотов.
func TestDayPlanSlotKeysStayPresent(t *testing.T) {
	payload, err := json.Marshal(DayPlan{Day: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	text := string(payload)
	for _, key := range []string{`"morning":null`, `"afternoon":null`, `"evening":null`} {
		if !strings.Contains(text, key) {
			t.Fatalf("expected %s in %s", key, text)
		}
	}
}

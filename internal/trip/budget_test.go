package trip

import "testing"

// TestReconcileScenario проверяет сквозной сценарий правок бюджета.
func TestReconcileScenario(t *testing.T) {
	budget := Budget{Activities: 200, Total: 500}

	free := &Activity{Title: "City walk", Cost: "Free"}
	budget = Reconcile(budget, free, nil)
	if budget.Activities != 200 || budget.Total != 500 {
		t.Fatalf("expected unchanged budget, got %+v", budget)
	}

	paid := &Activity{Title: "Museum", Cost: "100"}
	budget = Reconcile(budget, paid, nil)
	if budget.Activities != 100 || budget.Total != 400 {
		t.Fatalf("expected 100/400, got %+v", budget)
	}

	old := &Activity{Title: "Boat tour", Cost: "50"}
	replacement := &Activity{Title: "Food tour", Cost: "80–120"}
	budget = Reconcile(budget, old, replacement)
	if budget.Activities != 170 || budget.Total != 470 {
		t.Fatalf("expected 170/470, got %+v", budget)
	}
}

// TestReconcileClampsAtZero проверяет отсечение отрицательных значений.
func TestReconcileClampsAtZero(t *testing.T) {
	budget := Budget{Activities: 50, Total: 60}

	expensive := &Activity{Title: "Helicopter", Cost: "500"}
	budget = Reconcile(budget, expensive, nil)
	if budget.Activities != 0 || budget.Total != 0 {
		t.Fatalf("expected clamped zero budget, got %+v", budget)
	}
}

// TestReconcileRoundTrip проверяет, что удаление и возврат той же
// активности восстанавливают исходный бюджет.
func TestReconcileRoundTrip(t *testing.T) {
	original := Budget{Activities: 320, Total: 900}
	activity := &Activity{Title: "Onsen", Cost: "$45"}

	removed := Reconcile(original, activity, nil)
	restored := Reconcile(removed, nil, activity)

	if restored != original {
		t.Fatalf("expected %+v after round trip, got %+v", original, restored)
	}
}

// TestReconcileOrderIndependence проверяет независимость итого от порядка
// правок, когда каждая дельта считается от предыдущего состояния.
func TestReconcileOrderIndependence(t *testing.T) {
	start := Budget{Activities: 400, Total: 1000}

	hike := &Activity{Title: "Hike", Cost: "30"}
	show := &Activity{Title: "Show", Cost: "120"}
	dinner := &Activity{Title: "Dinner", Cost: "60-90"}

	first := Reconcile(start, hike, nil)
	first = Reconcile(first, nil, show)
	first = Reconcile(first, nil, dinner)

	second := Reconcile(start, nil, dinner)
	second = Reconcile(second, nil, show)
	second = Reconcile(second, hike, nil)

	if first != second {
		t.Fatalf("expected equal budgets, got %+v and %+v", first, second)
	}

	wantDelta := int64(-30 + 120 + 90)
	if first.Total-start.Total != wantDelta {
		t.Fatalf("expected total delta %d, got %d", wantDelta, first.Total-start.Total)
	}
}

// TestAlignWithItinerary проверяет выравнивание бюджета по слотам маршрута.
func TestAlignWithItinerary(t *testing.T) {
	itinerary := Itinerary{Days: []DayPlan{
		{
			Day:     1,
			Morning: &Activity{Title: "Temple", Cost: "Free"},
			Evening: &Activity{Title: "Dinner", Cost: "$40"},
		},
		{
			Day:       2,
			Afternoon: &Activity{Title: "Kayaking", Cost: "60-80"},
		},
	}}

	budget := AlignWithItinerary(Budget{
		Accommodation: 600,
		Food:          250,
		Transport:     -10,
		Activities:    9999,
		Total:         1,
	}, itinerary)

	if budget.Activities != 120 {
		t.Fatalf("expected activities 120, got %d", budget.Activities)
	}
	if budget.Transport != 0 {
		t.Fatalf("expected transport clamped to 0, got %d", budget.Transport)
	}
	if budget.Total != 600+250+0+120 {
		t.Fatalf("expected total %d, got %d", 600+250+120, budget.Total)
	}
}

package trip

import "testing"

// TestCanRegenerate проверяет границы лимита перегенераций.
func TestCanRegenerate(t *testing.T) {
	if !CanRegenerate(0, 3) {
		t.Fatal("expected regeneration allowed at count 0")
	}

	if !CanRegenerate(2, 3) {
		t.Fatal("expected regeneration allowed below limit")
	}

	if CanRegenerate(3, 3) {
		t.Fatal("expected regeneration blocked at limit")
	}

	if CanRegenerate(5, 3) {
		t.Fatal("expected regeneration blocked above limit")
	}

	if CanRegenerate(0, 0) {
		t.Fatal("expected regeneration blocked with zero limit")
	}
}

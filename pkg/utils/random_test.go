package utils

import "testing"

func TestPickIndex_Bounds(t *testing.T) {
	for tick := 0; tick < 100; tick++ {
		for ant := 0; ant < 20; ant++ {
			idx := PickIndex(42, tick, ant, 4)
			if idx < 0 || idx >= 4 {
				t.Fatalf("PickIndex out of range: %d", idx)
			}
		}
	}
}

func TestPickIndex_Deterministic(t *testing.T) {
	a := PickIndex(7, 13, 5, 3)
	b := PickIndex(7, 13, 5, 3)
	if a != b {
		t.Errorf("Same key must yield same draw: %d vs %d", a, b)
	}
}

func TestPickIndex_SeedSensitive(t *testing.T) {
	// С разными сидами хотя бы один из ключей должен дать другой индекс
	diff := false
	for ant := 0; ant < 32; ant++ {
		if PickIndex(1, 0, ant, 4) != PickIndex(2, 0, ant, 4) {
			diff = true
			break
		}
	}
	if !diff {
		t.Error("Different seeds should change at least one draw")
	}
}

func TestPickIndex_NearUniform(t *testing.T) {
	// n=3 не делит 2^64 нацело — как раз случай, где наивный остаток
	// дал бы перевес младшим индексам
	const n = 3
	counts := make([]int, n)
	for tick := 0; tick < 300; tick++ {
		for ant := 0; ant < 100; ant++ {
			counts[PickIndex(99, tick, ant, n)]++
		}
	}

	want := 300 * 100 / n
	for i, c := range counts {
		if c < want*8/10 || c > want*12/10 {
			t.Errorf("Index %d drawn %d times, expected around %d", i, c, want)
		}
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if len(a) != 16 {
		t.Errorf("Expected 16 hex chars, got %d", len(a))
	}
	if a == b {
		t.Error("IDs should be unique")
	}
}

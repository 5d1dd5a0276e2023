package core

import "testing"

func TestRandSameSeedSameSequence(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	r := NewRand(1)
	seenLo, seenHi := false, false

	for i := 0; i < 1000; i++ {
		v := r.IntBetween(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("IntBetween(3, 5) = %d, out of range", v)
		}
		if v == 3 {
			seenLo = true
		}
		if v == 5 {
			seenHi = true
		}
	}
	if !seenLo || !seenHi {
		t.Error("both endpoints should be reachable")
	}

	if r.IntBetween(7, 7) != 7 {
		t.Error("degenerate range should return lo")
	}
	if r.IntBetween(9, 2) != 9 {
		t.Error("inverted range should return lo")
	}
}

func TestPick(t *testing.T) {
	r := NewRand(2)

	if _, ok := Pick(r, []int(nil)); ok {
		t.Error("picking from an empty slice should fail")
	}

	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		v, ok := Pick(r, items)
		if !ok {
			t.Fatal("pick from non-empty slice failed")
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all items reachable, saw %v", seen)
	}
}

func TestWeightedPick(t *testing.T) {
	r := NewRand(3)

	entries := []Weighted[string]{
		{Value: "common", Weight: 10},
		{Value: "never", Weight: 0},
		{Value: "rare", Weight: 1},
	}

	counts := map[string]int{}
	for i := 0; i < 2000; i++ {
		v, ok := WeightedPick(r, entries)
		if !ok {
			t.Fatal("weighted pick failed with positive total weight")
		}
		counts[v]++
	}

	if counts["never"] != 0 {
		t.Errorf("zero-weight entry selected %d times", counts["never"])
	}
	if counts["common"] <= counts["rare"] {
		t.Errorf("weights not respected: common=%d rare=%d", counts["common"], counts["rare"])
	}
}

func TestWeightedPickAllZero(t *testing.T) {
	r := NewRand(4)
	entries := []Weighted[int]{{Value: 1, Weight: 0}, {Value: 2, Weight: -3}}

	if _, ok := WeightedPick(r, entries); ok {
		t.Error("zero total weight should fail")
	}
}

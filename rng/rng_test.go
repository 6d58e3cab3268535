package rng

import "testing"

func TestSpawnDeterministic(t *testing.T) {
	Seed(42)
	a := Spawn()
	b := Spawn()

	Seed(42)
	c := Spawn()
	d := Spawn()

	if a.Int63() != c.Int63() {
		t.Fatal("first spawn after reseed diverged")
	}
	if b.Int63() != d.Int63() {
		t.Fatal("second spawn after reseed diverged")
	}
}

func TestSpawnIndependence(t *testing.T) {
	Seed(1)
	a := Spawn()
	b := Spawn()
	same := true
	for i := 0; i < 8; i++ {
		if a.Int63() != b.Int63() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("distinct spawns produced identical sequences")
	}
}

func TestRangeHalfOpen(t *testing.T) {
	Seed(7)
	r := Spawn()
	for i := 0; i < 1000; i++ {
		v := Range(r, 5, 10)
		if v < 5 || v >= 10 {
			t.Fatalf("Range(5,10) produced %d, want [5,10)", v)
		}
	}
	if v := Range(r, 5, 5); v != 5 {
		t.Fatalf("Range with empty span = %d, want 5", v)
	}
}

func TestRangeClosed(t *testing.T) {
	Seed(7)
	r := Spawn()
	seenHi := false
	for i := 0; i < 2000; i++ {
		v := RangeClosed(r, 0, 3)
		if v < 0 || v > 3 {
			t.Fatalf("RangeClosed(0,3) produced %d, want [0,3]", v)
		}
		if v == 3 {
			seenHi = true
		}
	}
	if !seenHi {
		t.Fatal("RangeClosed(0,3) never produced the closed upper bound in 2000 draws")
	}
}

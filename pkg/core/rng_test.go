package core

import (
	"slices"
	"testing"
)

func TestTableDeterministic(t *testing.T) {
	a1, d1 := NewRNG(7).Table(5, 0.5, 0.2)
	a2, d2 := NewRNG(7).Table(5, 0.5, 0.2)
	if !slices.Equal(a1, a2) || !slices.Equal(d1, d2) {
		t.Fatal("Table with equal seeds must produce equal tables")
	}
}

func TestTableDisjointAndSorted(t *testing.T) {
	ones, dcs := NewRNG(42).Table(6, 0.4, 0.3)
	if !slices.IsSorted(ones) || !slices.IsSorted(dcs) {
		t.Fatal("Table must return ascending minterms")
	}
	for _, m := range ones {
		if slices.Contains(dcs, m) {
			t.Fatalf("minterm %d reported as both true and don't-care", m)
		}
		if m < 0 || m >= 64 {
			t.Fatalf("minterm %d out of range", m)
		}
	}
}

func TestTableExtremes(t *testing.T) {
	ones, dcs := NewRNG(1).Table(3, 1, 0)
	if len(ones) != 8 || len(dcs) != 0 {
		t.Fatalf("p=1 dc=0 gave ones=%v dcs=%v", ones, dcs)
	}
	ones, dcs = NewRNG(1).Table(3, 0, 0)
	if len(ones) != 0 || len(dcs) != 0 {
		t.Fatalf("p=0 dc=0 gave ones=%v dcs=%v", ones, dcs)
	}
}

func TestTableSuccessiveDrawsDiffer(t *testing.T) {
	r := NewRNG(9)
	a, _ := r.Table(6, 0.5, 0)
	b, _ := r.Table(6, 0.5, 0)
	if slices.Equal(a, b) {
		t.Fatal("successive draws from one RNG should differ")
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package xoshiro256

import "testing"

func TestDeterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 50; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("step %d: sources seeded identically diverged", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewSource(1)
	b := NewSource(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("sources with different seeds produced identical output")
	}
}

func TestFloat64Range(t *testing.T) {
	src := NewSource(7)
	for i := 0; i < 10000; i++ {
		f := src.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", f)
		}
	}
}

func TestUint64nRange(t *testing.T) {
	src := NewSource(99)
	for _, n := range []uint64{1, 2, 3, 7, 64, 1000} {
		for i := 0; i < 1000; i++ {
			v := src.Uint64n(n)
			if v >= n {
				t.Fatalf("Uint64n(%d) = %d, out of range", n, v)
			}
		}
	}
}

func TestUint64nDistributesAcrossRange(t *testing.T) {
	src := NewSource(1234)
	const n = 5
	seen := make(map[uint64]bool)
	for i := 0; i < 2000; i++ {
		seen[src.Uint64n(n)] = true
	}
	if len(seen) != n {
		t.Fatalf("Uint64n(%d) only produced %d distinct values across 2000 draws", n, len(seen))
	}
}

func TestUint64nPanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Uint64n(0) should panic")
		}
	}()
	NewSource(1).Uint64n(0)
}

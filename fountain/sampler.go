// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fountain

import "github.com/airgap-tools/ur/xoshiro256"

// sampleDistinct draws degree distinct values from {0..n-1} via partial
// Fisher-Yates: a conceptual working array a[0..n-1] with a[i] == i,
// shuffled only as far as needed. Swaps are recorded lazily in a map so
// that a small degree against a large n costs O(degree), not O(n).
func sampleDistinct(src *xoshiro256.Source, n, degree int) []int {
	if degree >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	a := make(map[int]int, degree)
	at := func(i int) int {
		if v, ok := a[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, degree)
	for k := 0; k < degree; k++ {
		j := k + int(src.Uint64n(uint64(n-k)))
		ak, aj := at(k), at(j)
		a[k], a[j] = aj, ak
		out[k] = a[k]
	}
	return out
}

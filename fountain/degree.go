// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fountain

import "github.com/airgap-tools/ur/xoshiro256"

// chooseDegree draws a value in {1..n} from the distribution with
// weights w_i = (1/i) / H_n, H_n = Σ 1/i for i in 1..n — heavily biased
// toward low degrees, which is what makes peeling reduction converge
// quickly instead of needing full Gaussian elimination.
//
// It draws one uniform float64 and does a linear scan of the cumulative
// weight, so the first index whose cumulative weight exceeds the draw
// wins; ties (which can't actually occur with a continuous draw, but
// would if two cumulative weights coincided in floating point) resolve
// to the lower index because the scan stops at the first match.
func chooseDegree(src *xoshiro256.Source, n int) int {
	if n <= 1 {
		return 1
	}
	h := harmonic(n)
	u := src.Float64()
	cumulative := 0.0
	for i := 1; i <= n; i++ {
		cumulative += (1.0 / float64(i)) / h
		if u < cumulative {
			return i
		}
	}
	// Floating point rounding can leave the cumulative sum a hair under
	// 1.0; the last index is the correct fallback rather than any panic.
	return n
}

func harmonic(n int) float64 {
	sum := 0.0
	for i := 1; i <= n; i++ {
		sum += 1.0 / float64(i)
	}
	return sum
}

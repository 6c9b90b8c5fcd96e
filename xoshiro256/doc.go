// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package xoshiro256 implements the Xoshiro256** pseudo-random generator
// (Blackman & Vigna) in its standard "**" scrambler variant, seeded
// deterministically from the 32-bit value the fountain package derives
// from a part's (seq, N) header (see fountain/part.go).
//
// Two Source values constructed from the same seed always produce the
// same output sequence — this determinism is the fountain decoder's only
// way to agree with the encoder on which segments a given part XORs
// together, so it is exercised by tests rather than left implicit.
package xoshiro256

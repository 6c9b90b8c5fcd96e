// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fountain implements a Luby-Transform-style fountain code over
// fixed-size segments: an Encoder splits a message into N segments and
// emits an unbounded stream of parts, each the XOR of a degree-weighted
// subset of segments chosen deterministically from the part's (seq, N);
// a Decoder accepts those parts in any order, with loss and duplication,
// and performs incremental peeling reduction to recover every segment.
//
// Which segments a given (seq, N) pair selects is entirely a function of
// xoshiro256.Source — the same seed always yields the same subset — so an
// encoder and a decoder that never communicate directly still agree on
// what each part means.
package fountain

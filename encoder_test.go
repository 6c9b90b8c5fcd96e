// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"strings"
	"testing"

	"github.com/airgap-tools/ur/urerror"
)

func TestEncoderSingleSegmentShortCircuit(t *testing.T) {
	enc, err := Bytes([]byte("short message"), 1000)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if enc.FragmentCount() != 1 {
		t.Fatalf("FragmentCount() = %d, want 1", enc.FragmentCount())
	}

	first, err := enc.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	second, err := enc.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	if first != second {
		t.Fatalf("single-segment parts should be identical text: %q vs %q", first, second)
	}

	kind, _, err := Decode(first)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if kind != SinglePart {
		t.Fatalf("kind = %v, want SinglePart for a one-segment message", kind)
	}
}

func TestEncoderMultiPartProducesIncreasingSeq(t *testing.T) {
	enc, err := Bytes([]byte(strings.Repeat("Some binary data", 100)), 10)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if enc.FragmentCount() <= 1 {
		t.Fatalf("FragmentCount() = %d, want > 1", enc.FragmentCount())
	}
	for i := uint32(1); i <= 5; i++ {
		text, err := enc.NextPart()
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		if enc.CurrentIndex() != i {
			t.Fatalf("CurrentIndex() = %d, want %d", enc.CurrentIndex(), i)
		}
		kind, _, err := Decode(text)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if kind != MultiPart {
			t.Fatalf("kind = %v, want MultiPart", kind)
		}
	}
}

func TestNewRejectsInvalidType(t *testing.T) {
	_, err := New([]byte("x"), 10, "Invalid Type")
	if !urerror.Is(err, urerror.InvalidType) {
		t.Fatalf("error = %v, want InvalidType", err)
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package urerror

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesCode(t *testing.T) {
	err := New("bytewords.Decode", InvalidWord, "unknown word %q")
	if !Is(err, InvalidWord) {
		t.Fatal("Is should match the error's own code")
	}
	if Is(err, InvalidChecksum) {
		t.Fatal("Is should not match a different code")
	}
}

func TestIsUnwrapsWrappedCauses(t *testing.T) {
	inner := New("fountain.Decoder.Receive", InconsistentData, "xor mismatch")
	outer := fmt.Errorf("ur.Decoder.Receive: %w", inner)
	if !Is(outer, InconsistentData) {
		t.Fatal("Is should see through fmt.Errorf %w wrapping")
	}
}

func TestIsOnNonTaxonomyError(t *testing.T) {
	if Is(errors.New("plain error"), InvalidWord) {
		t.Fatal("Is should return false for errors outside the taxonomy")
	}
	if Is(nil, InvalidWord) {
		t.Fatal("Is should return false for nil")
	}
}

func TestCodeOf(t *testing.T) {
	err := Wrap("fountain.Encoder.NextPart", EncoderExhausted, "sequence overflow", errors.New("cause"))
	code, ok := CodeOf(err)
	if !ok || code != EncoderExhausted {
		t.Fatalf("CodeOf = %v, %v; want %v, true", code, ok, EncoderExhausted)
	}

	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatal("CodeOf should report false for a non-taxonomy error")
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap("ur.Decode", InvalidCbor, "malformed header", cause)
	got := err.Error()
	if got != "ur.Decode: malformed header: boom" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestErrorMessageWithoutCause(t *testing.T) {
	err := New("ur.Decode", InvalidScheme, "missing ur: prefix")
	got := err.Error()
	if got != "ur.Decode: missing ur: prefix" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap("op", Empty, "msg", cause)
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should see the wrapped cause via Unwrap")
	}
}

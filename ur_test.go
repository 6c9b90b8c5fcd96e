// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"strings"
	"testing"

	"github.com/airgap-tools/ur/urerror"
)

func TestEncodeDecodeSinglePartRoundTrip(t *testing.T) {
	payload := []byte("Some binary data")
	text, err := Encode("bytes", payload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.HasPrefix(text, "ur:bytes/") {
		t.Fatalf("Encode result %q missing expected prefix", text)
	}

	kind, got, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if kind != SinglePart {
		t.Fatalf("kind = %v, want SinglePart", kind)
	}
	if string(got) != string(payload) {
		t.Fatalf("got %x, want %x", got, payload)
	}
}

func TestEncodeRejectsEmptyPayload(t *testing.T) {
	_, err := Encode("bytes", nil)
	if !urerror.Is(err, urerror.Empty) {
		t.Fatalf("error = %v, want Empty", err)
	}
}

func TestEncodeRejectsInvalidType(t *testing.T) {
	_, err := Encode("Not Valid", []byte("x"))
	if !urerror.Is(err, urerror.InvalidType) {
		t.Fatalf("error = %v, want InvalidType", err)
	}
}

func TestDecodeMultiPartReturnsThatPartsSegment(t *testing.T) {
	enc, err := Bytes([]byte(strings.Repeat("Some binary data", 100)), 10)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	text, err := enc.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	kind, segment, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if kind != MultiPart {
		t.Fatalf("kind = %v, want MultiPart", kind)
	}
	if len(segment) == 0 {
		t.Fatal("decoded segment is empty")
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"testing"

	"github.com/airgap-tools/ur/urerror"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := multipartHeader{Seq: 5, Total: 40, MessageLen: 987, Checksum32: 0x1234abcd, Segment: []byte("segment bytes")}
	encoded, err := encodeHeader("test", h)
	if err != nil {
		t.Fatalf("encodeHeader: %v", err)
	}
	got, err := decodeHeader("test", encoded)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if got.Seq != h.Seq || got.Total != h.Total || got.MessageLen != h.MessageLen || got.Checksum32 != h.Checksum32 {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, h)
	}
	if string(got.Segment) != string(h.Segment) {
		t.Fatalf("segment mismatch: got %x, want %x", got.Segment, h.Segment)
	}
}

func TestDecodeHeaderRejectsMalformedCbor(t *testing.T) {
	_, err := decodeHeader("test", []byte{0xff, 0xff, 0xff})
	if !urerror.Is(err, urerror.InvalidCbor) {
		t.Fatalf("error = %v, want InvalidCbor", err)
	}
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"strconv"

	"github.com/airgap-tools/ur/bytewords"
	"github.com/airgap-tools/ur/fountain"
)

// Encoder drives a payload through the fountain codec and wraps each
// resulting part into the UR textual envelope. When the payload fits in
// a single segment, every call to NextPart returns the same single-part
// form instead of a multi-part one — there is no useful fountain
// structure to expose for a one-segment message.
type Encoder struct {
	typ string
	fe  *fountain.Encoder
}

// New constructs an Encoder for payload, capping each fountain segment
// at maxFragmentLen bytes and tagging the envelope with typ.
func New(payload []byte, maxFragmentLen int, typ string) (*Encoder, error) {
	const op = "ur.New"
	if err := validateType(op, typ); err != nil {
		return nil, err
	}
	fe, err := fountain.NewEncoder(payload, maxFragmentLen)
	if err != nil {
		return nil, err
	}
	return &Encoder{typ: typ, fe: fe}, nil
}

// Bytes is shorthand for New with typ = "bytes".
func Bytes(payload []byte, maxFragmentLen int) (*Encoder, error) {
	return New(payload, maxFragmentLen, "bytes")
}

// FragmentCount returns N, the fixed segment count.
func (e *Encoder) FragmentCount() uint32 {
	return e.fe.FragmentCount()
}

// CurrentIndex returns the 1-based sequence number of the most recently
// emitted part, or 0 before the first call to NextPart.
func (e *Encoder) CurrentIndex() uint32 {
	return e.fe.CurrentIndex()
}

// NextPart produces the next part's UR textual envelope.
func (e *Encoder) NextPart() (string, error) {
	const op = "ur.Encoder.NextPart"

	part, err := e.fe.NextPart()
	if err != nil {
		return "", err
	}

	if e.fe.FragmentCount() == 1 {
		return scheme + e.typ + "/" + bytewords.Encode(part.Data, bytewords.Minimal), nil
	}

	header := multipartHeader{
		Seq:        part.Seq,
		Total:      part.N,
		MessageLen: part.MessageLen,
		Checksum32: part.Checksum32,
		Segment:    part.Data,
	}
	cborBody, err := encodeHeader(op, header)
	if err != nil {
		return "", err
	}

	seqAndTotal := strconv.FormatUint(uint64(part.Seq), 10) + "-" + strconv.FormatUint(uint64(part.N), 10)
	return scheme + e.typ + "/" + seqAndTotal + "/" + bytewords.Encode(cborBody, bytewords.Minimal), nil
}

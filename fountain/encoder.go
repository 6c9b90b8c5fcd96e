// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fountain

import (
	"hash/crc32"
	"math"

	"github.com/airgap-tools/ur/urerror"
)

// Encoder splits a message into equal-length segments and emits an
// unbounded stream of parts, each the XOR of a degree-weighted subset of
// those segments chosen deterministically from the part's sequence
// number. It holds no state beyond the segments, the message checksum,
// and how many parts it has emitted.
type Encoder struct {
	segments   [][]byte
	n          uint32
	l          int
	messageLen uint64
	checksum32 uint32
	seq        uint32
}

// NewEncoder partitions message into segments no longer than
// maxFragmentLen and prepares an Encoder to emit fountain parts over
// them.
func NewEncoder(message []byte, maxFragmentLen int) (*Encoder, error) {
	const op = "fountain.NewEncoder"
	if len(message) == 0 {
		return nil, urerror.New(op, urerror.Empty, "message is empty")
	}
	if maxFragmentLen <= 0 {
		return nil, urerror.New(op, urerror.InvalidLength, "max fragment length must be positive")
	}

	n := int(math.Ceil(float64(len(message)) / float64(maxFragmentLen)))
	if n < 1 {
		n = 1
	}
	if n > MaxSegmentCount {
		return nil, urerror.Newf(op, urerror.InvalidLength, "message requires %d segments, exceeds maximum %d", n, MaxSegmentCount)
	}

	l := int(math.Ceil(float64(len(message)) / float64(n)))
	segments := make([][]byte, n)
	for i := 0; i < n; i++ {
		seg := make([]byte, l)
		start := i * l
		end := start + l
		if start < len(message) {
			if end > len(message) {
				end = len(message)
			}
			copy(seg, message[start:end])
		}
		segments[i] = seg
	}

	return &Encoder{
		segments:   segments,
		n:          uint32(n),
		l:          l,
		messageLen: uint64(len(message)),
		checksum32: crc32.ChecksumIEEE(message),
	}, nil
}

// FragmentCount returns N, the total segment count, fixed at construction.
func (e *Encoder) FragmentCount() uint32 {
	return e.n
}

// CurrentIndex returns the 1-based sequence number of the most recently
// emitted part, or 0 if NextPart has not been called yet.
func (e *Encoder) CurrentIndex() uint32 {
	return e.seq
}

// NextPart produces the next part in sequence, XORing together the
// segments indices(seq, N) selects.
func (e *Encoder) NextPart() (*Part, error) {
	const op = "fountain.Encoder.NextPart"
	if e.seq == math.MaxUint32 {
		return nil, urerror.New(op, urerror.EncoderExhausted, "sequence counter would overflow")
	}
	e.seq++

	set := indices(e.seq, e.n)
	data := make([]byte, e.l)
	for _, i := range set.members() {
		xorInto(data, e.segments[i])
	}

	return &Part{
		Seq:        e.seq,
		N:          e.n,
		MessageLen: e.messageLen,
		Checksum32: e.checksum32,
		Data:       data,
	}, nil
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

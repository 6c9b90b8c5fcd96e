// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fountain

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/airgap-tools/ur/xoshiro256"
)

// MaxSegmentCount is the largest segment count this package will
// construct an Encoder for or accept in a Part's header. It exists to
// cap memory: a Decoder holds O(N·L) of solved segments plus an N-bit
// index set for each pending part.
const MaxSegmentCount = 65536

// Part is a single fountain fragment: the XOR of the segments selected by
// indices(Seq, N), plus the message descriptor every part repeats so a
// Decoder can lock onto it from whichever part arrives first.
type Part struct {
	Seq        uint32
	N          uint32
	MessageLen uint64
	Checksum32 uint32
	Data       []byte
}

// seedFor derives the 32-bit Xoshiro256 seed for a given (seq, N) pair:
// the inner CRC-32 of N's big-endian bytes is appended to seq's
// big-endian bytes, and the outer CRC-32 of that eight-byte buffer is the
// seed. Both seq and N must be stable, agreed inputs on both ends of a
// transfer — this is the one place where sender and receiver converge
// without exchanging any extra bits.
func seedFor(seq, n uint32) uint32 {
	var nBuf [4]byte
	binary.BigEndian.PutUint32(nBuf[:], n)
	inner := crc32.ChecksumIEEE(nBuf[:])

	var buf [8]byte
	binary.BigEndian.PutUint32(buf[:4], seq)
	binary.BigEndian.PutUint32(buf[4:], inner)
	return crc32.ChecksumIEEE(buf[:])
}

// indices returns the deterministic, non-empty set of segment indices
// that part seq selects out of N total segments. N == 1 always selects
// {0}; otherwise a Xoshiro256 source seeded from (seq, N) drives a
// degree draw followed by a partial Fisher-Yates sample.
func indices(seq, n uint32) indexSet {
	set := newIndexSet(int(n))
	if n <= 1 {
		set.add(0)
		return set
	}
	src := xoshiro256.NewSource(seedFor(seq, n))
	degree := chooseDegree(src, int(n))
	for _, i := range sampleDistinct(src, int(n), degree) {
		set.add(i)
	}
	return set
}

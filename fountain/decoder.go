// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package fountain

import (
	"bytes"
	"hash/crc32"

	"github.com/airgap-tools/ur/urerror"
)

type pendingPart struct {
	set  indexSet
	data []byte
}

// Decoder accepts fountain parts in any order, with arbitrary loss and
// duplication, and performs incremental peeling reduction: every
// degree-1 part solves a segment outright, and solving a segment is
// propagated into every pending part that depended on it, which may
// solve further segments in turn.
type Decoder struct {
	locked     bool
	n          uint32
	l          int
	messageLen uint64
	checksum32 uint32

	solved      [][]byte
	solvedCount int
	pending     []pendingPart
}

// NewDecoder returns an empty Decoder, ready to Receive parts.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Receive processes one incoming part. The first part received locks
// the decoder onto its (N, message length, checksum) header; every
// subsequent part must match that header exactly or is rejected with
// InconsistentHeaders, leaving all prior progress untouched.
func (d *Decoder) Receive(part *Part) error {
	const op = "fountain.Decoder.Receive"

	if part.N == 0 {
		return urerror.New(op, urerror.InvalidLength, "part declares zero segments")
	}
	if part.N > MaxSegmentCount {
		return urerror.Newf(op, urerror.InvalidLength, "part declares %d segments, exceeds maximum %d", part.N, MaxSegmentCount)
	}

	if !d.locked {
		if part.MessageLen > uint64(part.N)*uint64(len(part.Data)) {
			return urerror.Newf(op, urerror.InvalidLength, "declared message length %d exceeds the %d segments' total capacity of %d bytes", part.MessageLen, part.N, uint64(part.N)*uint64(len(part.Data)))
		}
		d.n = part.N
		d.l = len(part.Data)
		d.messageLen = part.MessageLen
		d.checksum32 = part.Checksum32
		d.solved = make([][]byte, d.n)
		d.locked = true
	} else if part.N != d.n || part.MessageLen != d.messageLen || part.Checksum32 != d.checksum32 {
		return urerror.New(op, urerror.InconsistentHeaders, "part header disagrees with the locked header")
	}

	if len(part.Data) != d.l {
		return urerror.Newf(op, urerror.InvalidLength, "segment length %d disagrees with locked length %d", len(part.Data), d.l)
	}

	set := indices(part.Seq, part.N)
	data := make([]byte, d.l)
	copy(data, part.Data)

	// Reduce against already-solved segments.
	for _, i := range set.members() {
		if seg := d.solved[i]; seg != nil {
			set.clear(i)
			xorInto(data, seg)
		}
	}

	switch set.count() {
	case 0:
		if isZero(data) {
			return nil
		}
		return urerror.New(op, urerror.InconsistentData, "reduced part carries nonzero data against an already-solved, all-zero contribution")
	case 1:
		return d.installSolved(op, set.only(), data)
	}

	// Reduce against pending parts whose set is a strict subset of this
	// one, in case that unlocks further simplification, to a fixpoint.
	for {
		reduced := false
		for _, p := range d.pending {
			if p.set.isSubsetOf(set) && !p.set.equals(set) {
				set = set.xor(p.set)
				xorInto(data, p.data)
				reduced = true
			}
		}
		if !reduced {
			break
		}
	}

	switch set.count() {
	case 0:
		if isZero(data) {
			return nil
		}
		return urerror.New(op, urerror.InconsistentData, "reduced part carries nonzero data against an already-covered, all-zero contribution")
	case 1:
		return d.installSolved(op, set.only(), data)
	}

	for _, p := range d.pending {
		if p.set.equals(set) {
			return nil
		}
	}
	d.pending = append(d.pending, pendingPart{set: set, data: data})
	return nil
}

// installSolved records segment i as solved and propagates that
// solution into every pending part that depended on it, which may solve
// further segments transitively.
func (d *Decoder) installSolved(op string, i int, data []byte) error {
	if existing := d.solved[i]; existing != nil {
		if !bytes.Equal(existing, data) {
			return urerror.Newf(op, urerror.InconsistentData, "segment %d disagrees with its existing solution", i)
		}
		return nil
	}
	d.solved[i] = data
	d.solvedCount++

	queue := []int{i}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		solvedData := d.solved[cur]

		kept := d.pending[:0]
		for _, p := range d.pending {
			if !p.set.has(cur) {
				kept = append(kept, p)
				continue
			}
			p.set.clear(cur)
			xorInto(p.data, solvedData)

			switch p.set.count() {
			case 0:
				if !isZero(p.data) {
					return urerror.New(op, urerror.InconsistentData, "propagation reduced a pending part to an all-zero index set with nonzero data")
				}
			case 1:
				j := p.set.only()
				if existing := d.solved[j]; existing != nil {
					if !bytes.Equal(existing, p.data) {
						return urerror.Newf(op, urerror.InconsistentData, "segment %d disagrees with its existing solution", j)
					}
					continue
				}
				d.solved[j] = p.data
				d.solvedCount++
				queue = append(queue, j)
			default:
				kept = append(kept, p)
			}
		}
		d.pending = kept
	}
	return nil
}

// Complete reports whether every segment has been solved.
func (d *Decoder) Complete() bool {
	return d.locked && d.solvedCount == int(d.n)
}

// Progress returns the fraction of segments solved so far, in [0, 1]. It
// is a pure function of decoder state meant for caller-side progress
// bars; it has no effect on decoding.
func (d *Decoder) Progress() float64 {
	if !d.locked || d.n == 0 {
		return 0
	}
	return float64(d.solvedCount) / float64(d.n)
}

// Message reconstructs the original payload once Complete reports true.
// It verifies the whole-message CRC-32 as a defense-in-depth check that
// never fires under correct peeling, and returns InvalidChecksum if it
// ever does.
func (d *Decoder) Message() ([]byte, error) {
	const op = "fountain.Decoder.Message"
	if !d.Complete() {
		return nil, urerror.New(op, urerror.Empty, "decoder has not solved every segment yet")
	}

	full := make([]byte, 0, int(d.n)*d.l)
	for _, seg := range d.solved {
		full = append(full, seg...)
	}
	message := full[:d.messageLen]

	if crc32.ChecksumIEEE(message) != d.checksum32 {
		return nil, urerror.New(op, urerror.InvalidChecksum, "reconstructed message fails its checksum")
	}

	out := make([]byte, len(message))
	copy(out, message)
	return out, nil
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

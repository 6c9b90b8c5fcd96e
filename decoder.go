// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"bytes"

	"github.com/airgap-tools/ur/bytewords"
	"github.com/airgap-tools/ur/fountain"
	"github.com/airgap-tools/ur/urerror"
)

// Decoder accepts UR envelopes — single- or multi-part, in any order,
// with loss and duplication — and reconstructs the original payload once
// enough parts have arrived. The zero value is not ready to use;
// construct one with NewDecoder.
type Decoder struct {
	typ string

	fd *fountain.Decoder

	hasSingle    bool
	singleResult []byte
}

// NewDecoder returns an empty Decoder.
func NewDecoder() *Decoder {
	return &Decoder{fd: fountain.NewDecoder()}
}

// Receive processes one UR envelope string.
func (d *Decoder) Receive(uri string) error {
	const op = "ur.Decoder.Receive"

	env, err := parseEnvelope(op, uri)
	if err != nil {
		return err
	}

	if d.typ == "" {
		d.typ = env.typ
	} else if d.typ != env.typ {
		return urerror.Newf(op, urerror.InconsistentHeaders, "part type %q disagrees with locked type %q", env.typ, d.typ)
	}

	if env.kind == SinglePart {
		payload, err := bytewords.Decode(env.body, bytewords.Minimal)
		if err != nil {
			return err
		}
		if d.hasSingle {
			if !bytes.Equal(d.singleResult, payload) {
				return urerror.New(op, urerror.InconsistentData, "single-part payload disagrees with a previously received one")
			}
			return nil
		}
		d.hasSingle = true
		d.singleResult = payload
		return nil
	}

	cborBody, err := bytewords.Decode(env.body, bytewords.Minimal)
	if err != nil {
		return err
	}
	header, err := decodeHeader(op, cborBody)
	if err != nil {
		return err
	}
	if header.Seq != env.seq || header.Total != env.total {
		return urerror.New(op, urerror.InconsistentHeaders, "URI sequence/total disagrees with the CBOR header")
	}

	part := &fountain.Part{
		Seq:        header.Seq,
		N:          header.Total,
		MessageLen: header.MessageLen,
		Checksum32: header.Checksum32,
		Data:       header.Segment,
	}
	return d.fd.Receive(part)
}

// Complete reports whether enough parts have arrived to reconstruct the
// message.
func (d *Decoder) Complete() bool {
	return d.hasSingle || d.fd.Complete()
}

// Progress returns fractional completion in [0, 1], for callers driving
// a progress indicator; it has no effect on decoding.
func (d *Decoder) Progress() float64 {
	if d.hasSingle {
		return 1
	}
	return d.fd.Progress()
}

// Message returns the reconstructed payload once Complete reports true.
func (d *Decoder) Message() ([]byte, error) {
	const op = "ur.Decoder.Message"
	if d.hasSingle {
		out := make([]byte, len(d.singleResult))
		copy(out, d.singleResult)
		return out, nil
	}
	if !d.fd.Complete() {
		return nil, urerror.New(op, urerror.Empty, "decoder has not received enough parts yet")
	}
	return d.fd.Message()
}

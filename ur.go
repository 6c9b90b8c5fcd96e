// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"github.com/airgap-tools/ur/bytewords"
	"github.com/airgap-tools/ur/urerror"
)

// Encode wraps payload in the single-part UR textual envelope:
// ur:<type>/<bytewords-minimal(payload || CRC32(payload))>. Use an
// Encoder instead when payload may need fragmenting across multiple
// parts.
func Encode(typ string, payload []byte) (string, error) {
	const op = "ur.Encode"
	if err := validateType(op, typ); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", urerror.New(op, urerror.Empty, "payload is empty")
	}
	return scheme + typ + "/" + bytewords.Encode(payload, bytewords.Minimal), nil
}

// Decode parses a single UR envelope string and returns its Kind
// alongside the decoded bytes: for a single-part envelope, the whole
// payload; for a multi-part envelope, that one part's segment bytes.
// Reassembling a multi-part stream into the original message requires a
// Decoder, which accumulates state across calls to Receive.
func Decode(uri string) (Kind, []byte, error) {
	const op = "ur.Decode"

	env, err := parseEnvelope(op, uri)
	if err != nil {
		return 0, nil, err
	}

	if env.kind == SinglePart {
		payload, err := bytewords.Decode(env.body, bytewords.Minimal)
		if err != nil {
			return 0, nil, err
		}
		return SinglePart, payload, nil
	}

	cborBody, err := bytewords.Decode(env.body, bytewords.Minimal)
	if err != nil {
		return 0, nil, err
	}
	header, err := decodeHeader(op, cborBody)
	if err != nil {
		return 0, nil, err
	}
	if header.Seq != env.seq || header.Total != env.total {
		return 0, nil, urerror.New(op, urerror.InconsistentHeaders, "URI sequence/total disagrees with the CBOR header")
	}

	return MultiPart, header.Segment, nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"github.com/airgap-tools/ur/internal/headercodec"
	"github.com/airgap-tools/ur/urerror"
)

// multipartHeader is the CBOR array `[seq, total, message_len,
// checksum32, segment]` that a multi-part envelope's bytewords body
// decodes to once its trailing CRC-32 is verified and stripped.
type multipartHeader struct {
	_          struct{} `cbor:",toarray"`
	Seq        uint32
	Total      uint32
	MessageLen uint64
	Checksum32 uint32
	Segment    []byte
}

func encodeHeader(op string, h multipartHeader) ([]byte, error) {
	encoded, err := headercodec.Marshal(h)
	if err != nil {
		return nil, urerror.Wrap(op, urerror.InvalidCbor, "failed to encode multi-part header", err)
	}
	return encoded, nil
}

func decodeHeader(op string, data []byte) (multipartHeader, error) {
	var h multipartHeader
	if err := headercodec.Unmarshal(data, &h); err != nil {
		return multipartHeader{}, urerror.Wrap(op, urerror.InvalidCbor, "failed to decode multi-part header", err)
	}
	return h, nil
}

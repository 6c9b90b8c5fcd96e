// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package headercodec is the sole point of contact between this module
// and fxamacker/cbor/v2, so every other package depends on a narrow
// Marshal/Unmarshal surface instead of the CBOR library directly.
package headercodec

import "github.com/fxamacker/cbor/v2"

// encMode is configured for Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest-width integers, no indefinite-length items.
// The same logical header always produces identical bytes, which matters
// here because the multi-part envelope's CRC-32 trailer is computed over
// this encoding.
var encMode cbor.EncMode

// decMode accepts standard CBOR with no relaxed-decoding options; the
// header schema is a fixed array, not an open-ended map, so there is no
// analogue of unknown-field tolerance to configure.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("headercodec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("headercodec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

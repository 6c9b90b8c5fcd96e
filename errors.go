// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import "github.com/airgap-tools/ur/urerror"

// Code and Error are re-exported from urerror so callers of this
// package's top-level API never need a second import for error
// handling; bytewords and fountain still return *urerror.Error directly
// since they're usable standalone.
type Code = urerror.Code

// Error is the concrete error type every exported operation in this
// module returns.
type Error = urerror.Error

const (
	InvalidScheme       = urerror.InvalidScheme
	InvalidIndices      = urerror.InvalidIndices
	InvalidWord         = urerror.InvalidWord
	InvalidLength       = urerror.InvalidLength
	InvalidChecksum     = urerror.InvalidChecksum
	InvalidCbor         = urerror.InvalidCbor
	InconsistentHeaders = urerror.InconsistentHeaders
	InconsistentData    = urerror.InconsistentData
	EncoderExhausted    = urerror.EncoderExhausted
	InvalidType         = urerror.InvalidType
	Empty               = urerror.Empty
)

// Is reports whether err is, or wraps, a urerror.Error with the given
// code.
func Is(err error, code Code) bool {
	return urerror.Is(err, code)
}

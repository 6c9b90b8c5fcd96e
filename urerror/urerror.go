// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package urerror defines the error taxonomy shared by the bytewords,
// fountain, and top-level ur packages.
//
// Every exported operation in this module that can fail returns (or wraps)
// an *Error carrying one of the Code constants below, so callers can branch
// on failure kind with Is rather than string-matching messages:
//
//	if urerror.Is(err, urerror.InvalidChecksum) {
//	    // the bytewords CRC-32 trailer didn't match
//	}
package urerror

import "fmt"

// Code identifies the kind of failure. The set is exhaustive: every error
// this module returns carries exactly one of these.
type Code string

const (
	// InvalidScheme: a UR string doesn't start with "ur:", or its type
	// fails the [a-z0-9-]+ syntax check.
	InvalidScheme Code = "invalid_scheme"
	// InvalidIndices: a multi-part UR's seq/total are missing, zero, or
	// non-decimal. seq may exceed total.
	InvalidIndices Code = "invalid_indices"
	// InvalidWord: bytewords text contains a token outside the alphabet
	// for the requested style.
	InvalidWord Code = "invalid_word"
	// InvalidLength: text length isn't a multiple of the per-style word
	// length, or a segment's length disagrees with its declared size.
	InvalidLength Code = "invalid_length"
	// InvalidChecksum: the bytewords CRC-32 trailer doesn't match, or a
	// reconstructed message's CRC-32 doesn't match its declared checksum.
	InvalidChecksum Code = "invalid_checksum"
	// InvalidCbor: multi-part CBOR is malformed or doesn't match the
	// five-element header schema.
	InvalidCbor Code = "invalid_cbor"
	// InconsistentHeaders: a part's (N, message_len, checksum32) disagrees
	// with a previously locked header, or a URI's seq/total disagrees
	// with its CBOR payload.
	InconsistentHeaders Code = "inconsistent_headers"
	// InconsistentData: fountain propagation produced a contradiction —
	// the XOR of solved segments over a known set didn't match a part's
	// declared data.
	InconsistentData Code = "inconsistent_data"
	// EncoderExhausted: the next sequence number would overflow uint32.
	EncoderExhausted Code = "encoder_exhausted"
	// InvalidType: an encoder was constructed with an invalid type string.
	InvalidType Code = "invalid_type"
	// Empty: an empty payload or empty part list was supplied where a
	// non-empty one is required.
	Empty Code = "empty"
)

// Error is the concrete error type every operation in this module returns.
// Callers that need the failure kind use Is or errors.As; callers that
// just need a message use Error().
type Error struct {
	// Code classifies the failure; see the Code constants.
	Code Code
	// Op names the operation that failed, e.g. "bytewords.Decode".
	Op string
	// Message is a human-readable description, without a trailing period.
	Message string
	// Err is the underlying cause, if any. May be nil.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(op string, code Code, message string) *Error {
	return &Error{Op: op, Code: code, Message: message}
}

// Newf builds an *Error with a formatted message and no wrapped cause.
func Newf(op string, code Code, format string, args ...any) *Error {
	return &Error{Op: op, Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that records cause as its underlying error.
func Wrap(op string, code Code, message string, cause error) *Error {
	return &Error{Op: op, Code: code, Message: message, Err: cause}
}

// Is reports whether err is (or wraps) an *Error with the given code.
//
//	if urerror.Is(err, urerror.InconsistentHeaders) { ... }
func Is(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code == code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// CodeOf returns the Code of err if it is (or wraps) an *Error, and false
// otherwise.
func CodeOf(err error) (Code, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return "", false
		}
		err = u.Unwrap()
	}
	return "", false
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"strconv"
	"strings"

	"github.com/airgap-tools/ur/urerror"
)

// Kind distinguishes a single-part envelope from a multi-part one,
// determined by the presence of a <seq>-<total> segment in the URI.
type Kind int

const (
	SinglePart Kind = iota
	MultiPart
)

const scheme = "ur:"

// typeChars marks which bytes are permitted in a UR type: lowercase
// ASCII letters, digits, and '-'.
var typeChars [256]bool

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		typeChars[c] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		typeChars[c] = true
	}
	typeChars['-'] = true
}

// validateType enforces the UR type grammar: non-empty, matching
// [a-z0-9-]+, with no leading or trailing '-'.
func validateType(op, typ string) error {
	if typ == "" {
		return urerror.New(op, urerror.InvalidType, "type is empty")
	}
	for i := 0; i < len(typ); i++ {
		if !typeChars[typ[i]] {
			return urerror.Newf(op, urerror.InvalidType, "type %q contains invalid character %q", typ, typ[i])
		}
	}
	if typ[0] == '-' || typ[len(typ)-1] == '-' {
		return urerror.Newf(op, urerror.InvalidType, "type %q must not start or end with '-'", typ)
	}
	return nil
}

// envelope is the parsed shape of a ur: URI, before bytewords/CBOR
// decoding of its body.
type envelope struct {
	typ   string
	seq   uint32
	total uint32
	body  string
	kind  Kind
}

// parseEnvelope splits a ur: URI into its type, optional seq/total, and
// body, folding the whole string to lowercase first since bytewords text
// and UR type/scheme tokens are case-insensitive in deployment (e.g. QR
// alphanumeric mode prefers uppercase).
func parseEnvelope(op, uri string) (envelope, error) {
	uri = strings.ToLower(uri)

	if !strings.HasPrefix(uri, scheme) {
		return envelope{}, urerror.Newf(op, urerror.InvalidScheme, "%q does not start with %q", uri, scheme)
	}
	rest := uri[len(scheme):]

	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return envelope{}, urerror.New(op, urerror.InvalidScheme, "missing /<payload> after the type")
	}
	typ := rest[:slash]
	if err := validateType(op, typ); err != nil {
		return envelope{}, urerror.Wrap(op, urerror.InvalidScheme, "URI type fails the [a-z0-9-]+ syntax check", err)
	}
	rest = rest[slash+1:]

	// Bytewords text, in any style this module produces, never contains
	// '/'; if the remainder still has one, this is the multi-part form
	// and the part before it is <seq>-<total>.
	slash = strings.IndexByte(rest, '/')
	if slash < 0 {
		return envelope{typ: typ, body: rest, kind: SinglePart}, nil
	}

	head := rest[:slash]
	body := rest[slash+1:]
	if strings.ContainsRune(body, '/') {
		return envelope{}, urerror.Newf(op, urerror.InvalidIndices, "malformed multi-part URI %q", uri)
	}

	dash := strings.IndexByte(head, '-')
	if dash < 0 {
		return envelope{}, urerror.Newf(op, urerror.InvalidIndices, "missing - in sequence indicator %q", head)
	}
	seq, total, err := parseIndices(op, head[:dash], head[dash+1:])
	if err != nil {
		return envelope{}, err
	}

	return envelope{typ: typ, seq: seq, total: total, body: body, kind: MultiPart}, nil
}

func parseIndices(op, seqStr, totalStr string) (uint32, uint32, error) {
	seq, err := strconv.ParseUint(seqStr, 10, 32)
	if err != nil {
		return 0, 0, urerror.Newf(op, urerror.InvalidIndices, "sequence %q is not a valid decimal number", seqStr)
	}
	total, err := strconv.ParseUint(totalStr, 10, 32)
	if err != nil {
		return 0, 0, urerror.Newf(op, urerror.InvalidIndices, "total %q is not a valid decimal number", totalStr)
	}
	if seq == 0 || total == 0 {
		return 0, 0, urerror.New(op, urerror.InvalidIndices, "sequence and total must be nonzero")
	}
	// seq is deliberately allowed to exceed total: total is the fixed
	// segment count N, while seq is the fountain part counter, which the
	// encoder keeps incrementing past N to produce the extra redundant
	// parts loss-tolerant decoding relies on. See DESIGN.md's Open
	// Question resolutions for why this departs from a literal reading
	// of the error taxonomy's "seq > total" clause.
	return uint32(seq), uint32(total), nil
}

// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ur encodes and decodes arbitrary binary payloads as Uniform
// Resources: a family of URI-compatible, QR-friendly text forms,
// optionally fragmented across a stream of parts so that a receiver can
// reconstruct the payload after missing arbitrary transmissions.
//
// Three subpackages do the heavy lifting: bytewords is the
// case-insensitive byte<->text codec with a CRC-32 trailer; xoshiro256
// is the deterministic PRNG that seeds fragment selection; fountain is
// the Luby-Transform-style encoder/decoder built on top of it. This
// package is the orchestration layer: it frames fountain parts as
// ur:<type>/... text and drives the fountain codec end to end.
//
//	enc, err := ur.Bytes(payload, 200)
//	dec := ur.NewDecoder()
//	for !dec.Complete() {
//	    part, err := enc.NextPart()
//	    dec.Receive(part)
//	}
//	message, err := dec.Message()
package ur

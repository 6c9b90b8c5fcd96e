// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytewords implements the case-insensitive byte⇄text codec used
// to render UR payloads as URI- and QR-friendly text.
//
// Encode appends a four-byte big-endian CRC-32 trailer to the input before
// mapping every byte to a word from the fixed 256-word alphabet (alphabet.go).
// Decode reverses the mapping and verifies the trailer, so a single flipped
// character in the encoded text is detected as either an unknown word or a
// checksum mismatch — never silently accepted.
//
// Three styles control the text rendering of the same underlying bytes:
// Standard and Uri both join whole four-letter words (with '-'); Minimal
// concatenates each word's first and last letter only, halving the text
// length at the cost of needing the full 256-word table plus a 26×26
// first/last lookup to decode unambiguously.
package bytewords

// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a commitment body is not exactly
	// 32 bytes, or when fewer than 33 bytes are available to decode one.
	ErrInvalidLength = errors.New("commitments must be 32 bytes long")

	// ErrMalformedHex is returned when a hex encoded commitment cannot be
	// parsed as bytes.
	ErrMalformedHex = errors.New("failed to parse commitment as hex")
)

// InvalidPrefixError describes a commitment whose tag byte is not one of the
// two values permitted for its kind.
type InvalidPrefixError struct {
	Kind string
	Tag  byte
}

// Error satisfies the error interface and prints human-readable errors.
func (e InvalidPrefixError) Error() string {
	return fmt.Sprintf("invalid %s commitment prefix 0x%02x", e.Kind, e.Tag)
}

// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"encoding/hex"
	"io"
)

// NonceCommitment is the sender's ephemeral key used to derive the
// blinding nonce for an output.
type NonceCommitment struct {
	raw [CommitmentSize]byte
}

// NewNonceCommitment returns the nonce commitment with the given tag and
// 32-byte body.
func NewNonceCommitment(tag byte, body []byte) (NonceCommitment, error) {
	raw, err := noncePrefixes.build(tag, body)
	if err != nil {
		return NonceCommitment{}, err
	}
	return NonceCommitment{raw: raw}, nil
}

// NonceCommitmentFromBytes parses a serialized nonce commitment.  The
// first byte is the tag and the remainder must be exactly 32 bytes.
func NonceCommitmentFromBytes(b []byte) (NonceCommitment, error) {
	raw, err := noncePrefixes.fromBytes(b)
	if err != nil {
		return NonceCommitment{}, err
	}
	return NonceCommitment{raw: raw}, nil
}

// NonceCommitmentFromHex parses a hex encoded nonce commitment.
func NonceCommitmentFromHex(s string) (NonceCommitment, error) {
	raw, err := noncePrefixes.fromHex(s)
	if err != nil {
		return NonceCommitment{}, err
	}
	return NonceCommitment{raw: raw}, nil
}

// IsValidNonceCommitmentPrefix reports whether tag may start a nonce commitment.
func IsValidNonceCommitmentPrefix(tag byte) bool {
	return noncePrefixes.valid(tag)
}

func (c NonceCommitment) Tag() byte { return c.raw[0] }

func (c NonceCommitment) Body() []byte {
	body := make([]byte, CommitmentBodySize)
	copy(body, c.raw[1:])
	return body
}

// Bytes returns the 33-byte consensus form of the commitment.
func (c NonceCommitment) Bytes() []byte {
	b := make([]byte, CommitmentSize)
	copy(b, c.raw[:])
	return b
}

func (c NonceCommitment) Array() [CommitmentSize]byte { return c.raw }

func (c NonceCommitment) EncodedLength() int { return CommitmentSize }

// Serialize writes the commitment to w using the consensus encoding.
func (c NonceCommitment) Serialize(w io.Writer) error {
	return writeCommitment(w, &c.raw)
}

// Deserialize reads a nonce commitment from r, validating its tag.  The
// receiver is left untouched on error.
func (c *NonceCommitment) Deserialize(r io.Reader) error {
	raw, err := noncePrefixes.read(r)
	if err != nil {
		return err
	}
	c.raw = raw
	return nil
}

func (c NonceCommitment) Compare(other NonceCommitment) int {
	return compare(&c.raw, &other.raw)
}

// String returns the commitment as lowercase hex.
func (c NonceCommitment) String() string {
	return hex.EncodeToString(c.raw[:])
}

func (c NonceCommitment) MarshalJSON() ([]byte, error) {
	return marshalJSON(&c.raw)
}

func (c *NonceCommitment) UnmarshalJSON(data []byte) error {
	raw, err := noncePrefixes.unmarshalJSON(data)
	if err != nil {
		return err
	}
	c.raw = raw
	return nil
}

var _ Commitment = NonceCommitment{}

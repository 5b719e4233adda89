// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"encoding/hex"
	"io"
)

// ValueCommitment is a Pedersen commitment to an output amount.
type ValueCommitment struct {
	raw [CommitmentSize]byte
}

// NewValueCommitment returns the value commitment with the given tag and
// 32-byte body.
func NewValueCommitment(tag byte, body []byte) (ValueCommitment, error) {
	raw, err := valuePrefixes.build(tag, body)
	if err != nil {
		return ValueCommitment{}, err
	}
	return ValueCommitment{raw: raw}, nil
}

// ValueCommitmentFromBytes parses a serialized value commitment.  The
// first byte is the tag and the remainder must be exactly 32 bytes.
func ValueCommitmentFromBytes(b []byte) (ValueCommitment, error) {
	raw, err := valuePrefixes.fromBytes(b)
	if err != nil {
		return ValueCommitment{}, err
	}
	return ValueCommitment{raw: raw}, nil
}

// ValueCommitmentFromHex parses a hex encoded value commitment.
func ValueCommitmentFromHex(s string) (ValueCommitment, error) {
	raw, err := valuePrefixes.fromHex(s)
	if err != nil {
		return ValueCommitment{}, err
	}
	return ValueCommitment{raw: raw}, nil
}

// IsValidValueCommitmentPrefix reports whether tag may start a value commitment.
func IsValidValueCommitmentPrefix(tag byte) bool {
	return valuePrefixes.valid(tag)
}

func (c ValueCommitment) Tag() byte { return c.raw[0] }

func (c ValueCommitment) Body() []byte {
	body := make([]byte, CommitmentBodySize)
	copy(body, c.raw[1:])
	return body
}

// Bytes returns the 33-byte consensus form of the commitment.
func (c ValueCommitment) Bytes() []byte {
	b := make([]byte, CommitmentSize)
	copy(b, c.raw[:])
	return b
}

// Array returns the commitment as a fixed size array.
func (c ValueCommitment) Array() [CommitmentSize]byte { return c.raw }

func (c ValueCommitment) EncodedLength() int { return CommitmentSize }

// Serialize writes the commitment to w using the consensus encoding.
func (c ValueCommitment) Serialize(w io.Writer) error {
	return writeCommitment(w, &c.raw)
}

// Deserialize reads a value commitment from r, validating its tag.  The
// receiver is left untouched on error.
func (c *ValueCommitment) Deserialize(r io.Reader) error {
	raw, err := valuePrefixes.read(r)
	if err != nil {
		return err
	}
	c.raw = raw
	return nil
}

// Compare orders commitments byte-wise over their serialized form.
func (c ValueCommitment) Compare(other ValueCommitment) int {
	return compare(&c.raw, &other.raw)
}

// String returns the commitment as lowercase hex.
func (c ValueCommitment) String() string {
	return hex.EncodeToString(c.raw[:])
}

// MarshalJSON encodes the commitment as [tag, "body hex"].
func (c ValueCommitment) MarshalJSON() ([]byte, error) {
	return marshalJSON(&c.raw)
}

// UnmarshalJSON decodes a commitment produced by MarshalJSON, applying the
// same validation as NewValueCommitment.
func (c *ValueCommitment) UnmarshalJSON(data []byte) error {
	raw, err := valuePrefixes.unmarshalJSON(data)
	if err != nil {
		return err
	}
	c.raw = raw
	return nil
}

var _ Commitment = ValueCommitment{}

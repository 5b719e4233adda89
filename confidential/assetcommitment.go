// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"encoding/hex"
	"io"
)

// AssetCommitment is a blinded asset tag.  It hides which asset an output
// carries.
type AssetCommitment struct {
	raw [CommitmentSize]byte
}

// NewAssetCommitment returns the asset commitment with the given tag and
// 32-byte body.
func NewAssetCommitment(tag byte, body []byte) (AssetCommitment, error) {
	raw, err := assetPrefixes.build(tag, body)
	if err != nil {
		return AssetCommitment{}, err
	}
	return AssetCommitment{raw: raw}, nil
}

// AssetCommitmentFromBytes parses a serialized asset commitment.  The
// first byte is the tag and the remainder must be exactly 32 bytes.
func AssetCommitmentFromBytes(b []byte) (AssetCommitment, error) {
	raw, err := assetPrefixes.fromBytes(b)
	if err != nil {
		return AssetCommitment{}, err
	}
	return AssetCommitment{raw: raw}, nil
}

// AssetCommitmentFromHex parses a hex encoded asset commitment.
func AssetCommitmentFromHex(s string) (AssetCommitment, error) {
	raw, err := assetPrefixes.fromHex(s)
	if err != nil {
		return AssetCommitment{}, err
	}
	return AssetCommitment{raw: raw}, nil
}

// IsValidAssetCommitmentPrefix reports whether tag may start a asset commitment.
func IsValidAssetCommitmentPrefix(tag byte) bool {
	return assetPrefixes.valid(tag)
}

func (c AssetCommitment) Tag() byte { return c.raw[0] }

func (c AssetCommitment) Body() []byte {
	body := make([]byte, CommitmentBodySize)
	copy(body, c.raw[1:])
	return body
}

// Bytes returns the 33-byte consensus form of the commitment.
func (c AssetCommitment) Bytes() []byte {
	b := make([]byte, CommitmentSize)
	copy(b, c.raw[:])
	return b
}

// Array returns the commitment as a fixed size array.
func (c AssetCommitment) Array() [CommitmentSize]byte { return c.raw }

func (c AssetCommitment) EncodedLength() int { return CommitmentSize }

// Serialize writes the commitment to w using the consensus encoding.
func (c AssetCommitment) Serialize(w io.Writer) error {
	return writeCommitment(w, &c.raw)
}

// Deserialize reads a asset commitment from r, validating its tag.  The
// receiver is left untouched on error.
func (c *AssetCommitment) Deserialize(r io.Reader) error {
	raw, err := assetPrefixes.read(r)
	if err != nil {
		return err
	}
	c.raw = raw
	return nil
}

// Compare orders commitments byte-wise over their serialized form.  It is
// used to sort outputs by asset deterministically.
func (c AssetCommitment) Compare(other AssetCommitment) int {
	return compare(&c.raw, &other.raw)
}

// String returns the commitment as lowercase hex.
func (c AssetCommitment) String() string {
	return hex.EncodeToString(c.raw[:])
}

// MarshalJSON encodes the commitment as [tag, "body hex"].
func (c AssetCommitment) MarshalJSON() ([]byte, error) {
	return marshalJSON(&c.raw)
}

// UnmarshalJSON decodes a commitment produced by MarshalJSON, applying the
// same validation as NewAssetCommitment.
func (c *AssetCommitment) UnmarshalJSON(data []byte) error {
	raw, err := assetPrefixes.unmarshalJSON(data)
	if err != nil {
		return err
	}
	c.raw = raw
	return nil
}

var _ Commitment = AssetCommitment{}

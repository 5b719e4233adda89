// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ltcsuite/elements/confidential"
)

// Prefix bytes shared by every confidential field.  Any other prefix must be
// a commitment tag of the field's kind.
const (
	confidentialNullPrefix     = 0x00
	confidentialExplicitPrefix = 0x01
)

// ConfidentialAsset is the asset field of an output or of an issuance.  It is
// either null, an explicit 32-byte asset id, or an asset commitment.  When
// both Explicit and Commitment are set the commitment is encoded.
type ConfidentialAsset struct {
	Explicit   *[32]byte
	Commitment *confidential.AssetCommitment
}

// ExplicitAsset returns an unblinded asset field for the given asset id.
func ExplicitAsset(id [32]byte) ConfidentialAsset {
	return ConfidentialAsset{Explicit: &id}
}

// BlindedAsset returns an asset field carrying the given commitment.
func BlindedAsset(c confidential.AssetCommitment) ConfidentialAsset {
	return ConfidentialAsset{Commitment: &c}
}

func (a *ConfidentialAsset) IsNull() bool {
	return a.Explicit == nil && a.Commitment == nil
}

func (a *ConfidentialAsset) IsConfidential() bool {
	return a.Commitment != nil
}

// SerializeSize returns the number of bytes the field occupies on the wire.
func (a *ConfidentialAsset) SerializeSize() int {
	switch {
	case a.Commitment != nil, a.Explicit != nil:
		return confidential.CommitmentSize
	}
	return 1
}

func (a *ConfidentialAsset) write(w io.Writer) error {
	switch {
	case a.Commitment != nil:
		return a.Commitment.Serialize(w)
	case a.Explicit != nil:
		return writeElements(w, uint8(confidentialExplicitPrefix),
			a.Explicit)
	}
	return writeElement(w, uint8(confidentialNullPrefix))
}

func (a *ConfidentialAsset) read(r io.Reader) error {
	var prefix uint8
	if err := readElement(r, &prefix); err != nil {
		return err
	}

	*a = ConfidentialAsset{}
	switch {
	case prefix == confidentialNullPrefix:
		return nil

	case prefix == confidentialExplicitPrefix:
		a.Explicit = new([32]byte)
		return readElement(r, a.Explicit)

	case confidential.IsValidAssetCommitmentPrefix(prefix):
		a.Commitment = new(confidential.AssetCommitment)
		err := a.Commitment.Deserialize(withPrefix(prefix, r))
		if err != nil {
			a.Commitment = nil
		}
		return err
	}

	str := fmt.Sprintf("invalid confidential asset prefix 0x%02x", prefix)
	return messageError("ConfidentialAsset.read", str)
}

// ConfidentialValue is an amount field.  It is either null, an explicit
// amount, or a value commitment.  Explicit amounts are big-endian on the
// wire, unlike every other integer in a transaction.
type ConfidentialValue struct {
	Explicit   *uint64
	Commitment *confidential.ValueCommitment
}

// ExplicitValue returns an unblinded amount field.
func ExplicitValue(amount uint64) ConfidentialValue {
	return ConfidentialValue{Explicit: &amount}
}

// BlindedValue returns an amount field carrying the given commitment.
func BlindedValue(c confidential.ValueCommitment) ConfidentialValue {
	return ConfidentialValue{Commitment: &c}
}

func (v *ConfidentialValue) IsNull() bool {
	return v.Explicit == nil && v.Commitment == nil
}

func (v *ConfidentialValue) IsConfidential() bool {
	return v.Commitment != nil
}

// SerializeSize returns the number of bytes the field occupies on the wire.
func (v *ConfidentialValue) SerializeSize() int {
	switch {
	case v.Commitment != nil:
		return confidential.CommitmentSize
	case v.Explicit != nil:
		return 9
	}
	return 1
}

func (v *ConfidentialValue) write(w io.Writer) error {
	switch {
	case v.Commitment != nil:
		return v.Commitment.Serialize(w)
	case v.Explicit != nil:
		var b [9]byte
		b[0] = confidentialExplicitPrefix
		binary.BigEndian.PutUint64(b[1:], *v.Explicit)
		_, err := w.Write(b[:])
		return err
	}
	return writeElement(w, uint8(confidentialNullPrefix))
}

func (v *ConfidentialValue) read(r io.Reader) error {
	var prefix uint8
	if err := readElement(r, &prefix); err != nil {
		return err
	}

	*v = ConfidentialValue{}
	switch {
	case prefix == confidentialNullPrefix:
		return nil

	case prefix == confidentialExplicitPrefix:
		var b [8]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		amount := binary.BigEndian.Uint64(b[:])
		v.Explicit = &amount
		return nil

	case confidential.IsValidValueCommitmentPrefix(prefix):
		v.Commitment = new(confidential.ValueCommitment)
		err := v.Commitment.Deserialize(withPrefix(prefix, r))
		if err != nil {
			v.Commitment = nil
		}
		return err
	}

	str := fmt.Sprintf("invalid confidential value prefix 0x%02x", prefix)
	return messageError("ConfidentialValue.read", str)
}

// ConfidentialNonce is the nonce field of an output.  A confidential output
// carries the sender's ephemeral key here as a nonce commitment.
type ConfidentialNonce struct {
	Explicit   *[32]byte
	Commitment *confidential.NonceCommitment
}

func BlindedNonce(c confidential.NonceCommitment) ConfidentialNonce {
	return ConfidentialNonce{Commitment: &c}
}

func (n *ConfidentialNonce) IsNull() bool {
	return n.Explicit == nil && n.Commitment == nil
}

func (n *ConfidentialNonce) SerializeSize() int {
	switch {
	case n.Commitment != nil, n.Explicit != nil:
		return confidential.CommitmentSize
	}
	return 1
}

func (n *ConfidentialNonce) write(w io.Writer) error {
	switch {
	case n.Commitment != nil:
		return n.Commitment.Serialize(w)
	case n.Explicit != nil:
		return writeElements(w, uint8(confidentialExplicitPrefix),
			n.Explicit)
	}
	return writeElement(w, uint8(confidentialNullPrefix))
}

func (n *ConfidentialNonce) read(r io.Reader) error {
	var prefix uint8
	if err := readElement(r, &prefix); err != nil {
		return err
	}

	*n = ConfidentialNonce{}
	switch {
	case prefix == confidentialNullPrefix:
		return nil

	case prefix == confidentialExplicitPrefix:
		n.Explicit = new([32]byte)
		return readElement(r, n.Explicit)

	case confidential.IsValidNonceCommitmentPrefix(prefix):
		n.Commitment = new(confidential.NonceCommitment)
		err := n.Commitment.Deserialize(withPrefix(prefix, r))
		if err != nil {
			n.Commitment = nil
		}
		return err
	}

	str := fmt.Sprintf("invalid confidential nonce prefix 0x%02x", prefix)
	return messageError("ConfidentialNonce.read", str)
}

// withPrefix pushes an already consumed prefix byte back in front of r so
// the commitment decoder sees the full 33-byte encoding.
func withPrefix(prefix byte, r io.Reader) io.Reader {
	return io.MultiReader(bytes.NewReader([]byte{prefix}), r)
}

// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
)

// AssetIssuance is the inline issuance record an input may carry.  A new
// asset is issued when AssetBlindingNonce is zero, otherwise the input
// reissues an existing asset whose entropy is given in AssetEntropy.
type AssetIssuance struct {
	AssetBlindingNonce [32]byte
	AssetEntropy       [32]byte
	Amount             ConfidentialValue
	InflationKeys      ConfidentialValue
}

// IsNull reports whether the record issues nothing: both the amount and the
// inflation keys are null.
func (ai *AssetIssuance) IsNull() bool {
	return ai.Amount.IsNull() && ai.InflationKeys.IsNull()
}

// IsReissuance reports whether the record reissues an existing asset.
func (ai *AssetIssuance) IsReissuance() bool {
	return ai.AssetBlindingNonce != [32]byte{}
}

// SerializeSize returns the number of bytes it would take to serialize the
// issuance record.
func (ai *AssetIssuance) SerializeSize() int {
	return 64 + ai.Amount.SerializeSize() + ai.InflationKeys.SerializeSize()
}

// WriteAssetIssuance encodes ai to w using the consensus encoding.
func WriteAssetIssuance(w io.Writer, ai *AssetIssuance) error {
	err := writeElements(w, &ai.AssetBlindingNonce, &ai.AssetEntropy)
	if err != nil {
		return err
	}
	if err = ai.Amount.write(w); err != nil {
		return err
	}
	return ai.InflationKeys.write(w)
}

// readAssetIssuance reads the next issuance record from r into ai.
func readAssetIssuance(r io.Reader, ai *AssetIssuance) error {
	err := readElements(r, &ai.AssetBlindingNonce, &ai.AssetEntropy)
	if err != nil {
		return err
	}
	if err = ai.Amount.read(r); err != nil {
		return err
	}
	return ai.InflationKeys.read(r)
}

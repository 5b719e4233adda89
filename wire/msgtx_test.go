// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ltcsuite/elements/confidential"
	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
	"gotest.tools/assert"
)

func mustValueCommitment(t *testing.T, tag, fill byte) confidential.ValueCommitment {
	t.Helper()
	c, err := confidential.NewValueCommitment(tag, bytes.Repeat([]byte{fill}, 32))
	assert.NilError(t, err)
	return c
}

func mustAssetCommitment(t *testing.T, tag, fill byte) confidential.AssetCommitment {
	t.Helper()
	c, err := confidential.NewAssetCommitment(tag, bytes.Repeat([]byte{fill}, 32))
	assert.NilError(t, err)
	return c
}

func mustNonceCommitment(t *testing.T, tag, fill byte) confidential.NonceCommitment {
	t.Helper()
	c, err := confidential.NewNonceCommitment(tag, bytes.Repeat([]byte{fill}, 32))
	assert.NilError(t, err)
	return c
}

// sampleTx returns a transaction exercising issuances, peg-ins, confidential
// and explicit outputs and every witness field.
func sampleTx(t *testing.T) *MsgTx {
	tx := NewMsgTx(TxVersion)
	tx.LockTime = 500

	prevHash := chainhash.Hash{0x01, 0x02, 0x03}
	in0 := NewTxIn(NewOutPoint(&prevHash, 1), []byte{0x51})
	in0.Sequence = 0xfffffffe
	in0.Issuance = &AssetIssuance{
		AssetEntropy:  [32]byte{0xee},
		Amount:        ExplicitValue(21000000),
		InflationKeys: BlindedValue(mustValueCommitment(t, 0x09, 0x44)),
	}
	in0.Witness = TxInWitness{
		IssuanceRangeProof: []byte{0xaa, 0xbb},
		ScriptWitness:      [][]byte{{0x30, 0x44}, {0x02}},
	}
	tx.AddTxIn(in0)

	in1 := NewTxIn(NewOutPoint(&chainhash.Hash{0x09}, 0), nil)
	in1.IsPegin = true
	in1.Witness.PeginWitness = [][]byte{{0x01}, {}, {0x02, 0x03}}
	tx.AddTxIn(in1)

	out0 := NewTxOut(BlindedAsset(mustAssetCommitment(t, 0x0a, 0x11)),
		BlindedValue(mustValueCommitment(t, 0x08, 0x22)),
		[]byte{0x00, 0x14, 0x01})
	out0.Nonce = BlindedNonce(mustNonceCommitment(t, 0x03, 0x33))
	out0.Witness = TxOutWitness{
		SurjectionProof: []byte{0x01, 0x00},
		RangeProof:      bytes.Repeat([]byte{0x60}, 300),
	}
	tx.AddTxOut(out0)

	tx.AddTxOut(NewTxOut(ExplicitAsset([32]byte{0x6f}), ExplicitValue(1000), nil))
	return tx
}

func TestTxSerializeRoundTrip(t *testing.T) {
	tx := sampleTx(t)
	assert.Assert(t, tx.HasWitness())

	var buf bytes.Buffer
	assert.NilError(t, tx.Serialize(&buf))
	assert.Equal(t, tx.SerializeSize(), buf.Len())
	assert.Equal(t, buf.Bytes()[4], uint8(txFlagWitness))

	var decoded MsgTx
	assert.NilError(t, decoded.Deserialize(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, decoded.TxHash(), tx.TxHash())
	assert.Equal(t, decoded.WitnessHash(), tx.WitnessHash())

	var again bytes.Buffer
	assert.NilError(t, decoded.Serialize(&again))
	assert.Assert(t, bytes.Equal(buf.Bytes(), again.Bytes()),
		"re-encoded tx mismatch:\n%s\nwant:\n%s", spew.Sdump(&decoded),
		spew.Sdump(tx))
	assert.Equal(t, *decoded.TxOut[0].Asset.Commitment,
		*tx.TxOut[0].Asset.Commitment)
	assert.Assert(t, bytes.Equal(decoded.TxOut[0].Witness.RangeProof,
		tx.TxOut[0].Witness.RangeProof))

	assert.Equal(t, decoded.TxIn[0].PreviousOutPoint.Index, uint32(1))
	assert.Assert(t, decoded.TxIn[0].HasIssuance())
	assert.Assert(t, decoded.TxIn[1].IsPegin)
	assert.Assert(t, !decoded.TxIn[1].HasIssuance())
	assert.Assert(t, decoded.TxOut[1].IsFee())
}

func TestTxSerializeNoWitness(t *testing.T) {
	tx := sampleTx(t)

	var stripped bytes.Buffer
	assert.NilError(t, tx.SerializeNoWitness(&stripped))
	assert.Equal(t, tx.SerializeSizeStripped(), stripped.Len())
	assert.Equal(t, stripped.Bytes()[4], uint8(0))
	assert.Equal(t, tx.TxHash(), chainhash.DoubleHashH(stripped.Bytes()))
	assert.Assert(t, tx.TxHash() != tx.WitnessHash())

	// Stripping the witnesses leaves the txid alone.
	bare := tx.Copy()
	for _, ti := range bare.TxIn {
		ti.Witness = TxInWitness{}
	}
	for _, to := range bare.TxOut {
		to.Witness = TxOutWitness{}
	}
	assert.Equal(t, bare.TxHash(), tx.TxHash())
	assert.Equal(t, bare.WitnessHash(), bare.TxHash())
}

// TestTxWireLayout checks the exact byte layout of a minimal transaction.
func TestTxWireLayout(t *testing.T) {
	asset := [32]byte{0xaa}
	prevHash := chainhash.Hash{0x01}
	tx := NewMsgTx(2)
	tx.AddTxIn(NewTxIn(NewOutPoint(&prevHash, 3), nil))
	tx.AddTxOut(NewTxOut(ExplicitAsset(asset), ExplicitValue(100000),
		[]byte{0x6a}))

	var want []byte
	want = binary.LittleEndian.AppendUint32(want, 2)
	want = append(want, 0x00, 0x01)
	want = append(want, prevHash[:]...)
	want = binary.LittleEndian.AppendUint32(want, 3)
	want = append(want, 0x00, 0xff, 0xff, 0xff, 0xff)
	want = append(want, 0x01)
	want = append(want, 0x01)
	want = append(want, asset[:]...)
	want = append(want, 0x01)
	want = binary.BigEndian.AppendUint64(want, 100000)
	want = append(want, 0x00, 0x01, 0x6a)
	want = binary.LittleEndian.AppendUint32(want, 0)

	var buf bytes.Buffer
	assert.NilError(t, tx.Serialize(&buf))
	assert.Assert(t, bytes.Equal(buf.Bytes(), want), "got %x\nwant %x",
		buf.Bytes(), want)
}

func TestTxIssuanceFlagFolding(t *testing.T) {
	tx := sampleTx(t)

	var buf bytes.Buffer
	assert.NilError(t, tx.SerializeNoWitness(&buf))

	// version + flag + input count + first prevout hash
	offset := 4 + 1 + 1 + chainhash.HashSize
	index := binary.LittleEndian.Uint32(buf.Bytes()[offset:])
	assert.Equal(t, index, OutPointIssuanceFlag|1)
}

func TestTxDeserializeErrors(t *testing.T) {
	tx := sampleTx(t)
	var buf bytes.Buffer
	assert.NilError(t, tx.Serialize(&buf))
	raw := buf.Bytes()

	// Unknown flag byte.
	bad := append([]byte(nil), raw...)
	bad[4] = 0x02
	var msgErr *MessageError
	err := new(MsgTx).Deserialize(bytes.NewReader(bad))
	assert.Assert(t, errors.As(err, &msgErr), "got %v", err)

	// Witness flag with empty witness sections.
	bare := NewMsgTx(2)
	bare.AddTxIn(NewTxIn(NewOutPoint(&chainhash.Hash{}, 0), nil))
	bare.AddTxOut(NewTxOut(ExplicitAsset([32]byte{}), ExplicitValue(1), nil))
	buf.Reset()
	assert.NilError(t, bare.Serialize(&buf))
	flagged := buf.Bytes()
	flagged[4] = txFlagWitness
	flagged = append(flagged, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
	err = new(MsgTx).Deserialize(bytes.NewReader(flagged))
	assert.ErrorContains(t, err, "no witnesses present")

	// Truncated stream.
	for _, n := range []int{3, 40, len(raw) - 1} {
		err = new(MsgTx).Deserialize(bytes.NewReader(raw[:n]))
		assert.Assert(t, err != nil, "truncated at %d", n)
	}
}

func TestTxCopy(t *testing.T) {
	tx := sampleTx(t)
	cp := tx.Copy()
	assert.Assert(t, reflect.DeepEqual(tx, cp))

	cp.TxIn[0].Witness.ScriptWitness[0][0] = 0xff
	cp.TxIn[0].Issuance.AssetEntropy[0] = 0xff
	*cp.TxIn[0].Issuance.Amount.Explicit = 1
	cp.TxOut[1].PkScript = append(cp.TxOut[1].PkScript, 0x01)
	*cp.TxOut[1].Value.Explicit = 7

	assert.Equal(t, tx.TxIn[0].Witness.ScriptWitness[0][0], byte(0x30))
	assert.Equal(t, tx.TxIn[0].Issuance.AssetEntropy[0], byte(0xee))
	assert.Equal(t, *tx.TxIn[0].Issuance.Amount.Explicit, uint64(21000000))
	assert.Equal(t, len(tx.TxOut[1].PkScript), 0)
	assert.Equal(t, *tx.TxOut[1].Value.Explicit, uint64(1000))
}

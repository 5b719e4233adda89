// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 2

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.  It marks a coinbase input.
	MaxPrevOutIndex uint32 = 0xffffffff

	// OutPointIssuanceFlag is folded into the encoded outpoint index of an
	// input that carries an asset issuance.
	OutPointIssuanceFlag uint32 = 1 << 31

	// OutPointPeginFlag is folded into the encoded outpoint index of a
	// peg-in input.
	OutPointPeginFlag uint32 = 1 << 30

	// OutPointIndexMask masks the flag bits off an encoded outpoint index.
	OutPointIndexMask uint32 = 0x3fffffff

	// txFlagWitness is the only flag defined for the byte following the
	// version.  It signals that the witness sections are present.
	txFlagWitness = 0x01

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + chainhash.HashSize

	// maxTxInPerMessage is the maximum number of transaction inputs that
	// a transaction which fits into a message could possibly have.
	maxTxInPerMessage = (MaxMessagePayload / minTxInPayload) + 1

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Null asset, value and nonce 1 byte each + Varint for PkScript length
	// 1 byte.
	minTxOutPayload = 4

	// maxTxOutPerMessage is the maximum number of transaction outputs that
	// a transaction which fits into a message could possibly have.
	maxTxOutPerMessage = (MaxMessagePayload / minTxOutPayload) + 1

	// maxWitnessItemsPerInput is the maximum number of witness items to
	// be read for a single stack.
	maxWitnessItemsPerInput = 500000

	// maxWitnessItemSize is the maximum allowed size for an item within
	// an input's witness data.
	maxWitnessItemSize = 4000000
)

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits.  Although
	// at the time of writing, the number of digits can be no greater than
	// the length of the decimal representation of maxTxOutPerMessage, the
	// maximum message payload may increase in the future and this
	// optimization may go unnoticed, so allocate space for 10 decimal
	// digits, which will fit any uint32.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// WriteOutPoint encodes op to w using the consensus encoding: the hash
// followed by the little endian index, without issuance or peg-in flags.
func WriteOutPoint(w io.Writer, op *OutPoint) error {
	return writeElements(w, &op.Hash, op.Index)
}

func readOutPoint(r io.Reader, op *OutPoint) error {
	return readElements(r, &op.Hash, &op.Index)
}

// TxInWitness holds the segregated data of an input: the issuance range
// proofs, the script witness stack and the peg-in witness stack.
type TxInWitness struct {
	IssuanceRangeProof  []byte
	InflationRangeProof []byte
	ScriptWitness       [][]byte
	PeginWitness        [][]byte
}

// IsEmpty reports whether the witness carries no data at all.
func (w *TxInWitness) IsEmpty() bool {
	return len(w.IssuanceRangeProof) == 0 &&
		len(w.InflationRangeProof) == 0 &&
		len(w.ScriptWitness) == 0 && len(w.PeginWitness) == 0
}

// SerializeSize returns the number of bytes it would take to serialize the
// input witness.
func (w *TxInWitness) SerializeSize() int {
	return varBytesSerializeSize(w.IssuanceRangeProof) +
		varBytesSerializeSize(w.InflationRangeProof) +
		witnessStackSerializeSize(w.ScriptWitness) +
		witnessStackSerializeSize(w.PeginWitness)
}

// TxOutWitness holds the proofs of a confidential output.
type TxOutWitness struct {
	SurjectionProof []byte
	RangeProof      []byte
}

func (w *TxOutWitness) IsEmpty() bool {
	return len(w.SurjectionProof) == 0 && len(w.RangeProof) == 0
}

func (w *TxOutWitness) SerializeSize() int {
	return varBytesSerializeSize(w.SurjectionProof) +
		varBytesSerializeSize(w.RangeProof)
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
	Issuance         *AssetIssuance
	IsPegin          bool
	Witness          TxInWitness
}

// NewTxIn returns a new transaction input with the provided previous outpoint
// and signature script with a default sequence of MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// HasIssuance reports whether the input carries a non-null issuance record.
func (t *TxIn) HasIssuance() bool {
	return t.Issuance != nil && !t.Issuance.IsNull()
}


// SerializeSize returns the number of bytes it would take to serialize the
// transaction input without its witness.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	n := 40 + varBytesSerializeSize(t.SignatureScript)
	if t.HasIssuance() {
		n += t.Issuance.SerializeSize()
	}
	return n
}

// TxOut defines a transaction output.
type TxOut struct {
	Asset    ConfidentialAsset
	Value    ConfidentialValue
	Nonce    ConfidentialNonce
	PkScript []byte
	Witness  TxOutWitness
}

// NewTxOut returns a new transaction output with the provided asset, value
// and public key script, and a null nonce.
func NewTxOut(asset ConfidentialAsset, value ConfidentialValue,
	pkScript []byte) *TxOut {

	return &TxOut{
		Asset:    asset,
		Value:    value,
		PkScript: pkScript,
	}
}

// IsFee reports whether the output is an explicit fee output, which has an
// empty script.
func (t *TxOut) IsFee() bool {
	return len(t.PkScript) == 0 && t.Value.Explicit != nil &&
		t.Asset.Explicit != nil
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction output without its witness.
func (t *TxOut) SerializeSize() int {
	return t.Asset.SerializeSize() + t.Value.SerializeSize() +
		t.Nonce.SerializeSize() + varBytesSerializeSize(t.PkScript)
}

// WriteTxOut encodes to into w using the consensus encoding, without the
// output witness.
func WriteTxOut(w io.Writer, to *TxOut) error {
	if err := to.Asset.write(w); err != nil {
		return err
	}
	if err := to.Value.write(w); err != nil {
		return err
	}
	if err := to.Nonce.write(w); err != nil {
		return err
	}
	return WriteVarBytes(w, to.PkScript)
}

func readTxOut(r io.Reader, to *TxOut) error {
	if err := to.Asset.read(r); err != nil {
		return err
	}
	if err := to.Value.read(r); err != nil {
		return err
	}
	if err := to.Nonce.read(r); err != nil {
		return err
	}

	var err error
	to.PkScript, err = ReadVarBytes(r, MaxMessagePayload,
		"transaction output public key script")
	return err
}

// MsgTx is a transaction of the confidential ledger: inputs may carry
// inline asset issuances and outputs may hide their asset and amount behind
// commitments.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new transaction with no inputs or outputs.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*TxIn, 0, 1),
		TxOut:   make([]*TxOut, 0, 1),
	}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// HasWitness returns false if none of the inputs or outputs within the
// transaction contain witness data, true otherwise.
func (msg *MsgTx) HasWitness() bool {
	for _, txIn := range msg.TxIn {
		if !txIn.Witness.IsEmpty() {
			return true
		}
	}
	for _, txOut := range msg.TxOut {
		if !txOut.Witness.IsEmpty() {
			return true
		}
	}
	return false
}

// TxHash generates the Hash for the transaction.  The witness sections are
// excluded and the flag byte is always zero.
func (msg *MsgTx) TxHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSizeStripped()))
	_ = msg.encode(buf, false)
	return chainhash.DoubleHashH(buf.Bytes())
}

// WitnessHash generates the hash of the transaction including its witness
// sections.  If the transaction has no witness data it equals TxHash.
func (msg *MsgTx) WitnessHash() chainhash.Hash {
	if msg.HasWitness() {
		buf := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
		_ = msg.encode(buf, true)
		return chainhash.DoubleHashH(buf.Bytes())
	}
	return msg.TxHash()
}

// Copy creates a deep copy of a transaction so that the original does not
// get modified when the copy is manipulated.
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}

	for _, oldTxIn := range msg.TxIn {
		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  copyBytes(oldTxIn.SignatureScript),
			Sequence:         oldTxIn.Sequence,
			IsPegin:          oldTxIn.IsPegin,
			Witness: TxInWitness{
				IssuanceRangeProof:  copyBytes(oldTxIn.Witness.IssuanceRangeProof),
				InflationRangeProof: copyBytes(oldTxIn.Witness.InflationRangeProof),
				ScriptWitness:       copyStack(oldTxIn.Witness.ScriptWitness),
				PeginWitness:        copyStack(oldTxIn.Witness.PeginWitness),
			},
		}
		if oldTxIn.Issuance != nil {
			issuance := *oldTxIn.Issuance
			issuance.Amount = copyValue(oldTxIn.Issuance.Amount)
			issuance.InflationKeys = copyValue(oldTxIn.Issuance.InflationKeys)
			newTxIn.Issuance = &issuance
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	for _, oldTxOut := range msg.TxOut {
		newTxOut := TxOut{
			Asset:    copyAsset(oldTxOut.Asset),
			Value:    copyValue(oldTxOut.Value),
			Nonce:    copyNonce(oldTxOut.Nonce),
			PkScript: copyBytes(oldTxOut.PkScript),
			Witness: TxOutWitness{
				SurjectionProof: copyBytes(oldTxOut.Witness.SurjectionProof),
				RangeProof:      copyBytes(oldTxOut.Witness.RangeProof),
			},
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

// Deserialize decodes a transaction from r into the receiver using the
// consensus encoding, including the witness sections when flagged.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	err := readElement(r, &msg.Version)
	if err != nil {
		return err
	}

	var flag uint8
	if err = readElement(r, &flag); err != nil {
		return err
	}
	if flag > txFlagWitness {
		str := fmt.Sprintf("witness tx but flag byte is %x", flag)
		return messageError("MsgTx.Deserialize", str)
	}

	count, err := ReadVarInt(r)
	if err != nil {
		return err
	}

	// Prevent more input transactions than could possibly fit into a
	// message.  It would be possible to cause memory exhaustion and panics
	// without a sane upper bound on this count.
	if count > uint64(maxTxInPerMessage) {
		str := fmt.Sprintf("too many input transactions to fit into "+
			"max message size [count %d, max %d]", count,
			maxTxInPerMessage)
		return messageError("MsgTx.Deserialize", str)
	}

	msg.TxIn = make([]*TxIn, count)
	for i := range msg.TxIn {
		ti := &TxIn{}
		if err = readTxIn(r, ti); err != nil {
			return err
		}
		msg.TxIn[i] = ti
	}

	count, err = ReadVarInt(r)
	if err != nil {
		return err
	}
	if count > uint64(maxTxOutPerMessage) {
		str := fmt.Sprintf("too many output transactions to fit into "+
			"max message size [count %d, max %d]", count,
			maxTxOutPerMessage)
		return messageError("MsgTx.Deserialize", str)
	}

	msg.TxOut = make([]*TxOut, count)
	for i := range msg.TxOut {
		to := &TxOut{}
		if err = readTxOut(r, to); err != nil {
			return err
		}
		msg.TxOut[i] = to
	}

	if err = readElement(r, &msg.LockTime); err != nil {
		return err
	}

	if flag&txFlagWitness == 0 {
		return nil
	}

	for _, ti := range msg.TxIn {
		if err = readTxInWitness(r, &ti.Witness); err != nil {
			return err
		}
	}
	for _, to := range msg.TxOut {
		if err = readTxOutWitness(r, &to.Witness); err != nil {
			return err
		}
	}

	if !msg.HasWitness() {
		return messageError("MsgTx.Deserialize",
			"witness flag set but no witnesses present")
	}
	return nil
}

// Serialize encodes the transaction to w, including witness data when any
// input or output carries some.
func (msg *MsgTx) Serialize(w io.Writer) error {
	return msg.encode(w, true)
}

// SerializeNoWitness encodes the transaction to w without any witness data.
// This is the form hashed by TxHash.
func (msg *MsgTx) SerializeNoWitness(w io.Writer) error {
	return msg.encode(w, false)
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg *MsgTx) SerializeSize() int {
	n := msg.baseSize()
	if msg.HasWitness() {
		for _, txIn := range msg.TxIn {
			n += txIn.Witness.SerializeSize()
		}
		for _, txOut := range msg.TxOut {
			n += txOut.Witness.SerializeSize()
		}
	}
	return n
}

// SerializeSizeStripped returns the number of bytes it would take to
// serialize the transaction, excluding any included witness data.
func (msg *MsgTx) SerializeSizeStripped() int {
	return msg.baseSize()
}

func (msg *MsgTx) baseSize() int {
	// Version 4 bytes + flag 1 byte + LockTime 4 bytes + Serialized varint
	// size for the number of transaction inputs and outputs.
	n := 9 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}
	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}
	return n
}

func (msg *MsgTx) encode(w io.Writer, allowWitness bool) error {
	err := writeElement(w, msg.Version)
	if err != nil {
		return err
	}

	var flag uint8
	doWitness := allowWitness && msg.HasWitness()
	if doWitness {
		flag = txFlagWitness
	}
	if err = writeElement(w, flag); err != nil {
		return err
	}

	if err = WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err = writeTxIn(w, ti); err != nil {
			return err
		}
	}

	if err = WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err = WriteTxOut(w, to); err != nil {
			return err
		}
	}

	if err = writeElement(w, msg.LockTime); err != nil {
		return err
	}

	if !doWitness {
		return nil
	}

	for _, ti := range msg.TxIn {
		if err = writeTxInWitness(w, &ti.Witness); err != nil {
			return err
		}
	}
	for _, to := range msg.TxOut {
		if err = writeTxOutWitness(w, &to.Witness); err != nil {
			return err
		}
	}
	return nil
}

// readTxIn reads the next sequence of bytes from r as a transaction input.
// The issuance and peg-in flags are unfolded from the outpoint index.
func readTxIn(r io.Reader, ti *TxIn) error {
	err := readOutPoint(r, &ti.PreviousOutPoint)
	if err != nil {
		return err
	}

	var hasIssuance bool
	if ti.PreviousOutPoint.Index != MaxPrevOutIndex {
		index := ti.PreviousOutPoint.Index
		hasIssuance = index&OutPointIssuanceFlag != 0
		ti.IsPegin = index&OutPointPeginFlag != 0
		ti.PreviousOutPoint.Index = index & OutPointIndexMask
	}

	ti.SignatureScript, err = ReadVarBytes(r, MaxMessagePayload,
		"transaction input signature script")
	if err != nil {
		return err
	}

	if err = readElement(r, &ti.Sequence); err != nil {
		return err
	}

	if hasIssuance {
		ti.Issuance = &AssetIssuance{}
		if err = readAssetIssuance(r, ti.Issuance); err != nil {
			return err
		}
		if ti.Issuance.IsNull() {
			return messageError("readTxIn", "issuance flag set "+
				"on input with null issuance")
		}
	}
	return nil
}

// writeTxIn encodes ti to w, folding the issuance and peg-in flags into the
// outpoint index.
func writeTxIn(w io.Writer, ti *TxIn) error {
	index := ti.PreviousOutPoint.Index
	if index != MaxPrevOutIndex {
		if ti.HasIssuance() {
			index |= OutPointIssuanceFlag
		}
		if ti.IsPegin {
			index |= OutPointPeginFlag
		}
	}

	err := writeElements(w, &ti.PreviousOutPoint.Hash, index)
	if err != nil {
		return err
	}

	if err = WriteVarBytes(w, ti.SignatureScript); err != nil {
		return err
	}

	if err = writeElement(w, ti.Sequence); err != nil {
		return err
	}

	if ti.HasIssuance() {
		return WriteAssetIssuance(w, ti.Issuance)
	}
	return nil
}

func readTxInWitness(r io.Reader, wit *TxInWitness) (err error) {
	wit.IssuanceRangeProof, err = ReadVarBytes(r, maxWitnessItemSize,
		"issuance amount range proof")
	if err != nil {
		return
	}
	wit.InflationRangeProof, err = ReadVarBytes(r, maxWitnessItemSize,
		"inflation keys range proof")
	if err != nil {
		return
	}
	if wit.ScriptWitness, err = readWitnessStack(r); err != nil {
		return
	}
	wit.PeginWitness, err = readWitnessStack(r)
	return
}

func writeTxInWitness(w io.Writer, wit *TxInWitness) error {
	err := WriteVarBytes(w, wit.IssuanceRangeProof)
	if err != nil {
		return err
	}
	if err = WriteVarBytes(w, wit.InflationRangeProof); err != nil {
		return err
	}
	if err = writeWitnessStack(w, wit.ScriptWitness); err != nil {
		return err
	}
	return writeWitnessStack(w, wit.PeginWitness)
}

func readTxOutWitness(r io.Reader, wit *TxOutWitness) (err error) {
	wit.SurjectionProof, err = ReadVarBytes(r, maxWitnessItemSize,
		"surjection proof")
	if err != nil {
		return
	}
	wit.RangeProof, err = ReadVarBytes(r, maxWitnessItemSize,
		"range proof")
	return
}

func writeTxOutWitness(w io.Writer, wit *TxOutWitness) error {
	err := WriteVarBytes(w, wit.SurjectionProof)
	if err != nil {
		return err
	}
	return WriteVarBytes(w, wit.RangeProof)
}

func readWitnessStack(r io.Reader) ([][]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	// Prevent a possible memory exhaustion attack by limiting the
	// witCount value to a sane upper bound.
	if count > maxWitnessItemsPerInput {
		str := fmt.Sprintf("too many witness items to fit into max "+
			"message size [count %d, max %d]", count,
			maxWitnessItemsPerInput)
		return nil, messageError("readWitnessStack", str)
	}
	if count == 0 {
		return nil, nil
	}

	stack := make([][]byte, count)
	for i := range stack {
		stack[i], err = ReadVarBytes(r, maxWitnessItemSize,
			"script witness item")
		if err != nil {
			return nil, err
		}
	}
	return stack, nil
}

func writeWitnessStack(w io.Writer, stack [][]byte) error {
	err := WriteVarInt(w, uint64(len(stack)))
	if err != nil {
		return err
	}
	for _, item := range stack {
		if err = WriteVarBytes(w, item); err != nil {
			return err
		}
	}
	return nil
}

func witnessStackSerializeSize(stack [][]byte) int {
	n := VarIntSerializeSize(uint64(len(stack)))
	for _, item := range stack {
		n += varBytesSerializeSize(item)
	}
	return n
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	newB := make([]byte, len(b))
	copy(newB, b)
	return newB
}

func copyStack(stack [][]byte) [][]byte {
	if stack == nil {
		return nil
	}
	newStack := make([][]byte, len(stack))
	for i, item := range stack {
		newStack[i] = copyBytes(item)
	}
	return newStack
}

// The commitment types are immutable values, so copying the pointed-to
// values is enough for a deep copy.
func copyAsset(a ConfidentialAsset) ConfidentialAsset {
	var c ConfidentialAsset
	if a.Explicit != nil {
		explicit := *a.Explicit
		c.Explicit = &explicit
	}
	if a.Commitment != nil {
		commitment := *a.Commitment
		c.Commitment = &commitment
	}
	return c
}

func copyValue(v ConfidentialValue) ConfidentialValue {
	var c ConfidentialValue
	if v.Explicit != nil {
		explicit := *v.Explicit
		c.Explicit = &explicit
	}
	if v.Commitment != nil {
		commitment := *v.Commitment
		c.Commitment = &commitment
	}
	return c
}

func copyNonce(n ConfidentialNonce) ConfidentialNonce {
	var c ConfidentialNonce
	if n.Explicit != nil {
		explicit := *n.Explicit
		c.Explicit = &explicit
	}
	if n.Commitment != nil {
		commitment := *n.Commitment
		c.Commitment = &commitment
	}
	return c
}

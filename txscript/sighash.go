// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/ltcsuite/elements/wire"
	"github.com/ltcsuite/ltcd/chaincfg/chainhash"
)

// ErrInputIndexOutOfRange is returned when a signature hash is requested for
// an input the transaction does not have.
var ErrInputIndexOutOfRange = errors.New("input index out of range")

// sigHasher accumulates a preimage and finalizes it with double SHA-256.
type sigHasher struct {
	hash.Hash
}

func newSigHasher() sigHasher {
	return sigHasher{sha256.New()}
}

func (h sigHasher) digest() chainhash.Hash {
	return chainhash.HashH(h.Sum(nil))
}

// SigHashCache computes the segwit signature hashes of a transaction.  The
// midstates shared by every input (prevouts, sequences, issuances and
// outputs) are computed on first use and kept for the life of the cache, so
// signing n inputs hashes the transaction body once rather than n times.
//
// The cache holds a reference to the transaction and never notices changes
// to it.  Callers must not alter the version, lock time, inputs or outputs
// of the transaction while the cache is in use; only signature scripts and
// witnesses may change.  A SigHashCache is not safe for concurrent use.
type SigHashCache struct {
	tx *wire.MsgTx

	hashPrevOuts  *chainhash.Hash
	hashSequence  *chainhash.Hash
	hashOutputs   *chainhash.Hash
	hashIssuances *chainhash.Hash
}

// NewSigHashCache returns an empty cache bound to tx.
func NewSigHashCache(tx *wire.MsgTx) *SigHashCache {
	return &SigHashCache{tx: tx}
}

// memoize returns *slot, computing it with fill first if it is unset.
func memoize(slot **chainhash.Hash, name string, fill func(io.Writer)) chainhash.Hash {
	if *slot != nil {
		return **slot
	}

	h := newSigHasher()
	fill(h)
	digest := h.digest()
	*slot = &digest

	log.Tracef("Computed %s midstate: %v", name, newLogClosure(func() string {
		return digest.String()
	}))
	return digest
}

// HashPrevOuts returns the hash of every input's previous outpoint, in
// input order.
func (c *SigHashCache) HashPrevOuts() chainhash.Hash {
	return memoize(&c.hashPrevOuts, "prevouts", func(w io.Writer) {
		for _, in := range c.tx.TxIn {
			// Writes to a hash never fail.
			_ = wire.WriteOutPoint(w, &in.PreviousOutPoint)
		}
	})
}

// HashSequence returns the hash of every input's sequence number.
func (c *SigHashCache) HashSequence() chainhash.Hash {
	return memoize(&c.hashSequence, "sequence", func(w io.Writer) {
		var b [4]byte
		for _, in := range c.tx.TxIn {
			binary.LittleEndian.PutUint32(b[:], in.Sequence)
			w.Write(b[:])
		}
	})
}

// HashIssuances returns the hash of every input's issuance record.  Inputs
// without an issuance contribute a single zero byte.
func (c *SigHashCache) HashIssuances() chainhash.Hash {
	return memoize(&c.hashIssuances, "issuances", func(w io.Writer) {
		for _, in := range c.tx.TxIn {
			if in.HasIssuance() {
				_ = wire.WriteAssetIssuance(w, in.Issuance)
			} else {
				w.Write([]byte{0x00})
			}
		}
	})
}

// HashOutputs returns the hash of every output, in order.
func (c *SigHashCache) HashOutputs() chainhash.Hash {
	return memoize(&c.hashOutputs, "outputs", func(w io.Writer) {
		for _, out := range c.tx.TxOut {
			_ = wire.WriteTxOut(w, out)
		}
	})
}

// HashSingleOutput returns the hash of the output at idx, as signed by
// SIGHASH_SINGLE.  It depends on idx and is therefore recomputed on every
// call.  The caller must ensure idx is a valid output index.
func (c *SigHashCache) HashSingleOutput(idx int) chainhash.Hash {
	h := newSigHasher()
	_ = wire.WriteTxOut(h, c.tx.TxOut[idx])
	return h.digest()
}

// WriteSigningData streams the signature hash preimage of input idx to w.
// scriptCode is the script being satisfied and value the amount of the
// spent output; resolving a confidential amount to a number is up to the
// caller.  Errors returned by w are passed back unchanged.
//
// The preimage is laid out as:
//
//	version | hashPrevOuts | hashSequence | hashIssuances |
//	outpoint | scriptCode | value | sequence | [issuance] |
//	hashOutputs | lockTime | hashType
//
// where the midstates that the hash type does not commit to are replaced by
// 32 zero bytes.
func (c *SigHashCache) WriteSigningData(w io.Writer, idx int,
	scriptCode []byte, value uint64, hashType SigHashType) error {

	if idx < 0 || idx >= len(c.tx.TxIn) {
		return fmt.Errorf("%w: input %d, transaction has %d inputs",
			ErrInputIndexOutOfRange, idx, len(c.tx.TxIn))
	}

	var zeroHash chainhash.Hash
	base, anyoneCanPay := hashType.SplitAnyOneCanPay()
	signsAllOutputs := base != SigHashSingle && base != SigHashNone

	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(c.tx.Version))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}

	hashPrevOuts := zeroHash
	if !anyoneCanPay {
		hashPrevOuts = c.HashPrevOuts()
	}
	if _, err := w.Write(hashPrevOuts[:]); err != nil {
		return err
	}

	hashSequence := zeroHash
	if !anyoneCanPay && signsAllOutputs {
		hashSequence = c.HashSequence()
	}
	if _, err := w.Write(hashSequence[:]); err != nil {
		return err
	}

	// Issuances are gated by anyone-can-pay alone, not by the base mode.
	hashIssuances := zeroHash
	if !anyoneCanPay {
		hashIssuances = c.HashIssuances()
	}
	if _, err := w.Write(hashIssuances[:]); err != nil {
		return err
	}

	txIn := c.tx.TxIn[idx]
	if err := wire.WriteOutPoint(w, &txIn.PreviousOutPoint); err != nil {
		return err
	}
	if err := wire.WriteVarBytes(w, scriptCode); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf[:], value)
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf[:4], txIn.Sequence)
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	if txIn.HasIssuance() {
		if err := wire.WriteAssetIssuance(w, txIn.Issuance); err != nil {
			return err
		}
	}

	hashOutputs := zeroHash
	switch {
	case signsAllOutputs:
		hashOutputs = c.HashOutputs()
	case base == SigHashSingle && idx < len(c.tx.TxOut):
		hashOutputs = c.HashSingleOutput(idx)
	}
	if _, err := w.Write(hashOutputs[:]); err != nil {
		return err
	}

	binary.LittleEndian.PutUint32(buf[:4], c.tx.LockTime)
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(buf[:4], uint32(hashType))
	_, err := w.Write(buf[:4])
	return err
}

// SigningData returns the signature hash preimage of input idx.  It panics
// if idx is not a valid input index.
func (c *SigHashCache) SigningData(idx int, scriptCode []byte, value uint64,
	hashType SigHashType) []byte {

	var buf bytes.Buffer
	err := c.WriteSigningData(&buf, idx, scriptCode, value, hashType)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// SignatureHash returns the digest signed by input idx.  It panics if idx is
// not a valid input index.
func (c *SigHashCache) SignatureHash(idx int, scriptCode []byte,
	value uint64, hashType SigHashType) chainhash.Hash {

	h := newSigHasher()
	err := c.WriteSigningData(h, idx, scriptCode, value, hashType)
	if err != nil {
		panic(err)
	}
	sigHash := h.digest()

	log.Debugf("Signature hash for input %d (%v): %v", idx, hashType,
		sigHash)
	return sigHash
}

// CalcSignatureHash computes the signature hash of a single input with a
// throwaway cache.  Prefer a shared SigHashCache when signing several inputs
// of the same transaction.
func CalcSignatureHash(tx *wire.MsgTx, idx int, scriptCode []byte,
	value uint64, hashType SigHashType) (chainhash.Hash, error) {

	if idx < 0 || idx >= len(tx.TxIn) {
		return chainhash.Hash{}, fmt.Errorf("%w: input %d, "+
			"transaction has %d inputs", ErrInputIndexOutOfRange,
			idx, len(tx.TxIn))
	}
	return NewSigHashCache(tx).SignatureHash(idx, scriptCode, value,
		hashType), nil
}

// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// elsighash decodes confidential transactions and prints the signature hash,
// and optionally the exact preimage, of one of their inputs.  It can also
// validate a single hex encoded commitment.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
	"github.com/ltcsuite/elements/confidential"
	"github.com/ltcsuite/elements/txscript"
	"github.com/ltcsuite/elements/wire"
)

func parseCommitment(kind, s string) (confidential.Commitment, error) {
	switch kind {
	case "asset":
		return confidential.AssetCommitmentFromHex(s)
	case "nonce":
		return confidential.NonceCommitmentFromHex(s)
	}
	return confidential.ValueCommitmentFromHex(s)
}

func decodeTx(s string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("malformed transaction hex: %v", err)
	}
	var tx wire.MsgTx
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return &tx, nil
}

// run performs the operations selected by cfg, writing results to out.
func run(cfg *config, out io.Writer) error {
	if cfg.Commitment != "" {
		c, err := parseCommitment(cfg.Kind, cfg.Commitment)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s commitment: %v\n", cfg.Kind, c)
	}

	if cfg.Tx == "" {
		return nil
	}

	tx, err := decodeTx(cfg.Tx)
	if err != nil {
		return err
	}
	log.Infof("Decoded transaction %v (%d inputs, %d outputs)",
		tx.TxHash(), len(tx.TxIn), len(tx.TxOut))
	if cfg.Dump {
		fmt.Fprint(out, spew.Sdump(tx))
	}

	scriptCode, err := hex.DecodeString(cfg.Script)
	if err != nil {
		return fmt.Errorf("malformed script hex: %v", err)
	}

	cache := txscript.NewSigHashCache(tx)
	if cfg.Preimage {
		var preimage bytes.Buffer
		err := cache.WriteSigningData(&preimage, cfg.Input, scriptCode,
			cfg.Value, cfg.hashType)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "preimage: %x\n", preimage.Bytes())
	}

	sigHash, err := txscript.CalcSignatureHash(tx, cfg.Input, scriptCode,
		cfg.Value, cfg.hashType)
	if err != nil {
		return err
	}

	// The digest is printed in internal byte order, the order it is
	// signed in.
	fmt.Fprintf(out, "sighash (%v): %x\n", cfg.hashType, sigHash[:])
	return nil
}

func main() {
	cfg, _, err := loadConfig()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logRotator.Close()

	if err := run(cfg, os.Stdout); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

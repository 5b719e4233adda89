// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/ltcsuite/elements/txscript"
)

const (
	defaultLogLevel    = "info"
	defaultLogFilename = "elsighash.log"
	defaultHashType    = "ALL"
)

var defaultLogDir = filepath.Join(os.TempDir(), "elsighash", "logs")

// config defines the configuration options for elsighash.
//
// See loadConfig for details on the configuration load process.
type config struct {
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`

	Tx           string `long:"tx" description:"Hex encoded transaction to sign"`
	Input        int    `short:"i" long:"input" description:"Index of the input to compute the signature hash for"`
	Script       string `long:"script" description:"Hex encoded script code of the spent output"`
	Value        uint64 `long:"value" description:"Amount of the spent output"`
	HashType     string `long:"hashtype" description:"Signature hash mode {ALL, NONE, SINGLE}"`
	AnyoneCanPay bool   `long:"anyonecanpay" description:"Set the anyone-can-pay flag"`
	Preimage     bool   `long:"preimage" description:"Print the signature hash preimage"`
	Dump         bool   `long:"dump" description:"Dump the decoded transaction"`

	Commitment string `long:"commitment" description:"Hex encoded commitment to validate"`
	Kind       string `long:"kind" description:"Kind of --commitment {asset, value, nonce}" default:"value"`

	hashType txscript.SigHashType
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	cfg := config{
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		HashType:   defaultHashType,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.Parse()
	if err != nil {
		return nil, nil, err
	}

	if err := initLogRotator(filepath.Join(cfg.LogDir,
		defaultLogFilename)); err != nil {
		return nil, nil, err
	}
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return nil, nil, err
	}

	if cfg.Tx == "" && cfg.Commitment == "" {
		return nil, nil, fmt.Errorf("one of --tx or --commitment is " +
			"required")
	}

	cfg.hashType, err = txscript.ParseSigHashType(cfg.HashType)
	if err != nil {
		return nil, nil, err
	}
	if cfg.hashType&txscript.SigHashAnyOneCanPay != 0 {
		return nil, nil, fmt.Errorf("use --anyonecanpay instead of " +
			"naming the flag in --hashtype")
	}
	if cfg.AnyoneCanPay {
		cfg.hashType |= txscript.SigHashAnyOneCanPay
	}

	cfg.Kind = strings.ToLower(cfg.Kind)
	switch cfg.Kind {
	case "asset", "value", "nonce":
	default:
		return nil, nil, fmt.Errorf("unknown commitment kind %q",
			cfg.Kind)
	}

	return &cfg, remainingArgs, nil
}

// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
	"strings"
)

// SigHashType represents hash type bits at the end of a signature.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask defines the number of bits of the hash type which is used
	// to identify which outputs are signed.
	sigHashMask = 0x1f
)

// SplitAnyOneCanPay returns the base signature hash mode and whether the
// anyone-can-pay flag is set.  Base modes other than NONE and SINGLE are
// treated as ALL.
func (t SigHashType) SplitAnyOneCanPay() (SigHashType, bool) {
	anyoneCanPay := t&SigHashAnyOneCanPay != 0
	switch base := t & sigHashMask; base {
	case SigHashNone, SigHashSingle:
		return base, anyoneCanPay
	}
	return SigHashAll, anyoneCanPay
}

// String returns the hash type in the form used by the reference client,
// for example "ALL|ANYONECANPAY".
func (t SigHashType) String() string {
	base, anyoneCanPay := t.SplitAnyOneCanPay()

	var s string
	switch base {
	case SigHashNone:
		s = "NONE"
	case SigHashSingle:
		s = "SINGLE"
	default:
		s = "ALL"
	}
	if anyoneCanPay {
		s += "|ANYONECANPAY"
	}
	return s
}

// ParseSigHashType parses a hash type name such as "SINGLE" or
// "all|anyonecanpay".
func ParseSigHashType(s string) (SigHashType, error) {
	var hashType SigHashType
	for i, part := range strings.Split(strings.ToUpper(s), "|") {
		switch {
		case part == "ALL" && i == 0:
			hashType |= SigHashAll
		case part == "NONE" && i == 0:
			hashType |= SigHashNone
		case part == "SINGLE" && i == 0:
			hashType |= SigHashSingle
		case part == "ANYONECANPAY" && i == 1:
			hashType |= SigHashAnyOneCanPay
		default:
			return 0, fmt.Errorf("unknown signature hash type %q", s)
		}
	}
	return hashType, nil
}

// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package txscript computes the segwit signature hashes of confidential
transactions.

The algorithm follows BIP0143 with one extension: a hash of every input's
asset issuance record is committed right after the sequence hash, and the
signed input's own issuance follows its sequence number.  See SigHashCache
for the exact preimage layout.

# Logging

The package logs nothing by default.  Call UseLogger to receive the midstate
trace and per-input signature hash debug output.
*/
package txscript

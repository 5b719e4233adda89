// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the consensus encoding of confidential transactions.

Transactions follow the bitcoin layout with these additions:

  - a flag byte always follows the version; it is 1 when the witness sections
    are present and 0 otherwise
  - the two high bits of an input's outpoint index flag an inline asset
    issuance and a peg-in
  - outputs carry an asset, a value and a nonce, each of which is null,
    explicit, or a commitment from package confidential
  - the witness sections hold per-input issuance range proofs, script and
    peg-in witness stacks, and per-output surjection and range proofs

Decoding a commitment field re-validates its tag, so a malformed commitment
is rejected at parse time.  I/O errors from the underlying reader or writer
are returned unchanged; structural problems are reported as *MessageError.
*/
package wire

// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package confidential implements the Pedersen commitment containers carried by
confidential transactions: asset commitments, value commitments and nonce
commitments.

Each commitment is a fixed 33-byte value made of a one byte tag followed by a
32-byte body.  Every kind accepts exactly two tag values, which encode the
parity of the committed curve point much like a compressed public key does:

	AssetCommitment  0x0a 0x0b
	ValueCommitment  0x08 0x09
	NonceCommitment  0x02 0x03

A byte sequence carrying the tag of one kind is never accepted as another
kind.  No curve arithmetic is performed, so a well-formed commitment is not
necessarily a valid point.

The consensus encoding of a commitment is the 33 raw bytes with no length
prefix.  Decoding re-applies the same validation as the constructors.

The zero value of each commitment type is not a valid commitment and is never
returned by this package.
*/
package confidential

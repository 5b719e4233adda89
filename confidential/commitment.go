// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	// CommitmentSize is the size of a serialized commitment: one tag byte
	// followed by the commitment body.
	CommitmentSize = 33

	// CommitmentBodySize is the size of the body that follows the tag.
	CommitmentBodySize = CommitmentSize - 1
)

// Commitment is the behaviour shared by every commitment kind.
type Commitment interface {
	Tag() byte
	Body() []byte
	Bytes() []byte
	EncodedLength() int
	Serialize(w io.Writer) error
	String() string
}

// prefixSet names a commitment kind and the two tag bytes it accepts.
type prefixSet struct {
	kind string
	even byte
	odd  byte
}

var (
	assetPrefixes = prefixSet{kind: "asset", even: 0x0a, odd: 0x0b}
	valuePrefixes = prefixSet{kind: "value", even: 0x08, odd: 0x09}
	noncePrefixes = prefixSet{kind: "nonce", even: 0x02, odd: 0x03}
)

func (p prefixSet) valid(tag byte) bool {
	return tag == p.even || tag == p.odd
}

// build validates tag and body against p and assembles the 33-byte form.
func (p prefixSet) build(tag byte, body []byte) (c [CommitmentSize]byte, err error) {
	if len(body) != CommitmentBodySize {
		return c, ErrInvalidLength
	}
	if !p.valid(tag) {
		return c, InvalidPrefixError{Kind: p.kind, Tag: tag}
	}
	c[0] = tag
	copy(c[1:], body)
	return c, nil
}

func (p prefixSet) fromBytes(b []byte) ([CommitmentSize]byte, error) {
	if len(b) == 0 {
		return [CommitmentSize]byte{}, ErrInvalidLength
	}
	return p.build(b[0], b[1:])
}

func (p prefixSet) fromHex(s string) ([CommitmentSize]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return [CommitmentSize]byte{}, fmt.Errorf("%w: %v", ErrMalformedHex, err)
	}
	return p.fromBytes(b)
}

// read decodes exactly CommitmentSize bytes from r.  A short read is reported
// as both ErrInvalidLength and io.ErrUnexpectedEOF.
func (p prefixSet) read(r io.Reader) ([CommitmentSize]byte, error) {
	var buf [CommitmentSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return buf, fmt.Errorf("%w: %w", ErrInvalidLength,
				io.ErrUnexpectedEOF)
		}
		return buf, err
	}
	return p.build(buf[0], buf[1:])
}

// marshalJSON renders c as the two element sequence [tag, "body hex"].
func marshalJSON(c *[CommitmentSize]byte) ([]byte, error) {
	return json.Marshal([]interface{}{c[0], hex.EncodeToString(c[1:])})
}

func (p prefixSet) unmarshalJSON(data []byte) ([CommitmentSize]byte, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return [CommitmentSize]byte{}, err
	}
	if len(fields) != 2 {
		return [CommitmentSize]byte{}, fmt.Errorf("%s commitment: "+
			"expected [prefix, commitment], got %d elements", p.kind,
			len(fields))
	}

	var (
		tag     byte
		bodyHex string
	)
	if err := json.Unmarshal(fields[0], &tag); err != nil {
		return [CommitmentSize]byte{}, fmt.Errorf("%s commitment "+
			"prefix: %v", p.kind, err)
	}
	if err := json.Unmarshal(fields[1], &bodyHex); err != nil {
		return [CommitmentSize]byte{}, fmt.Errorf("%s commitment "+
			"body: %v", p.kind, err)
	}
	body, err := hex.DecodeString(bodyHex)
	if err != nil {
		return [CommitmentSize]byte{}, fmt.Errorf("%w: %v",
			ErrMalformedHex, err)
	}
	return p.build(tag, body)
}

func writeCommitment(w io.Writer, c *[CommitmentSize]byte) error {
	_, err := w.Write(c[:])
	return err
}

func compare(a, b *[CommitmentSize]byte) int {
	return bytes.Compare(a[:], b[:])
}

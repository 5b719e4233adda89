// Copyright (c) 2025 The ltcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package confidential

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// kindHelpers adapts the three commitment kinds to a common shape so the
// table driven tests below can run against each of them.
type kindHelpers struct {
	name      string
	tags      [2]byte
	construct func(tag byte, body []byte) (Commitment, error)
	fromBytes func(b []byte) (Commitment, error)
	fromHex   func(s string) (Commitment, error)
	decode    func(r io.Reader) (Commitment, error)
}

var kinds = []kindHelpers{
	{
		name: "asset",
		tags: [2]byte{0x0a, 0x0b},
		construct: func(tag byte, body []byte) (Commitment, error) {
			return NewAssetCommitment(tag, body)
		},
		fromBytes: func(b []byte) (Commitment, error) {
			return AssetCommitmentFromBytes(b)
		},
		fromHex: func(s string) (Commitment, error) {
			return AssetCommitmentFromHex(s)
		},
		decode: func(r io.Reader) (Commitment, error) {
			var c AssetCommitment
			err := c.Deserialize(r)
			return c, err
		},
	},
	{
		name: "value",
		tags: [2]byte{0x08, 0x09},
		construct: func(tag byte, body []byte) (Commitment, error) {
			return NewValueCommitment(tag, body)
		},
		fromBytes: func(b []byte) (Commitment, error) {
			return ValueCommitmentFromBytes(b)
		},
		fromHex: func(s string) (Commitment, error) {
			return ValueCommitmentFromHex(s)
		},
		decode: func(r io.Reader) (Commitment, error) {
			var c ValueCommitment
			err := c.Deserialize(r)
			return c, err
		},
	},
	{
		name: "nonce",
		tags: [2]byte{0x02, 0x03},
		construct: func(tag byte, body []byte) (Commitment, error) {
			return NewNonceCommitment(tag, body)
		},
		fromBytes: func(b []byte) (Commitment, error) {
			return NonceCommitmentFromBytes(b)
		},
		fromHex: func(s string) (Commitment, error) {
			return NonceCommitmentFromHex(s)
		},
		decode: func(r io.Reader) (Commitment, error) {
			var c NonceCommitment
			err := c.Deserialize(r)
			return c, err
		},
	},
}

func testBody(fill byte) []byte {
	return bytes.Repeat([]byte{fill}, CommitmentBodySize)
}

// TestCommitmentRoundTrip ensures a commitment survives every encoding it
// supports unchanged.
func TestCommitmentRoundTrip(t *testing.T) {
	for _, k := range kinds {
		for _, tag := range k.tags {
			c, err := k.construct(tag, testBody(0x01))
			require.NoError(t, err, k.name)
			require.Equal(t, tag, c.Tag())
			require.Equal(t, testBody(0x01), c.Body())
			require.Equal(t, CommitmentSize, c.EncodedLength())

			raw := c.Bytes()
			require.Len(t, raw, CommitmentSize)

			parsed, err := k.fromBytes(raw)
			require.NoError(t, err)
			require.Equal(t, c, parsed)

			var buf bytes.Buffer
			require.NoError(t, c.Serialize(&buf))
			require.Equal(t, raw, buf.Bytes())

			decoded, err := k.decode(&buf)
			require.NoError(t, err)
			require.Equal(t, c, decoded)

			fromHex, err := k.fromHex(c.String())
			require.NoError(t, err)
			require.Equal(t, c, fromHex)
		}
	}
}

// TestCommitmentTagRejection ensures every tag byte outside a kind's pair is
// refused with the offending tag reported.
func TestCommitmentTagRejection(t *testing.T) {
	for _, k := range kinds {
		for i := 0; i < 256; i++ {
			tag := byte(i)
			_, err := k.construct(tag, testBody(0x42))
			if tag == k.tags[0] || tag == k.tags[1] {
				require.NoError(t, err)
				continue
			}

			var prefixErr InvalidPrefixError
			require.ErrorAs(t, err, &prefixErr, "%s tag %x",
				k.name, tag)
			require.Equal(t, tag, prefixErr.Tag)
			require.Equal(t, k.name, prefixErr.Kind)
		}
	}
}

func TestCommitmentLengthRejection(t *testing.T) {
	for _, k := range kinds {
		for _, n := range []int{0, 1, 31, 33, 64} {
			_, err := k.construct(k.tags[0], make([]byte, n))
			require.ErrorIs(t, err, ErrInvalidLength)
		}

		for n := 0; n < CommitmentSize; n++ {
			b := append([]byte{k.tags[1]}, testBody(0x07)...)
			_, err := k.fromBytes(b[:n])
			require.ErrorIs(t, err, ErrInvalidLength, "%s len %d",
				k.name, n)
		}
	}
}

// TestCommitmentCrossKind ensures the tag of one kind is never accepted by
// the constructors of the other kinds.
func TestCommitmentCrossKind(t *testing.T) {
	for _, from := range kinds {
		for _, to := range kinds {
			if from.name == to.name {
				continue
			}
			for _, tag := range from.tags {
				b := append([]byte{tag}, testBody(0x09)...)
				_, err := to.fromBytes(b)

				var prefixErr InvalidPrefixError
				require.ErrorAs(t, err, &prefixErr)
			}
		}
	}
}

func TestCommitmentDecodeTruncated(t *testing.T) {
	for _, k := range kinds {
		full := append([]byte{k.tags[0]}, testBody(0x05)...)
		for _, n := range []int{0, 1, 32} {
			_, err := k.decode(bytes.NewReader(full[:n]))
			require.ErrorIs(t, err, ErrInvalidLength)
			require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		}

		// A bad tag in an otherwise complete stream is a prefix error.
		bad := append([]byte{0xff}, testBody(0x05)...)
		_, err := k.decode(bytes.NewReader(bad))
		var prefixErr InvalidPrefixError
		require.ErrorAs(t, err, &prefixErr)
		require.Equal(t, byte(0xff), prefixErr.Tag)
	}
}

func TestCommitmentDecodeLeavesReceiver(t *testing.T) {
	orig, err := NewValueCommitment(0x09, testBody(0x33))
	require.NoError(t, err)

	c := orig
	err = c.Deserialize(bytes.NewReader([]byte{0x09, 0x01}))
	require.Error(t, err)
	require.Equal(t, orig, c)
}

func TestCommitmentHex(t *testing.T) {
	c, err := NewAssetCommitment(0x0b, testBody(0xab))
	require.NoError(t, err)
	require.Equal(t, "0b"+strings.Repeat("ab", 32), c.String())

	_, err = AssetCommitmentFromHex("0bzz")
	require.ErrorIs(t, err, ErrMalformedHex)

	_, err = AssetCommitmentFromHex("0b" + strings.Repeat("ab", 31))
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestCommitmentJSON(t *testing.T) {
	c, err := NewNonceCommitment(0x03, testBody(0x10))
	require.NoError(t, err)

	b, err := json.Marshal(c)
	require.NoError(t, err)
	require.Equal(t, `[3,"`+strings.Repeat("10", 32)+`"]`, string(b))

	var decoded NonceCommitment
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, c, decoded)

	tests := []struct {
		name string
		in   string
	}{
		{"missing body", `[3]`},
		{"extra element", `[3,"` + strings.Repeat("10", 32) + `",1]`},
		{"wrong prefix", `[8,"` + strings.Repeat("10", 32) + `"]`},
		{"short body", `[3,"` + strings.Repeat("10", 31) + `"]`},
		{"bad hex", `[3,"xx"]`},
		{"not a sequence", `"03"`},
	}
	for _, test := range tests {
		var v NonceCommitment
		err := json.Unmarshal([]byte(test.in), &v)
		require.Error(t, err, test.name)
	}

	var prefixErr InvalidPrefixError
	err = json.Unmarshal([]byte(tests[2].in), &decoded)
	require.True(t, errors.As(err, &prefixErr))
}

func TestCommitmentOrdering(t *testing.T) {
	var commits []AssetCommitment
	for _, fill := range []byte{0x03, 0x01, 0x02} {
		for _, tag := range []byte{0x0b, 0x0a} {
			c, err := NewAssetCommitment(tag, testBody(fill))
			require.NoError(t, err)
			commits = append(commits, c)
		}
	}

	sort.Slice(commits, func(i, j int) bool {
		return commits[i].Compare(commits[j]) < 0
	})
	for i := 1; i < len(commits); i++ {
		require.True(t, bytes.Compare(commits[i-1].Bytes(),
			commits[i].Bytes()) < 0)
	}
	require.Equal(t, byte(0x0a), commits[0].Tag())
	require.Equal(t, byte(0x0b), commits[len(commits)-1].Tag())

	a, _ := NewAssetCommitment(0x0a, testBody(0x01))
	b, _ := NewAssetCommitment(0x0a, testBody(0x01))
	require.True(t, a == b)
	require.Zero(t, a.Compare(b))
}

func TestCommitmentBodyIsCopy(t *testing.T) {
	body := testBody(0x01)
	c, err := NewValueCommitment(0x08, body)
	require.NoError(t, err)

	body[0] = 0xff
	c.Body()[0] = 0xff
	c.Bytes()[1] = 0xff
	require.Equal(t, testBody(0x01), c.Body())
}

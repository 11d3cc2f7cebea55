package merkle

import (
	"bytes"
	"encoding/hex"
	"slices"
)

// Digest is the fixed-length output of a Hasher.
type Digest []byte

// String returns the lowercase hex encoding of d.
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// Equal reports whether d and o hold the same bytes.
func (d Digest) Equal(o Digest) bool {
	return bytes.Equal(d, o)
}

// Encode returns the encoded form of d that is fed back into the hasher
// when two children are combined.
func Encode(d Digest) []byte {
	return appendEncoded(make([]byte, 0, hex.EncodedLen(len(d))), d)
}

func appendEncoded(dst []byte, d Digest) []byte {
	n, l := len(dst), hex.EncodedLen(len(d))
	dst = slices.Grow(dst, l)[:n+l]
	hex.Encode(dst[n:], d)
	return dst
}

// ParseDigest decodes a hex string produced by Digest.String.
func ParseDigest(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return Digest(b), nil
}

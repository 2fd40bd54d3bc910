package sha256

import (
	"encoding/binary"
	"encoding/hex"
)

// Digest represents a 32-byte SHA-256 hash value.
type Digest [Size]byte

func digestOf(h *[8]uint32) Digest {
	var d Digest
	for i, s := range h {
		binary.BigEndian.PutUint32(d[i*4:], s)
	}
	return d
}

// Bytes converts Digest to Byte Slice.
func (d Digest) Bytes() []byte {
	var bs Digest
	copy(bs[:], d[:])
	return bs[:]
}

// String converts Digest to its 64-character lower-case hex form.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Equal reports whether d and other hold the same value.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// DecodeString decodes a string value to Digest,
// the length of string value must be 64.
func DecodeString(str string) (Digest, error) {
	if len(str) != 2*Size {
		return Digest{}, ErrInvalidDigestLength
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return Digest{}, err
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

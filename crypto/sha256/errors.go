package sha256

import "errors"

var (
	// ErrInvalidLength indicates that the declared message length is negative,
	// or does not describe a whole number of bytes.
	ErrInvalidLength = errors.New("invalid message length")

	// ErrInputExhausted indicates that the source ended before the declared
	// message length was read.
	ErrInputExhausted = errors.New("input exhausted before declared length")

	// ErrNilReader indicates that no message source was given.
	ErrNilReader = errors.New("nil message source")

	// ErrInvalidDigestLength indicates the length of a digest string is invalid.
	ErrInvalidDigestLength = errors.New("invalid length for digest")
)

package errors

import (
	"os"

	"github.com/pkg/errors"
	"massnet.org/sha256sum/crypto/sha256"
)

// Process exit codes of the command line tool.
const (
	// success
	ErrCodeOK = 0

	// unclassified failure
	ErrCodeUnknown = 1

	// bad arguments or configuration
	ErrCodeUsage = 2

	// digest engine
	ErrCodeInvalidLength  = 10
	ErrCodeInputExhausted = 11
	ErrCodeIO             = 12

	// integrity check
	ErrCodeMismatch = 20
)

// ErrMismatch indicates that a computed digest differs from its reference.
var ErrMismatch = errors.New("digest mismatch")

// ErrUsage indicates invalid command line arguments.
var ErrUsage = errors.New("invalid usage")

// CodeOf returns the exit code for err, classified by its cause.
func CodeOf(err error) int {
	if err == nil {
		return ErrCodeOK
	}
	switch cause := errors.Cause(err); cause {
	case ErrMismatch:
		return ErrCodeMismatch
	case ErrUsage, sha256.ErrInvalidDigestLength:
		return ErrCodeUsage
	case sha256.ErrInvalidLength, sha256.ErrNilReader:
		return ErrCodeInvalidLength
	case sha256.ErrInputExhausted:
		return ErrCodeInputExhausted
	default:
		if _, ok := cause.(*os.PathError); ok {
			return ErrCodeIO
		}
		return ErrCodeUnknown
	}
}

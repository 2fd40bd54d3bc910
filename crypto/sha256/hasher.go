package sha256

import (
	"io"
	"math"
	"sync"

	"github.com/pkg/errors"
	"massnet.org/sha256sum/logging"
)

// Hasher computes the digest of a message whose length is known up front.
// The source is read once, front to back. A Hasher is not safe for
// concurrent use; independent Hashers share no state.
type Hasher struct {
	r    io.Reader
	plan PaddingPlan
	h    [8]uint32
	buf  [2 * BlockSize]byte
	read int64
	sum  *Digest
	err  error
}

// NewHasher prepares a Hasher for a message of bitLength bits read from r.
// bitLength must be non-negative and a multiple of 8.
func NewHasher(r io.Reader, bitLength int64) (*Hasher, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if bitLength%8 != 0 {
		return nil, errors.Wrapf(ErrInvalidLength, "bit length %d is not a whole number of bytes", bitLength)
	}
	plan, err := NewPaddingPlan(bitLength)
	if err != nil {
		return nil, err
	}

	logging.VPrint(logging.DEBUG, "padding plan", logging.LogFormat{
		"bit_length":       plan.BitLength,
		"last_block_bits":  plan.TailBits,
		"k_bits":           plan.KBits,
		"blocks":           plan.Blocks,
		"dual_final_block": plan.DualFinalBlock,
	})

	traceOnce.Do(func() {
		logging.VPrint(logging.DEBUG, "round functions", primitiveTrace(traceWord))
	})

	return &Hasher{r: r, plan: plan, h: _IV}, nil
}

// traceWord is the sample input of the round function trace.
const traceWord = 4

var traceOnce sync.Once

// primitiveTrace evaluates the round functions on word, with Ch and Maj
// taking word, word+1 and word+2 as x, y and z.
func primitiveTrace(word uint32) logging.LogFormat {
	return logging.LogFormat{
		"word":         word,
		"big_sigma0":   bigSigma0(word),
		"big_sigma1":   bigSigma1(word),
		"small_sigma0": smallSigma0(word),
		"small_sigma1": smallSigma1(word),
		"ch":           ch(word, word+1, word+2),
		"maj":          maj(word, word+1, word+2),
	}
}

// SumReader returns the digest of the first byteLength bytes of r.
func SumReader(r io.Reader, byteLength int64) (Digest, error) {
	if byteLength < 0 || byteLength > math.MaxInt64/8 {
		return Digest{}, errors.Wrapf(ErrInvalidLength, "byte length %d", byteLength)
	}
	hs, err := NewHasher(r, byteLength*8)
	if err != nil {
		return Digest{}, err
	}
	return hs.Sum()
}

// Plan returns the padding plan of the message.
func (hs *Hasher) Plan() PaddingPlan {
	return hs.plan
}

// ComputeHash consumes the source and returns the digest as 64 lower-case
// hex characters.
func (hs *Hasher) ComputeHash() (string, error) {
	d, err := hs.Sum()
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// Sum consumes the source and returns the digest. Once Sum has returned,
// later calls return the same result without reading again.
func (hs *Hasher) Sum() (Digest, error) {
	if hs.sum != nil {
		return *hs.sum, nil
	}
	if hs.err != nil {
		return Digest{}, hs.err
	}

	d, err := hs.compute()
	if err != nil {
		hs.err = err
		logging.VPrint(logging.DEBUG, "digest aborted", logging.LogFormat{"read": hs.read, "err": err})
		return Digest{}, err
	}
	hs.sum = &d
	return d, nil
}

func (hs *Hasher) compute() (Digest, error) {
	for i := int64(0); i < hs.plan.FullBlocks; i++ {
		if err := hs.readFull(hs.buf[:BlockSize]); err != nil {
			return Digest{}, err
		}
		block(&hs.h, hs.buf[:BlockSize])
	}

	tail := hs.buf[:hs.plan.TailBytes()]
	if err := hs.readFull(tail); err != nil {
		return Digest{}, err
	}
	final, err := hs.plan.AppendPadding(tail)
	if err != nil {
		return Digest{}, err
	}
	block(&hs.h, final)

	return digestOf(&hs.h), nil
}

func (hs *Hasher) readFull(p []byte) error {
	n, err := io.ReadFull(hs.r, p)
	hs.read += int64(n)
	switch err {
	case nil:
		return nil
	case io.EOF, io.ErrUnexpectedEOF:
		return errors.Wrapf(ErrInputExhausted, "read %d of %d bytes", hs.read, hs.plan.BitLength/8)
	default:
		return errors.Wrapf(err, "read message at byte %d", hs.read)
	}
}

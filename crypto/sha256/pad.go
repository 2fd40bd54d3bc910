package sha256

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// PaddingPlan describes how a message of BitLength bits is split into
// blocks and padded.
type PaddingPlan struct {
	// BitLength is the message length in bits.
	BitLength int64

	// KBits is the number of zero bits appended after the 1 bit, the
	// smallest k >= 0 with (BitLength + 1 + k) mod 512 == 448.
	KBits int64

	// TailBits is the number of message bits in the last partial block.
	TailBits int64

	// FullBlocks is the number of whole message blocks before the tail.
	FullBlocks int64

	// Blocks is the total number of compressed blocks, synthetic ones included.
	Blocks int64

	// DualFinalBlock is set when the 1 bit and the length field do not fit
	// after the tail, so a second synthetic block is needed.
	DualFinalBlock bool
}

// NewPaddingPlan returns the padding plan for a message of bitLength bits.
func NewPaddingPlan(bitLength int64) (PaddingPlan, error) {
	if bitLength < 0 {
		return PaddingPlan{}, errors.Wrapf(ErrInvalidLength, "negative bit length %d", bitLength)
	}
	plan := PaddingPlan{
		BitLength:  bitLength,
		KBits:      kBits(bitLength),
		TailBits:   bitLength % blockBits,
		FullBlocks: bitLength / blockBits,
	}
	plan.DualFinalBlock = plan.KBits >= padTarget
	plan.Blocks = plan.FullBlocks + 1
	if plan.DualFinalBlock {
		plan.Blocks++
	}
	return plan, nil
}

// kBits solves (l + 1 + k) mod 512 == 448 for the smallest k >= 0.
func kBits(l int64) int64 {
	r := (l%blockBits + 1) % blockBits
	return (padTarget - r + blockBits) % blockBits
}

// TailBytes returns how many bytes hold the tail bits.
func (p PaddingPlan) TailBytes() int {
	return int((p.TailBits + 7) / 8)
}

// FinalSize returns the size in bytes of the synthetic final block(s).
func (p PaddingPlan) FinalSize() int {
	if p.DualFinalBlock {
		return 2 * BlockSize
	}
	return BlockSize
}

// AppendPadding extends tail, the message bytes after the last whole block,
// into the final block(s): the tail bits, a single 1 bit, zero bits and the
// 64-bit big-endian bit length. Bits of the last tail byte past TailBits
// are cleared. The capacity of tail is reused when large enough.
func (p PaddingPlan) AppendPadding(tail []byte) ([]byte, error) {
	if len(tail) != p.TailBytes() {
		return nil, errors.Wrapf(ErrInvalidLength, "tail holds %d bytes, want %d", len(tail), p.TailBytes())
	}

	size := p.FinalSize()
	out := tail
	if cap(out) < size {
		out = make([]byte, len(tail), size)
		copy(out, tail)
	}
	out = out[:size]
	for i := len(tail); i < size; i++ {
		out[i] = 0
	}

	idx := p.TailBits / 8
	shift := uint(p.TailBits % 8)
	out[idx] &= ^(byte(0xff) >> shift)
	out[idx] |= 0x80 >> shift

	binary.BigEndian.PutUint64(out[size-8:], uint64(p.BitLength))
	return out, nil
}

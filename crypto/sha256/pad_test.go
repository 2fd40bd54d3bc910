package sha256

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kBitsIterative is the counting form of kBits.
func kBitsIterative(l int64) int64 {
	var k int64
	for (l+1+k)%blockBits != padTarget {
		k++
	}
	return k
}

func TestKBitsForms(t *testing.T) {
	for l := int64(0); l < 3*blockBits; l++ {
		if got, want := kBits(l), kBitsIterative(l); got != want {
			t.Fatalf("kBits(%d) = %d, iterative form gives %d", l, got, want)
		}
	}
	for _, l := range []int64{1 << 32, 1<<40 + 447, 1<<40 + 448, 8 * 1000000} {
		assert.Equal(t, kBitsIterative(l), kBits(l), "l = %d", l)
	}
}

func TestNewPaddingPlan(t *testing.T) {
	tests := []*struct {
		bits int64
		want PaddingPlan
	}{
		{
			// empty message, 1 bit + 447 zeros + length
			bits: 0,
			want: PaddingPlan{BitLength: 0, KBits: 447, TailBits: 0, FullBlocks: 0, Blocks: 1},
		},
		{
			bits: 24,
			want: PaddingPlan{BitLength: 24, KBits: 423, TailBits: 24, FullBlocks: 0, Blocks: 1},
		},
		{
			// 1 bit lands right before the length field
			bits: 447,
			want: PaddingPlan{BitLength: 447, KBits: 0, TailBits: 447, FullBlocks: 0, Blocks: 1},
		},
		{
			bits: 440,
			want: PaddingPlan{BitLength: 440, KBits: 7, TailBits: 440, FullBlocks: 0, Blocks: 1},
		},
		{
			bits: 448,
			want: PaddingPlan{BitLength: 448, KBits: 511, TailBits: 448, FullBlocks: 0, Blocks: 2, DualFinalBlock: true},
		},
		{
			bits: 504,
			want: PaddingPlan{BitLength: 504, KBits: 455, TailBits: 504, FullBlocks: 0, Blocks: 2, DualFinalBlock: true},
		},
		{
			bits: 511,
			want: PaddingPlan{BitLength: 511, KBits: 448, TailBits: 511, FullBlocks: 0, Blocks: 2, DualFinalBlock: true},
		},
		{
			bits: 512,
			want: PaddingPlan{BitLength: 512, KBits: 447, TailBits: 0, FullBlocks: 1, Blocks: 2},
		},
		{
			bits: 512 + 447,
			want: PaddingPlan{BitLength: 959, KBits: 0, TailBits: 447, FullBlocks: 1, Blocks: 2},
		},
		{
			bits: 3*512 + 448,
			want: PaddingPlan{BitLength: 1984, KBits: 511, TailBits: 448, FullBlocks: 3, Blocks: 5, DualFinalBlock: true},
		},
	}

	for i, test := range tests {
		plan, err := NewPaddingPlan(test.bits)
		require.NoError(t, err)
		assert.Equal(t, test.want, plan, "%d, plan mismatch:\n%s", i, spew.Sdump(plan))
		assert.Equal(t, int64(0), (plan.BitLength+1+plan.KBits-padTarget)%blockBits, "%d, congruence", i)
	}
}

func TestNewPaddingPlanNegative(t *testing.T) {
	_, err := NewPaddingPlan(-1)
	assert.Equal(t, ErrInvalidLength, errors.Cause(err))
}

func TestAppendPaddingEmpty(t *testing.T) {
	plan, err := NewPaddingPlan(0)
	require.NoError(t, err)

	out, err := plan.AppendPadding(nil)
	require.NoError(t, err)
	require.Len(t, out, BlockSize)

	want := make([]byte, BlockSize)
	want[0] = 0x80
	assert.Equal(t, want, out)
}

func TestAppendPaddingABC(t *testing.T) {
	plan, err := NewPaddingPlan(24)
	require.NoError(t, err)

	out, err := plan.AppendPadding([]byte("abc"))
	require.NoError(t, err)
	require.Len(t, out, BlockSize)

	want := make([]byte, BlockSize)
	copy(want, "abc")
	want[3] = 0x80
	want[63] = 0x18
	assert.Equal(t, want, out)
}

func TestAppendPadding447(t *testing.T) {
	plan, err := NewPaddingPlan(447)
	require.NoError(t, err)
	require.False(t, plan.DualFinalBlock)

	tail := make([]byte, plan.TailBytes())
	for i := range tail {
		tail[i] = 0xff
	}
	out, err := plan.AppendPadding(tail)
	require.NoError(t, err)
	require.Len(t, out, BlockSize)

	// 447 message bits of ones followed directly by the 1 bit.
	for i := 0; i < 56; i++ {
		assert.Equal(t, byte(0xff), out[i], "byte %d", i)
	}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0xbf}, out[56:])
}

func TestAppendPaddingClearsUnusedTailBits(t *testing.T) {
	plan, err := NewPaddingPlan(3)
	require.NoError(t, err)

	out, err := plan.AppendPadding([]byte{0xff})
	require.NoError(t, err)
	assert.Equal(t, byte(0xf0), out[0])
	assert.Equal(t, byte(0x03), out[63])
}

func TestAppendPaddingPartialByteMask(t *testing.T) {
	// tail of 8 whole bytes plus n bits, every source bit set
	for n := int64(1); n < 8; n++ {
		plan, err := NewPaddingPlan(64 + n)
		require.NoError(t, err)

		tail := bytes.Repeat([]byte{0xff}, 9)
		out, err := plan.AppendPadding(tail)
		require.NoError(t, err)

		keep := byte(0xff) << uint(8-n)
		one := byte(0x80) >> uint(n)
		assert.Equal(t, keep|one, out[8], "bits %d", n)
		assert.Equal(t, byte(64+n), out[63], "bits %d", n)
	}
}

func TestAppendPaddingDual(t *testing.T) {
	plan, err := NewPaddingPlan(448)
	require.NoError(t, err)
	require.True(t, plan.DualFinalBlock)

	tail := make([]byte, 56)
	for i := range tail {
		tail[i] = 0x61
	}
	out, err := plan.AppendPadding(tail)
	require.NoError(t, err)
	require.Len(t, out, 2*BlockSize)

	assert.Equal(t, tail, out[:56])
	assert.Equal(t, byte(0x80), out[56])
	for i := 57; i < 2*BlockSize-8; i++ {
		assert.Equal(t, byte(0), out[i], "byte %d", i)
	}
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0xc0}, out[2*BlockSize-8:])
}

func TestAppendPaddingFullBlockMultiple(t *testing.T) {
	plan, err := NewPaddingPlan(1024)
	require.NoError(t, err)
	require.Equal(t, int64(3), plan.Blocks)

	out, err := plan.AppendPadding([]byte{})
	require.NoError(t, err)
	require.Len(t, out, BlockSize)
	assert.Equal(t, byte(0x80), out[0])
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x04, 0x00}, out[56:])
}

func TestAppendPaddingReusesCapacity(t *testing.T) {
	plan, err := NewPaddingPlan(16)
	require.NoError(t, err)

	var buf [2 * BlockSize]byte
	for i := range buf {
		buf[i] = 0xee
	}
	buf[0], buf[1] = 'h', 'i'
	out, err := plan.AppendPadding(buf[:2])
	require.NoError(t, err)
	assert.Equal(t, &buf[0], &out[0])
	assert.Equal(t, byte(0x80), out[2])
	assert.Equal(t, byte(0), out[3])
	assert.Equal(t, byte(0x10), out[63])
}

func TestAppendPaddingTailMismatch(t *testing.T) {
	plan, err := NewPaddingPlan(24)
	require.NoError(t, err)

	_, err = plan.AppendPadding([]byte("ab"))
	assert.Equal(t, ErrInvalidLength, errors.Cause(err))
}

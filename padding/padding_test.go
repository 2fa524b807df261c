package padding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/purbtool/purb/padding"
)

func TestForwardWithinBudget(t *testing.T) {
	unpaddedSize := uint64(1128)
	padKey := uint64(0x1234_5678_9abc_def0)

	p := padding.Forward(unpaddedSize, padKey)
	assert.LessOrEqual(t, p, unpaddedSize/4)
}

func TestForwardZeroPadKeyYieldsNoPadding(t *testing.T) {
	assert.Zero(t, padding.Forward(1_000_000, 0))
}

func TestInverseRecoversForward(t *testing.T) {
	padKeys := []uint64{0, 1, 0xffff_ffff, 0xffff_ffff_ffff_ffff, 0x5555_5555_5555_5555}

	for unpadded := uint64(1128); unpadded < 1128+1<<16; unpadded += 997 {
		for _, pk := range padKeys {
			p := padding.Forward(unpadded, pk)
			padded := unpadded + p
			got := padding.Inverse(padded, pk)
			assert.Equal(t, p, got, "unpadded=%d padKey=%#x", unpadded, pk)
		}
	}
}

func TestForwardMonotoneInUnpaddedSize(t *testing.T) {
	padKey := uint64(0xdead_beef_cafe_f00d)
	prev := uint64(0)
	for unpadded := uint64(1128); unpadded < 1128+1<<20; unpadded += 4093 {
		p := padding.Forward(unpadded, padKey)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
}

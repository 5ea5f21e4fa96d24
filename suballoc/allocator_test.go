package suballoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RejectsZeroSize(t *testing.T) {
	_, err := New(0, nil)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestNew_DefaultConfigUsedWhenNil(t *testing.T) {
	a, err := New(1<<20, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig.MaxBlocks, a.ids.capacity())
}

func TestNew_SingleBlockSpansWholeRange(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)

	head := a.Head()
	require.EqualValues(t, 0, head.Offset)
	require.EqualValues(t, 1024, head.Size)
	require.False(t, head.IsUsed())

	_, ok := a.Next(head)
	require.False(t, ok)
}

func TestAlloc_ZeroSizeFails(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)

	_, err = a.Alloc(0)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestAlloc_ExactSizeConsumesWholeBlock(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)

	alloc, err := a.Alloc(1024)
	require.NoError(t, err)
	require.EqualValues(t, 0, alloc.Offset)
	require.EqualValues(t, 1024, alloc.Size)

	head := a.Head()
	require.True(t, head.IsUsed())
	_, ok := a.Next(head)
	require.False(t, ok)
}

func TestAlloc_PartialSizeLeavesRemainder(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)

	alloc, err := a.Alloc(256)
	require.NoError(t, err)
	require.EqualValues(t, 0, alloc.Offset)

	head := a.Head()
	require.True(t, head.IsUsed())
	require.EqualValues(t, 256, head.Size)

	rest, ok := a.Next(head)
	require.True(t, ok)
	require.False(t, rest.IsUsed())
	require.EqualValues(t, 256, rest.Offset)
	require.EqualValues(t, 768, rest.Size)
}

func TestAlloc_FailsWhenNothingFits(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)

	_, err = a.Alloc(1025)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestFree_CoalescesWithFreeLeftNeighbour(t *testing.T) {
	a, err := New(1024, nil)
	require.NoError(t, err)

	x, err := a.Alloc(256)
	require.NoError(t, err)
	y, err := a.Alloc(256)
	require.NoError(t, err)
	_, err = a.Alloc(256) // third block, keeps y's right neighbour used
	require.NoError(t, err)

	require.NoError(t, a.Free(x))
	require.NoError(t, a.Free(y))

	head := a.Head()
	require.False(t, head.IsUsed())
	require.EqualValues(t, 0, head.Offset)
	require.EqualValues(t, 512, head.Size)
}

func TestAllocFreeRoundTrip_RestoresPoolUsage(t *testing.T) {
	a, err := New(4096, nil)
	require.NoError(t, err)

	before := a.ids.inUse()
	alloc, err := a.Alloc(128)
	require.NoError(t, err)
	require.NoError(t, a.Free(alloc))

	require.Equal(t, before, a.ids.inUse())
	head := a.Head()
	require.EqualValues(t, 0, head.Offset)
	require.EqualValues(t, 4096, head.Size)
	require.False(t, head.IsUsed())
}

func TestAlloc_OutOfBlockSlotsLeavesStateUnchanged(t *testing.T) {
	a, err := New(1<<20, &Config{MaxBlocks: 1})
	require.NoError(t, err)

	// The sole slot is occupied by the initial free block; any split
	// during Alloc needs a second slot and must fail cleanly.
	before := a.Head()
	_, err = a.Alloc(1)
	require.ErrorIs(t, err, ErrOutOfBlockSlots)

	after := a.Head()
	require.Equal(t, before, after)
	require.False(t, after.IsUsed())
	require.Equal(t, uint32(1), a.ids.inUse())
}

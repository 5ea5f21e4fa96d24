package suballoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinOf_SmallSizes(t *testing.T) {
	bin, top, bottom := binOf(1)
	require.Equal(t, 0, top)
	require.Equal(t, 1, bottom)
	require.Equal(t, 1, bin)

	bin, top, bottom = binOf(7)
	require.Equal(t, 0, top)
	require.Equal(t, 7, bottom)
	require.Equal(t, 7, bin)
}

func TestBinOf_MaxSizeRoundDown(t *testing.T) {
	// 0xFFFFFFFF has its highest set bit at 31; top never exceeds 29 for
	// round-down, since mantissaStartBit caps at 28 (31-mantissaBits).
	bin, top, bottom := binOf(0xFFFF_FFFF)
	require.Equal(t, 29, top)
	require.Equal(t, 7, bottom)
	require.Equal(t, 239, bin)
}

func TestBinOfRoundUp_ExactBinLowerBoundsNeedNoRounding(t *testing.T) {
	bin, top, bottom := binOfRoundUp(1024)
	require.Equal(t, 8, top)
	require.Equal(t, 0, bottom)
	require.Equal(t, 64, bin)
	require.Equal(t, bin, func() int { b, _, _ := binOf(1024); return b }())
}

func TestBinOfRoundUp_InexactSizeRoundsToNextBin(t *testing.T) {
	upBin, _, _ := binOfRoundUp(1025)
	downBin, _, _ := binOf(1025)
	require.Greater(t, upBin, downBin)
}

func TestBinOfRoundUp_MantissaOverflowCarriesIntoNextTop(t *testing.T) {
	// 241 rounds down to bin (top=5, bottom=7) but isn't exact, so rounding
	// up must carry bottom past 7 into the next top.
	bin, top, bottom := binOfRoundUp(241)
	require.Equal(t, 6, top)
	require.Equal(t, 0, bottom)
	require.Equal(t, 48, bin)
}

func TestBinOfRoundUp_SaturatesAtLastBinInsteadOfOverflowing(t *testing.T) {
	// 0xFFFFFFFF sits past the last bin's lower bound with no higher bin
	// to round into (maxRoundDownTop, bottom 7 is the ceiling binOf can
	// ever produce), so round-up clamps there instead of overflowing into
	// a bin that binOf could never populate.
	bin, top, bottom := binOfRoundUp(0xFFFF_FFFF)
	downBin, downTop, downBottom := binOf(0xFFFF_FFFF)
	require.Equal(t, downTop, top)
	require.Equal(t, downBottom, bottom)
	require.Equal(t, downBin, bin)
	require.Equal(t, maxRoundDownTop, top)
	require.Equal(t, 7, bottom)
}

func TestBinOfRoundUp_SmallSizesAreExact(t *testing.T) {
	bin, top, bottom := binOfRoundUp(5)
	require.Equal(t, 0, top)
	require.Equal(t, 5, bottom)
	require.Equal(t, 5, bin)
}

func TestBinOf_MonotonicTopBoundary(t *testing.T) {
	// 1<<28 has one leading zero bit fewer than 1<<27 (3 versus 4), moving
	// top forward by one; bottom is 0 for both.
	_, topLower, _ := binOf(1 << 27)
	_, topUpper, _ := binOf(1 << 28)
	require.Less(t, topLower, topUpper)
}

func TestFindNextBin_EmptyBitmapFails(t *testing.T) {
	a := &Allocator{}
	for i := range a.binHeads {
		a.binHeads[i] = unused
	}
	_, ok := a.findNextBin(0)
	require.False(t, ok)
}

func TestFindNextBin_PrefersSameTopBiggerBottom(t *testing.T) {
	a := &Allocator{}
	a.markResident(4, 2)
	a.markResident(4, 5)

	bin, ok := a.findNextBin((4 << 3) | 3)
	require.True(t, ok)
	require.Equal(t, (4<<3)|5, bin)
}

func TestFindNextBin_IncludesExactRequestedBin(t *testing.T) {
	a := &Allocator{}
	a.markResident(4, 3)

	bin, ok := a.findNextBin((4 << 3) | 3)
	require.True(t, ok)
	require.Equal(t, (4<<3)|3, bin)
}

func TestFindNextBin_FallsBackToHigherTop(t *testing.T) {
	a := &Allocator{}
	a.markResident(2, 1)
	a.markResident(9, 6)

	bin, ok := a.findNextBin((2 << 3) | 5)
	require.True(t, ok)
	require.Equal(t, (9<<3)|6, bin)
}

func TestMarkResidentEmpty_RoundTrip(t *testing.T) {
	a := &Allocator{}
	a.markResident(10, 3)
	require.NotZero(t, a.topBins&(1<<10))
	require.NotZero(t, a.bottomBins[10]&(1<<3))

	a.markEmpty(10, 3)
	require.Zero(t, a.topBins&(1<<10))
	require.Zero(t, a.bottomBins[10])
}

func TestMarkEmpty_KeepsTopSetIfOtherBottomsResident(t *testing.T) {
	a := &Allocator{}
	a.markResident(5, 1)
	a.markResident(5, 2)

	a.markEmpty(5, 1)
	require.NotZero(t, a.topBins&(1<<5))
	require.NotZero(t, a.bottomBins[5]&(1<<2))
}

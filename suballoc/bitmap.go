package suballoc

import "math/bits"

// numTopBins is the number of top-level bins; each spans up to 8 bottom
// bins, for 256 bins total.
const numTopBins = 32

// numBins is the total number of size-class bins.
const numBins = numTopBins * 8

// mantissaBits is the width of the bottom-bin field within a size class;
// 8 = 1<<mantissaBits distinct bottom bins per top bin.
const mantissaBits = 3

// maxRoundDownTop is the highest top value binOf can ever produce for a
// 32-bit size: highestSetBit tops out at 31 (size < 1<<32), so
// mantissaStartBit tops out at 31-mantissaBits and top at one more than
// that. No free block is ever indexed above this top.
const maxRoundDownTop = 32 - mantissaBits

// binOf maps a free block's size to the bin whose size class it rounds down
// into: the largest bin whose nominal lower bound is <= size. Used only for
// placing a free block into the index (insertSpatial); an allocation
// request must use binOfRoundUp instead, see its comment for why.
//
// top 0 is reserved exclusively for size < 8, where size is its own exact
// bin index (0..7). For size >= 8, top is one more than the reference
// original_source/block_allocator.h's block_allocator_size_to_bin_index
// would compute, which keeps the two size ranges from aliasing onto the
// same bin; see DESIGN.md for why this deviates from the literal reference.
func binOf(size uint32) (bin, top, bottom int) {
	if size < 8 {
		return int(size), 0, int(size)
	}
	highestSetBit := 31 - bits.LeadingZeros32(size)
	mantissaStartBit := highestSetBit - mantissaBits
	top = mantissaStartBit + 1
	bottom = int((size >> uint(mantissaStartBit)) & 0x7)
	bin = (top << 3) | bottom
	return bin, top, bottom
}

// binOfRoundUp maps a requested allocation size to the smallest bin whose
// size class can satisfy it: every block stored in a bin >= this one (per
// binOf) has actual size >= size. Unlike binOf, this rounds up to the next
// bin whenever size isn't exactly a bin's lower bound, so that an inclusive
// search starting here (findNextBin) can never return a block smaller than
// requested, including the exact-fit case binOf/findNextBin's old exclusive
// pairing could never reach. This is the request-side half of the scheme
// original_source/block_allocator.h's own header comment credits to
// Sebastian Aaltonen's OffsetAllocator and then simplifies away.
func binOfRoundUp(size uint32) (bin, top, bottom int) {
	if size < 8 {
		return int(size), 0, int(size)
	}
	highestSetBit := 31 - bits.LeadingZeros32(size)
	mantissaStartBit := highestSetBit - mantissaBits
	top = mantissaStartBit + 1
	bottom = int((size >> uint(mantissaStartBit)) & 0x7)
	lowBitsMask := uint32(1<<uint(mantissaStartBit)) - 1
	// The last bin (maxRoundDownTop, bottom 7) has no higher bin to round
	// into, so any size past its lower bound saturates there instead of
	// overflowing into a bin binOf can never populate. Alloc's popped.size
	// check covers the resulting loss of precision in that one bin.
	if size&lowBitsMask != 0 && !(top == maxRoundDownTop && bottom == 7) {
		bottom++
		if bottom > 7 {
			bottom = 0
			top++
		}
	}
	bin = (top << 3) | bottom
	return bin, top, bottom
}

// markResident records that bin is non-empty in both bitmap levels.
func (a *Allocator) markResident(top, bottom int) {
	a.bottomBins[top] |= 1 << uint(bottom)
	a.topBins |= 1 << uint(top)
}

// markEmpty records that bin has become empty, clearing the bottom bit and,
// if that empties the whole top bin, the top bit too.
func (a *Allocator) markEmpty(top, bottom int) {
	a.bottomBins[top] &^= 1 << uint(bottom)
	if a.bottomBins[top] == 0 {
		a.topBins &^= 1 << uint(top)
	}
}

// findNextBin returns the smallest populated bin >= requested (inclusive of
// requested itself), or ok=false if no such bin is populated. Callers that
// want a bin guaranteed to satisfy a given size must pass requested as
// binOfRoundUp(size), not binOf(size).
func (a *Allocator) findNextBin(requested int) (bin int, ok bool) {
	top := requested >> 3
	bottom := requested & 0x7

	biggerBottoms := a.bottomBins[top] &^ (uint8(1<<uint(bottom)) - 1)

	if biggerBottoms != 0 {
		bottom = bits.TrailingZeros8(biggerBottoms)
		return (top << 3) | bottom, true
	}

	if top == numTopBins-1 {
		return 0, false
	}

	biggerTops := a.topBins &^ ((1 << uint(top+1)) - 1)
	if biggerTops == 0 {
		return 0, false
	}

	top = bits.TrailingZeros32(biggerTops)
	bottom = bits.TrailingZeros8(a.bottomBins[top])
	return (top << 3) | bottom, true
}

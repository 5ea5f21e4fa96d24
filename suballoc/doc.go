// Package suballoc implements a byte-range suballocator for a single
// contiguous address space of up to 2^32-1 bytes.
//
// # Overview
//
// The allocator hands out non-overlapping sub-ranges ("blocks") from a
// managed range and reclaims them on free, coalescing adjacent free blocks
// to keep fragmentation down. It does not manage any actual memory: it only
// produces offsets and sizes, meant to subdivide a GPU heap, a pre-mapped
// arena, or any other externally owned buffer (see the arena package for
// one way to obtain such a buffer).
//
// # Allocator interface
//
// The public surface is small and deliberately low level:
//
//   - New(totalSize, config): create an allocator over [0, totalSize)
//   - Close(): release the allocator's backing arrays
//   - Alloc(size): reserve size bytes, returns an Allocation
//   - Free(Allocation): release a previously returned Allocation
//   - Head() / Next(Block): walk all blocks in address order
//   - Block.IsUsed(): whether a block is currently allocated
//
// # Size classes
//
// Free blocks are indexed by a two-level bitmap over 256 bins (32 top bins
// x 8 bottom bins each), giving O(1) "smallest bin at or above N" lookup. A
// free block is filed under the bin its size rounds down into; an
// allocation request is quantized the other way, rounded up to the
// smallest bin guaranteed to hold only blocks big enough for it, and the
// search then includes that bin itself. Rounding the request down instead
// (as the original C reference this was ported from does) would mean a
// request that exactly fills its own bin could never be satisfied by a
// block of that exact size, including the whole-range case of an empty
// allocator.
//
// # Usage example
//
//	a, err := suballoc.New(1<<20, nil) // nil uses DefaultConfig
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	alloc, err := a.Alloc(4096)
//	if err != nil {
//	    return err
//	}
//	// ... use [alloc.Offset, alloc.Offset+alloc.Size) ...
//	a.Free(alloc)
//
// # Thread safety
//
// Allocator instances are not thread-safe. Every public call is
// bounded-time (a handful of constant-time bitmap scans plus a fixed
// number of pointer updates) and none of them block, but callers sharing an
// Allocator across goroutines must synchronize externally.
package suballoc

package suballoc

import "errors"

var (
	// ErrOutOfMemory indicates no free block large enough exists for the
	// requested size, or that the requested size was zero.
	ErrOutOfMemory = errors.New("suballoc: no free block large enough")

	// ErrOutOfBlockSlots indicates the block-record pool is saturated: no
	// more block identities are available, even though free bytes remain.
	// Recovery requires a larger MaxBlocks at New.
	ErrOutOfBlockSlots = errors.New("suballoc: block pool exhausted")

	// ErrInvalidSize indicates New was given a totalSize of zero. Alloc
	// reports a zero or oversized request as ErrOutOfMemory instead.
	ErrInvalidSize = errors.New("suballoc: invalid allocation size")
)

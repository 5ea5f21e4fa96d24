package arena

import "fmt"

// Arena is a fixed-size byte buffer suitable for a suballoc.Allocator to
// subdivide via the offsets and sizes it returns.
type Arena struct {
	data  []byte
	close func() error
}

// New reserves a buffer of the given size. The buffer is zeroed.
func New(size uint32) (*Arena, error) {
	if size == 0 {
		return nil, fmt.Errorf("arena: size must be >= 1")
	}
	data, closer, err := mapAnonymous(int(size))
	if err != nil {
		return nil, fmt.Errorf("arena: %w", err)
	}
	return &Arena{data: data, close: closer}, nil
}

// Bytes returns the whole buffer. Callers typically slice it with an
// Allocation's Offset and Size.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Slice returns the byte range [offset, offset+size) of the buffer,
// matching the fields of a suballoc.Allocation.
func (a *Arena) Slice(offset, size uint32) []byte {
	return a.data[offset : offset+size]
}

// Len returns the buffer's total size.
func (a *Arena) Len() uint32 {
	return uint32(len(a.data))
}

// Flush asks the OS to write back any dirty pages. On platforms where the
// buffer is purely anonymous memory with nothing to write back to, this is
// a no-op.
func (a *Arena) Flush() error {
	return msync(a.data)
}

// Close releases the buffer's backing pages. The Arena must not be used
// afterward.
func (a *Arena) Close() error {
	return a.close()
}

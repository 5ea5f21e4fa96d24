//go:build unix

package arena

import (
	"errors"

	"golang.org/x/sys/unix"
)

// mapAnonymous reserves size bytes of anonymous, shared memory so msync has
// something meaningful to act on even though nothing backs the mapping on
// disk.
func mapAnonymous(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	closer := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return data, closer, nil
}

// msync flushes the region to whatever backs it. For an anonymous mapping
// this only matters to the page cache's own bookkeeping, but it's cheap and
// keeps the call meaningful for future file-backed arenas.
func msync(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return unix.Msync(data, unix.MS_SYNC)
}

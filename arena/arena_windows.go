//go:build windows

package arena

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mapAnonymous reserves size bytes via VirtualAlloc. Windows has no
// equivalent of anonymous mmap backed by a flushable mapping, so Flush is a
// no-op on this platform (mirroring the fallback a plain os.ReadFile-backed
// buffer would need anyway).
func mapAnonymous(size int) ([]byte, func() error, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil, err
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	closer := func() error {
		if addr == 0 {
			return nil
		}
		return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
	}
	return data, closer, nil
}

func msync([]byte) error {
	return nil
}

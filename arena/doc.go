// Package arena provides an anonymous, page-backed byte buffer suitable as
// the externally owned buffer that a suballoc.Allocator subdivides.
//
// An Arena is a fixed-size []byte obtained from the operating system's
// virtual memory facilities rather than Go's garbage-collected heap, so its
// address is stable for the lifetime of the Arena and large buffers don't
// pressure the GC. Flush asks the OS to write any dirty pages toward
// whatever backs them (a no-op for purely anonymous memory on most
// platforms, but meaningful wherever the platform's mapping primitive
// tracks it).
package arena

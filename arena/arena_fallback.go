//go:build !unix && !windows

package arena

// mapAnonymous falls back to a plain heap buffer on platforms with no
// virtual-memory primitive wired up above.
func mapAnonymous(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}

func msync([]byte) error {
	return nil
}

//go:build !unix

package region

// acquire allocates a heap-backed region when mmap is not available.
func acquire(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// release lets the runtime reclaim a heap-backed region.
func release(_ []byte) error {
	return nil
}

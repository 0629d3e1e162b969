//go:build unix && !linux

package mmap

import "errors"

// tryMremap is not available outside Linux; Remap falls back to
// allocate-copy-free on these platforms.
func (m *Map) tryMremap(newSize int) ([]byte, error) {
	return nil, errors.New("mremap not available on this platform")
}

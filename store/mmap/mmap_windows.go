//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// New creates a new anonymous, read-write memory mapping of the given
// length in bytes, backed by the system paging file.
func New(length int) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	sizeHigh := uint32(uint64(length) >> 32)
	sizeLow := uint32(length)

	handle, err := windows.CreateFileMapping(windows.InvalidHandle, nil, windows.PAGE_READWRITE, sizeHigh, sizeLow, nil)
	if err != nil {
		return nil, &Error{Op: "CreateFileMapping", Err: err}
	}

	addr, err := windows.MapViewOfFile(handle, windows.FILE_MAP_WRITE, 0, 0, uintptr(length))
	if err != nil {
		windows.CloseHandle(handle)
		return nil, &Error{Op: "MapViewOfFile", Err: err}
	}

	var data []byte
	sh := (*struct {
		Data uintptr
		Len  int
		Cap  int
	})(unsafe.Pointer(&data))
	sh.Data = addr
	sh.Len = length
	sh.Cap = length

	return &Map{
		data:     data,
		size:     int64(length),
		capacity: int64(length),
		handle:   uintptr(handle),
	}, nil
}

// Close releases the memory mapping.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&m.data[0]))
	err := windows.UnmapViewOfFile(addr)
	windows.CloseHandle(windows.Handle(m.handle))
	m.data = nil
	m.size = 0
	m.capacity = 0
	m.handle = 0
	return err
}

// Remap grows or shrinks the mapping to newSize bytes by allocating a new
// mapping, copying the overlapping prefix, and releasing the old one.
func (m *Map) Remap(newSize int64) error {
	if m.data == nil {
		return ErrNotMapped
	}
	if newSize <= 0 {
		return ErrInvalidSize
	}
	if newSize == m.size {
		return nil
	}

	next, err := New(int(newSize))
	if err != nil {
		return err
	}
	n := m.size
	if newSize < n {
		n = newSize
	}
	copy(next.data, m.data[:n])

	if err := m.Close(); err != nil {
		return err
	}
	*m = *next
	return nil
}

// Lock locks the mapped pages in memory, preventing them from being swapped.
func (m *Map) Lock() error {
	if m.data == nil {
		return ErrNotMapped
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&m.data[0])), uintptr(len(m.data)))
}

// Unlock unlocks the mapped pages.
func (m *Map) Unlock() error {
	if m.data == nil {
		return ErrNotMapped
	}
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&m.data[0])), uintptr(len(m.data)))
}

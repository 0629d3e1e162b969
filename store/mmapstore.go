package store

import (
	"unsafe"

	"github.com/goodcleanfun/packed-memory-array/store/mmap"
)

// MmapStore is a Store backed by an anonymous memory-mapped region instead
// of a Go slice. It serves as a drop-in substitute for the default backing
// store when the slots should live in a private anonymous mapping outside
// the Go heap. The mapping is not shared with other processes.
//
// T must be a fixed-size value type with no pointers (an int, a fixed-size
// struct of such types); MmapStore reinterprets the mapped bytes as a []T
// with unsafe.Slice, so a T containing pointers or slices is unsafe to use
// here.
type MmapStore[T any] struct {
	m      *mmap.Map
	slots  []T
	stride int
}

// NewMmapStore allocates an MmapStore with n slots.
func NewMmapStore[T any](n int) (*MmapStore[T], error) {
	s := &MmapStore[T]{}
	if err := s.init(n); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MmapStore[T]) stridef() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (s *MmapStore[T]) init(n int) error {
	s.stride = s.stridef()
	if n == 0 {
		s.m = nil
		s.slots = nil
		return nil
	}
	m, err := mmap.New(n * s.stride)
	if err != nil {
		return err
	}
	s.m = m
	s.slots = unsafe.Slice((*T)(unsafe.Pointer(&m.Data()[0])), n)
	return nil
}

// Init allocates exactly n slots, each zero-valued. Panics on allocation
// failure; callers that must not panic should use NewMmapStore instead.
func (s *MmapStore[T]) Init(n int) {
	if s.m != nil {
		s.m.Close()
	}
	if err := s.init(n); err != nil {
		panic(err)
	}
}

// Resize changes capacity to n, preserving slots [0, min(old, n)).
func (s *MmapStore[T]) Resize(n int) {
	old := s.slots
	oldLen := len(old)
	if err := s.init(n); err != nil {
		panic(err)
	}
	m := oldLen
	if n < m {
		m = n
	}
	copy(s.slots[:m], old[:m])
}

func (s *MmapStore[T]) Size() int {
	return len(s.slots)
}

func (s *MmapStore[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.slots) {
		return zero, false
	}
	return s.slots[i], true
}

func (s *MmapStore[T]) GetUnchecked(i int) T {
	return s.slots[i]
}

func (s *MmapStore[T]) Set(i int, v T) bool {
	if i < 0 || i >= len(s.slots) {
		return false
	}
	s.slots[i] = v
	return true
}

func (s *MmapStore[T]) SetUnchecked(i int, v T) {
	s.slots[i] = v
}

// Destroy unmaps the backing region. The store must not be used afterward.
func (s *MmapStore[T]) Destroy() {
	if s.m != nil {
		s.m.Close()
		s.m = nil
	}
	s.slots = nil
}

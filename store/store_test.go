package store

import "testing"

func TestSliceStoreBasics(t *testing.T) {
	s := NewSliceStore[int](8)
	if s.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", s.Size())
	}
	if !s.Set(3, 42) {
		t.Fatal("Set(3, 42) = false, want true")
	}
	v, ok := s.Get(3)
	if !ok || v != 42 {
		t.Fatalf("Get(3) = (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := s.Get(8); ok {
		t.Error("Get(8) should be out of bounds")
	}
	if s.Set(-1, 1) {
		t.Error("Set(-1, ...) should fail")
	}
}

func TestSliceStoreResizePreservesPrefix(t *testing.T) {
	s := NewSliceStore[int](4)
	for i := 0; i < 4; i++ {
		s.SetUnchecked(i, i+1)
	}
	s.Resize(8)
	if s.Size() != 8 {
		t.Fatalf("Size() = %d, want 8", s.Size())
	}
	for i := 0; i < 4; i++ {
		if got := s.GetUnchecked(i); got != i+1 {
			t.Errorf("slot %d = %d, want %d", i, got, i+1)
		}
	}
	for i := 4; i < 8; i++ {
		if got := s.GetUnchecked(i); got != 0 {
			t.Errorf("new slot %d = %d, want zero value", i, got)
		}
	}

	s.Resize(2)
	if s.Size() != 2 {
		t.Fatalf("Size() after shrink = %d, want 2", s.Size())
	}
	if got := s.GetUnchecked(0); got != 1 {
		t.Errorf("slot 0 after shrink = %d, want 1", got)
	}
}

func TestSliceStoreDestroy(t *testing.T) {
	s := NewSliceStore[int](4)
	s.Destroy()
	if s.Size() != 0 {
		t.Errorf("Size() after Destroy = %d, want 0", s.Size())
	}
}

package pma

import (
	"testing"

	"github.com/goodcleanfun/packed-memory-array/store"
)

func newTestPMA(capacity int) *PMA[int] {
	g := newGeometry(capacity, 1)
	st := store.NewSliceStore[int](capacity)
	p := &PMA[int]{st: st, empty: 0, geometry: g, count: 0}
	return p
}

func TestPackCompactsToPrefix(t *testing.T) {
	p := newTestPMA(8)
	// occupied: 2, 5, 7 (use 1-based keys so 0 reads as empty)
	p.st.SetUnchecked(2, 20)
	p.st.SetUnchecked(5, 50)
	p.st.SetUnchecked(7, 70)
	p.count = 3

	if !p.pack(0, 8, 3) {
		t.Fatal("pack reported n mismatch")
	}

	want := []int{20, 50, 70, 0, 0, 0, 0, 0}
	for i, w := range want {
		if got := p.st.GetUnchecked(i); got != w {
			t.Errorf("slot %d = %d, want %d", i, got, w)
		}
	}
}

func TestPackIdempotent(t *testing.T) {
	p := newTestPMA(8)
	p.st.SetUnchecked(1, 10)
	p.st.SetUnchecked(4, 40)
	p.st.SetUnchecked(6, 60)

	p.pack(0, 8, 3)
	first := snapshot(p, 0, 8)
	p.pack(0, 8, 3)
	second := snapshot(p, 0, 8)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("pack not idempotent at slot %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestPackReportsMismatch(t *testing.T) {
	p := newTestPMA(8)
	p.st.SetUnchecked(1, 10)
	p.st.SetUnchecked(4, 40)

	if p.pack(0, 8, 3) {
		t.Fatal("pack should report false when the claimed count disagrees with reality")
	}
}

func TestSpreadEvenlyDistributes(t *testing.T) {
	p := newTestPMA(16)
	for i := 0; i < 4; i++ {
		p.st.SetUnchecked(i, i+1)
	}

	p.spread(0, 16, 4)

	var occupied []int
	for i := 0; i < 16; i++ {
		if p.st.GetUnchecked(i) != 0 {
			occupied = append(occupied, i)
		}
	}
	if len(occupied) != 4 {
		t.Fatalf("expected 4 occupied slots after spread, got %d: %v", len(occupied), occupied)
	}
	for i := 1; i < len(occupied); i++ {
		gap := occupied[i] - occupied[i-1]
		if gap < 3 || gap > 5 {
			t.Errorf("gap between consecutive occupied slots = %d, want close to 4", gap)
		}
	}
	// Relative order of keys must be preserved.
	for i, idx := range occupied {
		if p.st.GetUnchecked(idx) != i+1 {
			t.Errorf("spread reordered keys: slot %d holds %d, want %d", idx, p.st.GetUnchecked(idx), i+1)
		}
	}
}

func TestSpreadBoundsStayInWindow(t *testing.T) {
	p := newTestPMA(32)
	for i := 0; i < 5; i++ {
		p.st.SetUnchecked(i, i+1)
	}
	p.spread(0, 32, 5)

	first, last := -1, -1
	for i := 0; i < 32; i++ {
		if p.st.GetUnchecked(i) != 0 {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first < 0 || last >= 32 {
		t.Fatalf("occupied range [%d,%d] escaped window [0,32)", first, last)
	}
}

func snapshot(p *PMA[int], from, to int) []int {
	out := make([]int, to-from)
	for i := from; i < to; i++ {
		out[i-from] = p.st.GetUnchecked(i)
	}
	return out
}

package pma

import (
	"cmp"

	"github.com/goodcleanfun/packed-memory-array/store"
)

// PMA is a Packed Memory Array over key type K: a sorted, gapped array
// supporting point lookup, predecessor search, insertion, and deletion.
// Keys are unique and ordered by K's natural ordering; use NewWithOptions
// and a custom Empty value for key types whose zero value is a
// legitimate key.
type PMA[K cmp.Ordered] struct {
	st    store.Store[K]
	empty K
	geometry
	count int
}

// Options configures construction beyond the defaults New/NewSize apply.
type Options[K cmp.Ordered] struct {
	// Empty is the sentinel value denoting an empty slot. Defaults to
	// the zero value of K.
	Empty K
	// Store, if non-nil, is used as the backing store instead of the
	// default SliceStore[K]. It is (re)initialized by the PMA and must
	// not be shared with another container.
	Store store.Store[K]
}

// New creates a PMA with the default initial geometry (16 slots), using
// the zero value of K as the empty sentinel.
func New[K cmp.Ordered]() *PMA[K] {
	return NewWithOptions(Options[K]{})
}

// NewSize creates a PMA with a requested initial size hint. The hint does
// not change the initial geometry: the container always starts at the
// minimum geometry (16 slots) regardless of n. The parameter is kept for
// API parity with callers that want to state an expected size, and to
// make that surprise discoverable at the call site.
func NewSize[K cmp.Ordered](n int) *PMA[K] {
	return New[K]()
}

// NewWithOptions creates a PMA with explicit construction options.
func NewWithOptions[K cmp.Ordered](opts Options[K]) *PMA[K] {
	g := initGeometry()
	st := opts.Store
	if st == nil {
		st = store.NewSliceStore[K](g.capacity())
	} else {
		st.Init(g.capacity())
	}
	fillEmpty(st, 0, g.capacity(), opts.Empty)

	return &PMA[K]{
		st:       st,
		empty:    opts.Empty,
		geometry: g,
		count:    0,
	}
}

// Size returns the total slot capacity N.
func (p *PMA[K]) Size() int {
	return p.st.Size()
}

// Count returns the number of occupied slots.
func (p *PMA[K]) Count() int {
	return p.count
}

// Clear resets the container to an empty PMA at the initial geometry,
// releasing the prior backing store.
func (p *PMA[K]) Clear() {
	p.st.Destroy()
	g := initGeometry()
	p.st = store.NewSliceStore[K](g.capacity())
	fillEmpty(p.st, 0, g.capacity(), p.empty)
	p.geometry = g
	p.count = 0
}

// Destroy releases the backing store. The PMA must not be used afterward.
func (p *PMA[K]) Destroy() {
	if p.st != nil {
		p.st.Destroy()
		p.st = nil
	}
	p.count = 0
}

// isEmptyAt reports whether slot i holds the empty sentinel.
func (p *PMA[K]) isEmptyAt(i int) bool {
	v := p.st.GetUnchecked(i)
	return v == p.empty
}

// fillEmpty writes the empty sentinel to slots [from, to) of st.
func fillEmpty[K cmp.Ordered](st store.Store[K], from, to int, empty K) {
	for i := from; i < to; i++ {
		st.SetUnchecked(i, empty)
	}
}

package pma

// resize rebuilds the backing store from scratch when no window, up to
// and including the root, has an in-band density. It packs the array to
// a dense prefix, derives new geometry from the occupied count, grows
// (or shrinks) the store, and spreads the occupied slots uniformly
// across the new capacity.
func (p *PMA[K]) resize() error {
	oldCapacity := p.st.Size()
	if !p.pack(0, oldCapacity, p.count) {
		return ErrInvariantViolationErr
	}

	g, ok := resizeGeometry(p.count)
	if !ok {
		return ErrCapacityExceededError
	}

	newCapacity := g.capacity()
	p.st.Resize(newCapacity)
	fillEmpty(p.st, p.count, newCapacity, p.empty)

	p.geometry = g
	p.spread(0, newCapacity, p.count)
	return nil
}

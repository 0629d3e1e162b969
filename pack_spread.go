package pma

// pack compacts the occupied slots of [from, to) to its prefix
// [from, from+n), writing the empty sentinel to [from+n, to). n is the
// caller's claimed occupied count for the window; pack returns false if
// what it actually counted disagrees, signaling a bug upstream (density
// accounting drifted from reality).
func (p *PMA[K]) pack(from, to, n int) bool {
	write := from
	for read := from; read < to; read++ {
		if !p.isEmptyAt(read) {
			if read != write {
				v := p.st.GetUnchecked(read)
				p.st.SetUnchecked(write, v)
				p.st.SetUnchecked(read, p.empty)
			}
			write++
		}
	}
	for i := write; i < to; i++ {
		p.st.SetUnchecked(i, p.empty)
	}
	return n == write-from
}

// spread redistributes the n occupied slots packed at [from, from+n)
// evenly across [from, to), proceeding right-to-left so the destination
// of any move is always to the right of any still-unmoved source. The
// 8-bit fixed-point step caps capacity near 2^56; a wider fixed-point
// form would be needed to generalize beyond that.
func (p *PMA[K]) spread(from, to, n int) {
	if n == 0 {
		return
	}
	capacity := to - from
	frequency := (capacity << 8) / n

	read := from + n - 1
	write := (to << 8) - frequency
	for (write >> 8) > read {
		v := p.st.GetUnchecked(read)
		dest := write >> 8
		p.st.SetUnchecked(dest, v)
		p.st.SetUnchecked(read, p.empty)
		read--
		write -= frequency
	}
}

// packSpread rebalances [from, to): pack collapses the window's occupied
// slots to its prefix, then spread redistributes them evenly across the
// whole window.
func (p *PMA[K]) packSpread(from, to, n int) error {
	if !p.pack(from, to, n) {
		return ErrInvariantViolationErr
	}
	p.spread(from, to, n)
	return nil
}

package pma

// Find performs binary search for key over the gapped array, skipping
// empty slots.
//
// On a hit it returns (true, i) where slot i holds key. On a miss it
// returns (false, i) where i is the predecessor index: the largest
// occupied slot at or before the search's landing point, or -1 if no
// such slot exists. insertAfter relies on this predecessor contract.
func (p *PMA[K]) Find(key K) (bool, int) {
	n := p.st.Size()
	if n == 0 {
		return false, -1
	}

	lo, hi := 0, n-1
	for lo <= hi {
		mid := (lo + hi) / 2

		i := mid
		for i >= lo && p.isEmptyAt(i) {
			i--
		}
		if i < lo {
			// The left half of [lo, mid] is entirely empty; the answer,
			// if any, lies to the right.
			lo = mid + 1
			continue
		}

		ki := p.st.GetUnchecked(i)
		switch {
		case ki < key:
			lo = mid + 1
		case ki == key:
			return true, i
		default: // ki > key
			hi = i - 1
		}
	}

	return false, p.predecessorFrom(hi)
}

// predecessorFrom scans left from i past empty slots and returns the
// first occupied slot found, or -1 if none exists.
func (p *PMA[K]) predecessorFrom(i int) int {
	for i >= 0 && p.isEmptyAt(i) {
		i--
	}
	if i < 0 {
		return -1
	}
	return i
}

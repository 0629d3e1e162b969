package pma

// densityEpsilon is the tolerance used when comparing a window's density
// against its level's upper bound. A density that rounds to high(d)
// within this tolerance is treated as NOT in band, so the search always
// advances upward rather than settling on a window that is, for
// floating-point purposes, already full.
const densityEpsilon = 1e-9

// inBand reports whether density satisfies a level's band: low is
// inclusive, high is exclusive — a freshly-filled leaf sits exactly at
// high(0) and must escalate to the next level rather than being accepted
// as still in band.
func inBand(density, low, high float64) bool {
	return density >= low && density < high-densityEpsilon
}

// rebalance walks the implicit binary tree of windows around index i
// (the slot just modified by insert or delete), looking for the smallest
// window whose density is back in band.
//
// The occupied count is accumulated incrementally: left and right cursors
// extend outward from i exactly once across the whole walk, so the total
// scanning work across all levels is proportional to the size of the
// window that finally gets chosen (or to N, if the walk escalates to a
// resize), not to the sum of every level's width.
func (p *PMA[K]) rebalance(i int) error {
	left := i - 1
	right := i + 1
	occupied := 0
	if !p.isEmptyAt(i) {
		occupied = 1
	}

	for d := 0; d < p.height; d++ {
		w := p.segmentSize << uint(d)
		start := (i / w) * w
		end := start + w

		for left >= start {
			if !p.isEmptyAt(left) {
				occupied++
			}
			left--
		}
		for right < end {
			if !p.isEmptyAt(right) {
				occupied++
			}
			right++
		}

		density := float64(occupied) / float64(w)
		if inBand(density, p.low(d), p.high(d)) {
			return p.packSpread(start, end, occupied)
		}
	}

	return p.resize()
}

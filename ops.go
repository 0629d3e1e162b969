package pma

// Insert adds key to the container if it is not already present. It
// returns false if key duplicates an existing one, or if an internal
// failure occurred; use InsertFound for the distinguishing error.
func (p *PMA[K]) Insert(key K) bool {
	ok, _ := p.InsertFound(key)
	return ok
}

// InsertFound is Insert's error-returning counterpart.
func (p *PMA[K]) InsertFound(key K) (bool, error) {
	if found, pred := p.Find(key); found {
		return false, ErrDuplicateKeyError
	} else {
		return p.insertAfter(pred, key)
	}
}

// Delete removes key from the container if present. It returns false if
// key is absent, or if an internal failure occurred; use DeleteFound for
// the distinguishing error.
func (p *PMA[K]) Delete(key K) bool {
	ok, _ := p.DeleteFound(key)
	return ok
}

// DeleteFound is Delete's error-returning counterpart.
func (p *PMA[K]) DeleteFound(key K) (bool, error) {
	found, i := p.Find(key)
	if !found {
		return false, ErrNotFoundError
	}
	return p.deleteAt(i)
}

// insertAfter places key immediately after the occupied slot i (or at the
// front, if i == -1), shifting neighbors toward the nearest empty slot to
// the right, or to the left if there is none on the right, then invokes
// rebalance. Precondition: slot i, if i >= 0, is occupied.
func (p *PMA[K]) insertAfter(i int, key K) (bool, error) {
	n := p.st.Size()
	insertIndex := -1

	if j := p.firstEmptyRight(i+1, n); j != -1 {
		for k := j; k > i+1; k-- {
			p.st.SetUnchecked(k, p.st.GetUnchecked(k-1))
		}
		p.st.SetUnchecked(i+1, key)
		insertIndex = i + 1
	} else if j := p.firstEmptyLeft(i - 1); j != -1 {
		for k := j; k < i; k++ {
			p.st.SetUnchecked(k, p.st.GetUnchecked(k+1))
		}
		p.st.SetUnchecked(i, key)
		insertIndex = i
	}

	if insertIndex == -1 {
		// The store has no empty slot in either direction. The root
		// density ceiling should make this unreachable; treated
		// defensively as an invariant failure rather than silently
		// dropping the key.
		return false, ErrInvariantViolationErr
	}

	p.count++
	if err := p.rebalance(insertIndex); err != nil {
		return false, err
	}
	return true, nil
}

// deleteAt empties slot i, decrements count, and invokes Rebalance.
func (p *PMA[K]) deleteAt(i int) (bool, error) {
	p.st.SetUnchecked(i, p.empty)
	p.count--
	if err := p.rebalance(i); err != nil {
		return false, err
	}
	return true, nil
}

// firstEmptyRight returns the smallest empty index in [from, n), or -1.
func (p *PMA[K]) firstEmptyRight(from, n int) int {
	for k := from; k < n; k++ {
		if p.isEmptyAt(k) {
			return k
		}
	}
	return -1
}

// firstEmptyLeft returns the largest empty index in [0, from], or -1.
func (p *PMA[K]) firstEmptyLeft(from int) int {
	for k := from; k >= 0; k-- {
		if p.isEmptyAt(k) {
			return k
		}
	}
	return -1
}

// Package pma implements a Packed Memory Array: an ordered, in-memory
// associative container that keeps a sorted sequence of unique keys in a
// gapped array, leaving calibrated empty slots between elements so that
// insert and delete stay close to their neighbors on average.
//
// A PMA supports point lookup, predecessor search, insertion, and deletion
// with amortized polylogarithmic work per update. Locality is maintained by
// a density-threshold schedule over a conceptual binary tree of windows:
// every mutation walks outward from the touched slot looking for the
// smallest window whose density is back in band, rewrites that window in
// place (pack, then spread), and only rebuilds the whole array (resize)
// when no window qualifies.
//
// Key features:
//   - gapped array storage, no pointers between elements
//   - density-bounded local rebalances (pack + spread), amortizing global resizes
//   - binary search with empty-slot skipping for point lookup and predecessor queries
//   - pluggable backing store (plain slice or memory-mapped) via the store package
//
// Basic usage:
//
//	c := pma.New[int]()
//	ok := c.Insert(5)
//	ok = c.Insert(3)
//	found, idx := c.Find(3)
//
// The container is not safe for concurrent use.
package pma

package gridsheet

import "sort"

// orderedIntSet is a sorted []int backing SparseGrid's per-axis index. The
// original source keeps a std::set<int> per axis so the printable extent
// can be read off its max element in O(log n); Go's standard library has no
// ordered-set container, and nothing in the example corpus provides one
// either, so this is a deliberately minimal stand-in rather than a
// dependency substitute.
type orderedIntSet struct {
	vals []int
}

// add inserts v if absent, keeping vals sorted.
func (s *orderedIntSet) add(v int) {
	i := sort.SearchInts(s.vals, v)
	if i < len(s.vals) && s.vals[i] == v {
		return
	}
	s.vals = append(s.vals, 0)
	copy(s.vals[i+1:], s.vals[i:])
	s.vals[i] = v
}

// remove deletes v if present.
func (s *orderedIntSet) remove(v int) {
	i := sort.SearchInts(s.vals, v)
	if i >= len(s.vals) || s.vals[i] != v {
		return
	}
	s.vals = append(s.vals[:i], s.vals[i+1:]...)
}

// max returns the largest element and true, or 0, false if empty.
func (s *orderedIntSet) max() (int, bool) {
	if len(s.vals) == 0 {
		return 0, false
	}
	return s.vals[len(s.vals)-1], true
}

func (s *orderedIntSet) empty() bool { return len(s.vals) == 0 }

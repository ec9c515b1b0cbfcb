package automaton

import "github.com/bits-and-blooms/bitset"

// StateSet is the set of states an automaton can be in after consuming a prefix of the input.
type StateSet struct {
	inner *bitset.BitSet
}

func NewStateSet(numStates int) *StateSet {
	return &StateSet{
		inner: bitset.New(uint(numStates)),
	}
}

func (s *StateSet) Add(state int) {
	s.inner.Set(uint(state))
}

func (s *StateSet) Contains(state int) bool {
	return s.inner.Test(uint(state))
}

func (s *StateSet) Size() int {
	return int(s.inner.Count())
}

func (s *StateSet) IsEmpty() bool {
	return !s.inner.Any()
}

// GetArray Returns the states in ascending order.
func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, s.inner.Count())
	for i, ok := s.inner.NextSet(0); ok; i, ok = s.inner.NextSet(i + 1) {
		keys = append(keys, int(i))
	}
	return keys
}

func (s *StateSet) Clear() {
	s.inner.ClearAll()
}

func (s *StateSet) union(other *bitset.BitSet) {
	s.inner.InPlaceUnion(other)
}

// intersects reports whether any state of s is also in other.
func (s *StateSet) intersects(other *bitset.BitSet) bool {
	return s.inner.IntersectionCardinality(other) > 0
}

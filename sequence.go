package cjlib

import "strconv"

// Sequence is the append-only ordered list backing Array values. It
// preserves insertion order and does not enforce element uniqueness.
// Grounded on cjlib_list.c's role as the array backing store;
// implemented as a dynamic array since neither performance nor memory
// layout beyond O(1)-amortised append / O(n) indexed read is required.
type Sequence struct {
	items []*Value
}

// NewSequence returns an empty Sequence.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Append adds v to the end of the sequence, taking ownership of it.
func (s *Sequence) Append(v *Value) {
	s.items = append(s.items, v)
}

// Get returns the element at index i. ok is false if i is out of range.
func (s *Sequence) Get(i int) (v *Value, ok bool) {
	if i < 0 || i >= len(s.items) {
		return nil, false
	}
	return s.items[i], true
}

// GetChecked returns the element at index i, or an IndexOutOfRange
// error if i falls outside [0, Len()) — the array-get counterpart to
// OrderedMap.Search's KeyNotFound.
func (s *Sequence) GetChecked(i int) (*Value, error) {
	v, ok := s.Get(i)
	if !ok {
		return nil, newDictErr(IndexOutOfRange, strconv.Itoa(i))
	}
	return v, nil
}

// Len returns the number of elements in the sequence.
func (s *Sequence) Len() int {
	return len(s.items)
}

// Each calls fn for every element in insertion order. fn returning false
// stops the iteration early.
func (s *Sequence) Each(fn func(i int, v *Value) bool) {
	for i, v := range s.items {
		if !fn(i, v) {
			return
		}
	}
}

// Destroy drops the sequence's references to its elements, allowing the
// garbage collector to reclaim any value not referenced elsewhere. It
// exists to mirror an explicit owning-teardown contract even though Go
// does not require an explicit free.
func (s *Sequence) Destroy() {
	s.items = nil
}

package radix

import "iter"

// Segment is a read-only view of a node of a tree, for clients which need to
// inspect the structure rather than the keys, e.g. for visualization.
//
// The zero Segment is invalid; it has no bytes and no children.
type Segment[V any] struct {
	n *node[V]
}

// Root returns the root segment of t. The root's segment bytes are always empty.
func (t *Tree[V]) Root() Segment[V] {
	if t == nil {
		return Segment[V]{}
	}
	return Segment[V]{n: t.root}
}

// IsValid is false for the zero Segment.
func (s Segment[V]) IsValid() bool {
	return s.n != nil
}

// Bytes returns a copy of the key bytes contributed by this segment.
func (s Segment[V]) Bytes() []byte {
	if s.n == nil {
		return nil
	}
	return []byte(s.n.segment)
}

// String returns the segment's bytes as a string.
func (s Segment[V]) String() string {
	if s.n == nil {
		return ""
	}
	return s.n.segment
}

// IsTerminal is true if the path to this segment spells a key of the tree.
func (s Segment[V]) IsTerminal() bool {
	return s.n != nil && s.n.terminal
}

// Value returns the value of a terminal segment.
func (s Segment[V]) Value() (V, bool) {
	if !s.IsTerminal() {
		var zero V
		return zero, false
	}
	return s.n.value, true
}

// NumChildren returns the number of children.
func (s Segment[V]) NumChildren() int {
	if s.n == nil {
		return 0
	}
	return len(s.n.edges)
}

// Child returns the i-th child in ascending order of branch bytes, together
// with its branch byte. It panics if i is out of range.
func (s Segment[V]) Child(i int) (byte, Segment[V]) {
	e := s.n.edges[i]
	return e.label, Segment[V]{n: e.node}
}

// Children returns a sequence of (branch byte, child) pairs in ascending
// order of branch bytes.
func (s Segment[V]) Children() iter.Seq2[byte, Segment[V]] {
	return func(yield func(byte, Segment[V]) bool) {
		if s.n == nil {
			return
		}
		for _, e := range s.n.edges {
			if !yield(e.label, Segment[V]{n: e.node}) {
				return
			}
		}
	}
}

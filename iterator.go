package radix

import (
	"iter"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Iterator steps through the keys of a tree in pre-order, i.e. a key is
// visited before all keys it is a prefix of, and siblings in ascending order
// of their branch byte. Overall this yields keys in lexicographic byte order.
//
//	it := tree.Iterator()
//	for it.Next() {
//	    key, value := it.Key(), it.Value()
//	    ...
//	}
//
// Iterators are read-only. Modifying the tree while an iterator is active
// leaves the iterator's results undefined.
type Iterator[V any] struct {
	stack *arraystack.Stack // of frames
	key   []byte
	value V
}

// frame is a node pending to be visited, together with its full key.
type frame[V any] struct {
	node *node[V]
	key  []byte
}

// Iterator creates an iterator positioned before the first key.
func (t *Tree[V]) Iterator() *Iterator[V] {
	it := &Iterator[V]{stack: arraystack.New()}
	if t != nil {
		it.stack.Push(frame[V]{node: t.root, key: []byte{}})
	}
	return it
}

// Next advances to the next key. It returns false when all keys have been
// visited.
func (it *Iterator[V]) Next() bool {
	for {
		top, ok := it.stack.Pop()
		if !ok {
			var zero V
			it.key, it.value = nil, zero
			return false
		}
		f := top.(frame[V])
		for i := len(f.node.edges) - 1; i >= 0; i-- {
			child := f.node.edges[i].node
			it.stack.Push(frame[V]{node: child, key: concat(f.key, child.segment)})
		}
		if f.node.terminal {
			it.key, it.value = f.key, f.node.value
			return true
		}
	}
}

// Key returns the current key. The slice is owned by the caller.
func (it *Iterator[V]) Key() []byte {
	return it.key
}

// Value returns the value for the current key.
func (it *Iterator[V]) Value() V {
	return it.value
}

// All returns a sequence of all key/value pairs in the order of an Iterator.
// The sequence may be ranged over any number of times.
func (t *Tree[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns a sequence of all keys in the order of an Iterator.
func (t *Tree[V]) Keys() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// concat returns a new slice holding prefix followed by segment.
func concat(prefix []byte, segment string) []byte {
	c := make([]byte, len(prefix)+len(segment))
	copy(c, prefix)
	copy(c[len(prefix):], segment)
	return c
}

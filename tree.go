package radix

// Tree is a compressed trie mapping byte-string keys to values of type V.
// Trees have to be created with New.
//
// A nil *Tree is treated as an invalid reference: mutating operations
// report false and leave nothing changed, lookups find nothing.
type Tree[V any] struct {
	root  *node[V]
	size  int
	nodes *nodePool[V]
}

// New creates an empty tree.
func New[V any]() *Tree[V] {
	t := &Tree[V]{nodes: newNodePool[V]()}
	t.root = t.nodes.get("")
	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Insert stores value for key. It returns true if key has not been present
// before, false if an existing value has been overwritten.
//
// The empty key is a valid key and is stored at the root.
func (t *Tree[V]) Insert(key []byte, value V) bool {
	if t == nil {
		return false
	}
	inserted := t.insert(t.root, key, value)
	if inserted {
		t.size++
	}
	return inserted
}

// insert works on the remaining suffix of a key, starting at node n, whose
// segment is expected to start with the first byte of key.
func (t *Tree[V]) insert(n *node[V], key []byte, value V) bool {
	common := commonPrefixLen(n.segment, key)
	if common < len(n.segment) {
		// key diverges inside n's segment or ends there; never true for the root
		t.split(n, common)
	}
	rest := key[common:]
	if len(rest) == 0 {
		return n.setValue(value)
	}
	if _, child := n.child(rest[0]); child != nil {
		return t.insert(child, rest, value)
	}
	leaf := t.nodes.get(string(rest))
	leaf.setValue(value)
	n.addChild(leaf)
	return true
}

// split shortens the segment of n to its first at bytes. The tail of the
// segment moves to a new child, together with n's value and children.
// Afterwards n is non-terminal and has exactly one child, which the caller
// must immediately repair by either making n terminal or adding a second child.
func (t *Tree[V]) split(n *node[V], at int) {
	tail := t.nodes.get(n.segment[at:])
	tail.value, tail.terminal, tail.edges = n.value, n.terminal, n.edges
	CT().Debugf("radix: split %q into %q + %q", n.segment, n.segment[:at], tail.segment)
	n.segment = n.segment[:at]
	n.edges = nil
	n.clearValue()
	n.addChild(tail)
}

// Search returns the value stored for key. The boolean result is false if key
// is not present.
func (t *Tree[V]) Search(key []byte) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	n := t.find(key)
	if n == nil || !n.terminal {
		return zero, false
	}
	return n.value, true
}

// Contains reports whether key is present.
func (t *Tree[V]) Contains(key []byte) bool {
	_, ok := t.Search(key)
	return ok
}

// find returns the node whose path spells key, or nil. The node returned is
// not necessarily terminal.
func (t *Tree[V]) find(key []byte) *node[V] {
	n := t.root
	for {
		common := commonPrefixLen(n.segment, key)
		if common < len(n.segment) {
			return nil
		}
		key = key[common:]
		if len(key) == 0 {
			return n
		}
		if _, n = n.child(key[0]); n == nil {
			return nil
		}
	}
}

// Delete removes key from the tree. It returns true if key has been present.
func (t *Tree[V]) Delete(key []byte) bool {
	if t == nil {
		return false
	}
	_, deleted := t.delete(t.root, key)
	if deleted {
		t.size--
	}
	return deleted
}

// delete removes the remaining suffix key below n. It returns the node
// replacing n in its parent, which is nil if n has been pruned, and whether
// the key has been found.
//
// Nodes are repaired on the way back up: a child's removal may leave its
// parent with a single child or none at all.
func (t *Tree[V]) delete(n *node[V], key []byte) (*node[V], bool) {
	common := commonPrefixLen(n.segment, key)
	if common < len(n.segment) {
		return n, false
	}
	rest := key[common:]
	if len(rest) == 0 {
		if !n.terminal {
			return n, false
		}
		n.clearValue()
		return t.repair(n), true
	}
	label := rest[0]
	i, child := n.child(label)
	if child == nil {
		return n, false
	}
	replacement, deleted := t.delete(child, rest)
	if !deleted {
		return n, false
	}
	if replacement == nil {
		n.removeChild(label)
	} else {
		n.edges[i].node = replacement
	}
	return t.repair(n), true
}

// repair restores the compression invariant for a non-terminal node n.
// A childless node is pruned, a node with a single child absorbs it.
// The root is exempt from both.
func (t *Tree[V]) repair(n *node[V]) *node[V] {
	if n == t.root || n.terminal {
		return n
	}
	switch len(n.edges) {
	case 0:
		CT().Debugf("radix: prune %q", n.segment)
		t.nodes.put(n)
		return nil
	case 1:
		t.merge(n)
	}
	return n
}

// merge concatenates n's segment with that of its only child and adopts the
// child's value and children. The child is released.
func (t *Tree[V]) merge(n *node[V]) {
	child := n.edges[0].node
	CT().Debugf("radix: merge %q with %q", n.segment, child.segment)
	n.segment += child.segment
	n.value, n.terminal, n.edges = child.value, child.terminal, child.edges
	child.edges = nil
	t.nodes.put(child)
}

// Clear removes all keys and releases every node of the tree.
func (t *Tree[V]) Clear() {
	if t == nil {
		return
	}
	for _, e := range t.root.edges {
		t.release(e.node)
	}
	t.root.edges = nil
	t.root.clearValue()
	t.size = 0
}

func (t *Tree[V]) release(n *node[V]) {
	for _, e := range n.edges {
		t.release(e.node)
	}
	t.nodes.put(n)
}

package radix

import "sort"

// edge links a node to one of its children. The label is the first byte of
// the child's segment.
type edge[V any] struct {
	label byte
	node  *node[V]
}

// node is a single segment of the tree. The concatenation of all segments
// from the root down to a node spells the key of that node.
//
// Edges are kept sorted by label; there is at most one edge per label.
type node[V any] struct {
	segment  string
	value    V
	terminal bool
	edges    []edge[V]
}

// child returns the position of the edge for label and the child it points to.
// If there is no such edge, the position is where it would have to be inserted
// and the child is nil.
func (n *node[V]) child(label byte) (int, *node[V]) {
	i := sort.Search(len(n.edges), func(i int) bool {
		return n.edges[i].label >= label
	})
	if i < len(n.edges) && n.edges[i].label == label {
		return i, n.edges[i].node
	}
	return i, nil
}

// addChild links c below n, replacing an existing child with the same label.
func (n *node[V]) addChild(c *node[V]) {
	label := c.segment[0]
	i, old := n.child(label)
	if old != nil {
		n.edges[i].node = c
		return
	}
	n.edges = append(n.edges, edge[V]{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = edge[V]{label: label, node: c}
}

// removeChild unlinks the child for label, if any.
func (n *node[V]) removeChild(label byte) {
	i, c := n.child(label)
	if c == nil {
		return
	}
	copy(n.edges[i:], n.edges[i+1:])
	n.edges[len(n.edges)-1] = edge[V]{}
	n.edges = n.edges[:len(n.edges)-1]
}

// setValue makes n terminal. It reports whether n has been non-terminal before.
func (n *node[V]) setValue(value V) bool {
	wasKey := n.terminal
	n.terminal = true
	n.value = value
	return !wasKey
}

func (n *node[V]) clearValue() {
	var zero V
	n.terminal = false
	n.value = zero
}

func (n *node[V]) reset() {
	n.segment = ""
	n.clearValue()
	n.edges = nil
}

// commonPrefixLen returns the length of the longest common prefix of a
// segment and a key.
func commonPrefixLen(segment string, key []byte) int {
	max := len(segment)
	if l := len(key); l < max {
		max = l
	}
	var i int
	for i = 0; i < max; i++ {
		if segment[i] != key[i] {
			break
		}
	}
	return i
}

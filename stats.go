package radix

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned by Verify if the tree structure violates one of the
// tree invariants.
var ErrCorrupt = errors.New("radix: tree structure corrupt")

// Stats holds statistics about a tree.
type Stats struct {
	Nodes         int // total number of nodes, including the root
	TerminalNodes int // nodes carrying a key
	MaxDepth      int // depth of the deepest node; the root has depth 0
	Keys          int // number of keys as counted by the tree
	PooledNodes   int // nodes currently borrowed from the tree's node pool
}

// Stats walks the tree and collects statistics.
func (t *Tree[V]) Stats() Stats {
	var stats Stats
	if t == nil {
		return stats
	}
	t.collectStats(t.root, 0, &stats)
	stats.Keys = t.size
	stats.PooledNodes = t.nodes.active()
	return stats
}

func (t *Tree[V]) collectStats(n *node[V], depth int, stats *Stats) {
	stats.Nodes++
	if n.terminal {
		stats.TerminalNodes++
	}
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for _, e := range n.edges {
		t.collectStats(e.node, depth+1, stats)
	}
}

// Verify walks the tree and checks its structural invariants:
//
//   - the root's segment is empty, every other segment is not
//   - every edge's label is the first byte of the child's segment,
//     and labels are strictly ascending
//   - every non-root node with fewer than two children is terminal
//   - the number of terminal nodes equals Len()
//
// It returns an error wrapping ErrCorrupt for the first violation found.
func (t *Tree[V]) Verify() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupt)
	}
	if t.root.segment != "" {
		return fmt.Errorf("%w: root has segment %q", ErrCorrupt, t.root.segment)
	}
	keys, err := t.verify(t.root, nil)
	if err != nil {
		return err
	}
	if keys != t.size {
		return fmt.Errorf("%w: %d terminal nodes, size is %d", ErrCorrupt, keys, t.size)
	}
	return nil
}

func (t *Tree[V]) verify(n *node[V], path []byte) (int, error) {
	path = concat(path, n.segment)
	if n != t.root {
		if n.segment == "" {
			return 0, fmt.Errorf("%w: empty segment below %q", ErrCorrupt, path)
		}
		if !n.terminal && len(n.edges) < 2 {
			return 0, fmt.Errorf("%w: non-terminal node %q has %d children",
				ErrCorrupt, path, len(n.edges))
		}
	}
	keys := 0
	if n.terminal {
		keys++
	}
	for i, e := range n.edges {
		if e.node == nil {
			return 0, fmt.Errorf("%w: nil child at %q", ErrCorrupt, path)
		}
		if e.node.segment == "" || e.node.segment[0] != e.label {
			return 0, fmt.Errorf("%w: edge %#x at %q does not match segment %q",
				ErrCorrupt, e.label, path, e.node.segment)
		}
		if i > 0 && n.edges[i-1].label >= e.label {
			return 0, fmt.Errorf("%w: edges at %q out of order", ErrCorrupt, path)
		}
		k, err := t.verify(e.node, path)
		if err != nil {
			return 0, err
		}
		keys += k
	}
	return keys, nil
}

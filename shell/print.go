package shell

import (
	"fmt"
	"io"

	"github.com/npillmayer/radix"
)

// Print writes an indented dump of the structure of tree to w, one node
// per line. Terminal nodes show their full key and value, internal nodes
// their segment.
func Print[V any](w io.Writer, tree *radix.Tree[V]) {
	if tree == nil {
		return
	}
	fmt.Fprintf(w, "Radix tree (size: %d):\n", tree.Len())
	printSegment(w, tree.Root(), nil, 0)
}

func printSegment[V any](w io.Writer, s radix.Segment[V], prefix []byte, depth int) {
	path := append(prefix[:len(prefix):len(prefix)], s.String()...)
	for i := 0; i < depth; i++ {
		io.WriteString(w, "  ")
	}
	if v, ok := s.Value(); ok {
		fmt.Fprintf(w, "'%s' -> %v (terminal)\n", path, v)
	} else {
		fmt.Fprintf(w, "'%s' (internal)\n", s.String())
	}
	for _, child := range s.Children() {
		printSegment(w, child, path, depth+1)
	}
}

// List writes all keys of tree in traversal order, one per line.
func List[V any](w io.Writer, tree *radix.Tree[V]) {
	for key, value := range tree.All() {
		fmt.Fprintf(w, "Key: '%s', Value: %v\n", key, value)
	}
}

// Demo runs a scripted session on a fresh tree, writing a protocol to w.
func Demo(w io.Writer) {
	tree := radix.New[int]()
	defer tree.Clear()
	keys := []string{"hello", "help", "hell", "world", "word", "work", "test", "testing", "tea", "team"}
	fmt.Fprint(w, "=== Radix Tree Test ===\n\n")
	fmt.Fprintln(w, "Inserting keys:")
	for i, key := range keys {
		fmt.Fprintf(w, "Insert '%s': %s\n", key, outcome(tree.Insert([]byte(key), i+1)))
	}
	fmt.Fprintln(w)
	Print(w, tree)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Searching for keys:")
	for _, key := range keys {
		if v, ok := tree.Search([]byte(key)); ok {
			fmt.Fprintf(w, "Search '%s': FOUND (value: %d)\n", key, v)
		} else {
			fmt.Fprintf(w, "Search '%s': NOT FOUND\n", key)
		}
	}
	if tree.Contains([]byte("nonexistent")) {
		fmt.Fprintln(w, "Search 'nonexistent': FOUND")
	} else {
		fmt.Fprintln(w, "Search 'nonexistent': NOT FOUND")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tree traversal:")
	List(w, tree)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Deleting keys:")
	for _, key := range []string{"help", "test", "word"} {
		fmt.Fprintf(w, "Delete '%s': %s\n", key, outcome(tree.Delete([]byte(key))))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tree after deletion:")
	Print(w, tree)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Final tree traversal:")
	List(w, tree)
	CT().Debugf("shell: demo done")
}

func outcome(ok bool) string {
	if ok {
		return "SUCCESS"
	}
	return "FAILED"
}

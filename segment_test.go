package radix

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRootSegment(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := fill(t, []string{"world", "hell", "hello", "help"})
	root := tree.Root()
	if !root.IsValid() || root.String() != "" || len(root.Bytes()) != 0 {
		t.Errorf("expected valid root with empty segment")
	}
	if root.IsTerminal() {
		t.Error("root should not be terminal")
	}
	if root.NumChildren() != 2 {
		t.Fatalf("expected root to have 2 children, has %d", root.NumChildren())
	}
	b, hel := root.Child(0)
	if b != 'h' || hel.String() != "hel" || hel.IsTerminal() {
		t.Errorf("expected first child 'hel' on branch 'h', have %q on %q", hel.String(), b)
	}
	if _, ok := hel.Value(); ok {
		t.Error("internal segment should not have a value")
	}
	var labels []byte
	for label, child := range hel.Children() {
		labels = append(labels, label)
		if child.String()[0] != label {
			t.Errorf("branch byte %q does not match segment %q", label, child.String())
		}
	}
	if string(labels) != "lp" {
		t.Errorf("expected children of 'hel' on branches \"lp\", have %q", labels)
	}
	_, world := root.Child(1)
	if v, ok := world.Value(); !ok || v != 1 {
		t.Errorf("expected 'world' to carry value 1, has %d (%v)", v, ok)
	}
}

func TestZeroSegment(t *testing.T) {
	var s Segment[int]
	if s.IsValid() || s.IsTerminal() || s.NumChildren() != 0 || s.Bytes() != nil {
		t.Error("zero segment should be empty and invalid")
	}
	for range s.Children() {
		t.Error("zero segment should have no children")
	}
}

func TestStats(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := fill(t, []string{"hell", "hello", "help"})
	st := tree.Stats()
	expected := Stats{Nodes: 5, TerminalNodes: 3, MaxDepth: 3, Keys: 3, PooledNodes: 5}
	if st != expected {
		t.Errorf("expected %+v, have %+v", expected, st)
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := fill(t, []string{"hell", "hello", "help"})
	hel := tree.root.edges[0].node
	hel.edges = hel.edges[:1] // drop 'p' behind the tree's back
	if err := tree.Verify(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected corruption to be detected, have %v", err)
	} else {
		t.Logf("detected: %v", err)
	}
	tree = fill(t, []string{"a"})
	tree.size = 5
	if err := tree.Verify(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected size mismatch to be detected, have %v", err)
	}
	tree = fill(t, []string{"a", "b"})
	tree.root.edges[0].label = 'z'
	if err := tree.Verify(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected bad branch byte to be detected, have %v", err)
	}
}

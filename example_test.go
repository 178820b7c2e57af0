package radix_test

import (
	"fmt"

	"github.com/npillmayer/radix"
)

func ExampleTree() {
	tree := radix.New[int]()
	tree.Insert([]byte("hello"), 1)
	tree.Insert([]byte("help"), 2)
	tree.Insert([]byte("hell"), 3)
	tree.Insert([]byte("hello"), 4) // overwrite
	if v, ok := tree.Search([]byte("hello")); ok {
		fmt.Printf("hello → %d\n", v)
	}
	_, ok := tree.Search([]byte("hel"))
	fmt.Printf("hel found: %v\n", ok)
	tree.Delete([]byte("help"))
	for key, value := range tree.All() {
		fmt.Printf("%s = %d\n", key, value)
	}
	fmt.Printf("%d keys\n", tree.Len())
	// Output:
	// hello → 4
	// hel found: false
	// hell = 3
	// hello = 4
	// 2 keys
}

func ExampleSegment() {
	tree := radix.New[bool]()
	for _, w := range []string{"team", "tea", "test"} {
		tree.Insert([]byte(w), true)
	}
	var show func(s radix.Segment[bool], depth int)
	show = func(s radix.Segment[bool], depth int) {
		mark := ""
		if s.IsTerminal() {
			mark = " *"
		}
		fmt.Printf("%*s%q%s\n", 2*depth, "", s.String(), mark)
		for _, child := range s.Children() {
			show(child, depth+1)
		}
	}
	show(tree.Root(), 0)
	// Output:
	// ""
	//   "te"
	//     "a" *
	//       "m" *
	//     "st" *
}

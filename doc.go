/*
Package radix implements a compressed trie (radix tree), an ordered,
prefix-compressed index from byte-string keys to values.

Description

A radix tree stores keys as paths of segments. Every node holds the part of a
key not already spelled out by its ancestors, and a node is marked terminal
if the path from the root down to it spells a key present in the index.
Chains of nodes without branching are compressed into a single node:

	(root)
	 ├─ "hel"
	 │   ├─ "l"       → 3   hell
	 │   │   └─ "o"   → 1   hello
	 │   └─ "p"       → 2   help
	 └─ "world"       → 4   world

Insertion may split a node when a new key diverges from it in the middle
of its segment; deletion merges a node with its only remaining child when the
node itself no longer carries a key. After every operation the following
holds:

	- every non-root node with fewer than two children is terminal
	- the segments on the path to a terminal node spell its key
	- children of a node differ in the first byte of their segments
	- the root's segment is empty

Lookups, insertions and deletions are O(k) for a key of length k,
independent of the number of keys stored. Keys are treated as opaque byte
sequences, there is no Unicode awareness.

Typical Usage

	tree := radix.New[int]()
	tree.Insert([]byte("hello"), 1)
	tree.Insert([]byte("help"), 2)
	if v, ok := tree.Search([]byte("help")); ok {
	    ...
	}
	for key, value := range tree.All() {
	    ...
	}
	tree.Delete([]byte("hello"))

Trees are not safe for concurrent use. Clients needing concurrent access have
to guard a tree with a single lock, as splits and merges touch more than one
node.

Collaborators such as visualizers get read-only access to the structure by
calling Tree.Root and walking the Segments from there (see sub-package dot).

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package radix

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

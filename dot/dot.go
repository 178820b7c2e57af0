/*
Package dot exports the structure of a radix tree in the DOT language of
Graphviz (https://graphviz.org).

Every node of the tree becomes a record-shaped DOT node. The root is labeled
ROOT; other nodes show their segment together with the full key (terminal
nodes, green) or the path prefix they represent (internal nodes, yellow).
Edges are labeled with the branch byte leading to the child.

	f, _ := os.Create("radix.dot")
	defer f.Close()
	err := dot.Export(f, tree)

Render with

	dot -Tsvg radix.dot > radix.svg

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
package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/radix"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrNilTree is returned when exporting a nil tree.
var ErrNilTree = errors.New("dot: cannot export nil tree")

type options struct {
	graphName string
	rankDir   string
	fontName  string
}

// Option configures the DOT output.
type Option func(*options)

// WithGraphName sets the name of the digraph. Default is "RadixTree".
func WithGraphName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.graphName = name
		}
	}
}

// WithRankDir sets the Graphviz rank direction, e.g. "TB" or "LR".
func WithRankDir(dir string) Option {
	return func(o *options) {
		if dir != "" {
			o.rankDir = dir
		}
	}
}

// WithFontName sets the font for node and edge labels.
func WithFontName(font string) Option {
	return func(o *options) {
		if font != "" {
			o.fontName = font
		}
	}
}

// Export writes tree as a DOT digraph to w.
func Export[V any](w io.Writer, tree *radix.Tree[V], opts ...Option) error {
	if tree == nil {
		return ErrNilTree
	}
	o := options{graphName: "RadixTree", rankDir: "TB", fontName: "Arial"}
	for _, opt := range opts {
		opt(&o)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", quoteID(o.graphName))
	fmt.Fprintf(bw, "    rankdir=%s;\n", o.rankDir)
	fmt.Fprintf(bw, "    node [shape=record, fontname=\"%s\", fontsize=10];\n", escape(o.fontName))
	fmt.Fprintf(bw, "    edge [fontname=\"%s\", fontsize=8];\n", escape(o.fontName))
	fmt.Fprintln(bw)
	ex := exporter[V]{w: bw}
	ex.node(tree.Root(), nil)
	fmt.Fprintln(bw, "}")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dot: export failed: %w", err)
	}
	CT().Debugf("dot: exported %d nodes", ex.next)
	return nil
}

// WriteFile exports tree to a file, creating or truncating it.
func WriteFile[V any](filename string, tree *radix.Tree[V], opts ...Option) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dot: %w", cerr)
		}
	}()
	if err = Export(f, tree, opts...); err != nil {
		return err
	}
	CT().Infof("dot: tree exported to %s", filename)
	return nil
}

// exporter numbers nodes in the order they are written.
type exporter[V any] struct {
	w    *bufio.Writer
	next int
}

// node writes s and its subtree and returns the DOT id of s.
func (ex *exporter[V]) node(s radix.Segment[V], prefix []byte) int {
	id := ex.next
	ex.next++
	path := append(prefix[:len(prefix):len(prefix)], s.String()...)
	switch {
	case id == 0 && s.IsTerminal():
		fmt.Fprintf(ex.w, "    node%d [label=\"{ROOT|key}\", style=filled, fillcolor=lightblue];\n", id)
	case id == 0:
		fmt.Fprintf(ex.w, "    node%d [label=\"ROOT\", style=filled, fillcolor=lightgray];\n", id)
	case s.IsTerminal():
		fmt.Fprintf(ex.w, "    node%d [label=\"{%s|key: %s}\", style=filled, fillcolor=lightgreen];\n",
			id, escape(s.String()), escape(string(path)))
	default:
		fmt.Fprintf(ex.w, "    node%d [label=\"{%s|prefix: %s}\", style=filled, fillcolor=lightyellow];\n",
			id, escape(s.String()), escape(string(path)))
	}
	for label, child := range s.Children() {
		childID := ex.node(child, path)
		fmt.Fprintf(ex.w, "    node%d -> node%d [label=\"%s\"];\n", id, childID, EdgeLabel(label))
	}
	return id
}

// EdgeLabel renders a branch byte for use inside a quoted DOT string.
// Printable ASCII is used literally (quote and backslash escaped), every other
// byte as a hexadecimal escape \xHH.
func EdgeLabel(b byte) string {
	switch {
	case b == '"' || b == '\\':
		return `\` + string(b)
	case b >= 0x20 && b <= 0x7e:
		return string(b)
	}
	return fmt.Sprintf(`\\x%02X`, b)
}

// escape prepares arbitrary key bytes for a quoted record label.
// Quote, backslash and the record metacharacters are escaped with a
// backslash, newline becomes \n, other non-printable bytes \xHH.
func escape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\' || c == '{' || c == '}' || c == '|' || c == '<' || c == '>':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\n':
			sb.WriteString(`\n`)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&sb, `\\x%02X`, c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func quoteID(name string) string {
	return `"` + escape(name) + `"`
}

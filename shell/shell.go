/*
Package shell implements a menu driven session on top of a radix tree
holding words. Values stored for the words are insertion sequence numbers.

The session reads one command per line:

	1  add a word
	2  search a word
	3  delete a word
	4  list all words
	5  print the tree structure
	6  export the tree to a Graphviz DOT file
	7  show statistics and verify the tree
	0  quit

Package shell also contains Demo, a scripted walkthrough exercising
insertion, search, traversal and deletion.

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
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/radix"
	"github.com/npillmayer/radix/dot"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultDotFile is the export target if none is configured.
const DefaultDotFile = "radix_tree.dot"

const menu = `
========================================
    RADIX TREE
========================================
1. Add word
2. Search word
3. Delete word
4. List words
5. Print tree
6. Export to Graphviz (.dot)
7. Statistics
0. Quit
========================================
Choose an option: `

// Shell is an interactive session on a word tree. It is not safe for
// concurrent use.
type Shell struct {
	tree    *radix.Tree[int]
	in      *bufio.Reader
	out     io.Writer
	seq     int
	dotFile string
	dotOpts []dot.Option
}

// Option configures a Shell.
type Option func(*Shell)

// WithDotFile sets the file option 6 exports to.
func WithDotFile(filename string) Option {
	return func(sh *Shell) {
		if filename != "" {
			sh.dotFile = filename
		}
	}
}

// WithDotOptions sets the options used for DOT export.
func WithDotOptions(opts ...dot.Option) Option {
	return func(sh *Shell) {
		sh.dotOpts = append(sh.dotOpts, opts...)
	}
}

// New creates a session on an empty tree, reading commands from in and
// writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Shell {
	sh := &Shell{
		tree:    radix.New[int](),
		in:      bufio.NewReader(in),
		out:     out,
		dotFile: DefaultDotFile,
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// Tree returns the tree the session operates on.
func (sh *Shell) Tree() *radix.Tree[int] {
	return sh.tree
}

// Run executes commands until the user quits, the input is exhausted or ctx
// is cancelled. Quit and end of input are not errors; cancellation returns
// ctx.Err().
func (sh *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			CT().Infof("shell: session cancelled")
			return err
		}
		fmt.Fprint(sh.out, menu)
		line, err := sh.readLine()
		if err == io.EOF {
			fmt.Fprintln(sh.out)
			return nil
		} else if err != nil {
			return fmt.Errorf("shell: %w", err)
		}
		option, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(sh.out, " Invalid input! Please enter a number.")
			continue
		}
		if option == 0 {
			fmt.Fprintln(sh.out, "\n Exiting...")
			return nil
		}
		if err = sh.execute(option); err == io.EOF {
			fmt.Fprintln(sh.out)
			return nil
		} else if err != nil {
			return fmt.Errorf("shell: %w", err)
		}
	}
}

// execute runs a single menu option. Only read errors are returned.
func (sh *Shell) execute(option int) error {
	CT().Debugf("shell: option %d", option)
	switch option {
	case 1:
		fmt.Fprintln(sh.out, "\n--- ADD WORD ---")
		word, err := sh.readWord("Enter word: ")
		if err != nil || word == "" {
			return err
		}
		sh.add(word)
	case 2:
		fmt.Fprintln(sh.out, "\n--- SEARCH WORD ---")
		word, err := sh.readWord("Enter word to search: ")
		if err != nil || word == "" {
			return err
		}
		if seq, ok := sh.tree.Search([]byte(word)); ok {
			fmt.Fprintf(sh.out, "Word '%s' found (#%d)\n", word, seq)
		} else {
			fmt.Fprintf(sh.out, "Word '%s' not found.\n", word)
		}
	case 3:
		fmt.Fprintln(sh.out, "\n--- DELETE WORD ---")
		word, err := sh.readWord("Enter word to delete: ")
		if err != nil || word == "" {
			return err
		}
		if sh.tree.Delete([]byte(word)) {
			fmt.Fprintf(sh.out, "Word '%s' removed.\n", word)
			fmt.Fprintf(sh.out, "Total words: %d\n", sh.tree.Len())
		} else {
			fmt.Fprintf(sh.out, "Word '%s' not found.\n", word)
		}
	case 4:
		fmt.Fprintln(sh.out, "\n--- WORDS ---")
		List(sh.out, sh.tree)
	case 5:
		fmt.Fprintln(sh.out, "\n--- TREE ---")
		Print(sh.out, sh.tree)
	case 6:
		fmt.Fprintln(sh.out, "\n--- EXPORT TO GRAPHVIZ ---")
		sh.export()
	case 7:
		fmt.Fprintln(sh.out, "\n--- STATISTICS ---")
		sh.stats()
	default:
		fmt.Fprintln(sh.out, " Invalid option")
	}
	return nil
}

func (sh *Shell) add(word string) {
	if sh.tree.Contains([]byte(word)) {
		fmt.Fprintf(sh.out, "Word '%s' already present\n", word)
		return
	}
	sh.seq++
	sh.tree.Insert([]byte(word), sh.seq)
	fmt.Fprintf(sh.out, "Word '%s' added.\n", word)
	fmt.Fprintf(sh.out, "Total words: %d\n", sh.tree.Len())
}

func (sh *Shell) export() {
	if sh.tree.Len() == 0 {
		fmt.Fprintln(sh.out, "The dictionary is empty.")
		return
	}
	if err := dot.WriteFile(sh.dotFile, sh.tree, sh.dotOpts...); err != nil {
		CT().Errorf(err.Error())
		fmt.Fprintf(sh.out, " Error: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "Graphviz file exported to: %s\n", sh.dotFile)
}

func (sh *Shell) stats() {
	st := sh.tree.Stats()
	fmt.Fprintf(sh.out, "Words:          %d\n", st.Keys)
	fmt.Fprintf(sh.out, "Nodes:          %d\n", st.Nodes)
	fmt.Fprintf(sh.out, "Terminal nodes: %d\n", st.TerminalNodes)
	fmt.Fprintf(sh.out, "Max depth:      %d\n", st.MaxDepth)
	if err := sh.tree.Verify(); err != nil {
		fmt.Fprintf(sh.out, "Structure:      %v\n", err)
		return
	}
	fmt.Fprintln(sh.out, "Structure:      ok")
}

// readWord prompts for a word. An empty word is reported to the user and
// returned as "" without error.
func (sh *Shell) readWord(prompt string) (string, error) {
	fmt.Fprint(sh.out, prompt)
	word, err := sh.readLine()
	if err != nil {
		return "", err
	}
	if word == "" {
		fmt.Fprintln(sh.out, " Word must not be empty!")
	}
	return word, nil
}

// readLine reads a line with trailing newline and carriage return removed.
// A final line without newline is returned before io.EOF.
func (sh *Shell) readLine() (string, error) {
	line, err := sh.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

package dot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/radix"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(words ...string) *radix.Tree[int] {
	t := radix.New[int]()
	for i, w := range words {
		t.Insert([]byte(w), i+1)
	}
	return t
}

func TestExport(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	if err := Export(&buf, tree("hell", "hello", "help")); err != nil {
		t.Fatal(err)
	}
	expected := `digraph "RadixTree" {
    rankdir=TB;
    node [shape=record, fontname="Arial", fontsize=10];
    edge [fontname="Arial", fontsize=8];

    node0 [label="ROOT", style=filled, fillcolor=lightgray];
    node1 [label="{hel|prefix: hel}", style=filled, fillcolor=lightyellow];
    node2 [label="{l|key: hell}", style=filled, fillcolor=lightgreen];
    node3 [label="{o|key: hello}", style=filled, fillcolor=lightgreen];
    node2 -> node3 [label="o"];
    node1 -> node2 [label="l"];
    node4 [label="{p|key: help}", style=filled, fillcolor=lightgreen];
    node1 -> node4 [label="p"];
    node0 -> node1 [label="h"];
}
`
	if buf.String() != expected {
		t.Errorf("unexpected DOT output:\n%s", buf.String())
	}
}

func TestExportEmptyTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Export(&buf, radix.New[int]()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `node0 [label="ROOT", style=filled, fillcolor=lightgray];`) {
		t.Errorf("expected a single gray root node, have\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "->") {
		t.Error("empty tree should have no edges")
	}
	tr := radix.New[int]()
	tr.Insert(nil, 1)
	buf.Reset()
	if err := Export(&buf, tr); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `node0 [label="{ROOT|key}", style=filled, fillcolor=lightblue];`) {
		t.Errorf("expected a blue root carrying the empty key, have\n%s", buf.String())
	}
}

func TestExportOptions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var buf bytes.Buffer
	err := Export(&buf, tree("a"), WithGraphName("Words"), WithRankDir("LR"), WithFontName("Courier"))
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `digraph "Words" {`))
	assert.Contains(t, out, "rankdir=LR;")
	assert.Contains(t, out, `fontname="Courier"`)
	assert.Contains(t, out, `node0 -> node1 [label="a"];`)
}

func TestEscaping(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	assert.Equal(t, `say \"hi\"`, escape(`say "hi"`))
	assert.Equal(t, `a\\b`, escape(`a\b`))
	assert.Equal(t, `line\nbreak`, escape("line\nbreak"))
	assert.Equal(t, `\{x\|y\}\<z\>`, escape("{x|y}<z>"))
	assert.Equal(t, `nul\\x00`, escape("nul\x00"))
	assert.Equal(t, `\\xFF`, escape("\xff"))
	//
	assert.Equal(t, "a", EdgeLabel('a'))
	assert.Equal(t, " ", EdgeLabel(' '))
	assert.Equal(t, `\"`, EdgeLabel('"'))
	assert.Equal(t, `\\`, EdgeLabel('\\'))
	assert.Equal(t, `\\x0A`, EdgeLabel('\n'))
	assert.Equal(t, `\\x7F`, EdgeLabel(0x7f))
	assert.Equal(t, `\\xC3`, EdgeLabel(0xc3))
}

func TestExportEscapesKeys(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, tree("\"q\"", "\nx")))
	out := buf.String()
	assert.Contains(t, out, `[label="{\"q\"|key: \"q\"}"`)
	assert.Contains(t, out, `[label="{\nx|key: \nx}"`)
	assert.Contains(t, out, `[label="\\x0A"];`)
	assert.Contains(t, out, `[label="\""];`)
}

func TestExportNilTree(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var buf bytes.Buffer
	var tr *radix.Tree[int]
	assert.ErrorIs(t, Export(&buf, tr), ErrNilTree)
	assert.Zero(t, buf.Len())
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestExportWriteError(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	err := Export(failingWriter{}, tree("a", "b"))
	assert.ErrorIs(t, err, errWrite)
}

func TestWriteFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	filename := filepath.Join(t.TempDir(), "radix.dot")
	require.NoError(t, WriteFile(filename, tree("tea", "team")))
	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(content), `{m|key: team}`)
	assert.True(t, strings.HasSuffix(string(content), "}\n"))
	//
	err = WriteFile(filepath.Join(t.TempDir(), "missing", "radix.dot"), tree("a"))
	assert.Error(t, err)
}

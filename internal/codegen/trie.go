package codegen

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NameIndex pairs one palette color name with its declaration-order slot.
type NameIndex struct {
	Name  string
	Index int
}

type trieNode struct {
	index    int // terminal slot index, -1 when no name ends here
	count    int // names in this subtree
	children []trieEdge
}

type trieEdge struct {
	b    byte
	node *trieNode
}

func (n *trieNode) child(b byte) *trieNode {
	for _, edge := range n.children {
		if edge.b == b {
			return edge.node
		}
	}
	return nil
}

func (n *trieNode) ensureChild(b byte) *trieNode {
	if existing := n.child(b); existing != nil {
		return existing
	}
	node := &trieNode{index: -1}
	n.children = append(n.children, trieEdge{b: b, node: node})
	sort.Slice(n.children, func(i, j int) bool { return n.children[i].b < n.children[j].b })
	return node
}

// DispatchTable is a compiled name-to-slot trie. Building and code emission
// are separate passes so lookups can be exercised without going through
// generated text.
type DispatchTable struct {
	root *trieNode
}

// NewDispatchTable builds the trie over the given pairs. Names must be
// unique; a duplicate is a module-consistency failure that must have been
// rejected upstream, so it is reported rather than silently reindexed.
func NewDispatchTable(pairs []NameIndex) (*DispatchTable, error) {
	root := &trieNode{index: -1}
	for _, pair := range pairs {
		node := root
		node.count++
		for i := 0; i < len(pair.Name); i++ {
			node = node.ensureChild(pair.Name[i])
			node.count++
		}
		if node.index >= 0 {
			return nil, fmt.Errorf("duplicate palette name %q", pair.Name)
		}
		node.index = pair.Index
	}
	return &DispatchTable{root: root}, nil
}

// Lookup resolves a name to its slot index, or -1 when the exact byte
// sequence is not in the set.
func (t *DispatchTable) Lookup(name []byte) int {
	node := t.root
	for _, b := range name {
		node = node.child(b)
		if node == nil {
			return -1
		}
	}
	return node.index
}

// Compile emits the trie as a Go function `funcName(name []byte) int`
// returning the slot index or -1. Shared prefixes become nested switches on
// the next differentiating byte; where a single name remains, a length check
// plus an exact suffix compare terminates the path.
func (t *DispatchTable) Compile(funcName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "func %s(name []byte) int {\n", funcName)
	b.WriteString("\tsize := len(name)\n")
	t.compileNode(&b, t.root, 0, 1)
	b.WriteString("\treturn -1\n")
	b.WriteString("}\n")
	return b.String()
}

func (t *DispatchTable) compileNode(b *strings.Builder, node *trieNode, depth, indent int) {
	tabs := strings.Repeat("\t", indent)

	if node.index >= 0 {
		fmt.Fprintf(b, "%sif size == %d {\n%s\treturn %d\n%s}\n", tabs, depth, tabs, node.index, tabs)
	}

	if node.index < 0 && node.count == 1 {
		// A single name remains; compare the rest in one shot.
		suffix, index := singlePath(node)
		fmt.Fprintf(b, "%sif size == %d && string(name[%d:]) == %s {\n%s\treturn %d\n%s}\n",
			tabs, depth+len(suffix), depth, strconv.Quote(suffix), tabs, index, tabs)
		return
	}

	if len(node.children) == 0 {
		return
	}

	fmt.Fprintf(b, "%sif size > %d {\n%s\tswitch name[%d] {\n", tabs, depth, tabs, depth)
	for _, edge := range node.children {
		fmt.Fprintf(b, "%s\tcase %s:\n", tabs, quoteByte(edge.b))
		t.compileNode(b, edge.node, depth+1, indent+2)
	}
	fmt.Fprintf(b, "%s\t}\n%s}\n", tabs, tabs)
}

// singlePath walks the unique remaining chain and returns the suffix bytes
// plus the terminal index.
func singlePath(node *trieNode) (string, int) {
	var suffix []byte
	for node.index < 0 {
		edge := node.children[0]
		suffix = append(suffix, edge.b)
		node = edge.node
	}
	return string(suffix), node.index
}

func quoteByte(b byte) string {
	if b >= ' ' && b <= '~' && b != '\'' && b != '\\' {
		return "'" + string(b) + "'"
	}
	return fmt.Sprintf("0x%02x", b)
}

package catalog

import "sort"

// Kind distinguishes dictionary leaves from nested branches.
type Kind uint8

const (
	// KindLeaf holds a translated string.
	KindLeaf Kind = iota + 1
	// KindBranch holds named children.
	KindBranch
)

// Node is one element of a locale dictionary tree. Nodes are immutable
// once built.
type Node struct {
	kind     Kind
	text     string
	children map[string]*Node
}

// Leaf builds a leaf node.
func Leaf(text string) *Node {
	return &Node{kind: KindLeaf, text: text}
}

// Branch builds a branch node. The map is copied.
func Branch(children map[string]*Node) *Node {
	copied := make(map[string]*Node, len(children))
	for key, child := range children {
		copied[key] = child
	}
	return &Node{kind: KindBranch, children: copied}
}

// Kind returns the node kind; zero for a nil node.
func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.kind
}

// Text returns the leaf text. It reports false for branches.
func (n *Node) Text() (string, bool) {
	if n == nil || n.kind != KindLeaf {
		return "", false
	}
	return n.text, true
}

// Child returns the named child of a branch. Leaves have no children.
func (n *Node) Child(segment string) (*Node, bool) {
	if n == nil || n.kind != KindBranch {
		return nil, false
	}
	child, ok := n.children[segment]
	if !ok || child == nil {
		return nil, false
	}
	return child, true
}

// Keys returns the sorted child names of a branch.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindBranch {
		return nil
	}
	out := make([]string, 0, len(n.children))
	for key := range n.children {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// Paths returns every dotted leaf path under n, sorted.
func (n *Node) Paths() []string {
	var out []string
	collectPaths(n, "", &out)
	sort.Strings(out)
	return out
}

func collectPaths(n *Node, prefix string, out *[]string) {
	switch n.Kind() {
	case KindLeaf:
		if prefix != "" {
			*out = append(*out, prefix)
		}
	case KindBranch:
		for _, key := range n.Keys() {
			child, _ := n.Child(key)
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			collectPaths(child, path, out)
		}
	}
}

// Package tree builds the directory namespace of an archive and records which
// folders hold the files of each directory.
//
// Nodes reference folders by index only; the folders themselves belong to the
// database the tree was built from.
package tree

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/meigma/szdb/internal/dbtype"
	"github.com/meigma/szdb/internal/pathutil"
)

// Node is one directory level.
type Node struct {
	key      string
	children []*Node
	blocks   *roaring.Bitmap
}

func newNode(key string) *Node {
	return &Node{key: key, blocks: roaring.New()}
}

// Key returns the path segment of the node.
func (n *Node) Key() string { return n.key }

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node { return n.children }

// Blocks returns the folder indices attached to the node in ascending order.
func (n *Node) Blocks() []uint32 { return n.blocks.ToArray() }

// NumBlocks returns the number of distinct folders attached to the node.
func (n *Node) NumBlocks() int { return int(n.blocks.GetCardinality()) }

// HasBlock reports whether folder index block is attached to the node.
func (n *Node) HasBlock(block uint32) bool { return n.blocks.Contains(block) }

func (n *Node) isEmpty() bool { return n.key == "" }

// child returns the child with the given key. Lookup is an exact,
// case-sensitive linear scan returning the first match.
func (n *Node) child(key string) *Node {
	for _, c := range n.children {
		if c.key == key {
			return c
		}
	}
	return nil
}

// addSimple returns the node for key one level below n. An empty node takes
// the key itself instead of growing a child.
func (n *Node) addSimple(key string) *Node {
	if n.isEmpty() {
		n.key = key
		return n
	}
	if c := n.child(key); c != nil {
		return c
	}
	c := newNode(key)
	n.children = append(n.children, c)
	return c
}

// Tree is a directory namespace rooted at a single node.
type Tree struct {
	root *Node
}

// New returns a tree whose root carries rootKey. With an empty rootKey the
// first inserted segment becomes the root's key.
func New(rootKey string) *Tree {
	return &Tree{root: newNode(rootKey)}
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// EnsurePath walks path from the root, creating missing nodes, and returns
// the deepest node.
func (t *Tree) EnsurePath(path string) *Node {
	leaf := t.root
	for seg := range pathutil.Segments(path) {
		leaf = leaf.addSimple(seg)
	}
	return leaf
}

// FindRelative walks path from the root without creating nodes. It returns
// false if any segment is missing.
func (t *Tree) FindRelative(path string) (*Node, bool) {
	leaf := t.root
	for seg := range pathutil.Segments(path) {
		next := leaf.child(seg)
		if next == nil {
			return nil, false
		}
		leaf = next
	}
	return leaf, true
}

// AttachBlock records that node holds files of folder block.
// Attaching the same folder twice has no effect.
func (t *Tree) AttachBlock(node *Node, block uint32) {
	node.blocks.Add(block)
}

// Build creates a tree rooted at rootKey from the entries of db.
//
// Each entry contributes its directory: its own name for directories,
// otherwise its name without the final segment (rootKey when the name has no
// separator). Files attach their folder to that directory; files without a
// folder attach nothing. The database must be filled.
func Build(db *dbtype.Database, rootKey string) (*Tree, error) {
	if err := db.CheckDerived(); err != nil {
		return nil, err
	}
	t := New(rootKey)
	for i := range db.Files {
		e := &db.Files[i]
		dir := e.Name
		if !e.IsDir {
			dir = pathutil.Dir(e.Name, rootKey)
		}
		node := t.EnsurePath(dir)
		if e.IsDir {
			continue
		}
		if f := db.FileIndexToFolderIndexMap[i]; f != dbtype.NoIndex {
			t.AttachBlock(node, f)
		}
	}
	return t, nil
}

// Walk visits every node in pre-order with its depth (the root has depth 0).
// Walking stops early when fn returns false.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}

// Format renders the tree one node per line, indented by depth, with the
// number of attached folders.
func (t *Tree) Format() string {
	var sb strings.Builder
	t.Walk(func(n *Node, depth int) bool {
		fmt.Fprintf(&sb, "%s%s [%d blocks]\n", strings.Repeat(" ", depth), n.key, n.NumBlocks())
		return true
	})
	return sb.String()
}

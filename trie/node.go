package trie

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// terminator is the edge label marking the end of a word. Real labels are
// byte values 0…255, so the terminator sorts before all of them.
const terminator = -1

// node is a trie node. Children are kept in a tree map, ordered by edge label.
// A terminator edge does not point to a node; its value is nil.
type node struct {
	children *treemap.Map // int label -> *node
}

func newNode() *node {
	return &node{children: treemap.NewWith(utils.IntComparator)}
}

// child returns the child node for a byte label, or nil.
func (n *node) child(label byte) *node {
	if ch, found := n.children.Get(int(label)); found {
		return ch.(*node)
	}
	return nil
}

// childOrCreate returns the child node for a byte label, creating it if
// necessary.
func (n *node) childOrCreate(label byte) *node {
	if ch := n.child(label); ch != nil {
		return ch
	}
	ch := newNode()
	n.children.Put(int(label), ch)
	return ch
}

func (n *node) isWord() bool {
	_, found := n.children.Get(terminator)
	return found
}

// least returns the smallest label of n. n must not be empty.
func (n *node) least() int {
	k, _ := n.children.Min()
	return k.(int)
}

// after returns the smallest label greater than label, or false if there is
// none.
func (n *node) after(label int) (int, bool) {
	k, _ := n.children.Ceiling(label + 1)
	if k == nil {
		return 0, false
	}
	return k.(int), true
}

// String is a debug Stringer, listing the labels of the children.
func (n *node) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, k := range n.children.Keys() {
		if i > 0 {
			b.WriteString(" ")
		}
		if k.(int) == terminator {
			b.WriteString("#")
		} else {
			b.WriteString(fmt.Sprintf("%q", rune(k.(int))))
		}
	}
	b.WriteString("]")
	return b.String()
}

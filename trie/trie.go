package trie

import (
	"github.com/npillmayer/trieset"
)

// Trie is a set of strings, implemented as a character trie. The zero value
// is not usable, create tries with New.
type Trie struct {
	root *node
	size int
}

var _ trieset.Set = (*Trie)(nil)

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Size returns the number of strings in the set.
func (t *Trie) Size() int {
	return t.size
}

// Clear removes all strings from the set.
func (t *Trie) Clear() {
	t.root = newNode()
	t.size = 0
}

// find walks the bytes of s from the root. Returns the node reached, or nil
// if the path does not exist.
func (t *Trie) find(s string) *node {
	n := t.root
	for i := 0; i < len(s) && n != nil; i++ {
		n = n.child(s[i])
	}
	return n
}

// Contains is a predicate: is element in the set?
func (t *Trie) Contains(element string) bool {
	n := t.find(element)
	return n != nil && n.isWord()
}

// Add inserts a string into the set. Returns false if the string has
// already been present.
func (t *Trie) Add(element string) bool {
	n := t.root
	for i := 0; i < len(element); i++ {
		n = n.childOrCreate(element[i])
	}
	if n.isWord() {
		return false
	}
	n.children.Put(terminator, nil)
	t.size++
	tracer().Debugf("trie: added %q, size is %d", element, t.size)
	return true
}

// Remove deletes a string from the set. Returns false if the string has not
// been present.
//
// Only the end-of-word mark is deleted, inner nodes stay in place even if no
// other string uses them.
func (t *Trie) Remove(element string) bool {
	n := t.find(element)
	if n == nil || !n.isWord() {
		return false
	}
	n.children.Remove(terminator)
	t.size--
	tracer().Debugf("trie: removed %q, size is %d", element, t.size)
	return true
}

// Iterator returns a new lazy iterator, producing the strings of t in
// ascending order.
func (t *Trie) Iterator() trieset.Iterator {
	return NewIterator(t)
}

// Walk visits every node of the trie except the root, in pre-order with
// children in ascending label order. For each node it calls f with the
// edge label leading to the node, the depth of the node (1 for children of
// the root) and a flag telling whether the node ends a string of the set.
func (t *Trie) Walk(f func(label byte, depth int, word bool)) {
	walk(t.root, 1, f)
}

func walk(n *node, depth int, f func(byte, int, bool)) {
	n.children.Each(func(k, v interface{}) {
		if k.(int) == terminator {
			return
		}
		ch := v.(*node)
		f(byte(k.(int)), depth, ch.isWord())
		walk(ch, depth+1, f)
	})
}

// NodeCount returns the number of nodes of the trie, the root included.
// Nodes are never reclaimed by Remove, so this number will not decrease
// until the trie is cleared.
func (t *Trie) NodeCount() int {
	cnt := 1
	t.Walk(func(byte, int, bool) {
		cnt++
	})
	return cnt
}

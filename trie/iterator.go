package trie

import (
	"github.com/npillmayer/trieset"
)

// Iterator is a lazy iterator over a trie. It produces the strings of the
// trie in ascending order, computing always one string in advance.
//
// The iterator does not hold on to any nodes. Its position is the path from
// the root to the node currently examined, and every step re-walks this path
// from the root. After climbing back up out of a subtree, the label of the
// subtree is remembered to continue with the next sibling.
type Iterator struct {
	trie      *Trie
	prefix    []byte // path from the root to the node to examine
	risen     bool   // did we just climb up from a child?
	savedChar int    // label of the child we climbed up from
	exhausted bool
	next      string // buffered next string
	hasNext   bool
	last      string // string returned by the latest call to Next
	hasLast   bool   // false before first Next and after Remove
}

var _ trieset.Iterator = (*Iterator)(nil)

// NewIterator creates an iterator for t, positioned before the first string.
func NewIterator(t *Trie) *Iterator {
	it := &Iterator{
		trie:   t,
		prefix: make([]byte, 0, 16),
	}
	it.advance()
	return it
}

// HasNext is a predicate: will Next return another string?
func (it *Iterator) HasNext() bool {
	return it.hasNext
}

// Next returns the next string in ascending order. It returns
// trieset.ErrIterationExhausted if there is none.
func (it *Iterator) Next() (string, error) {
	if !it.hasNext {
		return "", trieset.ErrIterationExhausted
	}
	it.last, it.hasLast = it.next, true
	it.advance()
	return it.last, nil
}

// Remove deletes the string returned by the latest call to Next from the
// trie. It returns trieset.ErrNoCurrentElement if Next has not been called
// yet, or if the string has already been removed.
func (it *Iterator) Remove() error {
	if !it.hasLast {
		return trieset.ErrNoCurrentElement
	}
	it.hasLast = false
	it.trie.Remove(it.last)
	return nil
}

// advance moves to the next word of the trie and buffers it. Each round of
// the loop either descends to a child, yields a word, or climbs up one level.
func (it *Iterator) advance() {
	it.hasNext = false
	for !it.exhausted {
		n := it.trie.find(string(it.prefix))
		if n == nil || n.children.Empty() {
			// a leaf, or a path which vanished due to outside modification
			it.climb()
			continue
		}
		if it.risen {
			it.risen = false
			it.moveAfter(n, it.savedChar)
			continue
		}
		label := n.least()
		if label == terminator {
			it.next, it.hasNext = string(it.prefix), true
			it.moveAfter(n, terminator)
			tracer().Debugf("trie iterator: next is %q", it.next)
			return
		}
		it.prefix = append(it.prefix, byte(label))
	}
}

// moveAfter continues with the sibling following label, or climbs up if
// there is none.
func (it *Iterator) moveAfter(n *node, label int) {
	if sibling, ok := n.after(label); ok {
		it.prefix = append(it.prefix, byte(sibling))
		return
	}
	it.climb()
}

// climb moves up one level. Climbing up from the root ends the iteration.
func (it *Iterator) climb() {
	if len(it.prefix) == 0 {
		it.exhausted = true
		return
	}
	last := len(it.prefix) - 1
	it.savedChar = int(it.prefix[last])
	it.prefix = it.prefix[:last]
	it.risen = true
}

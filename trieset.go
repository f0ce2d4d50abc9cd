package trieset

import "errors"

// --- A general purpose interface for string sets ---------------------------

// Set is a mutable set of strings. Implementations are not safe for
// concurrent use.
type Set interface {
	Size() int
	Clear()
	Contains(element string) bool
	Add(element string) bool    // true iff element has not been present
	Remove(element string) bool // true iff element has been present
	Iterator() Iterator
}

// Iterator is a forward cursor over the elements of a set. It may be used
// like this:
//
//    it := set.Iterator()
//    for it.HasNext() {
//        s, _ := it.Next()
//        if strings.HasPrefix(s, "tmp") {
//            it.Remove()   // remove s from set
//        }
//    }
//
// A set must not be modified by anyone else but the iterator while the
// iterator is in use.
type Iterator interface {
	HasNext() bool
	Next() (string, error)
	Remove() error
}

// --- Errors ----------------------------------------------------------------

// Errors signalling an invalid state of an iterator or a set. These are
// violations of a usage contract and retrying will not help.
var (
	// ErrIterationExhausted is returned by Iterator.Next if no element is left.
	ErrIterationExhausted = errors.New("iteration exhausted")

	// ErrNoCurrentElement is returned by Iterator.Remove if Next has not been
	// called yet or the current element has already been removed.
	ErrNoCurrentElement = errors.New("no current element")

	// ErrTableFull is returned by fixed-capacity sets which cannot take
	// another element.
	ErrTableFull = errors.New("table is full")
)

// --- Helpers ---------------------------------------------------------------

// AddAll adds a couple of elements to a set and returns how many of them
// have not been present before.
func AddAll(s Set, elems ...string) int {
	cnt := 0
	for _, e := range elems {
		if s.Add(e) {
			cnt++
		}
	}
	return cnt
}

// Strings returns the elements of s in iteration order.
func Strings(s Set) []string {
	elems := make([]string, 0, s.Size())
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		elems = append(elems, e)
	}
	return elems
}

// RemoveIf removes every element of s for which pred is true. It returns
// the number of elements removed.
func RemoveIf(s Set, pred func(string) bool) int {
	cnt := 0
	it := s.Iterator()
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			break
		}
		if pred(e) && it.Remove() == nil {
			cnt++
		}
	}
	return cnt
}

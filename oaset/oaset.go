package oaset

import (
	"encoding/binary"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/trieset"
)

type slotState int8

const (
	free slotState = iota
	used
	tombstone
)

type slot struct {
	state slotState
	value string
}

// Set is a fixed-capacity hash set of strings. Create one with New.
type Set struct {
	slots []slot
	size  int
}

var _ trieset.Set = (*Set)(nil)

// New creates a set with room for 2^bits elements. bits has to be in 2…31.
func New(bits int) (*Set, error) {
	if bits < 2 || bits > 31 {
		return nil, fmt.Errorf("oaset: bit count %d out of range 2…31", bits)
	}
	return &Set{
		slots: make([]slot, 1<<bits),
	}, nil
}

// Capacity returns the maximum number of elements.
func (s *Set) Capacity() int {
	return len(s.slots)
}

// Size returns the number of elements in the set.
func (s *Set) Size() int {
	return s.size
}

// Clear removes all elements, tombstones included.
func (s *Set) Clear() {
	for i := range s.slots {
		s.slots[i] = slot{}
	}
	s.size = 0
}

// startingIndex is the table position where probing for element starts.
func (s *Set) startingIndex(element string) int {
	h := structhash.Md5(element, 1)
	return int(binary.BigEndian.Uint32(h[:4]) & (uint32(len(s.slots)) - 1))
}

// locate probes for element. It returns the index of element or -1, and
// the first re-usable slot of the probe sequence (or -1 if the table is
// completely occupied).
func (s *Set) locate(element string) (at int, vacant int) {
	vacant = -1
	capacity := len(s.slots)
	i := s.startingIndex(element)
	for probes := 0; probes < capacity; probes++ {
		switch sl := &s.slots[i]; sl.state {
		case free:
			if vacant < 0 {
				vacant = i
			}
			return -1, vacant
		case tombstone:
			if vacant < 0 {
				vacant = i
			}
		case used:
			if sl.value == element {
				return i, vacant
			}
		}
		i = (i + 1) & (capacity - 1)
	}
	return -1, vacant
}

// Contains is a predicate: is element in the set?
func (s *Set) Contains(element string) bool {
	at, _ := s.locate(element)
	return at >= 0
}

// TryAdd inserts element into the set. It returns false if element is
// already present, and trieset.ErrTableFull if there is no room left.
func (s *Set) TryAdd(element string) (bool, error) {
	at, vacant := s.locate(element)
	if at >= 0 {
		return false, nil
	}
	if vacant < 0 {
		return false, fmt.Errorf("oaset: cannot add %q: %w", element, trieset.ErrTableFull)
	}
	s.slots[vacant] = slot{state: used, value: element}
	s.size++
	return true, nil
}

// Add inserts element into the set and returns true if it has not been
// present before. If the table is full, Add logs an error and returns
// false. If configuration flag 'panic-on-table-full' is set, it will panic
// instead.
func (s *Set) Add(element string) bool {
	ok, err := s.TryAdd(element)
	if err != nil {
		tracer().Errorf("%v", err)
		if gconf.GetBool("panic-on-table-full") {
			panic(err)
		}
	}
	return ok
}

// Remove deletes element from the set, leaving a tombstone. Returns false
// if element has not been present.
func (s *Set) Remove(element string) bool {
	at, _ := s.locate(element)
	if at < 0 {
		return false
	}
	s.removeAt(at)
	return true
}

func (s *Set) removeAt(i int) {
	s.slots[i] = slot{state: tombstone}
	s.size--
}

// Iterator returns an iterator over the elements in table order.
func (s *Set) Iterator() trieset.Iterator {
	it := &Iterator{set: s, pos: -1, current: -1}
	it.advance()
	return it
}

// Iterator iterates over the elements of a Set in table order.
type Iterator struct {
	set     *Set
	pos     int // next occupied slot, or len(slots)
	current int // slot returned by the latest Next, or -1
}

// HasNext is a predicate: will Next return another element?
func (it *Iterator) HasNext() bool {
	return it.pos < len(it.set.slots)
}

// Next returns the next element or trieset.ErrIterationExhausted.
func (it *Iterator) Next() (string, error) {
	if !it.HasNext() {
		return "", trieset.ErrIterationExhausted
	}
	it.current = it.pos
	it.advance()
	return it.set.slots[it.current].value, nil
}

// Remove deletes the element returned by the latest call to Next.
func (it *Iterator) Remove() error {
	if it.current < 0 {
		return trieset.ErrNoCurrentElement
	}
	it.set.removeAt(it.current)
	it.current = -1
	return nil
}

func (it *Iterator) advance() {
	it.pos++
	for it.pos < len(it.set.slots) && it.set.slots[it.pos].state != used {
		it.pos++
	}
}

package main

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/trieset"
	"github.com/npillmayer/trieset/oaset"
	"github.com/npillmayer/trieset/trie"
)

// Kinds of sets a workspace is able to create.
const (
	TrieKind = "trie"
	HashKind = "hash"
)

// NamedSet is a set living in a workspace.
type NamedSet struct {
	Name string
	Kind string
	Set  trieset.Set
}

func (ns *NamedSet) String() string {
	return fmt.Sprintf("<%s set '%s' |%d|>", ns.Kind, ns.Name, ns.Set.Size())
}

// Workspace is a table of named sets (map-like semantics), remembering the
// order of definition. One of the sets is the current set, which commands
// operate on.
type Workspace struct {
	table   map[string]*NamedSet
	order   *arraylist.List // names in order of definition
	current *NamedSet
	bits    int // capacity exponent for hash sets
}

// NewWorkspace creates a workspace containing one trie-backed set called
// 'default', which is the current set.
func NewWorkspace(bits int) *Workspace {
	ws := &Workspace{
		table: make(map[string]*NamedSet),
		order: arraylist.New(),
		bits:  bits,
	}
	ws.current, _, _ = ws.Define("default", TrieKind)
	return ws
}

// Resolve finds a set by name. Returns nil if there is no such set.
func (ws *Workspace) Resolve(name string) *NamedSet {
	return ws.table[name]
}

// Define creates a new named set of a given kind. Overwrites an existing
// set with this name, if any. Returns the new set and the previously stored
// set (or nil).
func (ws *Workspace) Define(name, kind string) (*NamedSet, *NamedSet, error) {
	if name == "" {
		return nil, nil, fmt.Errorf("set name may not be empty")
	}
	var set trieset.Set
	switch kind {
	case TrieKind:
		set = trie.New()
	case HashKind:
		s, err := oaset.New(ws.bits)
		if err != nil {
			return nil, nil, err
		}
		set = s
	default:
		return nil, nil, fmt.Errorf("unknown kind of set: %q", kind)
	}
	ns := &NamedSet{Name: name, Kind: kind, Set: set}
	old := ws.table[name]
	ws.table[name] = ns
	if old == nil {
		ws.order.Add(name)
	} else if ws.current == old {
		ws.current = ns
	}
	tracer().Debugf("defined %v", ns)
	return ns, old, nil
}

// Use makes the set with the given name the current set.
func (ws *Workspace) Use(name string) (*NamedSet, error) {
	ns := ws.Resolve(name)
	if ns == nil {
		return nil, fmt.Errorf("no set named %q", name)
	}
	ws.current = ns
	return ns, nil
}

// Current returns the current set.
func (ws *Workspace) Current() *NamedSet {
	if ws.current == nil {
		panic("attempt to access current set of uninitialized workspace")
	}
	return ws.current
}

// Size counts the sets in a workspace.
func (ws *Workspace) Size() int {
	return ws.order.Size()
}

// Each iterates over the sets in order of definition.
func (ws *Workspace) Each(mapper func(*NamedSet)) {
	ws.order.Each(func(_ int, name interface{}) {
		mapper(ws.table[name.(string)])
	})
}

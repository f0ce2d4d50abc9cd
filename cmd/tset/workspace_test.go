package main

import (
	"testing"
)

func TestWorkspaceDefault(t *testing.T) {
	ws := NewWorkspace(3)
	if ws.Size() != 1 || ws.Current().Name != "default" || ws.Current().Kind != TrieKind {
		t.Errorf("expected workspace with one trie set 'default'")
	}
}

func TestWorkspaceRedefine(t *testing.T) {
	ws := NewWorkspace(3)
	ws.Current().Set.Add("x")
	ns, old, err := ws.Define("default", HashKind)
	if err != nil {
		t.Fatal(err)
	}
	if old == nil || old.Set.Size() != 1 {
		t.Errorf("expected the old default set to be returned")
	}
	if ws.Current() != ns {
		t.Errorf("expected redefined set to stay current")
	}
	if ws.Size() != 1 {
		t.Errorf("redefinition should not add a name, have %d sets", ws.Size())
	}
	if _, _, err := ws.Define("", TrieKind); err == nil {
		t.Errorf("expected error for empty name")
	}
}

func TestWorkspaceBadBits(t *testing.T) {
	ws := NewWorkspace(40)
	if _, _, err := ws.Define("h", HashKind); err == nil {
		t.Errorf("expected error for hash set with 2^40 slots")
	}
	if ws.Resolve("h") != nil {
		t.Errorf("failed definition should not leave a set behind")
	}
}

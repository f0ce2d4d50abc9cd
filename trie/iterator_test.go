package trie

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/trieset"
)

func drain(t *testing.T, it trieset.Iterator) []string {
	var r []string
	for it.HasNext() {
		s, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error from Next: %v", err)
		}
		r = append(r, s)
	}
	return r
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIteratorScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trieset.trie")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelDebug)
	var inputs = []struct {
		add      []string
		remove   []string
		expected []string
	}{
		{[]string{"a", "ab", "b"}, nil, []string{"a", "ab", "b"}},
		{[]string{"b", "ab", "a"}, nil, []string{"a", "ab", "b"}},
		{[]string{"a", ""}, nil, []string{"", "a"}},
		{[]string{"cat", "car", "cart"}, []string{"car"}, []string{"cart", "cat"}},
		{[]string{"x"}, []string{"x"}, nil},
		{[]string{"abc", "abd", "ab", "b", "bcd"}, []string{"b"}, []string{"ab", "abc", "abd", "bcd"}},
		{nil, nil, nil},
	}
	for i, input := range inputs {
		trie := New()
		for _, s := range input.add {
			trie.Add(s)
		}
		for _, s := range input.remove {
			trie.Remove(s)
		}
		r := drain(t, trie.Iterator())
		if !sameStrings(r, input.expected) {
			t.Errorf("test #%d: expected %v, got %v", i, input.expected, r)
		}
	}
}

func TestIteratorOnEmptyTrie(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trieset.trie")
	defer teardown()
	//
	it := New().Iterator()
	if it.HasNext() {
		t.Errorf("iterator on empty trie should not have a next element")
	}
	if _, err := it.Next(); !errors.Is(err, trieset.ErrIterationExhausted) {
		t.Errorf("expected ErrIterationExhausted, got %v", err)
	}
	if err := it.Remove(); !errors.Is(err, trieset.ErrNoCurrentElement) {
		t.Errorf("expected ErrNoCurrentElement, got %v", err)
	}
}

func TestIteratorRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trieset.trie")
	defer teardown()
	//
	trie := New()
	for _, s := range []string{"", "a", "ab", "abc", "b"} {
		trie.Add(s)
	}
	it := trie.Iterator()
	if err := it.Remove(); !errors.Is(err, trieset.ErrNoCurrentElement) {
		t.Errorf("expected remove before next to fail, got %v", err)
	}
	var seen []string
	for it.HasNext() {
		s, _ := it.Next()
		seen = append(seen, s)
		if s == "" || s == "ab" || s == "b" {
			size := trie.Size()
			if err := it.Remove(); err != nil {
				t.Fatalf("unexpected error removing %q: %v", s, err)
			}
			if trie.Size() != size-1 {
				t.Errorf("expected size to decrease by one after removing %q", s)
			}
			if trie.Contains(s) {
				t.Errorf("expected %q to be removed", s)
			}
			if err := it.Remove(); !errors.Is(err, trieset.ErrNoCurrentElement) {
				t.Errorf("expected second remove of %q to fail, got %v", s, err)
			}
		}
	}
	expected := []string{"", "a", "ab", "abc", "b"}
	if !sameStrings(seen, expected) {
		t.Errorf("removal disturbed iteration: expected %v, got %v", expected, seen)
	}
	rest := drain(t, trie.Iterator())
	if !sameStrings(rest, []string{"a", "abc"}) {
		t.Errorf("expected [a abc] to remain, got %v", rest)
	}
}

func TestIteratorRemoveAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trieset.trie")
	defer teardown()
	//
	trie := New()
	for _, s := range []string{"to", "tea", "ted", "ten", "i", "in", "inn"} {
		trie.Add(s)
	}
	it := trie.Iterator()
	n := 0
	for it.HasNext() {
		it.Next()
		if err := it.Remove(); err != nil {
			t.Fatal(err)
		}
		n++
	}
	if n != 7 || trie.Size() != 0 {
		t.Errorf("expected 7 removals and an empty trie, have %d removals and size %d", n, trie.Size())
	}
	if New().Iterator().HasNext() || trie.Iterator().HasNext() {
		t.Errorf("expected no elements after removing all")
	}
}

func TestIteratorSortedRandom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "trieset.trie")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	const alphabet = "abcd\x00\xff"
	for round := 0; round < 20; round++ {
		trie := New()
		distinct := make(map[string]struct{})
		for i := 0; i < 200; i++ {
			b := make([]byte, rnd.Intn(6))
			for j := range b {
				b[j] = alphabet[rnd.Intn(len(alphabet))]
			}
			trie.Add(string(b))
			distinct[string(b)] = struct{}{}
		}
		if trie.Size() != len(distinct) {
			t.Fatalf("round %d: expected size %d, is %d", round, len(distinct), trie.Size())
		}
		expected := make([]string, 0, len(distinct))
		for s := range distinct {
			expected = append(expected, s)
		}
		sort.Strings(expected)
		r := drain(t, trie.Iterator())
		if !sameStrings(r, expected) {
			t.Fatalf("round %d: iteration order differs from sorted order", round)
		}
		for i := 1; i < len(r); i++ {
			if r[i-1] >= r[i] {
				t.Fatalf("round %d: %q is not less than %q", round, r[i-1], r[i])
			}
		}
	}
}

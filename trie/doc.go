/*
Package trie implements a set of strings backed by a character trie.

Every edge of the trie is labelled with one byte of a string. A special
edge label, the terminator, marks nodes whose path from the root spells a
complete element of the set. The terminator sorts before all real bytes,
therefore a shorter string will always be visited before any longer string
sharing it as a prefix.

Iteration

Iterators are lazy: they do not collect the elements upfront, but walk the
trie step by step, remembering nothing more than the path to the node they
currently examine. Elements are returned in ascending byte order, i.e. in the
order sort.Strings would produce.

    t := trie.New()
    t.Add("cat")
    t.Add("car")
    it := t.Iterator()
    for it.HasNext() {
        s, _ := it.Next()   // "car", then "cat"
        ...
    }

Removing a string deletes its terminator edge only. Inner nodes which are no
longer on the path of any element are not reclaimed. Iterators rely on this:
they always compute one element ahead, and removal of the element yielded last
must not invalidate the path to the element following it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trieset.trie'.
func tracer() tracing.Trace {
	return tracing.Select("trieset.trie")
}

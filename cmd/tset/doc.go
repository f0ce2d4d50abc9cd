/*
Package tset/main provides an interactive command line tool (TSet) to
play with sets of strings. Users may create a couple of named sets, either
trie-backed or hash-backed, add and remove words, and list the contents of
a set. Trie-backed sets list their words in sorted order and may be displayed
as a tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trieset.cli'
func tracer() tracing.Trace {
	return tracing.Select("trieset.cli")
}

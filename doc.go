/*
Package trieset is a small toolbox for ordered sets of strings.

The central type is a set backed by a character trie, which is able to
enumerate its elements in lexicographic order without ever collecting them
into a list first. Package structure is as follows:

■ trie: Package trie implements the trie-backed set together with a lazy,
resumable iterator. Iterators support removal of the element they yielded last.

■ oaset: Package oaset implements a fixed-capacity hash set with open addressing.
It does not keep any order and is mainly useful as a point of comparison.

■ cmd/tset: An interactive command line tool to play with sets.

The base package contains the interfaces and error values which are shared by
all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package trieset

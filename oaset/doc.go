/*
Package oaset implements a hash set of strings with open addressing.

The capacity of a set is fixed at creation time to a power of 2, the set
will never grow. Collisions are resolved by linear probing. Removed elements
leave a tombstone in the table, which keeps probe sequences of other elements
intact and may be re-used by later insertions.

Sets of this package do not keep any order of their elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package oaset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'trieset.oaset'.
func tracer() tracing.Trace {
	return tracing.Select("trieset.oaset")
}

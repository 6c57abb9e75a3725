package wbs

import (
	"hash/maphash"
	"strconv"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of the node's level and name. Distinct nodes with the
// same name at the same level hash identically.
//
// The seed is chosen per process, so hashes are not stable across runs.
func (n *Node) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteString(strconv.Itoa(n.Level()))
	h.WriteByte(':')
	h.WriteString(n.name)
	return h.Sum64()
}

// Package trie implements the arena-indexed, escape-leaf radix trie that
// backs the fqdntrie set and map façades: byte-position-compressed descent
// over FQDN suffixes, with longest-ancestor fallback via escape leaves.
package trie

import (
	"math"

	"github.com/fqdntrie/fqdntrie/internal/alphabet"
	"github.com/fqdntrie/fqdntrie/internal/debug"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
)

// maxIndex is the largest arena size this trie supports. Exceeding it is a
// programming error, not a runtime failure mode.
const maxIndex = math.MaxInt32

// ByteIndex is a reversed position into an FQDN: the distance from the end
// of the domain's content, skipping a conceptual trailing separator byte.
// The smallest legal value is 2 (the last content byte).
type ByteIndex uint32

// defaultByteIndex is the position examined by the root branching.
const defaultByteIndex ByteIndex = 2

// rawLen is the FQDN length convention every position formula is expressed
// in: content length plus one, for the conceptual trailing separator that
// ByteIndex positions count back from.
func rawLen(f fqdn.FQDN) int { return f.Len() + 1 }

func newByteIndex(i int) ByteIndex {
	debug.Assert(i >= 2, "byte index %d below the minimum of 2", i)
	debug.Assert(i <= maxIndex, "byte index %d exceeds arena capacity", i)

	return ByteIndex(i)
}

// index returns the raw numeric position, for comparisons against plain
// int lengths.
func (p ByteIndex) index() int { return int(p) }

// get folds the byte of f found at reversed position p. f must be long
// enough to contain that position; callers establish this via
// getNextNode's bounds check before calling get.
func (p ByteIndex) get(f fqdn.FQDN) uint8 {
	content := f.Bytes()
	i := rawLen(f) - p.index()

	debug.Assert(i >= 0 && i < len(content), "byte index %d out of range for %q", p, f)

	return alphabet.Fold(content[i])
}

// NodeIndex is a tagged union of the two arena index spaces: non-negative
// values address the branching arena, negative values address the leaf
// arena (as the bitwise complement of the leaf slot).
type NodeIndex int32

// IsRoot reports whether n is the root branching (index 0).
func (n NodeIndex) IsRoot() bool { return n == 0 }

// IsBranching reports whether n addresses the branching arena.
func (n NodeIndex) IsBranching() bool { return n >= 0 }

// IsLeaf reports whether n addresses the leaf arena.
func (n NodeIndex) IsLeaf() bool { return n < 0 }

func (n NodeIndex) asBranching() BranchingIndex {
	debug.Assert(n.IsBranching(), "node index %d is not a branching", n)

	return BranchingIndex(n)
}

func (n NodeIndex) asLeaf() LeafIndex {
	debug.Assert(n.IsLeaf(), "node index %d is not a leaf", n)

	return LeafIndex(n)
}

// BranchingIndex addresses a slot in the branching arena.
type BranchingIndex int32

// rootBranching is the index of the trie's permanent root branching.
const rootBranching BranchingIndex = 0

// IsRoot reports whether b is the root branching.
func (b BranchingIndex) IsRoot() bool { return b == 0 }

func (b BranchingIndex) index() int { return int(b) }

func newBranchingIndex(i int) BranchingIndex {
	debug.Assert(i <= maxIndex, "branching arena exceeded capacity")

	return BranchingIndex(i)
}

func (b BranchingIndex) node() NodeIndex { return NodeIndex(b) }

// LeafIndex addresses a slot in the leaf arena, stored as the bitwise
// complement of the slot number. rootLeaf, not the Go zero value, is the
// sentinel for the "." entry; never rely on a bare LeafIndex(0).
type LeafIndex int32

// rootLeaf is the index of the trie's permanent root leaf.
const rootLeaf LeafIndex = ^0

// IsRootDomain reports whether l is the root leaf.
func (l LeafIndex) IsRootDomain() bool { return l == rootLeaf }

func (l LeafIndex) index() int { return int(^l) }

func newLeafIndex(i int) LeafIndex {
	debug.Assert(i <= maxIndex, "leaf arena exceeded capacity")

	return LeafIndex(^int32(i))
}

func (l LeafIndex) node() NodeIndex { return NodeIndex(l) }

package trie

import (
	"github.com/fqdntrie/fqdntrie/internal/alphabet"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
)

// branching is an internal trie node: it discriminates descending queries
// by the alphabet-folded byte found at one reversed position, and supplies
// an escape leaf for queries that have no specialised child.
type branching struct {
	pos    ByteIndex                // reversed position examined at this node
	parent BranchingIndex           // 0 (self) for the root
	child  [alphabet.Size]NodeIndex // one outgoing edge per alphabet index
	escape LeafIndex                // fallback when no specialised child applies
}

// newRootBranching builds the permanent root branching: pos=2, its own
// parent, every edge and the escape pointing at the root leaf.
func newRootBranching() branching {
	return newBranching(rootBranching, rootLeaf, defaultByteIndex)
}

func newBranching(parent BranchingIndex, escape LeafIndex, pos ByteIndex) branching {
	b := branching{pos: pos, parent: parent, escape: escape}
	for i := range b.child {
		b.child[i] = escape.node()
	}

	return b
}

// childFromDot is the synthetic edge for the dot/foreign-byte class,
// i.e. childFromIndex(0).
func (b *branching) childFromDot() NodeIndex { return b.child[0] }

// childFromLetter resolves the edge that f takes at this branching's
// position.
func (b *branching) childFromLetter(f fqdn.FQDN) NodeIndex {
	return b.child[b.pos.get(f)]
}

func (b *branching) setChildFromLetter(f fqdn.FQDN, n NodeIndex) {
	b.child[b.pos.get(f)] = n
}

func (b *branching) childFromIndex(i uint8) NodeIndex { return b.child[i] }

func (b *branching) setChildFromIndex(i uint8, n NodeIndex) { b.child[i] = n }

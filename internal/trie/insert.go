package trie

import (
	"github.com/fqdntrie/fqdntrie/internal/debug"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
)

// insertSuffixBranching allocates a new branching discriminating at
// position p, with escape e, parent b, routing f's discriminant byte to x.
// It reparents x if x is itself a branching, running escape replacement on
// it when it inherited its escape from the splice site.
func (t *Trie[T]) insertSuffixBranching(b BranchingIndex, e LeafIndex, x NodeIndex, p ByteIndex, f fqdn.FQDN) BranchingIndex {
	n := newBranchingIndex(len(t.branching))
	nb := newBranching(b, e, p)
	nb.setChildFromLetter(f, x)

	if x.IsBranching() {
		xb := x.asBranching()
		t.b(xb).parent = n

		if t.b(xb).escape == t.b(b).escape {
			t.replaceEscapeLeaf(xb, t.b(b).escape, e)
		}
	}

	t.b(b).setChildFromLetter(f, n.node())
	t.branching = append(t.branching, nb)

	return n
}

// findOneConcurrentLeaf finds a leaf concurrent with f: the leaf reached by
// ordinary descent, or (if descent lands on an inherited escape) some
// other leaf reachable under the same branching.
func (t *Trie[T]) findOneConcurrentLeaf(f fqdn.FQDN) LeafIndex {
	n := rootBranching.node()

	for {
		b := n.asBranching()
		n = t.getNextNode(b, f)

		if n.IsLeaf() {
			l := n.asLeaf()
			if l != t.b(b).escape {
				return l
			}

			return t.findOneMatchingLeaf(b)
		}
	}
}

// Replace inserts value, overwriting and returning any existing entry with
// the same key.
func (t *Trie[T]) Replace(value T) (T, bool) {
	if debug.Enabled {
		debug.Assert(t.checkConsistency(), "trie inconsistent on entry to Replace")
	}

	added := value.FQDN()

	b, l := t.innerLookup(added)

	if added.Equal(t.leafFQDN(l)) {
		old := *t.l(l)
		*t.l(l) = value

		return old, true
	}

	t.realInsert(value, b, l)

	var zero T

	return zero, false
}

// Insert adds value if its key is new. It reports whether the key was new.
func (t *Trie[T]) Insert(added T) bool {
	if debug.Enabled {
		debug.Assert(t.checkConsistency(), "trie inconsistent on entry to Insert")
	}

	b, l := t.innerLookup(added.FQDN())

	if added.FQDN().Equal(t.leafFQDN(l)) {
		return false
	}

	t.realInsert(added, b, l)

	return true
}

func (t *Trie[T]) realInsert(added T, b BranchingIndex, l LeafIndex) {
	addedFQDN := added.FQDN()
	addedLeaf := newLeafIndex(len(t.leaf))

	if t.b(b).escape != l {
		// Case A: the new key extends an already-specialised leaf.
		position := newByteIndex(rawLen(t.leafFQDN(l)) + 1)
		t.insertSuffixBranching(b, l, addedLeaf.node(), position, addedFQDN)
	} else {
		// Case B: first insertion under an escape node.
		derived := t.leafFQDN(t.findOneConcurrentLeaf(addedFQDN))

		switch {
		case derived.IsRoot():
			// Empty trie: just point the edge at the new leaf.
			t.b(b).setChildFromLetter(addedFQDN, addedLeaf.node())

		case derived.IsSubdomainOf(addedFQDN):
			// The new key must occupy an escape position.
			p := newByteIndex(rawLen(addedFQDN) + 1)

			for p.index() < t.b(b).pos.index() {
				debug.Assert(b != t.b(b).parent, "ascend past the root while seeking an escape splice point")
				b = t.b(b).parent
			}

			if p.index() == t.b(b).pos.index() {
				t.replaceEscapeLeaf(b, t.b(b).escape, addedLeaf)
			} else {
				x := t.b(b).childFromLetter(derived)
				t.insertSuffixBranching(b, addedLeaf, x, p, derived)
			}

		default:
			// A new concurrent key.
			p := newByteIndex(rawLen(t.leafFQDN(l)) + 1)
			if p.index() <= rawLen(derived) {
				for p.get(addedFQDN) == p.get(derived) {
					p = newByteIndex(p.index() + 1)
				}
			}

			debug.Assert(p.index() <= rawLen(addedFQDN)+1, "no discriminant position found between concurrent keys")

			for p.index() < t.b(b).pos.index() {
				b = t.b(b).parent
			}

			discriminant := t.b(b).pos.get(addedFQDN)

			if p.index() == t.b(b).pos.index() && t.b(b).childFromIndex(discriminant) == t.b(b).escape.node() {
				t.b(b).setChildFromIndex(discriminant, addedLeaf.node())
			} else {
				x := t.b(b).childFromIndex(discriminant)
				nb := t.insertSuffixBranching(b, l, x, p, derived)
				t.b(nb).setChildFromLetter(addedFQDN, addedLeaf.node())
			}
		}
	}

	t.leaf = append(t.leaf, added)
}

package trie

import (
	"github.com/fqdntrie/fqdntrie/internal/alphabet"
	"github.com/fqdntrie/fqdntrie/internal/debug"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
)

// Remove deletes the entry whose key equals f, returning its payload. The
// root (the empty FQDN) is never removed; removing it is a no-op that
// reports absent.
func (t *Trie[T]) Remove(f fqdn.FQDN) (T, bool) {
	if debug.Enabled {
		debug.Assert(t.checkConsistency(), "trie inconsistent on entry to Remove")
	}

	var zero T

	b, l := t.innerLookup(f)

	if !f.Equal(t.leafFQDN(l)) || l.IsRootDomain() {
		return zero, false
	}

	if l == t.b(b).escape {
		// The removed leaf is an escape leaf: climb to the highest
		// branching still relying on it, then replace it from there down.
		for t.b(t.b(b).parent).escape == l {
			b = t.b(b).parent
		}

		t.replaceEscapeLeaf(b, l, t.b(t.b(b).parent).escape)
	} else {
		// A regular specialised child: redirect it back to the escape.
		t.b(b).setChildFromLetter(f, t.b(b).escape.node())
	}

	if !b.IsRoot() {
		t.collapseIfRedundant(b, f)
	}

	removed := *t.l(l)

	last := newLeafIndex(len(t.leaf) - 1)
	if l == last {
		t.leaf = t.leaf[:len(t.leaf)-1]
	} else {
		t.compactLeaf(l, last)
	}

	return removed, true
}

// collapseIfRedundant dissolves b if a remove has left it with fewer than
// two effective children (edges that differ from its escape), then
// compacts the branching arena to keep it dense.
func (t *Trie[T]) collapseIfRedundant(b BranchingIndex, f fqdn.FQDN) {
	escape := t.b(b).escape

	effective := func() (NodeIndex, int) {
		var only NodeIndex
		count := 0

		for i := 0; i < alphabet.Size; i++ {
			c := t.b(b).childFromIndex(uint8(i))
			if c != escape.node() {
				only = c
				count++
			}
		}

		return only, count
	}

	var onlyChild NodeIndex

	if t.b(t.b(b).parent).escape == escape {
		// escape is inherited from the parent: there's at least one
		// effective child.
		only, count := effective()
		if count > 1 {
			return
		}

		onlyChild = only
	} else {
		// b is the origin of its own escape.
		if _, count := effective(); count > 0 {
			return
		}

		onlyChild = escape.node()
	}

	parent := t.b(b).parent
	t.b(parent).setChildFromLetter(f, onlyChild)

	if onlyChild.IsBranching() {
		t.b(onlyChild.asBranching()).parent = parent
	}

	t.compactBranching(b)
}

// compactBranching swap-removes the now-redundant branching b with the
// last branching in the arena, fixing up the moved entry's parent edge and
// reparenting its branching children.
func (t *Trie[T]) compactBranching(b BranchingIndex) {
	swap := newBranchingIndex(len(t.branching) - 1)

	if b == swap {
		t.branching = t.branching[:len(t.branching)-1]
		return
	}

	fswap := t.leafFQDN(t.findOneMatchingLeaf(swap))
	parent := t.b(swap).parent
	t.b(parent).setChildFromLetter(fswap, b.node())

	t.branching[b.index()] = t.branching[swap.index()]
	t.branching = t.branching[:len(t.branching)-1]

	for i := 0; i < alphabet.Size; i++ {
		c := t.b(b).childFromIndex(uint8(i))
		if c.IsBranching() {
			t.b(c.asBranching()).parent = b
		}
	}
}

// compactLeaf swap-removes the removed leaf l with the last leaf in the
// arena, walking from the root along the moved leaf's key to find and
// rewrite the single edge or escape that referenced it.
func (t *Trie[T]) compactLeaf(l, last LeafIndex) {
	flast := t.leafFQDN(last)

	b := rootBranching
	if t.b(b).childFromLetter(flast) == last.node() {
		t.b(b).setChildFromLetter(flast, l.node())
	} else {
		n := t.b(b).childFromLetter(flast)

		for n.IsBranching() && !n.asBranching().IsRoot() {
			nb := n.asBranching()

			if t.b(nb).escape == last {
				t.replaceEscapeLeaf(nb, last, l)
				break
			}

			var discriminant uint8
			if t.b(nb).pos.index() == rawLen(flast) {
				discriminant = 0
			} else {
				discriminant = t.b(nb).pos.get(flast)
			}

			if t.b(nb).childFromIndex(discriminant) == last.node() {
				t.b(nb).setChildFromIndex(discriminant, l.node())

				break
			}

			n = t.b(nb).childFromIndex(discriminant)
		}
	}

	t.leaf[l.index()] = t.leaf[last.index()]
	t.leaf = t.leaf[:len(t.leaf)-1]
}

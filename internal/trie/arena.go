package trie

import (
	"slices"

	"github.com/fqdntrie/fqdntrie/internal/alphabet"
	"github.com/fqdntrie/fqdntrie/internal/debug"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
)

// Trie is the arena-indexed radix trie: two growable slices, one of
// branching nodes and one of leaves, with the root of each always present.
//
// Trie is single-writer, multi-reader: it holds no internal synchronisation
// and concurrent mutation is the caller's responsibility to exclude.
type Trie[T fqdn.HasFQDN] struct {
	branching []branching
	leaf      []T
}

// New constructs a trie whose root leaf holds root. root.FQDN() must be the
// empty (root) domain.
func New[T fqdn.HasFQDN](root T) *Trie[T] {
	debug.Assert(root.FQDN().IsRoot(), "the root value must be associated with the root (empty) FQDN")

	return &Trie[T]{
		branching: []branching{newRootBranching()},
		leaf:      []T{root},
	}
}

// WithCapacity constructs a trie like New, pre-sizing the arenas to hold
// capacity leaves (and proportionally fewer branchings).
func WithCapacity[T fqdn.HasFQDN](root T, capacity int) *Trie[T] {
	debug.Assert(root.FQDN().IsRoot(), "the root value must be associated with the root (empty) FQDN")
	debug.Assert(capacity <= maxIndex, "exceeded capacity")

	t := &Trie[T]{
		branching: make([]branching, 1, capacity/2+1),
		leaf:      make([]T, 1, capacity),
	}
	t.branching[0] = newRootBranching()
	t.leaf[0] = root

	return t
}

// Len is the number of leaves stored, always at least 1 (the root).
func (t *Trie[T]) Len() int { return len(t.leaf) }

// Range calls fn once per stored leaf, including the root, in arena
// (internal) order; it stops early if fn returns false. Arena order is an
// implementation artefact, not a guaranteed traversal order — it shifts
// across removes because of swap-remove compaction.
func (t *Trie[T]) Range(fn func(T) bool) {
	for _, v := range t.leaf {
		if !fn(v) {
			return
		}
	}
}

// Reserve grows the leaf arena to accommodate additional more entries, and
// grows the branching arena to keep its capacity at roughly half the
// leaf arena's.
func (t *Trie[T]) Reserve(additional int) {
	t.leaf = slices.Grow(t.leaf, additional)

	if want := cap(t.leaf)/2 - cap(t.branching); want > 0 {
		t.branching = slices.Grow(t.branching, want)
	}
}

// ShrinkToFit releases excess capacity on both arenas.
func (t *Trie[T]) ShrinkToFit() {
	t.leaf = slices.Clip(t.leaf)
	t.branching = slices.Clip(t.branching)
}

func (t *Trie[T]) b(i BranchingIndex) *branching {
	debug.Assert(i.index() < len(t.branching), "branching index %d out of range", i)

	return &t.branching[i.index()]
}

func (t *Trie[T]) l(i LeafIndex) *T {
	debug.Assert(i.index() < len(t.leaf), "leaf index %d out of range", i)

	return &t.leaf[i.index()]
}

func (t *Trie[T]) leafFQDN(i LeafIndex) fqdn.FQDN { return (*t.l(i)).FQDN() }

// replaceEscapeLeaf recursively rewrites every occurrence of toReplace
// (as an escape, or as a child edge) under b to replacement, pruning as
// soon as a descendant's escape has already diverged. This keeps every
// branching's escape consistent whenever a new escape leaf is introduced
// at or above a subtree.
func (t *Trie[T]) replaceEscapeLeaf(b BranchingIndex, toReplace, replacement LeafIndex) {
	if t.b(b).escape != toReplace {
		return
	}

	t.b(b).escape = replacement

	for i := 0; i < alphabet.Size; i++ {
		c := t.b(b).childFromIndex(uint8(i))

		switch {
		case c.IsBranching():
			t.replaceEscapeLeaf(c.asBranching(), toReplace, replacement)
		case c.asLeaf() == toReplace:
			t.b(b).setChildFromIndex(uint8(i), replacement.node())
		}
	}
}

// findOneMatchingLeaf finds some leaf reachable under b other than an
// inherited escape. There is always a result, since the root leaf matches
// universally.
func (t *Trie[T]) findOneMatchingLeaf(b BranchingIndex) LeafIndex {
	for {
		escape := t.b(b).escape
		if t.b(t.b(b).parent).escape != escape {
			return escape
		}

		found := false
		var next NodeIndex

		for i := 0; i < alphabet.Size; i++ {
			c := t.b(b).childFromIndex(uint8(i))
			if c == escape.node() {
				continue
			}

			found = true
			next = c

			break
		}

		if !found {
			return rootLeaf
		}

		if next.IsLeaf() {
			return next.asLeaf()
		}

		if next.asBranching().IsRoot() {
			return rootLeaf
		}

		b = next.asBranching()
	}
}

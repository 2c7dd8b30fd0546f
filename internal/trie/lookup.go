package trie

import "github.com/fqdntrie/fqdntrie/pkg/fqdn"

// getNextNode resolves the outgoing edge from branching b for query f.
//
// The second branch (the synthetic dot edge, taken "just past" the first
// label) is subsumed by the first: whenever b.pos addresses a real content
// byte that happens to fold to the dot class, the first branch already
// returns childFromDot() via the ordinary folded lookup. It is kept here,
// faithfully unreachable, because it documents the boundary the original
// implementation drew between "byte exists" and "byte is one past the end".
func (t *Trie[T]) getNextNode(b BranchingIndex, f fqdn.FQDN) NodeIndex {
	pos := t.b(b).pos
	l := rawLen(f)

	switch {
	case pos.index() <= l:
		return t.b(b).childFromLetter(f)
	case pos.index() == l-1:
		return t.b(b).childFromDot()
	default:
		return t.b(b).escape.node()
	}
}

// innerLookup descends the trie for query f, returning the branching
// immediately above the result and the leaf whose key is the longest
// ancestor of f.
func (t *Trie[T]) innerLookup(f fqdn.FQDN) (BranchingIndex, LeafIndex) {
	n := rootBranching.node()

	var b BranchingIndex

	for {
		b = n.asBranching()
		n = t.getNextNode(b, f)

		if n.IsLeaf() {
			break
		}
	}

	l := n.asLeaf()

	if l != t.b(b).escape {
		if f.IsSubdomainOf(t.leafFQDN(l)) {
			return b, l
		}

		l = t.b(b).escape
	}

	for !f.IsSubdomainOf(t.leafFQDN(l)) {
		for {
			b = t.b(b).parent
			if l != t.b(b).escape {
				break
			}
		}

		l = t.b(b).escape
	}

	return b, l
}

// Lookup returns the payload whose key is the longest ancestor of f. It
// always succeeds: the root leaf is a universal fallback.
func (t *Trie[T]) Lookup(f fqdn.FQDN) *T {
	_, l := t.innerLookup(f)

	return t.l(l)
}

// GetExactLeaf returns the payload whose key equals f exactly, or false if
// no such key is stored.
func (t *Trie[T]) GetExactLeaf(f fqdn.FQDN) (*T, bool) {
	l, ok := t.innerGetExactLeaf(f)
	if !ok {
		return nil, false
	}

	return t.l(l), true
}

func (t *Trie[T]) innerGetExactLeaf(f fqdn.FQDN) (LeafIndex, bool) {
	_, l := t.innerLookup(f)
	if t.leafFQDN(l).Equal(f) {
		return l, true
	}

	return rootLeaf, false
}

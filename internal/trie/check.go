package trie

// checkConsistency asserts that every branching's children point back to
// it as their parent, and that every stored leaf is re-locatable by its
// own key via innerLookup. It is compiled unconditionally but only ever
// invoked from debug.Assert call sites, so it costs nothing in release
// builds beyond the unused branch.
func (t *Trie[T]) checkConsistency() bool {
	return t.checkParents() && t.checkLeafFQDN()
}

func (t *Trie[T]) checkParents() bool {
	for i := range t.branching {
		b := &t.branching[i]

		for _, c := range b.child {
			if c.IsBranching() && t.branching[c.asBranching().index()].parent.index() != i {
				return false
			}
		}
	}

	return true
}

func (t *Trie[T]) checkLeafFQDN() bool {
	for i, leaf := range t.leaf {
		_, l := t.innerLookup(leaf.FQDN())
		if l.index() != i {
			return false
		}
	}

	return true
}

// Package set provides a set of FQDN-keyed values backed by a radix trie,
// supporting exact lookups and longest-suffix matches.
package set

import (
	"github.com/fqdntrie/fqdntrie/internal/trie"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
	"github.com/fqdntrie/fqdntrie/pkg/optional"
)

// Set stores values of type T, each identified by the FQDN it carries.
// Lookup resolves to the stored value whose key is the longest ancestor
// of the query; Get requires an exact key match.
type Set[T fqdn.HasFQDN] struct {
	inner *trie.Trie[T]
}

// New creates a Set whose root entry (returned by Lookup for any domain
// with no more specific match) is root.
func New[T fqdn.HasFQDN](root T) *Set[T] {
	return &Set[T]{inner: trie.New(root)}
}

// WithCapacity is like New but pre-allocates room for capacity entries.
func WithCapacity[T fqdn.HasFQDN](root T, capacity int) *Set[T] {
	return &Set[T]{inner: trie.WithCapacity(root, capacity)}
}

// Reserve grows the set's backing storage to hold additional more entries
// without reallocating.
func (s *Set[T]) Reserve(additional int) { s.inner.Reserve(additional) }

// ShrinkToFit releases any spare backing capacity.
func (s *Set[T]) ShrinkToFit() { s.inner.ShrinkToFit() }

// Get returns the value whose key equals look exactly, or None if absent.
func (s *Set[T]) Get(look fqdn.FQDN) optional.Option[T] {
	v, ok := s.inner.GetExactLeaf(look)
	if !ok {
		return optional.None[T]()
	}

	return optional.Some(*v)
}

// Lookup returns the value whose key is the longest ancestor of look. It
// always succeeds, falling back to the root entry.
func (s *Set[T]) Lookup(look fqdn.FQDN) T {
	return *s.inner.Lookup(look)
}

// Insert adds added if its key is new. It reports whether the key was new.
func (s *Set[T]) Insert(added T) bool {
	return s.inner.Insert(added)
}

// Replace inserts value, returning and overwriting any existing entry
// with the same key.
func (s *Set[T]) Replace(value T) (T, bool) {
	return s.inner.Replace(value)
}

// Remove deletes the entry whose key equals look exactly, returning its
// value, or None if look was absent.
func (s *Set[T]) Remove(look fqdn.FQDN) optional.Option[T] {
	v, ok := s.inner.Remove(look)
	if !ok {
		return optional.None[T]()
	}

	return optional.Some(v)
}

// Take is Remove by another name: it deletes the entry whose key equals
// look exactly and hands back the owned value. Both names return the
// removed value; Take exists for parity with Rust's HashSet remove/take pair.
func (s *Set[T]) Take(look fqdn.FQDN) optional.Option[T] {
	return s.Remove(look)
}

// Len reports the number of entries, including the root.
func (s *Set[T]) Len() int { return s.inner.Len() }

// Range calls fn once per stored value, including the root, in internal
// arena order; it stops early if fn returns false. This is the set's only
// iteration primitive — there is no ordering guarantee beyond "internal
// order for diagnostics".
func (s *Set[T]) Range(fn func(T) bool) { s.inner.Range(fn) }

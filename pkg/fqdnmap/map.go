// Package fqdnmap provides an FQDN-keyed map backed by a radix trie,
// supporting exact lookups and longest-suffix matches.
package fqdnmap

import (
	"github.com/fqdntrie/fqdntrie/internal/trie"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
	"github.com/fqdntrie/fqdntrie/pkg/optional"
)

// entry pairs a key with its value so the backing trie can recover the
// FQDN of anything it stores.
type entry[V any] struct {
	key   fqdn.FQDN
	value V
}

func (e entry[V]) FQDN() fqdn.FQDN { return e.key }

// Map stores values of type V keyed by FQDN. Lookup resolves to the value
// whose key is the longest ancestor of the query; Get requires an exact
// key match.
type Map[V any] struct {
	inner *trie.Trie[entry[V]]
}

// New creates a Map whose root value (returned by Lookup for any domain
// with no more specific match) is root.
func New[V any](root V) *Map[V] {
	return &Map[V]{inner: trie.New(entry[V]{key: fqdn.Root(), value: root})}
}

// WithCapacity is like New but pre-allocates room for capacity entries.
func WithCapacity[V any](root V, capacity int) *Map[V] {
	return &Map[V]{inner: trie.WithCapacity(entry[V]{key: fqdn.Root(), value: root}, capacity)}
}

// Reserve grows the map's backing storage to hold additional more entries
// without reallocating.
func (m *Map[V]) Reserve(additional int) { m.inner.Reserve(additional) }

// ShrinkToFit releases any spare backing capacity.
func (m *Map[V]) ShrinkToFit() { m.inner.ShrinkToFit() }

// Get returns a pointer to the value whose key equals look exactly, which
// the caller may mutate in place, or None if look is absent.
func (m *Map[V]) Get(look fqdn.FQDN) optional.Option[*V] {
	e, ok := m.inner.GetExactLeaf(look)
	if !ok {
		return optional.None[*V]()
	}

	return optional.Some(&e.value)
}

// GetMut is Get by another name, kept distinct for parity with the
// original's get/get_mut pair: Go's single pointer-returning accessor
// already grants in-place mutation, so GetMut is Get.
func (m *Map[V]) GetMut(look fqdn.FQDN) optional.Option[*V] {
	return m.Get(look)
}

// GetKeyValue is like Get but also returns the stored key.
func (m *Map[V]) GetKeyValue(look fqdn.FQDN) (fqdn.FQDN, *V, bool) {
	e, ok := m.inner.GetExactLeaf(look)
	if !ok {
		return fqdn.FQDN{}, nil, false
	}

	return e.key, &e.value, true
}

// Lookup returns a pointer to the value whose key is the longest ancestor
// of look. It always succeeds, falling back to the root value.
func (m *Map[V]) Lookup(look fqdn.FQDN) *V {
	return &m.inner.Lookup(look).value
}

// LookupMut is Lookup by another name, kept distinct for parity with the
// original's lookup/lookup_mut pair: Go's single pointer-returning accessor
// already grants in-place mutation, so LookupMut is Lookup.
func (m *Map[V]) LookupMut(look fqdn.FQDN) *V {
	return m.Lookup(look)
}

// LookupKeyValue is like Lookup but also returns the matched key.
func (m *Map[V]) LookupKeyValue(look fqdn.FQDN) (fqdn.FQDN, *V) {
	e := m.inner.Lookup(look)
	return e.key, &e.value
}

// Insert adds the (key, value) pair if key is new. It reports whether the
// key was new; an existing entry for key is left untouched.
func (m *Map[V]) Insert(key fqdn.FQDN, value V) bool {
	return m.inner.Insert(entry[V]{key: key, value: value})
}

// Replace inserts the (key, value) pair, overwriting and returning the
// value of any existing entry for key.
func (m *Map[V]) Replace(key fqdn.FQDN, value V) (V, bool) {
	old, had := m.inner.Replace(entry[V]{key: key, value: value})
	return old.value, had
}

// Remove deletes the entry whose key equals look exactly, returning its
// key and value.
func (m *Map[V]) Remove(look fqdn.FQDN) (fqdn.FQDN, V, bool) {
	e, ok := m.inner.Remove(look)
	if !ok {
		var zero V
		return fqdn.FQDN{}, zero, false
	}

	return e.key, e.value, true
}

// Len reports the number of entries, including the root.
func (m *Map[V]) Len() int { return m.inner.Len() }

// Range calls fn once per stored (key, value) pair, including the root, in
// internal arena order; it stops early if fn returns false. fn receives
// values by copy, not by reference — use Get/GetMut to mutate in place.
func (m *Map[V]) Range(fn func(fqdn.FQDN, V) bool) {
	m.inner.Range(func(e entry[V]) bool {
		return fn(e.key, e.value)
	})
}

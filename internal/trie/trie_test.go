package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fqdntrie/fqdntrie/internal/trie"
	"github.com/fqdntrie/fqdntrie/pkg/fqdn"
)

type entry struct {
	key   fqdn.FQDN
	value int
}

func (e entry) FQDN() fqdn.FQDN { return e.key }

func e(name string, value int) entry {
	return entry{key: fqdn.New(name), value: value}
}

func lookup(tr *trie.Trie[entry], name string) int {
	return tr.Lookup(fqdn.New(name)).value
}

func get(tr *trie.Trie[entry], name string) (int, bool) {
	v, ok := tr.GetExactLeaf(fqdn.New(name))
	if !ok {
		return 0, false
	}

	return v.value, true
}

func TestEmptyTrieFallsBackToRoot(t *testing.T) {
	tr := trie.New(e(".", 7))

	assert.Equal(t, 7, lookup(tr, "anything.example"))

	_, ok := get(tr, "anything.example")
	assert.False(t, ok)

	assert.Equal(t, 1, tr.Len())
}

func TestSingleInsertAndSiblingFallback(t *testing.T) {
	tr := trie.New(e(".", 7))

	assert.True(t, tr.Insert(e("orange.com", 42)))

	v, ok := get(tr, "orange.com")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = get(tr, "www.orange.com")
	assert.False(t, ok)

	assert.Equal(t, 42, lookup(tr, "orange.com"))
	assert.Equal(t, 42, lookup(tr, "www.orange.com"))
	assert.Equal(t, 7, lookup(tr, "blue.com"))
}

func TestSubSuffixInsert(t *testing.T) {
	tr := trie.New(e(".", 7))
	tr.Insert(e("orange.com", 42))
	tr.Insert(e("mail.orange.com", 87))

	assert.Equal(t, 87, lookup(tr, "mail.orange.com"))
	assert.Equal(t, 87, lookup(tr, "imap.mail.orange.com"))
	assert.Equal(t, 42, lookup(tr, "www.orange.com"))
	assert.Equal(t, 42, lookup(tr, "orange.com"))
}

func TestCaseFold(t *testing.T) {
	tr := trie.New(e(".", 7))
	tr.Insert(e("Orange.COM", 42))

	v, ok := get(tr, "orange.com")
	require.True(t, ok)
	assert.Equal(t, 42, v)

	assert.Equal(t, 42, lookup(tr, "WWW.Orange.Com"))
}

func TestRemoveCollapsesAndRestores(t *testing.T) {
	tr := trie.New(e(".", 7))
	tr.Insert(e("orange.com", 42))
	tr.Insert(e("mail.orange.com", 87))

	removed, ok := tr.Remove(fqdn.New("mail.orange.com"))
	require.True(t, ok)
	assert.Equal(t, 87, removed.value)

	assert.Equal(t, 42, lookup(tr, "mail.orange.com"))
	assert.Equal(t, 2, tr.Len())

	tr.Insert(e("mail.orange.com", 87))
	assert.Equal(t, 87, lookup(tr, "mail.orange.com"))
	assert.Equal(t, 87, lookup(tr, "imap.mail.orange.com"))
	assert.Equal(t, 42, lookup(tr, "www.orange.com"))
	assert.Equal(t, 42, lookup(tr, "orange.com"))
}

func TestConcurrentSiblings(t *testing.T) {
	tr := trie.New(e(".", 7))
	tr.Insert(e("a.example", 1))
	tr.Insert(e("b.example", 2))
	tr.Insert(e("c.example", 3))

	av, ok := get(tr, "a.example")
	require.True(t, ok)
	assert.Equal(t, 1, av)

	bv, ok := get(tr, "b.example")
	require.True(t, ok)
	assert.Equal(t, 2, bv)

	cv, ok := get(tr, "c.example")
	require.True(t, ok)
	assert.Equal(t, 3, cv)

	assert.Equal(t, 7, lookup(tr, "x.example"))

	tr.Insert(e("example", 9))

	assert.Equal(t, 9, lookup(tr, "x.example"))
	assert.Equal(t, 1, lookup(tr, "a.example"))
	assert.Equal(t, 2, lookup(tr, "b.example"))
	assert.Equal(t, 3, lookup(tr, "c.example"))
}

func TestRemoveOnRootIsANoOp(t *testing.T) {
	tr := trie.New(e(".", 7))
	tr.Insert(e("orange.com", 42))

	_, ok := tr.Remove(fqdn.New("."))
	assert.False(t, ok)
	assert.Equal(t, 2, tr.Len())
}

func TestInsertReportsWhetherKeyWasNew(t *testing.T) {
	tr := trie.New(e(".", 7))

	assert.True(t, tr.Insert(e("orange.com", 42)))
	assert.False(t, tr.Insert(e("orange.com", 99)))

	v, ok := get(tr, "orange.com")
	require.True(t, ok)
	assert.Equal(t, 42, v, "a second Insert of the same key must not overwrite")
}

func TestReplaceReturnsPriorValueAndOverwrites(t *testing.T) {
	tr := trie.New(e(".", 7))

	old, had := tr.Replace(e("orange.com", 42))
	assert.False(t, had)
	assert.Zero(t, old.value)

	old, had = tr.Replace(e("orange.com", 99))
	assert.True(t, had)
	assert.Equal(t, 42, old.value)

	v, ok := get(tr, "orange.com")
	require.True(t, ok)
	assert.Equal(t, 99, v)
}

func TestLenTracksInsertsAndRemoves(t *testing.T) {
	tr := trie.New(e(".", 7))

	assert.Equal(t, 1, tr.Len())

	tr.Insert(e("orange.com", 42))
	tr.Insert(e("mail.orange.com", 87))
	assert.Equal(t, 3, tr.Len())

	tr.Remove(fqdn.New("mail.orange.com"))
	assert.Equal(t, 2, tr.Len())
}

func TestManyConcurrentInsertsAndRemovesStayConsistent(t *testing.T) {
	tr := trie.New(e(".", 0))

	names := []string{
		"orange.com", "mail.orange.com", "imap.mail.orange.com",
		"blue.com", "a.example", "b.example", "c.example", "example",
		"www.blue.com", "api.blue.com", "smtp.mail.orange.com",
	}

	for i, n := range names {
		assert.True(t, tr.Insert(e(n, i+1)))
	}

	for i, n := range names {
		v, ok := get(tr, n)
		require.True(t, ok, n)
		assert.Equal(t, i+1, v, n)
	}

	for _, n := range []string{"mail.orange.com", "b.example", "example"} {
		_, ok := tr.Remove(fqdn.New(n))
		assert.True(t, ok, n)
	}

	assert.Equal(t, 11, lookup(tr, "smtp.mail.orange.com"))
	assert.Equal(t, 1, lookup(tr, "mail.orange.com"))

	_, ok := get(tr, "mail.orange.com")
	assert.False(t, ok)
}

func TestReserveAndShrinkToFitPreserveContents(t *testing.T) {
	tr := trie.New(e(".", 7))
	tr.Reserve(64)
	tr.Insert(e("orange.com", 42))
	tr.ShrinkToFit()

	v, ok := get(tr, "orange.com")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestWithCapacity(t *testing.T) {
	tr := trie.WithCapacity(e(".", 7), 128)
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, 7, lookup(tr, "anything"))
}

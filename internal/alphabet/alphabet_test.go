package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fqdntrie/fqdntrie/internal/alphabet"
)

func TestFoldDotAndForeignBytes(t *testing.T) {
	assert.Equal(t, uint8(0), alphabet.Fold('.'))
	assert.Equal(t, uint8(0), alphabet.Fold('!'))
	assert.Equal(t, uint8(0), alphabet.Fold(0))
}

func TestFoldCaseInsensitive(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		assert.Equal(t, alphabet.Fold(c), alphabet.Fold(c-('a'-'A')))
	}
}

func TestFoldDistinctForDistinctLetters(t *testing.T) {
	seen := map[uint8]byte{}
	for c := byte('a'); c <= 'z'; c++ {
		idx := alphabet.Fold(c)
		if prev, ok := seen[idx]; ok {
			t.Fatalf("letters %q and %q fold to the same index %d", prev, c, idx)
		}
		seen[idx] = c
	}
}

func TestFoldWithinRange(t *testing.T) {
	for b := 0; b < 256; b++ {
		assert.Less(t, alphabet.Fold(byte(b)), uint8(alphabet.Size))
	}
}

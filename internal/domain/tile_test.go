package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordScore(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"CATS", 3 + 1 + 1 + 1},
		{"cats", 6},
		{"QUIZ", 10 + 1 + 1 + 10},
		{"DOG", 2 + 1 + 2},
		{"", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WordScore(tt.word), "word %q", tt.word)
	}
}

func TestTilePool_DrawsUppercaseLetters(t *testing.T) {
	pool := NewTilePool(DrawWeighted, 1)

	for i := 0; i < 1000; i++ {
		tile := pool.Draw()
		require.Len(t, tile.Glyph, 1)
		require.GreaterOrEqual(t, tile.Glyph[0], byte('A'))
		require.LessOrEqual(t, tile.Glyph[0], byte('Z'))
		require.NotEmpty(t, tile.ID)
		require.False(t, tile.SpawnedAt.IsZero())
	}
}

func TestTilePool_FreshIDs(t *testing.T) {
	pool := NewTilePool(DrawUniform, 42)

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		tile := pool.Draw()
		_, dup := seen[tile.ID]
		require.False(t, dup, "duplicate tile id %s", tile.ID)
		seen[tile.ID] = struct{}{}
	}
}

func TestTilePool_SeededSequencesMatch(t *testing.T) {
	a := NewTilePool(DrawWeighted, 7)
	b := NewTilePool(DrawWeighted, 7)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Draw().Glyph, b.Draw().Glyph)
	}
}

func TestTilePool_WeightedFavorsCommonLetters(t *testing.T) {
	pool := NewTilePool(DrawWeighted, 99)

	counts := make(map[string]int)
	for i := 0; i < 20000; i++ {
		counts[pool.Draw().Glyph]++
	}

	// E appears 12 times in the bag, Z once; over 20k draws the gap is
	// enormous.
	assert.Greater(t, counts["E"], counts["Z"]*2)
	assert.Greater(t, counts["A"], counts["Q"])
}

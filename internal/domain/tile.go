package domain

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Tile is a single spawned letter on the communal table. Tiles are immutable
// once created and are only ever referenced by ID, never by position, because
// the table mutates concurrently with client selections.
type Tile struct {
	ID        string    `json:"id"`
	Glyph     string    `json:"letter"`
	SpawnedAt time.Time `json:"spawnedAt"`
}

// tileFrequencies is the standard Scrabble tile distribution, used as the
// default draw weights.
var tileFrequencies = map[byte]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2,
	'I': 9, 'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2,
	'Q': 1, 'R': 6, 'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1,
	'Y': 2, 'Z': 1,
}

// letterScores is the standard Scrabble letter value table.
var letterScores = map[byte]int{
	'A': 1, 'E': 1, 'I': 1, 'O': 1, 'U': 1, 'L': 1, 'N': 1, 'S': 1, 'T': 1, 'R': 1,
	'D': 2, 'G': 2,
	'B': 3, 'C': 3, 'M': 3, 'P': 3,
	'F': 4, 'H': 4, 'V': 4, 'W': 4, 'Y': 4,
	'K': 5,
	'J': 8, 'X': 8,
	'Q': 10, 'Z': 10,
}

// WordScore returns the sum of the per-letter point values of word.
// Non-letter bytes score zero.
func WordScore(word string) int {
	score := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		score += letterScores[c]
	}
	return score
}

// DrawPolicy selects the letter distribution used by a TilePool.
type DrawPolicy int

const (
	// DrawWeighted draws letters with Scrabble tile frequencies.
	DrawWeighted DrawPolicy = iota
	// DrawUniform draws each of the 26 letters with equal probability.
	DrawUniform
)

// TilePool generates letter tiles. The pool owns its random source, so two
// pools seeded identically produce the same letter sequence; tile IDs are
// always fresh.
type TilePool struct {
	rng     *rand.Rand
	weights []byte // expanded alphabet, one entry per tile in the bag
}

// NewTilePool creates a pool with the given policy, seeded from seed.
func NewTilePool(policy DrawPolicy, seed int64) *TilePool {
	var weights []byte
	switch policy {
	case DrawUniform:
		for c := byte('A'); c <= 'Z'; c++ {
			weights = append(weights, c)
		}
	default:
		for c := byte('A'); c <= 'Z'; c++ {
			for i := 0; i < tileFrequencies[c]; i++ {
				weights = append(weights, c)
			}
		}
	}

	return &TilePool{
		rng:     rand.New(rand.NewSource(seed)),
		weights: weights,
	}
}

// Draw produces one fresh tile.
func (p *TilePool) Draw() Tile {
	glyph := p.weights[p.rng.Intn(len(p.weights))]
	return Tile{
		ID:        uuid.New().String(),
		Glyph:     string(glyph),
		SpawnedAt: time.Now(),
	}
}

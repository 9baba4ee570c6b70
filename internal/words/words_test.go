package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"CAT", true},
		{"cat", true},
		{"Cats", true},
		{"HOUSE", true},
		{"GARDEN", true},
		{"ZZZZ", false},
		{"", false},
		{"XY", false},      // below the shortest supported length
		{"LONGEST", false}, // above the longest supported length
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.word))
		})
	}
}

func TestCountByLength(t *testing.T) {
	for length := 3; length <= 6; length++ {
		assert.Greater(t, CountByLength(length), 0, "length %d must have entries", length)
	}
	assert.Zero(t, CountByLength(7))
}

func TestEntriesMatchTheirBucketLength(t *testing.T) {
	for length, set := range byLength {
		for word := range set {
			assert.Len(t, word, length)
		}
	}
}

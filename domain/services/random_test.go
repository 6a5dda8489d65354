package services

import (
	"testing"

	"lotofacil/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestShuffleTake(t *testing.T) {
	pool := entities.NewNumberSet(2, 4, 6, 8, 10, 12)

	for seed := uint64(0); seed < 20; seed++ {
		picked := shuffleTake(NewRandomSource(seed, seed), pool, 4)
		assert.Len(t, picked, 4)
		assert.True(t, picked.IsSubsetOf(pool))
	}

	assert.Equal(t, entities.NewNumberSet(2, 4, 6, 8, 10, 12), pool, "pool must not be modified")
	assert.Equal(t, pool, shuffleTake(NewRandomSource(1, 1), pool, 10))
	assert.Empty(t, shuffleTake(NewRandomSource(1, 1), pool, 0))
}

func TestShuffleTake_SeededIsReproducible(t *testing.T) {
	pool := entities.Universe(25)
	first := shuffleTake(NewRandomSource(42, 7), pool, 15)
	second := shuffleTake(NewRandomSource(42, 7), pool, 15)
	assert.Equal(t, first, second)
}

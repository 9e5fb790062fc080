package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawIsWithoutReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		picked := Draw(rng, 3)
		require.Len(t, picked, 3)
		seen := map[string]bool{}
		for _, b := range picked {
			assert.False(t, seen[b.Id])
			seen[b.Id] = true
		}
	}
}

func TestDrawClampsToCatalogSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Len(t, Draw(rng, 100), len(Buffs))
}

func TestCatalogIdsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Buffs {
		require.False(t, seen[b.Id], "duplicate id %s", b.Id)
		seen[b.Id] = true
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Effect)
	}
}

func TestById(t *testing.T) {
	b, err := ById("h7")
	require.NoError(t, err)
	assert.Equal(t, "Rocket Boots", b.Name)

	_, err = ById("nope")
	assert.Error(t, err)
}

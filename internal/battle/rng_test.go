package battle_test

import (
	"testing"

	"github.com/dreamtides/rules-engine/internal/battle"
	"github.com/stretchr/testify/require"
)

func TestRngDeterministicGivenSeed(t *testing.T) {
	a := battle.NewRng(7)
	b := battle.NewRng(7)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next64(), b.Next64())
	}
}

func TestRngDifferentSeedsDiverge(t *testing.T) {
	a := battle.NewRng(1)
	b := battle.NewRng(2)
	require.NotEqual(t, a.Next64(), b.Next64())
}

func TestRngIntNBounds(t *testing.T) {
	r := battle.NewRng(123)
	for i := 0; i < 1000; i++ {
		v := r.IntN(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestRngCloneMatchesOriginal(t *testing.T) {
	r := battle.NewRng(99)
	r.Next64()
	clone := r.Clone()
	require.Equal(t, r.Next64(), clone.Next64())
}

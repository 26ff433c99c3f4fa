package rng_test

import (
	"testing"

	"github.com/castdice/tumbler/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCryptoSource_FaceUniformity(t *testing.T) {
	source, err := rng.NewCryptoSource()
	require.NoError(t, err)

	const draws = 6000
	counts := make(map[int]int)
	for i := 0; i < draws; i++ {
		face := source.Face()
		require.GreaterOrEqual(t, face, 1)
		require.LessOrEqual(t, face, 6)
		counts[face]++
	}

	// Smoke test, not a proof: each face should land within ±15% of the
	// expected 1000 hits.
	for face := 1; face <= 6; face++ {
		assert.InDelta(t, 1000, counts[face], 150, "face %d", face)
	}
}

func TestCryptoSource_DurationBounds(t *testing.T) {
	source, err := rng.NewCryptoSource()
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		d := source.Duration()
		assert.GreaterOrEqual(t, d, rng.SpinMin)
		assert.Less(t, d, rng.SpinMax)
	}
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := rng.NewSeededSource(42)
	b := rng.NewSeededSource(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Face(), b.Face())
		assert.Equal(t, a.Duration(), b.Duration())
	}
}

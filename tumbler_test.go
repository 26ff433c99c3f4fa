package tumbler_test

import (
	"context"
	"testing"

	"github.com/castdice/tumbler"
	"github.com/castdice/tumbler/pkg/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_RollRoundTrip(t *testing.T) {
	sess, err := tumbler.New(
		tumbler.WithSource(rng.NewSeededSource(11)),
		tumbler.WithDiceCount(4),
		tumbler.WithFrameInterval(0),
	)
	require.NoError(t, err)
	defer sess.Close()

	require.NoError(t, sess.Roll(context.Background()))

	snap := sess.Snapshot()
	assert.Equal(t, 4, snap.DiceCount)
	assert.Equal(t, 1, snap.RollCount)
	for _, face := range snap.Faces() {
		assert.GreaterOrEqual(t, face, 1)
		assert.LessOrEqual(t, face, 6)
	}

	sess.Navigate(tumbler.DirRight)
	assert.Equal(t, 1, sess.Snapshot().FocusedIndex)
}

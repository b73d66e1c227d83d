package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeStates(t *testing.T) {
	base := NewGame(2)
	base.Board.Owned[5] = OwnedProperty{Owner: 0, RentLevel: 2}

	t.Run("identical outcomes collapse", func(t *testing.T) {
		a := base.cloneChance(1.0 / 36)
		b := base.cloneChance(2.0 / 36)

		merged := mergeStates([]*GameState{a, b}, 0)
		require.Len(t, merged, 1)
		require.Same(t, a, merged[0], "the first state seen represents its class")
		require.InDelta(t, 3.0/36, merged[0].Probability, tolerance)
	})

	t.Run("mover attributes separate", func(t *testing.T) {
		a := base.cloneChance(1.0 / 36)
		b := base.cloneChance(1.0 / 36)
		b.Players[0].Balance -= JailFine

		merged := mergeStates([]*GameState{a, b}, 0)
		require.Len(t, merged, 2)
	})

	t.Run("ownership separates", func(t *testing.T) {
		a := base.cloneChance(1.0 / 36)
		b := base.cloneChance(1.0 / 36)
		b.Board.Owned[5] = OwnedProperty{Owner: 0, RentLevel: 3}

		merged := mergeStates([]*GameState{a, b}, 0)
		require.Len(t, merged, 2, "rent levels are part of the outcome")
	})

	t.Run("pending card separates", func(t *testing.T) {
		a := base.cloneChance(1.0 / 36)
		b := base.cloneChance(1.0 / 36)
		b.Board.ActiveCard = RentLvlTo1

		merged := mergeStates([]*GameState{a, b}, 0)
		require.Len(t, merged, 2)
	})

	t.Run("merges on the acting player only", func(t *testing.T) {
		a := base.cloneChance(1.0 / 36)
		b := base.cloneChance(1.0 / 36)
		b.Players[0].Position = 18

		merged := mergeStates([]*GameState{a, b}, 1)
		require.Len(t, merged, 1,
			"keyed on player 1, player 0's position does not separate")

		merged = mergeStates([]*GameState{a.Clone(), b.Clone()}, 0)
		require.Len(t, merged, 2)
	})
}

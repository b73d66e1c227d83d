package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChanceTileEffects(t *testing.T) {
	t.Run("without properties", func(t *testing.T) {
		gs := NewGame(2)
		gs.Players[0].Position = 11

		children := gs.chanceTileEffects()
		require.Len(t, children, 9, "parking plus eight pending cards, no tax branch")

		parking := children[0]
		require.InDelta(t, 1.0/21, parking.Probability, tolerance)
		require.Equal(t, FreeParkingPosition, parking.Players[0].Position)
		require.Equal(t, FreeParkingPosition, parking.Players[1].Position)
		require.Equal(t, 1, parking.Board.Current)
		require.True(t, parking.Board.NextIsRoll)

		cardMass := 0.0
		for _, child := range children[1:] {
			require.NotEqual(t, NoCard, child.Board.ActiveCard)
			require.False(t, child.Board.NextIsRoll)
			require.Equal(t, 0, child.Board.Current, "the card decision stays with the mover")
			cardMass += child.Probability
		}
		require.InDelta(t, 14.0/21, cardMass, tolerance)
		require.InDelta(t, 3.0/21, children[1].Probability, tolerance,
			"the deck holds three copies of the first card")

		require.InDelta(t, 6.0/21, gs.Probability, tolerance,
			"unmodeled cards leave their mass on the landed branch")
	})

	t.Run("with properties", func(t *testing.T) {
		gs := NewGame(2)
		gs.Players[0].Position = 11
		gs.Board.Owned[1] = OwnedProperty{Owner: 0, RentLevel: 1}
		gs.Board.Owned[3] = OwnedProperty{Owner: 0, RentLevel: 1}
		gs.Board.Owned[5] = OwnedProperty{Owner: 1, RentLevel: 1}

		children := gs.chanceTileEffects()
		require.Len(t, children, 10)

		tax := children[0]
		require.InDelta(t, 1.0/21, tax.Probability, tolerance)
		require.Equal(t, StartingBalance-2*PropertyTax, tax.Players[0].Balance,
			"tax counts only the mover's properties")
		require.Equal(t, StartingBalance, tax.Players[1].Balance)
		require.Equal(t, 1, tax.Board.Current)

		require.InDelta(t, 5.0/21, gs.Probability, tolerance)
	})

	t.Run("parking leaves jailed players alone", func(t *testing.T) {
		gs := NewGame(2)
		gs.Players[0].Position = 11
		gs.Players[1].SendToJail()

		children := gs.chanceTileEffects()
		parking := children[0]
		require.Equal(t, FreeParkingPosition, parking.Players[0].Position)
		require.Equal(t, JailPosition, parking.Players[1].Position)
		require.True(t, parking.Players[1].InJail)
	})
}

func cardState(card ChanceCard) *GameState {
	gs := NewGame(2)
	gs.Players[0].Position = 11
	gs.Board.NextIsRoll = false
	gs.Board.ActiveCard = card
	return gs
}

func TestCardRentLevelTo1(t *testing.T) {
	gs := cardState(RentLvlTo1)
	gs.Board.Owned[5] = OwnedProperty{Owner: 0, RentLevel: 3}
	gs.Board.Owned[13] = OwnedProperty{Owner: 1, RentLevel: 1}

	children := gs.Children()
	require.Len(t, children, 1, "properties already at level 1 yield no branch")

	child := children[0]
	require.Equal(t, 1, child.Board.Owned[5].RentLevel)
	require.Equal(t, NoCard, child.Board.ActiveCard)
	require.Equal(t, 1, child.Board.Current)
	require.True(t, child.Board.NextIsRoll)
}

func TestCardRentLevelTo5(t *testing.T) {
	t.Run("own properties only", func(t *testing.T) {
		gs := cardState(RentLvlTo5)
		gs.Board.Owned[5] = OwnedProperty{Owner: 0, RentLevel: 2}
		gs.Board.Owned[13] = OwnedProperty{Owner: 1, RentLevel: 2}

		children := gs.Children()
		require.Len(t, children, 1)
		require.Equal(t, 5, children[0].Board.Owned[5].RentLevel)
		require.Equal(t, 2, children[0].Board.Owned[13].RentLevel)
	})

	t.Run("nothing to raise", func(t *testing.T) {
		gs := cardState(RentLvlTo5)
		gs.Board.Owned[5] = OwnedProperty{Owner: 0, RentLevel: 5}

		children := gs.Children()
		require.Len(t, children, 1, "a no-op card still ends the turn")
		require.Equal(t, 5, children[0].Board.Owned[5].RentLevel)
		require.Equal(t, 1, children[0].Board.Current)
	})
}

func TestCardRentForSet(t *testing.T) {
	gs := cardState(RentLvlIncForSet)
	gs.Board.Owned[10] = OwnedProperty{Owner: 0, RentLevel: 2}
	gs.Board.Owned[12] = OwnedProperty{Owner: 1, RentLevel: 5}
	gs.Board.Owned[33] = OwnedProperty{Owner: 1, RentLevel: 1}

	children := gs.Children()
	require.Len(t, children, 2, "one branch per color set with a raisable property")

	pink, blue := children[0], children[1]
	require.Equal(t, 3, pink.Board.Owned[10].RentLevel)
	require.Equal(t, 5, pink.Board.Owned[12].RentLevel, "capped property stays put")
	require.Equal(t, 1, pink.Board.Owned[33].RentLevel)
	require.Equal(t, 2, blue.Board.Owned[33].RentLevel)
	require.Equal(t, 2, blue.Board.Owned[10].RentLevel)
}

func TestCardRentForSide(t *testing.T) {
	gs := cardState(RentLvlDecForSide)
	gs.Board.Owned[1] = OwnedProperty{Owner: 0, RentLevel: 3}
	gs.Board.Owned[19] = OwnedProperty{Owner: 1, RentLevel: 1}

	children := gs.Children()
	require.Len(t, children, 1,
		"a side whose properties are all at the floor yields no branch")
	require.Equal(t, 2, children[0].Board.Owned[1].RentLevel)
	require.Equal(t, 1, children[0].Board.Owned[19].RentLevel)
}

func TestCardRentForNeighbours(t *testing.T) {
	gs := cardState(RentLvlDecForNeighbours)
	gs.Board.Owned[13] = OwnedProperty{Owner: 0, RentLevel: 2}
	gs.Board.Owned[12] = OwnedProperty{Owner: 1, RentLevel: 3}
	gs.Board.Owned[14] = OwnedProperty{Owner: 1, RentLevel: 1}

	children := gs.Children()
	require.Len(t, children, 1, "one branch per property the mover owns")

	child := children[0]
	require.Equal(t, 3, child.Board.Owned[13].RentLevel)
	require.Equal(t, 2, child.Board.Owned[12].RentLevel)
	require.Equal(t, 1, child.Board.Owned[14].RentLevel, "floored neighbour stays put")
}

func TestCardBonus(t *testing.T) {
	gs := NewGame(3)
	gs.Players[0].Position = 11
	gs.Board.NextIsRoll = false
	gs.Board.ActiveCard = BonusForYouAndOpponent

	children := gs.Children()
	require.Len(t, children, 2, "one branch per opponent")

	first := children[0]
	require.Equal(t, StartingBalance+CardBonus, first.Players[0].Balance)
	require.Equal(t, StartingBalance+CardBonus, first.Players[1].Balance)
	require.Equal(t, StartingBalance, first.Players[2].Balance)

	second := children[1]
	require.Equal(t, StartingBalance+CardBonus, second.Players[0].Balance)
	require.Equal(t, StartingBalance, second.Players[1].Balance)
	require.Equal(t, StartingBalance+CardBonus, second.Players[2].Balance)
}

func TestCardResolutionPanicsOnUnknown(t *testing.T) {
	gs := cardState(ChanceCard(99))
	require.Panics(t, func() { gs.cardChoiceEffects() })
}

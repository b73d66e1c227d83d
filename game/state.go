package game

import "fmt"

// StateKind says whether a state was reached by chance (a dice roll, with a
// probability on its incoming edge) or by a player decision (no probability
// weight attached).
type StateKind int

const (
	ChanceState StateKind = iota
	ChoiceState
)

// GameState is one node of the game tree: a snapshot of every player, the
// board, and the probability of reaching it from its parent. States are
// immutable by convention - expansion always works on deep clones, so
// sibling branches never share players or ownership tables.
type GameState struct {
	Players []Player
	Board   Board
	// Kind tells whether Probability is meaningful; choice states carry
	// none.
	Kind        StateKind
	Probability float64
}

// NewGameState bundles players and a board into a state with the given
// probability. Pass 1 for a tree root.
func NewGameState(players []Player, board Board, probability float64) *GameState {
	return &GameState{
		Players:     players,
		Board:       board,
		Kind:        ChanceState,
		Probability: probability,
	}
}

// NewGame returns a fresh count-player game: everyone at 'Go' with the
// starting balance and the first player about to roll.
func NewGame(count int) *GameState {
	return NewGameState(NewPlayers(count), NewBoard(), 1)
}

// Clone returns a deep copy; the players slice and the ownership table are
// owned exclusively by the copy.
func (gs *GameState) Clone() *GameState {
	players := make([]Player, len(gs.Players))
	copy(players, gs.Players)

	return &GameState{
		Players:     players,
		Board:       gs.Board.clone(),
		Kind:        gs.Kind,
		Probability: gs.Probability,
	}
}

func (gs *GameState) cloneChance(probability float64) *GameState {
	child := gs.Clone()
	child.Kind = ChanceState
	child.Probability = probability
	return child
}

func (gs *GameState) cloneChoice() *GameState {
	child := gs.Clone()
	child.Kind = ChoiceState
	child.Probability = 0
	return child
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() Player {
	return gs.Players[gs.Board.Current]
}

func (gs *GameState) currentPlayer() *Player {
	return &gs.Players[gs.Board.Current]
}

// CurrentPosition returns the tile the mover is on.
func (gs *GameState) CurrentPosition() int {
	return gs.Players[gs.Board.Current].Position
}

// CurrentProperty returns the static property under the mover, if any.
func (gs *GameState) CurrentProperty() (Property, bool) {
	prop, ok := Properties[gs.CurrentPosition()]
	return prop, ok
}

// setupNextPlayer hands the turn to the next player, unless the mover rolled
// doubles and goes again. Either way the next move is a roll.
func (gs *GameState) setupNextPlayer() {
	if gs.currentPlayer().DoublesRolled == 0 {
		gs.Board.Current = (gs.Board.Current + 1) % len(gs.Players)
	}
	gs.Board.NextIsRoll = true
}

// raiseRentAt bumps the rent level of the owned property at pos, reporting
// whether it wasn't already capped.
func (gs *GameState) raiseRentAt(pos int) bool {
	owned := gs.mustOwned(pos)
	if owned.RentLevel >= maxRentLevel {
		return false
	}
	owned.RentLevel++
	gs.Board.Owned[pos] = owned
	return true
}

// lowerRentAt lowers the rent level of the owned property at pos, reporting
// whether it wasn't already at the floor.
func (gs *GameState) lowerRentAt(pos int) bool {
	owned := gs.mustOwned(pos)
	if owned.RentLevel <= minRentLevel {
		return false
	}
	owned.RentLevel--
	gs.Board.Owned[pos] = owned
	return true
}

func (gs *GameState) setRentAt(pos, level int) {
	owned := gs.mustOwned(pos)
	owned.RentLevel = level
	gs.Board.Owned[pos] = owned
}

func (gs *GameState) mustOwned(pos int) OwnedProperty {
	owned, ok := gs.Board.Owned[pos]
	if !ok {
		panic(fmt.Sprintf("no owned property at position %d", pos))
	}
	return owned
}

// Children returns every state reachable in one ply: the merged dice-roll
// outcomes when the mover is about to roll, or the decision branches
// otherwise. The tree itself is unbounded; callers impose their own depth
// limits.
func (gs *GameState) Children() []*GameState {
	if gs.Board.NextIsRoll {
		return gs.rollEffects()
	}
	return gs.choiceEffects()
}

// rollEffects returns the states reachable by the next dice roll, merged by
// equivalence class.
func (gs *GameState) rollEffects() []*GameState {
	var children []*GameState

	// Choice parents carry no probability, so their roll children are
	// weighted from a full unit of mass.
	base := 1.0
	if gs.Kind == ChanceState {
		base = gs.Probability
	}

	// Apply the landing rules for the tile the mover ended up on, then
	// collect the resulting states.
	land := func(child *GameState) {
		switch KindOf(child.CurrentPosition()) {
		case ChanceTile:
			// The resolver keeps the residual mass of the cards with no
			// modeled effect on child itself
			children = append(children, child.chanceTileEffects()...)
			if child.Probability == 0 {
				return
			}
			child.setupNextPlayer()
		case CornerTile:
			// Nothing happens here, next player's turn
			child.setupNextPlayer()
		default:
			// Property or location tile: the mover has a decision to make
			child.Board.NextIsRoll = false
		}

		children = append(children, child)
	}

	if gs.CurrentPlayer().InJail {
		// Up to three tries to roll doubles out of jail; failing all of
		// them costs the fine
		for _, roll := range RollForDoubles(JailTries) {
			child := gs.cloneChance(base * roll.Probability)
			if !roll.IsDouble {
				child.currentPlayer().Balance -= JailFine
			}
			// Escaping by doubles does not count towards consecutive
			// doubles
			child.currentPlayer().MoveBy(roll.Sum)
			land(child)
		}
	} else {
		for _, roll := range SignificantRolls {
			child := gs.cloneChance(base * roll.Probability)
			child.currentPlayer().MoveBy(roll.Sum)

			if child.CurrentPosition() == GoToJailPosition {
				child.currentPlayer().SendToJail()
			} else if roll.IsDouble {
				child.currentPlayer().DoublesRolled++
				if child.currentPlayer().DoublesRolled == 3 {
					child.currentPlayer().SendToJail()
				}
			} else {
				child.currentPlayer().DoublesRolled = 0
			}

			land(child)
		}
	}

	// Different rolls can collapse into the same outcome (notably through
	// the all-to-parking card), so merge duplicates and sum their
	// probabilities.
	return mergeStates(children, gs.Board.Current)
}

// choiceEffects returns the states reachable by the mover's next decision,
// dispatched on the pending card or the tile under them. Every child ends
// the mover's turn.
func (gs *GameState) choiceEffects() []*GameState {
	var children []*GameState

	if gs.Board.ActiveCard != NoCard {
		children = gs.cardChoiceEffects()
	} else {
		switch KindOf(gs.CurrentPosition()) {
		case LocationTile:
			children = gs.locationChoiceEffects()
		case PropertyTile:
			children = gs.propertyChoiceEffects()
		default:
			// Corners require no decision
			children = []*GameState{gs.cloneChoice()}
		}
	}

	for _, child := range children {
		child.Board.ActiveCard = NoCard
		child.setupNextPlayer()
	}

	return children
}

// propertyChoiceEffects resolves landing on a property tile: buy or decline
// if unowned, bump the rent level if it's the mover's own, pay rent and bump
// if it's an opponent's.
func (gs *GameState) propertyChoiceEffects() []*GameState {
	pos := gs.CurrentPosition()
	prop, ok := Properties[pos]
	if !ok {
		panic(fmt.Sprintf("no property at position %d", pos))
	}

	owned, isOwned := gs.Board.Owned[pos]
	if !isOwned {
		decline := gs.cloneChoice()

		buy := gs.cloneChoice()
		buy.currentPlayer().Balance -= prop.Price
		buy.Board.Owned[pos] = OwnedProperty{Owner: gs.Board.Current, RentLevel: 1}

		return []*GameState{decline, buy}
	}

	child := gs.cloneChoice()
	if owned.Owner != gs.Board.Current {
		rent := prop.Rent(owned.RentLevel)
		child.Players[owned.Owner].Balance += rent
		child.currentPlayer().Balance -= rent
	}
	child.raiseRentAt(pos)

	return []*GameState{child}
}

// locationChoiceEffects teleports the mover to each ownable property in
// board order and resolves the landing there, flattening the branches into
// one list.
func (gs *GameState) locationChoiceEffects() []*GameState {
	var children []*GameState

	for _, pos := range PropertyPositions {
		moved := gs.cloneChoice()
		moved.currentPlayer().Position = pos
		children = append(children, moved.propertyChoiceEffects()...)
	}

	return children
}

package game

import "fmt"

// chanceTileEffects returns the branches for drawing a chance card, each
// weighted by its share of the 21-card deck. The receiver keeps the residual
// probability: the mass of the cards that end up having no modeled effect.
// Only called from rollEffects, on a freshly cloned child.
func (gs *GameState) chanceTileEffects() []*GameState {
	var children []*GameState
	unit := gs.Probability / TotalChanceCards

	// Property tax: pay $50 per property the mover owns
	tax := 0
	for _, owned := range gs.Board.Owned {
		if owned.Owner == gs.Board.Current {
			tax += PropertyTax
		}
	}
	if tax > 0 {
		child := gs.cloneChance(unit)
		child.currentPlayer().Balance -= tax
		child.setupNextPlayer()
		children = append(children, child)
	}

	// Move every player not in jail to free parking
	parking := gs.cloneChance(unit)
	moved := false
	for i := range parking.Players {
		p := &parking.Players[i]
		if !p.InJail && p.Position != FreeParkingPosition {
			p.Position = FreeParkingPosition
			moved = true
		}
	}
	if moved {
		parking.setupNextPlayer()
		children = append(children, parking)
	}

	// Cards that need a decision: mark the card as pending and leave the
	// turn with the mover
	for _, entry := range chanceDeck {
		child := gs.cloneChance(unit * float64(entry.Count))
		child.Board.ActiveCard = entry.Card
		child.Board.NextIsRoll = false
		children = append(children, child)
	}

	produced := 0.0
	for _, child := range children {
		produced += child.Probability
	}
	gs.Probability -= produced

	return children
}

// cardChoiceEffects resolves the pending chance card into its decision
// branches. Effects that would change nothing yield a single unchanged
// branch instead of none.
func (gs *GameState) cardChoiceEffects() []*GameState {
	switch gs.Board.ActiveCard {
	case RentLvlTo1:
		return gs.ccRentLevelTo(minRentLevel)
	case RentLvlTo5:
		return gs.ccRentLevelTo(maxRentLevel)
	case RentLvlIncForSet:
		return gs.ccRentChangeForSet(true)
	case RentLvlDecForSet:
		return gs.ccRentChangeForSet(false)
	case RentLvlIncForSide:
		return gs.ccRentChangeForSide(true)
	case RentLvlDecForSide:
		return gs.ccRentChangeForSide(false)
	case RentLvlDecForNeighbours:
		return gs.ccRentForNeighbours()
	case BonusForYouAndOpponent:
		return gs.ccBonus()
	default:
		panic(fmt.Sprintf("cannot resolve chance card %v", gs.Board.ActiveCard))
	}
}

func (gs *GameState) ccRentLevelTo(level int) []*GameState {
	var children []*GameState

	for _, pos := range PropertyPositions {
		owned, ok := gs.Board.Owned[pos]
		if !ok {
			continue
		}
		// Only the mover's own properties can be pushed to the top level
		if level == maxRentLevel && owned.Owner != gs.Board.Current {
			continue
		}
		if owned.RentLevel == level {
			continue
		}

		child := gs.cloneChoice()
		child.setRentAt(pos, level)
		children = append(children, child)
	}

	return gs.orUnchanged(children)
}

func (gs *GameState) ccRentChangeForSet(increase bool) []*GameState {
	var children []*GameState

	for _, color := range colorOrder {
		child := gs.cloneChoice()
		changed := false
		for _, pos := range PropsByColor[color] {
			if _, ok := child.Board.Owned[pos]; !ok {
				continue
			}
			if increase {
				changed = child.raiseRentAt(pos) || changed
			} else {
				changed = child.lowerRentAt(pos) || changed
			}
		}
		if changed {
			children = append(children, child)
		}
	}

	return gs.orUnchanged(children)
}

func (gs *GameState) ccRentChangeForSide(increase bool) []*GameState {
	var children []*GameState

	for _, side := range PropsBySide {
		child := gs.cloneChoice()
		changed := false
		for _, pos := range side {
			if _, ok := child.Board.Owned[pos]; !ok {
				continue
			}
			if increase {
				changed = child.raiseRentAt(pos) || changed
			} else {
				changed = child.lowerRentAt(pos) || changed
			}
		}
		if changed {
			children = append(children, child)
		}
	}

	return gs.orUnchanged(children)
}

// ccRentForNeighbours raises the rent level of one of the mover's properties
// and lowers both of its closest property neighbours', one branch per owned
// property.
func (gs *GameState) ccRentForNeighbours() []*GameState {
	var children []*GameState

	for _, pos := range PropertyPositions {
		owned, ok := gs.Board.Owned[pos]
		if !ok || owned.Owner != gs.Board.Current {
			continue
		}

		child := gs.cloneChoice()
		changed := child.raiseRentAt(pos)
		for _, neighbour := range PropertyNeighbours[pos] {
			if _, ok := child.Board.Owned[neighbour]; ok {
				changed = child.lowerRentAt(neighbour) || changed
			}
		}
		if changed {
			children = append(children, child)
		}
	}

	return gs.orUnchanged(children)
}

func (gs *GameState) ccBonus() []*GameState {
	var children []*GameState

	for i := range gs.Players {
		if i == gs.Board.Current {
			continue
		}

		child := gs.cloneChoice()
		child.currentPlayer().Balance += CardBonus
		child.Players[i].Balance += CardBonus
		children = append(children, child)
	}

	return gs.orUnchanged(children)
}

// orUnchanged guards probability conservation: an effect with no branches
// yields one unchanged clone instead of none.
func (gs *GameState) orUnchanged(children []*GameState) []*GameState {
	if len(children) > 0 {
		return children
	}
	return []*GameState{gs.cloneChoice()}
}

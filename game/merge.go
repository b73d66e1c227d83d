package game

// numProperties is the number of ownable tiles on the board.
const numProperties = 22

// ownershipCell is one slot of a merge key's property table. Owner is -1
// for unowned positions.
type ownershipCell struct {
	owner int8
	rent  int8
}

// mergeKey identifies the equivalence class of a roll outcome: the acting
// player's post-move record, the full ownership table in board order, and
// the pending chance card. The struct is comparable, so states merge on
// structural equality rather than on a serialized form.
type mergeKey struct {
	player Player
	card   ChanceCard
	props  [numProperties]ownershipCell
}

// key builds the merge key for this state. actor is the index of the player
// who moved this ply, taken before any turn advancement in the child.
func (gs *GameState) key(actor int) mergeKey {
	k := mergeKey{
		player: gs.Players[actor],
		card:   gs.Board.ActiveCard,
	}

	for i := range k.props {
		k.props[i].owner = -1
	}
	for i, pos := range PropertyPositions {
		if owned, ok := gs.Board.Owned[pos]; ok {
			k.props[i] = ownershipCell{
				owner: int8(owned.Owner),
				rent:  int8(owned.RentLevel),
			}
		}
	}

	return k
}

// mergeStates collapses roll outcomes that play out identically, summing
// their probabilities. The first state seen for a class stays as its
// representative; which one represents a class is incidental, the summed
// probability is the contract.
func mergeStates(children []*GameState, actor int) []*GameState {
	merged := make([]*GameState, 0, len(children))
	seen := make(map[mergeKey]int, len(children))

	for _, child := range children {
		k := child.key(actor)
		if i, ok := seen[k]; ok {
			merged[i].Probability += child.Probability
			continue
		}
		seen[k] = len(merged)
		merged = append(merged, child)
	}

	return merged
}

package experiments

import (
	"monopoly/game"
)

// LandingProbabilities estimates how likely each board tile is to be the
// resting place of a mover's roll, by expanding the tree from root for the
// given number of plies and accumulating the probability mass of every roll
// outcome at the acting player's resulting position. Decision plies split
// their mass evenly across the branches, since no probabilities attach to
// them. The result is normalized to sum to 1.
func LandingProbabilities(root *game.GameState, depth int) [game.BoardSize]float64 {
	var landings [game.BoardSize]float64
	accumulate(root, 1, depth, &landings)

	total := 0.0
	for _, mass := range landings {
		total += mass
	}
	if total > 0 {
		for i := range landings {
			landings[i] /= total
		}
	}

	return landings
}

func accumulate(gs *game.GameState, mass float64, depth int, landings *[game.BoardSize]float64) {
	if depth == 0 {
		return
	}

	mover := gs.Board.Current
	fromRoll := gs.Board.NextIsRoll
	children := gs.Children()
	if len(children) == 0 {
		return
	}

	if fromRoll {
		// Children of a roll carry probabilities summing to the parent's
		// mass unit; rescale them onto the walk's own mass.
		total := 0.0
		for _, child := range children {
			total += child.Probability
		}
		for _, child := range children {
			weight := mass * child.Probability / total
			landings[child.Players[mover].Position] += weight
			accumulate(child, weight, depth-1, landings)
		}
		return
	}

	weight := mass / float64(len(children))
	for _, child := range children {
		accumulate(child, weight, depth-1, landings)
	}
}

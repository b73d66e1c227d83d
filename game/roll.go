package game

import "math"

// DiceRoll is one canonical outcome of rolling two six-sided dice, after
// merging combinations with identical downstream effect: doubles are kept
// apart per value (they trigger the doubles rules), non-doubles collapse
// into one entry per sum.
type DiceRoll struct {
	// Probability of rolling this configuration.
	Probability float64
	// Sum of the two dice.
	Sum int
	// Whether both dice landed on the same number.
	IsDouble bool
}

// SignificantRolls holds every canonical dice roll: 6 doubles at 1/36 each
// plus the merged non-double sums 3 through 11. 15 entries, probabilities
// summing to 1.
var SignificantRolls = significantRolls()

// singleProbability is the probability of not rolling a double in one try.
var singleProbability = func() float64 {
	p := 0.0
	for _, roll := range SignificantRolls {
		if !roll.IsDouble {
			p += roll.Probability
		}
	}
	return p
}()

func significantRolls() []DiceRoll {
	var rolls []DiceRoll
	probability := 1.0 / 36

	// Loop through all 36 ordered dice results
	for d1 := 1; d1 <= 6; d1++ {
		for d2 := 1; d2 <= 6; d2++ {
			roll := DiceRoll{
				Probability: probability,
				Sum:         d1 + d2,
				IsDouble:    d1 == d2,
			}

			merged := false
			for i := range rolls {
				if rolls[i].Sum == roll.Sum && rolls[i].IsDouble == roll.IsDouble {
					rolls[i].Probability += probability
					merged = true
					break
				}
			}
			if !merged {
				rolls = append(rolls, roll)
			}
		}
	}

	return rolls
}

// RollForDoubles returns the distribution of rolling up to tries times and
// stopping at the first double.
//
// Let P(S) be the probability that a double is not attained in one roll and
// P(r) the probability of the canonical roll r. The final roll being a
// double d has probability sum_(i=0)^(n-1) P(d) * P(S)^i. The final roll
// being a non-double r, meaning all n rolls failed, has probability
// P(r) * P(S)^(n-1). The closed form keeps the reroll dimension bounded.
func RollForDoubles(tries int) []DiceRoll {
	rolls := make([]DiceRoll, len(SignificantRolls))

	for i, roll := range SignificantRolls {
		if roll.IsDouble {
			p := 0.0
			for j := 0; j < tries; j++ {
				p += roll.Probability * math.Pow(singleProbability, float64(j))
			}
			roll.Probability = p
		} else {
			roll.Probability *= math.Pow(singleProbability, float64(tries-1))
		}
		rolls[i] = roll
	}

	return rolls
}

package game

// ChanceCard identifies a chance card that requires the player to make a
// choice before their turn ends. Cards that change properties only apply to
// owned ones; an effect that would change nothing collapses to a single
// unchanged branch so no probability mass disappears.
type ChanceCard int

const (
	// NoCard means no chance card is pending.
	NoCard ChanceCard = iota
	// RentLvlTo1 sets any owned property's rent level to 1.
	RentLvlTo1
	// RentLvlTo5 sets one of the mover's own properties' rent level to 5.
	RentLvlTo5
	// RentLvlIncForSet raises the rent level of every owned property in a
	// chosen color set by 1.
	RentLvlIncForSet
	// RentLvlDecForSet lowers the rent level of every owned property in a
	// chosen color set by 1.
	RentLvlDecForSet
	// RentLvlIncForSide raises the rent level of every owned property on a
	// chosen side of the board by 1.
	RentLvlIncForSide
	// RentLvlDecForSide lowers the rent level of every owned property on a
	// chosen side of the board by 1.
	RentLvlDecForSide
	// RentLvlDecForNeighbours raises the rent level of one of the mover's
	// properties by 1 and lowers both of its property neighbours' by 1.
	RentLvlDecForNeighbours
	// BonusForYouAndOpponent awards $200 to the mover and to a chosen
	// opponent.
	BonusForYouAndOpponent
)

func (c ChanceCard) String() string {
	switch c {
	case NoCard:
		return "none"
	case RentLvlTo1:
		return "rent level to 1"
	case RentLvlTo5:
		return "rent level to 5"
	case RentLvlIncForSet:
		return "raise rent for color set"
	case RentLvlDecForSet:
		return "lower rent for color set"
	case RentLvlIncForSide:
		return "raise rent for board side"
	case RentLvlDecForSide:
		return "lower rent for board side"
	case RentLvlDecForNeighbours:
		return "rent spike for neighbours"
	case BonusForYouAndOpponent:
		return "bonus for you and opponent"
	default:
		return "unknown"
	}
}

// TotalChanceCards is the size of the chance deck.
const TotalChanceCards = 21

const (
	// PropertyTax is deducted per owned property by the property tax card.
	PropertyTax = 50
	// CardBonus is awarded by the bonus card, to the mover and to the
	// chosen opponent each.
	CardBonus = 200
)

// chanceDeck is the modeled choiceful portion of the 21-card deck: each card
// and how many copies the deck holds. The property tax and all-to-parking
// cards are handled directly by the chance-tile resolver, and the five
// remaining cards (level-1 rent, swap property, opponent to jail, move to
// any property) are unmodeled, so their mass stays with the residual branch.
var chanceDeck = []struct {
	Card  ChanceCard
	Count int
}{
	{RentLvlTo1, 3},
	{RentLvlTo5, 1},
	{RentLvlIncForSet, 3},
	{RentLvlDecForSet, 1},
	{RentLvlIncForSide, 1},
	{RentLvlDecForSide, 1},
	{RentLvlDecForNeighbours, 2},
	{BonusForYouAndOpponent, 2},
}

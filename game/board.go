package game

import "fmt"

// Board positions run clockwise with 'Go' at 0 and the last tile at 35.
const (
	BoardSize           = 36
	JailPosition        = 9
	FreeParkingPosition = 18
	GoToJailPosition    = 27
)

const (
	// GoBonus is credited when a player passes 'Go'.
	GoBonus = 200
	// JailFine is paid after failing to roll doubles out of jail.
	JailFine = 100
	// JailTries is how many rolls a player gets to escape jail.
	JailTries = 3
)

const (
	minRentLevel = 1
	maxRentLevel = 5
)

// Color is the color set a property belongs to.
type Color int

const (
	Brown Color = iota
	LightBlue
	Pink
	Orange
	Red
	Yellow
	Green
	Blue
)

// colorOrder fixes the enumeration order of color sets for card effects.
var colorOrder = []Color{Brown, LightBlue, Pink, Orange, Red, Yellow, Green, Blue}

// Property is a static, ownable tile.
type Property struct {
	Color Color
	Price int
	// Rents[0] is the rent amount at rent level 1, Rents[4] at level 5.
	Rents [5]int
}

// Rent returns the rent amount at the given rent level.
func (p Property) Rent(level int) int {
	if level < minRentLevel || level > maxRentLevel {
		panic(fmt.Sprintf("rent level %d out of range", level))
	}
	return p.Rents[level-1]
}

// OwnedProperty is the mutable ownership state of a property tile. A
// property is owned iff it has an entry in Board.Owned, and an owned
// property always has a rent level between 1 and 5.
type OwnedProperty struct {
	// Owner is the index of the owning player.
	Owner int
	// RentLevel starts at 1 when bought and caps out at 5.
	RentLevel int
}

// Board bundles the mutable board state: the ownership table, whose turn it
// is, whether that turn starts with a roll, and any chance card awaiting a
// decision.
type Board struct {
	// Owned maps a property position to its ownership state. Positions
	// missing from the table are unowned.
	Owned map[int]OwnedProperty
	// Current is the index of the player whose turn it is.
	Current int
	// NextIsRoll is true when the next move is a dice roll rather than a
	// player decision.
	NextIsRoll bool
	// ActiveCard is the chance card the current player must act on, or
	// NoCard. A pending card implies NextIsRoll is false.
	ActiveCard ChanceCard
}

// NewBoard returns an empty board about to receive the first roll.
func NewBoard() Board {
	return Board{
		Owned:      make(map[int]OwnedProperty),
		NextIsRoll: true,
	}
}

func (b Board) clone() Board {
	owned := make(map[int]OwnedProperty, len(b.Owned))
	for pos, prop := range b.Owned {
		owned[pos] = prop
	}
	b.Owned = owned
	return b
}

// TileKind classifies a board position.
type TileKind int

const (
	PropertyTile TileKind = iota
	LocationTile
	ChanceTile
	CornerTile
)

func (k TileKind) String() string {
	switch k {
	case PropertyTile:
		return "property"
	case LocationTile:
		return "location"
	case ChanceTile:
		return "chance"
	default:
		return "corner"
	}
}

// KindOf classifies a position. Anything that is not a property, location or
// chance-card tile is a corner ('Go', jail, free parking, go to jail).
func KindOf(pos int) TileKind {
	if _, ok := Properties[pos]; ok {
		return PropertyTile
	}
	if LocationPositions[pos] {
		return LocationTile
	}
	if ChancePositions[pos] {
		return ChanceTile
	}
	return CornerTile
}

// LocationPositions are the teleport tiles.
var LocationPositions = map[int]bool{7: true, 16: true, 25: true, 34: true}

// ChancePositions are the chance-card tiles.
var ChancePositions = map[int]bool{2: true, 4: true, 11: true, 20: true, 29: true, 32: true}

// CornerPositions are 'Go', jail, free parking and 'go to jail'.
var CornerPositions = map[int]bool{0: true, 9: true, 18: true, 27: true}

// Properties holds every ownable tile keyed by board position.
var Properties = map[int]Property{
	1:  {Brown, 60, [5]int{70, 130, 220, 370, 750}},
	3:  {Brown, 60, [5]int{70, 130, 220, 370, 750}},
	5:  {LightBlue, 100, [5]int{80, 140, 240, 410, 800}},
	6:  {LightBlue, 100, [5]int{80, 140, 240, 410, 800}},
	8:  {LightBlue, 120, [5]int{100, 160, 260, 440, 860}},
	10: {Pink, 140, [5]int{110, 180, 290, 460, 900}},
	12: {Pink, 140, [5]int{110, 180, 290, 460, 900}},
	13: {Pink, 160, [5]int{130, 200, 310, 490, 980}},
	14: {Orange, 180, [5]int{140, 210, 330, 520, 1000}},
	15: {Orange, 180, [5]int{140, 210, 330, 520, 1000}},
	17: {Orange, 200, [5]int{160, 230, 350, 550, 1100}},
	19: {Red, 220, [5]int{170, 250, 380, 580, 1160}},
	21: {Red, 220, [5]int{170, 250, 380, 580, 1160}},
	22: {Red, 240, [5]int{190, 270, 400, 610, 1200}},
	23: {Yellow, 260, [5]int{200, 280, 420, 640, 1300}},
	24: {Yellow, 260, [5]int{200, 280, 420, 640, 1300}},
	26: {Yellow, 280, [5]int{220, 300, 440, 670, 1340}},
	28: {Green, 300, [5]int{230, 320, 460, 700, 1400}},
	30: {Green, 300, [5]int{230, 320, 460, 700, 1400}},
	31: {Green, 320, [5]int{250, 340, 480, 730, 1440}},
	33: {Blue, 350, [5]int{270, 360, 510, 740, 1500}},
	35: {Blue, 400, [5]int{300, 400, 560, 810, 1600}},
}

// PropertyPositions lists the ownable positions in clockwise board order.
// Branch enumerations iterate this instead of the Properties map so child
// ordering stays deterministic.
var PropertyPositions = []int{
	1, 3, 5, 6, 8, 10, 12, 13, 14, 15, 17, 19, 21, 22, 23, 24, 26, 28, 30, 31, 33, 35,
}

// PropsByColor groups property positions by color set.
var PropsByColor = map[Color][]int{
	Brown:     {1, 3},
	LightBlue: {5, 6, 8},
	Pink:      {10, 12, 13},
	Orange:    {14, 15, 17},
	Red:       {19, 21, 22},
	Yellow:    {23, 24, 26},
	Green:     {28, 30, 31},
	Blue:      {33, 35},
}

// PropsBySide groups property positions by board side; side i covers
// positions 9i through 9i+8, so side 0 holds 'Go' and jail and side 3 holds
// 'go to jail'.
var PropsBySide = [4][]int{
	{1, 3, 5, 6, 8},
	{10, 12, 13, 14, 15, 17},
	{19, 21, 22, 23, 24, 26},
	{28, 30, 31, 33, 35},
}

// PropertyNeighbours maps a property position to the closest property
// anticlockwise and clockwise of it, regardless of ownership or distance.
var PropertyNeighbours = map[int][2]int{
	1:  {35, 3},
	3:  {1, 5},
	5:  {3, 6},
	6:  {5, 8},
	8:  {6, 10},
	10: {8, 12},
	12: {10, 13},
	13: {12, 14},
	14: {13, 15},
	15: {14, 17},
	17: {15, 19},
	19: {17, 21},
	21: {19, 22},
	22: {21, 23},
	23: {22, 24},
	24: {23, 26},
	26: {24, 28},
	28: {26, 30},
	30: {28, 31},
	31: {30, 33},
	33: {31, 35},
	35: {33, 1},
}

package game

// StartingBalance is every player's balance at the start of a game.
const StartingBalance = 1500

// Player is the per-player record: board position, cash balance, jail status
// and the consecutive doubles counter. Players are plain values; each game
// state owns its own copies.
type Player struct {
	Position      int
	Balance       int
	InJail        bool
	DoublesRolled int
}

// NewPlayers returns count players at 'Go' with the starting balance.
func NewPlayers(count int) []Player {
	players := make([]Player, count)
	for i := range players {
		players[i].Balance = StartingBalance
	}
	return players
}

// MoveBy moves the player clockwise by the given number of tiles, crediting
// the passing-Go bonus on wraparound. Moving by zero never releases the
// player from jail.
func (p *Player) MoveBy(amount int) {
	newPos := (p.Position + amount) % BoardSize

	if p.InJail && amount != 0 {
		p.InJail = false
	}

	// Wrapping around the board means the player passed 'Go'
	if newPos < p.Position {
		p.Balance += GoBonus
	}

	p.Position = newPos
}

// SendToJail puts the player in jail and resets their doubles counter.
func (p *Player) SendToJail() {
	p.Position = JailPosition
	p.InJail = true
	p.DoublesRolled = 0
}

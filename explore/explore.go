package explore

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"monopoly/game"
)

// node is one level of the browsing path: a state plus its lazily expanded
// children.
type node struct {
	state    *game.GameState
	children []*game.GameState
	expanded bool
}

func (n *node) kids() []*game.GameState {
	if !n.expanded {
		n.children = n.state.Children()
		n.expanded = true
	}
	return n.children
}

// Model is an interactive game tree browser: arrow keys move over a state's
// children, enter descends into one, backspace climbs back up.
type Model struct {
	path   []*node
	cursor int
}

func NewModel(root *game.GameState) Model {
	return Model{
		path: []*node{{state: root}},
	}
}

func (m Model) current() *node {
	return m.path[len(m.path)-1]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.current().kids())-1 {
			m.cursor++
		}
	case "enter", "right", "l":
		kids := m.current().kids()
		if m.cursor < len(kids) {
			m.path = append(m.path, &node{state: kids[m.cursor]})
			m.cursor = 0
		}
	case "backspace", "left", "h":
		if len(m.path) > 1 {
			m.path = m.path[:len(m.path)-1]
			m.cursor = 0
		}
	}

	return m, nil
}

func (m Model) View() string {
	current := m.current()
	kids := current.kids()

	s := fmt.Sprintf("Depth: %d\n", len(m.path)-1)
	s += describeState(current.state) + "\n"

	if current.state.Board.NextIsRoll {
		mass := 0.0
		for _, child := range kids {
			mass += child.Probability
		}
		s += fmt.Sprintf("Roll outcomes: %d (mass %.6f", len(kids), mass)
		// A roll's children must cover its parent's mass exactly.
		expected := 1.0
		if current.state.Kind == game.ChanceState {
			expected = current.state.Probability
		}
		if math.Abs(mass-expected) > 1e-9 {
			s += fmt.Sprintf(", expected %.6f!", expected)
		}
		s += ")\n\n"
	} else {
		s += fmt.Sprintf("Decision branches: %d\n\n", len(kids))
	}

	for i, child := range kids {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		s += marker + describeChild(child) + "\n"
	}

	s += "\nup/down select, enter descend, backspace ascend, q quit.\n"
	return s
}

func describeState(gs *game.GameState) string {
	var b strings.Builder

	if gs.Kind == game.ChanceState {
		fmt.Fprintf(&b, "Chance state, p=%.6f\n", gs.Probability)
	} else {
		b.WriteString("Choice state\n")
	}

	for i, p := range gs.Players {
		mover := " "
		if i == gs.Board.Current {
			mover = "*"
		}
		jail := ""
		if p.InJail {
			jail = " [jail]"
		}
		fmt.Fprintf(&b, "%s P%d at %d (%s) $%d%s\n",
			mover, i, p.Position, game.KindOf(p.Position), p.Balance, jail)
	}

	if gs.Board.ActiveCard != game.NoCard {
		fmt.Fprintf(&b, "Pending card: %s\n", gs.Board.ActiveCard)
	}
	fmt.Fprintf(&b, "Owned properties: %d", len(gs.Board.Owned))

	return b.String()
}

func describeChild(gs *game.GameState) string {
	mover := gs.Board.Current
	p := gs.Players[mover]

	desc := fmt.Sprintf("P%d at %d (%s) $%d", mover, p.Position, game.KindOf(p.Position), p.Balance)
	if gs.Kind == game.ChanceState {
		desc = fmt.Sprintf("p=%.6f  %s", gs.Probability, desc)
	}
	if gs.Board.ActiveCard != game.NoCard {
		desc += fmt.Sprintf("  card: %s", gs.Board.ActiveCard)
	}
	if p.InJail {
		desc += "  [jail]"
	}
	return desc
}

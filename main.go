package main

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"monopoly/experiments"
	"monopoly/explore"
	"monopoly/game"
)

type config struct {
	// Mode selects what to do with the tree: "expand" prints the root's
	// children, "walk" plays random moves, "landing" writes landing
	// probabilities to csv, "explore" opens the interactive browser.
	Mode    string `env:"MODE" envDefault:"expand"`
	Players int    `env:"PLAYERS" envDefault:"2"`
	// Depth bounds the landing-probability expansion, in plies.
	Depth int    `env:"DEPTH" envDefault:"4"`
	Steps int    `env:"STEPS" envDefault:"50"`
	Seed  uint64 `env:"SEED" envDefault:"1"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to parse config")
	}

	root := game.NewGame(cfg.Players)

	switch cfg.Mode {
	case "expand":
		expand(root)
	case "walk":
		walk(root, cfg.Steps, cfg.Seed)
	case "landing":
		landing(root, cfg.Depth)
	case "explore":
		program := tea.NewProgram(explore.NewModel(root), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			log.Fatal().Err(err).Msg("Browser failed")
		}
	default:
		log.Fatal().Str("mode", cfg.Mode).Msg("Unknown mode")
	}
}

func expand(root *game.GameState) {
	children := root.Children()

	mass := 0.0
	for _, child := range children {
		mover := child.Board.Current
		event := log.Info().
			Float64("probability", child.Probability).
			Int("position", child.Players[mover].Position).
			Stringer("tile", game.KindOf(child.Players[mover].Position))
		if child.Board.ActiveCard != game.NoCard {
			event = event.Stringer("card", child.Board.ActiveCard)
		}
		event.Msg("Child")
		mass += child.Probability
	}

	log.Info().Int("children", len(children)).Float64("mass", mass).Msg("Expanded root")
}

func walk(root *game.GameState, steps int, seed uint64) {
	rng := rand.New(rand.NewSource(seed))
	state := root

	for step := 0; step < steps; step++ {
		next := pick(rng, state)
		mover := state.Board.Current
		log.Info().
			Int("step", step).
			Int("player", mover).
			Int("position", next.Players[mover].Position).
			Int("balance", next.Players[mover].Balance).
			Bool("roll", state.Board.NextIsRoll).
			Msg("Walked")
		state = next
	}

	for i, p := range state.Players {
		log.Info().Int("player", i).Int("balance", p.Balance).Int("position", p.Position).Msg("Final")
	}
}

// pick samples a child, weighted by probability after a roll and uniformly
// across decision branches.
func pick(rng *rand.Rand, gs *game.GameState) *game.GameState {
	children := gs.Children()

	if !gs.Board.NextIsRoll {
		return children[rng.Intn(len(children))]
	}

	total := 0.0
	for _, child := range children {
		total += child.Probability
	}
	target := rng.Float64() * total
	for _, child := range children {
		target -= child.Probability
		if target <= 0 {
			return child
		}
	}
	return children[len(children)-1]
}

func landing(root *game.GameState, depth int) {
	start := time.Now()
	landings := experiments.LandingProbabilities(root, depth)
	log.Info().Dur("took", time.Since(start)).Int("depth", depth).Msg("Computed landing probabilities")

	for pos, probability := range landings {
		if probability == 0 {
			continue
		}
		log.Info().
			Int("position", pos).
			Stringer("tile", game.KindOf(pos)).
			Float64("probability", probability).
			Msg("Landing")
	}

	writer, err := experiments.NewWriter()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create writer")
	}
	if err := writer.WriteLanding(landings); err != nil {
		log.Fatal().Err(err).Msg("Failed to write landing probabilities")
	}
}

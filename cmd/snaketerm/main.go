package main

import (
	"flag"
	"fmt"
	"os"

	"gridsnake/internal/game"
	"gridsnake/internal/term"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.Sound = false

	grid := flag.Int("grid", cfg.GridSize, "grid size in cells (10-40)")
	difficulty := flag.String("difficulty", "normal", "easy, normal, hard, or insane")
	mode := flag.String("mode", "classic", "classic, arcade, survival, challenge, or multiplayer")
	theme := flag.String("theme", "classic", "color theme: classic, neon, or mono")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = from clock)")
	flag.Parse()

	cfg.GridSize = *grid
	cfg.Difficulty = game.ParseDifficulty(*difficulty)
	cfg.Mode = game.ParseMode(*mode)
	cfg.Theme = *theme
	cfg.Seed = *seed

	if err := term.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

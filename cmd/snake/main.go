package main

import (
	"flag"
	"fmt"
	"os"

	"gridsnake/internal/game"
)

func main() {
	cfg := game.DefaultConfig()

	grid := flag.Int("grid", cfg.GridSize, "grid size in cells (10-40)")
	cell := flag.Int("cell", cfg.CellSize, "cell size in pixels")
	difficulty := flag.String("difficulty", "normal", "easy, normal, hard, or insane")
	mode := flag.String("mode", "classic", "classic, arcade, survival, challenge, or multiplayer")
	theme := flag.String("theme", "classic", "color theme: classic, neon, or mono")
	sound := flag.Bool("sound", true, "enable sound effects")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = from clock)")
	flag.Parse()

	cfg.GridSize = *grid
	cfg.CellSize = *cell
	cfg.Difficulty = game.ParseDifficulty(*difficulty)
	cfg.Mode = game.ParseMode(*mode)
	cfg.Theme = *theme
	cfg.Sound = *sound
	cfg.Seed = *seed

	if err := game.RunDesktop(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

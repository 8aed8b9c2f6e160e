// Package term is a terminal front-end for the engine, for running without
// a GL context. It draws the board as a rune grid and maps arrow/WASD keys
// to direction requests.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
)

const frameInterval = 16 * time.Millisecond

func color(c game.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run drives the engine from a tcell screen until the player quits.
func Run(cfg game.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	engine := game.New(cfg)
	theme := game.ThemeByName(cfg.Theme)

	events := make(chan tcell.Event, 8)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return nil
		case ev := <-events:
			if done := handleEvent(ev, engine, screen); done {
				return nil
			}
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			engine.Update(dt)
			draw(screen, engine, theme)
		}
	}
}

func handleEvent(ev tcell.Event, engine *game.Engine, screen tcell.Screen) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			engine.ChangeDirection(game.DirUp)
		case tcell.KeyDown:
			engine.ChangeDirection(game.DirDown)
		case tcell.KeyLeft:
			engine.ChangeDirection(game.DirLeft)
		case tcell.KeyRight:
			engine.ChangeDirection(game.DirRight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'w', 'k':
				engine.ChangeDirection(game.DirUp)
			case 's', 'j':
				engine.ChangeDirection(game.DirDown)
			case 'a', 'h':
				engine.ChangeDirection(game.DirLeft)
			case 'd', 'l':
				engine.ChangeDirection(game.DirRight)
			case ' ', 'p':
				switch engine.State() {
				case game.StateMenu, game.StateGameOver:
					engine.Init()
				case game.StatePlaying:
					engine.SetState(game.StatePaused)
				case game.StatePaused:
					engine.SetState(game.StatePlaying)
				}
			}
		}
	}
	return false
}

// draw renders one frame. Cells are two columns wide so the board stays
// roughly square in a character grid.
func draw(screen tcell.Screen, engine *game.Engine, theme game.Theme) {
	screen.Clear()

	grid := engine.Config().GridSize
	bg := tcell.StyleDefault.Background(color(theme.Background))

	put := func(p game.Position, r rune, fg game.RGB) {
		st := bg.Foreground(color(fg)).Bold(true)
		screen.SetContent(1+p.X*2, 1+p.Y, r, nil, st)
		screen.SetContent(1+p.X*2+1, 1+p.Y, ' ', nil, st)
	}

	// Border.
	border := bg.Foreground(color(theme.Grid))
	for x := 0; x <= grid*2+1; x++ {
		screen.SetContent(x, 0, '─', nil, border)
		screen.SetContent(x, grid+1, '─', nil, border)
	}
	for y := 0; y <= grid+1; y++ {
		screen.SetContent(0, y, '│', nil, border)
		screen.SetContent(grid*2+1, y, '│', nil, border)
	}
	screen.SetContent(0, 0, '┌', nil, border)
	screen.SetContent(grid*2+1, 0, '┐', nil, border)
	screen.SetContent(0, grid+1, '└', nil, border)
	screen.SetContent(grid*2+1, grid+1, '┘', nil, border)

	for _, ob := range engine.Obstacles() {
		c := theme.Obstacle
		r := '▒'
		if ob.Movable {
			c = theme.ObstacleMoving
			r = '▓'
		}
		put(ob.Pos, r, c)
	}
	for _, pu := range engine.PowerUps() {
		put(pu.Pos, '◆', theme.PowerUp)
	}
	if food, ok := engine.Food(); ok {
		put(food.Pos, '●', theme.FoodColor(food.Kind))
	}
	sn := engine.Snake()
	for i := len(sn.Segments) - 1; i >= 1; i-- {
		put(sn.Segments[i], '■', theme.SnakeBody)
	}
	put(sn.Head(), '█', theme.SnakeHead)

	drawStatus(screen, engine, bg, grid)
	screen.Show()
}

func drawStatus(screen tcell.Screen, engine *game.Engine, style tcell.Style, grid int) {
	st := engine.Stats()
	var line string
	switch engine.State() {
	case game.StateMenu:
		line = "space: start   q: quit"
	case game.StatePaused:
		line = fmt.Sprintf("paused   score %d   space: resume", st.Score)
	case game.StateGameOver:
		line = fmt.Sprintf("game over   score %d   best %d   space: restart", st.Score, st.HighScore)
	default:
		line = fmt.Sprintf("score %d   level %d   lives %d", st.Score, st.Level, st.Lives)
		if st.Combo > 1 {
			line += fmt.Sprintf("   combo x%d", st.Combo)
		}
		if eff, ok := engine.ActiveEffect(); ok {
			line += fmt.Sprintf("   %s %.1fs", eff.Kind, eff.Remaining())
		}
	}
	for i, r := range line {
		screen.SetContent(1+i, grid+2, r, nil, style.Foreground(tcell.ColorWhite))
	}
}

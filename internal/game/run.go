package game

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// RunDesktop opens a GLFW window and drives the engine from the display
// loop until the window closes.
func RunDesktop(cfg Config) error {
	runtime.LockOSThread()

	cfg = cfg.normalized()
	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	engine := New(cfg)

	if cfg.Sound {
		if err := InitAudio(); err != nil {
			fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
		} else {
			AttachAudio(engine)
		}
	}

	rend, err := NewRenderer(ThemeByName(cfg.Theme))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	input := NewInput()

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch engine.State() {
		case StateMenu, StateGameOver:
			if input.JustPressed(window, glfw.KeySpace) {
				PlaySound(SoundMenuSelect)
				engine.Init()
			}
		case StatePlaying:
			if input.JustPressed(window, glfw.KeySpace) || input.JustPressed(window, glfw.KeyP) {
				engine.SetState(StatePaused)
			}
		case StatePaused:
			if input.JustPressed(window, glfw.KeySpace) || input.JustPressed(window, glfw.KeyP) {
				engine.SetState(StatePlaying)
			}
		}

		if d, ok := input.ReadDirection(window); ok {
			engine.ChangeDirection(d)
		}

		engine.Update(dt)
		rend.DrawFrame(engine, fbW, fbH)
		window.SetTitle(windowTitle(engine))
		window.SwapBuffers()
	}
	return nil
}

func windowTitle(e *Engine) string {
	st := e.Stats()
	switch e.State() {
	case StateMenu:
		return "Grid Snake | space to start"
	case StatePaused:
		return fmt.Sprintf("Grid Snake | paused | score %d", st.Score)
	case StateGameOver:
		return fmt.Sprintf("Grid Snake | game over | score %d | best %d | space to restart", st.Score, st.HighScore)
	}
	title := fmt.Sprintf("Grid Snake | score %d | level %d | lives %d", st.Score, st.Level, st.Lives)
	if st.Combo > 1 {
		title += fmt.Sprintf(" | combo x%d", st.Combo)
	}
	if eff, ok := e.ActiveEffect(); ok {
		title += fmt.Sprintf(" | %s %.1fs", eff.Kind, eff.Remaining())
	}
	return title
}

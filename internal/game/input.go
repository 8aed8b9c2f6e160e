package game

import "github.com/go-gl/glfw/v3.3/glfw"

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// ReadDirection maps arrows/WASD to a queued direction request. The last
// key checked wins when several are held; the engine rejects reversals.
func (in *Input) ReadDirection(window *glfw.Window) (Direction, bool) {
	var d Direction
	ok := false
	check := func(key glfw.Key, dir Direction) {
		if window.GetKey(key) == glfw.Press {
			d = dir
			ok = true
		}
	}
	check(glfw.KeyUp, DirUp)
	check(glfw.KeyW, DirUp)
	check(glfw.KeyDown, DirDown)
	check(glfw.KeyS, DirDown)
	check(glfw.KeyLeft, DirLeft)
	check(glfw.KeyA, DirLeft)
	check(glfw.KeyRight, DirRight)
	check(glfw.KeyD, DirRight)
	return d, ok
}

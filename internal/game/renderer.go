package game

import (
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite buffer layout: 7 floats per cell sprite (x, y, size, r, g, b, a).
const spriteFloats = 7

// maxCellSprites bounds the streaming VBO; big enough for a full 40×40
// board plus the snake and pickups.
const maxCellSprites = MaxGridSize*MaxGridSize + 256

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uOrigin     int32
	uCell       int32
	uResolution int32

	theme Theme
	buf   []float32
}

func NewRenderer(theme Theme) (*Renderer, error) {
	prog, err := linkProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		return nil, err
	}

	r := &Renderer{prog: prog, theme: theme}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(spriteFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxCellSprites*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))

	gl.UseProgram(prog)
	r.uOrigin = gl.GetUniformLocation(prog, gl.Str("uOrigin\x00"))
	r.uCell = gl.GetUniformLocation(prog, gl.Str("uCell\x00"))
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	bg := theme.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)

	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

func (r *Renderer) push(x, y int, size float64, c RGB, alpha float64) {
	r.buf = append(r.buf,
		float32(x), float32(y), float32(size),
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(alpha))
}

// DrawFrame renders one snapshot of the engine. The board is centered and
// scaled to fit the framebuffer.
func (r *Renderer) DrawFrame(e *Engine, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	grid := e.Config().GridSize
	cell := math.Floor(math.Min(float64(fbW), float64(fbH)) / float64(grid))
	if cell < 1 {
		cell = 1
	}
	originX := (float64(fbW) - cell*float64(grid)) / 2
	originY := (float64(fbH) - cell*float64(grid)) / 2

	r.buf = r.buf[:0]

	// Checkerboard base so the play area reads against the clear color.
	for y := 0; y < grid; y++ {
		for x := 0; x < grid; x++ {
			if (x+y)%2 == 0 {
				r.push(x, y, 1, r.theme.Grid, 1)
			}
		}
	}

	for _, ob := range e.Obstacles() {
		c := r.theme.Obstacle
		if ob.Movable {
			c = r.theme.ObstacleMoving
		}
		r.push(ob.Pos.X, ob.Pos.Y, 0.96, c, 1)
	}

	elapsed := e.Stats().Elapsed
	for _, pu := range e.PowerUps() {
		// Pulse, fading out over the last fifth of the lifetime.
		pulse := 0.78 + 0.14*math.Sin(elapsed*6+float64(pu.Pos.X))
		alpha := 1.0
		if rem := pu.Lifetime - pu.Age; rem < pu.Lifetime/5 {
			alpha = clampF(rem/(pu.Lifetime/5), 0.25, 1)
		}
		r.push(pu.Pos.X, pu.Pos.Y, pulse, r.theme.PowerUp, alpha)
	}

	if food, ok := e.Food(); ok {
		r.push(food.Pos.X, food.Pos.Y, 0.85, r.theme.FoodColor(food.Kind), 1)
	}

	sn := e.Snake()
	bodyAlpha := 1.0
	if eff, ok := e.ActiveEffect(); ok && eff.Kind == PowerGhost {
		bodyAlpha = 0.55
	}
	for i := len(sn.Segments) - 1; i >= 1; i-- {
		r.push(sn.Segments[i].X, sn.Segments[i].Y, 0.9, r.theme.SnakeBody, bodyAlpha)
	}
	head := sn.Head()
	r.push(head.X, head.Y, 1, r.theme.SnakeHead, bodyAlpha)

	r.flush(originX, originY, cell, fbW, fbH)
}

func (r *Renderer) flush(originX, originY, cell float64, fbW, fbH int) {
	count := len(r.buf) / spriteFloats
	if count == 0 {
		return
	}
	if count > maxCellSprites {
		count = maxCellSprites
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.Uniform2f(r.uOrigin, float32(originX), float32(originY))
	gl.Uniform1f(r.uCell, float32(cell))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*spriteFloats*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

package game

import "github.com/google/uuid"

type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
	FoodGolden
)

func (k FoodKind) String() string {
	switch k {
	case FoodBonus:
		return "bonus"
	case FoodGolden:
		return "golden"
	}
	return "normal"
}

// Value returns the base reward for eating this kind of food.
func (k FoodKind) Value() int {
	switch k {
	case FoodBonus:
		return 25
	case FoodGolden:
		return 50
	}
	return 10
}

type Food struct {
	Pos   Position
	Kind  FoodKind
	Value int
}

type PowerUpKind int

const (
	PowerSpeed PowerUpKind = iota
	PowerSlow
	PowerGhost
	PowerInvincible
	PowerDoublePoints
	PowerShrink
	PowerExtraLife
	PowerMagnet

	powerUpKindCount // must stay last
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeed:
		return "speed"
	case PowerSlow:
		return "slow"
	case PowerGhost:
		return "ghost"
	case PowerInvincible:
		return "invincible"
	case PowerDoublePoints:
		return "double-points"
	case PowerShrink:
		return "shrink"
	case PowerExtraLife:
		return "extra-life"
	case PowerMagnet:
		return "magnet"
	}
	return "unknown"
}

// PowerUp is a transient pickup. It expires after Lifetime seconds unpicked.
type PowerUp struct {
	ID       string
	Kind     PowerUpKind
	Pos      Position
	Age      float64
	Lifetime float64
}

type Obstacle struct {
	ID      string
	Pos     Position
	Movable bool
	Dir     Direction // only meaningful when Movable
}

// Snake is the player body, head at index 0. Dir is the direction applied
// this step; NextDir is the queued input, promoted at the start of the next
// step so a turn is never skipped or double-applied inside one step.
type Snake struct {
	Segments []Position
	Dir      Direction
	NextDir  Direction
}

func (s Snake) Head() Position {
	return s.Segments[0]
}

func (s Snake) Occupies(p Position) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// advance moves the head to p. Unless grow is set, the tail cell is vacated.
func (s *Snake) advance(p Position, grow bool) {
	s.Segments = append(s.Segments, Position{})
	copy(s.Segments[1:], s.Segments)
	s.Segments[0] = p
	if !grow {
		s.Segments = s.Segments[:len(s.Segments)-1]
	}
}

// Stats is the per-game scoreboard. The engine is the only writer; getters
// hand out value copies.
type Stats struct {
	GameID            string
	Score             int
	Level             int
	Lives             int
	Combo             int
	FoodEaten         int
	PowerUpsCollected int
	Elapsed           float64
	HighScore         int
}

// Store owns the canonical entities. All mutation goes through the engine;
// the snapshot helpers hand out independent copies.
type Store struct {
	snake     Snake
	food      *Food
	powerUps  []PowerUp
	obstacles []Obstacle
	stats     Stats
}

// resetSnake re-centers the snake as a horizontal 3-segment strip facing
// right, head leading.
func (st *Store) resetSnake(gridSize int) {
	c := gridSize / 2
	segs := make([]Position, 0, SnakeStartLength)
	for i := 0; i < SnakeStartLength; i++ {
		segs = append(segs, Position{X: c - i, Y: c})
	}
	st.snake = Snake{Segments: segs, Dir: DirRight, NextDir: DirRight}
}

// reset wipes everything for a new game. The cumulative high score survives.
func (st *Store) reset(gridSize, lives int) {
	st.resetSnake(gridSize)
	st.food = nil
	st.powerUps = st.powerUps[:0]
	st.obstacles = st.obstacles[:0]
	high := st.stats.HighScore
	st.stats = Stats{
		GameID:    uuid.NewString(),
		Level:     1,
		Lives:     lives,
		Combo:     1,
		HighScore: high,
	}
}

func (st *Store) snakeSnapshot() Snake {
	segs := make([]Position, len(st.snake.Segments))
	copy(segs, st.snake.Segments)
	return Snake{Segments: segs, Dir: st.snake.Dir, NextDir: st.snake.NextDir}
}

func (st *Store) foodSnapshot() (Food, bool) {
	if st.food == nil {
		return Food{}, false
	}
	return *st.food, true
}

func (st *Store) powerUpSnapshot() []PowerUp {
	out := make([]PowerUp, len(st.powerUps))
	copy(out, st.powerUps)
	return out
}

func (st *Store) obstacleSnapshot() []Obstacle {
	out := make([]Obstacle, len(st.obstacles))
	copy(out, st.obstacles)
	return out
}

// occupied reports whether any live entity sits on p.
func (st *Store) occupied(p Position) bool {
	if st.snake.Occupies(p) {
		return true
	}
	if st.food != nil && st.food.Pos == p {
		return true
	}
	for i := range st.powerUps {
		if st.powerUps[i].Pos == p {
			return true
		}
	}
	for i := range st.obstacles {
		if st.obstacles[i].Pos == p {
			return true
		}
	}
	return false
}

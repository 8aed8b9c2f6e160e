package game

type CollisionKind int

const (
	CollisionNone CollisionKind = iota
	CollisionWall
	CollisionSelf
	CollisionFood
	CollisionPowerUp
	CollisionObstacle
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionFood:
		return "food"
	case CollisionPowerUp:
		return "powerup"
	case CollisionObstacle:
		return "obstacle"
	}
	return "none"
}

// Collision tags what the snake's candidate head cell contains. PowerUp and
// Obstacle hold store slot indices and are only meaningful for their own
// kind.
type Collision struct {
	Kind     CollisionKind
	PowerUp  int
	Obstacle int
}

// classify resolves a candidate head position against the strict precedence
// order wall > self > food > power-up > obstacle. Only the first applicable
// classification is reported, so a cell that somehow holds both food and an
// obstacle still resolves as food.
func classify(st *Store, gridSize int, p Position) Collision {
	if p.X < 0 || p.X >= gridSize || p.Y < 0 || p.Y >= gridSize {
		return Collision{Kind: CollisionWall}
	}
	if st.snake.Occupies(p) {
		return Collision{Kind: CollisionSelf}
	}
	if st.food != nil && st.food.Pos == p {
		return Collision{Kind: CollisionFood}
	}
	for i := range st.powerUps {
		if st.powerUps[i].Pos == p {
			return Collision{Kind: CollisionPowerUp, PowerUp: i}
		}
	}
	for i := range st.obstacles {
		if st.obstacles[i].Pos == p {
			return Collision{Kind: CollisionObstacle, Obstacle: i}
		}
	}
	return Collision{Kind: CollisionNone}
}

package game

import "testing"

func testStore() *Store {
	st := &Store{}
	st.snake = Snake{
		Segments: []Position{{5, 5}, {4, 5}, {3, 5}},
		Dir:      DirRight,
		NextDir:  DirRight,
	}
	st.food = &Food{Pos: Position{8, 8}, Kind: FoodNormal, Value: 10}
	st.powerUps = []PowerUp{{ID: "p0", Kind: PowerSpeed, Pos: Position{2, 2}, Lifetime: PowerUpLifetime}}
	st.obstacles = []Obstacle{{ID: "o0", Pos: Position{7, 7}}}
	return st
}

func TestClassifyPrecedence(t *testing.T) {
	const grid = 10

	tests := []struct {
		name string
		pos  Position
		want CollisionKind
	}{
		{"left wall", Position{-1, 5}, CollisionWall},
		{"right wall", Position{10, 5}, CollisionWall},
		{"top wall", Position{5, -1}, CollisionWall},
		{"bottom wall", Position{5, 10}, CollisionWall},
		{"own head", Position{5, 5}, CollisionSelf},
		{"body segment", Position{3, 5}, CollisionSelf},
		{"food", Position{8, 8}, CollisionFood},
		{"power-up", Position{2, 2}, CollisionPowerUp},
		{"obstacle", Position{7, 7}, CollisionObstacle},
		{"empty cell", Position{0, 0}, CollisionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(testStore(), grid, tt.pos)
			if got.Kind != tt.want {
				t.Errorf("classify(%v) = %v, want %v", tt.pos, got.Kind, tt.want)
			}
		})
	}
}

func TestClassifyFoodShadowsObstacle(t *testing.T) {
	// Spawns never co-locate entities, but the precedence order still
	// protects against a violation: food wins over an obstacle on the
	// same cell.
	st := testStore()
	st.obstacles = append(st.obstacles, Obstacle{ID: "o1", Pos: st.food.Pos})

	got := classify(st, 10, st.food.Pos)
	if got.Kind != CollisionFood {
		t.Errorf("expected food classification, got %v", got.Kind)
	}
}

func TestClassifyPowerUpShadowsObstacle(t *testing.T) {
	st := testStore()
	st.obstacles = append(st.obstacles, Obstacle{ID: "o1", Pos: Position{2, 2}})

	got := classify(st, 10, Position{2, 2})
	if got.Kind != CollisionPowerUp {
		t.Errorf("expected power-up classification, got %v", got.Kind)
	}
	if got.PowerUp != 0 {
		t.Errorf("expected power-up slot 0, got %d", got.PowerUp)
	}
}

func TestClassifyReportsSlotIndices(t *testing.T) {
	st := testStore()
	st.powerUps = append(st.powerUps, PowerUp{ID: "p1", Kind: PowerGhost, Pos: Position{9, 9}})
	st.obstacles = append(st.obstacles, Obstacle{ID: "o1", Pos: Position{6, 1}})

	if got := classify(st, 10, Position{9, 9}); got.Kind != CollisionPowerUp || got.PowerUp != 1 {
		t.Errorf("expected power-up slot 1, got %+v", got)
	}
	if got := classify(st, 10, Position{6, 1}); got.Kind != CollisionObstacle || got.Obstacle != 1 {
		t.Errorf("expected obstacle slot 1, got %+v", got)
	}
}

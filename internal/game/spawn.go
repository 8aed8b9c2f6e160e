package game

import "github.com/google/uuid"

// pickFreeCell draws uniformly from the cells no entity occupies. The grid
// is small enough (≤ 40×40) that a full linear scan per spawn is fine.
func (e *Engine) pickFreeCell() (Position, bool) {
	free := make([]Position, 0, e.cfg.GridSize*e.cfg.GridSize)
	for y := 0; y < e.cfg.GridSize; y++ {
		for x := 0; x < e.cfg.GridSize; x++ {
			p := Position{X: x, Y: y}
			if !e.store.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[e.rng.Intn(len(free))], true
}

// spawnFood places a new food item on a free cell. A full grid skips the
// spawn silently; the next pickup trigger retries.
func (e *Engine) spawnFood() {
	p, ok := e.pickFreeCell()
	if !ok {
		return
	}
	kind := e.pickFoodKind()
	e.store.food = &Food{Pos: p, Kind: kind, Value: kind.Value()}
}

// pickFoodKind rolls the weighted distribution: golden 5%, bonus 15%,
// normal 80%.
func (e *Engine) pickFoodKind() FoodKind {
	roll := e.rng.Intn(100)
	switch {
	case roll < 5:
		return FoodGolden
	case roll < 20:
		return FoodBonus
	}
	return FoodNormal
}

// pickPowerUpKind draws uniformly over the kinds, nudging away from an
// immediate repeat of the previous spawn.
func (e *Engine) pickPowerUpKind() PowerUpKind {
	kind := PowerUpKind(e.rng.Intn(int(powerUpKindCount)))
	if int(kind) == e.lastPowerKind {
		off := 1 + e.rng.Intn(int(powerUpKindCount)-1)
		kind = PowerUpKind((int(kind) + off) % int(powerUpKindCount))
	}
	e.lastPowerKind = int(kind)
	return kind
}

// maybeSpawnPowerUp is rolled on each food pickup. Modes without power-ups
// never spawn; a full cap or full grid skips silently.
func (e *Engine) maybeSpawnPowerUp() {
	r := e.rules
	if !r.PowerUps || len(e.store.powerUps) >= MaxPowerUps {
		return
	}
	if e.rng.Float64() >= r.PowerUpChance {
		return
	}
	p, ok := e.pickFreeCell()
	if !ok {
		return
	}
	e.store.powerUps = append(e.store.powerUps, PowerUp{
		ID:       uuid.NewString(),
		Kind:     e.pickPowerUpKind(),
		Pos:      p,
		Lifetime: PowerUpLifetime,
	})
}

// expirePowerUps ages live power-ups and drops the ones that outlived their
// lifetime unpicked. Returns true when any were removed.
func (e *Engine) expirePowerUps(dt float64) bool {
	kept := e.store.powerUps[:0]
	removed := false
	for i := range e.store.powerUps {
		pu := e.store.powerUps[i]
		pu.Age += dt
		if pu.Age >= pu.Lifetime {
			removed = true
			continue
		}
		kept = append(kept, pu)
	}
	e.store.powerUps = kept
	return removed
}

// spawnObstacleField regenerates the obstacle layout for the current level
// and mode. Count scales with level up to the mode cap; new obstacles keep
// out of the cells immediately around the snake's head.
func (e *Engine) spawnObstacleField() {
	r := e.rules
	e.store.obstacles = e.store.obstacles[:0]
	count := r.BaseObstacles + r.ObstaclesPerLevel*(e.store.stats.Level-1)
	if count > r.MaxObstacles {
		count = r.MaxObstacles
	}
	if count > MaxObstacles {
		count = MaxObstacles
	}

	head := e.store.snake.Head()
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	for i := 0; i < count; i++ {
		p, ok := e.pickObstacleCell(head)
		if !ok {
			return
		}
		ob := Obstacle{ID: uuid.NewString(), Pos: p}
		if e.rng.Float64() < r.MovableChance {
			ob.Movable = true
			ob.Dir = dirs[e.rng.Intn(len(dirs))]
		}
		e.store.obstacles = append(e.store.obstacles, ob)
	}
}

func (e *Engine) pickObstacleCell(head Position) (Position, bool) {
	for tries := 0; tries < 24; tries++ {
		p, ok := e.pickFreeCell()
		if !ok {
			return Position{}, false
		}
		if Chebyshev(p, head) > 2 {
			return p, true
		}
	}
	return Position{}, false
}

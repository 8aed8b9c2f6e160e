package game

import "time"

// Engine owns the authoritative game state and advances it on a fixed
// logical timestep, independent of how often the caller's frame loop runs.
// It never schedules itself; the caller invokes Update once per frame with
// the elapsed wall time. All mutation happens synchronously inside Update,
// and every getter returns an independent copy.
type Engine struct {
	cfg   Config
	curve difficultyCurve
	rules modeRules
	rng   *Rand

	state  State
	store  Store
	index  *SpatialIndex
	bus    *EventBus
	effect *ActiveEffect

	moveInterval  float64 // seconds per logical step, after effect scaling
	accum         float64 // wall-time accumulator toward the next step
	stepCount     uint64
	lastFoodAt    float64 // stats.Elapsed at the previous food pickup
	lastPowerKind int
}

func New(cfg Config) *Engine {
	cfg = cfg.normalized()
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	e := &Engine{
		cfg:           cfg,
		curve:         cfg.Difficulty.curve(),
		rules:         cfg.Mode.rules(),
		rng:           NewRand(seed),
		state:         StateMenu,
		index:         NewSpatialIndex(),
		bus:           NewEventBus(),
		lastPowerKind: -1,
	}
	// Front-ends draw from the menu state before Init runs, so the store
	// must hold a valid snake from construction.
	e.store.resetSnake(cfg.GridSize)
	e.store.stats.Level = 1
	e.moveInterval = levelInterval(e.curve, 1)
	return e
}

// Init resets the game and populates the initial food and obstacle field,
// leaving the engine in the Playing state.
func (e *Engine) Init() {
	e.store.reset(e.cfg.GridSize, e.curve.Lives)
	e.effect = nil
	e.accum = 0
	e.stepCount = 0
	e.lastFoodAt = -ComboWindow
	e.refreshInterval()
	e.spawnObstacleField()
	e.spawnFood()
	e.index.Rebuild(&e.store)
	e.state = StatePlaying
}

// Update advances the simulation by dt seconds of wall time. It is a no-op
// unless the engine is Playing. At most one logical step is taken per call:
// elapsed time accumulates until it reaches the move interval, then the
// accumulator resets and the snake advances one cell.
func (e *Engine) Update(dt float64) {
	if e.state != StatePlaying || dt <= 0 {
		return
	}
	if dt > MaxUpdateDelta {
		dt = MaxUpdateDelta
	}

	e.store.stats.Elapsed += dt
	if e.expirePowerUps(dt) {
		e.index.Rebuild(&e.store)
	}
	e.tickEffect(dt)

	e.accum += dt
	if e.accum >= e.moveInterval {
		e.accum = 0
		e.step()
	}
}

// step advances the snake one cell and resolves whatever the new head cell
// holds.
func (e *Engine) step() {
	sn := &e.store.snake
	if sn.NextDir.valid() && sn.NextDir != sn.Dir.Opposite() {
		sn.Dir = sn.NextDir
	}
	cand := sn.Head().Add(sn.Dir)

	ghost := e.effectIs(PowerGhost)
	invincible := e.effectIs(PowerInvincible)

	col := classify(&e.store, e.cfg.GridSize, cand)
	if col.Kind == CollisionWall {
		e.bus.Emit(Event{Type: EventCollision, Collision: CollisionWall})
		if !ghost {
			e.die()
			return
		}
		cand = e.wrap(cand)
		col = classify(&e.store, e.cfg.GridSize, cand)
	}

	switch col.Kind {
	case CollisionSelf:
		e.bus.Emit(Event{Type: EventCollision, Collision: CollisionSelf})
		if !ghost && !invincible {
			e.die()
			return
		}
		sn.advance(cand, false)

	case CollisionObstacle:
		e.bus.Emit(Event{Type: EventCollision, Collision: CollisionObstacle})
		if !ghost && !invincible {
			e.die()
			return
		}
		sn.advance(cand, false)

	case CollisionFood:
		food := *e.store.food
		sn.advance(cand, true)
		e.store.food = nil
		points := e.applyFoodScore(food.Value)
		e.store.stats.FoodEaten++
		e.bus.Emit(Event{Type: EventFoodEaten, Pos: cand, Points: points})
		e.spawnFood()
		e.maybeSpawnPowerUp()
		e.checkLevelUp()

	case CollisionPowerUp:
		pu := e.store.powerUps[col.PowerUp]
		e.store.powerUps = append(e.store.powerUps[:col.PowerUp], e.store.powerUps[col.PowerUp+1:]...)
		sn.advance(cand, false)
		e.store.stats.PowerUpsCollected++
		e.bus.Emit(Event{Type: EventPowerUpCollected, PowerUp: pu})
		e.applyEffect(pu.Kind)

	case CollisionNone:
		sn.advance(cand, false)
	}

	e.index.Rebuild(&e.store)
	if e.pullFood(sn.Head()) {
		e.index.Rebuild(&e.store)
	}

	e.stepCount++
	if e.stepCount%ObstacleCadence == 0 {
		e.stepObstacles()
		e.index.Rebuild(&e.store)
	}
}

// wrap applies the toroidal topology the ghost effect grants at walls.
func (e *Engine) wrap(p Position) Position {
	g := e.cfg.GridSize
	return Position{X: ((p.X % g) + g) % g, Y: ((p.Y % g) + g) % g}
}

// die handles a lethal collision: spend a life and respawn in place, or end
// the game when none remain. Obstacles, food, and score survive a respawn;
// the combo and any active effect do not.
func (e *Engine) die() {
	st := &e.store.stats
	st.Lives--
	if st.Lives > 0 {
		e.bus.Emit(Event{Type: EventLifeLost, Lives: st.Lives})
		e.store.resetSnake(e.cfg.GridSize)
		st.Combo = 1
		e.lastFoodAt = st.Elapsed - ComboWindow
		e.clearEffect()
		e.accum = 0
		e.index.Rebuild(&e.store)
		return
	}
	st.Lives = 0
	e.clearEffect()
	e.state = StateGameOver
	e.bus.Emit(Event{Type: EventGameOver, Stats: *st})
}

// ChangeDirection queues a direction for the next step. A request for the
// exact opposite of the current direction is ignored, not an error. Queued
// input is accepted while Paused and takes effect on resume.
func (e *Engine) ChangeDirection(d Direction) {
	if !d.valid() {
		return
	}
	if e.state != StatePlaying && e.state != StatePaused {
		return
	}
	if d == e.store.snake.Dir.Opposite() {
		return
	}
	e.store.snake.NextDir = d
}

func (e *Engine) State() State {
	return e.state
}

func (e *Engine) SetState(s State) {
	e.state = s
}

// On subscribes to a domain event and returns the unsubscribe func.
// Delivery is synchronous, in registration order, within the tick that
// produced the event.
func (e *Engine) On(t EventType, fn EventHandler) func() {
	return e.bus.Subscribe(t, fn)
}

// Snapshot getters. Each returns an independent copy; mutating a snapshot
// never touches engine state.

func (e *Engine) Snake() Snake {
	return e.store.snakeSnapshot()
}

func (e *Engine) Food() (Food, bool) {
	return e.store.foodSnapshot()
}

func (e *Engine) PowerUps() []PowerUp {
	return e.store.powerUpSnapshot()
}

func (e *Engine) Obstacles() []Obstacle {
	return e.store.obstacleSnapshot()
}

func (e *Engine) ActiveEffect() (ActiveEffect, bool) {
	if e.effect == nil {
		return ActiveEffect{}, false
	}
	return *e.effect, true
}

func (e *Engine) Stats() Stats {
	return e.store.stats
}

func (e *Engine) Config() Config {
	return e.cfg
}

// MoveInterval returns the current seconds-per-step, after any active
// speed or slow effect.
func (e *Engine) MoveInterval() float64 {
	return e.moveInterval
}

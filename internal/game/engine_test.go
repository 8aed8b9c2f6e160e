package game

import "testing"

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	e := New(cfg)
	e.Init()
	return e
}

func TestNewEngineIsDrawableBeforeInit(t *testing.T) {
	// The menu screen renders the board before Init populates the game, so
	// a freshly constructed engine must already carry a centered snake.
	e := New(Config{GridSize: 25})
	sn := e.Snake()
	if len(sn.Segments) != SnakeStartLength {
		t.Fatalf("expected %d segments before init, got %d", SnakeStartLength, len(sn.Segments))
	}
	if got := sn.Head(); got != (Position{12, 12}) {
		t.Errorf("head = %v, want (12,12)", got)
	}
	if e.State() != StateMenu {
		t.Errorf("state = %v, want menu", e.State())
	}
}

func TestInitCentersSnake(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})

	sn := e.Snake()
	if len(sn.Segments) != SnakeStartLength {
		t.Fatalf("expected %d segments, got %d", SnakeStartLength, len(sn.Segments))
	}
	want := []Position{{12, 12}, {11, 12}, {10, 12}}
	for i, p := range want {
		if sn.Segments[i] != p {
			t.Errorf("segment %d: expected %v, got %v", i, p, sn.Segments[i])
		}
	}
	if sn.Dir != DirRight {
		t.Errorf("expected initial direction right, got %v", sn.Dir)
	}
	if e.State() != StatePlaying {
		t.Errorf("expected playing state after init, got %v", e.State())
	}
}

func TestStepAdvancesHeadAfterOneInterval(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25, Difficulty: DifficultyNormal})
	e.store.food = nil // keep the move a plain step

	e.Update(0.05)
	if head := e.Snake().Head(); head != (Position{12, 12}) {
		t.Fatalf("head moved before interval elapsed: %v", head)
	}
	e.Update(0.05)
	if head := e.Snake().Head(); head != (Position{13, 12}) {
		t.Fatalf("expected head at (13,12), got %v", head)
	}
	if n := len(e.Snake().Segments); n != SnakeStartLength {
		t.Errorf("plain move changed length to %d", n)
	}
}

func TestFoodPickupScenario(t *testing.T) {
	// gridSize=25, normal difficulty, food directly ahead: one 100ms tick
	// grows the snake to 4 and awards floor(10*1*1.1) = 11 points.
	e := newTestEngine(t, Config{GridSize: 25, Difficulty: DifficultyNormal})
	e.store.food = &Food{Pos: Position{13, 12}, Kind: FoodNormal, Value: 10}
	e.index.Rebuild(&e.store)

	var gotPoints int
	var gotPos Position
	e.On(EventFoodEaten, func(ev Event) {
		gotPoints = ev.Points
		gotPos = ev.Pos
	})

	e.Update(0.1)

	if head := e.Snake().Head(); head != (Position{13, 12}) {
		t.Fatalf("expected head at (13,12), got %v", head)
	}
	if n := len(e.Snake().Segments); n != 4 {
		t.Errorf("expected length 4 after food, got %d", n)
	}
	if gotPoints != 11 {
		t.Errorf("expected 11 points, got %d", gotPoints)
	}
	if gotPos != (Position{13, 12}) {
		t.Errorf("expected event position (13,12), got %v", gotPos)
	}
	if st := e.Stats(); st.Score != 11 || st.FoodEaten != 1 {
		t.Errorf("stats not updated: score=%d foodEaten=%d", st.Score, st.FoodEaten)
	}
	if _, ok := e.Food(); !ok {
		t.Error("no replacement food spawned")
	}
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Direction
	}{
		{"perpendicular accepted", DirUp, DirUp},
		{"opposite ignored", DirLeft, DirRight},
		{"same direction kept", DirRight, DirRight},
		{"invalid ignored", Direction{2, 0}, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, Config{GridSize: 25})
			e.ChangeDirection(tt.dir)
			if got := e.Snake().NextDir; got != tt.want {
				t.Errorf("nextDirection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChangeDirectionIdempotent(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})
	e.ChangeDirection(DirUp)
	first := e.Snake()
	e.ChangeDirection(DirUp)
	second := e.Snake()
	if first.NextDir != second.NextDir || first.Dir != second.Dir {
		t.Errorf("repeated request mutated state: %+v vs %+v", first, second)
	}
}

func TestPausedAcceptsDirectionButNoTicks(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25, Difficulty: DifficultyNormal})
	e.SetState(StatePaused)

	before := e.Snake().Head()
	e.ChangeDirection(DirDown)
	e.Update(1.0)

	if head := e.Snake().Head(); head != before {
		t.Fatalf("paused engine advanced the snake to %v", head)
	}
	if e.Snake().NextDir != DirDown {
		t.Error("paused engine dropped the queued direction")
	}

	e.SetState(StatePlaying)
	e.Update(0.1)
	if dir := e.Snake().Dir; dir != DirDown {
		t.Errorf("queued direction not applied on resume: %v", dir)
	}
}

func TestWallDeathSpendsLifeAndRespawns(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25, Difficulty: DifficultyNormal})
	e.store.snake.Segments = []Position{{24, 12}, {23, 12}, {22, 12}}
	e.store.snake.Dir = DirRight
	e.store.snake.NextDir = DirRight
	e.store.stats.Score = 55
	e.index.Rebuild(&e.store)

	var lifeLost, collided bool
	e.On(EventLifeLost, func(ev Event) { lifeLost = true })
	e.On(EventCollision, func(ev Event) {
		if ev.Collision == CollisionWall {
			collided = true
		}
	})

	e.Update(0.1)

	if !collided || !lifeLost {
		t.Fatalf("expected wall collision and life-lost events (collision=%v lifeLost=%v)", collided, lifeLost)
	}
	st := e.Stats()
	if st.Lives != 2 {
		t.Errorf("expected 2 lives, got %d", st.Lives)
	}
	if st.Score != 55 {
		t.Errorf("score should survive respawn, got %d", st.Score)
	}
	if st.Combo != 1 {
		t.Errorf("combo should reset on death, got %d", st.Combo)
	}
	if head := e.Snake().Head(); head != (Position{12, 12}) {
		t.Errorf("snake not recentered, head at %v", head)
	}
	if e.State() != StatePlaying {
		t.Errorf("engine should keep playing with lives left, state=%v", e.State())
	}
}

func TestLastLifeEmitsGameOver(t *testing.T) {
	// Insane difficulty starts with a single life.
	e := newTestEngine(t, Config{GridSize: 25, Difficulty: DifficultyInsane})
	e.store.snake.Segments = []Position{{24, 12}, {23, 12}, {22, 12}}
	e.store.snake.Dir = DirRight
	e.store.snake.NextDir = DirRight
	e.store.stats.Score = 70
	e.index.Rebuild(&e.store)

	var final Stats
	var fired bool
	e.On(EventGameOver, func(ev Event) {
		final = ev.Stats
		fired = true
	})

	e.Update(0.06)

	if !fired {
		t.Fatal("expected a game-over event")
	}
	if e.State() != StateGameOver {
		t.Fatalf("expected game-over state, got %v", e.State())
	}
	if final.Score != 70 || final.Lives != 0 {
		t.Errorf("final stats mismatch: %+v", final)
	}
	if got := e.Stats(); got.Score != final.Score {
		t.Errorf("game-over payload deviates from the stats snapshot: %+v vs %+v", final, got)
	}
}

func TestUpdateNoOpOutsidePlaying(t *testing.T) {
	for _, state := range []State{StateMenu, StateLoading, StatePaused, StateGameOver} {
		t.Run(state.String(), func(t *testing.T) {
			e := newTestEngine(t, Config{GridSize: 25})
			e.SetState(state)
			before := e.Snake().Head()
			elapsed := e.Stats().Elapsed
			e.Update(1.0)
			if head := e.Snake().Head(); head != before {
				t.Errorf("snake moved in state %v", state)
			}
			if e.Stats().Elapsed != elapsed {
				t.Errorf("elapsed advanced in state %v", state)
			}
		})
	}
}

func TestSnakeSnapshotAnswersQueries(t *testing.T) {
	// Head and Occupies must work on the snapshot value itself, not only
	// on the store's addressable snake.
	e := newTestEngine(t, Config{GridSize: 25})
	if got := e.Snake().Head(); got != (Position{12, 12}) {
		t.Errorf("head = %v, want (12,12)", got)
	}
	if !e.Snake().Occupies(Position{11, 12}) {
		t.Error("snapshot does not report its own segment")
	}
	if e.Snake().Occupies(Position{0, 0}) {
		t.Error("snapshot reports an empty cell as occupied")
	}
}

func TestSnapshotsAreIndependentCopies(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25, Mode: ModeArcade})

	sn := e.Snake()
	sn.Segments[0] = Position{0, 0}
	if e.Snake().Head() == (Position{0, 0}) {
		t.Error("mutating a snake snapshot changed engine state")
	}

	obs := e.Obstacles()
	if len(obs) > 0 {
		obs[0].Pos = Position{-5, -5}
		if e.Obstacles()[0].Pos == (Position{-5, -5}) {
			t.Error("mutating an obstacle snapshot changed engine state")
		}
	}

	st := e.Stats()
	st.Score = 99999
	if e.Stats().Score == 99999 {
		t.Error("mutating a stats snapshot changed engine state")
	}
}

func TestHighScoreSurvivesReset(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})
	e.store.stats.Score = 500
	e.store.stats.HighScore = 500
	e.Init()
	if st := e.Stats(); st.Score != 0 || st.HighScore != 500 {
		t.Errorf("after reset: score=%d highScore=%d", st.Score, st.HighScore)
	}
}

func TestSegmentCountTracksGrowthEvents(t *testing.T) {
	// Length must equal start length plus net growth since reset.
	e := newTestEngine(t, Config{GridSize: 25, Seed: 7})
	grown := 0
	e.On(EventFoodEaten, func(Event) { grown++ })

	max := e.cfg.GridSize - 1
	for i := 0; i < 40; i++ {
		// Steer clockwise along the edge and re-aim the food directly
		// ahead so every step eats.
		head := e.store.snake.Head()
		dir := e.store.snake.Dir
		if next := head.Add(dir); next.X > max {
			dir = DirDown
		} else if next := head.Add(dir); next.Y > max {
			dir = DirLeft
		}
		e.store.snake.NextDir = dir
		e.store.food = &Food{Pos: head.Add(dir), Kind: FoodNormal, Value: 10}
		e.index.Rebuild(&e.store)
		e.Update(e.MoveInterval())
		if e.State() != StatePlaying {
			t.Fatalf("unexpected death at step %d", i)
		}
	}

	want := SnakeStartLength + grown
	if got := len(e.Snake().Segments); got != want {
		t.Errorf("expected %d segments after %d growth events, got %d", want, grown, got)
	}
}

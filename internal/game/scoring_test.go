package game

import "testing"

func TestLevelInterval(t *testing.T) {
	normal := DifficultyNormal.curve()
	tests := []struct {
		name  string
		curve difficultyCurve
		level int
		want  float64
	}{
		{"normal level 1", normal, 1, 0.100},
		{"normal level 3", normal, 3, 0.100 - 2*0.008},
		{"normal clamps at floor", normal, 50, 0.050},
		{"easy level 1", DifficultyEasy.curve(), 1, 0.150},
		{"insane floor", DifficultyInsane.curve(), 99, 0.030},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := levelInterval(tt.curve, tt.level); got != tt.want {
				t.Errorf("levelInterval(level=%d) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestComboChain(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})

	// First pickup after Init starts the combo at 1.
	if got := e.applyFoodScore(10); got != 11 {
		t.Fatalf("first pickup = %d, want 11", got)
	}
	if e.Stats().Combo != 1 {
		t.Fatalf("combo = %d, want 1", e.Stats().Combo)
	}

	// A quick follow-up raises it.
	e.store.stats.Elapsed += 1.0
	if got := e.applyFoodScore(10); got != 22 {
		t.Errorf("chained pickup = %d, want 22", got)
	}
	if e.Stats().Combo != 2 {
		t.Errorf("combo = %d, want 2", e.Stats().Combo)
	}

	// Waiting out the window resets to 1.
	e.store.stats.Elapsed += ComboWindow
	if got := e.applyFoodScore(10); got != 11 {
		t.Errorf("late pickup = %d, want 11", got)
	}
	if e.Stats().Combo != 1 {
		t.Errorf("combo after gap = %d, want 1", e.Stats().Combo)
	}
}

func TestComboCaps(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})
	e.store.stats.Combo = ComboMax
	e.lastFoodAt = e.store.stats.Elapsed

	if got := e.applyFoodScore(10); got != 88 {
		t.Errorf("capped pickup = %d, want 88", got)
	}
	if e.Stats().Combo != ComboMax {
		t.Errorf("combo = %d, want cap %d", e.Stats().Combo, ComboMax)
	}
}

func TestScoreScalesWithLevel(t *testing.T) {
	tests := []struct {
		name  string
		value int
		level int
		want  int
	}{
		{"normal food level 1", 10, 1, 11},
		{"normal food level 3", 10, 3, 13},
		{"bonus food level 2", 25, 2, 30},
		{"golden food level 5", 50, 5, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, Config{GridSize: 25})
			e.store.stats.Level = tt.level
			if got := e.applyFoodScore(tt.value); got != tt.want {
				t.Errorf("delta = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLevelUpTightensIntervalAndRegeneratesObstacles(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25, Difficulty: DifficultyNormal, Mode: ModeArcade})

	var leveled int
	e.On(EventLevelUp, func(ev Event) { leveled = ev.Level })

	e.store.stats.Score = 100
	e.checkLevelUp()

	if e.Stats().Level != 2 {
		t.Fatalf("level = %d, want 2", e.Stats().Level)
	}
	if leveled != 2 {
		t.Errorf("level-up event carried %d, want 2", leveled)
	}
	if got, want := e.MoveInterval(), 0.100-0.008; got != want {
		t.Errorf("interval = %v, want %v", got, want)
	}
	// Arcade level 2: base 2 + 1 per level gained.
	if got := len(e.Obstacles()); got != 3 {
		t.Errorf("obstacle count = %d, want 3", got)
	}
}

func TestMultiLevelJump(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})
	e.store.stats.Score = 250
	e.checkLevelUp()
	if e.Stats().Level != 3 {
		t.Errorf("level = %d, want 3", e.Stats().Level)
	}
}

func TestNoLevelUpBelowThreshold(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})
	e.store.stats.Score = 99
	e.checkLevelUp()
	if e.Stats().Level != 1 {
		t.Errorf("level = %d, want 1", e.Stats().Level)
	}
}

func TestHighScoreFollowsScore(t *testing.T) {
	e := newTestEngine(t, Config{GridSize: 25})
	e.applyFoodScore(50)
	st := e.Stats()
	if st.HighScore != st.Score {
		t.Errorf("high score %d != score %d", st.HighScore, st.Score)
	}
}

package game

// Grid defaults.
const (
	DefaultGridSize = 25
	MinGridSize     = 10
	MaxGridSize     = 40
	DefaultCellSize = 24
)

// Snake constants.
const (
	SnakeStartLength = 3
	MaxLives         = 9
)

// Entity caps and lifetimes (seconds).
const (
	MaxPowerUps     = 3
	MaxObstacles    = 15
	PowerUpLifetime = 10.0
	EffectDuration  = 5.0
)

// Scoring.
const (
	ComboWindow    = 3.0 // max gap between pickups that keeps the combo alive
	ComboMax       = 8
	LevelThreshold = 100
)

// Movement tuning.
const (
	ObstacleCadence     = 5 // logical steps between obstacle moves
	SpeedIntervalFloor  = 0.03
	SlowIntervalCeiling = 0.4
	MagnetRadius        = 3
	MaxUpdateDelta      = 0.1 // clamp per-frame dt so a hitch can't fast-forward
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	DifficultyInsane
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	case DifficultyInsane:
		return "insane"
	}
	return "normal"
}

// ParseDifficulty maps a name to a difficulty, defaulting to normal.
func ParseDifficulty(name string) Difficulty {
	switch name {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	case "insane":
		return DifficultyInsane
	}
	return DifficultyNormal
}

type difficultyCurve struct {
	BaseInterval float64 // seconds per step at level 1
	Decrement    float64 // interval reduction per level gained
	MinInterval  float64
	Lives        int
}

func (d Difficulty) curve() difficultyCurve {
	switch d {
	case DifficultyEasy:
		return difficultyCurve{BaseInterval: 0.150, Decrement: 0.008, MinInterval: 0.060, Lives: 5}
	case DifficultyHard:
		return difficultyCurve{BaseInterval: 0.080, Decrement: 0.006, MinInterval: 0.040, Lives: 2}
	case DifficultyInsane:
		return difficultyCurve{BaseInterval: 0.060, Decrement: 0.005, MinInterval: 0.030, Lives: 1}
	}
	return difficultyCurve{BaseInterval: 0.100, Decrement: 0.008, MinInterval: 0.050, Lives: 3}
}

type Mode int

const (
	ModeClassic Mode = iota
	ModeArcade
	ModeSurvival
	ModeChallenge
	ModeMultiplayer
)

func (m Mode) String() string {
	switch m {
	case ModeArcade:
		return "arcade"
	case ModeSurvival:
		return "survival"
	case ModeChallenge:
		return "challenge"
	case ModeMultiplayer:
		return "multiplayer"
	}
	return "classic"
}

// ParseMode maps a name to a game mode, defaulting to classic.
func ParseMode(name string) Mode {
	switch name {
	case "arcade":
		return ModeArcade
	case "survival":
		return ModeSurvival
	case "challenge":
		return ModeChallenge
	case "multiplayer":
		return ModeMultiplayer
	}
	return ModeClassic
}

type modeRules struct {
	BaseObstacles     int
	ObstaclesPerLevel int
	MaxObstacles      int
	MovableChance     float64
	PowerUps          bool    // whether food pickups can trigger power-up spawns
	PowerUpChance     float64 // roll per food pickup
}

func (m Mode) rules() modeRules {
	switch m {
	case ModeArcade, ModeMultiplayer:
		return modeRules{BaseObstacles: 2, ObstaclesPerLevel: 1, MaxObstacles: 10, MovableChance: 0.3, PowerUps: true, PowerUpChance: 0.25}
	case ModeSurvival:
		return modeRules{BaseObstacles: 4, ObstaclesPerLevel: 2, MaxObstacles: 12, MovableChance: 0.6, PowerUps: true, PowerUpChance: 0.20}
	case ModeChallenge:
		return modeRules{BaseObstacles: 5, ObstaclesPerLevel: 2, MaxObstacles: MaxObstacles, MovableChance: 0.8, PowerUps: true, PowerUpChance: 0.30}
	}
	return modeRules{}
}

// Config is the immutable engine configuration. Zero or out-of-range fields
// are clamped to defaults rather than rejected.
type Config struct {
	GridSize   int
	CellSize   int // rendering pass-through
	Difficulty Difficulty
	Mode       Mode
	Theme      string // rendering pass-through
	Sound      bool
	Music      bool
	Seed       uint64
}

func DefaultConfig() Config {
	return Config{
		GridSize:   DefaultGridSize,
		CellSize:   DefaultCellSize,
		Difficulty: DifficultyNormal,
		Mode:       ModeClassic,
		Theme:      "classic",
		Sound:      true,
		Music:      true,
	}
}

func (c Config) normalized() Config {
	if c.GridSize == 0 {
		c.GridSize = DefaultGridSize
	}
	c.GridSize = clamp(c.GridSize, MinGridSize, MaxGridSize)
	if c.CellSize <= 0 {
		c.CellSize = DefaultCellSize
	}
	if c.Theme == "" {
		c.Theme = "classic"
	}
	return c
}

package game

import "math"

// ActiveEffect is the single in-force power-up modifier. At most one exists
// system-wide; a new pickup overwrites it.
type ActiveEffect struct {
	Kind     PowerUpKind
	Elapsed  float64
	Duration float64
}

func (a ActiveEffect) Remaining() float64 {
	return clampF(a.Duration-a.Elapsed, 0, a.Duration)
}

func (e *Engine) effectIs(kind PowerUpKind) bool {
	return e.effect != nil && e.effect.Kind == kind
}

// applyEffect installs a picked-up effect, overwriting whatever was active.
// Instant effects do their work here and then hold the slot for the nominal
// duration; continuous effects act through the interval scale or the
// per-step hooks until they expire.
func (e *Engine) applyEffect(kind PowerUpKind) {
	e.effect = &ActiveEffect{Kind: kind, Duration: EffectDuration}
	e.refreshInterval()

	st := &e.store.stats
	switch kind {
	case PowerDoublePoints:
		st.Score *= 2
		if st.Score > st.HighScore {
			st.HighScore = st.Score
		}
		e.checkLevelUp()
	case PowerShrink:
		segs := e.store.snake.Segments
		if len(segs) > SnakeStartLength {
			e.store.snake.Segments = segs[:(len(segs)+1)/2]
		}
	case PowerExtraLife:
		if st.Lives < MaxLives {
			st.Lives++
		}
	}
}

// tickEffect advances the effect timer and reverts the move interval when
// the duration runs out.
func (e *Engine) tickEffect(dt float64) {
	if e.effect == nil {
		return
	}
	e.effect.Elapsed += dt
	if e.effect.Elapsed < e.effect.Duration {
		return
	}
	kind := e.effect.Kind
	e.effect = nil
	e.refreshInterval()
	e.bus.Emit(Event{Type: EventEffectExpired, Effect: kind})
}

func (e *Engine) clearEffect() {
	if e.effect == nil {
		return
	}
	e.effect = nil
	e.refreshInterval()
}

// refreshInterval recomputes the move interval from the difficulty/level
// curve and the active speed or slow modifier. Speed halves the interval
// down to a floor; slow doubles it up to a ceiling; expiry restores the
// curve value by recomputing from scratch.
func (e *Engine) refreshInterval() {
	iv := levelInterval(e.curve, e.store.stats.Level)
	switch {
	case e.effectIs(PowerSpeed):
		iv = math.Max(iv/2, SpeedIntervalFloor)
	case e.effectIs(PowerSlow):
		iv = math.Min(iv*2, SlowIntervalCeiling)
	}
	e.moveInterval = iv
}

// pullFood drags the live food one cell toward the head while the magnet
// effect holds and the food sits inside the magnet box. Returns true if the
// food moved. The food stops one cell short of the head so pickup still
// happens by moving onto it.
func (e *Engine) pullFood(head Position) bool {
	if !e.effectIs(PowerMagnet) || e.store.food == nil {
		return false
	}
	foodPos := e.store.food.Pos
	inBox := false
	for _, p := range e.index.QueryBox(head, MagnetRadius) {
		if p == foodPos {
			inBox = true
			break
		}
	}
	if !inBox || Chebyshev(head, foodPos) <= 1 {
		return false
	}
	next := Position{
		X: foodPos.X + sign(head.X-foodPos.X),
		Y: foodPos.Y + sign(head.Y-foodPos.Y),
	}
	if next == head || e.index.Occupied(next) {
		return false
	}
	e.store.food.Pos = next
	return true
}

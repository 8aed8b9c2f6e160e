package game

import "math"

// levelInterval computes the per-step move interval for a level on a
// difficulty curve.
func levelInterval(c difficultyCurve, level int) float64 {
	iv := c.BaseInterval - c.Decrement*float64(level-1)
	if iv < c.MinInterval {
		iv = c.MinInterval
	}
	return iv
}

// applyFoodScore updates the combo and score for a food pickup and returns
// the score delta. Pickups closer together than the combo window raise the
// combo (capped); a late pickup resets it to 1.
func (e *Engine) applyFoodScore(value int) int {
	st := &e.store.stats
	if st.Elapsed-e.lastFoodAt < ComboWindow {
		if st.Combo < ComboMax {
			st.Combo++
		}
	} else {
		st.Combo = 1
	}
	e.lastFoodAt = st.Elapsed

	delta := int(math.Floor(float64(value) * float64(st.Combo) * (1 + float64(st.Level)*0.1)))
	st.Score += delta
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
	return delta
}

// checkLevelUp recomputes the level from the score and, on a raise, tightens
// the move interval and regenerates the obstacle field.
func (e *Engine) checkLevelUp() {
	st := &e.store.stats
	next := st.Score/LevelThreshold + 1
	if next <= st.Level {
		return
	}
	st.Level = next
	e.refreshInterval()
	e.spawnObstacleField()
	e.index.Rebuild(&e.store)
	e.bus.Emit(Event{Type: EventLevelUp, Level: next})
}

package game

// stepObstacles runs on the obstacle cadence, not every logical step. Each
// movable obstacle advances one cell along its stored direction; it bounces
// (reverses) at the grid edge and in front of any occupied cell, so
// obstacles never displace the snake, food, or each other.
func (e *Engine) stepObstacles() {
	g := e.cfg.GridSize
	for i := range e.store.obstacles {
		ob := &e.store.obstacles[i]
		if !ob.Movable {
			continue
		}
		cand := ob.Pos.Add(ob.Dir)
		if cand.X < 0 || cand.X >= g || cand.Y < 0 || cand.Y >= g {
			ob.Dir = ob.Dir.Opposite()
			continue
		}
		if e.store.occupied(cand) {
			ob.Dir = ob.Dir.Opposite()
			continue
		}
		ob.Pos = cand
	}
}

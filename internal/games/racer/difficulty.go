package racer

// updateDifficulty raises the level when the score crosses a threshold.
// Obstacles already on the road keep their size; only later spawns use
// the rescaled table.
func (w *World) updateDifficulty() {
	level := w.difficulty.Level(w.score)
	if level <= w.level {
		return
	}

	gained := level - w.level
	w.level = level
	w.applyLevel()
	w.speedMultiplier += w.difficulty.SpeedIncrease(gained)

	w.logger.Info("level up",
		"level", w.level+1,
		"speed", w.speedMultiplier,
		"target_obstacles", w.targetObstacles,
	)
}

// applyLevel derives the obstacle target and type table from the current level.
func (w *World) applyLevel() {
	oc := w.cfg.Obstacles
	w.targetObstacles = w.difficulty.TargetObstacles(oc.BaseCount, oc.MaxCount, w.level)
	w.types = w.baseTypes.Scaled(w.difficulty.SizeScale(w.level))
}

// CurrentTypes returns the obstacle table new spawns are drawn from.
func (w *World) CurrentTypes() TypeTable {
	return w.types
}

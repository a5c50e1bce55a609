package racer

import (
	"fmt"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// carBox returns the car's collision box. The box sits in front of the
// car's rear Z at a fixed height.
func (w *World) carBox() core.Box {
	car := w.cfg.Car
	center := core.Vec3{
		X: w.carX,
		Y: car.CenterY,
		Z: car.Z + car.Depth/2,
	}
	return core.NewBox(center, core.Vec3{X: car.Width, Y: car.Height, Z: car.Depth})
}

// resolveCollisions tests the car against points, the diamond and
// obstacles, in that order.
func (w *World) resolveCollisions() {
	car := w.carBox()

	w.collectPoints(car)
	w.collectDiamond(car)
	w.hitObstacles(car)
}

func (w *World) collectPoints(car core.Box) {
	size := w.cfg.Points.Size
	for i := range w.points {
		p := &w.points[i]
		if !p.Active || !car.Intersects(p.Box(size)) {
			continue
		}
		p.Active = false
		w.placePoint(p)
		w.score++
	}
}

func (w *World) collectDiamond(car core.Box) {
	d := &w.diamond
	if !d.Active || !car.Intersects(d.Box()) {
		return
	}
	d.Active = false
	w.placeDiamond(d)
	if w.lives < w.cfg.Gameplay.MaxLives {
		w.lives++
	}
}

// hitObstacles deactivates every obstacle the car touches and parks it
// below the drift floor. Real obstacles cost score and lives. Once the
// last life is lost no further obstacles are checked this tick.
func (w *World) hitObstacles(car core.Box) {
	for i := range w.obstacles {
		o := &w.obstacles[i]
		if !o.Active || !car.Intersects(o.Box()) {
			continue
		}

		o.Active = false
		o.Pos.Z = w.cfg.Obstacles.ParkZ
		if o.Fake {
			continue
		}

		w.applyHit(o.ScorePenalty, o.LifePenalty)
		if w.phase == PhaseGameOver {
			return
		}
	}
}

// applyHit charges the penalties of a real obstacle.
func (w *World) applyHit(scorePenalty, lifePenalty int) {
	w.score = max(0, w.score-scorePenalty)
	w.lives -= lifePenalty

	if d := w.cfg.Gameplay.MessageDuration; d > 0 {
		w.message = Message{Text: hitMessage(scorePenalty, lifePenalty), Ticks: d}
	}

	if w.lives <= 0 {
		w.lives = 0
		w.phase = PhaseGameOver
		w.logger.Info("game over", "score", w.score, "level", w.level+1, "tick", w.tick)
	}
}

func hitMessage(scorePenalty, lifePenalty int) string {
	return fmt.Sprintf("Hit! -%d Score, -%s", scorePenalty, livesText(lifePenalty))
}

// livesText formats a life count with the right plural.
func livesText(n int) string {
	if n == 1 {
		return "1 Life"
	}
	return fmt.Sprintf("%d Lives", n)
}

package racer

import (
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
)

func TestLevelThreshold(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	w := newTestWorld(t, cfg)
	clearRoad(w)

	w.score = 29
	w.Tick()
	if w.level != 0 {
		t.Fatalf("level = %d at score 29, want 0", w.level)
	}
	if w.speedMultiplier != 1.0 {
		t.Errorf("speed = %v, want 1.0", w.speedMultiplier)
	}

	w.score = 30
	w.Tick()
	if w.level != 1 {
		t.Fatalf("level = %d at score 30, want 1", w.level)
	}
	if !approxEqual(w.speedMultiplier, 1.08) {
		t.Errorf("speed = %v, want 1.08", w.speedMultiplier)
	}
	if w.targetObstacles != cfg.Obstacles.BaseCount+1 {
		t.Errorf("target = %d, want %d", w.targetObstacles, cfg.Obstacles.BaseCount+1)
	}
	rock := w.CurrentTypes().Spec(Rock)
	if !approxEqual(rock.Size.X, 2.1) || !approxEqual(rock.Size.Y, 2.1) || rock.Size.Z != 2.0 {
		t.Errorf("rock size = %+v, want 2.1x2.1x2", rock.Size)
	}
	if rock.ScorePenalty != 5 || rock.LifePenalty != 1 {
		t.Errorf("rock penalties changed: %+v", rock)
	}

	// The next spawn draws from the rescaled table
	w.obstacles[0].Pos.Z = 9.9
	w.obstacles[0].Pos.X = cfg.Road.Lanes[0]
	w.carX = cfg.Road.Lanes[2]
	w.Tick()
	o := w.obstacles[0]
	want := w.CurrentTypes().Spec(o.Type).Size
	if !o.Active || o.Size != want {
		t.Errorf("respawned obstacle size = %+v, want rescaled %+v", o.Size, want)
	}
}

func TestLevelJumpAppliesEveryIncrement(t *testing.T) {
	w := newTestWorld(t, config.DefaultRacerConfig())
	clearRoad(w)

	w.score = 95
	w.Tick()

	if w.level != 3 {
		t.Fatalf("level = %d, want 3", w.level)
	}
	if !approxEqual(w.speedMultiplier, 1.24) {
		t.Errorf("speed = %v, want 1.24", w.speedMultiplier)
	}
}

func TestLevelNeverDecreases(t *testing.T) {
	w := newTestWorld(t, config.DefaultRacerConfig())
	clearRoad(w)

	w.score = 65
	w.Tick()
	w.score = 3
	w.Tick()

	if w.level != 2 {
		t.Errorf("level = %d after score drop, want 2", w.level)
	}
}

func TestLevelCapped(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	w := newTestWorld(t, cfg)
	clearRoad(w)

	w.score = 10000
	w.Tick()

	if w.level != cfg.Difficulty.MaxLevel {
		t.Errorf("level = %d, want %d", w.level, cfg.Difficulty.MaxLevel)
	}
	if w.targetObstacles != cfg.Obstacles.BaseCount+cfg.Difficulty.MaxLevel {
		t.Errorf("target = %d", w.targetObstacles)
	}
}

func TestInFlightObstaclesKeepSize(t *testing.T) {
	w := newTestWorld(t, config.DefaultRacerConfig())
	clearRoad(w)
	before := w.obstacles[0].Size

	w.score = 30
	w.Tick()

	if w.obstacles[0].Size != before {
		t.Errorf("in-flight obstacle resized from %+v to %+v", before, w.obstacles[0].Size)
	}
}

func TestFixedDifficulty(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	config.ApplyRacerPreset(&cfg, config.DifficultyFixed)
	w := newTestWorld(t, cfg)
	clearRoad(w)

	w.score = 500
	w.Tick()

	if w.level != 0 || w.speedMultiplier != 1.0 {
		t.Errorf("level/speed = %d/%v, want 0/1.0 with progression disabled", w.level, w.speedMultiplier)
	}
}

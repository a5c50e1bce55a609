package racer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

const testSeed = 12345

func newTestWorld(t *testing.T, cfg config.RacerConfig) *World {
	t.Helper()
	w, err := NewWorld(cfg, testSeed)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

// clearRoad pushes every entity far ahead of the car so a test can place
// exactly the ones it needs. Population and activity are unchanged.
func clearRoad(w *World) {
	for i := range w.points {
		w.points[i].Active = true
		w.points[i].Pos.Z = -190
	}
	w.diamond.Active = true
	w.diamond.Pos.Z = -190
	for i := range w.obstacles {
		if w.obstacles[i].Active {
			w.obstacles[i].Pos.Z = -300
		}
	}
}

// placeObstacle puts a real or fake obstacle of kind into slot 0 at (x, z).
func placeObstacle(w *World, kind ObstacleType, x, z float64, fake bool) {
	w.obstacles[0] = newObstacle(kind, w.types[kind], core.Vec3{X: x, Z: z}, fake)
}

func TestNewWorldInitialState(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	w := newTestWorld(t, cfg)
	s := w.Snapshot()

	if s.Phase != PhasePlaying {
		t.Errorf("Phase = %v, want playing", s.Phase)
	}
	if s.Score != 0 || s.Level != 0 || s.Tick != 0 {
		t.Errorf("score/level/tick = %d/%d/%d, want zeros", s.Score, s.Level, s.Tick)
	}
	if s.Lives != cfg.Gameplay.MaxLives {
		t.Errorf("Lives = %d, want %d", s.Lives, cfg.Gameplay.MaxLives)
	}
	if s.SpeedMultiplier != 1.0 {
		t.Errorf("SpeedMultiplier = %v, want 1.0", s.SpeedMultiplier)
	}
	if s.CarX != cfg.Road.CenterX() {
		t.Errorf("CarX = %v, want %v", s.CarX, cfg.Road.CenterX())
	}

	if len(s.Points) != cfg.Points.Count {
		t.Fatalf("len(Points) = %d, want %d", len(s.Points), cfg.Points.Count)
	}
	for i, p := range s.Points {
		if !p.Active {
			t.Errorf("point %d inactive", i)
		}
		if p.Pos.Z < cfg.Points.Initial.Min || p.Pos.Z > cfg.Points.Initial.Max {
			t.Errorf("point %d z = %v, outside initial band", i, p.Pos.Z)
		}
		if p.Pos.X < cfg.Road.MinX+cfg.Points.LaneMargin || p.Pos.X > cfg.Road.MaxX()-cfg.Points.LaneMargin {
			t.Errorf("point %d x = %v, outside road margins", i, p.Pos.X)
		}
	}

	if !s.Diamond.Active || s.Diamond.Pos.Z != cfg.Diamond.InitialZ {
		t.Errorf("Diamond = %+v, want active at z %v", s.Diamond, cfg.Diamond.InitialZ)
	}

	if got := s.ActiveObstacles(); got != cfg.Obstacles.BaseCount {
		t.Errorf("ActiveObstacles = %d, want %d", got, cfg.Obstacles.BaseCount)
	}
	if len(s.Obstacles) != cfg.Obstacles.MaxCount {
		t.Errorf("pool size = %d, want %d", len(s.Obstacles), cfg.Obstacles.MaxCount)
	}
	for i := 0; i < cfg.Obstacles.BaseCount; i++ {
		want := cfg.Obstacles.InitialZ - float64(i)*cfg.Obstacles.InitialSpacing
		if s.Obstacles[i].Pos.Z != want {
			t.Errorf("obstacle %d z = %v, want %v", i, s.Obstacles[i].Pos.Z, want)
		}
		if s.Obstacles[i].Fake != isFakeSpawn(uint64(i)) {
			t.Errorf("obstacle %d fake = %v, want %v", i, s.Obstacles[i].Fake, isFakeSpawn(uint64(i)))
		}
	}
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	cfg.Gameplay.MaxLives = 0

	_, err := NewWorld(cfg, testSeed)
	if err == nil {
		t.Fatal("expected error for max_lives 0")
	}
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("error %v does not wrap ErrInvalid", err)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	w1 := newTestWorld(t, cfg)
	w2 := newTestWorld(t, cfg)

	script := map[int]Command{
		10:  CmdSteerLeft,
		11:  CmdSteerLeft,
		50:  CmdAccelerateStart,
		120: CmdSteerRight,
		200: CmdAccelerateStop,
	}
	for i := 0; i < 1000; i++ {
		if cmd, ok := script[i]; ok {
			w1.Enqueue(cmd)
			w2.Enqueue(cmd)
		}
		w1.Tick()
		w2.Tick()
	}

	if !reflect.DeepEqual(w1.Snapshot(), w2.Snapshot()) {
		t.Error("worlds with equal seeds and commands diverged")
	}
}

func TestResetIsCanonical(t *testing.T) {
	w := newTestWorld(t, config.DefaultRacerConfig())
	initial := w.Snapshot()

	for i := 0; i < 300; i++ {
		w.Enqueue(CmdSteerRight)
		w.Tick()
	}
	w.Reset()

	if !reflect.DeepEqual(initial, w.Snapshot()) {
		t.Error("Reset did not restore the initial state")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t, config.DefaultRacerConfig())
	s := w.Snapshot()

	s.Points[0].Pos.Z = 999
	s.Obstacles[0].Active = false
	s.Scenery.TreesLeft[0] = 999
	s.Road.Lanes[0] = 999

	if w.points[0].Pos.Z == 999 {
		t.Error("snapshot shares points with the world")
	}
	if !w.obstacles[0].Active {
		t.Error("snapshot shares obstacles with the world")
	}
	if w.scenery.TreesLeft[0] == 999 {
		t.Error("snapshot shares scenery with the world")
	}
	if w.cfg.Road.Lanes[0] == 999 {
		t.Error("snapshot shares lanes with the world")
	}
}

func TestMessageCountdown(t *testing.T) {
	w := newTestWorld(t, config.DefaultRacerConfig())
	clearRoad(w)

	w.applyHit(5, 1)
	if w.message.Text != "Hit! -5 Score, -1 Life" {
		t.Errorf("message = %q", w.message.Text)
	}
	if w.message.Ticks != 90 {
		t.Errorf("message ticks = %d, want 90", w.message.Ticks)
	}

	w.Enqueue(CmdPauseToggle)
	for i := 0; i < 89; i++ {
		w.Tick()
	}
	if w.message.Text == "" || w.message.Ticks != 1 {
		t.Errorf("after 89 ticks: %+v, want 1 tick left", w.message)
	}

	w.Tick()
	if w.message.Text != "" || w.message.Ticks != 0 {
		t.Errorf("message not cleared on expiry: %+v", w.message)
	}

	// Stays cleared
	w.Tick()
	if w.message.Ticks != 0 {
		t.Errorf("ticks went negative: %d", w.message.Ticks)
	}
}

func TestHitMessageText(t *testing.T) {
	tests := []struct {
		score, lives int
		want         string
	}{
		{5, 1, "Hit! -5 Score, -1 Life"},
		{8, 2, "Hit! -8 Score, -2 Lives"},
		{10, 1, "Hit! -10 Score, -1 Life"},
	}
	for _, tt := range tests {
		if got := hitMessage(tt.score, tt.lives); got != tt.want {
			t.Errorf("hitMessage(%d, %d) = %q, want %q", tt.score, tt.lives, got, tt.want)
		}
	}
}

type countingRand struct {
	Rand
	calls int
}

func (r *countingRand) Float64() float64 {
	r.calls++
	return r.Rand.Float64()
}

func TestWithRandFactory(t *testing.T) {
	var src *countingRand
	factory := func(seed int64) Rand {
		src = &countingRand{Rand: defaultRand(seed)}
		return src
	}

	w, err := NewWorld(config.DefaultRacerConfig(), 7, WithRandFactory(factory))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if src == nil || src.calls == 0 {
		t.Fatal("custom random source was not used")
	}
	if w.Seed() != 7 {
		t.Errorf("Seed = %d, want 7", w.Seed())
	}
}

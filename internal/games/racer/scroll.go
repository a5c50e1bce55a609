package racer

import (
	"math"
)

// Scenery is decoration that scrolls with the road.
type Scenery struct {
	MarkerOffset float64   // Lane-marker phase in [0, MarkerPattern)
	TreesLeft    []float64 // Z of each roadside tree
	TreesRight   []float64
}

// Scenery layout.
const (
	MarkerDash    = 4.0  // Length of a painted lane-marker dash
	MarkerPattern = 10.0 // Dash plus gap
	treeCount     = 6
	treeSpacing   = 35.0
	treeLoop      = treeCount * treeSpacing
)

func newScenery(nearZ float64) Scenery {
	s := Scenery{
		TreesLeft:  make([]float64, treeCount),
		TreesRight: make([]float64, treeCount),
	}
	for i := 0; i < treeCount; i++ {
		s.TreesLeft[i] = nearZ - float64(i)*treeSpacing
		// Offset the right side so the rows do not mirror each other
		s.TreesRight[i] = nearZ - float64(i)*treeSpacing - treeSpacing/2
	}
	return s
}

func (s Scenery) clone() Scenery {
	return Scenery{
		MarkerOffset: s.MarkerOffset,
		TreesLeft:    append([]float64(nil), s.TreesLeft...),
		TreesRight:   append([]float64(nil), s.TreesRight...),
	}
}

// speedFactor is the multiplier applied to every base scroll speed.
func (w *World) speedFactor() float64 {
	return w.speedMultiplier + w.boost
}

// scroll moves every entity towards the car and recycles what left the view.
func (w *World) scroll() {
	factor := w.speedFactor()
	sc := w.cfg.Scroll

	w.scrollScenery(sc.Environment * factor)
	w.scrollPoints(sc.Points * factor)
	w.scrollDiamond(sc.Diamond * factor)
	w.scrollObstacles(sc.Obstacles * factor)
}

func (w *World) scrollScenery(delta float64) {
	nearZ := w.cfg.Scroll.NearZ
	w.scenery.MarkerOffset = math.Mod(w.scenery.MarkerOffset+delta, MarkerPattern)

	wrap := func(trees []float64) {
		for i := range trees {
			trees[i] += delta
			if trees[i] > nearZ {
				trees[i] -= treeLoop
			}
		}
	}
	wrap(w.scenery.TreesLeft)
	wrap(w.scenery.TreesRight)
}

// scrollPoints advances active points. A point collected on the previous
// tick was already moved into the respawn band and reappears here unmoved.
func (w *World) scrollPoints(delta float64) {
	for i := range w.points {
		p := &w.points[i]
		if !p.Active {
			p.Active = true
			continue
		}
		p.Pos.Z += delta
		if p.Pos.Z > w.cfg.Scroll.NearZ {
			w.placePoint(p)
		}
	}
}

// placePoint moves a point to a random spot in the respawn band.
func (w *World) placePoint(p *Point) {
	p.Pos.Z = w.uniform(w.cfg.Points.Respawn)
	p.Pos.X = w.uniformLane(w.cfg.Points.LaneMargin)
}

func (w *World) scrollDiamond(delta float64) {
	d := &w.diamond
	if !d.Active {
		d.Active = true
		return
	}
	d.Pos.Z += delta
	if d.Pos.Z > w.cfg.Scroll.NearZ {
		w.placeDiamond(d)
	}
}

func (w *World) placeDiamond(d *Diamond) {
	d.Pos.Z = w.uniform(w.cfg.Diamond.Respawn)
	d.Pos.X = w.uniformLane(w.cfg.Diamond.LaneMargin)
}

// scrollObstacles advances active obstacles and keeps the active
// population at the target for the current level.
//
// An obstacle that passes the car is respawned behind the farthest
// active one. Inactive obstacles are respawned while the population is
// below target. An inactive obstacle that has sunk below the drift floor
// (a parked hit) is always recycled: respawned if there is room, otherwise
// moved to the reserve line to wait for a free slot.
func (w *World) scrollObstacles(delta float64) {
	oc := w.cfg.Obstacles

	fallback, ok := w.farthestActiveObstacle(-1)
	if !ok {
		fallback = oc.InitialZ
	}
	active := w.ActiveObstacles()

	for i := range w.obstacles {
		o := &w.obstacles[i]

		drifted := false
		if o.Active {
			o.Pos.Z += delta
			if o.Pos.Z <= w.cfg.Scroll.NearZ {
				continue
			}
			o.Active = false
			active--
		} else if o.Pos.Z < oc.DriftFloor {
			drifted = true
		}

		if active < w.targetObstacles {
			w.respawnObstacle(i, fallback)
			active++
		} else if drifted {
			o.Pos.Z = oc.ReserveZ
		}
	}
}

// respawnObstacle reuses slot i as a fresh obstacle placed behind the
// farthest other active obstacle.
func (w *World) respawnObstacle(i int, fallback float64) {
	oc := w.cfg.Obstacles

	behind, ok := w.farthestActiveObstacle(i)
	if !ok {
		behind = fallback
	}
	z := math.Max(behind-w.uniform(oc.Gap), oc.SpawnFloor)

	pos := w.obstacles[i].Pos
	pos.X = w.randomLane()
	pos.Y = 0
	pos.Z = z

	kind := w.randomType()
	w.obstacles[i] = newObstacle(kind, w.types[kind], pos, w.nextFake())
}

// farthestActiveObstacle returns the smallest Z among active obstacles,
// skipping slot skip. ok is false when no obstacle qualifies.
func (w *World) farthestActiveObstacle(skip int) (z float64, ok bool) {
	for i, o := range w.obstacles {
		if i == skip || !o.Active {
			continue
		}
		if !ok || o.Pos.Z < z {
			z = o.Pos.Z
			ok = true
		}
	}
	return z, ok
}

// ActiveObstacles returns the number of active obstacles.
func (w *World) ActiveObstacles() int {
	n := 0
	for _, o := range w.obstacles {
		if o.Active {
			n++
		}
	}
	return n
}

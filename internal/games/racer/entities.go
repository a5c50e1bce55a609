package racer

import (
	"github.com/vovakirdan/tui-racer/internal/config"
	"github.com/vovakirdan/tui-racer/internal/core"
)

// ObstacleType discriminates obstacle kinds.
type ObstacleType int

const (
	Rock ObstacleType = iota
	Pothole
	Barrier

	numObstacleTypes = 3
)

// String returns the display name of the obstacle type.
func (t ObstacleType) String() string {
	switch t {
	case Rock:
		return "Rock"
	case Pothole:
		return "Pothole"
	case Barrier:
		return "Barrier"
	default:
		return "Unknown"
	}
}

// Two of every three spawned obstacles are fakes.
const (
	fakeCycle    = 3
	fakePerCycle = 2
)

// isFakeSpawn reports whether the obstacle with the given spawn number is a fake.
func isFakeSpawn(spawn uint64) bool {
	return spawn%fakeCycle < fakePerCycle
}

// ObstacleSpec is the geometry and penalty of one obstacle kind.
type ObstacleSpec struct {
	Size         core.Vec3 // Width (X), height (Y), depth (Z)
	ScorePenalty int
	LifePenalty  int
	Color        core.Color
}

// TypeTable holds one spec per obstacle type, indexed by ObstacleType.
type TypeTable [numObstacleTypes]ObstacleSpec

// newTypeTable builds the base table from configuration.
func newTypeTable(types config.ObstacleTypes) TypeTable {
	convert := func(s config.ObstacleSpec) ObstacleSpec {
		return ObstacleSpec{
			Size:         core.Vec3{X: s.Width, Y: s.Height, Z: s.Depth},
			ScorePenalty: s.ScorePenalty,
			LifePenalty:  s.LifePenalty,
			Color:        colorByName(s.Color),
		}
	}

	var t TypeTable
	t[Rock] = convert(types.Rock)
	t[Pothole] = convert(types.Pothole)
	t[Barrier] = convert(types.Barrier)
	return t
}

// Scaled returns a copy with width and height multiplied by factor.
// Depth and penalties are unchanged.
func (t TypeTable) Scaled(factor float64) TypeTable {
	out := t
	for i := range out {
		out[i].Size.X *= factor
		out[i].Size.Y *= factor
	}
	return out
}

// Spec returns the spec for an obstacle type.
func (t TypeTable) Spec(kind ObstacleType) ObstacleSpec {
	return t[kind]
}

func colorByName(name string) core.Color {
	switch name {
	case "gray", "grey":
		return core.ColorGray
	case "brown":
		return core.ColorBrown
	case "orange":
		return core.ColorOrange
	case "red":
		return core.ColorRed
	case "yellow":
		return core.ColorYellow
	case "blue":
		return core.ColorBlue
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// Point is a collectible worth one score.
type Point struct {
	Pos    core.Vec3
	Active bool
}

// Box returns the collision box of a point of the given edge length.
// Points float, so the box is centered on the position.
func (p Point) Box(size float64) core.Box {
	return core.NewBox(p.Pos, core.Vec3{X: size, Y: size, Z: size})
}

// Diamond is the extra-life pickup.
type Diamond struct {
	Pos    core.Vec3
	Size   core.Vec3
	Active bool
}

// Box returns the collision box of the diamond.
func (d Diamond) Box() core.Box {
	return groundBox(d.Pos, d.Size)
}

// Obstacle is a pooled road hazard.
type Obstacle struct {
	Pos          core.Vec3
	Size         core.Vec3
	Type         ObstacleType
	ScorePenalty int
	LifePenalty  int
	Color        core.Color
	Fake         bool
	Active       bool
}

// newObstacle creates an active obstacle of the given kind at pos.
func newObstacle(kind ObstacleType, spec ObstacleSpec, pos core.Vec3, fake bool) Obstacle {
	return Obstacle{
		Pos:          pos,
		Size:         spec.Size,
		Type:         kind,
		ScorePenalty: spec.ScorePenalty,
		LifePenalty:  spec.LifePenalty,
		Color:        spec.Color,
		Fake:         fake,
		Active:       true,
	}
}

// Box returns the collision box of the obstacle.
func (o Obstacle) Box() core.Box {
	return groundBox(o.Pos, o.Size)
}

// groundBox returns the box of an entity resting on the road at pos.
func groundBox(pos, size core.Vec3) core.Box {
	center := pos
	center.Y += size.Y / 2
	return core.NewBox(center, size)
}

package racer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-racer/internal/core"
)

// Visual characters for rendering
const (
	CarChar       = '█'
	PointChar     = '•'
	DiamondChar   = '◆'
	RockChar      = '▲'
	PotholeChar   = '◎'
	BarrierChar   = '▬'
	FakeChar      = '░'
	TreeChar      = '♣'
	RoadEdgeChar  = '┃'
	LaneMarkChar  = '╎'
	LifeFullChar  = '♥'
	LifeEmptyChar = '♡'
)

// Layout constants
const (
	hudRows      = 2
	panelWidth   = 26
	panelMinW    = 72 // Screen width needed to show the side panel
	minScreenW   = 40
	minScreenH   = 14
	sceneryPad   = 10.0 // World units shown beside the road
	treeOffset   = 5.0  // Distance of trees from the road edge
	viewFarZ     = -200.0
	healthBarLen = 10
)

var obstacleGlyphs = [numObstacleTypes]rune{
	Rock:    RockChar,
	Pothole: PotholeChar,
	Barrier: BarrierChar,
}

// viewport maps world X/Z to screen cells. The road is seen from above
// with the far end at the top.
type viewport struct {
	rect       core.Rect
	xMin, xMax float64
	zFar       float64
	zNear      float64
}

func (v viewport) col(x float64) int {
	t := (x - v.xMin) / (v.xMax - v.xMin)
	return v.rect.X + int(math.Round(t*float64(v.rect.W-1)))
}

func (v viewport) row(z float64) int {
	t := (z - v.zFar) / (v.zNear - v.zFar)
	return v.rect.Y + int(math.Round(t*float64(v.rect.H-1)))
}

// zAt returns the world Z shown on a screen row.
func (v viewport) zAt(row int) float64 {
	t := float64(row-v.rect.Y) / float64(v.rect.H-1)
	return v.zFar + t*(v.zNear-v.zFar)
}

func (v viewport) visible(z float64) bool {
	return z >= v.zFar && z <= v.zNear
}

// fill draws r over the screen cells covered by the X/Z extent of a box.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	lo, hi := b.Min(), b.Max()
	if hi.Z < v.zFar || lo.Z > v.zNear {
		return
	}
	x0, x1 := v.col(lo.X), v.col(hi.X)
	y0 := v.row(math.Max(lo.Z, v.zFar))
	y1 := v.row(math.Min(hi.Z, v.zNear))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if v.rect.Contains(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

// RenderSnapshot draws a snapshot into dst. It reads nothing but the
// snapshot, so any presentation layer can reuse it.
func RenderSnapshot(dst *core.Screen, s Snapshot, best int) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		renderTooSmall(dst)
		return
	}

	fieldW := w
	showPanel := w >= panelMinW
	if showPanel {
		fieldW = w - panelWidth
	}

	vp := viewport{
		rect:  core.NewRect(0, hudRows, fieldW, h-hudRows),
		xMin:  s.Road.MinX - sceneryPad,
		xMax:  s.Road.MaxX() + sceneryPad,
		zFar:  viewFarZ,
		zNear: s.NearZ,
	}

	renderRoad(dst, vp, s)
	renderScenery(dst, vp, s)
	renderEntities(dst, vp, s)
	vp.fill(dst, s.Car, CarChar, core.ColorRed)

	renderHUD(dst, s, best)
	if showPanel {
		renderPanel(dst, core.NewRect(fieldW, hudRows, panelWidth, h-hudRows), s)
	}

	switch {
	case s.GameOver():
		drawCenteredMessage(dst, vp.rect, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	case s.Paused():
		drawCenteredMessage(dst, vp.rect, "PAUSED", "Press P to resume")
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderRoad draws the road edges and the dashed markers between lanes.
func renderRoad(dst *core.Screen, vp viewport, s Snapshot) {
	left, right := vp.col(s.Road.MinX), vp.col(s.Road.MaxX())
	dst.DrawVLine(left, vp.rect.Y, vp.rect.H, RoadEdgeChar, core.ColorWhite)
	dst.DrawVLine(right, vp.rect.Y, vp.rect.H, RoadEdgeChar, core.ColorWhite)

	lanes := s.Road.Lanes
	for i := 0; i+1 < len(lanes); i++ {
		x := vp.col((lanes[i] + lanes[i+1]) / 2)
		for y := vp.rect.Y; y < vp.rect.Bottom(); y++ {
			if onMarkerDash(vp.zAt(y), s.Scenery.MarkerOffset) {
				dst.SetColored(x, y, LaneMarkChar, core.ColorGray)
			}
		}
	}
}

// onMarkerDash reports whether a painted dash covers z for the given
// marker scroll offset.
func onMarkerDash(z, offset float64) bool {
	phase := math.Mod(z-offset, MarkerPattern)
	if phase < 0 {
		phase += MarkerPattern
	}
	return phase < MarkerDash
}

func renderScenery(dst *core.Screen, vp viewport, s Snapshot) {
	draw := func(x float64, trees []float64) {
		col := vp.col(x)
		for _, z := range trees {
			if vp.visible(z) {
				dst.SetColored(col, vp.row(z), TreeChar, core.ColorGreen)
			}
		}
	}
	draw(s.Road.MinX-treeOffset, s.Scenery.TreesLeft)
	draw(s.Road.MaxX()+treeOffset, s.Scenery.TreesRight)
}

func renderEntities(dst *core.Screen, vp viewport, s Snapshot) {
	for _, p := range s.Points {
		if p.Active && vp.visible(p.Pos.Z) {
			dst.SetColored(vp.col(p.Pos.X), vp.row(p.Pos.Z), PointChar, core.ColorBrightYellow)
		}
	}

	if s.Diamond.Active {
		vp.fill(dst, s.Diamond.Box(), DiamondChar, core.ColorBrightGreen)
	}

	for _, o := range s.Obstacles {
		if !o.Active {
			continue
		}
		glyph, color := obstacleGlyphs[o.Type], o.Color
		if o.Fake {
			glyph, color = FakeChar, core.ColorDim
		}
		vp.fill(dst, o.Box(), glyph, color)
	}
}

func renderHUD(dst *core.Screen, s Snapshot, best int) {
	w := dst.Width()

	left := fmt.Sprintf(" Score: %d  Best: %d ", s.Score, best)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	speed := fmt.Sprintf("x%.2f", s.SpeedMultiplier)
	if s.Boosting {
		speed += " BOOST"
	}
	right := fmt.Sprintf(" Level: %d/%d  Speed: %s ", s.Level+1, s.MaxLevel+1, speed)
	dst.DrawTextColored(w-len([]rune(right)), 0, right, core.ColorCyan)

	dst.DrawText(1, 1, "Lives ")
	dst.DrawTextColored(7, 1, healthBar(s.Lives, s.MaxLives), livesColor(s.Lives, s.MaxLives))

	if s.Message != "" {
		x := w - len([]rune(s.Message)) - 1
		dst.DrawTextColored(x, 1, s.Message, core.ColorBrightRed)
	}
}

// healthBar renders lives as hearts, compressed to a fixed bar when
// the maximum is large.
func healthBar(lives, maxLives int) string {
	if maxLives <= healthBarLen {
		return strings.Repeat(string(LifeFullChar), lives) +
			strings.Repeat(string(LifeEmptyChar), maxLives-lives)
	}
	filled := lives * healthBarLen / maxLives
	return strings.Repeat(string(LifeFullChar), filled) +
		strings.Repeat(string(LifeEmptyChar), healthBarLen-filled) +
		fmt.Sprintf(" %d", lives)
}

func livesColor(lives, maxLives int) core.Color {
	switch {
	case lives*3 <= maxLives:
		return core.ColorRed
	case lives*3 <= maxLives*2:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// renderPanel draws the legend with the base penalty of every obstacle type.
func renderPanel(dst *core.Screen, r core.Rect, s Snapshot) {
	dst.DrawBox(r)
	dst.DrawTextColored(r.X+2, r.Y+1, "Base Penalties", core.ColorWhite)

	y := r.Y + 3
	for kind := ObstacleType(0); kind < numObstacleTypes; kind++ {
		spec := s.BaseTypes[kind]
		dst.SetColored(r.X+2, y, obstacleGlyphs[kind], spec.Color)
		dst.DrawText(r.X+4, y, fmt.Sprintf("%-8s -%d / -%d", kind, spec.ScorePenalty, spec.LifePenalty))
		y++
	}
	y++
	dst.SetColored(r.X+2, y, FakeChar, core.ColorDim)
	dst.DrawText(r.X+4, y, "fake: harmless")
	y++
	dst.SetColored(r.X+2, y, PointChar, core.ColorBrightYellow)
	dst.DrawText(r.X+4, y, "point: +1 score")
	y++
	dst.SetColored(r.X+2, y, DiamondChar, core.ColorBrightGreen)
	dst.DrawText(r.X+4, y, "diamond: +1 life")

	y += 2
	dst.DrawText(r.X+2, y, fmt.Sprintf("Obstacles: %d/%d", s.ActiveObstacles(), s.TargetObstacles))
}

// drawCenteredMessage draws a message box in the center of area.
func drawCenteredMessage(dst *core.Screen, area core.Rect, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := area.X + (area.W-boxW)/2
	boxY := area.Y + (area.H-boxH)/2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

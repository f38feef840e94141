package drifter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/drift-arcade/internal/core"
	"github.com/vovakirdan/drift-arcade/internal/games/drifter/sim"
)

// Screen projection constants. Terminal cells are roughly twice as tall
// as they are wide, so one row spans twice the world distance of one
// column. The camera stays locked on the craft.
const (
	hudHeight   = 2
	worldPerCol = 12.5
	worldPerRow = 25.0
)

// star is one background star. Positions are sampled over a band scaled
// by depth; rendering divides by depth and wraps the result into the
// view, so deeper stars drift slower than the world and the field never
// runs out.
type star struct {
	pos   sim.Vec2
	depth float64
	glyph rune
	color core.Color
}

const starCount = 60

// makeStars samples the starfield for this run: depths from 1 to 3, far
// stars as faint dots, near ones as brighter sparks.
func (g *Game) makeStars() {
	g.stars = g.stars[:0]
	for i := 0; i < starCount; i++ {
		depth := 1.0 + 2.0*float64(i)/starCount
		s := star{
			pos: sim.Vec2{
				X: depth * (g.rng.Float64()*4000 - 2000),
				Y: depth * (g.rng.Float64()*4000 - 2000),
			},
			depth: depth,
			glyph: '.',
		}
		if depth < 1.4 {
			s.glyph = '*'
		}
		switch roll := g.rng.Float64(); {
		case roll < 0.2:
			s.color = core.ColorRed
		case roll < 0.4:
			s.color = core.ColorYellow
		case roll < 0.6:
			s.color = core.ColorBlue
		case roll < 0.8:
			s.color = core.ColorWhite
		default:
			s.color = core.ColorOrange
		}
		g.stars = append(g.stars, s)
	}
}

// Render draws the world centered on the craft: starfield, arena walls,
// obstacles, the air pod, the craft itself, then HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	if dst.Width() < 20 || dst.Height() < 8 {
		g.overlay(dst, "Window too small", "Resize to continue")
		return
	}

	craft := g.world.Entity(g.craft)
	cam := craft.Render.Pos

	g.renderStars(dst, cam)
	g.renderWalls(dst, cam)

	podColor := core.ColorCyan
	if g.world.Ticks()%30 < 15 {
		podColor = core.ColorBrightCyan
	}
	g.world.Each(func(_ sim.EntityID, e *sim.Entity) {
		switch e.Kind {
		case sim.KindObstacle:
			g.fillCircle(dst, cam, e.Render.Pos, e.Radius, '#', core.ColorGray)
		case sim.KindPickup:
			g.fillCircle(dst, cam, e.Render.Pos, e.Radius, 'o', podColor)
		}
	})

	g.renderCraft(dst, cam, craft)
	g.renderPodHint(dst, cam)
	g.renderHUD(dst, craft)

	switch {
	case g.gameOver:
		g.overlay(dst, "Out of Air", "Press R to restart")
	case g.paused:
		g.overlay(dst, "Paused", "Press P to continue")
	}
}

// colOf maps a world x coordinate to a screen column.
func colOf(dst *core.Screen, cam sim.Vec2, x float64) int {
	return dst.Width()/2 + int(math.Round((x-cam.X)/worldPerCol))
}

// rowOf maps a world y coordinate to a screen row. World +y runs down
// the screen, matching row order.
func rowOf(dst *core.Screen, cam sim.Vec2, y float64) int {
	return hudHeight + (dst.Height()-hudHeight)/2 + int(math.Round((y-cam.Y)/worldPerRow))
}

// worldAt maps a screen cell back to the world point at its center.
func worldAt(dst *core.Screen, cam sim.Vec2, sx, sy int) sim.Vec2 {
	cx := dst.Width() / 2
	cy := hudHeight + (dst.Height()-hudHeight)/2
	return sim.Vec2{
		X: cam.X + float64(sx-cx)*worldPerCol,
		Y: cam.Y + float64(sy-cy)*worldPerRow,
	}
}

// renderStars draws the parallax starfield. Each star's camera-relative
// position is divided by its depth and wrapped into the view box.
func (g *Game) renderStars(dst *core.Screen, cam sim.Vec2) {
	halfW := float64(dst.Width()) / 2 * worldPerCol
	halfH := float64(dst.Height()-hudHeight) / 2 * worldPerRow
	for _, s := range g.stars {
		lx := wrapInto((s.pos.X-cam.X)/s.depth, halfW)
		ly := wrapInto((s.pos.Y-cam.Y)/s.depth, halfH)
		sx := dst.Width()/2 + int(math.Round(lx/worldPerCol))
		sy := hudHeight + (dst.Height()-hudHeight)/2 + int(math.Round(ly/worldPerRow))
		if sy >= hudHeight {
			dst.SetWithColor(sx, sy, s.glyph, s.color)
		}
	}
}

// wrapInto folds v into the interval [-half, half).
func wrapInto(v, half float64) float64 {
	m := math.Mod(v+half, 2*half)
	if m < 0 {
		m += 2 * half
	}
	return m - half
}

// renderWalls draws the four arena edges where they cross the view.
func (g *Game) renderWalls(dst *core.Screen, cam sim.Vec2) {
	b := g.world.Bounds()
	left := colOf(dst, cam, b.Min.X)
	right := colOf(dst, cam, b.Max.X)
	top := rowOf(dst, cam, b.Min.Y)
	bottom := rowOf(dst, cam, b.Max.Y)

	for sx := max(left, 0); sx <= right && sx < dst.Width(); sx++ {
		if top >= hudHeight {
			dst.SetWithColor(sx, top, '-', core.ColorGray)
		}
		dst.SetWithColor(sx, bottom, '-', core.ColorGray)
	}
	for sy := max(top, hudHeight); sy <= bottom && sy < dst.Height(); sy++ {
		dst.SetWithColor(left, sy, '|', core.ColorGray)
		dst.SetWithColor(right, sy, '|', core.ColorGray)
	}
	for _, c := range [4][2]int{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		if c[1] >= hudHeight {
			dst.SetWithColor(c[0], c[1], '+', core.ColorGray)
		}
	}
}

// fillCircle draws a filled disc by testing each covered cell's center
// against the radius.
func (g *Game) fillCircle(dst *core.Screen, cam, pos sim.Vec2, radius float64, glyph rune, color core.Color) {
	minC := colOf(dst, cam, pos.X-radius)
	maxC := colOf(dst, cam, pos.X+radius)
	minR := rowOf(dst, cam, pos.Y-radius)
	maxR := rowOf(dst, cam, pos.Y+radius)
	for sy := max(minR, hudHeight); sy <= maxR && sy < dst.Height(); sy++ {
		for sx := max(minC, 0); sx <= maxC && sx < dst.Width(); sx++ {
			if worldAt(dst, cam, sx, sy).Dist(pos) <= radius {
				dst.SetWithColor(sx, sy, glyph, color)
			}
		}
	}
}

// renderCraft draws the craft as a three-cell rocket along its heading,
// with an animated exhaust flame while thrusting. The hull is smaller
// than one row of world space, so the rocket is laid out in whole screen
// cells along the heading octant rather than projected from body points.
func (g *Game) renderCraft(dst *core.Screen, cam sim.Vec2, craft *sim.Entity) {
	sx := colOf(dst, cam, craft.Render.Pos.X)
	sy := rowOf(dst, cam, craft.Render.Pos.Y)

	fwd := sim.Vec2{X: -math.Sin(craft.Render.Rot), Y: math.Cos(craft.Render.Rot)}
	oct := octantOf(fwd)
	dx, dy := octantOffsets[oct][0], octantOffsets[oct][1]

	g.setCell(dst, sx-dx, sy-dy, 'o', core.ColorWhite)
	g.setCell(dst, sx+dx, sy+dy, headingGlyphs[oct], core.ColorBrightWhite)
	g.setCell(dst, sx, sy, 'O', core.ColorBrightWhite)

	if craft.Thrusting {
		if g.world.Ticks()%2 == 0 {
			g.setCell(dst, sx-2*dx, sy-2*dy, '*', core.ColorBrightYellow)
		} else {
			g.setCell(dst, sx-2*dx, sy-2*dy, '+', core.ColorOrange)
		}
	}
}

// setCell writes a glyph at a screen cell, skipping the HUD rows.
func (g *Game) setCell(dst *core.Screen, sx, sy int, glyph rune, color core.Color) {
	if sy >= hudHeight {
		dst.SetWithColor(sx, sy, glyph, color)
	}
}

// headingGlyphs are the eight arrow glyphs by screen octant, starting at
// east and going clockwise.
var headingGlyphs = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

// octantOffsets are the unit cell steps for the same octants.
var octantOffsets = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

// compassNames name the same octants for the HUD bearing readout.
var compassNames = [8]string{"E", "SE", "S", "SW", "W", "NW", "N", "NE"}

// octantOf buckets a screen-space direction into one of eight octants.
func octantOf(d sim.Vec2) int {
	a := math.Atan2(d.Y, d.X)
	oct := int(math.Round(a / (math.Pi / 4)))
	return ((oct % 8) + 8) % 8
}

// renderPodHint marks off-screen air pods with an arrow pinned to the
// view edge. The arena dwarfs the view, so without the hint the pod
// would be a blind search.
func (g *Game) renderPodHint(dst *core.Screen, cam sim.Vec2) {
	for _, id := range g.pickups {
		e := g.world.Entity(id)
		sx := colOf(dst, cam, e.Render.Pos.X)
		sy := rowOf(dst, cam, e.Render.Pos.Y)
		if sx >= 0 && sx < dst.Width() && sy >= hudHeight && sy < dst.Height() {
			continue
		}
		d := e.Render.Pos.Sub(cam)
		hx := core.Clamp(sx, 1, dst.Width()-2)
		hy := core.Clamp(sy, hudHeight+1, dst.Height()-2)
		dst.SetWithColor(hx, hy, headingGlyphs[octantOf(d)], core.ColorBrightCyan)
	}
}

// renderHUD draws the top status bar: score, remaining air with a
// low-air warning color, and the bearing to the nearest pod.
func (g *Game) renderHUD(dst *core.Screen, craft *sim.Entity) {
	prefix := fmt.Sprintf(" Drifter  Score: %d  ", craft.Score)
	dst.DrawText(0, 0, prefix)

	airSec := float64(craft.Air) / sim.TickRate
	airStr := fmt.Sprintf("Air: %.1fs", airSec)
	airColor := core.ColorGreen
	switch {
	case airSec < 10:
		airColor = core.ColorBrightRed
	case airSec < 20:
		airColor = core.ColorYellow
	}
	dst.DrawTextWithColor(len(prefix), 0, airStr, airColor)

	if pod := g.nearestPod(craft.Render.Pos); pod != nil {
		d := pod.Render.Pos.Sub(craft.Render.Pos)
		hint := fmt.Sprintf("  Pod: %.0fu %s", d.Length(), compassNames[octantOf(d)])
		dst.DrawText(len(prefix)+len(airStr), 0, hint)
	}

	width := dst.Width()
	for x := 0; x < width; x++ {
		dst.Set(x, 1, '─')
	}
}

// nearestPod returns the pickup closest to the given point, or nil when
// none exist.
func (g *Game) nearestPod(from sim.Vec2) *sim.Entity {
	var best *sim.Entity
	bestDist := math.MaxFloat64
	for _, id := range g.pickups {
		e := g.world.Entity(id)
		if d := e.Render.Pos.Dist(from); d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

// overlay draws a centered two-line message box.
func (g *Game) overlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	drawCenteredText(dst, line1, boxY+1)
	drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally on the given row.
func drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}

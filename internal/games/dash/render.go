package dash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/vector-dash/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '█'
	FloatingChar = '▓'
	CoinChar     = '◆'
	PlayerChar   = '█'
	UprightChar  = '▲'
	InvertedChar = '▼'
	DeadChar     = '✖'
	TrailChar    = '·'
	SparkleChar  = '*'
	EdgeChar     = '─'
	DeadFillChar = '░'
)

// shakeTicks is how long a lane shakes after its player dies.
const shakeTicks = 12

// laneView is where one lane lands on the screen. Rows are the playfield
// between the two edge lines; the HUD sits above the top edge.
type laneView struct {
	id   core.PlayerID
	hud  int // HUD row
	top  int // first playfield row
	rows int
	cols int
	w, h float64 // world size
}

// layout stacks the active lanes vertically.
func (g *Game) layout() []laneView {
	ids := g.round.Active()
	if len(ids) == 0 {
		return nil
	}
	block := g.runtime.ScreenH / len(ids)
	views := make([]laneView, 0, len(ids))
	for i, id := range ids {
		y0 := i * block
		views = append(views, laneView{
			id:   id,
			hud:  y0,
			top:  y0 + 2,
			rows: max(1, block-3),
			cols: max(1, g.runtime.ScreenW),
			w:    g.cfg.Lane.Width,
			h:    g.cfg.Lane.Height,
		})
	}
	return views
}

// cellBox converts a world box to inclusive screen cell bounds.
func (v laneView) cellBox(r core.Rect) (x0, y0, x1, y1 int) {
	sx := float64(v.cols) / v.w
	sy := float64(v.rows) / v.h
	x0 = int(math.Floor(r.X * sx))
	x1 = max(x0, int(math.Ceil(r.Right()*sx))-1)
	bottom := int(math.Floor(r.Y * sy))
	topRow := max(bottom, int(math.Ceil(r.Top()*sy))-1)
	// world rows count up from the floor, screen rows count down
	y0 = v.top + v.rows - 1 - topRow
	y1 = v.top + v.rows - 1 - bottom
	return x0, y0, x1, y1
}

// toWorld maps a screen cell to the center of the matching world area.
func (v laneView) toWorld(x, y int) (core.Vec, bool) {
	if x < 0 || x >= v.cols || y < v.top || y >= v.top+v.rows {
		return core.Vec{}, false
	}
	row := v.top + v.rows - 1 - y
	return core.Vec{
		X: (float64(x) + 0.5) * v.w / float64(v.cols),
		Y: (float64(row) + 0.5) * v.h / float64(v.rows),
	}, true
}

func (v laneView) fill(dst *core.Screen, r core.Rect, shift int, ch rune, c core.Color) {
	x0, y0, x1, y1 := v.cellBox(r)
	y0 = max(y0, v.top)
	y1 = min(y1, v.top+v.rows-1)
	dst.FillRect(x0+shift, y0, x1+shift+1, y1+1, ch, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}

	snap := g.round.Snapshot()
	for i, v := range g.layout() {
		g.drawLane(dst, v, snap.Players[i])
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if res, ok := g.round.Result(); ok {
		drawCenteredMessage(dst, "GAME OVER", res.Message(), "R: restart  |  B: menu  |  Q: quit")
	}
}

func (g *Game) drawLane(dst *core.Screen, v laneView, p PlayerSnapshot) {
	shift := 0
	if n := g.shake[v.id]; n > 0 && n%2 == 0 {
		shift = 1
	}
	avatar := g.scene.Avatar(v.id)

	// HUD
	dst.DrawTextColored(1, v.hud, p.HUD(g.boostKey(v.id)), g.opts.Skin.PlayerColor(v.id))
	right := fmt.Sprintf("Speed: %.2f", g.round.Speed())
	if g.mode == ModeSingle {
		right = fmt.Sprintf("High Score: %d  %s", g.round.HighScore(), right)
	}
	dst.DrawText(v.cols-len(right)-1, v.hud, right)

	// Edges; the lane inverts while a flip highlight is active and turns red on death
	edge := core.ColorGray
	switch {
	case p.Dead:
		edge = core.ColorDarkRed
		dst.FillRect(0, v.top, v.cols, v.top+v.rows, DeadFillChar, core.ColorDarkRed)
	case avatar.Highlight:
		edge = core.ColorBrightWhite
	}
	dst.DrawHLine(0, v.top-1, v.cols, EdgeChar, edge)
	dst.DrawHLine(0, v.top+v.rows, v.cols, EdgeChar, edge)

	for _, e := range g.scene.Elements(v.id) {
		switch e.Kind {
		case ElementObstacle:
			v.fill(dst, e.Box, shift, ObstacleChar, core.ColorBrightMagenta)
		case ElementFloating:
			v.fill(dst, e.Box, shift, FloatingChar, core.ColorMagenta)
		case ElementCoin:
			v.fill(dst, e.Box, shift, CoinChar, core.ColorBrightYellow)
		case ElementTrail:
			v.fill(dst, e.Box, shift, TrailChar, g.opts.Skin.PlayerColor(v.id))
		case ElementBoostTrail:
			v.fill(dst, e.Box, shift, TrailChar, core.ColorBrightWhite)
		case ElementSparkle:
			x0, y0, _, _ := v.cellBox(e.Box)
			if y0 >= v.top && y0 < v.top+v.rows {
				dst.SetColored(x0+shift, y0, SparkleChar, core.ColorYellow)
			}
		case ElementFloatText:
			x0, y0, _, _ := v.cellBox(e.Box)
			dst.DrawTextColored(x0+shift, max(v.top, y0-1), "+1", core.ColorBrightYellow)
		}
	}

	g.drawPlayer(dst, v, avatar, shift)
}

func (g *Game) drawPlayer(dst *core.Screen, v laneView, a Avatar, shift int) {
	box := core.NewRect(a.Pos.X, a.Pos.Y, g.cfg.Player.Width, g.cfg.Player.Height)
	color := g.opts.Skin.PlayerColor(v.id)
	if a.Boosting {
		color = core.ColorBrightWhite
	}
	if a.Dead {
		v.fill(dst, box, shift, DeadChar, core.ColorRed)
		return
	}
	v.fill(dst, box, shift, PlayerChar, color)

	glyph := UprightChar
	if a.Orientation == Inverted {
		glyph = InvertedChar
	}
	x0, y0, x1, y1 := v.cellBox(box)
	dst.SetColored((x0+x1)/2+shift, (y0+y1)/2, glyph, color)
}

// boostKey returns the first key bound to a player's boost.
func (g *Game) boostKey(id core.PlayerID) string {
	keys := g.cfg.Controls.P1Boost
	if id == core.Player2 {
		keys = g.cfg.Controls.P2Boost
	}
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := 2*len(lines) + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+2*i, l)
	}
}

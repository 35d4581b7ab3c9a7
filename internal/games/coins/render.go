package coins

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/vovakirdan/coinrush/internal/core"
)

// tileW is the number of screen columns per board tile; terminal cells are
// roughly twice as tall as they are wide.
const tileW = 2

// Render draws the board, coins, player and HUD into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		renderOverlay(dst, "Cannot start game", g.err.Error(), core.ColorRed)
		return
	}
	if g.engine == nil {
		return
	}

	b := g.engine.Bounds()
	boxW := b.Columns*tileW + 2
	boxH := b.Rows + 2
	if dst.Width() < boxW || dst.Height() < boxH+1 {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boxW, boxH+1), core.ColorYellow)
		return
	}

	box := dst.Bounds().Centered(boxW, boxH+1)
	box.H = boxH
	dst.DrawBox(box)
	ox, oy := box.X+1, box.Y+1

	for row := range b.Rows {
		for col := range b.Columns {
			tile, color := "▒▒", core.ColorBoardLight
			if (row+col)%2 == 1 {
				tile, color = "░░", core.ColorBoardDark
			}
			drawTile(dst, ox, oy, core.Pos{Col: col, Row: row}, tile, color)
		}
	}

	for c := range g.engine.pool.All() {
		label := "$ "
		if n := g.engine.CoinsAt(c.Pos); n > 1 {
			label = "$" + strconv.Itoa(min(n, 9))
		}
		drawTile(dst, ox, oy, c.Pos, label, core.ColorBrightYellow)
	}

	drawTile(dst, ox, oy, g.engine.PlayerPos(), "<>", core.ColorBrightWhite)

	// HUD: score centered under the board, clock right-aligned
	hudY := box.Bottom()
	score := "$" + strconv.Itoa(g.engine.Score())
	dst.DrawTextColor(box.X+(box.W-len(score))/2, hudY, score, core.ColorBrightYellow)
	clock := "Time: " + FormatElapsed(g.engine.Elapsed())
	dst.DrawTextColor(box.Right()-len(clock), hudY, clock, core.ColorGray)

	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue", core.ColorYellow)
	}
}

func drawTile(dst *core.Screen, ox, oy int, p core.Pos, label string, c core.Color) {
	dst.DrawTextColor(ox+p.Col*tileW, oy+p.Row, label, c)
}

// renderOverlay draws a centered two-line message box with a colored title.
func renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	w := max(len(line1), len(line2)) + 4
	r := dst.Bounds().Centered(w, 5)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextColor(r.X+(r.W-len(line1))/2, r.Y+1, line1, c)
	dst.DrawText(r.X+(r.W-len(line2))/2, r.Y+3, line2)
}

// FormatElapsed renders a duration as seconds with at most two decimals,
// dropping trailing zeros ("1.2", "0.04", "3").
func FormatElapsed(d time.Duration) string {
	secs := math.Round(d.Seconds()*100) / 100
	return strconv.FormatFloat(secs, 'f', -1, 64)
}

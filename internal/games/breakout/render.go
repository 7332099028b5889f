package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/crabout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
)

// BrickGlyphs alternate between neighbouring bricks so a row of adjacent
// bricks still reads as separate blocks on a coarse grid.
var BrickGlyphs = []rune{'█', '▓'}

// RowColors cycle through the obstacle rows.
var RowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
}

// Minimum character grid that still shows every row distinctly.
const (
	MinScreenW = 32
	MinScreenH = 14
)

// Render draws the current game state to a character grid. Row 0 is the HUD;
// the remaining rows show the field scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := newViewport(g.field, dst.Width(), dst.Height()-1)

	g.renderHUD(dst)
	g.renderObstacles(dst, v)
	g.renderPaddle(dst, v)
	g.renderBall(dst, v)
	g.renderOverlay(dst)
}

// viewport maps field units to character cells below the HUD row.
type viewport struct {
	sx, sy float64 // Field units per cell
	cols   int
	rows   int
}

func newViewport(f Field, cols, rows int) viewport {
	return viewport{
		sx:   f.Width / float64(cols),
		sy:   f.Height / float64(rows),
		cols: cols,
		rows: rows,
	}
}

// col returns the cell column containing field x.
func (v viewport) col(x float64) int {
	return core.Clamp(int(math.Floor(x/v.sx)), 0, v.cols-1)
}

// row returns the screen row containing field y, accounting for the HUD.
func (v viewport) row(y float64) int {
	return 1 + core.Clamp(int(math.Floor(y/v.sy)), 0, v.rows-1)
}

// span returns the cell columns [from, to) covered by [x, x+w).
func (v viewport) span(x, w float64) (from, to int) {
	from = v.col(x)
	to = core.Clamp(int(math.Ceil((x+w)/v.sx)), from+1, v.cols)
	return from, to
}

// renderHUD draws the score and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextColored(dst.Width()-len(livesText)-1, 0, livesText, core.ColorBrightWhite)
}

// renderObstacles draws every obstacle that has not been hit.
func (g *Game) renderObstacles(dst *core.Screen, v viewport) {
	row := -1
	prevY := math.Inf(-1)
	for i, obs := range g.obstacles {
		if obs.Pos.Y != prevY {
			row++
			prevY = obs.Pos.Y
		}
		if obs.Hit {
			continue
		}

		y := v.row(obs.Pos.Y + obs.Size.Y/2)
		from, to := v.span(obs.Pos.X, obs.Size.X)
		glyph := BrickGlyphs[i%len(BrickGlyphs)]
		color := RowColors[row%len(RowColors)]
		dst.DrawRect(core.NewRect(from, y, to-from, 1), glyph, color)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	y := v.row(g.paddle.Pos.Y + g.paddle.Size.Y/2)
	from, to := v.span(g.paddle.Pos.X, g.paddle.Size.X)
	dst.DrawRect(core.NewRect(from, y, to-from, 1), PaddleChar, core.ColorBrightWhite)
}

// renderBall draws the ball unless it has left the field.
func (g *Game) renderBall(dst *core.Screen, v viewport) {
	c := g.ball.Center
	if c.Y > g.field.Height {
		return
	}
	dst.SetColored(v.col(c.X), v.row(c.Y), BallChar, core.ColorYellow)
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "SPACE or P to resume")
	case PhaseGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d | SPACE to restart", g.score))
	case PhaseWon:
		g.drawCenteredBox(dst, "WINNER", fmt.Sprintf("Score: %d | SPACE to restart", g.score))
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len(title), len(subtitle))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

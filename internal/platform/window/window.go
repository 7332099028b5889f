// Package window runs Crabout in a native window with Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/crabout/internal/core"
	"github.com/vovakirdan/crabout/internal/games/breakout"
)

// Game is the simulation driven by the window front-end.
type Game interface {
	Title() string
	Field() breakout.Field
	Step(in core.InputFrame, elapsed float64) core.StepResult
	Snapshot() breakout.Snapshot
}

var (
	background = color.RGBA{16, 16, 24, 255}
	dimOverlay = color.RGBA{0, 0, 0, 160}
	hudFace    = text.NewGoXFace(basicfont.Face7x13)
)

// App adapts a Game to ebiten.Game. Update runs at a fixed TPS, so every
// step is scaled by the same factor.
type App struct {
	game    Game
	field   breakout.Field
	tps     int
	elapsed float64
	logger  *log.Logger
}

// NewApp creates the window adapter. A nil logger discards all output.
func NewApp(game Game, tickRate int, logger *log.Logger) *App {
	if tickRate <= 0 {
		tickRate = core.BaseTickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{
		game:    game,
		field:   game.Field(),
		tps:     tickRate,
		elapsed: core.ClampF(float64(core.BaseTickRate)/float64(tickRate), 0, core.MaxFrameScale),
		logger:  logger,
	}
}

// Update reads the keyboard and advances the game one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.logger.Info("quit")
		return ebiten.Termination
	}

	result := a.game.Step(readInput(), a.elapsed)
	for _, e := range result.Events {
		kv := []any{"event", e.Type, "tick", e.Tick, "score", result.State.Score, "lives", result.State.Lives}
		switch e.Type {
		case core.EventGameOver, core.EventWon, core.EventRestarted:
			a.logger.Info("game", kv...)
		default:
			a.logger.Debug("game", kv...)
		}
	}
	return nil
}

// readInput maps the keyboard state to an input frame. Directions are level
// triggered; everything else fires on the press only.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	return in
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	snap := a.game.Snapshot()

	row := -1
	prevY := math.Inf(-1)
	for _, o := range snap.Obstacles {
		if o.Pos.Y != prevY {
			row++
			prevY = o.Pos.Y
		}
		if o.Hit {
			continue
		}
		clr := breakout.RowColors[row%len(breakout.RowColors)].ToRGBA()
		vector.DrawFilledRect(screen, f32(o.Pos.X), f32(o.Pos.Y), f32(o.Size.X), f32(o.Size.Y), clr, false)
	}

	p := snap.Paddle
	vector.DrawFilledRect(screen, f32(p.Pos.X), f32(p.Pos.Y), f32(p.Size.X), f32(p.Size.Y),
		core.ColorBrightWhite.ToRGBA(), false)

	b := snap.Ball
	vector.DrawFilledCircle(screen, f32(b.Center.X), f32(b.Center.Y), f32(b.Radius),
		core.ColorYellow.ToRGBA(), true)

	drawText(screen, fmt.Sprintf("Score: %d", snap.Score), 8, 8)
	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	drawText(screen, lives, a.field.Width-8-textWidth(lives), 8)

	switch snap.Phase {
	case breakout.PhasePaused:
		a.drawOverlay(screen, "PAUSED", "SPACE or P to resume")
	case breakout.PhaseGameOver:
		a.drawOverlay(screen, "GAME OVER", fmt.Sprintf("Score: %d | SPACE to restart", snap.Score))
	case breakout.PhaseWon:
		a.drawOverlay(screen, "WINNER", fmt.Sprintf("Score: %d | SPACE to restart", snap.Score))
	case breakout.PhasePlaying:
	}
}

// drawOverlay dims the field and centers a two-line message.
func (a *App) drawOverlay(screen *ebiten.Image, title, subtitle string) {
	w, h := a.field.Width, a.field.Height
	vector.DrawFilledRect(screen, 0, 0, f32(w), f32(h), dimOverlay, false)
	drawText(screen, title, (w-textWidth(title))/2, h/2-20)
	drawText(screen, subtitle, (w-textWidth(subtitle))/2, h/2+4)
}

// Layout fixes the logical screen to the field size; Ebitengine scales it to
// the window.
func (a *App) Layout(_, _ int) (int, int) {
	return int(a.field.Width), int(a.field.Height)
}

func drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(core.ColorBrightWhite.ToRGBA())
	text.Draw(screen, s, hudFace, op)
}

func textWidth(s string) float64 {
	w, _ := text.Measure(s, hudFace, 0)
	return w
}

func f32(v float64) float32 {
	return float32(v)
}

// Run opens a window sized to the field and blocks until it is closed or
// the player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	app := NewApp(game, cfg.TickRate, logger)

	ebiten.SetWindowSize(int(app.field.Width), int(app.field.Height))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(app.tps)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

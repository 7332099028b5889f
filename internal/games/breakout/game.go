package breakout

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/crabout/internal/config"
	"github.com/vovakirdan/crabout/internal/core"
)

// Phase is the game's top-level mode.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver // No lives left
	PhaseWon      // Every obstacle hit
)

// String returns the phase name used in logs and GameState.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Game owns every entity of one session and advances them one tick at a time.
// It is not safe for concurrent use; each front-end session owns its own Game.
type Game struct {
	cfg   config.Config
	field Field
	rng   *rand.Rand

	paddle    Paddle
	ball      Ball
	obstacles []Obstacle

	score int
	lives int
	phase Phase
	tick  uint64
	clock core.TickAccumulator // Fractional ticks not yet simulated

	events []core.Event
}

// New validates cfg and creates a game in the Playing phase. The seed drives
// the obstacle layout of this and every later reset.
func New(cfg config.Config, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("breakout: %w", err)
	}

	g := &Game{
		cfg:   cfg,
		field: Field{Width: cfg.Field.Width, Height: cfg.Field.Height},
		rng:   rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g, nil
}

// ID returns the identifier used in logs.
func (g *Game) ID() string {
	return "crabout"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Crabout"
}

// Reset starts a new session: fresh obstacle layout, full lives, zero score,
// centered paddle, ball served, phase Playing. Everything is built first and
// assigned together so no caller can observe a half-reset game.
func (g *Game) Reset() {
	obstacles := GenerateObstacles(g.cfg.Obstacles, g.field.Width, g.rng)
	paddle := NewPaddle(
		g.field.Width/2,
		g.field.Height-g.cfg.Field.GroundOffset,
		g.cfg.Paddle.Width,
		g.cfg.Paddle.Height,
		g.cfg.Paddle.Speed,
	)

	g.obstacles = obstacles
	g.paddle = paddle
	g.ball = g.servedBall(paddle)
	g.lives = g.cfg.Gameplay.Lives
	g.score = 0
	g.phase = PhasePlaying
	g.tick = 0
	g.clock = core.TickAccumulator{}
}

// servedBall returns a ball resting two radii above the paddle's center,
// moving with the launch velocity.
func (g *Game) servedBall(p Paddle) Ball {
	r := g.cfg.Ball.Radius
	return Ball{
		Center:   core.V(p.CenterX(), p.Pos.Y-2*r),
		Radius:   r,
		Velocity: core.V(g.cfg.Ball.VelocityX, g.cfg.Ball.VelocityY),
	}
}

// Step advances the game by one frame. elapsed is the frame's motion scale
// (1.0 for a frame at core.BaseTickRate); see core.FrameScale. Motion runs in
// whole ticks: elapsed is accumulated and every complete tick moves the paddle
// and ball by exactly one tick's velocity, so wall reflection behaves the same
// at any frame rate. Edge-triggered input applies once per call even when no
// whole tick is due.
func (g *Game) Step(in core.InputFrame, elapsed float64) core.StepResult {
	g.events = nil
	g.tick++

	// Terminal phases only listen for a restart
	if g.phase == PhaseGameOver || g.phase == PhaseWon {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.Reset()
			g.emit(core.EventRestarted)
		}
		return g.result()
	}

	if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
		g.togglePause()
	}

	for range g.clock.Add(elapsed) {
		g.advance(in)
		if g.phase == PhaseGameOver || g.phase == PhaseWon {
			break
		}
	}

	return g.result()
}

// advance runs one whole tick of motion and collision.
func (g *Game) advance(in core.InputFrame) {
	// Paddle input stays live while paused
	if in.Has(core.ActionLeft) {
		g.paddle.Slide(Left, 1, g.field)
	}
	if in.Has(core.ActionRight) {
		g.paddle.Slide(Right, 1, g.field)
	}

	g.collideObstacles()

	if g.ball.Collides(g.paddle.Pos, g.paddle.Size) {
		g.ball.BounceY()
		g.emit(core.EventPaddleHit)
	}

	if g.phase != PhasePaused {
		g.ball.Advance(1, g.field)
	}

	if g.ball.Bottom() > g.field.Height {
		g.handleMiss()
		if g.phase == PhaseGameOver {
			return
		}
	}

	if countRemaining(g.obstacles) == 0 {
		g.phase = PhaseWon
		g.emit(core.EventWon)
	}
}

// togglePause switches between Playing and Paused.
func (g *Game) togglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
		g.emit(core.EventPaused)
	case PhasePaused:
		g.phase = PhasePlaying
		g.emit(core.EventResumed)
	}
}

// collideObstacles destroys the first intact obstacle the ball overlaps, in
// collection order. At most one obstacle is hit per tick.
func (g *Game) collideObstacles() {
	for i := range g.obstacles {
		obs := &g.obstacles[i]
		if obs.Hit || !g.ball.Collides(obs.Pos, obs.Size) {
			continue
		}
		obs.Destroy()
		g.score += g.cfg.Gameplay.PointsPerHit
		g.ball.BounceY()
		g.emit(core.EventObstacleHit)
		return
	}
}

// handleMiss takes a life and either ends the game or serves a new ball.
func (g *Game) handleMiss() {
	g.lives--
	g.emit(core.EventLifeLost)

	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.emit(core.EventGameOver)
		return
	}

	g.ball = g.servedBall(g.paddle)
}

func (g *Game) emit(t core.EventType) {
	g.events = append(g.events, core.Event{Type: t, Tick: g.tick})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.phase.String(),
		GameOver: g.phase == PhaseGameOver,
		Won:      g.phase == PhaseWon,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Field returns the playfield size.
func (g *Game) Field() Field {
	return g.field
}

// Config returns the gameplay config the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}

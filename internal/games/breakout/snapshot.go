package breakout

import "math"

// Snapshot is a read-only copy of everything a front-end needs to draw a frame.
// It shares no memory with the Game.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Lives     int
	Remaining int // Obstacles not yet hit

	Paddle    Paddle
	Ball      Ball
	Obstacles []Obstacle
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.phase,
		Score:     g.score,
		Lives:     g.lives,
		Remaining: countRemaining(g.obstacles),
		Paddle:    g.paddle,
		Ball:      g.ball,
		Obstacles: obstacles,
	}
}

// ApplySnapshot restores game state from a snapshot. All fields are replaced
// together; Remaining is derived and ignored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	obstacles := make([]Obstacle, len(snap.Obstacles))
	copy(obstacles, snap.Obstacles)

	g.tick = snap.Tick
	g.phase = snap.Phase
	g.score = snap.Score
	g.lives = snap.Lives
	g.paddle = snap.Paddle
	g.ball = snap.Ball
	g.obstacles = obstacles
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation

	for _, f := range []float64{
		snap.Paddle.Pos.X, snap.Paddle.Pos.Y, snap.Paddle.Size.X, snap.Paddle.Size.Y,
		snap.Ball.Center.X, snap.Ball.Center.Y, snap.Ball.Velocity.X, snap.Ball.Velocity.Y,
	} {
		h = h*31 + math.Float64bits(f)
	}

	for _, o := range snap.Obstacles {
		h = h*31 + math.Float64bits(o.Pos.X)
		h = h*31 + math.Float64bits(o.Pos.Y)
		h = h*31 + math.Float64bits(o.Size.X)
		if o.Hit {
			h = h*31 + 1
		} else {
			h = h * 31
		}
	}

	return h
}

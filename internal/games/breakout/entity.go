package breakout

import "github.com/vovakirdan/crabout/internal/core"

// Field is the playfield size in field units.
type Field struct {
	Width, Height float64
}

// Direction is a horizontal paddle direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// Paddle represents the player's paddle.
type Paddle struct {
	Pos   core.Vec2 // Top-left corner
	Size  core.Vec2
	Speed float64 // Distance per tick
}

// NewPaddle creates a paddle centered on (cx, cy).
func NewPaddle(cx, cy, w, h, speed float64) Paddle {
	return Paddle{
		Pos:   core.V(cx-w/2, cy-h/2),
		Size:  core.V(w, h),
		Speed: speed,
	}
}

// CenterX returns the x-coordinate of the paddle's center.
func (p Paddle) CenterX() float64 {
	return p.Pos.X + p.Size.X/2
}

// Slide moves the paddle by Speed*elapsed in the given direction. A step that
// would carry it past either edge of the field is skipped entirely, so the
// paddle never snaps to the wall.
func (p *Paddle) Slide(dir Direction, elapsed float64, field Field) {
	delta := p.Speed * elapsed
	switch dir {
	case Left:
		if p.Pos.X-delta >= 0 {
			p.Pos.X -= delta
		}
	case Right:
		if p.Pos.X+delta+p.Size.X <= field.Width {
			p.Pos.X += delta
		}
	}
}

// Ball represents the ball.
type Ball struct {
	Center   core.Vec2
	Radius   float64
	Velocity core.Vec2 // Distance per tick
}

// Advance reflects the ball off the side and top walls, then moves it by
// Velocity*elapsed. The bottom edge is not a wall: crossing it is a miss and
// is handled by the game.
func (b *Ball) Advance(elapsed float64, field Field) {
	if b.Center.X+b.Radius >= field.Width || b.Center.X-b.Radius <= 0 {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Center.Y-b.Radius <= 0 {
		b.Velocity.Y = -b.Velocity.Y
	}
	b.Center = b.Center.Add(b.Velocity.Scale(elapsed))
}

// Collides reports whether the ball overlaps the given rectangle.
func (b Ball) Collides(pos, size core.Vec2) bool {
	return core.CircleIntersectsRect(b.Center, b.Radius, pos, size)
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.Velocity.Y = -b.Velocity.Y
}

// Bottom returns the y-coordinate of the ball's lowest point.
func (b Ball) Bottom() float64 {
	return b.Center.Y + b.Radius
}

// Obstacle is a single brick.
type Obstacle struct {
	Pos  core.Vec2 // Top-left corner
	Size core.Vec2
	Hit  bool // Destroyed; never reverts
}

// Destroy marks the obstacle hit. Returns false if it already was.
func (o *Obstacle) Destroy() bool {
	if o.Hit {
		return false
	}
	o.Hit = true
	return true
}

package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/crabout/internal/core"
)

var testField = Field{Width: 640, Height: 480}

func TestPaddleSlide(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		dir      Direction
		elapsed  float64
		expected float64
	}{
		{"right one tick", 270, Right, 1, 282},
		{"left one tick", 270, Left, 1, 258},
		{"half tick", 270, Right, 0.5, 276},
		{"right step would cross edge", 535, Right, 1, 535},
		{"right at max", 540, Right, 1, 540},
		{"right lands exactly on edge", 528, Right, 1, 540},
		{"left step would cross edge", 5, Left, 1, 5},
		{"left lands exactly on edge", 12, Left, 1, 0},
		{"left at zero", 0, Left, 1, 0},
		{"large elapsed is all or nothing", 300, Right, 4, 348},
		{"large elapsed near edge", 500, Right, 4, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{Pos: core.V(tc.x, 375), Size: core.V(100, 10), Speed: 12}
			p.Slide(tc.dir, tc.elapsed, testField)
			assert.Equal(t, tc.expected, p.Pos.X)
			assert.Equal(t, 375.0, p.Pos.Y, "slide must not move vertically")
		})
	}
}

func TestPaddleNeverLeavesField(t *testing.T) {
	p := NewPaddle(320, 380, 100, 10, 12)
	for i := 0; i < 200; i++ {
		dir := Right
		if (i/50)%2 == 1 {
			dir = Left
		}
		p.Slide(dir, 1.3, testField)
		assert.GreaterOrEqual(t, p.Pos.X, 0.0)
		assert.LessOrEqual(t, p.Pos.X, testField.Width-p.Size.X)
	}
}

func TestNewPaddleIsCentered(t *testing.T) {
	p := NewPaddle(320, 380, 100, 10, 12)
	assert.Equal(t, core.V(270, 375), p.Pos)
	assert.Equal(t, 320.0, p.CenterX())
}

func TestBallAdvance(t *testing.T) {
	tests := []struct {
		name        string
		center      core.Vec2
		velocity    core.Vec2
		elapsed     float64
		expectedVel core.Vec2
		expectedPos core.Vec2
	}{
		{
			name:        "top-left corner reflects both axes",
			center:      core.V(5, 5),
			velocity:    core.V(5, 5),
			elapsed:     1,
			expectedVel: core.V(-5, -5),
			expectedPos: core.V(0, 0),
		},
		{
			name:        "open field just integrates",
			center:      core.V(320, 240),
			velocity:    core.V(5, -5),
			elapsed:     2,
			expectedVel: core.V(5, -5),
			expectedPos: core.V(330, 230),
		},
		{
			name:        "right wall",
			center:      core.V(632, 240),
			velocity:    core.V(5, 5),
			elapsed:     1,
			expectedVel: core.V(-5, 5),
			expectedPos: core.V(627, 245),
		},
		{
			name:        "touching left wall counts",
			center:      core.V(10, 240),
			velocity:    core.V(-5, 5),
			elapsed:     1,
			expectedVel: core.V(5, 5),
			expectedPos: core.V(15, 245),
		},
		{
			name:        "top wall",
			center:      core.V(320, 8),
			velocity:    core.V(5, -5),
			elapsed:     1,
			expectedVel: core.V(5, 5),
			expectedPos: core.V(325, 13),
		},
		{
			name:        "bottom is not a wall",
			center:      core.V(320, 475),
			velocity:    core.V(5, 5),
			elapsed:     1,
			expectedVel: core.V(5, 5),
			expectedPos: core.V(325, 480),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Center: tc.center, Radius: 10, Velocity: tc.velocity}
			b.Advance(tc.elapsed, testField)
			assert.Equal(t, tc.expectedVel, b.Velocity)
			assert.Equal(t, tc.expectedPos, b.Center)
		})
	}
}

func TestBallCollides(t *testing.T) {
	b := Ball{Center: core.V(125, 90), Radius: 10}
	assert.True(t, b.Collides(core.V(100, 100), core.V(50, 20)), "ball overlaps top edge")

	b.Center = core.V(125, 79)
	assert.False(t, b.Collides(core.V(100, 100), core.V(50, 20)))
	assert.Equal(t, 89.0, b.Bottom())
}

func TestObstacleDestroyOnce(t *testing.T) {
	o := Obstacle{Pos: core.V(0, 0), Size: core.V(70, 25)}
	assert.True(t, o.Destroy())
	assert.True(t, o.Hit)
	assert.False(t, o.Destroy(), "second destroy is a no-op")
	assert.True(t, o.Hit)
}

// Package config provides YAML-based gameplay configuration loading,
// difficulty presets and validation.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config contains all gameplay tuning for a session. Distances are in field
// units (pixels of the reference 640x480 field); speeds are per tick at
// core.BaseTickRate.
type Config struct {
	Field     Field     `yaml:"field"`
	Paddle    Paddle    `yaml:"paddle"`
	Ball      Ball      `yaml:"ball"`
	Obstacles Obstacles `yaml:"obstacles"`
	Gameplay  Gameplay  `yaml:"gameplay"`
}

// Field defines the playfield dimensions.
type Field struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance from the bottom edge to the paddle's center line
}

// Paddle defines the player's paddle.
type Paddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// Ball defines the ball and its launch velocity.
type Ball struct {
	Radius    float64 `yaml:"radius"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// Obstacles defines the generated brick field.
type Obstacles struct {
	Rows       int     `yaml:"rows"`
	MinWidth   float64 `yaml:"min_width"`
	WidthRange float64 `yaml:"width_range"` // Random extra width in [0, width_range)
	Height     float64 `yaml:"height"`
	RowGap     float64 `yaml:"row_gap"`    // Vertical space between rows
	TopOffset  float64 `yaml:"top_offset"` // Y of the first row
	Gap        float64 `yaml:"gap"`        // Horizontal space between bricks in a row
}

// Bottom returns the y-coordinate just below the last obstacle row.
func (o Obstacles) Bottom() float64 {
	if o.Rows <= 0 {
		return o.TopOffset
	}
	return o.TopOffset + float64(o.Rows-1)*(o.Height+o.RowGap) + o.Height
}

// Gameplay defines scoring and lives.
type Gameplay struct {
	Lives        int `yaml:"lives"`
	PointsPerHit int `yaml:"points_per_hit"`
}

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports the first setting that would make the simulation
// ill-formed. A config that passes can be simulated without further checks.
func (c Config) Validate() error {
	f := c.Field
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return invalid("field size %.0fx%.0f must be positive", f.Width, f.Height)
	case f.GroundOffset <= 0 || f.GroundOffset >= f.Height:
		return invalid("ground_offset %.0f must be within (0, %.0f)", f.GroundOffset, f.Height)
	}

	p := c.Paddle
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return invalid("paddle size %.0fx%.0f must be positive", p.Width, p.Height)
	case p.Width > f.Width:
		return invalid("paddle width %.0f exceeds field width %.0f", p.Width, f.Width)
	case p.Speed < 0:
		return invalid("paddle speed %.2f must not be negative", p.Speed)
	}

	b := c.Ball
	switch {
	case b.Radius <= 0:
		return invalid("ball radius %.2f must be positive", b.Radius)
	case 2*b.Radius >= f.Width:
		return invalid("ball diameter %.0f does not fit field width %.0f", 2*b.Radius, f.Width)
	case b.VelocityY == 0:
		return invalid("ball velocity_y must not be zero")
	}

	o := c.Obstacles
	switch {
	case o.Rows < 1:
		return invalid("obstacle rows %d must be at least 1", o.Rows)
	case o.MinWidth <= 0:
		return invalid("obstacle min_width %.0f must be positive", o.MinWidth)
	case o.MinWidth > f.Width:
		return invalid("obstacle min_width %.0f exceeds field width %.0f", o.MinWidth, f.Width)
	case o.WidthRange < 0:
		return invalid("obstacle width_range %.0f must not be negative", o.WidthRange)
	case o.Height <= 0:
		return invalid("obstacle height %.0f must be positive", o.Height)
	case o.Gap < 0 || o.RowGap < 0 || o.TopOffset < 0:
		return invalid("obstacle gaps and top_offset must not be negative")
	case o.Gap >= o.MinWidth:
		return invalid("obstacle gap %.0f must be smaller than min_width %.0f", o.Gap, o.MinWidth)
	}

	paddleTop := f.Height - f.GroundOffset - p.Height/2
	if o.Bottom()+2*b.Radius >= paddleTop-2*b.Radius {
		return invalid("obstacle field (bottom %.0f) leaves no room above the paddle (top %.0f)", o.Bottom(), paddleTop)
	}

	g := c.Gameplay
	switch {
	case g.Lives < 1:
		return invalid("lives %d must be at least 1", g.Lives)
	case g.PointsPerHit < 0:
		return invalid("points_per_hit %d must not be negative", g.PointsPerHit)
	}

	return nil
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/crabout.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/crabout.yaml and is used when that cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: Field{
			Width:        640,
			Height:       480,
			GroundOffset: 100,
		},
		Paddle: Paddle{
			Width:  100,
			Height: 10,
			Speed:  12,
		},
		Ball: Ball{
			Radius:    10,
			VelocityX: 5,
			VelocityY: 5,
		},
		Obstacles: Obstacles{
			Rows:       5,
			MinWidth:   70,
			WidthRange: 80,
			Height:     25,
			RowGap:     2,
			TopOffset:  50,
			Gap:        2,
		},
		Gameplay: Gameplay{
			Lives:        3,
			PointsPerHit: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}

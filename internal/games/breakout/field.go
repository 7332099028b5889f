// Package breakout implements the Crabout brick breaker simulation: paddle,
// ball and a randomly generated field of obstacles.
package breakout

import (
	"math/rand"

	"github.com/vovakirdan/crabout/internal/config"
	"github.com/vovakirdan/crabout/internal/core"
)

// GenerateObstacles builds cfg.Rows rows of obstacles, each row tiling
// [0, fieldWidth) left to right with cfg.Gap between neighbours.
//
// Widths are drawn from [MinWidth, MinWidth+WidthRange). When the space left
// after a brick could not hold another MinWidth brick, the brick is stretched
// (or shrunk) to end exactly at the field edge instead.
//
// The layout depends only on cfg, fieldWidth and the values drawn from rng.
func GenerateObstacles(cfg config.Obstacles, fieldWidth float64, rng *rand.Rand) []Obstacle {
	perRow := int(fieldWidth/(cfg.MinWidth+cfg.Gap)) + 1
	obstacles := make([]Obstacle, 0, cfg.Rows*perRow)

	for row := range cfg.Rows {
		y := cfg.TopOffset + float64(row)*(cfg.Height+cfg.RowGap)

		for cursor := 0.0; cursor < fieldWidth; {
			width := cfg.MinWidth + rng.Float64()*cfg.WidthRange
			if cursor+width+cfg.MinWidth > fieldWidth {
				width = fieldWidth - cursor
			}

			obstacles = append(obstacles, Obstacle{
				Pos:  core.V(cursor, y),
				Size: core.V(width, cfg.Height),
			})
			cursor += width + cfg.Gap
		}
	}

	return obstacles
}

// countRemaining returns the number of obstacles not yet hit.
func countRemaining(obstacles []Obstacle) int {
	n := 0
	for i := range obstacles {
		if !obstacles[i].Hit {
			n++
		}
	}
	return n
}

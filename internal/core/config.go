package core

import "time"

// BaseTickRate is the frame rate that per-tick speeds in the gameplay config
// are expressed against. A frame that lasts exactly 1/BaseTickRate seconds has
// a scale of 1.
const BaseTickRate = 60

// MaxFrameScale caps the motion scale of a single frame. A long stall (window
// drag, suspended terminal) is treated as a few slow frames instead of one jump.
const MaxFrameScale = 4.0

// FrameScale converts a measured frame duration into the elapsed-ticks factor
// that all motion is multiplied by.
func FrameScale(dt time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	return ClampF(dt.Seconds()*BaseTickRate, 0, MaxFrameScale)
}

// TickAccumulator turns variable frame scales into whole simulation ticks, so
// motion per tick never depends on frame timing.
type TickAccumulator struct {
	pending float64
}

// Add accumulates one frame's scale and returns how many ticks to run now.
// The backlog is capped at MaxFrameScale; the fractional remainder carries
// over to the next frame.
func (a *TickAccumulator) Add(scale float64) int {
	a.pending = ClampF(a.pending+scale, 0, MaxFrameScale)
	n := int(a.pending)
	a.pending -= float64(n)
	return n
}

// RuntimeConfig contains session parameters passed to the game at initialization.
// Gameplay tuning lives in the config package; this is only about the host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal front-ends)
	ScreenH  int   // Screen height in characters (terminal front-ends)
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for the obstacle layout; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: BaseTickRate,
		Seed:     0,
	}
}

// GameState summarizes the session for the platform layer.
type GameState struct {
	Score    int
	Lives    int
	Phase    string
	GameOver bool // Lost all lives
	Won      bool // Cleared every obstacle
	Paused   bool
}

// Finished reports whether the session is in a terminal phase.
func (s GameState) Finished() bool {
	return s.GameOver || s.Won
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventObstacleHit EventType = iota
	EventPaddleHit
	EventLifeLost
	EventPaused
	EventResumed
	EventGameOver
	EventWon
	EventRestarted
)

// String returns the event name used in logs.
func (e EventType) String() string {
	switch e {
	case EventObstacleHit:
		return "obstacle_hit"
	case EventPaddleHit:
		return "paddle_hit"
	case EventLifeLost:
		return "life_lost"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	case EventWon:
		return "won"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a single occurrence during a tick.
type Event struct {
	Type EventType
	Tick uint64
}

// StepResult is returned by Step after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred this tick.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}

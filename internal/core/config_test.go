package core

import (
	"testing"
	"time"
)

func TestFrameScale(t *testing.T) {
	tests := []struct {
		name     string
		dt       time.Duration
		expected float64
	}{
		{"one base frame", time.Second / BaseTickRate, 1},
		{"half frame", time.Second / (2 * BaseTickRate), 0.5},
		{"zero", 0, 0},
		{"negative", -time.Millisecond, 0},
		{"stall is capped", 2 * time.Second, MaxFrameScale},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FrameScale(tc.dt)
			if diff := got - tc.expected; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("FrameScale(%v) = %v, expected %v", tc.dt, got, tc.expected)
			}
		})
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{{Type: EventPaddleHit}, {Type: EventLifeLost}}}
	if !r.Has(EventLifeLost) {
		t.Error("Has(EventLifeLost) should be true")
	}
	if r.Has(EventWon) {
		t.Error("Has(EventWon) should be false")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("Set actions should be reported by Has")
	}
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
}

func TestTickAccumulator(t *testing.T) {
	tests := []struct {
		name     string
		scales   []float64
		expected []int
	}{
		{"steady base rate", []float64{1, 1, 1}, []int{1, 1, 1}},
		{"fast frames carry over", []float64{0.5, 0.5, 0.5, 0.5}, []int{0, 1, 0, 1}},
		{"slow frame runs several ticks", []float64{2.5, 0.5}, []int{2, 1}},
		{"stall is capped", []float64{10, 0}, []int{4, 0}},
		{"zero frames run nothing", []float64{0, 0}, []int{0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var acc TickAccumulator
			for i, scale := range tc.scales {
				if got := acc.Add(scale); got != tc.expected[i] {
					t.Errorf("Add(%v) #%d = %d, expected %d", scale, i, got, tc.expected[i])
				}
			}
		})
	}
}

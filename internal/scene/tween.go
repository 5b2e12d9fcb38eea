package scene

import (
	"math"
	"time"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseOutCubic decelerates toward the end of the transition.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Tween interpolates a single value between From and To over Duration.
type Tween struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Ease     Easing
}

// At returns the value at now and whether the tween has finished.
// A zero or negative Duration finishes immediately.
func (tw Tween) At(now time.Time) (float64, bool) {
	if tw.Duration <= 0 {
		return tw.To, true
	}
	elapsed := now.Sub(tw.Start)
	if elapsed <= 0 {
		return tw.From, false
	}
	if elapsed >= tw.Duration {
		return tw.To, true
	}
	p := float64(elapsed) / float64(tw.Duration)
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	return tw.From + (tw.To-tw.From)*ease(p), false
}

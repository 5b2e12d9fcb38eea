package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTween_At(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tw := Tween{From: 1, To: 0, Start: start, Duration: 200 * time.Millisecond, Ease: Linear}

	v, done := tw.At(start.Add(-time.Second))
	assert.Equal(t, 1.0, v)
	assert.False(t, done)

	v, done = tw.At(start.Add(50 * time.Millisecond))
	assert.InDelta(t, 0.75, v, 1e-9)
	assert.False(t, done)

	v, done = tw.At(start.Add(time.Second))
	assert.Equal(t, 0.0, v)
	assert.True(t, done)
}

func TestTween_ZeroDurationFinishesImmediately(t *testing.T) {
	v, done := Tween{From: 0, To: 1}.At(time.Now())
	assert.Equal(t, 1.0, v)
	assert.True(t, done)
}

func TestEaseOutCubic(t *testing.T) {
	assert.Equal(t, 0.0, EaseOutCubic(0))
	assert.Equal(t, 1.0, EaseOutCubic(1))
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-9)
}

package buildlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisabledContextDiscardsMessages(t *testing.T) {
	c := New(false)
	c.Progressf("loaded %d triangles", 10)
	assert.Empty(t, c.Messages())
}

func TestEnabledContextRecordsMessages(t *testing.T) {
	c := New(true)
	c.Progressf("loaded %d triangles", 10)
	c.Warningf("degenerate triangle at index %d", 3)
	assert.Len(t, c.Messages(), 2)
	assert.Contains(t, c.Messages()[0], "loaded 10 triangles")
	assert.Contains(t, c.Messages()[1], "WARN")
}

func TestTimerAccumulatesAcrossMultipleStartStop(t *testing.T) {
	c := New(true)
	c.StartTimer(TimerBuild)
	time.Sleep(time.Millisecond)
	c.StopTimer(TimerBuild)
	first := c.AccumulatedTime(TimerBuild)

	c.StartTimer(TimerBuild)
	time.Sleep(time.Millisecond)
	c.StopTimer(TimerBuild)
	second := c.AccumulatedTime(TimerBuild)

	assert.Greater(t, second, first)
}

func TestDisabledTimerReportsNegativeOne(t *testing.T) {
	c := New(false)
	c.StartTimer(TimerLoad)
	c.StopTimer(TimerLoad)
	assert.Equal(t, time.Duration(-1), c.AccumulatedTime(TimerLoad))
}

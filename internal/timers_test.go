package internal

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimerSubsystem(t *testing.T) {
	clock := newFakeClock()
	timers := NewTimers(clock)
	timers.Delay = 200
	timers.Sound = 200

	clock.Advance(100 * time.Millisecond)
	timers.Update()

	assert.Equal(t, uint8(194), timers.Delay)
	assert.Equal(t, uint8(194), timers.Sound)
}

func TestTimersCarryFractions(t *testing.T) {
	clock := newFakeClock()
	timers := NewTimers(clock)
	timers.Delay = 10

	// two half periods add up to one tick
	clock.Advance(timerPeriod / 2)
	timers.Update()
	assert.Equal(t, uint8(10), timers.Delay)

	clock.Advance(timerPeriod / 2)
	timers.Update()
	assert.Equal(t, uint8(9), timers.Delay)
}

func TestTimersFloorAtZero(t *testing.T) {
	clock := newFakeClock()
	timers := NewTimers(clock)
	timers.Delay = 3
	timers.Sound = 1
	assert.True(t, timers.Beeping())

	clock.Advance(time.Second)
	timers.Update()

	assert.Equal(t, uint8(0), timers.Delay)
	assert.Equal(t, uint8(0), timers.Sound)
	assert.False(t, timers.Beeping())
}

func TestTimersAreIndependentOfUpdateCount(t *testing.T) {
	clock := newFakeClock()
	timers := NewTimers(clock)
	timers.Delay = 200

	for i := 0; i < 1000; i++ {
		timers.Update()
	}
	assert.Equal(t, uint8(200), timers.Delay)

	for i := 0; i < 100; i++ {
		clock.Advance(10 * time.Millisecond)
		timers.Update()
	}
	assert.True(t, timers.Delay < 200)
	assert.Equal(t, uint8(140), timers.Delay)
}

func TestTimersIgnoreClockGoingBackwards(t *testing.T) {
	clock := newFakeClock()
	timers := NewTimers(clock)
	timers.Delay = 5

	clock.Advance(-time.Second)
	timers.Update()
	assert.Equal(t, uint8(5), timers.Delay)

	clock.Advance(timerPeriod)
	timers.Update()
	assert.Equal(t, uint8(4), timers.Delay)
}

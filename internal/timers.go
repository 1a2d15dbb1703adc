package internal

import "time"

// TimerFrequency is the rate at which the delay and sound timers count down.
const TimerFrequency = 60

const timerPeriod = time.Second / TimerFrequency

// Clock provides the current time to the timers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Timers holds the delay and sound timers. They count down at 60 Hz of
// elapsed clock time, independent of how many instructions run in between.
type Timers struct {
	Delay uint8 // Delay timer
	Sound uint8 // Sound timer

	clock       Clock
	prevTime    time.Time     // time of the previous Update
	accumulator time.Duration // elapsed time not yet converted into ticks
}

// NewTimers returns stopped timers that measure elapsed time with clock.
func NewTimers(clock Clock) *Timers {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timers{
		clock:    clock,
		prevTime: clock.Now(),
	}
}

// Update decrements both timers once for every full 1/60 s elapsed since the
// previous call. Fractions of a period carry over to the next call.
func (t *Timers) Update() {
	now := t.clock.Now()
	if elapsed := now.Sub(t.prevTime); elapsed > 0 {
		t.accumulator += elapsed
	}
	t.prevTime = now

	for t.accumulator >= timerPeriod {
		if t.Delay > 0 {
			t.Delay--
		}
		if t.Sound > 0 {
			t.Sound--
		}
		t.accumulator -= timerPeriod
	}
}

// Beeping returns whether the sound timer is active.
func (t *Timers) Beeping() bool {
	return t.Sound > 0
}

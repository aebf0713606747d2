package core

import "time"

// FrameTimer reports the real time elapsed between successive frames.
type FrameTimer struct {
	now  func() time.Time
	last time.Time
}

// NewFrameTimer constructs a FrameTimer reading the wall clock.
func NewFrameTimer() *FrameTimer {
	return NewFrameTimerWithClock(time.Now)
}

// NewFrameTimerWithClock constructs a FrameTimer using now as its time source.
func NewFrameTimerWithClock(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{now: now}
}

// Elapsed returns the seconds since the previous call. The first call returns 0.
func (f *FrameTimer) Elapsed() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		return 0
	}
	return delta.Seconds()
}

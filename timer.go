package sidescroll

import "time"

// FrameTimer measures elapsed milliseconds for the frame loop. It is the
// only part of the engine that reads a clock; everything else receives dt.
type FrameTimer struct {
	now     func() time.Time
	start   time.Time
	stopped time.Duration
	running bool
}

// NewFrameTimer returns a stopped timer reading the wall clock.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{now: time.Now}
}

// Start starts or resumes the timer.
func (t *FrameTimer) Start() {
	if t.running {
		return
	}
	t.start = t.now().Add(-t.stopped)
	t.stopped = 0
	t.running = true
}

// Stop pauses the timer, keeping the elapsed time.
func (t *FrameTimer) Stop() {
	if !t.running {
		return
	}
	t.stopped = t.now().Sub(t.start)
	t.running = false
}

// Reset zeroes the elapsed time without changing whether the timer runs.
func (t *FrameTimer) Reset() {
	t.stopped = 0
	if t.running {
		t.start = t.now()
	}
}

// Running reports whether the timer is started.
func (t *FrameTimer) Running() bool { return t.running }

// Ticks returns the milliseconds elapsed since Start or the last Reset.
func (t *FrameTimer) Ticks() int {
	if !t.running {
		return int(t.stopped.Milliseconds())
	}
	return int(t.now().Sub(t.start).Milliseconds())
}

// Lap returns Ticks and restarts the count from there, the once-per-frame
// dt. The sub-millisecond remainder carries into the next lap.
func (t *FrameTimer) Lap() int {
	ms := t.Ticks()
	lap := time.Duration(ms) * time.Millisecond
	if t.running {
		t.start = t.start.Add(lap)
	} else {
		t.stopped -= lap
	}
	return ms
}

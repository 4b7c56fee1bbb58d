package render

import "time"

// Session carries the wall-clock state of one playback. The clock starts
// when frame 0 is shown, so restarting a sequence restarts the clock.
type Session struct {
	Start time.Time
	now   func() time.Time
}

// NewSession uses now as its clock; nil means time.Now.
func NewSession(now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{now: now}
}

// Mark records that fr is being shown and returns the wall time elapsed
// since frame 0.
func (s *Session) Mark(fr Frame) time.Duration {
	t := s.now()
	if fr.Index == 0 || s.Start.IsZero() {
		s.Start = t
	}
	return t.Sub(s.Start)
}

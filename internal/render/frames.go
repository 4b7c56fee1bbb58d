package render

import "github.com/san-kum/eulerlab/internal/dynamo"

// Frame is one animation frame: the retained sample at position Index in
// the compressed trace.
type Frame struct {
	Index int
	Time  float64
	Value float64
}

// Frames is a finite, restartable sequence of frames over a compressed
// trace. Frames are produced on demand.
type Frames struct {
	trace dynamo.Trace
	next  int
}

func NewFrames(trace dynamo.Trace) *Frames {
	return &Frames{trace: trace}
}

func (f *Frames) Len() int { return f.trace.Len() }

// Next returns the following frame, or false once the trace is exhausted.
func (f *Frames) Next() (Frame, bool) {
	if f.next >= f.trace.Len() {
		return Frame{}, false
	}
	fr := Frame{
		Index: f.next,
		Time:  f.trace.Times[f.next],
		Value: f.trace.Values[f.next],
	}
	f.next++
	return fr, true
}

// Reset rewinds to the first frame.
func (f *Frames) Reset() { f.next = 0 }

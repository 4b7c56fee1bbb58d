package render

import (
	"testing"
	"time"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

func testTrace() dynamo.Trace {
	return dynamo.Trace{
		Indices: []int{0, 3, 6},
		Times:   []float64{0, 0.3, 0.6},
		Values:  []float64{10, 9.5, 8.2},
	}
}

func TestFramesPull(t *testing.T) {
	f := NewFrames(testTrace())
	if f.Len() != 3 {
		t.Fatalf("Len = %d, want 3", f.Len())
	}

	var got []Frame
	for fr, ok := f.Next(); ok; fr, ok = f.Next() {
		got = append(got, fr)
	}
	if len(got) != 3 {
		t.Fatalf("pulled %d frames, want 3", len(got))
	}
	for i, fr := range got {
		if fr.Index != i {
			t.Errorf("frame %d has index %d", i, fr.Index)
		}
	}
	if got[1].Time != 0.3 || got[1].Value != 9.5 {
		t.Errorf("frame 1 = %+v", got[1])
	}
	if _, ok := f.Next(); ok {
		t.Error("exhausted sequence produced a frame")
	}
}

func TestFramesReset(t *testing.T) {
	f := NewFrames(testTrace())
	f.Next()
	f.Next()
	f.Reset()

	fr, ok := f.Next()
	if !ok || fr.Index != 0 || fr.Value != 10 {
		t.Errorf("after reset got %+v, %v", fr, ok)
	}
}

func TestFramesEmpty(t *testing.T) {
	f := NewFrames(dynamo.Trace{})
	if _, ok := f.Next(); ok {
		t.Error("empty trace produced a frame")
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestSessionStartsAtFrameZero(t *testing.T) {
	clk := &fakeClock{t: time.Unix(100, 0)}
	s := NewSession(clk.now)

	if d := s.Mark(Frame{Index: 0}); d != 0 {
		t.Errorf("frame 0 elapsed = %v, want 0", d)
	}

	clk.t = clk.t.Add(1500 * time.Millisecond)
	if d := s.Mark(Frame{Index: 1}); d != 1500*time.Millisecond {
		t.Errorf("frame 1 elapsed = %v, want 1.5s", d)
	}

	// A restart resets the clock.
	clk.t = clk.t.Add(time.Second)
	if d := s.Mark(Frame{Index: 0}); d != 0 {
		t.Errorf("restart elapsed = %v, want 0", d)
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	a := NewSession(clk.now)
	a.Mark(Frame{Index: 0})

	clk.t = clk.t.Add(3 * time.Second)
	b := NewSession(clk.now)
	b.Mark(Frame{Index: 0})

	clk.t = clk.t.Add(time.Second)
	if d := a.Mark(Frame{Index: 1}); d != 4*time.Second {
		t.Errorf("session a elapsed = %v, want 4s", d)
	}
	if d := b.Mark(Frame{Index: 1}); d != time.Second {
		t.Errorf("session b elapsed = %v, want 1s", d)
	}
}

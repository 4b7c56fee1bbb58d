package metrics

import (
	"math"

	"github.com/san-kum/eulerlab/internal/dynamo"
)

// Peaks records apex heights: the first observed position, then the higher
// of the two samples around every rising-to-falling velocity change.
// Value reports the most recent apex.
type Peaks struct {
	prev    dynamo.Sample
	samples int
	heights []float64
}

func NewPeaks() *Peaks {
	return &Peaks{}
}

func (p *Peaks) Name() string { return "last_peak" }

func (p *Peaks) Observe(s dynamo.Sample, t float64) {
	if p.samples == 0 {
		p.heights = append(p.heights, s.Position)
	} else if p.prev.Velocity > 0 && s.Velocity <= 0 {
		p.heights = append(p.heights, math.Max(p.prev.Position, s.Position))
	}
	p.prev = s
	p.samples++
}

func (p *Peaks) Value() float64 {
	if len(p.heights) == 0 {
		return 0
	}
	return p.heights[len(p.heights)-1]
}

func (p *Peaks) Heights() []float64 {
	out := make([]float64, len(p.heights))
	copy(out, p.heights)
	return out
}

func (p *Peaks) Reset() {
	p.prev = dynamo.Sample{}
	p.samples = 0
	p.heights = p.heights[:0]
}

// Contacts counts constraint activations. It is both an observer, to see
// the contact flag, and a metric, to report the count.
type Contacts struct {
	count int
	first float64
}

func NewContacts() *Contacts {
	return &Contacts{first: math.NaN()}
}

func (c *Contacts) Name() string { return "contacts" }

func (c *Contacts) OnSample(i int, s dynamo.Sample, t float64, contact bool) {
	if !contact {
		return
	}
	if c.count == 0 {
		c.first = t
	}
	c.count++
}

func (c *Contacts) Observe(s dynamo.Sample, t float64) {}

func (c *Contacts) Value() float64 { return float64(c.count) }

// FirstContact is the time of the first contact, or NaN if none happened.
func (c *Contacts) FirstContact() float64 { return c.first }

func (c *Contacts) Reset() {
	c.count = 0
	c.first = math.NaN()
}

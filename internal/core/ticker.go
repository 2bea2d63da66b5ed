package core

import "time"

// Pacer meters generation advances at a target generations-per-second rate,
// independent of how often the caller polls it.
type Pacer struct {
	step time.Duration
	due  time.Duration
	last time.Time
}

// NewPacer constructs a Pacer targeting the given rate. Non-positive rates
// fall back to 10 generations per second.
func NewPacer(perSecond int) *Pacer {
	p := &Pacer{}
	p.SetRate(perSecond)
	p.due = p.step
	return p
}

// SetRate changes the target rate.
func (p *Pacer) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 10
	}
	p.step = time.Second / time.Duration(perSecond)
}

// Due reports how many generations have come due since the previous call,
// capped so a long stall never triggers a catch-up burst.
func (p *Pacer) Due() int {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.due += now.Sub(p.last)
	p.last = now

	n := 0
	for p.due >= p.step && n < 4 {
		p.due -= p.step
		n++
	}
	if n == 4 {
		p.due = 0
	}
	return n
}

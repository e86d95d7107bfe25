package clock

import "time"

// Clock blocks the caller for a requested duration.
type Clock interface {
	Sleep(d time.Duration)
}

type Real struct{}

func (Real) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Fake records requested sleeps without blocking.
type Fake struct {
	Slept []time.Duration
}

func (f *Fake) Sleep(d time.Duration) {
	f.Slept = append(f.Slept, d)
}

func (f *Fake) Total() time.Duration {
	var total time.Duration
	for _, d := range f.Slept {
		total += d
	}
	return total
}

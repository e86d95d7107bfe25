package accel

import (
	log "github.com/sirupsen/logrus"
)

// Simulated replays a fixed list of samples, wrapping around at the end.
type Simulated struct {
	Samples []Sample
	next    int
}

// NewSimulated tilts the board right, left, forward and backward before lying flat.
func NewSimulated() *Simulated {
	return &Simulated{
		Samples: []Sample{
			{X: 6, Y: 1, Z: 7.5},
			{X: -6, Y: 0, Z: 7.5},
			{X: 0, Y: 6, Z: 7.5},
			{X: 0, Y: -6, Z: 7.5},
			{X: 0, Y: 0, Z: StandardGravity},
		},
	}
}

func (s *Simulated) ReadAcceleration() (Sample, error) {
	if len(s.Samples) == 0 {
		return Sample{}, nil
	}
	sample := s.Samples[s.next]
	s.next = (s.next + 1) % len(s.Samples)
	log.Debugf("Simulated acceleration: %v", sample)
	return sample, nil
}

func (s *Simulated) Close() error {
	return nil
}

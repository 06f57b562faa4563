package utils

import "time"

// Stats accumulates population figures and timing over a headless run
type Stats struct {
	Generations       int
	PeakPopulation    int
	AveragePopulation float64 // moving average, newest generation weighted 0.1
	start             time.Time
}

func NewStats(start time.Time) *Stats {
	return &Stats{start: start}
}

// Observe records the population of one generation
func (s *Stats) Observe(generation, population int) {
	s.Generations = generation
	s.PeakPopulation = max(s.PeakPopulation, population)

	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Elapsed returns the run time up to now
func (s *Stats) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.start)
}

// GenerationsPerSecond averages over the whole run up to now
func (s *Stats) GenerationsPerSecond(now time.Time) float64 {
	elapsed := s.Elapsed(now)
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Generations) / elapsed.Seconds()
}

package generator

import (
	"fmt"
	"math/rand"
	"time"
)

// Sampler wraps a seeded random source. Production wires a time-based seed
// through config; tests pass a fixed seed for reproducible runs.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler from a seed
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns one element of items with equal probability
func Pick[T any](s *Sampler, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCatalog
	}
	return items[s.rng.Intn(len(items))], nil
}

// IntBetween returns a uniform integer in [min, max], both inclusive
func (s *Sampler) IntBetween(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	return min + s.rng.Intn(max-min+1), nil
}

// TimeBetween returns a uniform timestamp t with start <= t <= end
func (s *Sampler) TimeBetween(start, end time.Time) (time.Time, error) {
	if start.After(end) {
		return time.Time{}, fmt.Errorf("%w: start %s after end %s",
			ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	span := int64(end.Sub(start))
	return start.Add(time.Duration(s.rng.Int63n(span + 1))), nil
}

// DistinctIndexes returns count distinct indexes in [0, n) by rejection
// sampling. The size guard keeps the retry loop from ever running unbounded.
func (s *Sampler) DistinctIndexes(n, count int) ([]int, error) {
	if count > n {
		return nil, fmt.Errorf("%w: want %d distinct of %d", ErrInsufficientCatalog, count, n)
	}
	picked := make([]int, 0, count)
	seen := make(map[int]bool, count)
	for len(picked) < count {
		i := s.rng.Intn(n)
		if seen[i] {
			continue
		}
		seen[i] = true
		picked = append(picked, i)
	}
	return picked, nil
}

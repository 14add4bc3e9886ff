package light

import (
	"math/rand"
	"time"
)

const (
	MinCycleDuration = 4000 * time.Millisecond
	MaxCycleDuration = 6000 * time.Millisecond
	PollInterval     = 1 * time.Millisecond
)

// DurationSource yields how long each phase is held. It is only called from
// the cycle goroutine.
type DurationSource interface {
	Next() time.Duration
}

// RandomDurations draws millisecond durations uniformly from
// [MinCycleDuration, MaxCycleDuration]. It is not safe for concurrent use.
type RandomDurations struct {
	rng *rand.Rand
}

func NewRandomDurations(seed int64) *RandomDurations {
	return &RandomDurations{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (d *RandomDurations) Next() time.Duration {
	span := (MaxCycleDuration - MinCycleDuration).Milliseconds()
	return MinCycleDuration + time.Duration(d.rng.Int63n(span+1))*time.Millisecond
}

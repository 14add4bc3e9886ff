package light

import (
	"context"
	"time"
)

func (l *TrafficLight) cycleThroughPhases(ctx context.Context, durations DurationSource) {
	cycle := durations.Next()
	lastUpdate := time.Now()

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if time.Since(lastUpdate) < cycle {
			continue
		}

		phase := l.toggle()
		cycle = durations.Next()
		lastUpdate = time.Now()

		l.logger.Info().
			Str("phase", phase.String()).
			Dur("hold", cycle).
			Msg("phase changed")
	}
}

package light

import (
	"context"

	"github.com/tjjh89017/trafficlight-go/internal/entity"
	"github.com/tjjh89017/trafficlight-go/internal/queue"
)

// Subscription receives every transition published after it was created,
// independently of other subscribers and of WaitForGreen callers.
type Subscription struct {
	light *TrafficLight
	queue *queue.Queue[entity.Phase]
}

// Next returns the next published phase. It returns ErrStopped once the
// light stops or the subscription is closed and all pending phases are read,
// and ctx.Err() when ctx is done.
func (s *Subscription) Next(ctx context.Context) (entity.Phase, error) {
	phase, err := s.queue.ReceiveContext(ctx)
	if err != nil {
		return phase, stopCause(ctx, err)
	}

	return phase, nil
}

func (s *Subscription) WaitForGreen(ctx context.Context) error {
	for {
		phase, err := s.Next(ctx)
		if err != nil {
			return err
		}

		if phase.IsGreen() {
			return nil
		}
	}
}

func (s *Subscription) Close() {
	s.light.unsubscribe(s)
	s.queue.Close()
}

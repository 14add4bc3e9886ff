package light

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/anggasct/fluo"
	"github.com/rs/zerolog"
	"github.com/tjjh89017/trafficlight-go/internal/entity"
	"github.com/tjjh89017/trafficlight-go/internal/queue"
)

var (
	ErrAlreadyStarted = errors.New("traffic light already started")
	ErrStopped        = errors.New("traffic light stopped")
)

type Option func(*TrafficLight)

// WithDurationSource replaces the random phase durations, mostly for tests.
func WithDurationSource(source DurationSource) Option {
	return func(l *TrafficLight) {
		l.durations = source
	}
}

// WithSeed fixes the seed of the default duration source. Zero keeps the
// clock based seed.
func WithSeed(seed int64) Option {
	return func(l *TrafficLight) {
		l.seed = seed
	}
}

// TrafficLight alternates between red and green and publishes every change
// to a shared queue and to its subscribers.
type TrafficLight struct {
	mu          sync.RWMutex
	machine     fluo.Machine
	phase       entity.Phase
	queue       *queue.Queue[entity.Phase]
	subscribers map[*Subscription]struct{}

	started bool
	stopped bool
	cancel  context.CancelFunc
	done    chan struct{}

	durations DurationSource
	seed      int64
	logger    zerolog.Logger
}

func New(logger *zerolog.Logger, opts ...Option) *TrafficLight {
	l := &TrafficLight{
		phase:       entity.Red,
		queue:       queue.New[entity.Phase](queue.WithLogger(logger)),
		subscribers: make(map[*Subscription]struct{}),
		done:        make(chan struct{}),
		logger:      logger.With().Str("component", "traffic_light").Logger(),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.machine = newPhaseMachine()
	l.machine.AddObserver(&publisher{light: l})
	if err := l.machine.Start(); err != nil {
		l.logger.Panic().Err(err).Msg("failed to start phase machine")
	}

	return l
}

// Simulate starts the cycle goroutine. It runs until ctx is done or Stop is
// called. Only the first call starts anything.
func (l *TrafficLight) Simulate(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return ErrStopped
	}

	if l.started {
		l.logger.Warn().Msg("simulate called twice, ignoring")
		return ErrAlreadyStarted
	}

	durations := l.durations
	if durations == nil {
		seed := l.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		durations = NewRandomDurations(seed)
	}

	cycleCtx, cancel := context.WithCancel(ctx)
	l.started = true
	l.cancel = cancel

	go func() {
		defer close(l.done)
		defer l.shutdown()

		l.cycleThroughPhases(cycleCtx, durations)
	}()

	l.logger.Info().Str("phase", l.phase.String()).Msg("traffic light started")

	return nil
}

// WaitForGreen blocks until this caller receives a green transition from the
// shared queue. Red transitions received meanwhile are discarded. Waiters
// compete: each published transition reaches only one of them. Calling it
// before Simulate just blocks until the light starts and turns green.
func (l *TrafficLight) WaitForGreen(ctx context.Context) error {
	for {
		phase, err := l.queue.ReceiveContext(ctx)
		if err != nil {
			return stopCause(ctx, err)
		}

		if phase.IsGreen() {
			return nil
		}
	}
}

func (l *TrafficLight) CurrentPhase() entity.Phase {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.phase
}

// Stop cancels the cycle goroutine and waits for it to exit. Waiters first
// drain phases published before the stop, then get ErrStopped. It is safe to
// call more than once.
func (l *TrafficLight) Stop() {
	l.mu.Lock()
	if !l.started {
		alreadyStopped := l.stopped
		l.closeLocked()
		l.mu.Unlock()

		if !alreadyStopped {
			close(l.done)
		}
		return
	}
	cancel := l.cancel
	l.mu.Unlock()

	cancel()
	<-l.done
}

// Done is closed once the light has stopped.
func (l *TrafficLight) Done() <-chan struct{} {
	return l.done
}

func (l *TrafficLight) Subscribe() *Subscription {
	sub := &Subscription{
		light: l,
		queue: queue.New[entity.Phase](),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		sub.queue.Close()
		return sub
	}
	l.subscribers[sub] = struct{}{}

	return sub
}

func (l *TrafficLight) unsubscribe(sub *Subscription) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.subscribers, sub)
}

// toggle fires a cycle expiry on the phase machine. The machine's publisher
// stores and publishes the new phase before HandleEvent returns, so
// CurrentPhase always matches the last published value.
func (l *TrafficLight) toggle() entity.Phase {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res := l.machine.HandleEvent(EventCycleExpired, nil); !res.Success() {
		l.logger.Error().Err(res.Error).Str("reason", res.RejectionReason).Msg("failed to toggle phase")
	}

	return l.phase
}

// publishLocked must be called with mu held.
func (l *TrafficLight) publishLocked(phase entity.Phase) {
	l.phase = phase
	l.queue.Send(phase)
	for sub := range l.subscribers {
		sub.queue.Send(phase)
	}
}

func (l *TrafficLight) shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closeLocked()
	l.logger.Info().Str("phase", l.phase.String()).Msg("traffic light stopped")
}

func (l *TrafficLight) closeLocked() {
	if l.stopped {
		return
	}

	l.stopped = true
	if err := l.machine.Stop(); err != nil {
		l.logger.Warn().Err(err).Msg("failed to stop phase machine")
	}
	l.queue.Close()
	for sub := range l.subscribers {
		sub.queue.Close()
	}
}

// stopCause maps a closed queue to ErrStopped, unless ctx is done too: a
// light simulated with the caller's ctx closes its queues on cancellation.
func stopCause(ctx context.Context, err error) error {
	if !errors.Is(err, queue.ErrClosed) {
		return err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	return ErrStopped
}

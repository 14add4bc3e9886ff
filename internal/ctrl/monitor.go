package ctrl

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/tjjh89017/trafficlight-go/internal/config"
	"github.com/tjjh89017/trafficlight-go/internal/light"
	"golang.org/x/sync/errgroup"
)

// MonitorController logs every phase transition and periodically reports the
// current phase.
type MonitorController struct {
	config      *config.Config
	source      PhaseSource
	transitions atomic.Int64
	logger      zerolog.Logger
}

func NewMonitorController(config *config.Config, source PhaseSource, logger *zerolog.Logger) *MonitorController {
	return &MonitorController{
		config: config,
		source: source,
		logger: logger.With().Str("controller", "monitor").Logger(),
	}
}

// Run blocks until ctx is done or the light stops.
func (c *MonitorController) Run(ctx context.Context) error {
	return c.Watch(ctx, c.Subscribe())
}

// Subscribe registers for transitions without consuming them, so a caller
// can subscribe before the light starts and Watch later.
func (c *MonitorController) Subscribe() PhaseSubscription {
	return c.source.Subscribe()
}

// Watch consumes sub until ctx is done or the light stops, then closes it.
func (c *MonitorController) Watch(ctx context.Context, sub PhaseSubscription) error {
	defer sub.Close()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.observe(gctx, sub)
	})
	g.Go(func() error {
		return c.report(gctx)
	})

	err := g.Wait()
	if err == nil || errors.Is(err, light.ErrStopped) || ctx.Err() != nil {
		return nil
	}

	return err
}

func (c *MonitorController) Transitions() int64 {
	return c.transitions.Load()
}

func (c *MonitorController) observe(ctx context.Context, sub PhaseSubscription) error {
	for {
		phase, err := sub.Next(ctx)
		if err != nil {
			return err
		}

		n := c.transitions.Add(1)
		c.logger.Info().
			Str("phase", phase.String()).
			Int64("transition", n).
			Msg("light changed")
	}
}

func (c *MonitorController) report(ctx context.Context) error {
	ticker := time.NewTicker(c.config.StatusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.logger.Info().
				Str("phase", c.source.CurrentPhase().String()).
				Int64("transitions", c.transitions.Load()).
				Msg("status")
		}
	}
}

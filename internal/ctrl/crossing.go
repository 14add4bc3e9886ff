package ctrl

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/tjjh89017/trafficlight-go/internal/config"
	"github.com/tjjh89017/trafficlight-go/internal/light"
	"golang.org/x/sync/errgroup"
)

// CrossingController runs the configured number of crossings. Each one waits
// for green, crosses, and queues up again. Crossings compete for green
// transitions, so a single green lets exactly one of them through.
type CrossingController struct {
	config  *config.Config
	waiter  GreenWaiter
	crossed atomic.Int64
	logger  zerolog.Logger
}

func NewCrossingController(config *config.Config, waiter GreenWaiter, logger *zerolog.Logger) *CrossingController {
	return &CrossingController{
		config: config,
		waiter: waiter,
		logger: logger.With().Str("controller", "crossing").Logger(),
	}
}

func (c *CrossingController) Run(ctx context.Context) error {
	if c.config.Crossings == 0 {
		c.logger.Info().Msg("no crossings configured")
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for id := 1; id <= c.config.Crossings; id++ {
		g.Go(func() error {
			for {
				if err := c.Execute(gctx, id); err != nil {
					return err
				}
			}
		})
	}

	err := g.Wait()
	if errors.Is(err, light.ErrStopped) || ctx.Err() != nil {
		return nil
	}

	return err
}

// Execute waits for one green on behalf of crossing id.
func (c *CrossingController) Execute(ctx context.Context, id int) error {
	logger := c.logger.With().Int("crossing", id).Logger()

	logger.Debug().Msg("waiting for green")
	if err := c.waiter.WaitForGreen(ctx); err != nil {
		if !errors.Is(err, light.ErrStopped) && ctx.Err() == nil {
			logger.Error().Err(err).Msg("failed to wait for green")
		}
		return err
	}

	total := c.crossed.Add(1)
	logger.Info().Int64("crossed", total).Msg("green, crossing")

	return nil
}

func (c *CrossingController) Crossed() int64 {
	return c.crossed.Load()
}

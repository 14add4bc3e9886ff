package daemon

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/tjjh89017/trafficlight-go/internal/config"
	"github.com/tjjh89017/trafficlight-go/internal/ctrl"
	"github.com/tjjh89017/trafficlight-go/internal/light"
	"golang.org/x/sync/errgroup"
)

type Daemon struct {
	config       *config.Config
	light        *light.TrafficLight
	monitorCtrl  *ctrl.MonitorController
	crossingCtrl *ctrl.CrossingController
	logger       zerolog.Logger
}

func New(
	config *config.Config,
	light *light.TrafficLight,
	monitor *ctrl.MonitorController,
	crossing *ctrl.CrossingController,
	logger *zerolog.Logger) *Daemon {
	return &Daemon{
		config:       config,
		light:        light,
		monitorCtrl:  monitor,
		crossingCtrl: crossing,
		logger:       logger.With().Str("component", "daemon").Logger(),
	}
}

// Execute runs the daemon in the mode selected by the config.
func (d *Daemon) Execute(ctx context.Context) error {
	if d.config.Oneshot {
		return d.RunOneshot(ctx)
	}

	return d.Run(ctx)
}

func (d *Daemon) Run(ctx context.Context) error {
	daemonCtx, cancel := context.WithCancel(ctx)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		d.logger.Info().Msg("shutting down")
		signal.Stop(signalChan)
		close(signalChan)
		cancel()
	}()

	g, gctx := errgroup.WithContext(daemonCtx)

	// The monitor must be subscribed before Simulate to see the first
	// transition. Crossings read the shared queue, which buffers it.
	sub := d.monitorCtrl.Subscribe()
	g.Go(func() error {
		return d.monitorCtrl.Watch(gctx, sub)
	})
	g.Go(func() error {
		return d.crossingCtrl.Run(gctx)
	})

	if err := d.light.Simulate(gctx); err != nil {
		cancel()
		_ = g.Wait()
		return err
	}

	d.logger.Info().Int("crossings", d.config.Crossings).Msgf("daemon started with status interval %s", d.config.StatusInterval)

	select {
	case <-gctx.Done():
	case <-d.light.Done():
	case sig := <-signalChan:
		d.logger.Info().Str("signal", sig.String()).Msg("received signal")
	}

	d.light.Stop()
	return g.Wait()
}

// RunOneshot starts the light, waits for the first green and stops.
func (d *Daemon) RunOneshot(ctx context.Context) error {
	d.logger.Info().Msg("running in oneshot mode")

	sub := d.light.Subscribe()
	defer sub.Close()

	if err := d.light.Simulate(ctx); err != nil {
		return err
	}
	defer d.light.Stop()

	if err := sub.WaitForGreen(ctx); err != nil {
		d.logger.Error().Err(err).Msg("light did not turn green")
		return err
	}

	d.logger.Info().Str("phase", d.light.CurrentPhase().String()).Msg("oneshot mode completed")

	return nil
}

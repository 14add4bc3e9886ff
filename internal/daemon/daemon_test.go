package daemon_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjjh89017/trafficlight-go/internal/config"
	"github.com/tjjh89017/trafficlight-go/internal/ctrl"
	"github.com/tjjh89017/trafficlight-go/internal/daemon"
	"github.com/tjjh89017/trafficlight-go/internal/entity"
	"github.com/tjjh89017/trafficlight-go/internal/light"
)

type holdFor time.Duration

func (h holdFor) Next() time.Duration {
	return time.Duration(h)
}

func newDaemon(t *testing.T, hold time.Duration) (*daemon.Daemon, *light.TrafficLight, *ctrl.MonitorController, *ctrl.CrossingController) {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Log:            config.Log{Level: "info"},
		Crossings:      2,
		StatusInterval: 5 * time.Millisecond,
	}

	l := light.New(&logger, light.WithDurationSource(holdFor(hold)))
	monitor := ctrl.NewMonitorController(cfg, ctrl.NewPhaseSource(l), &logger)
	crossing := ctrl.NewCrossingController(cfg, l, &logger)

	return daemon.New(cfg, l, monitor, crossing, &logger), l, monitor, crossing
}

func TestDaemon_RunUntilCancelled(t *testing.T) {
	d, l, monitor, crossing := newDaemon(t, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, d.Run(ctx))

	select {
	case <-l.Done():
	default:
		t.Fatal("light still running after daemon returned")
	}

	assert.Greater(t, monitor.Transitions(), int64(0))
	assert.Greater(t, crossing.Crossed(), int64(0))
}

func TestDaemon_RunMonitorSeesFirstTransition(t *testing.T) {
	d, l, monitor, _ := newDaemon(t, time.Millisecond)

	sub := l.Subscribe()
	defer sub.Close()

	returned := make(chan error, 1)
	go func() {
		returned <- d.Run(context.Background())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	phase, err := sub.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.Green, phase)

	l.Stop()
	require.NoError(t, <-returned)

	seen := int64(1)
	for {
		if _, err := sub.Next(ctx); err != nil {
			require.ErrorIs(t, err, light.ErrStopped)
			break
		}
		seen++
	}

	assert.Equal(t, seen, monitor.Transitions())
}

func TestDaemon_RunLightAlreadyStarted(t *testing.T) {
	d, l, _, _ := newDaemon(t, time.Hour)
	require.NoError(t, l.Simulate(context.Background()))
	defer l.Stop()

	assert.ErrorIs(t, d.Run(context.Background()), light.ErrAlreadyStarted)
}

func TestDaemon_RunOneshot(t *testing.T) {
	d, l, _, _ := newDaemon(t, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, d.RunOneshot(ctx))

	select {
	case <-l.Done():
	default:
		t.Fatal("light still running after oneshot")
	}
	assert.ErrorIs(t, l.Simulate(ctx), light.ErrStopped)
}

func TestDaemon_RunOneshotTimeout(t *testing.T) {
	d, _, _, _ := newDaemon(t, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, d.RunOneshot(ctx), context.DeadlineExceeded)
}

func TestDaemon_RunOneshotTimeoutRepeated(t *testing.T) {
	for i := 0; i < 100; i++ {
		d, _, _, _ := newDaemon(t, time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Millisecond)
		err := d.RunOneshot(ctx)
		cancel()

		require.ErrorIs(t, err, context.DeadlineExceeded, "run %d", i)
	}
}

func TestDaemon_ExecuteOneshot(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &config.Config{Oneshot: true, StatusInterval: time.Hour}

	l := light.New(&logger, light.WithDurationSource(holdFor(5*time.Millisecond)))
	monitor := ctrl.NewMonitorController(cfg, ctrl.NewPhaseSource(l), &logger)
	crossing := ctrl.NewCrossingController(cfg, l, &logger)
	d := daemon.New(cfg, l, monitor, crossing, &logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, d.Execute(ctx))
	assert.Zero(t, monitor.Transitions())
}

package ctrl

import (
	"github.com/google/wire"
	"github.com/tjjh89017/trafficlight-go/internal/light"
)

var DefaultSet = wire.NewSet(
	NewPhaseSource,
	wire.Bind(new(GreenWaiter), new(*light.TrafficLight)),
	NewMonitorController,
	NewCrossingController,
)

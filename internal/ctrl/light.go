//go:generate mockgen -destination=./mock/mock_light.go -package=mock_ctrl . GreenWaiter,PhaseSource,PhaseSubscription

package ctrl

import (
	"context"

	"github.com/tjjh89017/trafficlight-go/internal/entity"
	"github.com/tjjh89017/trafficlight-go/internal/light"
)

type GreenWaiter interface {
	WaitForGreen(ctx context.Context) error
}

type PhaseSubscription interface {
	Next(ctx context.Context) (entity.Phase, error)
	Close()
}

type PhaseSource interface {
	CurrentPhase() entity.Phase
	Subscribe() PhaseSubscription
}

type lightSource struct {
	*light.TrafficLight
}

func NewPhaseSource(l *light.TrafficLight) PhaseSource {
	return lightSource{TrafficLight: l}
}

func (s lightSource) Subscribe() PhaseSubscription {
	return s.TrafficLight.Subscribe()
}

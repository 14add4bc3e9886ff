package light

import (
	"github.com/anggasct/fluo"
	"github.com/tjjh89017/trafficlight-go/internal/entity"
)

// EventCycleExpired is sent to the phase machine when the current hold time
// has elapsed.
const EventCycleExpired = "cycle_expired"

// newPhaseMachine builds the red/green machine. Both states have exactly one
// transition, so every cycle expiry strictly toggles the phase.
func newPhaseMachine() fluo.Machine {
	return fluo.NewMachine().
		State(entity.Red.String()).Initial().
		To(entity.Green.String()).On(EventCycleExpired).
		State(entity.Green.String()).
		To(entity.Red.String()).On(EventCycleExpired).
		Build().
		CreateInstance()
}

// publisher runs inside HandleEvent, which toggle calls with the light's
// lock held, so the phase is stored and published in one critical section.
type publisher struct {
	fluo.BaseObserver
	light *TrafficLight
}

func (p *publisher) OnTransition(from string, to string, _ fluo.Event, _ fluo.Context) {
	phase, err := entity.ParsePhase(to)
	if err != nil {
		p.light.logger.Error().Err(err).Str("from", from).Str("to", to).Msg("unknown phase state")
		return
	}

	p.light.publishLocked(phase)
}

func (p *publisher) OnEventRejected(event fluo.Event, reason string, _ fluo.Context) {
	p.light.logger.Warn().Str("event", event.GetName()).Str("reason", reason).Msg("phase event rejected")
}

package scenes

import (
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/logger"
	"github.com/automoto/blockfront/systems"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Transition plays the close animation of the current screen, then calls a target init.
// While it runs, the screen's update is replaced so no input is handled.
type Transition struct {
	d      *Dispatcher
	e      *ecs.ECS
	tween  *gween.Tween
	target func()
	log    *zap.Logger
}

func NewTransition(d *Dispatcher, e *ecs.ECS) *Transition {
	return &Transition{d: d, e: e, log: logger.Named("transition")}
}

// Request starts closing the current screen and calls target once it has closed.
// A request made while another is in flight is dropped.
func (t *Transition) Request(target func()) {
	if t.target != nil {
		t.log.Warn("transition already in flight, ignoring request")
		return
	}

	t.target = target
	t.tween = gween.New(1, 0, cfg.Transition.CloseSeconds, ease.InQuad)
	systems.SetTransitionAmount(t.e, 1)
	t.d.setUpdate(t.advance)
	t.log.Debug("transition requested")
}

// InFlight reports whether a close animation is running
func (t *Transition) InFlight() bool {
	return t.target != nil
}

// advance is a no-op once the target has run; targets are expected to activate a screen
func (t *Transition) advance() {
	if t.target == nil {
		return
	}

	amount, done := t.tween.Update(1 / float32(cfg.Transition.TicksPerSecond))
	systems.SetTransitionAmount(t.e, amount)
	if !done {
		return
	}

	target := t.target
	t.target = nil
	t.tween = nil
	target()
}

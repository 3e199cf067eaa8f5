package systems

import (
	"github.com/automoto/blockfront/components"
	"github.com/yohamta/donburi/ecs"
)

// SetTransitionAmount publishes close-animation progress for draw code
func SetTransitionAmount(e *ecs.ECS, amount float32) {
	getOrCreateTransition(e).Amount = amount
}

// TransitionAmount returns 1 for a fully open screen, falling to 0 while closing
func TransitionAmount(e *ecs.ECS) float32 {
	return getOrCreateTransition(e).Amount
}

func getOrCreateTransition(e *ecs.ECS) *components.TransitionData {
	entry, ok := components.Transition.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Transition))
		components.Transition.SetValue(entry, components.TransitionData{Amount: 1})
	}
	return components.Transition.Get(entry)
}

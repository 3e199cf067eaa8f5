package systems

import (
	cfg "github.com/automoto/blockfront/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// frame advances the input buffers one frame with only held actions down
func frame(e *ecs.ECS, held ...cfg.ActionID) {
	in := GetOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Chars = in.Chars[:0]
	for _, a := range held {
		in.Current[a] = true
	}
}

// tap releases everything for a frame, then presses a
func tap(e *ecs.ECS, a cfg.ActionID) {
	frame(e)
	frame(e, a)
}

// typeChars releases everything and delivers s as this frame's typed characters
func typeChars(e *ecs.ECS, s string) {
	frame(e)
	GetOrCreateInput(e).Chars = []rune(s)
}

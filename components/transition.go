package components

import "github.com/yohamta/donburi"

// TransitionData exposes close-animation progress to draw code.
// Amount is 1 when fully open and falls to 0 as the screen closes.
type TransitionData struct {
	Amount float32
}

var Transition = donburi.NewComponentType[TransitionData]()

package components

import "github.com/yohamta/donburi"

// TitleData holds the animated title screen state
type TitleData struct {
	BackgroundAngle float64 // Degrees, kept in [0, 360)
	BlinkCounter    uint
}

var Title = donburi.NewComponentType[TitleData]()

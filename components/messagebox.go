package components

import "github.com/yohamta/donburi"

// MessageBoxData is the modal message overlay. At most one exists.
type MessageBoxData struct {
	Open bool
	Text string
}

var MessageBox = donburi.NewComponentType[MessageBoxData]()

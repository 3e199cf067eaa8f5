package components

import "github.com/yohamta/donburi"

// MenuDescriptor is the static content of a menu: a title and its item labels.
// Descriptors are shared and never mutated by the widget.
type MenuDescriptor struct {
	Title string
	Items []string
}

// Count returns the number of items
func (d *MenuDescriptor) Count() int {
	if d == nil {
		return 0
	}
	return len(d.Items)
}

// MenuData stores the runtime state of the active menu
type MenuData struct {
	Descriptor *MenuDescriptor
	Selected   int
}

var Menu = donburi.NewComponentType[MenuData]()

package components

import (
	cfg "github.com/automoto/blockfront/config"
	"github.com/yohamta/donburi"
)

// SaveSlot is one entry of the file select screen. Name is empty for a free slot.
type SaveSlot struct {
	Name  string
	Label string
}

// Empty reports whether the slot has no save behind it
func (s SaveSlot) Empty() bool {
	return s.Name == ""
}

// SaveSlotsData is the slot table rebuilt each time file select opens
type SaveSlotsData struct {
	Slots  [cfg.MaxSaveFiles]SaveSlot
	Chosen int
}

var SaveSlots = donburi.NewComponentType[SaveSlotsData]()

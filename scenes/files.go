package scenes

import (
	"fmt"

	"github.com/automoto/blockfront/components"
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/savedata"
	"github.com/automoto/blockfront/systems"
	"go.uber.org/zap"
)

const filesBack = cfg.MaxSaveFiles

// initFiles re-reads the saves every time so erased or created worlds show up
func (g *Graph) initFiles() {
	g.refreshSlots()

	slots := g.slots()
	items := make([]string, 0, len(slots.Slots)+1)
	for _, slot := range slots.Slots {
		items = append(items, slot.Label)
	}
	items = append(items, "Back")
	g.filesMenu = components.MenuDescriptor{Title: "Select A File", Items: items}

	systems.InitMenu(g.e, &g.filesMenu)
	g.showStoreError()
	g.d.SetActive(g.updateFiles, g.drawMenuScreen)
}

func (g *Graph) refreshSlots() {
	slots := g.slots()
	slots.Chosen = 0

	n := 0
	_ = g.store.EnumerateSaves(func(name string) bool {
		if n == len(slots.Slots) {
			g.log.Debug("more saves than slots, ignoring the rest", zap.String("first_ignored", name))
			return false
		}
		slots.Slots[n].Name = name
		slots.Slots[n].Label = fmt.Sprintf("%d. %s", n+1, name)
		n++
		return true
	})

	for ; n < len(slots.Slots); n++ {
		slots.Slots[n].Name = ""
		slots.Slots[n].Label = fmt.Sprintf("%d. %s", n+1, locale.Get(cfg.Saves.EmptySlotLabel))
	}
}

func (g *Graph) updateFiles() {
	item := g.menuInput()
	switch {
	case item == systems.MenuNoResult:
		return
	case item == filesBack || item == systems.MenuCancel:
		g.trans.Request(g.initMainMenu)
	default:
		slots := g.slots()
		if slots.Slots[item].Empty() {
			g.pending = savedata.New()
			g.trans.Request(g.initNewGame)
			return
		}
		slots.Chosen = item
		g.trans.Request(g.initStartGame)
	}
}

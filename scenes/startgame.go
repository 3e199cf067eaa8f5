package scenes

import (
	"github.com/automoto/blockfront/systems"
	"go.uber.org/zap"
)

func (g *Graph) initStartGame() {
	systems.InitMenu(g.e, &startGameMenu)
	g.d.SetActive(g.updateStartGame, g.drawMenuScreen)
}

func (g *Graph) updateStartGame() {
	switch g.menuInput() {
	case startGameStart:
		name := g.chosenName()
		save, err := g.store.LoadSave(name)
		if err != nil {
			g.log.Warn("could not load world", zap.String("name", name), zap.Error(err))
			g.trans.Request(g.initFiles)
			return
		}
		g.enterGame(save)
	case startGameErase:
		g.trans.Request(g.initEraseConfirm)
	case startGameBack, systems.MenuCancel:
		g.trans.Request(g.initFiles)
	}
}

func (g *Graph) initEraseConfirm() {
	systems.InitMenu(g.e, &eraseConfirmMenu)
	g.d.SetActive(g.updateEraseConfirm, g.drawMenuScreen)
}

func (g *Graph) updateEraseConfirm() {
	switch g.menuInput() {
	case eraseYes:
		name := g.chosenName()
		if err := g.store.DeleteSave(name); err != nil {
			g.log.Warn("could not erase world", zap.String("name", name), zap.Error(err))
		}
		fallthrough
	case eraseNo, systems.MenuCancel:
		g.trans.Request(g.initFiles)
	}
}

func (g *Graph) chosenName() string {
	slots := g.slots()
	return slots.Slots[slots.Chosen].Name
}

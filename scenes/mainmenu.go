package scenes

import (
	"github.com/automoto/blockfront/systems"
)

func (g *Graph) initMainMenu() {
	systems.InitMenu(g.e, &mainMenu)
	g.d.SetActive(g.updateMainMenu, g.drawMenuScreen)
}

func (g *Graph) updateMainMenu() {
	switch g.menuInput() {
	case systems.MenuCancel:
		g.trans.Request(g.startTitle)
	case mainStartGame:
		g.trans.Request(g.initFiles)
	case mainExit:
		g.log.Info("exit requested")
		g.exit()
	}
}

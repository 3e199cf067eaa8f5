package scenes

import (
	"strings"

	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/render"
	"github.com/automoto/blockfront/savedata"
	"github.com/automoto/blockfront/systems"
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

func (g *Graph) initNewGame() {
	systems.InitMenu(g.e, &newGameMenu)
	g.d.SetActive(g.updateNewGame, g.drawMenuScreen)
}

func (g *Graph) updateNewGame() {
	switch g.menuInput() {
	case newGameEnterName:
		g.trans.Request(g.initNameEntry)
	case newGameEnterSeed:
		g.trans.Request(g.initSeedEntry)
	case newGameStart:
		if g.pending.Name == "" {
			systems.OpenMessageBox(g.e, msgNeedName)
			return
		}
		if g.pending.Seed == "" {
			systems.OpenMessageBox(g.e, msgNeedSeed)
			return
		}
		g.commitPending()
	case newGameBack, systems.MenuCancel:
		g.trans.Request(g.initFiles)
	}
}

// commitPending stores the new world and enters it. On failure the player is
// sent back to file select, which reports the error.
func (g *Graph) commitPending() {
	save := g.pending
	save.ResetProgress(savedata.Vec3{X: cfg.Saves.SpawnX, Y: cfg.Saves.SpawnY, Z: cfg.Saves.SpawnZ})

	if err := g.store.SaveWorld(save); err != nil {
		g.log.Warn("could not create world", zap.String("name", save.Name), zap.Error(err))
		g.trans.Request(g.initFiles)
		return
	}

	g.pending = nil
	g.enterGame(save)
}

func (g *Graph) initNameEntry() {
	systems.InitKeyboard(g.e, "Enter World Name", g.pending.Name, cfg.Saves.NameMaxLength)
	systems.CloseMessageBox(g.e)
	g.d.SetActive(g.updateNameEntry, g.drawNameEntry)
}

func (g *Graph) updateNameEntry() {
	if systems.IsMessageBoxOpen(g.e) {
		systems.ProcessMessageBoxInput(g.e)
		return
	}

	switch systems.ProcessKeyboardInput(g.e) {
	case systems.KeyboardOK:
		name := strings.TrimSpace(systems.KeyboardText(g.e))
		taken, err := g.nameTaken(name)
		if err != nil {
			systems.OpenMessageBox(g.e, err.Error())
			g.store.ClearError()
			return
		}
		if taken {
			systems.OpenMessageBox(g.e, msgNameExists)
			return
		}
		g.pending.Name = name
		g.trans.Request(g.initNewGame)
	case systems.KeyboardCancel:
		g.trans.Request(g.initNewGame)
	}
}

func (g *Graph) drawNameEntry(s render.Surface) {
	g.drawBackground(s)
	systems.DrawKeyboard(g.e, s)
	systems.DrawMessageBox(g.e, s)
}

// nameTaken compares name against every stored world using Unicode case folding
func (g *Graph) nameTaken(name string) (bool, error) {
	if name == "" {
		return false, nil
	}

	fold := cases.Fold()
	existing := mapset.New[string]()
	err := g.store.EnumerateSaves(func(n string) bool {
		existing.Put(fold.String(n))
		return true
	})
	if err != nil {
		return false, err
	}
	return existing.Has(fold.String(name)), nil
}

func (g *Graph) initSeedEntry() {
	systems.InitKeyboard(g.e, "Enter World Seed", g.pending.Seed, cfg.Saves.SeedMaxLength)
	systems.CloseMessageBox(g.e)
	g.d.SetActive(g.updateSeedEntry, g.drawSeedEntry)
}

func (g *Graph) updateSeedEntry() {
	switch systems.ProcessKeyboardInput(g.e) {
	case systems.KeyboardOK:
		g.pending.Seed = strings.TrimSpace(systems.KeyboardText(g.e))
		g.trans.Request(g.initNewGame)
	case systems.KeyboardCancel:
		g.trans.Request(g.initNewGame)
	}
}

func (g *Graph) drawSeedEntry(s render.Surface) {
	g.drawBackground(s)
	systems.DrawKeyboard(g.e, s)
}

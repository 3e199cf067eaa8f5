package scenes

import (
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/render"
	"github.com/automoto/blockfront/systems"
)

// initTitle reseeds the background world and reports any store failure
// before showing the title.
func (g *Graph) initTitle() {
	g.seedBackground()

	systems.CloseMessageBox(g.e)
	g.showStoreError()
	g.startTitle()
}

func (g *Graph) seedBackground() {
	if g.background != nil {
		g.background.SetSeed(cfg.Saves.BackgroundSeed)
	}
}

func (g *Graph) startTitle() {
	g.titleState().BlinkCounter = 0
	systems.SetTransitionAmount(g.e, 1)
	g.d.SetActive(g.updateTitle, g.drawTitle)
}

func (g *Graph) updateTitle() {
	if systems.IsMessageBoxOpen(g.e) {
		systems.ProcessMessageBoxInput(g.e)
		return
	}

	input := systems.GetOrCreateInput(g.e)
	if systems.GetAction(input, cfg.ActionStart).JustPressed ||
		systems.GetAction(input, cfg.ActionMenuSelect).JustPressed {
		g.trans.Request(g.initMainMenu)
	}
}

func (g *Graph) drawTitle(s render.Surface) {
	g.drawBackground(s)

	if systems.IsMessageBoxOpen(g.e) {
		systems.DrawMessageBox(g.e, s)
		return
	}

	title := g.titleState()
	if pressStartVisible(title.BlinkCounter) && systems.TransitionAmount(g.e) >= 1 {
		s.SetFontSize(16, 32)
		s.SetTextColor(cfg.Title.PromptColor)
		s.DrawText(s.Width()/2, cfg.Title.PressStartY, render.AlignCenter, locale.Get(cfg.Title.PressStartText))
	}
	title.BlinkCounter++
}

// pressStartVisible gives the prompt's 64-frame on/off cycle
func pressStartVisible(counter uint) bool {
	return counter&cfg.Title.BlinkMask == 0
}

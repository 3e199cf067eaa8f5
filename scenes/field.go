package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/render"
	"github.com/automoto/blockfront/savedata"
	"github.com/automoto/blockfront/systems"
	"go.uber.org/zap"
)

// fieldScreen stands in for gameplay: it shows the chosen world and saves it
// on the way back to the title.
type fieldScreen struct {
	g     *Graph
	save  *savedata.SaveFile
	angle float64
}

func (f *fieldScreen) Enter(save *savedata.SaveFile) {
	f.save = save
	f.angle = 0
	if f.g.background != nil {
		f.g.background.SetSeed(save.Seed)
	}

	systems.CloseMessageBox(f.g.e)
	systems.SetTransitionAmount(f.g.e, 1)
	f.g.d.SetActive(f.update, f.draw)
}

func (f *fieldScreen) update() {
	input := systems.GetOrCreateInput(f.g.e)
	if !systems.GetAction(input, cfg.ActionStart).JustPressed &&
		!systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		return
	}

	if err := f.g.store.SaveWorld(f.save); err != nil {
		f.g.log.Warn("could not save world on exit", zap.String("name", f.save.Name), zap.Error(err))
	}
	f.g.trans.Request(f.g.initTitle)
}

func (f *fieldScreen) draw(s render.Surface) {
	s.Set3DMode()
	s.RenderWorldBackground(f.angle)
	f.angle += cfg.Title.BackgroundSpeed * 4
	if f.angle >= 360 {
		f.angle -= 360
	}

	s.Set2DMode()
	amount := systems.TransitionAmount(f.g.e)
	if amount < 1 {
		s.FillRect(0, 0, s.Width(), s.Height(), fadeToBlack(1-amount))
	}

	cx := s.Width() / 2
	s.SetTextColor(cfg.White)
	s.SetFontSize(16, 32)
	s.DrawText(cx, 40, render.AlignCenter, f.save.Name)

	s.SetFontSize(8, 16)
	s.DrawText(cx, 84, render.AlignCenter, locale.Get("Seed: %s", f.save.Seed))
	sp := f.save.Spawn
	s.DrawText(cx, 104, render.AlignCenter, fmt.Sprintf("%d, %d, %d", sp.X, sp.Y, sp.Z))
	s.DrawText(cx, s.Height()-40, render.AlignCenter, locale.Get("Press Start to save and return"))
}

func fadeToBlack(a float32) color.RGBA {
	return color.RGBA{A: uint8(255 * a)}
}

package systems

import (
	"github.com/automoto/blockfront/components"
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/render"
	"github.com/yohamta/donburi/ecs"
)

// Results of ProcessMenuInput besides an item index
const (
	MenuCancel   = -1
	MenuNoResult = -2
)

// InitMenu binds desc as the active menu with the first item selected
func InitMenu(e *ecs.ECS, desc *components.MenuDescriptor) {
	menu := GetOrCreateMenu(e)
	menu.Descriptor = desc
	menu.Selected = 0

	CloseMessageBox(e)
	SetTransitionAmount(e, 1)
}

// ProcessMenuInput moves the selection and reports a confirmed item index,
// MenuCancel, or MenuNoResult. It never reports while a message box is open.
func ProcessMenuInput(e *ecs.ECS) int {
	if IsMessageBoxOpen(e) {
		return MenuNoResult
	}

	menu := GetOrCreateMenu(e)
	input := GetOrCreateInput(e)

	n := menu.Descriptor.Count()
	if n > 0 {
		if justPressed(input, cfg.ActionMenuUp) {
			menu.Selected = (menu.Selected - 1 + n) % n
		}
		if justPressed(input, cfg.ActionMenuDown) {
			menu.Selected = (menu.Selected + 1) % n
		}
		if justPressed(input, cfg.ActionMenuSelect) {
			return menu.Selected
		}
	}

	if justPressed(input, cfg.ActionMenuBack) {
		return MenuCancel
	}
	return MenuNoResult
}

// SelectedIndex returns the highlighted item of the active menu
func SelectedIndex(e *ecs.ECS) int {
	return GetOrCreateMenu(e).Selected
}

// DrawMenu renders the active menu panel, shrunk by the transition amount,
// followed by the message box if one is open.
func DrawMenu(e *ecs.ECS, s render.Surface) {
	menu := GetOrCreateMenu(e)
	if menu.Descriptor != nil {
		drawMenuPanel(s, menu, TransitionAmount(e))
	}
	DrawMessageBox(e, s)
}

func drawMenuPanel(s render.Surface, menu *components.MenuData, amount float32) {
	m := cfg.Menu
	desc := menu.Descriptor

	fullH := m.PanelPadding*2 + m.TitleFontH + m.TitleGap + desc.Count()*m.ItemHeight
	h := int(float32(fullH) * amount)
	if h <= 0 {
		return
	}

	cx := s.Width() / 2
	cy := m.CenterY
	x := cx - m.PanelWidth/2
	top := cy - h/2
	bottom := top + h
	s.FillRect(x, top, m.PanelWidth, h, m.PanelColor)

	// Lines keep their full-size positions; the panel closes over them
	fullTop := cy - fullH/2
	visible := func(y, lineH int) bool {
		return y >= top && y+lineH <= bottom
	}

	y := fullTop + m.PanelPadding
	if visible(y, m.TitleFontH) {
		s.SetFontSize(m.TitleFontW, m.TitleFontH)
		s.SetTextColor(m.TitleColor)
		s.DrawText(cx, y, render.AlignCenter, locale.Get(desc.Title))
	}
	y += m.TitleFontH + m.TitleGap

	s.SetFontSize(m.ItemFontW, m.ItemFontH)
	for i, label := range desc.Items {
		itemY := y + i*m.ItemHeight
		if !visible(itemY, m.ItemHeight) {
			continue
		}

		c := m.TextColorNormal
		if i == menu.Selected {
			s.FillRect(x+m.PanelPadding, itemY, m.PanelWidth-m.PanelPadding*2, m.ItemHeight, m.HighlightColor)
			c = m.TextColorSelected
		}
		s.SetTextColor(c)
		s.DrawText(cx, itemY+(m.ItemHeight-m.ItemFontH)/2, render.AlignCenter, locale.Get(label))
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}

package systems

import (
	"github.com/automoto/blockfront/components"
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/render"
	"github.com/yohamta/donburi/ecs"
)

// OpenMessageBox shows text over the current screen. An open box is replaced.
func OpenMessageBox(e *ecs.ECS, text string) {
	box := getOrCreateMessageBox(e)
	box.Open = true
	box.Text = text
}

// CloseMessageBox hides the box without waiting for input
func CloseMessageBox(e *ecs.ECS) {
	box := getOrCreateMessageBox(e)
	box.Open = false
	box.Text = ""
}

func IsMessageBoxOpen(e *ecs.ECS) bool {
	return getOrCreateMessageBox(e).Open
}

// MessageBoxText returns the text of the open box, or "" when closed
func MessageBoxText(e *ecs.ECS) string {
	return getOrCreateMessageBox(e).Text
}

// ProcessMessageBoxInput closes an open box on confirm or cancel.
// It returns true on the frame the box closes.
func ProcessMessageBoxInput(e *ecs.ECS) bool {
	if !IsMessageBoxOpen(e) {
		return false
	}

	input := GetOrCreateInput(e)
	if justPressed(input, cfg.ActionMenuSelect) || justPressed(input, cfg.ActionMenuBack) {
		CloseMessageBox(e)
		return true
	}
	return false
}

func DrawMessageBox(e *ecs.ECS, s render.Surface) {
	box := getOrCreateMessageBox(e)
	if !box.Open {
		return
	}

	m := cfg.MessageBox
	x := (s.Width() - m.Width) / 2
	y := (s.Height() - m.Height) / 2
	s.FillRect(x, y, m.Width, m.Height, m.BoxColor)

	s.SetFontSize(m.FontW, m.FontH)
	s.SetTextColor(m.TextColor)
	s.DrawText(s.Width()/2, y+m.FontH, render.AlignCenter, locale.Get(box.Text))

	s.SetTextColor(m.HintColor)
	hint := dismissHint(GetOrCreateInput(e).LastInputMethod)
	s.DrawText(s.Width()/2, y+m.Height-m.FontH*2, render.AlignCenter, locale.Get(hint))
}

// dismissHint names the confirm button of the device used last
func dismissHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return cfg.MessageBox.DismissHintPlayStation
	case components.InputXbox:
		return cfg.MessageBox.DismissHintXbox
	}
	return cfg.MessageBox.DismissHintKeyboard
}

func getOrCreateMessageBox(e *ecs.ECS) *components.MessageBoxData {
	entry, ok := components.MessageBox.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.MessageBox))
	}
	return components.MessageBox.Get(entry)
}

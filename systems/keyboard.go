package systems

import (
	"image/color"
	"unicode"

	"github.com/automoto/blockfront/components"
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/render"
	"github.com/yohamta/donburi/ecs"
)

// KeyboardResult is returned by ProcessKeyboardInput
type KeyboardResult int

const (
	KeyboardNoResult KeyboardResult = iota
	KeyboardOK
	KeyboardCancel
)

// InitKeyboard starts text entry seeded with at most maxLength runes of initial
func InitKeyboard(e *ecs.ECS, prompt, initial string, maxLength int) {
	kb := GetOrCreateKeyboard(e)
	kb.Prompt = prompt
	kb.MaxLength = maxLength
	kb.Buffer = kb.Buffer[:0]
	for _, r := range initial {
		if len(kb.Buffer) >= maxLength {
			break
		}
		kb.Buffer = append(kb.Buffer, r)
	}
	kb.Layout = BuildKeyboardLayout(cfg.Keyboard.Rows)
	kb.Row, kb.Col = 0, 0

	SetTransitionAmount(e, 1)
}

// BuildKeyboardLayout turns character rows into keys and appends the SPACE/DEL/OK row
func BuildKeyboardLayout(rows []string) [][]components.Key {
	layout := make([][]components.Key, 0, len(rows)+1)
	width := 0
	for _, row := range rows {
		keys := make([]components.Key, 0, len(row))
		for _, r := range row {
			keys = append(keys, components.Key{Label: string(r), Rune: r, Kind: components.KeyChar, Width: 1})
		}
		if len(keys) > width {
			width = len(keys)
		}
		layout = append(layout, keys)
	}

	// Action keys share the grid width: SPACE takes what DEL and OK leave
	side := width / 3
	if side < 1 {
		side = 1
	}
	spaceW := width - 2*side
	if spaceW < 1 {
		spaceW = 1
	}
	layout = append(layout, []components.Key{
		{Label: "SPACE", Rune: ' ', Kind: components.KeySpace, Width: spaceW},
		{Label: "DEL", Kind: components.KeyDelete, Width: side},
		{Label: "OK", Kind: components.KeyOK, Width: side},
	})
	return layout
}

// ProcessKeyboardInput applies this frame's input to the edit buffer
func ProcessKeyboardInput(e *ecs.ECS) KeyboardResult {
	kb := GetOrCreateKeyboard(e)
	input := GetOrCreateInput(e)

	if justPressed(input, cfg.ActionStart) {
		return KeyboardOK
	}
	if justPressed(input, cfg.ActionMenuBack) {
		return KeyboardCancel
	}
	if justPressed(input, cfg.ActionBackspace) {
		deleteRune(kb)
	}
	for _, r := range input.Chars {
		if unicode.IsPrint(r) {
			insertRune(kb, r)
		}
	}

	if len(kb.Layout) > 0 {
		if justPressed(input, cfg.ActionMenuLeft) {
			n := len(kb.Layout[kb.Row])
			kb.Col = (kb.Col - 1 + n) % n
		}
		if justPressed(input, cfg.ActionMenuRight) {
			kb.Col = (kb.Col + 1) % len(kb.Layout[kb.Row])
		}
		if justPressed(input, cfg.ActionMenuUp) {
			moveRow(kb, (kb.Row-1+len(kb.Layout))%len(kb.Layout))
		}
		if justPressed(input, cfg.ActionMenuDown) {
			moveRow(kb, (kb.Row+1)%len(kb.Layout))
		}

		if justPressed(input, cfg.ActionMenuSelect) {
			key := kb.Layout[kb.Row][kb.Col]
			switch key.Kind {
			case components.KeyChar, components.KeySpace:
				insertRune(kb, key.Rune)
			case components.KeyDelete:
				deleteRune(kb)
			case components.KeyOK:
				return KeyboardOK
			}
		}
	}

	return KeyboardNoResult
}

// moveRow keeps the highlight over the same grid column where possible
func moveRow(kb *components.KeyboardData, row int) {
	cell := 0
	for i := 0; i < kb.Col; i++ {
		cell += kb.Layout[kb.Row][i].Width
	}

	keys := kb.Layout[row]
	col := len(keys) - 1
	start := 0
	for i, k := range keys {
		if cell < start+k.Width {
			col = i
			break
		}
		start += k.Width
	}
	kb.Row, kb.Col = row, col
}

func insertRune(kb *components.KeyboardData, r rune) {
	if len(kb.Buffer) >= kb.MaxLength {
		return
	}
	kb.Buffer = append(kb.Buffer, r)
}

func deleteRune(kb *components.KeyboardData) {
	if len(kb.Buffer) > 0 {
		kb.Buffer = kb.Buffer[:len(kb.Buffer)-1]
	}
}

// KeyboardText returns the edit buffer
func KeyboardText(e *ecs.ECS) string {
	return string(GetOrCreateKeyboard(e).Buffer)
}

// DrawKeyboard renders the prompt, buffer with cursor and the key grid,
// faded by the transition amount.
func DrawKeyboard(e *ecs.ECS, s render.Surface) {
	kb := GetOrCreateKeyboard(e)
	amount := TransitionAmount(e)
	if amount <= 0 {
		return
	}
	k := cfg.Keyboard

	cols := 0
	for _, row := range kb.Layout {
		w := 0
		for _, key := range row {
			w += key.Width
		}
		if w > cols {
			cols = w
		}
	}
	pitch := k.KeySize + k.KeyGap
	gridW := cols*pitch - k.KeyGap
	gridH := len(kb.Layout)*pitch - k.KeyGap
	headerH := k.FontH*3 + k.KeyGap*2

	panelW := gridW + k.KeyGap*4
	panelH := headerH + gridH + k.KeyGap*4
	px := (s.Width() - panelW) / 2
	py := k.CenterY - panelH/2
	s.FillRect(px, py, panelW, panelH, fade(k.PanelColor, amount))

	cx := s.Width() / 2
	s.SetFontSize(k.FontW, k.FontH)
	s.SetTextColor(fade(k.PromptColor, amount))
	s.DrawText(cx, py+k.KeyGap*2, render.AlignCenter, locale.Get(kb.Prompt))

	s.SetTextColor(fade(k.BufferColor, amount))
	s.DrawText(cx, py+k.KeyGap*2+k.FontH*3/2, render.AlignCenter, string(kb.Buffer)+k.Cursor)

	gx := px + k.KeyGap*2
	gy := py + k.KeyGap*2 + headerH
	for r, row := range kb.Layout {
		x := gx
		y := gy + r*pitch
		for c, key := range row {
			w := key.Width*pitch - k.KeyGap
			bg, fg := k.KeyBackground, k.KeyColor
			if r == kb.Row && c == kb.Col {
				bg, fg = k.KeyColorFocused, k.PanelColor
			}
			s.FillRect(x, y, w, k.KeySize, fade(bg, amount))
			s.SetTextColor(fade(fg, amount))
			s.DrawText(x+w/2, y+(k.KeySize-k.FontH)/2, render.AlignCenter, locale.Get(key.Label))
			x += key.Width * pitch
		}
	}
}

// fade scales a premultiplied colour by a
func fade(c color.RGBA, a float32) color.RGBA {
	if a >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// GetOrCreateKeyboard returns the singleton Keyboard component, creating if needed
func GetOrCreateKeyboard(e *ecs.ECS) *components.KeyboardData {
	entry, ok := components.Keyboard.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Keyboard))
	}
	return components.Keyboard.Get(entry)
}

package components

import "github.com/yohamta/donburi"

// KeyKind distinguishes character keys from the action keys of the last row
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeySpace
	KeyDelete
	KeyOK
)

// Key is one cell of the on-screen keyboard
type Key struct {
	Label string
	Rune  rune
	Kind  KeyKind
	Width int // In grid cells
}

// KeyboardData stores the text entry state
type KeyboardData struct {
	Prompt    string
	Buffer    []rune
	MaxLength int // Capacity in characters
	Layout    [][]Key
	Row       int
	Col       int
}

var Keyboard = donburi.NewComponentType[KeyboardData]()

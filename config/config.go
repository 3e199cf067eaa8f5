package config

import "image/color"

// Config holds the virtual screen dimensions
type Config struct {
	Width  int
	Height int
}

// MenuConfig contains menu widget layout and colour values
type MenuConfig struct {
	PanelColor        color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	HighlightColor    color.RGBA
	PanelWidth        int
	PanelPadding      int
	CenterY           int // Panel is centred on this line, below the title banner
	TitleFontW        int
	TitleFontH        int
	ItemFontW         int
	ItemFontH         int
	ItemHeight        int // Vertical distance between item baselines
	TitleGap          int // Space between title and first item
}

// MessageBoxConfig contains message box overlay layout values
type MessageBoxConfig struct {
	BoxColor    color.RGBA
	TextColor   color.RGBA
	HintColor   color.RGBA
	Width       int
	Height      int
	FontW       int
	FontH       int

	// Dismiss hints per input device
	DismissHintKeyboard    string
	DismissHintXbox        string
	DismissHintPlayStation string
}

// KeyboardConfig contains on-screen keyboard layout values
type KeyboardConfig struct {
	// Character rows; a final row of SPACE/DEL/OK keys is appended by the widget
	Rows []string

	PanelColor      color.RGBA
	PromptColor     color.RGBA
	BufferColor     color.RGBA
	KeyColor        color.RGBA
	KeyColorFocused color.RGBA
	KeyBackground   color.RGBA
	KeySize         int
	KeyGap          int
	CenterY         int
	FontW           int
	FontH           int
	Cursor          string
}

// TitleConfig contains title screen values
type TitleConfig struct {
	BannerWidth    int
	BannerHeight   int
	BannerY        int
	PressStartY    int
	PressStartText string
	VersionY       int
	CopyrightY     int
	Copyright      string
	BlinkMask      uint // Prompt is hidden while counter&BlinkMask != 0
	PromptColor    color.RGBA
	FooterColor    color.RGBA

	// Background rotation in degrees per drawn frame
	BackgroundSpeed float64
}

// TransitionConfig contains close-animation timing
type TransitionConfig struct {
	CloseSeconds   float32
	TicksPerSecond int
}

// SavesConfig contains save-file limits and new-world defaults
type SavesConfig struct {
	NameMaxLength  int
	SeedMaxLength  int
	SpawnX         int
	SpawnY         int
	SpawnZ         int
	BackgroundSeed string // Seed of the world rendered behind the title menus
	EmptySlotLabel string
}

var C *Config
var Menu MenuConfig
var MessageBox MessageBoxConfig
var Keyboard KeyboardConfig
var Title TitleConfig
var Transition TransitionConfig
var Saves SavesConfig

// Version is overridden at link time
var Version = "0.1.0"

// MaxSaveFiles is the number of slots shown on the file select screen
const MaxSaveFiles = 5

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	PanelBlue    = color.RGBA{R: 15, G: 25, B: 50, A: 220}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Menu = MenuConfig{
		PanelColor:        PanelBlue,
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		HighlightColor:    DarkBlue,
		PanelWidth:        320,
		PanelPadding:      10,
		CenterY:           288,
		TitleFontW:        12,
		TitleFontH:        24,
		ItemFontW:         10,
		ItemFontH:         20,
		ItemHeight:        26,
		TitleGap:          8,
	}

	MessageBox = MessageBoxConfig{
		BoxColor:    BlackOverlay,
		TextColor:   White,
		HintColor:   Grey,
		Width:       400,
		Height:      96,
		FontW:       10,
		FontH:       20,

		DismissHintKeyboard:    "Press Enter to continue",
		DismissHintXbox:        "Press A to continue",
		DismissHintPlayStation: "Press Cross to continue",
	}

	Keyboard = KeyboardConfig{
		Rows: []string{
			"ABCDEFGHIJKLM",
			"NOPQRSTUVWXYZ",
			"abcdefghijklm",
			"nopqrstuvwxyz",
			"0123456789-_.",
		},
		PanelColor:      PanelBlue,
		PromptColor:     Orange,
		BufferColor:     White,
		KeyColor:        White,
		KeyColorFocused: BrightOrange,
		KeyBackground:   DarkBlue,
		KeySize:         24,
		KeyGap:          3,
		CenterY:         286,
		FontW:           8,
		FontH:           16,
		Cursor:          "_",
	}

	Title = TitleConfig{
		BannerWidth:     432,
		BannerHeight:    72,
		BannerY:         100,
		PressStartY:     300,
		PressStartText:  "Press Start",
		VersionY:        400,
		CopyrightY:      416,
		Copyright:       "Copyright (C) 2016 Cameron Hall (camthesaxman)",
		BlinkMask:       0x20,
		PromptColor:     White,
		FooterColor:     Grey,
		BackgroundSpeed: 0.05,
	}

	Transition = TransitionConfig{
		CloseSeconds:   0.2,
		TicksPerSecond: 60,
	}

	Saves = SavesConfig{
		NameMaxLength:  31,
		SeedMaxLength:  31,
		SpawnX:         5,
		SpawnY:         200,
		SpawnZ:         5,
		BackgroundSeed: "12345",
		EmptySlotLabel: "(New Game)",
	}
}

package scenes

import (
	"github.com/automoto/blockfront/components"
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/logger"
	"github.com/automoto/blockfront/render"
	"github.com/automoto/blockfront/savedata"
	"github.com/automoto/blockfront/systems"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Persistence stores worlds. Failures are also kept for LastError until cleared.
type Persistence interface {
	EnumerateSaves(fn func(name string) bool) error
	LoadSave(name string) (*savedata.SaveFile, error)
	SaveWorld(save *savedata.SaveFile) error
	DeleteSave(name string) error
	LastError() error
	ClearError()
}

// Gameplay takes over the dispatcher once a world is chosen. Enter must call
// SetActive; until it does, the previous screen stays drawn with no update.
type Gameplay interface {
	Enter(save *savedata.SaveFile)
}

// BackgroundSeeder picks the world drawn behind the menus
type BackgroundSeeder interface {
	SetSeed(seed string)
}

var (
	mainMenu = components.MenuDescriptor{
		Title: "Main Menu",
		Items: []string{"Start Game", "Exit"},
	}
	newGameMenu = components.MenuDescriptor{
		Title: "New Game",
		Items: []string{"Enter Name", "Enter Seed", "Start!", "Back"},
	}
	startGameMenu = components.MenuDescriptor{
		Title: "Start Game",
		Items: []string{"Start!", "Erase File", "Back"},
	}
	eraseConfirmMenu = components.MenuDescriptor{
		Title: "Erase this file?",
		Items: []string{"Yes", "No"},
	}
)

// Item indices of the fixed menus
const (
	mainStartGame = 0
	mainExit      = 1

	newGameEnterName = 0
	newGameEnterSeed = 1
	newGameStart     = 2
	newGameBack      = 3

	startGameStart = 0
	startGameErase = 1
	startGameBack  = 2

	eraseYes = 0
	eraseNo  = 1
)

// User-facing validation messages
const (
	msgNeedName   = "You must enter a name."
	msgNeedSeed   = "You must enter a seed."
	msgNameExists = "File already exists."
)

// Graph wires every title-side screen together. Each screen is an init method
// that activates an update/draw pair; all switches go through the transition.
type Graph struct {
	d          *Dispatcher
	e          *ecs.ECS
	trans      *Transition
	store      Persistence
	game       Gameplay
	background BackgroundSeeder
	exit       func()
	log        *zap.Logger

	pending   *savedata.SaveFile
	filesMenu components.MenuDescriptor
}

// NewGraph builds the screen graph. A nil game uses the built-in field screen.
// exit is called when the player picks Exit.
func NewGraph(d *Dispatcher, e *ecs.ECS, store Persistence, game Gameplay, exit func()) *Graph {
	g := &Graph{
		d:     d,
		e:     e,
		trans: NewTransition(d, e),
		store: store,
		game:  game,
		exit:  exit,
		log:   logger.Named("scenes"),
	}
	if g.game == nil {
		g.game = &fieldScreen{g: g}
	}
	return g
}

// SetBackground sets the world renderer reseeded by the title screen
func (g *Graph) SetBackground(b BackgroundSeeder) {
	g.background = b
}

// Start shows the title screen
func (g *Graph) Start() {
	g.initTitle()
}

// StartAtMainMenu skips the title screen. A pending store error is left for file select.
func (g *Graph) StartAtMainMenu() {
	g.seedBackground()
	g.initMainMenu()
}

// menuInput routes input to an open message box, otherwise to the menu
func (g *Graph) menuInput() int {
	if systems.IsMessageBoxOpen(g.e) {
		systems.ProcessMessageBoxInput(g.e)
		return systems.MenuNoResult
	}
	return systems.ProcessMenuInput(g.e)
}

// showStoreError surfaces a pending persistence failure once
func (g *Graph) showStoreError() {
	if err := g.store.LastError(); err != nil {
		systems.OpenMessageBox(g.e, err.Error())
		g.store.ClearError()
	}
}

func (g *Graph) enterGame(save *savedata.SaveFile) {
	g.log.Info("entering world", zap.String("name", save.Name))
	g.trans.Request(func() {
		g.game.Enter(save)
	})
}

func (g *Graph) drawMenuScreen(s render.Surface) {
	g.drawBackground(s)
	systems.DrawMenu(g.e, s)
}

// drawBackground draws the turning world, the banner and the version lines
func (g *Graph) drawBackground(s render.Surface) {
	title := g.titleState()

	s.Set3DMode()
	s.RenderWorldBackground(title.BackgroundAngle)
	title.BackgroundAngle += cfg.Title.BackgroundSpeed
	if title.BackgroundAngle >= 360 {
		title.BackgroundAngle = 0
	}

	s.Set2DMode()
	t := cfg.Title
	s.DrawTexturedRect((s.Width()-t.BannerWidth)/2, t.BannerY, t.BannerWidth, t.BannerHeight, render.TextureTitleBanner)

	s.SetFontSize(8, 16)
	s.SetTextColor(t.FooterColor)
	s.DrawText(s.Width()/2, t.VersionY, render.AlignCenter, locale.Get("Version %s", cfg.Version))
	s.DrawText(s.Width()/2, t.CopyrightY, render.AlignCenter, t.Copyright)
}

func (g *Graph) titleState() *components.TitleData {
	entry, ok := components.Title.First(g.e.World)
	if !ok {
		entry = g.e.World.Entry(g.e.World.Create(components.Title))
	}
	return components.Title.Get(entry)
}

func (g *Graph) slots() *components.SaveSlotsData {
	entry, ok := components.SaveSlots.First(g.e.World)
	if !ok {
		entry = g.e.World.Entry(g.e.World.Create(components.SaveSlots))
	}
	return components.SaveSlots.Get(entry)
}

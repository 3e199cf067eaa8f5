package main

import (
	"fmt"

	"github.com/automoto/blockfront/assets"
	"github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/fonts"
	"github.com/automoto/blockfront/locale"
	"github.com/automoto/blockfront/logger"
	"github.com/automoto/blockfront/render"
	"github.com/automoto/blockfront/savedata"
	"github.com/automoto/blockfront/scenes"
	"github.com/automoto/blockfront/systems"
	"github.com/automoto/blockfront/world"
	"github.com/hajimehoshi/ebiten/v2"
	urfavecli "github.com/urfave/cli/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Game runs input polling and the active screen once per tick
type Game struct {
	ecs        *ecs.ECS
	dispatcher *scenes.Dispatcher
	surface    *render.EbitenSurface
	quit       bool
}

func NewGame(store *savedata.Store, bg *world.Background, skipTitle bool) *Game {
	g := &Game{
		ecs:        ecs.NewECS(donburi.NewWorld()),
		dispatcher: scenes.NewDispatcher(),
		surface:    render.NewEbitenSurface(bg),
	}
	g.surface.LoadTextures(config.Title.BannerWidth, config.Title.BannerHeight, "BLOCKFRONT")

	g.ecs.AddSystem(systems.UpdateInput)
	g.ecs.AddSystem(func(*ecs.ECS) { g.dispatcher.Update() })
	g.ecs.AddRenderer(config.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		g.surface.Begin(screen)
		g.dispatcher.Draw(g.surface)
	})

	graph := scenes.NewGraph(g.dispatcher, g.ecs, store, nil, func() { g.quit = true })
	graph.SetBackground(bg)
	if skipTitle {
		graph.StartAtMainMenu()
	} else {
		graph.Start()
	}
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.ecs.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ecs.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func run(c *urfavecli.Context) error {
	settings, err := config.LoadSettings(c.String("config"))
	if err != nil {
		return err
	}

	level := settings.Logging.Level
	if c.Bool("debug") {
		level = "debug"
	}
	logFile := settings.Logging.LogFile
	if f := c.String("log-file"); f != "" {
		logFile = f
	}
	if err := logger.Init(level, logFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	lang := settings.Language
	if l := c.String("lang"); l != "" {
		lang = l
	}
	if err := locale.Load(assets.Locales(), lang); err != nil {
		logger.Warn("could not load translations", zap.String("lang", lang), zap.Error(err))
	}

	if err := fonts.LoadDefaults(); err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	var store *savedata.Store
	if c.Bool("ephemeral") {
		store = savedata.NewStore(savedata.NewMemoryBackend())
	} else if store, err = savedata.Open(settings.SaveData.AppName); err != nil {
		logger.Warn("save data unavailable, worlds will not persist", zap.Error(err))
		store = savedata.NewStore(savedata.NewMemoryBackend())
	}

	m, err := assets.LoadWorldMap(assets.TitleMap)
	if err != nil {
		return fmt.Errorf("load title world: %w", err)
	}
	bg, err := world.FromMap(m)
	if err != nil {
		return fmt.Errorf("build title world: %w", err)
	}

	w, h := settings.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Blockfront")
	ebiten.SetFullscreen(settings.Window.Fullscreen)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	logger.Info("starting", zap.String("version", config.Version), zap.String("lang", locale.Language()))

	game := NewGame(store, bg, settings.SkipTitle || c.Bool("skip-title"))
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

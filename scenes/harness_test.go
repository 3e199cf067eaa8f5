package scenes

import (
	"testing"

	"github.com/automoto/blockfront/components"
	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/logger"
	"github.com/automoto/blockfront/render"
	"github.com/automoto/blockfront/render/rendertest"
	"github.com/automoto/blockfront/savedata"
	"github.com/automoto/blockfront/systems"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeGameplay records entered worlds and parks the dispatcher on an idle screen
type fakeGameplay struct {
	d       *Dispatcher
	entered []*savedata.SaveFile
}

func (f *fakeGameplay) Enter(save *savedata.SaveFile) {
	f.entered = append(f.entered, save)
	f.d.SetActive(func() {}, func(render.Surface) {})
}

type fakeSeeder struct {
	seeds []string
}

func (f *fakeSeeder) SetSeed(seed string) {
	f.seeds = append(f.seeds, seed)
}

type harness struct {
	t       *testing.T
	e       *ecs.ECS
	d       *Dispatcher
	g       *Graph
	backend *savedata.MemoryBackend
	store   *savedata.Store
	game    *fakeGameplay
	seeder  *fakeSeeder
	surface *rendertest.Recorder
	exits   int
}

// newHarness starts at the title screen with the given worlds already saved
func newHarness(t *testing.T, saves ...string) *harness {
	t.Helper()
	h := &harness{
		t:       t,
		e:       ecs.NewECS(donburi.NewWorld()),
		d:       NewDispatcher(),
		backend: savedata.NewMemoryBackend(),
		game:    &fakeGameplay{},
		seeder:  &fakeSeeder{},
		surface: rendertest.NewRecorder(cfg.C.Width, cfg.C.Height),
	}
	h.game.d = h.d
	h.store = savedata.NewStore(h.backend)
	for _, name := range saves {
		s := savedata.New()
		s.Name = name
		s.Seed = "seed-" + name
		require.NoError(t, h.store.SaveWorld(s))
	}

	h.g = NewGraph(h.d, h.e, h.store, h.game, func() { h.exits++ })
	h.g.SetBackground(h.seeder)
	h.g.Start()
	return h
}

// frame runs one update and draw with only held actions down
func (h *harness) frame(held ...cfg.ActionID) {
	in := systems.GetOrCreateInput(h.e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Chars = in.Chars[:0]
	for _, a := range held {
		in.Current[a] = true
	}
	h.surface.Reset()
	h.d.RunFrame(h.surface)
}

func (h *harness) tap(a cfg.ActionID) {
	h.frame()
	h.frame(a)
}

func (h *harness) typeText(s string) {
	h.frame()
	in := systems.GetOrCreateInput(h.e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Chars = []rune(s)
	h.surface.Reset()
	h.d.RunFrame(h.surface)
}

// settle runs idle frames until a pending transition has completed
func (h *harness) settle() {
	h.t.Helper()
	for i := 0; i < 120 && h.g.trans.InFlight(); i++ {
		h.frame()
	}
	require.False(h.t, h.g.trans.InFlight(), "transition did not finish")
	h.frame()
}

// choose moves the highlight from the top to item i, confirms, and settles
func (h *harness) choose(i int) {
	h.t.Helper()
	require.Equal(h.t, 0, systems.SelectedIndex(h.e))
	for n := 0; n < i; n++ {
		h.tap(cfg.ActionMenuDown)
	}
	h.tap(cfg.ActionMenuSelect)
	h.settle()
}

func (h *harness) menu() *components.MenuDescriptor {
	return systems.GetOrCreateMenu(h.e).Descriptor
}

func (h *harness) savedNames() []string {
	var names []string
	require.NoError(h.t, h.store.EnumerateSaves(func(n string) bool {
		names = append(names, n)
		return true
	}))
	return names
}

// toFiles walks from the title to file select
func (h *harness) toFiles() {
	h.t.Helper()
	h.tap(cfg.ActionStart)
	h.settle()
	require.Same(h.t, &mainMenu, h.menu())
	h.choose(mainStartGame)
	require.Same(h.t, &h.g.filesMenu, h.menu())
}

// observeLogs captures everything logged through the logger package until the test ends.
// Call it before newHarness so screen loggers pick it up.
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

// nameWorld fills in name and seed from the New Game menu
func (h *harness) nameWorld(name, seed string) {
	h.t.Helper()
	h.choose(newGameEnterName)
	h.typeText(name)
	h.tap(cfg.ActionStart)
	h.settle()
	h.choose(newGameEnterSeed)
	h.typeText(seed)
	h.tap(cfg.ActionStart)
	h.settle()
	require.Same(h.t, &newGameMenu, h.menu())
}

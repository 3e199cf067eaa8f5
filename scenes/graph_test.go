package scenes

import (
	"errors"
	"testing"

	cfg "github.com/automoto/blockfront/config"
	"github.com/automoto/blockfront/savedata"
	"github.com/automoto/blockfront/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleSeedsBackgroundAndWaitsForStart(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, []string{cfg.Saves.BackgroundSeed}, h.seeder.seeds)

	h.frame()
	assert.True(t, h.surface.HasText(cfg.Title.PressStartText))
	assert.False(t, h.g.trans.InFlight())

	h.tap(cfg.ActionMenuDown)
	assert.False(t, h.g.trans.InFlight())

	h.tap(cfg.ActionStart)
	assert.True(t, h.g.trans.InFlight())
	h.settle()
	assert.Same(t, &mainMenu, h.menu())
}

func TestMainMenuEdges(t *testing.T) {
	h := newHarness(t)
	h.tap(cfg.ActionStart)
	h.settle()

	// Cancel goes back to the title
	h.tap(cfg.ActionMenuBack)
	h.settle()
	assert.True(t, h.surface.HasText(cfg.Title.PressStartText))

	h.tap(cfg.ActionStart)
	h.settle()
	h.choose(mainExit)
	assert.Equal(t, 1, h.exits)
}

func TestFileSelectLabels(t *testing.T) {
	h := newHarness(t, "alpha", "beta", "gamma")
	h.toFiles()

	assert.Equal(t, "Select A File", h.menu().Title)
	assert.Equal(t, []string{
		"1. alpha",
		"2. beta",
		"3. gamma",
		"4. (New Game)",
		"5. (New Game)",
		"Back",
	}, h.menu().Items)
}

func TestFileSelectIgnoresSavesBeyondSlots(t *testing.T) {
	h := newHarness(t, "a", "b", "c", "d", "e", "f", "g")
	h.toFiles()

	items := h.menu().Items
	require.Len(t, items, cfg.MaxSaveFiles+1)
	assert.Equal(t, "5. e", items[4])
	assert.Equal(t, "Back", items[5])
}

func TestFileSelectBackReturnsToMainMenu(t *testing.T) {
	h := newHarness(t)
	h.toFiles()

	h.choose(filesBack)
	assert.Same(t, &mainMenu, h.menu())

	h.choose(mainStartGame)
	h.tap(cfg.ActionMenuBack)
	h.settle()
	assert.Same(t, &mainMenu, h.menu())
}

func TestNewGameValidationNeverEntersGameplay(t *testing.T) {
	h := newHarness(t)
	h.toFiles()
	h.choose(0)
	require.Same(t, &newGameMenu, h.menu())
	require.NotNil(t, h.g.pending)

	// No name
	h.tap(cfg.ActionMenuDown)
	h.tap(cfg.ActionMenuDown)
	h.tap(cfg.ActionMenuSelect)
	assert.True(t, systems.IsMessageBoxOpen(h.e))
	assert.Equal(t, msgNeedName, systems.MessageBoxText(h.e))
	assert.False(t, h.g.trans.InFlight())

	// The box eats the confirm that closes it
	h.tap(cfg.ActionMenuSelect)
	assert.False(t, systems.IsMessageBoxOpen(h.e))
	assert.False(t, h.g.trans.InFlight())

	// Name but no seed
	h.g.pending.Name = "World"
	h.tap(cfg.ActionMenuSelect)
	assert.Equal(t, msgNeedSeed, systems.MessageBoxText(h.e))

	for i := 0; i < 30; i++ {
		h.frame()
	}
	assert.Empty(t, h.game.entered)
	assert.Empty(t, h.savedNames())
	assert.Same(t, &newGameMenu, h.menu())
}

func TestNewGameWizardCreatesWorld(t *testing.T) {
	h := newHarness(t)
	h.toFiles()
	h.choose(0)

	h.choose(newGameEnterName)
	h.typeText("Home")
	h.tap(cfg.ActionStart)
	h.settle()
	require.Same(t, &newGameMenu, h.menu())
	assert.Equal(t, "Home", h.g.pending.Name)

	h.choose(newGameEnterSeed)
	h.typeText("42")
	h.tap(cfg.ActionStart)
	h.settle()
	assert.Equal(t, "42", h.g.pending.Seed)

	h.choose(newGameStart)

	require.Len(t, h.game.entered, 1)
	got := h.game.entered[0]
	assert.Equal(t, "Home", got.Name)
	assert.Equal(t, "42", got.Seed)
	assert.Equal(t, savedata.Vec3{X: 5, Y: 200, Z: 5}, got.Spawn)
	assert.Empty(t, got.Inventory)
	assert.Empty(t, got.ModifiedChunks)
	assert.Equal(t, []string{"Home"}, h.savedNames())
	assert.Nil(t, h.g.pending)
}

func TestNameEntryCancelKeepsPreviousName(t *testing.T) {
	h := newHarness(t)
	h.toFiles()
	h.choose(0)
	h.g.pending.Name = "Old"

	h.choose(newGameEnterName)
	assert.Equal(t, "Old", systems.KeyboardText(h.e))
	h.typeText("er")
	h.tap(cfg.ActionMenuBack)
	h.settle()

	assert.Same(t, &newGameMenu, h.menu())
	assert.Equal(t, "Old", h.g.pending.Name)
}

func TestDuplicateNameIsRejectedCaseInsensitively(t *testing.T) {
	h := newHarness(t, "Straße")
	h.toFiles()
	h.choose(1)
	require.Same(t, &newGameMenu, h.menu())

	h.choose(newGameEnterName)
	h.typeText("STRASSE")
	h.tap(cfg.ActionStart)

	assert.True(t, systems.IsMessageBoxOpen(h.e))
	assert.Equal(t, msgNameExists, systems.MessageBoxText(h.e))
	assert.False(t, h.g.trans.InFlight())
	assert.Equal(t, "", h.g.pending.Name)

	// Still on the keyboard after the box is dismissed
	h.tap(cfg.ActionMenuSelect)
	assert.False(t, systems.IsMessageBoxOpen(h.e))
	h.tap(cfg.ActionStart)
	assert.True(t, systems.IsMessageBoxOpen(h.e), "same name is still rejected")
	h.tap(cfg.ActionMenuBack)

	for range "STRASSE" {
		h.tap(cfg.ActionBackspace)
	}
	h.typeText("Elsewhere")
	h.tap(cfg.ActionStart)
	assert.False(t, systems.IsMessageBoxOpen(h.e))
	h.settle()
	assert.Equal(t, "Elsewhere", h.g.pending.Name)
}

func TestStartExistingWorld(t *testing.T) {
	h := newHarness(t, "one", "two")
	h.toFiles()

	h.choose(1)
	require.Same(t, &startGameMenu, h.menu())
	assert.Equal(t, 1, h.g.slots().Chosen)

	h.choose(startGameStart)
	require.Len(t, h.game.entered, 1)
	assert.Equal(t, "two", h.game.entered[0].Name)
	assert.Equal(t, "seed-two", h.game.entered[0].Seed)
}

func TestStartGameBack(t *testing.T) {
	h := newHarness(t, "one")
	h.toFiles()
	h.choose(0)

	h.choose(startGameBack)
	assert.Same(t, &h.g.filesMenu, h.menu())
}

func TestEraseRemovesExactlyChosenSave(t *testing.T) {
	h := newHarness(t, "a", "b", "c")
	h.toFiles()

	h.choose(1)
	h.choose(startGameErase)
	require.Same(t, &eraseConfirmMenu, h.menu())

	h.tap(cfg.ActionMenuSelect)
	require.True(t, h.g.trans.InFlight())
	h.settle()

	assert.Same(t, &h.g.filesMenu, h.menu())
	assert.Equal(t, []string{"a", "c"}, h.savedNames())
	assert.Equal(t, []string{"1. a", "2. c", "3. (New Game)", "4. (New Game)", "5. (New Game)", "Back"}, h.menu().Items)
	assert.False(t, systems.IsMessageBoxOpen(h.e))
}

func TestEraseNoAndCancelKeepSave(t *testing.T) {
	for _, answer := range []cfg.ActionID{cfg.ActionMenuDown, cfg.ActionMenuBack} {
		h := newHarness(t, "a")
		h.toFiles()
		h.choose(0)
		h.choose(startGameErase)

		if answer == cfg.ActionMenuDown {
			h.choose(eraseNo)
		} else {
			h.tap(cfg.ActionMenuBack)
			h.settle()
		}

		assert.Same(t, &h.g.filesMenu, h.menu())
		assert.Equal(t, []string{"a"}, h.savedNames())
	}
}

func TestLoadFailureIsReportedOnFileSelect(t *testing.T) {
	h := newHarness(t, "broken")
	h.toFiles()
	h.choose(0)

	// Item vanishes while still listed in the index
	for k := range h.backend.Items {
		if k != "worlds" {
			delete(h.backend.Items, k)
		}
	}

	h.choose(startGameStart)
	assert.Empty(t, h.game.entered)
	assert.Same(t, &h.g.filesMenu, h.menu())
	require.True(t, systems.IsMessageBoxOpen(h.e))
	assert.Contains(t, systems.MessageBoxText(h.e), "broken")
	assert.NoError(t, h.store.LastError())

	// Menu input is blocked until the box is dismissed
	h.tap(cfg.ActionMenuDown)
	assert.Equal(t, 0, systems.SelectedIndex(h.e))
	h.tap(cfg.ActionMenuSelect)
	assert.False(t, systems.IsMessageBoxOpen(h.e))
	assert.False(t, h.g.trans.InFlight())
}

func TestCreateFailureIsReportedOnFileSelect(t *testing.T) {
	h := newHarness(t)
	h.toFiles()
	h.choose(0)
	h.nameWorld("Home", "42")

	h.tap(cfg.ActionMenuDown)
	h.tap(cfg.ActionMenuDown)
	h.backend.Fail = errors.New("disk full")
	h.tap(cfg.ActionMenuSelect)
	require.True(t, h.g.trans.InFlight())
	h.backend.Fail = nil
	h.settle()

	assert.Empty(t, h.game.entered)
	assert.Same(t, &h.g.filesMenu, h.menu())
	require.True(t, systems.IsMessageBoxOpen(h.e))
	assert.Equal(t, "save Home: disk full", systems.MessageBoxText(h.e))
	assert.NoError(t, h.store.LastError())
	assert.Empty(t, h.savedNames())
}

func TestEraseFailureIsReportedWithOneTransition(t *testing.T) {
	logs := observeLogs(t)
	h := newHarness(t, "a")
	h.toFiles()
	h.choose(0)
	h.choose(startGameErase)
	require.Same(t, &eraseConfirmMenu, h.menu())

	requested := logs.FilterMessage("transition requested").Len()
	h.backend.Fail = errors.New("disk full")
	h.tap(cfg.ActionMenuSelect)
	require.True(t, h.g.trans.InFlight())
	h.backend.Fail = nil
	h.settle()

	assert.Equal(t, requested+1, logs.FilterMessage("transition requested").Len())
	assert.Zero(t, logs.FilterMessage("transition already in flight, ignoring request").Len())

	assert.Empty(t, h.game.entered)
	assert.Same(t, &h.g.filesMenu, h.menu())
	require.True(t, systems.IsMessageBoxOpen(h.e))
	assert.Equal(t, "delete a: disk full", systems.MessageBoxText(h.e))
	assert.Equal(t, []string{"a"}, h.savedNames())
}

func TestNameCheckFailureIsReported(t *testing.T) {
	h := newHarness(t, "a")
	h.toFiles()
	h.choose(1)
	h.choose(newGameEnterName)
	h.typeText("b")

	h.backend.Fail = errors.New("disk full")
	h.tap(cfg.ActionStart)

	require.True(t, systems.IsMessageBoxOpen(h.e))
	assert.Equal(t, "enumerate saves: disk full", systems.MessageBoxText(h.e))
	assert.False(t, h.g.trans.InFlight())
	assert.Equal(t, "", h.g.pending.Name)
	assert.NoError(t, h.store.LastError())

	h.backend.Fail = nil
	h.tap(cfg.ActionMenuSelect)
	require.False(t, systems.IsMessageBoxOpen(h.e))
	h.tap(cfg.ActionStart)
	h.settle()
	assert.Equal(t, "b", h.g.pending.Name)
}

func TestTitleShowsPendingStoreError(t *testing.T) {
	h := newHarness(t)
	_ = h.store.DeleteSave("missing")
	require.Error(t, h.store.LastError())

	h.g.Start()
	h.frame()

	assert.True(t, systems.IsMessageBoxOpen(h.e))
	assert.False(t, h.surface.HasText(cfg.Title.PressStartText))
	assert.NoError(t, h.store.LastError())

	// Start only dismisses the box
	h.tap(cfg.ActionMenuSelect)
	assert.False(t, systems.IsMessageBoxOpen(h.e))
	assert.False(t, h.g.trans.InFlight())
}

func TestStartAtMainMenu(t *testing.T) {
	h := newHarness(t)
	h.g.StartAtMainMenu()
	h.frame()

	assert.Same(t, &mainMenu, h.menu())
}

func TestBuiltInFieldScreenSavesAndReturns(t *testing.T) {
	h := newHarness(t, "home")
	h.g.game = &fieldScreen{g: h.g}
	h.toFiles()
	h.choose(0)
	h.choose(startGameStart)

	assert.Equal(t, "seed-home", h.seeder.seeds[len(h.seeder.seeds)-1])
	assert.True(t, h.surface.HasText("home"))

	h.tap(cfg.ActionStart)
	h.settle()
	assert.True(t, h.surface.HasText(cfg.Title.PressStartText))
	assert.Equal(t, cfg.Saves.BackgroundSeed, h.seeder.seeds[len(h.seeder.seeds)-1])
	assert.Equal(t, []string{"home"}, h.savedNames())
}

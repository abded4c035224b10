// puyoterm is a terminal puyo puyo field with a player mode and two AIs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/adrg/xdg"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"puyoterm/config"
	"puyoterm/engine"
	"puyoterm/game"
	"puyoterm/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagAI          = flag.String("ai", "", "Start with this controller (player, random or rulebase)")
	flagSeed        = flag.Int64("seed", 0, "Seed for the pair source and the random AI (0 uses the clock)")
	flagDebug       = flag.Bool("debug", false, "Write a debug log to the state directory")
	flagFocus       = flag.Bool("focus", false, "Start in focus mode (field only)")
	flagVersion     = flag.Bool("version", false, "Print version and exit")
	flagWriteConfig = flag.Bool("write-config", false, "Write the effective config file and exit")
	flagHeadless    = flag.Bool("headless", false, "Let the AI play without a UI and print the result")
	flagMaxTurns    = flag.Int("max-turns", 1000, "Turn limit for -headless (0 for none)")
)

var app *tview.Application
var rootPage *tview.Pages
var field *ui.FieldUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("puyoterm %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fatal(err)
	}
	if *flagAI != "" {
		kind, err := game.ParseKind(*flagAI)
		if err != nil {
			fatal(err)
		}
		cfg.Game.AI = string(kind)
	}
	if *flagSeed != 0 {
		cfg.Game.Seed = *flagSeed
	}

	if *flagWriteConfig {
		if err := cfg.Save(); err != nil {
			fatal(err)
		}
		path, err := config.Path()
		if err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	if *flagDebug || cfg.Game.DebugLog {
		closeLog, err := openDebugLog()
		if err != nil {
			fatal(err)
		}
		defer closeLog()
	}

	kind, _ := game.ParseKind(cfg.Game.AI)
	session := game.NewSession(cfg.Game.Height, cfg.Game.Width, game.NewRandomSource(cfg.Game.Seed))

	if *flagHeadless {
		if err := runHeadless(session, kind, *flagMaxTurns); err != nil {
			fatal(err)
		}
		return
	}

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ● puyoterm ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	field = ui.NewField(app, cfg, session, gameHint)
	gameFrame = ui.CreateGameLayout(field, gameHint)

	modeSelect := ui.NewModeSelect(
		func(kind game.Kind, stepDelayMs int) {
			closeOverlay("modeselect")
			if err := field.SetMode(kind, stepDelayMs); err != nil {
				gameHint.SetText(err.Error())
			}
		},
		func() {
			closeOverlay("modeselect")
		},
	)

	gameOver := ui.NewGameOver(
		func() {
			closeOverlay("gameover")
			field.Retry()
		},
		func() {
			app.Stop()
		},
	)
	colorConfig := ui.NewColorConfig(cfg, func(err error) {
		field.SetConfig(cfg)
		rootPage.SwitchToPage("game")
		app.SetFocus(field.Box)
		if err != nil {
			gameHint.SetText(fmt.Sprintf("  could not save colors: %s", err))
		}
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			colorConfig.Reset()
			rootPage.SwitchToPage("game")
			app.SetFocus(field.Box)
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	field.OnGameOver(func(score, turns int) {
		gameOver.SetResult(score, turns)
		rootPage.ShowPage("gameover")
		app.SetFocus(gameOver)
	})

	gameFrame.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab:
			modeSelect.Open(field.Mode(), field.StepDelay())
			rootPage.ShowPage("modeselect")
			app.SetFocus(modeSelect)
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				app.Stop()
				return nil
			case 'f':
				toggleFocus()
				return nil
			case 'c':
				rootPage.SwitchToPage("colors")
				app.SetFocus(colorConfig.Flex())
				return nil
			}
		}
		return event
	})

	rootPage.AddPage("game", gameFrame, true, true)
	rootPage.AddPage("modeselect", ui.Overlay(modeSelect, 48, 18), true, false)
	rootPage.AddPage("gameover", ui.Overlay(gameOver, 36, 13), true, false)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if err := field.SetMode(kind, cfg.Game.StepDelayMs); err != nil {
		fatal(err)
	}
	if *flagFocus {
		toggleFocus()
	}

	if err := app.SetRoot(rootPage, true).SetFocus(field.Box).Run(); err != nil {
		panic(err)
	}
}

func toggleFocus() {
	if field.ToggleFocusMode() {
		ui.BuildFocusLayout(gameFrame, field)
	} else {
		ui.RebuildNormalLayout(gameFrame, field, gameHint)
	}
	if app != nil {
		app.SetFocus(field.Box)
	}
}

func closeOverlay(name string) {
	rootPage.HidePage(name)
	app.SetFocus(field.Box)
}

// runHeadless lets the AI for kind play until game over or maxTurns.
func runHeadless(session *game.Session, kind game.Kind, maxTurns int) error {
	if kind == game.Player {
		return errors.New("-headless needs -ai random or -ai rulebase")
	}
	ai, err := game.NewAI(kind, cfg.Game.Seed)
	if err != nil {
		return err
	}
	session.SetAI(ai)

	maxChain := 0
	for maxTurns == 0 || session.Turns() < maxTurns {
		turn, err := session.Step()
		if errors.Is(err, game.ErrGameOver) || errors.Is(err, engine.ErrNoLegalPlacement) {
			break
		}
		if err != nil {
			return err
		}
		if turn.Chain > maxChain {
			maxChain = turn.Chain
		}
		if turn.GameOver {
			break
		}
	}
	fmt.Printf("%s: score %d, pieces %d, best chain %d, game over %t\n",
		kind.Label(), session.Score(), session.Turns(), maxChain, session.GameOver())
	return nil
}

func openDebugLog() (func(), error) {
	path, err := xdg.StateFile("puyoterm/debug.log")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve debug log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	game.SetDebugLog(f)
	log.New(f, "", log.Ltime|log.Lmicroseconds).Printf("=== puyoterm %s started ===", Version)
	return func() { f.Close() }, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

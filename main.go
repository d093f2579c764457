package main

import (
	"flag"
	"log"
	"os"

	"kektris/pkg/engine/terminal"
	"kektris/pkg/game/config"
	"kektris/pkg/game/devtools"
	"kektris/pkg/game/gameplay"
	"kektris/pkg/game/renderer"
	"kektris/pkg/game/renderer/ebiten"
	"kektris/pkg/game/renderer/tui"
)

// tuiLogFile keeps log lines off the terminal screen
const tuiLogFile = "kektris.log"

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	os.Exit(run(cfg))
}

// run plays one session and returns the process exit code
func run(cfg config.Config) int {
	if cfg.Renderer == config.RendererTUI {
		if !terminal.IsTerminal() {
			log.Printf("the tui renderer needs a terminal on stdout")
			return 2
		}
		if cfg.LogFile == "" {
			cfg.LogFile = tuiLogFile
		}
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("open log file: %v", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	renderer.InitLocale(cfg.LocaleDir, cfg.Locale)

	g, err := gameplay.NewGame(cfg)
	if err != nil {
		log.Printf("cannot start: %v", err)
		return 2
	}
	log.Printf("new game: size %d, clear length %d, renderer %s", cfg.GridSize, cfg.ClearLength, cfg.Renderer)

	switch cfg.Renderer {
	case config.RendererTUI:
		if !terminal.Fits(cfg.GridSize, 2, 30) {
			log.Printf("terminal smaller than the board; enlarge it or pass a smaller -size")
		}
		renderer.SetRenderer(tui.New())
	default:
		renderer.SetRenderer(ebiten.New(cfg.CellPixels))
	}

	if err := renderer.Run(g); err != nil {
		log.Printf("renderer failed: %v", err)
		return 1
	}

	log.Printf("session ended: score %d, %d figures, %d cells cleared", g.Score, g.Settled, g.Cleared)
	if terminal.IsTerminal() {
		devtools.PrintGrid(os.Stdout, g)
	}
	return 0
}

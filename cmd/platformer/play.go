package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var (
	flagLevel      string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Start playing a level. Without --level the built-in level is used.

Controls:
  Left/A, Right/D   - Run
  Up/W/Space        - Jump
  P/Esc             - Pause
  R                 - Restart (after the run ends)
  Q/Ctrl+C          - Quit

Difficulty options scale the speed of moving lava:
  easy   - 0.75x
  normal - 1x
  hard   - 1.5x

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play --level ./levels/cave.txt
  platformer play --config ./my-platformer.yaml --log-file ./platformer.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a level plan file")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, source, err := loadSettings(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source, "difficulty", flagDifficulty)

	name, plan := platformer.DefaultPlanName, platformer.DefaultPlan
	if flagLevel != "" {
		plan, err = platformer.LoadPlan(flagLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		name = strings.TrimSuffix(filepath.Base(flagLevel), filepath.Ext(flagLevel))
	}

	game, err := platformer.New(name, plan, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("level loaded", "level", name,
		"width", game.Level().Width(), "height", game.Level().Height(),
		"actors", len(game.Level().StartActors()))

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	hold := time.Duration(cfg.Input.HoldMS) * time.Millisecond

	if err := tui.Run(game, runtime, hold, logger); err != nil {
		logger.Error("game loop failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

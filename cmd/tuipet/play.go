package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/logging"
	"github.com/vovakirdan/tui-pet/internal/platform/tui"
	"github.com/vovakirdan/tui-pet/internal/save"
	"github.com/vovakirdan/tui-pet/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with your pet",
	Long: `Open the pet screen. If there is no saved pet, or it has died, you
are asked to name a new egg.

Controls:
  Up/Down, k/j  - Choose an action
  Enter/Space   - Do it
  ?             - More keys
  Q/Ctrl+C      - Save and quit

The pet is saved when you quit and whenever a new egg is adopted.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	// Get terminal size to fit the playground
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = width
	runtime.ScreenH = height
	runtime.TickInterval = cfg.TickInterval()
	runtime.Seed = flagSeed
	runtime.Playground = playground(cfg, width, height)

	history := openHistory(cfg, logger)
	opts := session.Options{
		Store:         save.NewStore(cfg.SavePath),
		Playground:    runtime.Playground,
		PopupDuration: cfg.PopupDuration(),
		Rand:          newRand(runtime.Seed),
		Logger:        logger,
	}
	if history != nil {
		opts.History = history
	}

	sess := session.New(opts)
	if err := sess.Load(time.Now()); err != nil {
		if history != nil {
			history.Close()
		}
		fmt.Fprintf(os.Stderr, "Error loading pet: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(sess, runtime, logger)

	// Close store before potential exit
	if history != nil {
		history.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closer.Close()
		os.Exit(1)
	}
}

// playground returns the configured motion bounds, or the bounds that fill
// the playground panel of a width x height terminal.
func playground(cfg config.Config, width, height int) core.Rect {
	if cfg.AutoPlayground() {
		return tui.PlaygroundFor(width, height)
	}
	return core.NewRect(0, 0, cfg.Playground.Width, cfg.Playground.Height)
}

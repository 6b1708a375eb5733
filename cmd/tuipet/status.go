package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pet/internal/logging"
	"github.com/vovakirdan/tui-pet/internal/save"
	"github.com/vovakirdan/tui-pet/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print how your pet is doing",
	Long: `Load the saved pet, catch it up to the current time and print its
stats. The save file is left untouched.

Examples:
  tuipet status
  tuipet status --save ~/pets/rex.txt`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := logging.Stderr(cfg.Log.Level)

	history := openHistory(cfg, logger)
	if history != nil {
		defer history.Close()
	}

	opts := session.Options{
		Store:  save.NewStore(cfg.SavePath),
		Rand:   newRand(flagSeed),
		Logger: logger,
	}
	if history != nil {
		opts.History = history
	}
	sess := session.New(opts)

	now := time.Now()
	if err := sess.Load(now); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading pet: %v\n", err)
		os.Exit(1)
	}
	f := sess.Settle(now)

	if f.Name == "" {
		fmt.Println("No pet yet.")
		fmt.Println()
		fmt.Println("Run 'tuipet play' to adopt one.")
		return
	}

	fmt.Printf("%s the %s %s\n", f.Name, f.Color, f.Species)
	fmt.Println()
	fmt.Printf("  %-8s %s\n", "Stage", f.Stage)
	fmt.Printf("  %-8s %d hours\n", "Age", f.AgeHours)

	switch {
	case !f.Alive:
		fmt.Printf("  %-8s died of %s\n", "State", f.CauseOfDeath)
	case f.Asleep:
		fmt.Printf("  %-8s asleep\n", "State")
	default:
		fmt.Printf("  %-8s awake\n", "State")
	}

	fmt.Println()
	fmt.Printf("  %-8s %3d\n", "Food", f.Stats.Food)
	fmt.Printf("  %-8s %3d\n", "Joy", f.Stats.Joy)
	fmt.Printf("  %-8s %3d\n", "Energy", f.Stats.Energy)
	fmt.Printf("  %-8s %3d\n", "Health", f.Stats.Health)

	if !f.Alive {
		fmt.Println()
		fmt.Println("Run 'tuipet play' to adopt a new egg.")
	}
}

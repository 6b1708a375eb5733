// tuipet is a virtual pet that lives in your terminal.
//
// Usage:
//
//	tuipet                   - Play with your pet (same as tuipet play)
//	tuipet play              - Play with your pet
//	tuipet status            - Print how your pet is doing without opening the TUI
//	tuipet history           - Browse every pet you have adopted
//	tuipet config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Use a specific config file
//	--save <path>       - Set the save file path (default: ./save-file.txt)
//	--db <path>         - Set the pet history database path (default: ~/.tuipet/history.db)
//	--seed <value>      - Set RNG seed for species, colors and food picks
//	--log-level <level> - Override the log level (debug, info, warn, error)
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagSavePath string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuipet",
	Short: "tuipet - a virtual pet in your terminal",
	Long: `tuipet is a terminal pet. Hatch an egg, keep it fed, happy, rested
and healthy, and watch it grow up. It keeps living while you are away:
time passes between sessions and neglect has consequences.

Available commands:
  play     - Play with your pet (default)
  status   - Print your pet's stats without opening the TUI
  history  - Browse every pet you have adopted
  config   - Print the default configuration

Examples:
  tuipet
  tuipet status
  tuipet history --plain
  tuipet --save ~/pets/rex.txt`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to the save file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the pet history database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the command line overrides.
// It exits on invalid configuration.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagSavePath != "" {
		cfg.SavePath = flagSavePath
	}
	if flagDBPath != "" {
		cfg.HistoryDB = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.SavePath, err = config.ExpandHome(cfg.SavePath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newRand returns the RNG for this run. A zero seed means the current time.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// openHistory opens the pet history database. The pet works without it, so
// failures are only logged.
func openHistory(cfg config.Config, logger *log.Logger) *storage.Store {
	if cfg.HistoryDB == "" {
		return nil
	}
	store, err := storage.Open(cfg.HistoryDB)
	if err != nil {
		logger.Warn("pet history disabled", "path", cfg.HistoryDB, "error", err)
		return nil
	}
	return store
}

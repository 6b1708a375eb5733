package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pet/internal/logging"
	"github.com/vovakirdan/tui-pet/internal/platform/tui"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

var (
	flagPlain bool
	flagCSV   bool
	flagDead  bool
	flagLimit int
	flagPetID string
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse every pet you have adopted",
	Long: `Show the pets you have adopted, when they were born and how they died.

Without flags an interactive table opens when stdout is a terminal.

Examples:
  tuipet history
  tuipet history --plain --dead
  tuipet history --csv > pets.csv
  tuipet history --id 3f1c...`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table and a summary")
	historyCmd.Flags().BoolVar(&flagCSV, "csv", false, "Write every pet as CSV to stdout")
	historyCmd.Flags().BoolVar(&flagDead, "dead", false, "Only list pets that have died (with --plain)")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "How many pets to list (with --plain)")
	historyCmd.Flags().StringVar(&flagPetID, "id", "", "Show a single pet")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Forget every recorded pet")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if cfg.HistoryDB == "" {
		fmt.Fprintln(os.Stderr, "Error: pet history is disabled (history_db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening pet history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	now := time.Now()
	switch {
	case flagClear:
		err = store.ClearHistory()
		if err == nil {
			logging.Stderr(cfg.Log.Level).Info("pet history cleared", "path", cfg.HistoryDB)
		}
	case flagPetID != "":
		err = printPet(store, flagPetID, now)
	case flagCSV:
		err = writeCSV(store, now)
	case flagPlain || !term.IsTerminal(int(os.Stdout.Fd())):
		err = printHistory(store, now)
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunHistory(store, width, height)
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeCSV(store *storage.Store, now time.Time) error {
	entries, err := store.AllPets()
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, entries, now)
}

func printHistory(store *storage.Store, now time.Time) error {
	var entries []storage.PetEntry
	var err error
	if flagDead {
		entries, err = store.Graveyard(flagLimit)
	} else {
		entries, err = store.History(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println("Pet History")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No pets recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tuipet play' to adopt your first egg!")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %-16s  %-10s  %s\n", "Name", "Species", "Born", "Lived", "Fate")
	fmt.Printf("  %-16s  %-8s  %-16s  %-10s  %s\n", "----", "-------", "----", "-----", "----")
	for _, e := range entries {
		fmt.Printf("  %-16s  %-8s  %-16s  %-10s  %s\n",
			e.Name, e.Species, e.BornAt.Format("2006-01-02 15:04"), hours(e.Lifespan(now)), fate(e))
	}

	all, err := store.AllPets()
	if err != nil {
		return err
	}
	printSummary(storage.Summarize(all))
	return nil
}

func printSummary(s storage.Summary) {
	fmt.Println()
	fmt.Printf("Adopted: %d  Alive: %d  Died: %d\n", s.Adopted, s.Alive, s.Died)
	if s.Died == 0 {
		return
	}
	fmt.Printf("Lifespan: mean %s, std dev %s, median %s, longest %s\n",
		hours(s.MeanLifespan), hours(s.StdDevLifespan), hours(s.MedianLifespan), hours(s.LongestLived))

	causes := make([]string, 0, len(s.Causes))
	for c := range s.Causes {
		causes = append(causes, c)
	}
	sort.Strings(causes)
	for _, c := range causes {
		fmt.Printf("  %-10s %d\n", c, s.Causes[c])
	}
}

func printPet(store *storage.Store, id string, now time.Time) error {
	e, err := store.PetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("no pet with id %q", id)
	}

	fmt.Printf("%s the %s %s\n", e.Name, e.Color, e.Species)
	fmt.Println()
	fmt.Printf("  %-8s %s\n", "ID", e.ID)
	fmt.Printf("  %-8s %s\n", "Stage", e.Stage)
	fmt.Printf("  %-8s %s\n", "Born", e.BornAt.Format("2006-01-02 15:04"))
	if !e.Alive() {
		fmt.Printf("  %-8s %s\n", "Died", e.DiedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("  %-8s %s\n", "Lived", hours(e.Lifespan(now)))
	fmt.Printf("  %-8s %s\n", "Fate", fate(*e))
	return nil
}

func fate(e storage.PetEntry) string {
	switch {
	case e.Alive():
		return "alive"
	case e.Cause == "":
		return "died"
	default:
		return "died of " + e.Cause
	}
}

func hours(d time.Duration) string {
	return fmt.Sprintf("%.1fh", d.Hours())
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sketchpad/internal/storage"
)

var (
	flagStatsLimit int
	flagSessionID  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drawing session statistics",
	Long: `Display recent drawing sessions, a plot of cells changed per session
and totals over all sessions.

Examples:
  sketchpad stats
  sketchpad stats --limit 50
  sketchpad stats --session 7d9c1f4e-...`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 20, "Number of sessions to show")
	statsCmd.Flags().StringVar(&flagSessionID, "session", "", "Show a single session by ID")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening usage database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSessionID != "" {
		st, err := store.SessionByID(flagSessionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			store.Close()
			os.Exit(1)
		}
		if st == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown session %q\n", flagSessionID)
			store.Close()
			os.Exit(1)
		}
		printSession(st)
		return
	}

	sessions, err := store.RecentSessions(flagStatsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		store.Close()
		os.Exit(1)
	}

	fmt.Println("Drawing Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'sketchpad draw' to start drawing!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-5s  %-7s  %-5s  %-5s  %-6s  %s\n",
		"Date", "User", "Grid", "Strokes", "Fills", "Picks", "Cells", "Time")
	fmt.Printf("  %-16s  %-12s  %-5s  %-7s  %-5s  %-5s  %-6s  %s\n",
		"----", "----", "----", "-------", "-----", "-----", "-----", "----")

	for _, st := range sessions {
		fmt.Printf("  %-16s  %-12s  %-5s  %-7d  %-5d  %-5d  %-6d  %s\n",
			st.CreatedAt.Format("2006-01-02 15:04"),
			truncate(st.User, 12),
			fmt.Sprintf("%dx%d", st.GridSize, st.GridSize),
			st.Strokes, st.Fills, st.Picks, st.CellsChanged,
			time.Duration(st.Duration)*time.Second,
		)
	}

	// Plot oldest to newest
	if len(sessions) > 1 {
		data := make([]float64, len(sessions))
		for i, st := range sessions {
			data[len(sessions)-1-i] = float64(st.CellsChanged)
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("cells changed per session"),
		))
	}

	totals, err := store.SessionTotals()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Sessions: %d  Strokes: %d  Fills: %d  Picks: %d  Cells: %d\n",
		totals.Sessions, totals.Strokes, totals.Fills, totals.Picks, totals.CellsChanged)
	if !totals.LastSession.IsZero() {
		fmt.Printf("Last session: %s\n", totals.LastSession.Format("2006-01-02 15:04"))
	}
}

func printSession(st *storage.SessionStats) {
	fmt.Printf("Session %s\n", st.SessionID)
	fmt.Println()
	fmt.Printf("  User:     %s\n", st.User)
	fmt.Printf("  Date:     %s\n", st.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  Grid:     %dx%d\n", st.GridSize, st.GridSize)
	fmt.Printf("  Strokes:  %d\n", st.Strokes)
	fmt.Printf("  Fills:    %d\n", st.Fills)
	fmt.Printf("  Picks:    %d\n", st.Picks)
	fmt.Printf("  Cells:    %d\n", st.CellsChanged)
	fmt.Printf("  Time:     %s\n", time.Duration(st.Duration)*time.Second)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

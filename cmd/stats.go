package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	statsscreen "github.com/futbolquiz/futbolquiz/internal/screens/stats"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, cleanup, err := openEventRepo(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := context.Background()
		stats, err := repo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.TotalQuizzes == 0 {
			fmt.Println("No finished games yet. Run futbolquiz to play.")
			return nil
		}

		fmt.Printf("Games played:   %d\n", stats.TotalQuizzes)
		fmt.Printf("Average score:  %.0f%%\n", stats.AverageScore)
		fmt.Printf("Best streak:    %d\n", stats.BestStreak)

		modes := make([]string, 0, len(stats.PerMode))
		for mode := range stats.PerMode {
			modes = append(modes, mode)
		}
		sort.Strings(modes)

		fmt.Println()
		fmt.Printf("%-22s  %6s  %8s  %7s\n", "Mode", "Games", "Avg", "Streak")
		fmt.Println(strings.Repeat("─", 50))
		for _, mode := range modes {
			m := stats.PerMode[mode]
			name := mode
			if display, ok := statsscreen.ModeNames[mode]; ok {
				name = display
			}
			fmt.Printf("%-22s  %6d  %7.0f%%  %7d\n", name, m.Quizzes, m.AverageScore, m.BestStreak)
		}
		return nil
	},
}

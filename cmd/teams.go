package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/futbolquiz/futbolquiz/internal/config"
	"github.com/futbolquiz/futbolquiz/internal/source"
	"github.com/spf13/cobra"
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the leagues and teams quizzes draw from",
	RunE: func(cmd *cobra.Command, args []string) error {
		league, _ := cmd.Flags().GetString("league")
		withCounts, _ := cmd.Flags().GetBool("counts")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		leagues := make([]string, 0, len(cfg.Leagues))
		for slug := range cfg.Leagues {
			leagues = append(leagues, slug)
		}
		sort.Strings(leagues)

		if league != "" {
			if _, ok := cfg.Leagues[league]; !ok {
				return fmt.Errorf("unknown league %q: configured leagues are %s",
					league, strings.Join(leagues, ", "))
			}
			leagues = []string{league}
		}

		var client *source.Client
		if withCounts {
			client = source.New(cfg)
		}

		var totalTeams int
		for _, slug := range leagues {
			teams := append([]string(nil), cfg.Leagues[slug]...)
			sort.Strings(teams)
			totalTeams += len(teams)

			fmt.Printf("%s (%d teams)\n", slug, len(teams))
			for _, team := range teams {
				if client == nil {
					fmt.Printf("  %s\n", team)
					continue
				}
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				players, err := client.TeamPlayers(ctx, slug, team)
				cancel()
				if err != nil {
					fmt.Printf("  %-28s  (fetch failed: %v)\n", team, err)
					continue
				}
				fmt.Printf("  %-28s  %d players\n", team, len(players))
			}
			fmt.Println()
		}

		fmt.Printf("%d leagues, %d teams\n", len(leagues), totalTeams)
		return nil
	},
}

func init() {
	teamsCmd.Flags().String("league", "", "Show a single league (e.g. laliga)")
	teamsCmd.Flags().Bool("counts", false, "Fetch player counts from the data API")
}

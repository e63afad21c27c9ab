package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/futbolquiz/futbolquiz/internal/llm"
	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/questiongen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated trivia questions (no database)",
	Long: `Generate and interactively answer trivia questions.

This is a stateless developer tool — no database, no score tracking, no events.
Useful for evaluating question quality before they reach the trivia screen.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())

	fmt.Printf("Generating %d questions...\n\n", count)
	qs, err := gen.Generate(ctx, count)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for i, q := range qs {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(qs))
		fmt.Println(q.Prompt)
		fmt.Printf("(%d accepted answers, empty line to reveal)\n", len(q.Answers))

		remaining := make(map[string]string, len(q.Answers))
		for _, a := range q.Answers {
			remaining[player.NormalizeFreeText(a)] = a
		}

		var found int
		for len(remaining) > 0 {
			fmt.Print("> ")
			if !scanner.Scan() {
				fmt.Println("\n(input closed)")
				return nil
			}
			answer := strings.TrimSpace(scanner.Text())
			if answer == "" {
				break
			}

			key := player.NormalizeFreeText(answer)
			if original, ok := remaining[key]; ok {
				found++
				delete(remaining, key)
				fmt.Printf("\033[32m✓ %s\033[0m (%d/%d)\n", original, found, len(q.Answers))
			} else {
				fmt.Println("\033[31m✗ Not on the list.\033[0m")
			}
		}

		if len(remaining) > 0 {
			missed := make([]string, 0, len(remaining))
			for _, original := range remaining {
				missed = append(missed, original)
			}
			fmt.Printf("Missed: %s\n", strings.Join(missed, ", "))
		}
		fmt.Printf("Found %d/%d\n\n", found, len(q.Answers))
	}

	return nil
}

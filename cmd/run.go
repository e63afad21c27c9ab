package cmd

import (
	"fmt"
	"os"

	"github.com/futbolquiz/futbolquiz/internal/app"
	"github.com/futbolquiz/futbolquiz/internal/config"
	"github.com/futbolquiz/futbolquiz/internal/llm"
	"github.com/futbolquiz/futbolquiz/internal/questiongen"
	"github.com/futbolquiz/futbolquiz/internal/questions"
	"github.com/futbolquiz/futbolquiz/internal/source"
	"github.com/futbolquiz/futbolquiz/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	repo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("init event repo: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Trivia questions come from the data API when no provider is
	// configured.
	var gen questions.Generator
	provider, err := llm.NewProviderFromEnv(ctx, repo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Trivia questions will come from the data API only.")
	} else {
		gen = questiongen.New(provider, questiongen.DefaultConfig())
	}

	return app.Run(app.Options{
		Config:    cfg,
		Repo:      repo,
		Players:   source.New(cfg),
		Questions: questions.New(cfg, gen),
	})
}

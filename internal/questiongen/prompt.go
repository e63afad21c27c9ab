package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a football trivia writer creating list-style quiz questions in Spanish.

Rules:
- Each question asks the player to name the members of a well-known set, e.g. "Goleadores de la final del Mundial 2022" or "Clubes donde jugó Zlatan Ibrahimovic".
- Every question must have between 2 and 15 accepted answers, and the list must be complete: include every member of the set, not a sample.
- Answers are proper names (players, clubs, countries) in their usual display spelling, accents included.
- Stick to widely verifiable football facts. No invented matches, transfers, or awards.
- Write question prompts in Spanish; keep them under 300 characters.
- Do not repeat any question from the "already used" list.`

// buildUserMessage constructs the user message for a generation batch.
func buildUserMessage(count int, priorPrompts []string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d questions.\n", count)

	b.WriteString("\nAlready used in this session:\n")
	b.WriteString(buildDedup(priorPrompts, cfg.MaxPriorPrompts))

	return b.String()
}

// buildDedup formats prior prompts for the prompt, respecting the max limit.
// Returns "None" if there are no prior prompts.
func buildDedup(priorPrompts []string, max int) string {
	if len(priorPrompts) == 0 {
		return "None"
	}

	// Keep only the most recent N prompts.
	if max > 0 && len(priorPrompts) > max {
		priorPrompts = priorPrompts[len(priorPrompts)-max:]
	}

	var b strings.Builder
	for i, p := range priorPrompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}

package questiongen

import (
	"strings"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/game/trivia"
)

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	tests := []struct {
		name   string
		prompt string
		wantOK bool
	}{
		{"valid", "Campeones del mundo desde 2000", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too long", strings.Repeat("x", 301), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &trivia.Question{Prompt: tt.prompt, Answers: []string{"a", "b"}}
			err := v.Validate(q)
			if tt.wantOK && err != nil {
				t.Errorf("unexpected failure: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation failure")
			}
		})
	}
}

func TestAnswerListValidator(t *testing.T) {
	v := &AnswerListValidator{}

	tests := []struct {
		name    string
		answers []string
		wantOK  bool
	}{
		{"valid", []string{"Lionel Messi", "Kylian Mbappé"}, true},
		{"single answer", []string{"Messi"}, false},
		{"empty answer", []string{"Messi", "  "}, false},
		{"accent duplicate", []string{"Mbappé", "Mbappe"}, false},
		{"too many", make([]string, 16), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &trivia.Question{Prompt: "p", Answers: tt.answers}
			err := v.Validate(q)
			if tt.wantOK && err != nil {
				t.Errorf("unexpected failure: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation failure")
			}
		})
	}
}

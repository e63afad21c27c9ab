package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/llm"
)

func validBatchJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{"prompt": "Goleadores de la final del Mundial 2022", "answers": ["Lionel Messi", "Kylian Mbappé", "Ángel Di María"]},
			{"prompt": "Campeones de la Champions con dos clubes distintos", "answers": ["Cristiano Ronaldo", "Samuel Eto'o", "Gerard Piqué"]}
		]
	}`)
}

func TestGenerate_ValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
	if qs[0].Prompt != "Goleadores de la final del Mundial 2022" {
		t.Errorf("unexpected prompt: %q", qs[0].Prompt)
	}
	if qs[0].ID == "" || qs[0].ID == qs[1].ID {
		t.Error("expected distinct non-empty question IDs")
	}
}

func TestGenerate_DropsInvalidQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"questions": [
			{"prompt": "", "answers": ["Messi", "Mbappé"]},
			{"prompt": "Pregunta con una sola respuesta", "answers": ["Messi"]},
			{"prompt": "Pregunta válida", "answers": ["Messi", "Mbappé"]}
		]
	}`)})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1 survivor", len(qs))
	}
	if qs[0].Prompt != "Pregunta válida" {
		t.Errorf("wrong survivor: %q", qs[0].Prompt)
	}
}

func TestGenerate_CapsAtCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validBatchJSON()})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	wantErr := errors.New("provider down")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), 3); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped provider error", err)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), 3); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_DedupInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatchJSON()},
		llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)},
	)
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), 2); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	if _, err := gen.Generate(context.Background(), 2); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "Goleadores de la final del Mundial 2022") {
		t.Error("second request should list already-used prompts")
	}
}

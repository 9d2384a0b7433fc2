package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type fakeAnswerer struct{}

func (a *fakeAnswerer) Answer(ctx context.Context, question string) (string, []string, error) {
	if question == "fail" {
		return "", nil, fmt.Errorf("provider unavailable")
	}
	return "answer to " + question, []string{"Eunoto"}, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	b := NewBatchProcessor(&fakeAnswerer{}, 3)

	questions := []string{"what is eunoto", "what is githeri", "fail"}
	results := b.Process(context.Background(), questions)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
			continue
		}
		if r.Answer == "" || len(r.Sources) != 1 {
			t.Errorf("unexpected result: %+v", r)
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	b := NewBatchProcessor(&fakeAnswerer{}, 3)
	if results := b.Process(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadQuestionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.txt")
	content := "what is eunoto\n\n# a comment\nwhat is githeri\n  tell me about luo music  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	questions, err := ReadQuestionsFromFile(path)
	if err != nil {
		t.Fatalf("ReadQuestionsFromFile failed: %v", err)
	}

	want := []string{"what is eunoto", "what is githeri", "tell me about luo music"}
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %d: %v", len(want), len(questions), questions)
	}
	for i := range want {
		if questions[i] != want[i] {
			t.Errorf("question %d: expected %q, got %q", i, want[i], questions[i])
		}
	}
}

func TestReadQuestionsFromFile_Missing(t *testing.T) {
	if _, err := ReadQuestionsFromFile("/nonexistent/questions.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

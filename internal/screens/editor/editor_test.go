package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/mathdrill/internal/problem"
)

func newTestScreen(t *testing.T) (*EditorScreen, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.txt")
	return New(problem.NewBank(), path), path
}

func fillForm(s *EditorScreen, a, op, b string) {
	s.adding = true
	s.inputs[0].SetValue(a)
	s.inputs[1].SetValue(op)
	s.inputs[2].SetValue(b)
}

func TestEditor_AddPersists(t *testing.T) {
	s, path := newTestScreen(t)

	fillForm(s, "30", "-", "12")
	s.addQuestion()

	if s.errMsg != "" {
		t.Fatalf("errMsg = %q, want empty", s.errMsg)
	}
	if s.bank.Len() != 1 {
		t.Fatalf("bank has %d questions, want 1", s.bank.Len())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read question file: %v", err)
	}
	if got, want := string(data), "1. 30 - 12 = 18\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

func TestEditor_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		a, op, b string
		wantMsg  string
	}{
		{"divide by zero", "10", "/", "0", "zero"},
		{"non-integer quotient", "10", "/", "3", "whole number"},
		{"negative difference", "5", "-", "9", "negative"},
		{"bad operator", "5", "%", "2", "Operator"},
		{"empty operand", "", "+", "2", "whole numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScreen(t)
			fillForm(s, tt.a, tt.op, tt.b)
			s.addQuestion()

			if s.bank.Len() != 0 {
				t.Errorf("invalid question was added")
			}
			if !strings.Contains(s.errMsg, tt.wantMsg) {
				t.Errorf("errMsg = %q, want it to mention %q", s.errMsg, tt.wantMsg)
			}
		})
	}
}

func TestEditor_DeleteUpdatesFile(t *testing.T) {
	s, path := newTestScreen(t)

	fillForm(s, "17", "+", "4")
	s.addQuestion()
	fillForm(s, "6", "*", "7")
	s.addQuestion()

	s.cursor = 0
	s.deleteCurrent()

	if s.bank.Len() != 1 {
		t.Fatalf("bank has %d questions, want 1", s.bank.Len())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read question file: %v", err)
	}
	if got, want := string(data), "1. 6 * 7 = 42\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
}

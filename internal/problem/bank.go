package problem

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrIndexOutOfRange is returned when removing a question at an invalid index.
var ErrIndexOutOfRange = errors.New("question index out of range")

// Bank is an ordered, editable set of questions. A full bank can be used
// in place of the generator when starting a test.
type Bank struct {
	problems []Problem
}

// NewBank creates an empty Bank.
func NewBank() *Bank {
	return &Bank{}
}

// Add appends a question to the bank. Answer state is cleared.
func (b *Bank) Add(p Problem) {
	p.Given = 0
	p.Answered = false
	b.problems = append(b.problems, p)
}

// Remove deletes the question at index.
func (b *Bank) Remove(index int) error {
	if index < 0 || index >= len(b.problems) {
		return ErrIndexOutOfRange
	}
	b.problems = append(b.problems[:index], b.problems[index+1:]...)
	return nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.problems)
}

// Problems returns a copy of the question list.
func (b *Bank) Problems() []Problem {
	out := make([]Problem, len(b.problems))
	copy(out, b.problems)
	return out
}

// Clear removes all questions.
func (b *Bank) Clear() {
	b.problems = nil
}

// Export writes the bank to path, one question per line in the form
// "<n>. <a> <op> <b> = <answer>". The file is fully rewritten.
func (b *Bank) Export(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create question file: %w", err)
	}

	w := bufio.NewWriter(f)
	for i, p := range b.problems {
		fmt.Fprintf(w, "%d. %d %s %d = %d\n", i+1, p.A, p.Op, p.B, p.Answer)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write question file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close question file: %w", err)
	}
	return nil
}

// Import replaces the bank contents with the questions parsed from path.
// Lines that do not match the export layout are skipped, never fatal.
func (b *Bank) Import(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open question file: %w", err)
	}
	defer f.Close()

	var parsed []Problem
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if p, ok := parseBankLine(sc.Text()); ok {
			parsed = append(parsed, p)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read question file: %w", err)
	}

	b.problems = parsed
	return nil
}

// parseBankLine parses "<n>. <a> <op> <b> = <answer>". The leading ordinal
// is ignored; the stored answer is kept as written so the export/import
// round trip preserves every tuple exactly.
func parseBankLine(line string) (Problem, bool) {
	fields := strings.Fields(line)
	if len(fields) != 6 || fields[4] != "=" {
		return Problem{}, false
	}

	op, ok := ParseOp(fields[2])
	if !ok {
		return Problem{}, false
	}

	a, err := strconv.Atoi(fields[1])
	if err != nil {
		return Problem{}, false
	}
	bOperand, err := strconv.Atoi(fields[3])
	if err != nil {
		return Problem{}, false
	}
	answer, err := strconv.Atoi(fields[5])
	if err != nil {
		return Problem{}, false
	}

	return Problem{A: a, B: bOperand, Op: op, Answer: answer}, true
}

package problem

import "testing"

func TestGenerateCount(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	probs := g.Generate()
	if len(probs) != 10 {
		t.Fatalf("len(probs) = %d, want 10", len(probs))
	}
}

func TestGenerateInvariants(t *testing.T) {
	g := NewGenerator(DefaultConfig())

	// Enough runs to exercise both operators and the retry path.
	for run := 0; run < 200; run++ {
		for i, p := range g.Generate() {
			if p.A < 0 || p.A >= 50 || p.B < 0 || p.B >= 50 {
				t.Fatalf("run %d problem %d: operands out of range: %+v", run, i, p)
			}
			if p.Answered {
				t.Fatalf("run %d problem %d: generated problem already answered", run, i)
			}

			switch p.Op {
			case OpAdd:
				if p.Answer != p.A+p.B {
					t.Fatalf("run %d problem %d: %d + %d = %d", run, i, p.A, p.B, p.Answer)
				}
				if p.Answer > 50 {
					t.Fatalf("run %d problem %d: sum %d exceeds 50", run, i, p.Answer)
				}
			case OpSub:
				if p.A < p.B {
					t.Fatalf("run %d problem %d: operands not swapped: %d - %d", run, i, p.A, p.B)
				}
				if p.Answer != p.A-p.B || p.Answer < 0 {
					t.Fatalf("run %d problem %d: %d - %d = %d", run, i, p.A, p.B, p.Answer)
				}
			default:
				t.Fatalf("run %d problem %d: unexpected operator %q", run, i, p.Op)
			}
		}
	}
}

func TestGenerateCustomCount(t *testing.T) {
	g := NewGenerator(Config{Count: 3, OperandBound: 10, SumMax: 10})
	probs := g.Generate()
	if len(probs) != 3 {
		t.Fatalf("len(probs) = %d, want 3", len(probs))
	}
	for _, p := range probs {
		if p.Op == OpAdd && p.Answer > 10 {
			t.Errorf("sum %d exceeds configured max 10", p.Answer)
		}
	}
}

func TestProblemText(t *testing.T) {
	p := Problem{A: 17, B: 4, Op: OpAdd, Answer: 21}
	if got := p.Text(); got != "17 + 4 = ?" {
		t.Errorf("Text() = %q", got)
	}
}

func TestProblemCorrect(t *testing.T) {
	p := Problem{A: 9, B: 3, Op: OpSub, Answer: 6}
	if p.Correct() {
		t.Error("unanswered problem reported correct")
	}
	p.Given, p.Answered = 6, true
	if !p.Correct() {
		t.Error("correct answer not recognized")
	}
	p.Given = 7
	if p.Correct() {
		t.Error("wrong answer reported correct")
	}
}

package problem

import "fmt"

// Op is an arithmetic operator. Its value is the character written to the
// question-bank and history files.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// ParseOp parses a single-character operator token.
func ParseOp(s string) (Op, bool) {
	if len(s) != 1 {
		return 0, false
	}
	op := Op(s[0])
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return op, true
	}
	return 0, false
}

func (o Op) String() string {
	return string(byte(o))
}

// Problem is a single arithmetic question together with the test-taker's
// answer state. Answer state is mutated only by the session controller;
// revisiting a problem overwrites Given and Answered.
type Problem struct {
	// A and B are the operands, in display order.
	A int
	B int

	// Op is the operator between A and B.
	Op Op

	// Answer is the correct result of A Op B.
	Answer int

	// Given is the submitted answer. Meaningful only when Answered is true.
	Given int

	// Answered reports whether an answer has been submitted.
	Answered bool
}

// Text returns the question prompt, e.g. "17 + 4 = ?".
func (p Problem) Text() string {
	return fmt.Sprintf("%d %s %d = ?", p.A, p.Op, p.B)
}

// Correct reports whether the problem was answered correctly.
func (p Problem) Correct() bool {
	return p.Answered && p.Given == p.Answer
}

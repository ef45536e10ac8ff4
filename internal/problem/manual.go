package problem

import "errors"

// Validation errors for manually entered questions.
var (
	// ErrNegativeResult is returned for a subtraction whose first operand
	// is smaller than the second.
	ErrNegativeResult = errors.New("subtraction result would be negative")

	// ErrDivideByZero is returned for a division with a zero divisor.
	ErrDivideByZero = errors.New("divisor must not be zero")

	// ErrNotDivisible is returned when a division has a remainder.
	ErrNotDivisible = errors.New("division result must be an integer")

	// ErrUnknownOp is returned for an operator outside + - * /.
	ErrUnknownOp = errors.New("unknown operator")
)

// NewManual builds a problem from hand-entered operands, enforcing the
// editor's validity rules: no negative differences, no zero divisors, no
// fractional quotients. The numeric range of the operands is the input
// boundary's concern, not checked here.
func NewManual(a, b int, op Op) (Problem, error) {
	p := Problem{A: a, B: b, Op: op}

	switch op {
	case OpAdd:
		p.Answer = a + b
	case OpSub:
		if a < b {
			return Problem{}, ErrNegativeResult
		}
		p.Answer = a - b
	case OpMul:
		p.Answer = a * b
	case OpDiv:
		if b == 0 {
			return Problem{}, ErrDivideByZero
		}
		if a%b != 0 {
			return Problem{}, ErrNotDivisible
		}
		p.Answer = a / b
	default:
		return Problem{}, ErrUnknownOp
	}

	return p, nil
}

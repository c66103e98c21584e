package calculator

import "math"

// OpKind selects one of the four binary operators.
type OpKind int

const (
	Add OpKind = iota
	Sub
	Mul
	Div
)

func (k OpKind) String() string {
	switch k {
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	}
	return "unknown"
}

// Symbol returns the operator as printed on a keypad.
func (k OpKind) Symbol() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "−"
	case Mul:
		return "×"
	case Div:
		return "÷"
	}
	return "?"
}

// ParseOpKind maps a typed character to an operator.
func ParseOpKind(r rune) (OpKind, bool) {
	switch r {
	case '+':
		return Add, true
	case '-', '−':
		return Sub, true
	case '*', 'x', 'X', '×':
		return Mul, true
	case '/', '÷':
		return Div, true
	}
	return 0, false
}

// Operation is a binary operation waiting for its right operand.
type Operation struct {
	Kind OpKind
	LHS  int32
}

// Apply computes LHS <op> rhs. Results saturate at the int32 bounds and
// division by zero yields 0.
func (o Operation) Apply(rhs int32) int32 {
	switch o.Kind {
	case Add:
		return satAdd(o.LHS, rhs)
	case Sub:
		return satSub(o.LHS, rhs)
	case Mul:
		return satMul(o.LHS, rhs)
	case Div:
		if rhs == 0 {
			return 0
		}
		return satDiv(o.LHS, rhs)
	}
	return o.LHS
}

func clamp(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}

func satAdd(a, b int32) int32 { return clamp(int64(a) + int64(b)) }
func satSub(a, b int32) int32 { return clamp(int64(a) - int64(b)) }
func satMul(a, b int32) int32 { return clamp(int64(a) * int64(b)) }

// satDiv truncates toward zero; MinInt32 / -1 saturates to MaxInt32.
func satDiv(a, b int32) int32 { return clamp(int64(a) / int64(b)) }

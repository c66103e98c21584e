package calculator

import "fmt"

// Calculator is the calculator's arithmetic state.
//
// When hasEntry is false, no digits were typed since the last operator was
// selected, and the previous number is held by the pending operation.
type Calculator struct {
	entry    int32
	hasEntry bool
	op       Operation
	hasOp    bool
}

// New creates a calculator showing 0 with no pending operation.
func New() *Calculator {
	return &Calculator{hasEntry: true}
}

// Display returns the number to show.
// Usually this is the number being typed. Right after an operator is
// selected it is the previous number, held by the pending operation.
func (c *Calculator) Display() int32 {
	if c.hasEntry {
		return c.entry
	}
	if c.hasOp {
		return c.op.LHS
	}
	return 0
}

// EnterDigit appends a digit to the number being typed.
// It panics if d is outside 0..9.
func (c *Calculator) EnterDigit(d int) {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("calculator: digit %d out of range", d))
	}
	c.entry = satAdd(satMul(c.entryOrZero(), 10), int32(d))
	c.hasEntry = true
}

// Clear resets the number to zero and drops any pending operation.
func (c *Calculator) Clear() {
	*c = Calculator{hasEntry: true}
}

// Evaluate applies the pending operation, if any, to the number being typed.
// Without a pending operation it does nothing.
func (c *Calculator) Evaluate() {
	if !c.hasOp {
		return
	}
	op := c.op
	c.op, c.hasOp = Operation{}, false
	c.entry = op.Apply(c.entryOrZero())
	c.hasEntry = true
}

// SelectOperator evaluates any pending operation, then starts a new one
// whose left operand is the current number.
func (c *Calculator) SelectOperator(kind OpKind) {
	c.Evaluate()
	lhs := c.entryOrZero()
	c.entry, c.hasEntry = 0, false
	c.op, c.hasOp = Operation{Kind: kind, LHS: lhs}, true
}

func (c *Calculator) Add() { c.SelectOperator(Add) }
func (c *Calculator) Sub() { c.SelectOperator(Sub) }
func (c *Calculator) Mul() { c.SelectOperator(Mul) }
func (c *Calculator) Div() { c.SelectOperator(Div) }

// Pending returns the pending operation, if one is selected.
func (c *Calculator) Pending() (Operation, bool) {
	return c.op, c.hasOp
}

// HasEntry reports whether digits were typed (or a result computed) since
// the last operator was selected.
func (c *Calculator) HasEntry() bool {
	return c.hasEntry
}

func (c *Calculator) entryOrZero() int32 {
	if c.hasEntry {
		return c.entry
	}
	return 0
}

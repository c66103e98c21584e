// Package calculator implements the calculator's arithmetic state machine.
//
// A Calculator holds at most one number being typed and at most one pending
// binary operation. Selecting an operator while one is pending evaluates the
// pending one first, so "2 × 3 + 4 =" shows 6 after "+" and 10 after "=".
//
// All arithmetic is on int32 and saturates instead of wrapping; dividing by
// zero yields 0. No operation returns an error. A Calculator is not safe for
// concurrent use; see core.CalcState for the lock-guarded wrapper.
package calculator

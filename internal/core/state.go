package core

import (
	"sync"

	"github.com/Rorical/RoriCalc/internal/calculator"
)

// Snapshot is what a shell needs to redraw after one input event.
type Snapshot struct {
	Display    int32
	Pending    string // operator symbol, empty when nothing is pending
	HasPending bool
}

// CalcState guards the calculator so that each input event's mutation and
// the display read that follows it happen under one lock.
type CalcState struct {
	mu   sync.RWMutex
	calc *calculator.Calculator
}

func NewCalcState() *CalcState {
	return &CalcState{
		calc: calculator.New(),
	}
}

func (cs *CalcState) Snapshot() Snapshot {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.snapshotLocked()
}

// EnterDigit panics if d is outside 0..9, like the calculator itself.
func (cs *CalcState) EnterDigit(d int) Snapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.calc.EnterDigit(d)
	return cs.snapshotLocked()
}

func (cs *CalcState) SelectOperator(kind calculator.OpKind) Snapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.calc.SelectOperator(kind)
	return cs.snapshotLocked()
}

func (cs *CalcState) Evaluate() Snapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.calc.Evaluate()
	return cs.snapshotLocked()
}

func (cs *CalcState) Clear() Snapshot {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.calc.Clear()
	return cs.snapshotLocked()
}

func (cs *CalcState) snapshotLocked() Snapshot {
	snap := Snapshot{Display: cs.calc.Display()}
	if op, ok := cs.calc.Pending(); ok {
		snap.Pending = op.Kind.Symbol()
		snap.HasPending = true
	}
	return snap
}

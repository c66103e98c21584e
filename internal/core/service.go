package core

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/Rorical/RoriCalc/internal/calculator"
	"github.com/Rorical/RoriCalc/internal/eventbus"
)

// CalcService applies input events to the calculator and pushes the
// resulting display back to the UI.
type CalcService struct {
	state    *CalcState
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewCalcService(eb *eventbus.EventBus) *CalcService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CalcService{
		state:    NewCalcState(),
		eventBus: eb,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs the core logic in a goroutine
func (cs *CalcService) Start() {
	// Send initial state to UI immediately
	cs.pushStateToUI(cs.state.Snapshot())
	cs.wg.Add(1)
	go cs.eventLoop()
}

// Stop cancels the event loop and waits for it to return.
func (cs *CalcService) Stop() {
	cs.cancel()
	cs.wg.Wait()
}

func (cs *CalcService) Snapshot() Snapshot {
	return cs.state.Snapshot()
}

func (cs *CalcService) eventLoop() {
	defer cs.wg.Done()
	for {
		select {
		case <-cs.ctx.Done():
			return
		case event, ok := <-cs.eventBus.UIToCore():
			if !ok {
				return
			}
			if snap, ok := cs.Apply(event); ok {
				cs.pushStateToUI(snap)
			}
		}
	}
}

// Apply runs the single calculator operation an input event maps to.
// Events that carry an invalid digit or are unknown are dropped.
func (cs *CalcService) Apply(event eventbus.UIEvent) (Snapshot, bool) {
	switch e := event.(type) {
	case eventbus.DigitEvent:
		if e.Digit < 0 || e.Digit > 9 {
			log.Printf("core: dropping invalid digit %d", e.Digit)
			return Snapshot{}, false
		}
		return cs.state.EnterDigit(e.Digit), true
	case eventbus.OperatorEvent:
		return cs.state.SelectOperator(e.Op), true
	case eventbus.EvaluateEvent:
		return cs.state.Evaluate(), true
	case eventbus.ClearEvent:
		return cs.state.Clear(), true
	}
	log.Printf("core: dropping unknown event %T", event)
	return Snapshot{}, false
}

// Press applies one key synchronously, bypassing the event bus.
func (cs *CalcService) Press(key rune) (Snapshot, error) {
	event, ok := ParseKey(key)
	if !ok {
		return Snapshot{}, fmt.Errorf("unknown key %q", key)
	}
	snap, _ := cs.Apply(event)
	return snap, nil
}

func (cs *CalcService) pushStateToUI(snap Snapshot) {
	err := cs.eventBus.SendToUI(eventbus.StateUpdateEvent{
		Display:    snap.Display,
		Pending:    snap.Pending,
		HasPending: snap.HasPending,
	})
	if err != nil {
		log.Printf("core: failed to push state: %v", err)
	}
}

// ParseKey maps a typed character to the input event it stands for.
func ParseKey(key rune) (eventbus.UIEvent, bool) {
	switch {
	case key >= '0' && key <= '9':
		return eventbus.DigitEvent{Digit: int(key - '0')}, true
	case key == '=':
		return eventbus.EvaluateEvent{}, true
	case key == 'c' || key == 'C':
		return eventbus.ClearEvent{}, true
	}
	if op, ok := calculator.ParseOpKind(key); ok {
		return eventbus.OperatorEvent{Op: op}, true
	}
	return nil, false
}

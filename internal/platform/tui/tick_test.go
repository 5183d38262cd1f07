package tui

import (
	"testing"
	"time"
)

func TestTickerGenerations(t *testing.T) {
	tk := newTicker()

	tok := tk.Start(100 * time.Millisecond)
	if tok != 1 {
		t.Errorf("Expected first token 1, got %v", tok)
	}
	if tk.Take() == nil {
		t.Error("Expected a pending tick after Start")
	}
	if tk.Take() != nil {
		t.Error("Pending tick should only be taken once")
	}
	if !tk.Accept(TickMsg{Gen: 1}) {
		t.Error("Tick of the live generation should be accepted")
	}
	if tk.Continue(1) == nil {
		t.Error("Live generation should schedule its next tick")
	}

	tk.Stop(tok)
	if tk.Live() {
		t.Error("Ticker should be stopped")
	}
	if tk.Accept(TickMsg{Gen: 1}) {
		t.Error("Tick of a stopped generation should be dropped")
	}
	if tk.Continue(1) != nil {
		t.Error("Stopped generation should not schedule more ticks")
	}

	tok = tk.Start(100 * time.Millisecond)
	if tok != 2 {
		t.Errorf("Expected second token 2, got %v", tok)
	}
	if tk.Accept(TickMsg{Gen: 1}) {
		t.Error("Stale tick from the first generation should be dropped")
	}
	if !tk.Accept(TickMsg{Gen: 2}) {
		t.Error("Tick of the new generation should be accepted")
	}
}

func TestTickerStopIgnoresForeignToken(t *testing.T) {
	tk := newTicker()
	tk.Start(time.Second)

	tk.Stop(7)
	tk.Stop("1")
	if !tk.Live() {
		t.Error("Stop with an unknown token should not stop the live generation")
	}
}

func TestTickerZeroGenNeverAccepted(t *testing.T) {
	tk := newTicker()
	if tk.Accept(TickMsg{}) {
		t.Error("A stopped ticker should not accept the zero generation")
	}
	if tk.Continue(0) != nil {
		t.Error("Zero generation should not schedule ticks")
	}
}

package automaton

import "testing"

func TestTransitionOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b Transition
		want bool
	}{
		{"by from", Transition{0, 0, 0}, Transition{1, 0, 0}, true},
		{"by symbol", Transition{0, 0, 0}, Transition{0, 1, 0}, true},
		{"by to", Transition{0, 0, 0}, Transition{0, 0, 1}, true},
		{"equal not less", Transition{1, 2, 3}, Transition{1, 2, 3}, false},
		{"reverse not less", Transition{1, 2, 3}, Transition{1, 2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransitionLessByTarget(t *testing.T) {
	a := Transition{From: 5, Symbol: 1, To: 0}
	b := Transition{From: 0, Symbol: 1, To: 1}
	if !a.LessByTarget(b) {
		t.Error("a should sort before b when ordered by target")
	}
	if a.Less(b) {
		t.Error("a should NOT sort before b in default order")
	}
}

func TestEpsilonTransitionOrdering(t *testing.T) {
	a := EpsilonTransition{From: 0, To: 1}
	b := EpsilonTransition{From: 0, To: 2}
	if !a.Less(b) {
		t.Error("a should sort before b")
	}
	if b.Less(a) {
		t.Error("b should not sort before a")
	}
}

func TestSentinels(t *testing.T) {
	if InvalidState != -1 {
		t.Errorf("InvalidState = %d, want -1", InvalidState)
	}
	if InvalidSymbol != -1 {
		t.Errorf("InvalidSymbol = %d, want -1", InvalidSymbol)
	}
	if Invalid != (Transition{InvalidState, InvalidSymbol, InvalidState}) {
		t.Errorf("Invalid = %+v", Invalid)
	}
}

func TestMinMaxTrans(t *testing.T) {
	lo := MinTrans(5, 2)
	hi := MaxTrans(5, 2)
	mid := Transition{From: 5, Symbol: 2, To: 100}
	if !lo.Less(mid) {
		t.Error("MinTrans should sort before any real transition with the same (from,sym)")
	}
	if !mid.Less(hi) {
		t.Error("MaxTrans should sort after any real transition with the same (from,sym)")
	}
}

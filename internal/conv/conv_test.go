package conv

import "testing"

func TestNonNegative(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		wantPanic bool
	}{
		{"zero", 0, false},
		{"positive", 42, false},
		{"negative", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if tt.wantPanic && r == nil {
					t.Error("expected panic, got none")
				}
				if !tt.wantPanic && r != nil {
					t.Errorf("unexpected panic: %v", r)
				}
			}()
			got := NonNegative(tt.n, "field")
			if !tt.wantPanic && got != tt.n {
				t.Errorf("got %d, want %d", got, tt.n)
			}
		})
	}
}

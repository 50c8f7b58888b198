package mathhelp

import "testing"

func TestBetweenInc(t *testing.T) {
	tests := []struct {
		name    string
		f, p, q float64
		want    bool
	}{
		{"inside", 0.5, 0.0, 1.0, true},
		{"inside reversed bounds", 0.5, 1.0, 0.0, true},
		{"on lower bound", 0.0, 0.0, 1.0, true},
		{"on upper bound", 1.0, 0.0, 1.0, true},
		{"outside", 1.5, 0.0, 1.0, false},
		{"outside negative", -0.5, 0.0, 1.0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BetweenInc(tt.f, tt.p, tt.q); got != tt.want {
				t.Errorf("BetweenInc(%v, %v, %v) = %v, want %v", tt.f, tt.p, tt.q, got, tt.want)
			}
		})
	}
}

func TestEuclidianMod(t *testing.T) {
	tests := []struct {
		name string
		d, m int
		want int
	}{
		{"positive", 4, 3, 1},
		{"zero", 0, 3, 0},
		{"negative", -1, 3, 2},
		{"negative multiple", -3, 3, 0},
		{"negative big", -7, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EuclidianMod(tt.d, tt.m); got != tt.want {
				t.Errorf("EuclidianMod(%v, %v) = %v, want %v", tt.d, tt.m, got, tt.want)
			}
		})
	}
}

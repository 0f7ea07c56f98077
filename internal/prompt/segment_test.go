package prompt

import "testing"

func TestRoundWeight(t *testing.T) {
	// Half away from zero, two decimals.
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 1.5, 1.5},
		{"two curly levels", 1.1025, 1.1},
		{"half rounds up", 0.125, 0.13},
		{"negative half rounds down", -0.125, -0.13},
		{"negative depth excursion", 1.8140589569160996, 1.81},
		{"unchanged", 0.95, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := roundWeight(tt.in); got != tt.want {
				t.Errorf("roundWeight(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{1.3, "1.3"},
		{1.21, "1.21"},
		{-1, "-1"},
		{0.95, "0.95"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatWeight(tt.in); got != tt.want {
			t.Errorf("formatWeight(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSegmentKind(t *testing.T) {
	if s := newSegment("tag", 1.0); s.Kind != KindPlain {
		t.Errorf("weight 1.0 should be KindPlain, got %v", s.Kind)
	}
	if s := newSegment("tag", 1.05); s.Kind != KindWeighted {
		t.Errorf("weight 1.05 should be KindWeighted, got %v", s.Kind)
	}
	if s := newSegment("tag", -1.0); s.Kind != KindWeighted {
		t.Errorf("weight -1.0 should be KindWeighted, got %v", s.Kind)
	}
}

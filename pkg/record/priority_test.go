package record

import "testing"

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"high", PriorityHigh},
		{"HIGH", PriorityHigh},
		{" medium ", PriorityMedium},
		{"low", PriorityLow},
		{"", PriorityMedium},
		{"urgent", PriorityMedium},
	}
	for _, tc := range tests {
		if got := NormalizePriority(tc.in); got != tc.want {
			t.Errorf("NormalizePriority(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPriorityWeight(t *testing.T) {
	if PriorityHigh.Weight() <= PriorityMedium.Weight() {
		t.Fatalf("high should outweigh medium")
	}
	if PriorityMedium.Weight() <= PriorityLow.Weight() {
		t.Fatalf("medium should outweigh low")
	}
}

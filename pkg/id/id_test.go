package id

import "testing"

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := New()
		if got == "" {
			t.Fatalf("expected non-empty id")
		}
		if seen[got] {
			t.Fatalf("duplicate id %q after %d draws", got, i)
		}
		seen[got] = true
	}
}
